package symdiff

import "fmt"

// DuplicateVariableError reports an attempt to Define a variable name
// that is already registered.
type DuplicateVariableError struct {
	Name string
}

func (e *DuplicateVariableError) Error() string {
	return fmt.Sprintf("symdiff: variable %q is already defined", e.Name)
}

// MissingBindingError reports evaluation of an expression whose free
// variable has no entry in the supplied bindings.
type MissingBindingError struct {
	Name string
}

func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("symdiff: no binding for variable %q", e.Name)
}

// InvalidSubstitutionError reports a substitution key or value that is
// neither a Node nor a raw number.
type InvalidSubstitutionError struct {
	Value any
}

func (e *InvalidSubstitutionError) Error() string {
	return fmt.Sprintf("symdiff: substitution requires a Node or a number, got %T", e.Value)
}

// InvalidOperandError is the panic payload raised by the combinator
// constructors when handed an operand that is neither a Node nor a raw
// number.
type InvalidOperandError struct {
	Value any
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("symdiff: operand must be a Node or a number, got %T", e.Value)
}

// EvaluationDomainError reports an arithmetic domain violation discovered
// while an expression was actually being evaluated.
type EvaluationDomainError struct {
	Op     Op
	Reason string
}

func (e *EvaluationDomainError) Error() string {
	return fmt.Sprintf("symdiff: %s: %s", e.Op, e.Reason)
}

// TooManySimplificationStepsError reports that the simplifier's per-node
// pass budget was exhausted before a node reached a fixed point.
type TooManySimplificationStepsError struct {
	Steps int
}

func (e *TooManySimplificationStepsError) Error() string {
	return fmt.Sprintf("symdiff: simplification did not converge after %d passes", e.Steps)
}

// CompilationError reports that Compile could not produce an evaluator
// consistent with the expression's declared free variables.
type CompilationError struct {
	Reason string
}

func (e *CompilationError) Error() string {
	return "symdiff: compile: " + e.Reason
}

// NonDifferentiableError reports a Diff request on an operator that has
// no symbolic derivative rule (min, max).
type NonDifferentiableError struct {
	Op Op
}

func (e *NonDifferentiableError) Error() string {
	return fmt.Sprintf("symdiff: %s has no symbolic derivative", e.Op)
}
