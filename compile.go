package symdiff

import "fmt"

type evalFunc func(env []float64) (float64, error)

// Program is a compiled expression: a tree of boxed closures over a dense
// environment slice, invocable repeatedly without walking the original
// tree.
type Program struct {
	run    evalFunc
	vars   []*Variable
	index  map[string]int
	source string
}

// Compile turns a tree into a Program taking the tree's free variables as
// named parameters. It fails with *CompilationError if code generation
// cannot produce a function consistent with the declared free-variable
// set.
func Compile(n Node) (*Program, error) {
	vars := n.FreeVariables()
	index := make(map[string]int, len(vars))
	for i, v := range vars {
		index[v.name] = i
	}
	run, err := compileNode(n, index)
	if err != nil {
		return nil, err
	}
	return &Program{run: run, vars: vars, index: index, source: n.Source()}, nil
}

func compileNode(n Node, index map[string]int) (evalFunc, error) {
	switch t := n.(type) {
	case *Constant:
		v := t.value
		return func([]float64) (float64, error) { return v, nil }, nil
	case *Variable:
		i, ok := index[t.name]
		if !ok {
			return nil, &CompilationError{
				Reason: fmt.Sprintf("variable %q outside the declared free-variable set", t.name),
			}
		}
		return func(env []float64) (float64, error) { return env[i], nil }, nil
	case *unary:
		arg, err := compileNode(t.arg, index)
		if err != nil {
			return nil, err
		}
		eval, ok := unaryEval[t.op]
		if !ok {
			return nil, &CompilationError{Reason: "no evaluation rule for " + t.op.String()}
		}
		return func(env []float64) (float64, error) {
			x, err := arg(env)
			if err != nil {
				return 0, err
			}
			return eval(x)
		}, nil
	case *binary:
		left, err := compileNode(t.left, index)
		if err != nil {
			return nil, err
		}
		right, err := compileNode(t.right, index)
		if err != nil {
			return nil, err
		}
		eval, ok := binaryEval[t.op]
		if !ok {
			return nil, &CompilationError{Reason: "no evaluation rule for " + t.op.String()}
		}
		return func(env []float64) (float64, error) {
			l, err := left(env)
			if err != nil {
				return 0, err
			}
			r, err := right(env)
			if err != nil {
				return 0, err
			}
			return eval(l, r)
		}, nil
	default:
		return nil, &CompilationError{Reason: fmt.Sprintf("unsupported node %T", n)}
	}
}

// Invoke evaluates the program. Every declared free variable must be
// bound; a missing one fails with *MissingBindingError.
func (p *Program) Invoke(binds Bindings) (float64, error) {
	env := make([]float64, len(p.vars))
	for i, v := range p.vars {
		val, ok := binds[v.name]
		if !ok {
			return 0, &MissingBindingError{Name: v.name}
		}
		env[i] = val
	}
	return p.run(env)
}

// Vars returns the program's free variables in parameter order.
func (p *Program) Vars() []*Variable {
	return append([]*Variable(nil), p.vars...)
}

// Source returns the evaluable source fragment the program was built
// from, for handing to a host execution context.
func (p *Program) Source() string { return p.source }
