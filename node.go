// Package symdiff builds and manipulates symbolic mathematical expressions
// as trees: automatic differentiation through recursive rewrite rules,
// fixed-point simplification, numeric evaluation against variable bindings,
// structural substitution, and compilation into repeatedly invocable
// numeric evaluators.
package symdiff

// Bindings maps variable names to numeric values for evaluation. The
// registry interns exactly one *Variable per name for the process
// lifetime, so looking a variable up by name is equivalent to looking it
// up by instance.
type Bindings map[string]float64

// Node is one element of an expression tree. Equality is structural and
// order-sensitive: two binary nodes of the same operator are equal only
// if their children match positionally.
type Node interface {
	// Op returns the node's operator tag.
	Op() Op

	// Args returns the node's ordered children; nil for leaves.
	Args() []Node

	// Diff returns the symbolic derivative with respect to v.
	Diff(v *Variable) (Node, error)

	// Call evaluates the expression against the given bindings.
	Call(binds Bindings) (float64, error)

	// DependsOn reports whether v occurs anywhere in the subtree.
	DependsOn(v *Variable) bool

	// Equal reports structural equality.
	Equal(other Node) bool

	// FreeVariables returns the variables reachable from the node, in
	// first-seen order, without duplicates.
	FreeVariables() []*Variable

	// Render returns the canonical text form. Its stability, not object
	// identity, decides when simplification has converged.
	Render() string

	// LaTeX returns the typeset form.
	LaTeX() string

	// Source returns an evaluable Go source fragment equivalent to Call,
	// for handing to a host execution context.
	Source() string
}

// operand coerces a constructor argument into a Node, auto-wrapping raw
// Go numerics into constants. Anything else is a usage error and panics
// with *InvalidOperandError.
func operand(v any) Node {
	switch x := v.(type) {
	case Node:
		return x
	case float64:
		return Const(x)
	case float32:
		return Const(float64(x))
	case int:
		return Const(float64(x))
	case int32:
		return Const(float64(x))
	case int64:
		return Const(float64(x))
	default:
		panic(&InvalidOperandError{Value: v})
	}
}

func mergeVars(lists ...[]*Variable) []*Variable {
	var out []*Variable
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, v := range list {
			if _, ok := seen[v.name]; ok {
				continue
			}
			seen[v.name] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
