package symdiff

// Substitution pairs a subtree to match with its replacement. Old and
// With accept a Node or a raw number (auto-wrapped into a constant);
// anything else makes Subs fail with *InvalidSubstitutionError.
type Substitution struct {
	Old  any
	With any
}

// Replace builds a substitution pair.
func Replace(old, with any) Substitution {
	return Substitution{Old: old, With: with}
}

type subRule struct {
	old  Node
	with Node
}

// Subs performs structural substitution: a node whose current form equals
// a key is replaced wholesale, otherwise substitution recurses into its
// children. Matching is exact-subtree only; there is no unification or
// partial pattern matching. Untouched subtrees are returned unchanged.
func Subs(n Node, subs ...Substitution) (Node, error) {
	rules := make([]subRule, len(subs))
	for i, s := range subs {
		old, err := substitutionNode(s.Old)
		if err != nil {
			return nil, err
		}
		with, err := substitutionNode(s.With)
		if err != nil {
			return nil, err
		}
		rules[i] = subRule{old: old, with: with}
	}
	return applySubs(n, rules), nil
}

func substitutionNode(v any) (Node, error) {
	switch x := v.(type) {
	case Node:
		return x, nil
	case float64:
		return Const(x), nil
	case float32:
		return Const(float64(x)), nil
	case int:
		return Const(float64(x)), nil
	case int32:
		return Const(float64(x)), nil
	case int64:
		return Const(float64(x)), nil
	default:
		return nil, &InvalidSubstitutionError{Value: v}
	}
}

func applySubs(n Node, rules []subRule) Node {
	for _, r := range rules {
		if n.Equal(r.old) {
			return r.with
		}
	}
	switch t := n.(type) {
	case *unary:
		arg := applySubs(t.arg, rules)
		if arg == t.arg {
			return t
		}
		return &unary{op: t.op, arg: arg}
	case *binary:
		left := applySubs(t.left, rules)
		right := applySubs(t.right, rules)
		if left == t.left && right == t.right {
			return t
		}
		return &binary{op: t.op, left: left, right: right}
	default:
		return n
	}
}
