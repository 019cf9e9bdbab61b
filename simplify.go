package symdiff

import "math"

// DefaultMaxSteps bounds the number of rewrite passes spent on any single
// node. Rewrite rules can in principle interact cyclically, so the driver
// refuses to loop indefinitely. The cap bounds rewrite cycles, not tree
// size: an already-canonical tree of any size settles in one pass per node.
const DefaultMaxSteps = 10000

// SimplifyOption configures a Simplify call.
type SimplifyOption func(*simplifier)

// WithMaxSteps overrides the per-node pass budget.
func WithMaxSteps(n int) SimplifyOption {
	return func(s *simplifier) { s.max = n }
}

// Simplify rewrites n to its canonical simplified form: every child is
// reduced to its own fixed point bottom-up, then the node's own rewrite
// table is applied once per pass until the rendered form stops changing.
// The input tree is never mutated; a (possibly) new tree is returned.
func Simplify(n Node, opts ...SimplifyOption) (Node, error) {
	s := &simplifier{max: DefaultMaxSteps}
	for _, opt := range opts {
		opt(s)
	}
	return s.fixpoint(n)
}

type simplifier struct {
	max int
}

// fixpoint settles the children once, bottom-up, then rewrites the node at
// its own level until the result stops changing. Rewrite rules only ever
// return existing (already settled) subtrees or canonical constants, so no
// re-descent is needed after a rewrite.
func (s *simplifier) fixpoint(n Node) (Node, error) {
	cur, err := s.descend(n)
	if err != nil {
		return nil, err
	}
	for steps := 0; ; steps++ {
		if steps >= s.max {
			return nil, &TooManySimplificationStepsError{Steps: steps}
		}
		next := rewriteOnce(cur)
		if next == cur || next.Render() == cur.Render() {
			return next, nil
		}
		cur = next
	}
}

// descend reduces every child to its own fixed point, rebuilding the
// composite only when a child actually changed.
func (s *simplifier) descend(n Node) (Node, error) {
	switch t := n.(type) {
	case *unary:
		arg, err := s.fixpoint(t.arg)
		if err != nil {
			return nil, err
		}
		if arg == t.arg {
			return t, nil
		}
		return &unary{op: t.op, arg: arg}, nil
	case *binary:
		left, err := s.fixpoint(t.left)
		if err != nil {
			return nil, err
		}
		right, err := s.fixpoint(t.right)
		if err != nil {
			return nil, err
		}
		if left == t.left && right == t.right {
			return t, nil
		}
		return &binary{op: t.op, left: left, right: right}, nil
	default:
		return n, nil
	}
}

// rewriteOnce applies the node's rewrite table a single time. Rules are
// consulted only once both children are already at their own fixed point.
func rewriteOnce(n Node) Node {
	switch t := n.(type) {
	case *unary:
		if rule, ok := unaryRewrite[t.op]; ok {
			if out := rule(t); out != nil {
				return out
			}
		}
		// Inverse cancellation by tag: sin(asin(x)) -> x and the
		// analogous pairs, in both directions.
		if inv, ok := inverseOf[t.op]; ok && t.arg.Op() == inv {
			return t.arg.Args()[0]
		}
		return t
	case *binary:
		if rule, ok := binaryRewrite[t.op]; ok {
			if out := rule(t); out != nil {
				return out
			}
		}
		return t
	default:
		return n
	}
}

// foldConstants evaluates a binary node whose children are both constant,
// routing the result through the canonicalization factory. A domain
// violation leaves the node untouched; it surfaces at Call time instead.
// Indeterminate forms such as inf - inf stay symbolic rather than folding
// into NaN, which also keeps the zero identities reachable for inf*0.
func foldConstants(b *binary) Node {
	lc, ok := b.left.(*Constant)
	if !ok {
		return nil
	}
	rc, ok := b.right.(*Constant)
	if !ok {
		return nil
	}
	v, err := binaryEval[b.op](lc.value, rc.value)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return Const(v)
}

// Rewrite tables, keyed by operator tag. A rule returns nil when nothing
// applies. Matching is structural and order-sensitive, so identities are
// spelled out for both operand positions.

var binaryRewrite = map[Op]func(b *binary) Node{
	OpAdd: func(b *binary) Node {
		if out := foldConstants(b); out != nil {
			return out
		}
		if b.left.Equal(Zero) {
			return b.right
		}
		if b.right.Equal(Zero) {
			return b.left
		}
		return nil
	},
	OpSub: func(b *binary) Node {
		if out := foldConstants(b); out != nil {
			return out
		}
		if b.right.Equal(Zero) {
			return b.left
		}
		// inf - inf is indeterminate, not zero.
		if b.left.Equal(b.right) && !b.left.Equal(Inf) && !b.left.Equal(NegInf) {
			return Zero
		}
		return nil
	},
	OpMul: func(b *binary) Node {
		if out := foldConstants(b); out != nil {
			return out
		}
		if b.left.Equal(Zero) || b.right.Equal(Zero) {
			return Zero
		}
		if b.left.Equal(One) {
			return b.right
		}
		if b.right.Equal(One) {
			return b.left
		}
		return nil
	},
	OpDiv: func(b *binary) Node {
		if out := foldConstants(b); out != nil {
			return out
		}
		if b.left.Equal(Zero) && !b.right.Equal(Zero) {
			return Zero
		}
		if b.right.Equal(One) {
			return b.left
		}
		// 0/0 and inf/inf are indeterminate, not one.
		if b.left.Equal(b.right) && !b.left.Equal(Zero) &&
			!b.left.Equal(Inf) && !b.left.Equal(NegInf) {
			return One
		}
		return nil
	},
	OpPow: func(b *binary) Node {
		if out := foldConstants(b); out != nil {
			return out
		}
		if b.right.Equal(Zero) {
			return One
		}
		if b.right.Equal(One) {
			return b.left
		}
		if b.left.Equal(One) {
			return One
		}
		return nil
	},
	OpMin: func(b *binary) Node {
		if out := foldConstants(b); out != nil {
			return out
		}
		if b.left.Equal(b.right) {
			return b.left
		}
		if b.right.Equal(Inf) {
			return b.left
		}
		if b.left.Equal(Inf) {
			return b.right
		}
		return nil
	},
	OpMax: func(b *binary) Node {
		if out := foldConstants(b); out != nil {
			return out
		}
		if b.left.Equal(b.right) {
			return b.left
		}
		if b.right.Equal(NegInf) {
			return b.left
		}
		if b.left.Equal(NegInf) {
			return b.right
		}
		return nil
	},
}

var unaryRewrite = map[Op]func(u *unary) Node{
	OpSqrt: func(u *unary) Node {
		if u.arg.Equal(Zero) {
			return Zero
		}
		if u.arg.Equal(One) {
			return One
		}
		return nil
	},
	OpExp: func(u *unary) Node {
		if u.arg.Equal(Zero) {
			return One
		}
		if u.arg.Equal(One) {
			return E
		}
		return nil
	},
	OpLog: func(u *unary) Node {
		if u.arg.Equal(One) {
			return Zero
		}
		if u.arg.Equal(E) {
			return One
		}
		return nil
	},
	OpSin: func(u *unary) Node {
		if u.arg.Equal(Zero) || u.arg.Equal(Pi) {
			return Zero
		}
		return nil
	},
	OpCos: func(u *unary) Node {
		if u.arg.Equal(Zero) {
			return One
		}
		if u.arg.Equal(Pi) {
			return NegOne
		}
		return nil
	},
	OpTan: func(u *unary) Node {
		if u.arg.Equal(Zero) || u.arg.Equal(Pi) {
			return Zero
		}
		return nil
	},
	OpAsin: func(u *unary) Node {
		if u.arg.Equal(Zero) {
			return Zero
		}
		return nil
	},
	OpAcos: func(u *unary) Node {
		if u.arg.Equal(One) {
			return Zero
		}
		return nil
	},
	OpAtan: func(u *unary) Node {
		if u.arg.Equal(Zero) {
			return Zero
		}
		return nil
	},
}
