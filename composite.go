package symdiff

// unary is a composite node with a single child.
type unary struct {
	op  Op
	arg Node
}

// binary is a composite node with two ordered children.
type binary struct {
	op    Op
	left  Node
	right Node
}

// Combinators. Raw numeric operands are coerced into constants; anything
// that is neither a Node nor a number panics with *InvalidOperandError.

func Add(left, right any) Node { return newBinary(OpAdd, left, right) }
func Sub(left, right any) Node { return newBinary(OpSub, left, right) }
func Mul(left, right any) Node { return newBinary(OpMul, left, right) }
func Div(left, right any) Node { return newBinary(OpDiv, left, right) }
func Pow(base, exp any) Node   { return newBinary(OpPow, base, exp) }
func Min(left, right any) Node { return newBinary(OpMin, left, right) }
func Max(left, right any) Node { return newBinary(OpMax, left, right) }

func Sqrt(arg any) Node { return newUnary(OpSqrt, arg) }
func Exp(arg any) Node  { return newUnary(OpExp, arg) }
func Log(arg any) Node  { return newUnary(OpLog, arg) }
func Sin(arg any) Node  { return newUnary(OpSin, arg) }
func Cos(arg any) Node  { return newUnary(OpCos, arg) }
func Tan(arg any) Node  { return newUnary(OpTan, arg) }
func Asin(arg any) Node { return newUnary(OpAsin, arg) }
func Acos(arg any) Node { return newUnary(OpAcos, arg) }
func Atan(arg any) Node { return newUnary(OpAtan, arg) }

func newUnary(op Op, arg any) Node {
	return &unary{op: op, arg: operand(arg)}
}

func newBinary(op Op, left, right any) Node {
	return &binary{op: op, left: operand(left), right: operand(right)}
}

func (u *unary) Op() Op       { return u.op }
func (u *unary) Args() []Node { return []Node{u.arg} }

func (u *unary) DependsOn(v *Variable) bool { return u.arg.DependsOn(v) }

func (u *unary) Equal(other Node) bool {
	o, ok := other.(*unary)
	return ok && o.op == u.op && u.arg.Equal(o.arg)
}

func (u *unary) FreeVariables() []*Variable { return u.arg.FreeVariables() }

func (u *unary) Call(binds Bindings) (float64, error) {
	x, err := u.arg.Call(binds)
	if err != nil {
		return 0, err
	}
	return unaryEval[u.op](x)
}

func (u *unary) Diff(v *Variable) (Node, error) {
	if !u.arg.DependsOn(v) {
		return Zero, nil
	}
	df, err := u.arg.Diff(v)
	if err != nil {
		return nil, err
	}
	rule, ok := unaryDiff[u.op]
	if !ok {
		return nil, &NonDifferentiableError{Op: u.op}
	}
	return rule(u.arg, df), nil
}

func (b *binary) Op() Op       { return b.op }
func (b *binary) Args() []Node { return []Node{b.left, b.right} }

func (b *binary) DependsOn(v *Variable) bool {
	return b.left.DependsOn(v) || b.right.DependsOn(v)
}

func (b *binary) Equal(other Node) bool {
	o, ok := other.(*binary)
	return ok && o.op == b.op && b.left.Equal(o.left) && b.right.Equal(o.right)
}

func (b *binary) FreeVariables() []*Variable {
	return mergeVars(b.left.FreeVariables(), b.right.FreeVariables())
}

func (b *binary) Call(binds Bindings) (float64, error) {
	l, err := b.left.Call(binds)
	if err != nil {
		return 0, err
	}
	r, err := b.right.Call(binds)
	if err != nil {
		return 0, err
	}
	return binaryEval[b.op](l, r)
}

// Diff supplies the two child partial derivatives, short-circuiting to
// Zero for a child that does not depend on v, and lets the operator's own
// calculus rule combine them.
func (b *binary) Diff(v *Variable) (Node, error) {
	if !b.DependsOn(v) {
		return Zero, nil
	}
	var dl, dr Node = Zero, Zero
	var err error
	if b.left.DependsOn(v) {
		if dl, err = b.left.Diff(v); err != nil {
			return nil, err
		}
	}
	if b.right.DependsOn(v) {
		if dr, err = b.right.Diff(v); err != nil {
			return nil, err
		}
	}
	rule, ok := binaryDiff[b.op]
	if !ok {
		return nil, &NonDifferentiableError{Op: b.op}
	}
	return rule(b, v, dl, dr), nil
}
