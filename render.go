package symdiff

// Render produces the canonical text form of an expression. The
// simplifier compares rendered forms to decide convergence, so rendering
// must be deterministic for structurally equal trees.

func (u *unary) Render() string {
	return u.op.String() + "(" + u.arg.Render() + ")"
}

func (b *binary) Render() string {
	switch b.op {
	case OpMin, OpMax:
		return b.op.String() + "(" + b.left.Render() + ", " + b.right.Render() + ")"
	}
	left := b.left.Render()
	right := b.right.Render()
	if b.left.Op().precedence() <= b.op.precedence() {
		left = "(" + left + ")"
	}
	if b.right.Op().precedence() <= b.op.precedence() {
		right = "(" + right + ")"
	}
	return left + b.op.symbol() + right
}

func (u *unary) Source() string {
	return unarySourceName(u.op) + "(" + u.arg.Source() + ")"
}

func (b *binary) Source() string {
	l := b.left.Source()
	r := b.right.Source()
	switch b.op {
	case OpAdd:
		return "(" + l + " + " + r + ")"
	case OpSub:
		return "(" + l + " - " + r + ")"
	case OpMul:
		return "(" + l + " * " + r + ")"
	case OpDiv:
		return "(" + l + " / " + r + ")"
	case OpPow:
		return "math.Pow(" + l + ", " + r + ")"
	case OpMin:
		return "math.Min(" + l + ", " + r + ")"
	case OpMax:
		return "math.Max(" + l + ", " + r + ")"
	}
	return ""
}

func unarySourceName(op Op) string {
	switch op {
	case OpSqrt:
		return "math.Sqrt"
	case OpExp:
		return "math.Exp"
	case OpLog:
		return "math.Log"
	case OpSin:
		return "math.Sin"
	case OpCos:
		return "math.Cos"
	case OpTan:
		return "math.Tan"
	case OpAsin:
		return "math.Asin"
	case OpAcos:
		return "math.Acos"
	case OpAtan:
		return "math.Atan"
	}
	return ""
}
