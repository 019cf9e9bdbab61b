package symdiff

// Typesetting export: each node produces its typeset string from its
// children's typeset strings.

func (u *unary) LaTeX() string {
	arg := u.arg.LaTeX()
	switch u.op {
	case OpSqrt:
		return `\sqrt{` + arg + `}`
	case OpExp:
		return `\exp\left(` + arg + `\right)`
	case OpLog:
		return `\ln\left(` + arg + `\right)`
	case OpSin, OpCos, OpTan:
		return `\` + u.op.String() + `\left(` + arg + `\right)`
	case OpAsin:
		return `\arcsin\left(` + arg + `\right)`
	case OpAcos:
		return `\arccos\left(` + arg + `\right)`
	case OpAtan:
		return `\arctan\left(` + arg + `\right)`
	}
	return `\operatorname{` + u.op.String() + `}\left(` + arg + `\right)`
}

func (b *binary) LaTeX() string {
	left := b.left.LaTeX()
	right := b.right.LaTeX()
	switch b.op {
	case OpAdd:
		return left + " + " + right
	case OpSub:
		return left + " - " + wrapLaTeX(b.right, right, addPrec)
	case OpMul:
		return wrapLaTeX(b.left, left, addPrec) + ` \cdot ` + wrapLaTeX(b.right, right, addPrec)
	case OpDiv:
		return `\frac{` + left + `}{` + right + `}`
	case OpPow:
		return wrapLaTeX(b.left, left, powPrec-1) + `^{` + right + `}`
	case OpMin:
		return `\min\left(` + left + `, ` + right + `\right)`
	case OpMax:
		return `\max\left(` + left + `, ` + right + `\right)`
	}
	return ""
}

// wrapLaTeX parenthesizes child when its glue is no stronger than the
// surrounding context.
func wrapLaTeX(child Node, typeset string, context precedence) string {
	if child.Op().precedence() <= context {
		return `\left(` + typeset + `\right)`
	}
	return typeset
}
