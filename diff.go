package symdiff

// Differentiation rules, keyed by operator tag. Each rule receives the
// already-computed child partials (Zero when that child does not depend
// on the differentiation variable) and combines them with its own
// calculus identity. Min and max carry no rule; their Diff reports
// *NonDifferentiableError.

var binaryDiff = map[Op]func(b *binary, v *Variable, dl, dr Node) Node{
	OpAdd: func(b *binary, v *Variable, dl, dr Node) Node {
		return Add(dl, dr)
	},
	OpSub: func(b *binary, v *Variable, dl, dr Node) Node {
		return Sub(dl, dr)
	},
	OpMul: func(b *binary, v *Variable, dl, dr Node) Node {
		return Add(Mul(dl, b.right), Mul(b.left, dr))
	},
	OpDiv: func(b *binary, v *Variable, dl, dr Node) Node {
		return Div(
			Sub(Mul(dl, b.right), Mul(b.left, dr)),
			Pow(b.right, Two),
		)
	},
	// Generalized power rule: plain g*f^(g-1)*f' when only the base
	// depends on v, the full logarithmic form otherwise.
	OpPow: func(b *binary, v *Variable, dl, dr Node) Node {
		if !b.right.DependsOn(v) {
			return Mul(Mul(b.right, Pow(b.left, Sub(b.right, One))), dl)
		}
		return Mul(
			Pow(b.left, b.right),
			Add(Mul(dr, Log(b.left)), Div(Mul(b.right, dl), b.left)),
		)
	},
}

var unaryDiff = map[Op]func(f, df Node) Node{
	OpSqrt: func(f, df Node) Node { return Div(df, Mul(Two, Sqrt(f))) },
	OpExp:  func(f, df Node) Node { return Mul(df, Exp(f)) },
	OpLog:  func(f, df Node) Node { return Div(df, f) },
	OpSin:  func(f, df Node) Node { return Mul(df, Cos(f)) },
	OpCos:  func(f, df Node) Node { return Mul(Mul(NegOne, df), Sin(f)) },
	OpTan:  func(f, df Node) Node { return Div(df, Pow(Cos(f), Two)) },
	OpAsin: func(f, df Node) Node { return Div(df, Sqrt(Sub(One, Pow(f, Two)))) },
	OpAcos: func(f, df Node) Node {
		return Mul(NegOne, Div(df, Sqrt(Sub(One, Pow(f, Two)))))
	},
	OpAtan: func(f, df Node) Node { return Div(df, Add(Pow(f, Two), One)) },
}
