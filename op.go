package symdiff

// Op tags every node variant. Composite behavior (evaluation,
// differentiation, rewriting, rendering) dispatches on the tag through
// static tables rather than type inspection.
type Op int

const (
	OpConstant Op = iota
	OpVariable

	// binary
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMin
	OpMax

	// unary
	OpSqrt
	OpExp
	OpLog
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
)

func (op Op) String() string {
	switch op {
	case OpConstant:
		return "const"
	case OpVariable:
		return "var"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpPow:
		return "pow"
	case OpMin:
		return "min"
	case OpMax:
		return "max"
	case OpSqrt:
		return "sqrt"
	case OpExp:
		return "exp"
	case OpLog:
		return "log"
	case OpSin:
		return "sin"
	case OpCos:
		return "cos"
	case OpTan:
		return "tan"
	case OpAsin:
		return "asin"
	case OpAcos:
		return "acos"
	case OpAtan:
		return "atan"
	}
	return "unknown"
}

func opFromName(name string) (Op, bool) {
	switch name {
	case "const":
		return OpConstant, true
	case "var":
		return OpVariable, true
	case "add":
		return OpAdd, true
	case "sub":
		return OpSub, true
	case "mul":
		return OpMul, true
	case "div":
		return OpDiv, true
	case "pow":
		return OpPow, true
	case "min":
		return OpMin, true
	case "max":
		return OpMax, true
	case "sqrt":
		return OpSqrt, true
	case "exp":
		return OpExp, true
	case "log":
		return OpLog, true
	case "sin":
		return OpSin, true
	case "cos":
		return OpCos, true
	case "tan":
		return OpTan, true
	case "asin":
		return OpAsin, true
	case "acos":
		return OpAcos, true
	case "atan":
		return OpAtan, true
	}
	return 0, false
}

// Arity reports how many children a node with this tag carries.
// Leaves have arity 0.
func (op Op) Arity() int {
	switch op {
	case OpConstant, OpVariable:
		return 0
	case OpAdd, OpSub, OpMul, OpDiv, OpPow, OpMin, OpMax:
		return 2
	default:
		return 1
	}
}

type precedence int

const (
	addPrec precedence = iota + 1
	mulPrec
	powPrec
	atomPrec
)

// precedence describes the strength of the glue holding a rendered
// expression together; parenthesization in Render keys off it.
func (op Op) precedence() precedence {
	switch op {
	case OpAdd, OpSub:
		return addPrec
	case OpMul, OpDiv:
		return mulPrec
	case OpPow:
		return powPrec
	default:
		// Leaves, function-call forms and min/max render atomically.
		return atomPrec
	}
}

// symbol is the infix spelling used by Render for the arithmetic tags.
func (op Op) symbol() string {
	switch op {
	case OpAdd:
		return " + "
	case OpSub:
		return " - "
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	}
	return ""
}

// inverseOf maps each invertible operator to its structural inverse.
// The simplifier cancels nested inverse pairs by tag comparison.
var inverseOf = map[Op]Op{
	OpSin:  OpAsin,
	OpAsin: OpSin,
	OpCos:  OpAcos,
	OpAcos: OpCos,
	OpTan:  OpAtan,
	OpAtan: OpTan,
	OpExp:  OpLog,
	OpLog:  OpExp,
}
