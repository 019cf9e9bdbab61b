package symdiff

import (
	"fmt"
	"math"
)

// Evaluation rules, keyed by operator tag. Domain violations are not
// checked ahead of time; they surface only when evaluation actually
// reaches the offending operation.

var binaryEval = map[Op]func(l, r float64) (float64, error){
	OpAdd: func(l, r float64) (float64, error) { return l + r, nil },
	OpSub: func(l, r float64) (float64, error) { return l - r, nil },
	OpMul: func(l, r float64) (float64, error) { return l * r, nil },
	OpDiv: func(l, r float64) (float64, error) {
		if r == 0 {
			return 0, &EvaluationDomainError{Op: OpDiv, Reason: "division by zero"}
		}
		return l / r, nil
	},
	OpPow: func(l, r float64) (float64, error) {
		// A negative power of zero is a division by zero in disguise;
		// math.Pow reports it as +Inf rather than NaN.
		if l == 0 && r < 0 {
			return 0, &EvaluationDomainError{
				Op:     OpPow,
				Reason: fmt.Sprintf("%v^%v is undefined", l, r),
			}
		}
		v := math.Pow(l, r)
		if math.IsNaN(v) {
			return 0, &EvaluationDomainError{
				Op:     OpPow,
				Reason: fmt.Sprintf("%v^%v is undefined", l, r),
			}
		}
		return v, nil
	},
	OpMin: func(l, r float64) (float64, error) { return math.Min(l, r), nil },
	OpMax: func(l, r float64) (float64, error) { return math.Max(l, r), nil },
}

var unaryEval = map[Op]func(x float64) (float64, error){
	OpSqrt: func(x float64) (float64, error) {
		if x < 0 {
			return 0, &EvaluationDomainError{
				Op:     OpSqrt,
				Reason: fmt.Sprintf("square root of negative number %v", x),
			}
		}
		return math.Sqrt(x), nil
	},
	OpExp: func(x float64) (float64, error) { return math.Exp(x), nil },
	OpLog: func(x float64) (float64, error) {
		if x <= 0 {
			return 0, &EvaluationDomainError{
				Op:     OpLog,
				Reason: fmt.Sprintf("logarithm of non-positive number %v", x),
			}
		}
		return math.Log(x), nil
	},
	OpSin: func(x float64) (float64, error) { return math.Sin(x), nil },
	OpCos: func(x float64) (float64, error) { return math.Cos(x), nil },
	OpTan: func(x float64) (float64, error) { return math.Tan(x), nil },
	OpAsin: func(x float64) (float64, error) {
		if x < -1 || x > 1 {
			return 0, &EvaluationDomainError{
				Op:     OpAsin,
				Reason: fmt.Sprintf("arcsine argument %v outside [-1, 1]", x),
			}
		}
		return math.Asin(x), nil
	},
	OpAcos: func(x float64) (float64, error) {
		if x < -1 || x > 1 {
			return 0, &EvaluationDomainError{
				Op:     OpAcos,
				Reason: fmt.Sprintf("arccosine argument %v outside [-1, 1]", x),
			}
		}
		return math.Acos(x), nil
	},
	OpAtan: func(x float64) (float64, error) { return math.Atan(x), nil },
}
