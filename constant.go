package symdiff

import (
	"math"
	"strconv"
)

// Constant is an immutable numeric leaf. Two constants are equal exactly
// when their values are equal.
type Constant struct {
	value float64
	name  string // non-empty for the named canonical singletons
}

// Shared singletons for well-known values. Simplification rules match
// against these by structural equality, which keeps elementary-function
// identities such as sin(pi) = 0 exact rather than float-fuzzy.
var (
	Zero   = &Constant{value: 0}
	One    = &Constant{value: 1}
	Two    = &Constant{value: 2}
	NegOne = &Constant{value: -1}
	Pi     = &Constant{value: math.Pi, name: "pi"}
	E      = &Constant{value: math.E, name: "e"}
	Inf    = &Constant{value: math.Inf(1), name: "inf"}
	NegInf = &Constant{value: math.Inf(-1), name: "-inf"}
)

var canonicalConstants = []*Constant{Zero, One, Two, Pi, E, Inf, NegInf, NegOne}

// Const is the canonicalization factory: it returns the shared singleton
// when v matches one of the well-known values and allocates a fresh
// constant otherwise.
func Const(v float64) *Constant {
	for _, c := range canonicalConstants {
		if c.value == v {
			return c
		}
	}
	return &Constant{value: v}
}

func canonicalByName(name string) (*Constant, bool) {
	for _, c := range canonicalConstants {
		if c.name != "" && c.name == name {
			return c, true
		}
	}
	return nil, false
}

// Value returns the stored number.
func (c *Constant) Value() float64 { return c.value }

func (c *Constant) Op() Op       { return OpConstant }
func (c *Constant) Args() []Node { return nil }

func (c *Constant) Diff(*Variable) (Node, error) { return Zero, nil }

func (c *Constant) Call(Bindings) (float64, error) { return c.value, nil }

func (c *Constant) DependsOn(*Variable) bool { return false }

func (c *Constant) FreeVariables() []*Variable { return nil }

// Equal treats NaN as equal to NaN so that structural equality stays
// reflexive for every constructible constant.
func (c *Constant) Equal(other Node) bool {
	o, ok := other.(*Constant)
	if !ok {
		return false
	}
	return o.value == c.value || (math.IsNaN(o.value) && math.IsNaN(c.value))
}

func (c *Constant) Render() string {
	if c.name != "" {
		return c.name
	}
	return formatFloat(c.value)
}

func (c *Constant) LaTeX() string {
	switch c {
	case Pi:
		return `\pi`
	case E:
		return "e"
	case Inf:
		return `\infty`
	case NegInf:
		return `-\infty`
	}
	return formatFloat(c.value)
}

func (c *Constant) Source() string {
	switch c {
	case Pi:
		return "math.Pi"
	case E:
		return "math.E"
	case Inf:
		return "math.Inf(1)"
	case NegInf:
		return "math.Inf(-1)"
	}
	return formatFloat(c.value)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
