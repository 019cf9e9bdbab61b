package symdiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symgolab/symdiff"
)

func TestEqual_ReflexiveAndSymmetric(t *testing.T) {
	x := symdiff.Var("node_test_x")
	y := symdiff.Var("node_test_y")
	exprs := []symdiff.Node{
		x,
		symdiff.Const(3),
		symdiff.Add(x, y),
		symdiff.Sin(symdiff.Mul(x, 2)),
		symdiff.Pow(symdiff.Add(x, 1), y),
	}
	for _, e := range exprs {
		assert.True(t, e.Equal(e), "reflexive: %s", e.Render())
	}
	a := symdiff.Add(x, symdiff.Const(3))
	b := symdiff.Add(x, symdiff.Const(3))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestEqual_OrderSensitive(t *testing.T) {
	x := symdiff.Var("node_test_x")
	y := symdiff.Var("node_test_y")

	// Commutativity is never used to establish equality.
	assert.False(t, symdiff.Add(x, y).Equal(symdiff.Add(y, x)))
	assert.False(t, symdiff.Mul(x, y).Equal(symdiff.Mul(y, x)))
	assert.False(t, symdiff.Add(x, y).Equal(symdiff.Mul(x, y)))
}

func TestConstructors_CoerceNumbers(t *testing.T) {
	x := symdiff.Var("node_test_x")

	e := symdiff.Add(x, 2)
	args := e.Args()
	require.Len(t, args, 2)
	require.Same(t, symdiff.Two, args[1])

	f := symdiff.Mul(1.5, x)
	require.True(t, f.Args()[0].Equal(symdiff.Const(1.5)))
}

func TestConstructors_RejectInvalidOperands(t *testing.T) {
	x := symdiff.Var("node_test_x")

	require.PanicsWithError(t,
		(&symdiff.InvalidOperandError{Value: "two"}).Error(),
		func() { symdiff.Add(x, "two") },
	)
	require.Panics(t, func() { symdiff.Sin(nil) })
}

func TestFreeVariables_FirstSeenOrder(t *testing.T) {
	x := symdiff.Var("node_test_x")
	y := symdiff.Var("node_test_y")
	z := symdiff.Var("node_test_z")

	e := symdiff.Add(symdiff.Mul(y, x), symdiff.Sub(symdiff.Sin(y), z))
	free := e.FreeVariables()
	require.Len(t, free, 3)
	assert.Same(t, y, free[0])
	assert.Same(t, x, free[1])
	assert.Same(t, z, free[2])
}

func TestDependsOn(t *testing.T) {
	x := symdiff.Var("node_test_x")
	y := symdiff.Var("node_test_y")

	e := symdiff.Sqrt(symdiff.Add(symdiff.Pow(x, 2), 1))
	assert.True(t, e.DependsOn(x))
	assert.False(t, e.DependsOn(y))
	assert.True(t, x.DependsOn(x))
	assert.False(t, x.DependsOn(y))
}

func TestRender(t *testing.T) {
	x := symdiff.Var("x")
	cases := []struct {
		expr symdiff.Node
		want string
	}{
		{symdiff.Add(x, 2), "x + 2"},
		{symdiff.Mul(symdiff.Add(x, 1), 2), "(x + 1)*2"},
		{symdiff.Pow(x, 2), "x^2"},
		{symdiff.Div(symdiff.Sin(x), x), "sin(x)/x"},
		{symdiff.Min(x, 2), "min(x, 2)"},
		{symdiff.Max(x, symdiff.NegInf), "max(x, -inf)"},
		{symdiff.Sub(x, symdiff.Sub(x, 1)), "x - (x - 1)"},
		{symdiff.Log(symdiff.E), "log(e)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.expr.Render())
	}
}

func TestSource(t *testing.T) {
	x := symdiff.Var("x")
	e := symdiff.Sqrt(symdiff.Add(symdiff.Pow(x, 2), symdiff.Mul(symdiff.Sin(x), 2)))
	assert.Equal(t, "math.Sqrt((math.Pow(x, 2) + (math.Sin(x) * 2)))", e.Source())
	assert.Equal(t, "math.Pi", symdiff.Pi.Source())
	assert.Equal(t, "math.Inf(1)", symdiff.Inf.Source())
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, symdiff.Version())
}
