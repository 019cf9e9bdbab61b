package symdiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symgolab/symdiff"
)

func TestCompile_AgreesWithCall(t *testing.T) {
	x := symdiff.Var("compile_test_x")
	f := symdiff.Sqrt(symdiff.Add(
		symdiff.Add(symdiff.Pow(x, 2), symdiff.Mul(symdiff.Sin(x), 2)),
		symdiff.Mul(symdiff.Exp(x), 3),
	))

	prog, err := symdiff.Compile(f)
	require.NoError(t, err)

	for _, p := range []float64{0, 0.5, 1, 2.5} {
		binds := symdiff.Bindings{x.Name(): p}
		want, err := f.Call(binds)
		require.NoError(t, err)
		got, err := prog.Invoke(binds)
		require.NoError(t, err)
		assert.Equal(t, want, got, "at %v", p)
	}
}

func TestCompile_VarsInFirstSeenOrder(t *testing.T) {
	x := symdiff.Var("compile_test_x")
	y := symdiff.Var("compile_test_y")

	prog, err := symdiff.Compile(symdiff.Add(symdiff.Mul(y, x), x))
	require.NoError(t, err)

	vars := prog.Vars()
	require.Len(t, vars, 2)
	assert.Same(t, y, vars[0])
	assert.Same(t, x, vars[1])
}

func TestCompile_MissingBindingOnInvoke(t *testing.T) {
	x := symdiff.Var("compile_test_x")
	y := symdiff.Var("compile_test_y")

	prog, err := symdiff.Compile(symdiff.Add(x, y))
	require.NoError(t, err)

	_, err = prog.Invoke(symdiff.Bindings{x.Name(): 1})
	var missing *symdiff.MissingBindingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, y.Name(), missing.Name)
}

func TestCompile_DomainErrorAtInvoke(t *testing.T) {
	x := symdiff.Var("compile_test_x")

	prog, err := symdiff.Compile(symdiff.Div(1, x))
	require.NoError(t, err)

	_, err = prog.Invoke(symdiff.Bindings{x.Name(): 0})
	var domain *symdiff.EvaluationDomainError
	require.ErrorAs(t, err, &domain)

	got, err := prog.Invoke(symdiff.Bindings{x.Name(): 4})
	require.NoError(t, err)
	assert.Equal(t, 0.25, got)
}

func TestCompile_ClosedExpression(t *testing.T) {
	prog, err := symdiff.Compile(symdiff.Mul(symdiff.Two, symdiff.Pi))
	require.NoError(t, err)
	require.Empty(t, prog.Vars())

	got, err := prog.Invoke(nil)
	require.NoError(t, err)
	assert.InDelta(t, 6.283185307179586, got, 1e-15)
}

func TestCompile_RepeatedInvocation(t *testing.T) {
	x := symdiff.Var("compile_test_x")
	prog, err := symdiff.Compile(symdiff.Pow(x, 2))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		got, err := prog.Invoke(symdiff.Bindings{x.Name(): float64(i)})
		require.NoError(t, err)
		require.Equal(t, float64(i*i), got)
	}
}

func TestCompile_SourceFragment(t *testing.T) {
	x := symdiff.Var("compile_test_x")
	prog, err := symdiff.Compile(symdiff.Sqrt(symdiff.Add(symdiff.Pow(x, 2), 1)))
	require.NoError(t, err)

	assert.Equal(t, "math.Sqrt((math.Pow(compile_test_x, 2) + 1))", prog.Source())
}
