package symdiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symgolab/symdiff"
)

func TestSubs_CommutesWithEvaluation(t *testing.T) {
	x := symdiff.Var("subs_test_x")
	e := symdiff.Add(symdiff.Mul(x, x), symdiff.Sin(x))

	for _, c := range []float64{-1.5, 0, 0.75, 2} {
		replaced, err := symdiff.Subs(e, symdiff.Replace(x, c))
		require.NoError(t, err)

		got, err := replaced.Call(nil)
		require.NoError(t, err)
		want, err := e.Call(symdiff.Bindings{x.Name(): c})
		require.NoError(t, err)
		assert.Equal(t, want, got, "at %v", c)
	}
}

func TestSubs_ReplacesWholeSubtrees(t *testing.T) {
	x := symdiff.Var("subs_test_x")
	y := symdiff.Var("subs_test_y")

	e := symdiff.Add(symdiff.Sin(x), symdiff.Mul(symdiff.Sin(x), 2))
	replaced, err := symdiff.Subs(e, symdiff.Replace(symdiff.Sin(x), y))
	require.NoError(t, err)

	want := symdiff.Add(y, symdiff.Mul(y, 2))
	assert.True(t, replaced.Equal(want), "got %s", replaced.Render())
}

func TestSubs_MatchesByStructureNotIdentity(t *testing.T) {
	x := symdiff.Var("subs_test_x")

	// The key is a fresh tree, structurally equal to the target subtree.
	e := symdiff.Sqrt(symdiff.Add(symdiff.Pow(x, 2), 1))
	replaced, err := symdiff.Subs(e, symdiff.Replace(symdiff.Pow(x, 2), 9))
	require.NoError(t, err)

	got, err := replaced.Call(nil)
	require.NoError(t, err)
	assert.InDelta(t, 3.1622776601683795, got, 1e-12)
}

func TestSubs_NoMatchReturnsEqualTree(t *testing.T) {
	x := symdiff.Var("subs_test_x")
	y := symdiff.Var("subs_test_y")
	z := symdiff.Var("subs_test_z")

	e := symdiff.Div(symdiff.Exp(x), symdiff.Add(y, 1))
	replaced, err := symdiff.Subs(e, symdiff.Replace(z, 5))
	require.NoError(t, err)
	assert.True(t, replaced.Equal(e))
}

func TestSubs_AutoWrapsNumbers(t *testing.T) {
	x := symdiff.Var("subs_test_x")

	// Both the key and the replacement may be raw numbers.
	e := symdiff.Add(x, symdiff.Two)
	replaced, err := symdiff.Subs(e, symdiff.Replace(2, 10))
	require.NoError(t, err)

	got, err := replaced.Call(symdiff.Bindings{x.Name(): 1})
	require.NoError(t, err)
	assert.Equal(t, 11.0, got)
}

func TestSubs_OrderSensitiveMatching(t *testing.T) {
	x := symdiff.Var("subs_test_x")
	y := symdiff.Var("subs_test_y")

	// Add(x, y) does not match Add(y, x).
	e := symdiff.Add(y, x)
	replaced, err := symdiff.Subs(e, symdiff.Replace(symdiff.Add(x, y), 0))
	require.NoError(t, err)
	assert.True(t, replaced.Equal(e))
}

func TestSubs_InvalidValues(t *testing.T) {
	x := symdiff.Var("subs_test_x")

	_, err := symdiff.Subs(x, symdiff.Replace(x, "five"))
	var invalid *symdiff.InvalidSubstitutionError
	require.ErrorAs(t, err, &invalid)

	_, err = symdiff.Subs(x, symdiff.Replace([]int{1}, 5))
	require.ErrorAs(t, err, &invalid)
}

func TestSubs_RootMatch(t *testing.T) {
	x := symdiff.Var("subs_test_x")

	replaced, err := symdiff.Subs(symdiff.Sin(x), symdiff.Replace(symdiff.Sin(x), symdiff.One))
	require.NoError(t, err)
	require.Same(t, symdiff.One, replaced)
}
