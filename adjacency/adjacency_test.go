package adjacency_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/gemrank/gemrank/adjacency"
)

// dense builds a *mat.Dense from row slices.
func dense(rows [][]float64) *mat.Dense {
	m, r := len(rows), len(rows[0])
	out := mat.NewDense(m, r, nil)
	for i, row := range rows {
		out.SetRow(i, row)
	}
	return out
}

// assertMatClose compares a result matrix against expected rows entrywise.
func assertMatClose(t *testing.T, want [][]float64, got *mat.Dense, tol float64) {
	t.Helper()
	m, r := got.Dims()
	require.Equal(t, len(want), m, "row count")
	require.Equal(t, len(want[0]), r, "column count")
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], got.At(i, j), tol,
				"entry (%d,%d)", i, j)
		}
	}
}

// allPolicies pairs every policy with a name for table-driven runs.
func allPolicies() []struct {
	name   string
	policy adjacency.Transformer
} {
	return []struct {
		name   string
		policy adjacency.Transformer
	}{
		{"pure", adjacency.PureAdjacency{}},
		{"half", adjacency.HalfStoich{}},
		{"full", adjacency.FullStoich{}},
	}
}

// Canonical stoichiometric fixtures. All coefficients are ±1, so the three
// policies must agree on every one of them.
var (
	complexS = [][]float64{
		{-1, +1, -1, +1, -1, -1, +1, +1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{+1, -1, 0, 0, 0, 0, 0, 0, 0, +1, +1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, +1, -1, 0, 0, 0, 0, 0, -1, 0, +1, +1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, +1, 0, 0, 0, 0, 0, -1, -1, 0, -1, +1, 0, 0, 0},
		{0, 0, 0, 0, 0, +1, -1, 0, 0, 0, 0, 0, -1, +1, -1, -1, +1, +1},
		{0, 0, 0, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0, +1, -1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, +1, 0, 0, 0, 0, 0, 0, 0, 0, -1},
	}
	complexA = [][]float64{
		{0, 1. / 5, 1. / 5, 1. / 5, 1. / 5, 0, 1. / 5},
		{1, 0, 0, 0, 0, 0, 0},
		{1. / 2, 1. / 2, 0, 0, 0, 0, 0},
		{0, 1. / 3, 1. / 3, 0, 1. / 3, 0, 0},
		{1. / 4, 0, 1. / 4, 1. / 4, 0, 1. / 4, 0},
		{1. / 2, 0, 0, 0, 1. / 2, 0, 0},
		{0, 0, 0, 0, 1, 0, 0},
	}

	circularS = [][]float64{
		{-1, 0, 0, 0, 0, 1},
		{1, -1, 0, 0, 0, 0},
		{0, 1, -1, 0, 0, 0},
		{0, 0, 1, -1, 0, 0},
		{0, 0, 0, 1, -1, 0},
		{0, 0, 0, 0, 1, -1},
	}
	circularA = [][]float64{
		{0, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0},
	}

	linearS = [][]float64{
		{-1, 0, 0, 0, 0, 0},
		{1, -1, 0, 0, 0, 0},
		{0, 1, -1, 0, 0, 0},
		{0, 0, 1, -1, 0, 0},
		{0, 0, 0, 1, -1, 0},
		{0, 0, 0, 0, 1, 0},
	}
	linearA = [][]float64{
		{0, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0},
	}

	bidirS = [][]float64{
		{-1, +1, 0, 0, 0, 0},
		{+1, -1, -1, +1, 0, 0},
		{0, 0, +1, -1, -1, +1},
		{0, 0, 0, 0, +1, -1},
	}
	bidirA = [][]float64{
		{0, 1, 0, 0},
		{1. / 2, 0, 1. / 2, 0},
		{0, 1. / 2, 0, 1. / 2},
		{0, 0, 1, 0},
	}
)

// noExpr returns an all-ones expression vector of length r.
func noExpr(r int) []float64 {
	expr := make([]float64, r)
	for i := range expr {
		expr[i] = 1
	}
	return expr
}

// TestTransform_Fixtures checks every canonical fixture under every
// policy. With unit coefficients the policies are interchangeable.
func TestTransform_Fixtures(t *testing.T) {
	fixtures := []struct {
		name string
		s    [][]float64
		want [][]float64
	}{
		{"complex", complexS, complexA},
		{"circular", circularS, circularA},
		{"linear", linearS, linearA},
		{"bidirectional", bidirS, bidirA},
	}
	for _, fx := range fixtures {
		for _, p := range allPolicies() {
			t.Run(fx.name+"/"+p.name, func(t *testing.T) {
				r := len(fx.s[0])
				got, err := p.policy.Transform(dense(fx.s), make([]bool, r), noExpr(r))
				require.NoError(t, err)
				assertMatClose(t, fx.want, got, 1e-9)
			})
		}
	}
}

// TestTransform_ReversibleExpansion verifies that a 3-reaction chain with
// all reactions reversible yields the same adjacency as the explicit
// 6-column bidirectional fixture.
func TestTransform_ReversibleExpansion(t *testing.T) {
	s := [][]float64{
		{-1, 0, 0},
		{1, -1, 0},
		{0, 1, -1},
		{0, 0, 1},
	}
	for _, p := range allPolicies() {
		t.Run(p.name, func(t *testing.T) {
			got, err := p.policy.Transform(dense(s), []bool{true, true, true}, noExpr(3))
			require.NoError(t, err)
			assertMatClose(t, bidirA, got, 1e-9)
		})
	}
}

// TestTransform_ExpressionWeighting checks that outgoing edge weights
// follow the expression scores of the consuming reactions: with R1 (→B)
// at 3.0 and R2 (→C) at 1.0, A splits 3:1 under pure and half. Full
// weighs the scaled magnitude on both sides, so the split becomes 9:1.
func TestTransform_ExpressionWeighting(t *testing.T) {
	s := [][]float64{
		{-1, -1},
		{1, 0},
		{0, 1},
	}
	expr := []float64{3, 1}

	for _, p := range allPolicies() {
		want := [][]float64{{0, 0.75, 0.25}, {0, 0, 0}, {0, 0, 0}}
		if p.name == "full" {
			// |−3|·3 vs |−1|·1: the magnitude policy squares the weighting.
			want = [][]float64{{0, 0.9, 0.1}, {0, 0, 0}, {0, 0, 0}}
		}
		t.Run(p.name, func(t *testing.T) {
			got, err := p.policy.Transform(dense(s), make([]bool, 2), expr)
			require.NoError(t, err)
			assertMatClose(t, want, got, 1e-9)
		})
	}
}

// TestTransform_SilentReaction verifies that an expression score of zero
// removes a reaction's edges entirely: its scaled column falls inside the
// split threshold.
func TestTransform_SilentReaction(t *testing.T) {
	s := [][]float64{
		{-1, -1},
		{1, 0},
		{0, 1},
	}
	got, err := adjacency.PureAdjacency{}.Transform(dense(s), make([]bool, 2), []float64{0, 1})
	require.NoError(t, err)

	want := [][]float64{{0, 0, 1}, {0, 0, 0}, {0, 0, 0}}
	assertMatClose(t, want, got, 1e-9)
}

// TestTransform_PolicyMagnitudes pins down how the three policies treat
// non-unit coefficients: pure ignores them, half honors producer
// magnitudes only, full honors both sides.
func TestTransform_PolicyMagnitudes(t *testing.T) {
	// R1: A → 2B, R2: A → C. Producer magnitude differs.
	producer := [][]float64{
		{-1, -1},
		{2, 0},
		{0, 1},
	}
	// R1: 2A → B, R2: A → C. Consumer magnitude differs.
	consumer := [][]float64{
		{-2, -1},
		{1, 0},
		{0, 1},
	}
	even := [][]float64{{0, 0.5, 0.5}, {0, 0, 0}, {0, 0, 0}}
	weighted := [][]float64{{0, 2. / 3, 1. / 3}, {0, 0, 0}, {0, 0, 0}}

	cases := []struct {
		name   string
		policy adjacency.Transformer
		s      [][]float64
		want   [][]float64
	}{
		{"pure ignores producer magnitude", adjacency.PureAdjacency{}, producer, even},
		{"half honors producer magnitude", adjacency.HalfStoich{}, producer, weighted},
		{"full honors producer magnitude", adjacency.FullStoich{}, producer, weighted},
		{"pure ignores consumer magnitude", adjacency.PureAdjacency{}, consumer, even},
		{"half ignores consumer magnitude", adjacency.HalfStoich{}, consumer, even},
		{"full honors consumer magnitude", adjacency.FullStoich{}, consumer, weighted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.policy.Transform(dense(tc.s), make([]bool, 2), noExpr(2))
			require.NoError(t, err)
			assertMatClose(t, tc.want, got, 1e-9)
		})
	}
}

// TestTransform_RowStochastic is the structural property every policy
// must satisfy: on arbitrary integer stoichiometries each adjacency row
// sums to 1 (active metabolite) or 0 (dead end).
func TestTransform_RowStochastic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const m, r = 12, 20

	s := mat.NewDense(m, r, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < r; j++ {
			s.Set(i, j, float64(rng.Intn(11)-5))
		}
	}
	reversible := make([]bool, r)
	for j := range reversible {
		reversible[j] = rng.Intn(2) == 0
	}

	for _, p := range allPolicies() {
		t.Run(p.name, func(t *testing.T) {
			adj, err := p.policy.Transform(s, reversible, noExpr(r))
			require.NoError(t, err)
			rows, _ := adj.Dims()
			for i := 0; i < rows; i++ {
				sum := mat.Sum(adj.RowView(i))
				if sum > 0.5 {
					assert.InDelta(t, 1.0, sum, 1e-5, "row %d must be stochastic", i)
				} else {
					assert.InDelta(t, 0.0, sum, 1e-5, "row %d must be all-zero", i)
				}
			}
		})
	}
}

// TestTransform_InputErrors covers the shared validation contract.
func TestTransform_InputErrors(t *testing.T) {
	s := dense([][]float64{{-1}, {1}})

	for _, p := range allPolicies() {
		t.Run(p.name, func(t *testing.T) {
			_, err := p.policy.Transform(nil, nil, nil)
			assert.ErrorIs(t, err, adjacency.ErrNilMatrix)

			_, err = p.policy.Transform(&mat.Dense{}, nil, nil)
			assert.ErrorIs(t, err, adjacency.ErrEmptyMatrix)

			_, err = p.policy.Transform(s, []bool{false, true}, []float64{1})
			assert.ErrorIs(t, err, adjacency.ErrReversibilityLength)

			_, err = p.policy.Transform(s, []bool{false}, []float64{1, 1})
			assert.ErrorIs(t, err, adjacency.ErrExpressionLength)
		})
	}
}

// TestMakeUnidirectional verifies the reversibility expansion: flipped
// copies of reversible columns are appended in order and the input stays
// untouched.
func TestMakeUnidirectional(t *testing.T) {
	s := dense([][]float64{
		{-1, 2},
		{1, -2},
	})

	out, err := adjacency.MakeUnidirectional(s, []bool{false, true})
	require.NoError(t, err)

	want := [][]float64{
		{-1, 2, -2},
		{1, -2, 2},
	}
	assertMatClose(t, want, out, 0)
	assert.Equal(t, 2.0, s.At(0, 1), "input matrix must not be mutated")

	copyOnly, err := adjacency.MakeUnidirectional(s, []bool{false, false})
	require.NoError(t, err)
	_, cols := copyOnly.Dims()
	assert.Equal(t, 2, cols, "no reversible reactions means a plain copy")

	_, err = adjacency.MakeUnidirectional(s, []bool{true})
	assert.ErrorIs(t, err, adjacency.ErrReversibilityLength)
}

// TestSplitPosNeg pins the split threshold: entries within ±SplitThreshold
// belong to neither part.
func TestSplitPosNeg(t *testing.T) {
	s := dense([][]float64{
		{2, -3, 5e-4, -5e-4, 1e-3},
	})

	pos, neg := adjacency.SplitPosNeg(s)

	assert.Equal(t, 2.0, pos.At(0, 0))
	assert.Equal(t, 0.0, pos.At(0, 1))
	assert.Equal(t, 0.0, pos.At(0, 2), "sub-threshold positive is noise")
	assert.Equal(t, 0.0, pos.At(0, 4), "threshold itself is excluded")

	assert.Equal(t, -3.0, neg.At(0, 1))
	assert.Equal(t, 0.0, neg.At(0, 0))
	assert.Equal(t, 0.0, neg.At(0, 3), "sub-threshold negative is noise")
}

// TestScaleColumns verifies per-column expression weighting.
func TestScaleColumns(t *testing.T) {
	s := dense([][]float64{
		{-1, 2},
		{1, -2},
	})

	adjacency.ScaleColumns(s, []float64{3, 0.5})

	want := [][]float64{
		{-3, 1},
		{3, -1},
	}
	assertMatClose(t, want, s, 0)
}
