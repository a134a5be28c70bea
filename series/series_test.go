package series_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemrank/gemrank/series"
)

// TestNew_PreservesOrder verifies insertion order survives construction.
func TestNew_PreservesOrder(t *testing.T) {
	s, err := series.New([]string{"C", "A", "B"}, []float64{3, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "A", "B"}, s.Keys(), "key order must match input")
	assert.Equal(t, []float64{3, 1, 2}, s.Values(), "value order must match input")
}

// TestNew_DuplicateKey ensures duplicate keys are rejected with ErrDuplicateKey.
func TestNew_DuplicateKey(t *testing.T) {
	_, err := series.New([]string{"G1", "G2", "G1"}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, series.ErrDuplicateKey, "repeated key must error")
}

// TestNew_LengthMismatch ensures mismatched slices are rejected.
func TestNew_LengthMismatch(t *testing.T) {
	_, err := series.New([]string{"G1", "G2"}, []float64{1})
	assert.ErrorIs(t, err, series.ErrLengthMismatch)
}

// TestFromMap verifies map construction sorts keys for a deterministic order.
func TestFromMap(t *testing.T) {
	s := series.FromMap(map[string]float64{"G2": 2, "G10": 10, "G1": 1})

	assert.Equal(t, []string{"G1", "G10", "G2"}, s.Keys(), "keys must be sorted lexicographically")
	assert.Equal(t, []float64{1, 10, 2}, s.Values())
}

// TestGetOr covers present and absent keys.
func TestGetOr(t *testing.T) {
	s, err := series.New([]string{"G1"}, []float64{4})
	require.NoError(t, err)

	assert.Equal(t, 4.0, s.GetOr("G1", -1))
	assert.Equal(t, -1.0, s.GetOr("G9", -1), "absent key must yield fallback")
}

// TestSet_UpsertKeepsOrder verifies Set updates in place and appends new keys last.
func TestSet_UpsertKeepsOrder(t *testing.T) {
	s, err := series.New([]string{"A", "B"}, []float64{1, 2})
	require.NoError(t, err)

	s.Set("A", 10)
	s.Set("C", 3)

	assert.Equal(t, []string{"A", "B", "C"}, s.Keys())
	assert.Equal(t, []float64{10, 2, 3}, s.Values())
}

// TestDiv_AlignsByKey verifies element-wise division matches keys, not positions.
func TestDiv_AlignsByKey(t *testing.T) {
	comparison, err := series.New([]string{"A", "B"}, []float64{4, 9})
	require.NoError(t, err)
	// Divisor holds the same keys in reverse order.
	baseline, err := series.New([]string{"B", "A"}, []float64{3, 2})
	require.NoError(t, err)

	ratio, err := comparison.Div(baseline)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, ratio.Keys(), "result keeps receiver order")
	assert.Equal(t, []float64{2, 3}, ratio.Values())
}

// TestDiv_KeyMismatch ensures division across differing key sets fails.
func TestDiv_KeyMismatch(t *testing.T) {
	a, err := series.New([]string{"A", "B"}, []float64{1, 2})
	require.NoError(t, err)
	b, err := series.New([]string{"A", "X"}, []float64{1, 2})
	require.NoError(t, err)

	_, err = a.Div(b)
	assert.ErrorIs(t, err, series.ErrKeyMismatch)
}

// TestMeanSum_SkipNaN verifies aggregation ignores NaN entries.
func TestMeanSum_SkipNaN(t *testing.T) {
	s, err := series.New([]string{"A", "B", "C"}, []float64{2, math.NaN(), 4})
	require.NoError(t, err)

	assert.Equal(t, 6.0, s.Sum())
	assert.Equal(t, 3.0, s.Mean())
	assert.True(t, s.HasNaN())
}

// TestFillConst verifies NaN entries are replaced and others untouched.
func TestFillConst(t *testing.T) {
	s, err := series.New([]string{"R1", "R2"}, []float64{math.NaN(), 2})
	require.NoError(t, err)

	s.FillNaN(series.FillConst(1))

	assert.Equal(t, []float64{1, 2}, s.Values())
	assert.False(t, s.HasNaN())
}

// TestFillMean verifies NaN entries are replaced by the mean of the rest.
func TestFillMean(t *testing.T) {
	s, err := series.New([]string{"R1", "R2", "R3"}, []float64{2, math.NaN(), 4})
	require.NoError(t, err)

	s.FillNaN(series.FillMean())

	assert.Equal(t, []float64{2, 3, 4}, s.Values())
}

// TestZScore reproduces the standard-score fixture for 1..5
// (sample standard deviation, NaN-free input).
func TestZScore(t *testing.T) {
	s, err := series.New(
		[]string{"a", "b", "c", "d", "e"},
		[]float64{1, 2, 3, 4, 5},
	)
	require.NoError(t, err)

	z, err := s.ZScore()
	require.NoError(t, err)

	expected := []float64{-1.26491106, -0.63245553, 0, 0.63245553, 1.26491106}
	assert.InDeltaSlice(t, expected, z.Values(), 1e-8)
}

// TestScale verifies sum-normalization: x / sum(x).
func TestScale(t *testing.T) {
	s, err := series.New(
		[]string{"a", "b", "c", "d", "e"},
		[]float64{1, 2, 3, 4, 5},
	)
	require.NoError(t, err)

	scaled, err := s.Scale()
	require.NoError(t, err)

	expected := []float64{1.0 / 15, 2.0 / 15, 3.0 / 15, 4.0 / 15, 5.0 / 15}
	assert.InDeltaSlice(t, expected, scaled.Values(), 1e-12)
	assert.InDelta(t, 1.0, scaled.Sum(), 1e-12, "scaled series must sum to 1")
}

// TestL1Norm covers the norm and its empty-series error.
func TestL1Norm(t *testing.T) {
	s, err := series.New([]string{"a", "b"}, []float64{-2, 3})
	require.NoError(t, err)

	n, err := s.L1Norm()
	require.NoError(t, err)
	assert.Equal(t, 5.0, n)

	empty, err := series.New(nil, nil)
	require.NoError(t, err)
	_, err = empty.L1Norm()
	assert.ErrorIs(t, err, series.ErrEmptySeries, "empty series has no L1 norm")
}

// TestReplaceNonFinite zeroes NaN and ±Inf entries in place.
func TestReplaceNonFinite(t *testing.T) {
	s, err := series.New(
		[]string{"a", "b", "c", "d"},
		[]float64{math.NaN(), math.Inf(1), math.Inf(-1), 7},
	)
	require.NoError(t, err)

	s.ReplaceNonFinite()

	assert.Equal(t, []float64{0, 0, 0, 7}, s.Values())
}

// TestClone verifies deep copies do not share storage.
func TestClone(t *testing.T) {
	s, err := series.New([]string{"A"}, []float64{1})
	require.NoError(t, err)

	c := s.Clone()
	c.Set("A", 99)

	v, _ := s.Get("A")
	assert.Equal(t, 1.0, v, "mutating the clone must not touch the original")
}
