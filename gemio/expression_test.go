package gemio_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemrank/gemrank/gemio"
	"github.com/gemrank/gemrank/series"
)

// TestReadExpression_Comma parses a two-column CSV, the common case where
// no column name is needed.
func TestReadExpression_Comma(t *testing.T) {
	path := writeFile(t, "expr.csv",
		"gene,value\nG1,1.5\nG2,2.5\nG3,0\n")

	s, err := gemio.ReadExpression(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"G1", "G2", "G3"}, s.Keys())
	assert.InDeltaSlice(t, []float64{1.5, 2.5, 0}, s.Values(), 0)
}

// TestReadExpression_Tab parses a tab-separated table; the separator is
// sniffed from the header, not assumed from the suffix.
func TestReadExpression_Tab(t *testing.T) {
	path := writeFile(t, "expr.tsv",
		"gene\tvalue\nG1\t1\nG2\t2\n")

	s, err := gemio.ReadExpression(path, "")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, s.Values(), 0)
}

// TestReadExpression_SemicolonInCSV accepts the semicolon variant that
// spreadsheet exports in some locales produce under a .csv suffix.
func TestReadExpression_SemicolonInCSV(t *testing.T) {
	path := writeFile(t, "expr.csv",
		"gene;value\nG1;1\nG2;2\n")

	s, err := gemio.ReadExpression(path, "")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, s.Values(), 0)
}

// TestReadExpression_NamedColumn picks one condition out of a multi-column
// table by header name.
func TestReadExpression_NamedColumn(t *testing.T) {
	path := writeFile(t, "expr.csv",
		"gene,control,treated\nG1,1,10\nG2,2,20\n")

	s, err := gemio.ReadExpression(path, "treated")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{10, 20}, s.Values(), 0)

	s, err = gemio.ReadExpression(path, "control")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, s.Values(), 0)
}

// TestReadExpression_EmptyCellIsNaN verifies missing measurements come
// back as NaN for the caller's fill policy rather than silently zero.
func TestReadExpression_EmptyCellIsNaN(t *testing.T) {
	path := writeFile(t, "expr.csv",
		"gene,value\nG1,1\nG2,\nG3,3\n")

	s, err := gemio.ReadExpression(path, "")
	require.NoError(t, err)

	assert.True(t, s.HasNaN())
	v, ok := s.Get("G2")
	require.True(t, ok)
	assert.True(t, math.IsNaN(v))
}

// TestReadExpression_Errors covers suffix, column-selection and cell
// validation failures.
func TestReadExpression_Errors(t *testing.T) {
	_, err := gemio.ReadExpression(writeFile(t, "expr.xlsx", "gene,value\n"), "")
	assert.ErrorIs(t, err, gemio.ErrBadFormat)

	_, err = gemio.ReadExpression(writeFile(t, "one.csv", "gene\nG1\n"), "")
	assert.ErrorIs(t, err, gemio.ErrNoColumns)

	multi := writeFile(t, "multi.csv", "gene,a,b\nG1,1,2\n")
	_, err = gemio.ReadExpression(multi, "")
	assert.ErrorIs(t, err, gemio.ErrAmbiguousColumn)

	_, err = gemio.ReadExpression(multi, "ghost")
	assert.ErrorIs(t, err, gemio.ErrUnknownColumn)

	_, err = gemio.ReadExpression(writeFile(t, "dup.csv",
		"gene,value\nG1,1\nG1,2\n"), "")
	assert.ErrorIs(t, err, gemio.ErrDuplicateGene)

	_, err = gemio.ReadExpression(writeFile(t, "text.csv",
		"gene,value\nG1,high\n"), "")
	assert.ErrorIs(t, err, gemio.ErrBadValue)
}

// TestAllOnes flattens a series to the neutral baseline while keeping its
// gene IDs.
func TestAllOnes(t *testing.T) {
	s, err := series.New([]string{"G1", "G2"}, []float64{3.5, 0.25})
	require.NoError(t, err)

	ones := gemio.AllOnes(s)
	assert.Equal(t, []string{"G1", "G2"}, ones.Keys())
	assert.InDeltaSlice(t, []float64{1, 1}, ones.Values(), 0)

	// The input series is untouched.
	assert.InDeltaSlice(t, []float64{3.5, 0.25}, s.Values(), 0)
}
