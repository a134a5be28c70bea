package gemio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemrank/gemrank/gemio"
	"github.com/gemrank/gemrank/reporter"
)

// TestGEM_Model runs a loaded document end to end through the ranking
// pipeline.
func TestGEM_Model(t *testing.T) {
	gem, err := gemio.LoadJSON(writeFile(t, "mini.json", miniModelJSON))
	require.NoError(t, err)

	model, err := gem.Model()
	require.NoError(t, err)

	scores, err := model.Calculate()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, scores.Keys())
	assert.InDelta(t, 1.0, sum(scores.Values()), 1e-9)
}

func sum(vals []float64) float64 {
	var total float64
	for _, v := range vals {
		total += v
	}
	return total
}

// TestGEM_Ruleset collects per-reaction rules in column order.
func TestGEM_Ruleset(t *testing.T) {
	gem, err := gemio.LoadJSON(writeFile(t, "mini.json", miniModelJSON))
	require.NoError(t, err)

	rs, err := gem.Ruleset()
	require.NoError(t, err)

	assert.Equal(t, []string{"R1", "R2", "EX_A"}, rs.Reactions())
	rule, ok := rs.Rule("R1")
	require.True(t, ok)
	assert.Equal(t, "G1 and G2", rule)
	assert.Equal(t, []string{"G1", "G2"}, rs.Genes("R1"))
}

// TestIsExchange checks the boundary pseudo-reaction prefixes.
func TestIsExchange(t *testing.T) {
	assert.True(t, gemio.IsExchange("EX_glc__D_e"))
	assert.True(t, gemio.IsExchange("OF_biomass"))
	assert.False(t, gemio.IsExchange("R1"))
	assert.False(t, gemio.IsExchange("PFK"))
	assert.False(t, gemio.IsExchange("ex_lowercase"))
}

// TestGEM_WithoutExchanges drops exchange columns while keeping every
// metabolite row and the original document untouched.
func TestGEM_WithoutExchanges(t *testing.T) {
	gem, err := gemio.LoadJSON(writeFile(t, "mini.json", miniModelJSON))
	require.NoError(t, err)

	trimmed := gem.WithoutExchanges()

	assert.Equal(t, []string{"R1", "R2"}, trimmed.Reactions)
	assert.Equal(t, []string{"A", "B", "C"}, trimmed.Metabolites)
	assert.Equal(t, []bool{true, false}, trimmed.Reversible)
	assert.Equal(t, []string{"G1 and G2", "G3"}, trimmed.Rules)

	_, r := trimmed.Dims()
	assert.Equal(t, 2, r)
	assert.InDelta(t, -1.0, trimmed.Stoich.At(0, 0), 0)
	assert.InDelta(t, 2.0, trimmed.Stoich.At(2, 1), 0)

	// Source document keeps its exchange column.
	assert.Equal(t, []string{"R1", "R2", "EX_A"}, gem.Reactions)
}

// TestGEM_WithoutExchanges_AllDropped leaves a document whose matrix is
// gone; building a model from it fails cleanly instead of panicking.
func TestGEM_WithoutExchanges_AllDropped(t *testing.T) {
	gem, err := gemio.LoadJSON(writeFile(t, "exchanges.json", `{
	  "metabolites": [{"id": "A"}],
	  "reactions": [
	    {"id": "EX_A", "metabolites": {"A": -1.0}},
	    {"id": "OF_A", "metabolites": {"A": -1.0}}
	  ]
	}`))
	require.NoError(t, err)

	trimmed := gem.WithoutExchanges()
	assert.Empty(t, trimmed.Reactions)

	_, err = trimmed.Model()
	assert.ErrorIs(t, err, reporter.ErrNilMatrix)
}
