package gemio

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/gemrank/gemrank/gpr"
)

// cobraDocument is the subset of the COBRA JSON schema this package
// consumes. Unknown fields are ignored.
type cobraDocument struct {
	Metabolites []cobraMetabolite `json:"metabolites"`
	Reactions   []cobraReaction   `json:"reactions"`
}

type cobraMetabolite struct {
	ID string `json:"id"`
}

type cobraReaction struct {
	ID               string             `json:"id"`
	Metabolites      map[string]float64 `json:"metabolites"`
	LowerBound       float64            `json:"lower_bound"`
	UpperBound       float64            `json:"upper_bound"`
	GeneReactionRule string             `json:"gene_reaction_rule"`
}

// LoadJSON parses a COBRA JSON model file into a GEM.
//
// Coefficients come from each reaction's metabolites map (negative for
// consumption, positive for production). A reaction is reversible when
// its lower flux bound is negative. Gene lists are extracted from the
// gene_reaction_rule text; rules that fail to parse still contribute
// their identifiers, mirroring how downstream evaluation degrades.
func LoadJSON(path string) (*GEM, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gemio: reading model: %w", err)
	}
	var doc cobraDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("gemio: parsing model %s: %w", path, err)
	}
	if len(doc.Metabolites) == 0 || len(doc.Reactions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyModel, path)
	}

	rows := make(map[string]int, len(doc.Metabolites))
	gem := &GEM{
		Metabolites: make([]string, 0, len(doc.Metabolites)),
		Reactions:   make([]string, 0, len(doc.Reactions)),
		Reversible:  make([]bool, 0, len(doc.Reactions)),
		Rules:       make([]string, 0, len(doc.Reactions)),
		Genes:       make([][]string, 0, len(doc.Reactions)),
	}
	for _, met := range doc.Metabolites {
		if _, dup := rows[met.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMetabolite, met.ID)
		}
		rows[met.ID] = len(gem.Metabolites)
		gem.Metabolites = append(gem.Metabolites, met.ID)
	}

	gem.Stoich = mat.NewDense(len(doc.Metabolites), len(doc.Reactions), nil)
	cols := make(map[string]struct{}, len(doc.Reactions))
	for j, rxn := range doc.Reactions {
		if _, dup := cols[rxn.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateReaction, rxn.ID)
		}
		cols[rxn.ID] = struct{}{}
		gem.Reactions = append(gem.Reactions, rxn.ID)
		gem.Reversible = append(gem.Reversible, rxn.LowerBound < 0)
		gem.Rules = append(gem.Rules, rxn.GeneReactionRule)
		gem.Genes = append(gem.Genes, gpr.ExtractGenes(rxn.GeneReactionRule))
		for met, coeff := range rxn.Metabolites {
			i, ok := rows[met]
			if !ok {
				return nil, fmt.Errorf("%w: %q in reaction %q", ErrUnknownMetabolite, met, rxn.ID)
			}
			gem.Stoich.Set(i, j, coeff)
		}
	}
	return gem, nil
}
