package gemio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// MatrixOption adjusts LoadMatrixCSV parsing.
type MatrixOption func(*matrixConfig)

type matrixConfig struct {
	comma      rune
	reversible []bool
}

// WithComma sets the cell separator (default ',').
func WithComma(r rune) MatrixOption {
	return func(c *matrixConfig) { c.comma = r }
}

// WithReversibilities supplies the per-reaction reversibility flags for a
// matrix file, which carries none itself. The default is all-false.
func WithReversibilities(reversible []bool) MatrixOption {
	return func(c *matrixConfig) { c.reversible = reversible }
}

// LoadMatrixCSV parses a bare stoichiometric matrix into a GEM: the header
// row holds reaction IDs, the first column metabolite IDs and the cells
// coefficients. Empty cells count as zero.
//
// Matrix files carry no gene-product rules, so Rules and Genes come back
// empty and reversibilities default to all-false unless supplied via
// WithReversibilities.
func LoadMatrixCSV(path string, opts ...MatrixOption) (*GEM, error) {
	cfg := matrixConfig{comma: ','}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gemio: reading model: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = cfg.comma
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("gemio: parsing model %s: %w", path, err)
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyModel, path)
	}

	header := records[0][1:] // cell (0,0) labels the metabolite column
	body := records[1:]

	gem := &GEM{
		Metabolites: make([]string, 0, len(body)),
		Reactions:   make([]string, 0, len(header)),
		Stoich:      mat.NewDense(len(body), len(header), nil),
		Rules:       make([]string, len(header)),
		Genes:       make([][]string, len(header)),
	}
	cols := make(map[string]struct{}, len(header))
	for _, rxn := range header {
		rxn = strings.TrimSpace(rxn)
		if _, dup := cols[rxn]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateReaction, rxn)
		}
		cols[rxn] = struct{}{}
		gem.Reactions = append(gem.Reactions, rxn)
	}

	rows := make(map[string]struct{}, len(body))
	for i, record := range body {
		met := strings.TrimSpace(record[0])
		if _, dup := rows[met]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMetabolite, met)
		}
		rows[met] = struct{}{}
		gem.Metabolites = append(gem.Metabolites, met)
		for j, cell := range record[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			coeff, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at row %q column %q",
					ErrBadCoefficient, cell, met, gem.Reactions[j])
			}
			gem.Stoich.Set(i, j, coeff)
		}
	}

	if cfg.reversible == nil {
		gem.Reversible = make([]bool, len(header))
	} else {
		if len(cfg.reversible) != len(header) {
			return nil, fmt.Errorf("%w: %d flags for %d reactions",
				ErrReversibilityCount, len(cfg.reversible), len(header))
		}
		gem.Reversible = append([]bool(nil), cfg.reversible...)
	}
	return gem, nil
}
