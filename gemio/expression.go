package gemio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gemrank/gemrank/series"
)

// sniffDelimiter picks the separator that appears most often in the
// header line. Comma wins ties and stands in when no candidate appears.
func sniffDelimiter(header string) rune {
	best, bestCount := ',', 0
	for _, cand := range []rune{',', '\t', ';'} {
		if n := strings.Count(header, string(cand)); n > bestCount {
			best, bestCount = cand, n
		}
	}
	return best
}

// ReadExpression parses a gene expression table into a series keyed by
// gene ID.
//
// The file must end in .csv or .tsv; the actual cell separator (comma,
// tab or semicolon) is sniffed from the header line, so a semicolon
// "CSV" parses fine. The first column holds gene IDs. column names the
// value column to read; it may be empty only when the table has exactly
// one value column. Empty cells become NaN for the caller's fill policy
// to resolve.
func ReadExpression(path, column string) (*series.Series, error) {
	switch filepath.Ext(path) {
	case ".csv", ".tsv":
	default:
		return nil, fmt.Errorf("%w: %s", ErrBadFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gemio: reading expression: %w", err)
	}
	defer f.Close()

	buffered := bufio.NewReader(f)
	headerLine, err := buffered.ReadString('\n')
	if err != nil && headerLine == "" {
		return nil, fmt.Errorf("gemio: reading expression %s: %w", path, err)
	}

	delim := sniffDelimiter(headerLine)
	reader := csv.NewReader(strings.NewReader(headerLine))
	reader.Comma = delim
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("gemio: parsing expression %s: %w", path, err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrNoColumns, path)
	}

	idx := 1
	switch {
	case column == "" && len(header) > 2:
		return nil, fmt.Errorf("%w: %s has %d", ErrAmbiguousColumn, path, len(header)-1)
	case column != "":
		idx = -1
		for i, name := range header[1:] {
			if strings.TrimSpace(name) == column {
				idx = i + 1
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q in %s", ErrUnknownColumn, column, path)
		}
	}

	body := csv.NewReader(buffered)
	body.Comma = delim
	body.FieldsPerRecord = len(header)
	body.TrimLeadingSpace = true
	records, err := body.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("gemio: parsing expression %s: %w", path, err)
	}

	genes := make([]string, 0, len(records))
	values := make([]float64, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		gene := strings.TrimSpace(record[0])
		if _, dup := seen[gene]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGene, gene)
		}
		seen[gene] = struct{}{}

		cell := strings.TrimSpace(record[idx])
		v := math.NaN()
		if cell != "" {
			v, err = strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q for gene %q", ErrBadValue, cell, gene)
			}
		}
		genes = append(genes, gene)
		values = append(values, v)
	}
	return series.New(genes, values)
}

// AllOnes returns a series with the same gene IDs and every value 1.0.
// It is the baseline of last resort: ranking a condition against all-ones
// scores the condition's expression against flat topology weights.
func AllOnes(s *series.Series) *series.Series {
	out := s.Clone()
	for _, key := range out.Keys() {
		out.Set(key, 1)
	}
	return out
}
