package gemio

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gemrank/gemrank/series"
)

// WriteResults writes a name-indexed score series to path, as CSV for a
// .csv suffix and TSV for .tsv. Any other suffix is rewritten to .csv
// first, with a warning rather than an error, so a mistyped output name
// still lands somewhere predictable. The path actually written is
// returned.
func WriteResults(path string, s *series.Series) (string, error) {
	ext := filepath.Ext(path)
	if ext != ".csv" && ext != ".tsv" {
		rewritten := strings.TrimSuffix(path, ext) + ".csv"
		slog.Warn("gemio: cannot handle output format, saving as CSV instead",
			"requested", path, "writing", rewritten)
		path, ext = rewritten, ".csv"
	}
	if _, err := os.Stat(path); err == nil {
		slog.Debug("gemio: overwriting existing results file", "path", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("gemio: writing results: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if ext == ".tsv" {
		w.Comma = '\t'
	}
	if err := w.Write([]string{"metabolite", "score"}); err != nil {
		return "", fmt.Errorf("gemio: writing results: %w", err)
	}
	for i := 0; i < s.Len(); i++ {
		name, score := s.At(i)
		record := []string{name, strconv.FormatFloat(score, 'g', -1, 64)}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("gemio: writing results: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("gemio: writing results: %w", err)
	}
	return path, f.Close()
}
