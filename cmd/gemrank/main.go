// Package main provides the gemrank CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gemrank/gemrank/gemio"
	"github.com/gemrank/gemrank/internal/prettylog"
	"github.com/gemrank/gemrank/modelstore"
	"github.com/gemrank/gemrank/series"
	"github.com/gemrank/gemrank/workflow"
)

// Version is the current gemrank CLI version.
var Version = "1.0.0"

var store *modelstore.Store

var (
	flagExpressionColumn string
	flagBaseline         string
	flagBaselineColumn   string
	flagGeneFill         string
	flagOutfile          string
	flagLogfile          string
	flagVerbose          bool
	flagConfig           string
	flagDropExchanges    bool
	flagNormalize        string
)

var rootCmd = &cobra.Command{
	Use:   "gemrank [modelfile] [expressionfile]",
	Short: "gemrank ranks metabolites of a genome-scale model by expression data",
	Long: `gemrank turns a genome-scale metabolic model and gene expression data
into per-metabolite scores: the stoichiometric matrix becomes a weighted
metabolite graph, expression values are integrated onto reactions through
their gene-product rules, and a personalized PageRank propagates the
weights to the metabolites.

The model file may be COBRA JSON (.json), a stoichiometric matrix (.csv),
or the name of a managed model (see 'gemrank models list'), which is
downloaded and cached on first use. With a baseline expression file the
scores are the comparison/baseline ratio per metabolite; without one the
baseline defaults to all ones.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(2),
	RunE:    runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := mergeConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg.Verbose, cfg.Logfile); err != nil {
		return err
	}
	if cfg.Model == "" {
		return fmt.Errorf("no model file given (argument or config)")
	}
	if cfg.Expression == "" {
		return fmt.Errorf("no expression file given (argument or config)")
	}

	gem, err := loadModel(cmd, cfg.Model)
	if err != nil {
		return err
	}
	if cfg.DropExchanges {
		before, _ := gem.Dims()
		gem = gem.WithoutExchanges()
		_, after := gem.Dims()
		slog.Debug("dropped exchange reactions", "kept", after, "metabolites", before)
	}

	comparison, err := gemio.ReadExpression(cfg.Expression, cfg.ExpressionColumn)
	if err != nil {
		return err
	}
	var baseline *series.Series
	if cfg.Baseline != "" {
		baseline, err = gemio.ReadExpression(cfg.Baseline, cfg.BaselineColumn)
		if err != nil {
			return err
		}
	} else {
		fmt.Println("Empty baseline expression. Defaulting to all ones.")
		baseline = gemio.AllOnes(comparison)
	}

	results, err := workflow.Standard(gem, baseline, comparison,
		workflow.WithGeneFill(parseGeneFill(cfg.GeneFill)))
	if err != nil {
		return err
	}
	results, err = normalize(results, cfg.Normalize)
	if err != nil {
		return err
	}

	written, err := gemio.WriteResults(cfg.Outfile, results)
	if err != nil {
		return err
	}
	fmt.Printf("Results written to %s\n", written)
	return nil
}

// loadModel resolves the model argument: managed names are fetched into
// the local store first, everything else must be a readable model file.
func loadModel(cmd *cobra.Command, model string) (*gemio.GEM, error) {
	path := model
	if modelstore.IsKnown(model) {
		fetched, err := store.Fetch(cmd.Context(), model)
		if err != nil {
			return nil, err
		}
		path = fetched
	}
	switch filepath.Ext(path) {
	case ".json":
		return gemio.LoadJSON(path)
	case ".csv":
		return gemio.LoadMatrixCSV(path)
	default:
		return nil, fmt.Errorf("%w: model %s (expected .json or .csv)", gemio.ErrBadFormat, path)
	}
}

// parseGeneFill mirrors the lenient contract for -g: anything that does
// not parse as a float, including an unset flag, falls back to 1.0.
func parseGeneFill(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		slog.Info("empty or invalid gene-fill value, defaulting to 1.0", "given", raw)
		return 1.0
	}
	return v
}

// normalize applies the requested post-processing to the score series.
func normalize(s *series.Series, mode string) (*series.Series, error) {
	switch mode {
	case "", "none":
		return s, nil
	case "scale":
		return s.Scale()
	case "zscore":
		return s.ZScore()
	default:
		return nil, fmt.Errorf("unknown normalization %q (expected none, scale or zscore)", mode)
	}
}

// setupLogging installs the process-wide logger: a colorized terminal
// handler on stderr, or a plain text handler when logging to a file.
func setupLogging(verbose bool, logfile string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := slog.HandlerOptions{Level: level}

	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening logfile: %w", err)
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &opts)))
		return nil
	}
	handler := prettylog.NewPrettyHandler(os.Stderr, prettylog.PrettyHandlerOptions{SlogOpts: opts})
	slog.SetDefault(slog.New(handler))
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&flagExpressionColumn, "expression-column", "e", "",
		"Name of the column containing the condition expression data")
	rootCmd.Flags().StringVarP(&flagBaseline, "baseline", "b", "",
		"File containing expression data for the baseline")
	rootCmd.Flags().StringVarP(&flagBaselineColumn, "baseline-column", "c", "",
		"Name of the column containing the baseline expression data")
	rootCmd.Flags().StringVarP(&flagGeneFill, "gene-fill", "g", "",
		"Value to fill in for missing expression values (default 1.0)")
	rootCmd.Flags().StringVarP(&flagOutfile, "outfile", "o", "./results.csv",
		"Write outputs to the specified file")
	rootCmd.Flags().StringVarP(&flagLogfile, "logfile", "l", "",
		"Write logs to the specified file")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"Use for more verbose output")
	rootCmd.Flags().StringVar(&flagConfig, "config", "",
		"Read run parameters from a YAML file (flags take precedence)")
	rootCmd.Flags().BoolVar(&flagDropExchanges, "drop-exchanges", false,
		"Remove exchange pseudo-reactions (EX_, OF_) before ranking")
	rootCmd.Flags().StringVar(&flagNormalize, "normalize", "none",
		"Post-process scores: none, scale (divide by sum) or zscore")

	rootCmd.AddCommand(modelsCmd)
	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsFetchCmd)
	modelsCmd.AddCommand(modelsWipeCmd)
}

func main() {
	// Optional .env next to the invocation, for GEMRANK_MODELS_DIR and
	// friends. Absence is not an error.
	_ = godotenv.Load()
	store = modelstore.New()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
