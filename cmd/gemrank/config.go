package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// runConfig mirrors the root command's inputs so a whole run can live in
// a YAML file. Explicit flags and arguments always win over the file.
type runConfig struct {
	Model            string `yaml:"model"`
	Expression       string `yaml:"expression"`
	ExpressionColumn string `yaml:"expression_column"`
	Baseline         string `yaml:"baseline"`
	BaselineColumn   string `yaml:"baseline_column"`
	GeneFill         string `yaml:"gene_fill"`
	Outfile          string `yaml:"outfile"`
	Logfile          string `yaml:"logfile"`
	Verbose          bool   `yaml:"verbose"`
	DropExchanges    bool   `yaml:"drop_exchanges"`
	Normalize        string `yaml:"normalize"`
}

// mergeConfig resolves the effective run configuration: start from the
// YAML file when --config is given, then overwrite every field whose flag
// or positional argument was set on the command line.
func mergeConfig(cmd *cobra.Command, args []string) (runConfig, error) {
	var cfg runConfig
	if flagConfig != "" {
		raw, err := os.ReadFile(flagConfig)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", flagConfig, err)
		}
	}

	if len(args) > 0 {
		cfg.Model = args[0]
	}
	if len(args) > 1 {
		cfg.Expression = args[1]
	}

	flags := cmd.Flags()
	if flags.Changed("expression-column") {
		cfg.ExpressionColumn = flagExpressionColumn
	}
	if flags.Changed("baseline") {
		cfg.Baseline = flagBaseline
	}
	if flags.Changed("baseline-column") {
		cfg.BaselineColumn = flagBaselineColumn
	}
	if flags.Changed("gene-fill") {
		cfg.GeneFill = flagGeneFill
	}
	if flags.Changed("outfile") || cfg.Outfile == "" {
		cfg.Outfile = flagOutfile
	}
	if flags.Changed("logfile") {
		cfg.Logfile = flagLogfile
	}
	if flags.Changed("verbose") {
		cfg.Verbose = flagVerbose
	}
	if flags.Changed("drop-exchanges") {
		cfg.DropExchanges = flagDropExchanges
	}
	if flags.Changed("normalize") || cfg.Normalize == "" {
		cfg.Normalize = flagNormalize
	}
	return cfg, nil
}
