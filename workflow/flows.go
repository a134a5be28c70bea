package workflow

import (
	"github.com/gemrank/gemrank/expression"
	"github.com/gemrank/gemrank/gemio"
	"github.com/gemrank/gemrank/gpr"
	"github.com/gemrank/gemrank/reporter"
	"github.com/gemrank/gemrank/series"
)

// AvgSingle ranks a single expression condition, integrated by averaging
// each reaction's gene values.
func AvgSingle(gem *gemio.GEM, data *series.Series, opts ...Option) (*series.Series, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	model, rules, err := assemble(gem, cfg)
	if err != nil {
		return nil, err
	}
	integ, err := expression.NewSingleAverage(data, rules, expression.WithLogger(cfg.log))
	if err != nil {
		return nil, err
	}
	if err := model.LoadExpression(integ); err != nil {
		return nil, err
	}
	return model.Calculate()
}

// AvgRatio ranks two conditions with averaging integration and returns
// comparison scores divided by baseline scores, metabolite by metabolite.
func AvgRatio(gem *gemio.GEM, baseline, comparison *series.Series, opts ...Option) (*series.Series, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	model, rules, err := assemble(gem, cfg)
	if err != nil {
		return nil, err
	}
	build := func(data *series.Series) (expression.Integration, error) {
		return expression.NewSingleAverage(data, rules, expression.WithLogger(cfg.log))
	}
	return ratio(model, build, baseline, comparison)
}

// Standard ranks two conditions with the AND/OR rule-aware integration
// (geometric means across AND groups) and returns comparison / baseline.
// Genes missing from either data set count as the configured gene fill,
// 1.0 unless overridden.
func Standard(gem *gemio.GEM, baseline, comparison *series.Series, opts ...Option) (*series.Series, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	model, rules, err := assemble(gem, cfg)
	if err != nil {
		return nil, err
	}
	build := func(data *series.Series) (expression.Integration, error) {
		return expression.NewGeometricAndAverage(data, rules,
			expression.WithGeneFill(cfg.geneFill),
			expression.WithLogger(cfg.log))
	}
	return ratio(model, build, baseline, comparison)
}

// assemble builds the model and rule set shared by every flow.
func assemble(gem *gemio.GEM, cfg config) (*reporter.Model, *gpr.Ruleset, error) {
	model, err := gem.Model(
		reporter.WithTransformer(cfg.transformer),
		reporter.WithRanker(cfg.ranker),
		reporter.WithLogger(cfg.log),
	)
	if err != nil {
		return nil, nil, err
	}
	rules, err := gem.Ruleset()
	if err != nil {
		return nil, nil, err
	}
	return model, rules, nil
}

// ratio runs the comparison condition, then the baseline, on the same
// model and divides the scores. Comparison first matches the established
// run order, so logs and intermediate states line up with prior runs.
func ratio(model *reporter.Model, build func(*series.Series) (expression.Integration, error),
	baseline, comparison *series.Series) (*series.Series, error) {

	integComparison, err := build(comparison)
	if err != nil {
		return nil, err
	}
	integBaseline, err := build(baseline)
	if err != nil {
		return nil, err
	}

	if err := model.LoadExpression(integComparison); err != nil {
		return nil, err
	}
	scoresComparison, err := model.Calculate()
	if err != nil {
		return nil, err
	}
	if err := model.LoadExpression(integBaseline); err != nil {
		return nil, err
	}
	scoresBaseline, err := model.Calculate()
	if err != nil {
		return nil, err
	}
	return scoresComparison.Div(scoresBaseline)
}
