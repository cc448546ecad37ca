package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates a calculator run: one simulation per
// claiming option, ranking, and the requested break-even analyses.
type CalculationEngine struct {
	Debug  bool // Enable debug output for per-option results
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunOptions controls which optional outputs a run produces
type RunOptions struct {
	// IncludeSeries samples every option (or only the break-even pair ages,
	// when pairs are configured) from the start age to the max age.
	IncludeSeries bool
}

// Run evaluates every option in table under config and returns the ranked results
func (ce *CalculationEngine) Run(ctx context.Context, config *domain.Configuration, table domain.BenefitTable, opts RunOptions) (*domain.RunResult, error) {
	if config.StepMonths < 1 {
		return nil, fmt.Errorf("%w: step months must be >= 1, got %d", domain.ErrInvalidParameter, config.StepMonths)
	}
	params := config.Assumptions.Parameters()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	options := table.Options()
	if len(options) == 0 {
		return nil, fmt.Errorf("%w: benefit table has no rows", domain.ErrMalformedInput)
	}
	for _, pair := range config.BreakEvenPairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: break-even pair must name two claim ages, got %v", domain.ErrInvalidParameter, pair)
		}
	}

	startAge := options[0].ClaimAge
	if config.Ages.Start != nil {
		startAge = *config.Ages.Start
	}
	discount := config.Assumptions.DiscountAnnual()

	result := &domain.RunResult{
		StartAge:       startAge,
		ThroughAge:     config.Ages.Through,
		MaxAge:         config.Ages.Max,
		StepMonths:     config.StepMonths,
		Parameters:     params,
		DiscountAnnual: discount,
		Assumptions:    GenerateAssumptions(params, discount),
	}

	seriesAges := ce.seriesClaimAges(config, opts)
	results := make([]domain.OptionResult, 0, len(options))
	for _, opt := range options {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		or, err := ce.evaluateOption(opt, result, seriesAges)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate claim age %g: %w", opt.ClaimAge, err)
		}
		results = append(results, or)
	}
	result.Options = RankOptions(results)

	if len(config.Compare) > 0 {
		if len(config.Compare) != 2 {
			return nil, fmt.Errorf("%w: compare needs exactly two claim ages, got %v", domain.ErrInvalidParameter, config.Compare)
		}
		cmp, err := CompareClaimAges(table, config.Compare[0], config.Compare[1], startAge, config.Ages.Max, params)
		if err != nil {
			return nil, err
		}
		result.Comparison = cmp
	}

	result.BreakEvens = ce.breakEvenPoints(config.BreakEvenPairs, results)
	return result, nil
}

func (ce *CalculationEngine) evaluateOption(opt domain.Option, run *domain.RunResult, seriesAges map[int]bool) (domain.OptionResult, error) {
	// Yearly sampling is enough for the total; the final month is always recorded.
	totalCurve, err := Simulate(opt, run.StartAge, run.ThroughAge, 12, run.Parameters)
	if err != nil {
		return domain.OptionResult{}, err
	}
	or := domain.OptionResult{
		Option: opt,
		Label:  opt.Label(),
		Total:  TotalAt(totalCurve),
	}

	if run.DiscountAnnual.IsPositive() {
		pv, err := PresentValue(opt, run.StartAge, run.ThroughAge, run.Parameters, run.DiscountAnnual)
		if err != nil {
			return domain.OptionResult{}, err
		}
		or.PresentValue = pv
	}

	if seriesAges == nil || seriesAges[int(opt.ClaimAge)] {
		series, err := Simulate(opt, run.StartAge, run.MaxAge, run.StepMonths, run.Parameters)
		if err != nil {
			return domain.OptionResult{}, err
		}
		or.Series = series
	}

	if ce.Debug {
		ce.Logger.Debugf("claim %g: monthly=$%s total=$%s samples=%d",
			opt.ClaimAge, opt.Monthly.StringFixed(2), or.Total.StringFixed(2), or.Series.Len())
	}
	return or, nil
}

// seriesClaimAges returns the claim ages that need a sampled series. A nil
// map means every option; an empty map means none.
func (ce *CalculationEngine) seriesClaimAges(config *domain.Configuration, opts RunOptions) map[int]bool {
	if len(config.BreakEvenPairs) == 0 {
		if opts.IncludeSeries {
			return nil
		}
		return map[int]bool{}
	}
	ages := make(map[int]bool)
	for _, pair := range config.BreakEvenPairs {
		for _, age := range pair {
			ages[age] = true
		}
	}
	return ages
}

// breakEvenPoints intersects the series of each requested pair. Pairs naming
// a claim age absent from the table are reported as skipped rather than failing the run.
func (ce *CalculationEngine) breakEvenPoints(pairs [][]int, results []domain.OptionResult) []domain.BreakEvenPoint {
	if len(pairs) == 0 {
		return nil
	}
	byAge := make(map[int]domain.Curve, len(results))
	for _, r := range results {
		if r.Series.Len() > 0 && r.Option.ClaimAge == float64(int(r.Option.ClaimAge)) {
			byAge[int(r.Option.ClaimAge)] = r.Series
		}
	}

	points := make([]domain.BreakEvenPoint, 0, len(pairs))
	for _, pair := range pairs {
		p := domain.BreakEvenPoint{ClaimAgeA: pair[0], ClaimAgeB: pair[1]}
		curveA, okA := byAge[pair[0]]
		curveB, okB := byAge[pair[1]]
		if !okA || !okB {
			p.Skipped = fmt.Sprintf("skipping %d vs %d: missing age in benefit table", pair[0], pair[1])
			ce.Logger.Warnf("%s", p.Skipped)
			points = append(points, p)
			continue
		}
		minAge := float64(pair[0])
		if pair[1] > pair[0] {
			minAge = float64(pair[1])
		}
		p.Intersection = FindCurveCrossing(curveA, curveB, minAge)
		if p.Intersection == nil {
			ce.Logger.Infof("%d vs %d: no break-even up to age %g", pair[0], pair[1], curveA.Ages[len(curveA.Ages)-1])
		}
		points = append(points, p)
	}
	return points
}

// TotalsByClaimAge is a convenience view of a run's totals keyed by whole claim age
func TotalsByClaimAge(result *domain.RunResult) map[int]decimal.Decimal {
	out := make(map[int]decimal.Decimal, len(result.Options))
	for _, o := range result.Options {
		out[int(o.Option.ClaimAge)] = o.Total
	}
	return out
}
