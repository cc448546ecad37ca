package calculation

import (
	"bytes"
	"context"
	"testing"

	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculationEngine(t *testing.T) {
	ce := NewCalculationEngine()
	assert.NotNil(t, ce)
	assert.IsType(t, NopLogger{}, ce.Logger)

	ce.SetLogger(nil)
	assert.IsType(t, NopLogger{}, ce.Logger)
}

func TestRunDefaultTable(t *testing.T) {
	ce := NewCalculationEngine()
	cfg := domain.NewDefaultConfiguration()

	res, err := ce.Run(context.Background(), cfg, domain.DefaultBenefits(), RunOptions{})
	require.NoError(t, err)
	require.Len(t, res.Options, 9)
	assert.Equal(t, 62.0, res.StartAge)
	assert.Equal(t, 85.0, res.ThroughAge)

	for i := 1; i < len(res.Options); i++ {
		assert.True(t, res.Options[i-1].Total.GreaterThanOrEqual(res.Options[i].Total))
	}
	for _, o := range res.Options {
		assert.Equal(t, 0, o.Series.Len(), "series should not be sampled unless requested")
		assert.True(t, o.PresentValue.IsZero())
	}
	assert.Equal(t, []string{"COLA=2.00%/yr"}, res.Assumptions)
}

func TestRunTotalsMatchSimulation(t *testing.T) {
	ce := NewCalculationEngine()
	cfg := domain.NewDefaultConfiguration()
	cfg.Assumptions.InterestPercent = decimal.NewFromInt(4)
	cfg.Assumptions.TaxPercent = decimal.NewFromInt(12)

	table := scenarioTable()
	res, err := ce.Run(context.Background(), cfg, table, RunOptions{})
	require.NoError(t, err)

	curve, err := Simulate(domain.Option{ClaimAge: 70, Monthly: table[70]}, 62, 85, 1, cfg.Assumptions.Parameters())
	require.NoError(t, err)
	totals := TotalsByClaimAge(res)
	assert.True(t, totals[70].Equal(curve.Last()))
	assert.True(t, res.HasInterest())
}

func TestRunSeriesAndBreakEvenPairs(t *testing.T) {
	var logs bytes.Buffer
	ce := NewCalculationEngine()
	ce.SetLogger(NewWriterLogger(&logs, false))

	cfg := domain.NewDefaultConfiguration()
	cfg.BreakEvenPairs = [][]int{{62, 70}, {61, 70}}

	res, err := ce.Run(context.Background(), cfg, domain.DefaultBenefits(), RunOptions{IncludeSeries: true})
	require.NoError(t, err)

	series := res.SeriesOptions()
	require.Len(t, series, 2)
	assert.Equal(t, 62.0, series[0].Option.ClaimAge)
	assert.Equal(t, 70.0, series[1].Option.ClaimAge)
	assert.InDelta(t, 100.0, series[0].Series.Ages[series[0].Series.Len()-1], 1e-12)

	require.Len(t, res.BreakEvens, 2)
	require.NotNil(t, res.BreakEvens[0].Intersection)
	assert.Greater(t, res.BreakEvens[0].Intersection.Age, 70.0)
	assert.Less(t, res.BreakEvens[0].Intersection.Age, 85.0)
	assert.Nil(t, res.BreakEvens[1].Intersection)
	assert.Contains(t, res.BreakEvens[1].Skipped, "61 vs 70")
	assert.Contains(t, logs.String(), "WARN")
}

func TestRunAllSeries(t *testing.T) {
	ce := NewCalculationEngine()
	cfg := domain.NewDefaultConfiguration()
	cfg.StepMonths = 6

	res, err := ce.Run(context.Background(), cfg, domain.DefaultBenefits(), RunOptions{IncludeSeries: true})
	require.NoError(t, err)
	for _, o := range res.Options {
		// 62..100 at 6-month steps
		assert.Equal(t, 77, o.Series.Len())
	}
}

func TestRunCompare(t *testing.T) {
	ce := NewCalculationEngine()
	cfg := domain.NewDefaultConfiguration()
	cfg.Compare = []int{62, 70}

	res, err := ce.Run(context.Background(), cfg, domain.DefaultBenefits(), RunOptions{})
	require.NoError(t, err)
	require.NotNil(t, res.Comparison)
	require.NotNil(t, res.Comparison.BreakEvenAge)
	assert.InDelta(t, 80.67, *res.Comparison.BreakEvenAge, 0.01)

	cfg.Compare = []int{62, 71}
	_, err = ce.Run(context.Background(), cfg, domain.DefaultBenefits(), RunOptions{})
	assert.ErrorIs(t, err, domain.ErrLookupFailure)
}

func TestRunPresentValue(t *testing.T) {
	ce := NewCalculationEngine()
	cfg := domain.NewDefaultConfiguration()
	cfg.Assumptions.DiscountPercent = decimal.NewFromInt(3)

	res, err := ce.Run(context.Background(), cfg, scenarioTable(), RunOptions{})
	require.NoError(t, err)
	for _, o := range res.Options {
		assert.True(t, o.PresentValue.IsPositive())
		assert.True(t, o.PresentValue.LessThan(o.Total))
	}
}

func TestRunErrors(t *testing.T) {
	ce := NewCalculationEngine()
	ctx := context.Background()

	cfg := domain.NewDefaultConfiguration()
	cfg.StepMonths = 0
	_, err := ce.Run(ctx, cfg, domain.DefaultBenefits(), RunOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	cfg = domain.NewDefaultConfiguration()
	cfg.Assumptions.TaxPercent = decimal.NewFromInt(100)
	_, err = ce.Run(ctx, cfg, domain.DefaultBenefits(), RunOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	cfg = domain.NewDefaultConfiguration()
	_, err = ce.Run(ctx, cfg, domain.BenefitTable{}, RunOptions{})
	assert.ErrorIs(t, err, domain.ErrMalformedInput)

	cfg = domain.NewDefaultConfiguration()
	cfg.BreakEvenPairs = [][]int{{62}}
	_, err = ce.Run(ctx, cfg, domain.DefaultBenefits(), RunOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = ce.Run(cancelled, domain.NewDefaultConfiguration(), domain.DefaultBenefits(), RunOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRankOptionsStable(t *testing.T) {
	in := []domain.OptionResult{
		{Option: option(62, 1), Total: decimal.NewFromInt(10)},
		{Option: option(63, 1), Total: decimal.NewFromInt(20)},
		{Option: option(64, 1), Total: decimal.NewFromInt(10)},
	}
	out := RankOptions(in)
	assert.Equal(t, []float64{63, 62, 64}, []float64{out[0].Option.ClaimAge, out[1].Option.ClaimAge, out[2].Option.ClaimAge})
	assert.Equal(t, 62.0, in[0].Option.ClaimAge, "input must not be reordered")
}

func TestGenerateAssumptions(t *testing.T) {
	p := params(0.025, 0.05, 0.1)
	lines := GenerateAssumptions(p, decimal.NewFromFloat(0.03))
	assert.Equal(t, []string{
		"COLA=2.50%/yr",
		"Interest=5.00%/yr (monthly comp)",
		"Tax=10.00% effective on benefits",
		"Discount=3.00%/yr for present value",
	}, lines)
	assert.Empty(t, GenerateAssumptions(params(0, 0, 0), decimal.Zero))
}

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, false)
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "INFO  shown 2")

	buf.Reset()
	NewWriterLogger(&buf, true).Debugf("visible")
	assert.Contains(t, buf.String(), "DEBUG visible")
}
