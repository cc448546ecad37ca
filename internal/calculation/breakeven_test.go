package calculation

import (
	"testing"

	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decs(vals ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vals))
	for i, v := range vals {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

// B(t) = 100 + 2*(t-65) overtakes a flat A = 110 at exactly age 70
func linearCross(ages []float64) ([]decimal.Decimal, []decimal.Decimal) {
	a := make([]decimal.Decimal, len(ages))
	b := make([]decimal.Decimal, len(ages))
	for i, t := range ages {
		a[i] = decimal.NewFromInt(110)
		b[i] = decimal.NewFromFloat(100 + 2*(t-65))
	}
	return a, b
}

func TestFindCrossing_ExactSample(t *testing.T) {
	var ages []float64
	for age := 60.0; age <= 80; age++ {
		ages = append(ages, age)
	}
	a, b := linearCross(ages)

	res := FindCrossing(ages, a, b, 65)
	require.NotNil(t, res)
	assert.Equal(t, 70.0, res.Age)
	assert.True(t, res.Value.Equal(decimal.NewFromInt(110)))
}

func TestFindCrossing_Interpolated(t *testing.T) {
	ages := []float64{65, 68, 71, 74}
	a, b := linearCross(ages)

	res := FindCrossing(ages, a, b, 65)
	require.NotNil(t, res)
	assert.Greater(t, res.Age, 68.0)
	assert.Less(t, res.Age, 71.0)
	assert.InDelta(t, 70.0, res.Age, 1e-9)
	assert.InDelta(t, 110.0, res.Value.InexactFloat64(), 1e-9)
}

func TestFindCrossing_SkipsLeadingEqualRun(t *testing.T) {
	ages := []float64{60, 61, 62, 63, 64}
	a := decs(100, 100, 105, 110, 115)
	b := decs(100, 100, 103, 112, 120)

	res := FindCrossing(ages, a, b, 60)
	require.NotNil(t, res)
	assert.InDelta(t, 62.5, res.Age, 1e-12)
	assert.True(t, res.Value.Equal(decimal.NewFromFloat(107.5)), "got %s", res.Value)
}

func TestFindCrossing_EqualThenDivergingNeverCrosses(t *testing.T) {
	// Equal at 65, then B pulls ahead and stays ahead: the shared start is
	// skipped and no later sign change exists.
	ages := []float64{65, 66, 67, 68, 69, 70, 71}
	a := make([]decimal.Decimal, len(ages))
	b := make([]decimal.Decimal, len(ages))
	for i, t := range ages {
		a[i] = decimal.NewFromInt(100)
		b[i] = decimal.NewFromFloat(100 + 2*(t-65))
	}
	assert.Nil(t, FindCrossing(ages, a, b, 65))
	assert.Nil(t, FindCrossing(ages, a, b, 66))
}

func TestFindCrossing_EitherDirection(t *testing.T) {
	ages := []float64{1, 2, 3}
	res := FindCrossing(ages, decs(0, 1, 3), decs(2, 2, 2), 0)
	require.NotNil(t, res)
	assert.Equal(t, 2.5, res.Age)
}

func TestFindCrossing_NearZeroCountsAsExact(t *testing.T) {
	ages := []float64{70, 71, 72}
	a := decs(10, 5, 3)
	b := []decimal.Decimal{decimal.Zero, decimal.Zero, decimal.NewFromFloat(3).Sub(decimal.New(1, -10))}
	res := FindCrossing(ages, a, b, 70)
	require.NotNil(t, res)
	assert.Equal(t, 72.0, res.Age)
	assert.True(t, res.Value.Equal(decimal.NewFromInt(3)))
}

func TestFindCrossing_TooFewSamples(t *testing.T) {
	ages := []float64{60, 61, 62}
	a := decs(1, 2, 3)
	b := decs(3, 2, 1)

	assert.Nil(t, FindCrossing(nil, nil, nil, 0))
	assert.Nil(t, FindCrossing(ages[:1], a[:1], b[:1], 0))
	assert.Nil(t, FindCrossing(ages, a, b, 62))
	assert.Nil(t, FindCrossing(ages, a, b, 90))
}

func TestFindCrossing_AllEqual(t *testing.T) {
	ages := []float64{60, 61, 62}
	assert.Nil(t, FindCrossing(ages, decs(5, 6, 7), decs(5, 6, 7), 60))
}

func TestFindCrossing_MismatchedLengths(t *testing.T) {
	ages := []float64{1, 2, 3, 4}
	res := FindCrossing(ages, decs(2, 2, 2, 2), decs(0, 4), 0)
	require.NotNil(t, res)
	assert.Equal(t, 1.5, res.Age)
}

func scenarioTable() domain.BenefitTable {
	return domain.BenefitTable{62: decimal.NewFromInt(2632), 70: decimal.NewFromInt(4988)}
}

func TestClaim62Versus70(t *testing.T) {
	p := params(0.02, 0, 0)
	opts, err := scenarioTable().Lookup(62, 70)
	require.NoError(t, err)

	early, err := Simulate(opts[0], 62, 85, 12, p)
	require.NoError(t, err)
	late, err := Simulate(opts[1], 62, 85, 12, p)
	require.NoError(t, err)

	assert.True(t, TotalAt(late).GreaterThan(TotalAt(early)),
		"claim 70 total %s should exceed claim 62 total %s", TotalAt(late), TotalAt(early))

	cross := FindCurveCrossing(early, late, 70)
	require.NotNil(t, cross)
	assert.Greater(t, cross.Age, 70.0)
	assert.Less(t, cross.Age, 85.0)
}

func TestIdenticalOptionsNeverCross(t *testing.T) {
	p := params(0.02, 0.04, 0.1)
	a, err := Simulate(option(66, 3677), 62, 100, 12, p)
	require.NoError(t, err)
	b, err := Simulate(option(66, 3677), 62, 100, 12, p)
	require.NoError(t, err)
	assert.Nil(t, FindCurveCrossing(a, b, 62))
}

func TestBreakEvenAge(t *testing.T) {
	table := scenarioTable()
	p := params(0.02, 0, 0)
	opts, err := table.Lookup(62, 70)
	require.NoError(t, err)

	be, err := BreakEvenAge(opts[0], opts[1], 62, 100, p)
	require.NoError(t, err)
	require.NotNil(t, be)
	assert.Greater(t, *be, 70.0)
	assert.Less(t, *be, 85.0)

	// The monthly search and the interpolated crossing agree to within a month
	early, _ := Simulate(opts[0], 62, 100, 1, p)
	late, _ := Simulate(opts[1], 62, 100, 1, p)
	cross := FindCurveCrossing(early, late, 70)
	require.NotNil(t, cross)
	assert.InDelta(t, cross.Age, *be, 1.0/12.0+1e-9)
}

func TestBreakEvenAgeNoneWithinRange(t *testing.T) {
	p := params(0, 0, 0)
	be, err := BreakEvenAge(option(62, 2632), option(70, 4988), 62, 72, p)
	require.NoError(t, err)
	assert.Nil(t, be)
}

func TestCompareClaimAges(t *testing.T) {
	p := params(0.02, 0, 0)
	cmp, err := CompareClaimAges(scenarioTable(), 62, 70, 62, 100, p)
	require.NoError(t, err)
	require.NotNil(t, cmp.BreakEvenAge)
	assert.Equal(t, 62, cmp.ClaimAgeA)
	assert.Equal(t, 100.0, cmp.SearchedTo)

	_, err = CompareClaimAges(scenarioTable(), 62, 67, 62, 100, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLookupFailure)
	assert.Contains(t, err.Error(), "67")
}
