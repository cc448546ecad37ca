package calculation

import (
	"fmt"

	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// crossingTolerance is the absolute difference below which two balances are treated as equal
var crossingTolerance = decimal.New(1, -9)

// FindCrossing finds the first point at or after minAge where curve a and
// curve b meet, given their values sampled on a shared ages grid.
//
// Leading samples where the curves are already equal are skipped, so a flat
// shared start is not reported. A sample within tolerance of equality is
// returned as is; a sign change between consecutive samples is linearly
// interpolated. Returns nil when the curves never meet within the samples,
// or when fewer than two samples remain at or after minAge.
func FindCrossing(ages []float64, a, b []decimal.Decimal, minAge float64) *domain.Intersection {
	n := len(ages)
	if len(a) < n {
		n = len(a)
	}
	if len(b) < n {
		n = len(b)
	}
	if n < 2 {
		return nil
	}

	start := 0
	for start < n && ages[start] < minAge {
		start++
	}
	if start >= n-1 {
		return nil
	}

	diff := func(i int) decimal.Decimal { return a[i].Sub(b[i]) }

	i := start
	for i < n && diff(i).Abs().LessThan(crossingTolerance) {
		i++
	}
	if i >= n {
		return nil
	}

	prev, prevDiff := i, diff(i)
	for cur := prev + 1; cur < n; cur++ {
		curDiff := diff(cur)

		if curDiff.Abs().LessThan(crossingTolerance) {
			return &domain.Intersection{Age: ages[cur], Value: a[cur]}
		}

		if prevDiff.Sign()*curDiff.Sign() < 0 {
			absPrev := prevDiff.Abs()
			t := absPrev.Div(absPrev.Add(curDiff.Abs()))
			age := ages[prev] + (ages[cur]-ages[prev])*t.InexactFloat64()
			value := a[prev].Add(a[cur].Sub(a[prev]).Mul(t))
			return &domain.Intersection{Age: age, Value: value}
		}

		prev, prevDiff = cur, curDiff
	}
	return nil
}

// FindCurveCrossing is FindCrossing for two curves sampled on the same grid.
// The age grid of a is used.
func FindCurveCrossing(a, b domain.Curve, minAge float64) *domain.Intersection {
	return FindCrossing(a.Ages, a.Balances, b.Balances, minAge)
}

// BreakEvenAge simulates both options at monthly resolution from startAge to
// maxAge and returns the first sampled age, at or after the later of the two
// claim ages, at which b's balance has caught up with a's. Returns nil when b
// never catches up within the range.
func BreakEvenAge(a, b domain.Option, startAge, maxAge float64, params domain.SimulationParameters) (*float64, error) {
	curveA, err := Simulate(a, startAge, maxAge, 1, params)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate claim at %g: %w", a.ClaimAge, err)
	}
	curveB, err := Simulate(b, startAge, maxAge, 1, params)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate claim at %g: %w", b.ClaimAge, err)
	}

	minAge := a.ClaimAge
	if b.ClaimAge > minAge {
		minAge = b.ClaimAge
	}
	for i, age := range curveA.Ages {
		if age < minAge {
			continue
		}
		if curveB.Balances[i].GreaterThanOrEqual(curveA.Balances[i]) {
			found := age
			return &found, nil
		}
	}
	return nil, nil
}

// CompareClaimAges looks up two claim ages in table and computes their
// monthly-resolution break-even age.
func CompareClaimAges(table domain.BenefitTable, ageA, ageB int, startAge, maxAge float64, params domain.SimulationParameters) (*domain.ClaimComparison, error) {
	opts, err := table.Lookup(ageA, ageB)
	if err != nil {
		return nil, fmt.Errorf("compare ages must be in benefits table: %w", err)
	}
	be, err := BreakEvenAge(opts[0], opts[1], startAge, maxAge, params)
	if err != nil {
		return nil, err
	}
	return &domain.ClaimComparison{
		ClaimAgeA:    ageA,
		ClaimAgeB:    ageB,
		BreakEvenAge: be,
		SearchedTo:   maxAge,
	}, nil
}
