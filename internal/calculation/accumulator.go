package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/rpgo/claim-calculator/pkg/dateutil"
	money "github.com/rpgo/claim-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// balancePrecision bounds the fractional digits carried between months.
// Without it every compounding step would lengthen the decimal mantissa.
const balancePrecision = 12

// MonthlyRate converts an effective annual rate into the equivalent
// monthly compounding rate, (1+annual)^(1/12) - 1. Non-positive rates yield zero.
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	if !annual.IsPositive() {
		return decimal.Zero
	}
	a := annual.InexactFloat64()
	return decimal.NewFromFloat(math.Pow(1+a, 1.0/12.0) - 1)
}

// DiscountFactor returns the factor that discounts a cash flow received
// monthsFromStart months after the start back to the start, using monthly
// compounding of discountAnnual. Non-positive rates yield one.
func DiscountFactor(monthsFromStart int, discountAnnual decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if !discountAnnual.IsPositive() || monthsFromStart <= 0 {
		return one
	}
	growth := one.Add(MonthlyRate(discountAnnual)).Pow(decimal.NewFromInt(int64(monthsFromStart)))
	return one.DivRound(growth, 16)
}

// Simulate runs the month-by-month accumulation of option from startAge to
// throughAge (inclusive) and samples the balance every stepMonths months,
// always including the final month.
//
// Each month first grows the existing balance by one month of interest,
// then, once the claim month is reached, adds that month's payment net of tax.
// Sampling never changes the simulation itself, which always runs monthly.
func Simulate(option domain.Option, startAge, throughAge float64, stepMonths int, params domain.SimulationParameters) (domain.Curve, error) {
	if stepMonths < 1 {
		return domain.Curve{}, fmt.Errorf("%w: step months must be >= 1, got %d", domain.ErrInvalidParameter, stepMonths)
	}
	if err := option.Validate(); err != nil {
		return domain.Curve{}, err
	}
	if err := params.Validate(); err != nil {
		return domain.Curve{}, err
	}

	startMonth := dateutil.MonthIndex(startAge)
	endMonth := dateutil.MonthIndex(throughAge)
	claimMonth := dateutil.MonthIndex(option.ClaimAge)

	if endMonth < startMonth {
		return domain.Curve{
			Ages:     []float64{dateutil.AgeAtMonth(startMonth)},
			Balances: []decimal.Decimal{decimal.Zero},
		}, nil
	}

	schedule := NewPaymentSchedule(option.Monthly, params.COLAAnnual)
	growth := decimal.NewFromInt(1).Add(MonthlyRate(params.InterestAnnual))
	compounding := params.InterestAnnual.IsPositive()

	samples := (endMonth-startMonth)/stepMonths + 2
	curve := domain.Curve{
		Ages:     make([]float64, 0, samples),
		Balances: make([]decimal.Decimal, 0, samples),
	}

	balance := decimal.Zero
	for m := startMonth; m <= endMonth; m++ {
		if compounding {
			balance = balance.Mul(growth).Round(balancePrecision)
		}
		if m >= claimMonth {
			payment := money.NewMoneyFromDecimal(schedule.AmountAt(m - claimMonth))
			balance = balance.Add(payment.ApplyTaxRate(params.TaxRate).Decimal)
		}
		if (m-startMonth)%stepMonths == 0 || m == endMonth {
			curve.Ages = append(curve.Ages, dateutil.AgeAtMonth(m))
			curve.Balances = append(curve.Balances, balance)
		}
	}
	return curve, nil
}

// PresentValue discounts every after-tax payment received between startAge
// and throughAge back to startAge. Interest on reinvested payments is not
// included; this answers what the payment stream itself is worth today.
func PresentValue(option domain.Option, startAge, throughAge float64, params domain.SimulationParameters, discountAnnual decimal.Decimal) (decimal.Decimal, error) {
	if err := option.Validate(); err != nil {
		return decimal.Zero, err
	}
	if err := params.Validate(); err != nil {
		return decimal.Zero, err
	}
	if discountAnnual.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: discount rate cannot be negative, got %s", domain.ErrInvalidParameter, discountAnnual.String())
	}

	startMonth := dateutil.MonthIndex(startAge)
	endMonth := dateutil.MonthIndex(throughAge)
	claimMonth := dateutil.MonthIndex(option.ClaimAge)
	schedule := NewPaymentSchedule(option.Monthly, params.COLAAnnual)

	first := startMonth
	if claimMonth > first {
		first = claimMonth
	}

	one := decimal.NewFromInt(1)
	monthly := one.Add(MonthlyRate(discountAnnual))
	factor := DiscountFactor(first-startMonth, discountAnnual)

	pv := decimal.Zero
	for m := first; m <= endMonth; m++ {
		payment := money.NewMoneyFromDecimal(schedule.AmountAt(m - claimMonth)).ApplyTaxRate(params.TaxRate)
		pv = pv.Add(payment.Decimal.Mul(factor))
		factor = factor.DivRound(monthly, 16)
	}
	return pv, nil
}
