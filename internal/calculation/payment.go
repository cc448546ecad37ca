package calculation

import (
	"github.com/rpgo/claim-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// PaymentSchedule computes the nominal monthly payment for a benefit that
// steps up by COLAAnnual on each claim anniversary.
type PaymentSchedule struct {
	BaseMonthly decimal.Decimal
	COLAAnnual  decimal.Decimal
}

// NewPaymentSchedule creates a payment schedule
func NewPaymentSchedule(baseMonthly, colaAnnual decimal.Decimal) PaymentSchedule {
	return PaymentSchedule{BaseMonthly: baseMonthly, COLAAnnual: colaAnnual}
}

// AmountAt returns the payment for the month monthsSinceClaim months after
// benefits began. The first twelve months pay the base amount; each full
// year elapsed applies one more COLA step.
func (ps PaymentSchedule) AmountAt(monthsSinceClaim int) decimal.Decimal {
	if !ps.COLAAnnual.IsPositive() {
		return ps.BaseMonthly
	}
	years := dateutil.CompletedYears(monthsSinceClaim)
	if years == 0 {
		return ps.BaseMonthly
	}
	factor := decimal.NewFromInt(1).Add(ps.COLAAnnual).Pow(decimal.NewFromInt(int64(years)))
	return ps.BaseMonthly.Mul(factor)
}
