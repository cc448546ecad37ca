package calculation

import (
	"fmt"

	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Earliest and latest claim ages covered by ClaimMultipliers
const (
	BaseClaimAge = 62
	MaxClaimAge  = 70
)

// ClaimMultipliers are the benefit factors relative to the full retirement
// age amount (67) for each whole claim age.
var ClaimMultipliers = map[int]decimal.Decimal{
	62: decimal.NewFromFloat(0.7),
	63: decimal.NewFromFloat(0.75),
	64: decimal.NewFromFloat(0.8),
	65: decimal.NewFromFloat(0.8667),
	66: decimal.NewFromFloat(0.9333),
	67: decimal.NewFromFloat(1.0),
	68: decimal.NewFromFloat(1.08),
	69: decimal.NewFromFloat(1.16),
	70: decimal.NewFromFloat(1.24),
}

// BuildBenefitTableFromBase derives a full 62..70 benefit table from the
// monthly amount available at age 62. Each later claim age gets its
// multiplier applied to the implied full-age amount, plus the COLA steps
// accrued while waiting. Amounts are rounded to cents.
func BuildBenefitTableFromBase(baseMonthlyAt62, colaAnnual decimal.Decimal) (domain.BenefitTable, error) {
	if !baseMonthlyAt62.IsPositive() {
		return nil, fmt.Errorf("%w: base monthly amount must be positive, got %s", domain.ErrInvalidParameter, baseMonthlyAt62.String())
	}
	if colaAnnual.IsNegative() {
		return nil, fmt.Errorf("%w: COLA rate cannot be negative, got %s", domain.ErrInvalidParameter, colaAnnual.String())
	}

	fullAgeAmount := baseMonthlyAt62.Div(ClaimMultipliers[BaseClaimAge])
	growth := decimal.NewFromInt(1).Add(colaAnnual)

	table := make(domain.BenefitTable, len(ClaimMultipliers))
	for age := BaseClaimAge; age <= MaxClaimAge; age++ {
		cola := growth.Pow(decimal.NewFromInt(int64(age - BaseClaimAge)))
		table[age] = fullAgeAmount.Mul(ClaimMultipliers[age]).Mul(cola).Round(2)
	}
	return table, nil
}
