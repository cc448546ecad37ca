package domain

import (
	"fmt"
	"sort"
	"strings"

	money "github.com/rpgo/claim-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Option is one candidate claiming strategy: start benefits at ClaimAge and
// receive Monthly (before COLA and tax) from then on.
type Option struct {
	ClaimAge float64         `json:"claim_age" yaml:"claim_age"`
	Monthly  decimal.Decimal `json:"monthly" yaml:"monthly"`
}

// Validate checks the option's preconditions
func (o Option) Validate() error {
	if o.ClaimAge < 0 {
		return fmt.Errorf("%w: claim age must be non-negative, got %g", ErrInvalidParameter, o.ClaimAge)
	}
	if !o.Monthly.IsPositive() {
		return fmt.Errorf("%w: monthly amount must be positive, got %s", ErrInvalidParameter, o.Monthly.String())
	}
	return nil
}

// Label returns the display label used for series headers, e.g. "Claim 62 ($2,632/mo)"
func (o Option) Label() string {
	return fmt.Sprintf("Claim %s ($%s/mo)", formatClaimAge(o.ClaimAge), money.NewMoneyFromDecimal(o.Monthly).Grouped())
}

// SimulationParameters holds the rates shared by every simulation in a run.
// All rates are decimals (0.02 for 2%).
type SimulationParameters struct {
	COLAAnnual     decimal.Decimal `json:"cola_annual" yaml:"cola_annual"`
	InterestAnnual decimal.Decimal `json:"interest_annual" yaml:"interest_annual"`
	TaxRate        decimal.Decimal `json:"tax_rate" yaml:"tax_rate"`
}

// Validate checks rate ranges: cola >= 0, interest >= 0, 0 <= tax < 1
func (p SimulationParameters) Validate() error {
	if p.COLAAnnual.IsNegative() {
		return fmt.Errorf("%w: COLA rate cannot be negative, got %s", ErrInvalidParameter, p.COLAAnnual.String())
	}
	if p.InterestAnnual.IsNegative() {
		return fmt.Errorf("%w: interest rate cannot be negative, got %s", ErrInvalidParameter, p.InterestAnnual.String())
	}
	if p.TaxRate.IsNegative() || p.TaxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: tax rate must be in [0,1), got %s", ErrInvalidParameter, p.TaxRate.String())
	}
	return nil
}

// Curve is the sampled balance history of one simulation. Ages and Balances
// are index aligned and Ages is strictly increasing.
type Curve struct {
	Ages     []float64         `json:"ages"`
	Balances []decimal.Decimal `json:"balances"`
}

// Len returns the number of samples
func (c Curve) Len() int {
	return len(c.Ages)
}

// Last returns the final balance, or zero for an empty curve
func (c Curve) Last() decimal.Decimal {
	if len(c.Balances) == 0 {
		return decimal.Zero
	}
	return c.Balances[len(c.Balances)-1]
}

// At returns the balance recorded at exactly age (within a hundredth of a month).
func (c Curve) At(age float64) (decimal.Decimal, bool) {
	const tol = 1.0 / 1200.0
	for i, a := range c.Ages {
		if a-age < tol && age-a < tol {
			return c.Balances[i], true
		}
	}
	return decimal.Zero, false
}

// Intersection is a point where two curves meet
type Intersection struct {
	Age   float64         `json:"age"`
	Value decimal.Decimal `json:"value"`
}

// BenefitTable maps a whole claim age to the monthly benefit paid when claiming at that age
type BenefitTable map[int]decimal.Decimal

// Ages returns the table's claim ages in ascending order
func (bt BenefitTable) Ages() []int {
	ages := make([]int, 0, len(bt))
	for age := range bt {
		ages = append(ages, age)
	}
	sort.Ints(ages)
	return ages
}

// Options converts the table to options ordered by claim age
func (bt BenefitTable) Options() []Option {
	opts := make([]Option, 0, len(bt))
	for _, age := range bt.Ages() {
		opts = append(opts, Option{ClaimAge: float64(age), Monthly: bt[age]})
	}
	return opts
}

// Lookup returns the options for the requested claim ages, failing with
// ErrLookupFailure naming every age missing from the table.
func (bt BenefitTable) Lookup(ages ...int) ([]Option, error) {
	var missing []string
	opts := make([]Option, 0, len(ages))
	for _, age := range ages {
		monthly, ok := bt[age]
		if !ok {
			missing = append(missing, fmt.Sprintf("%d", age))
			continue
		}
		opts = append(opts, Option{ClaimAge: float64(age), Monthly: monthly})
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: claim age(s) %s not in benefit table", ErrLookupFailure, strings.Join(missing, ", "))
	}
	return opts, nil
}

// DefaultBenefits is the built-in monthly benefit table used when no table is supplied
func DefaultBenefits() BenefitTable {
	return BenefitTable{
		62: decimal.NewFromInt(2632),
		63: decimal.NewFromInt(2846),
		64: decimal.NewFromInt(3080),
		65: decimal.NewFromInt(3378),
		66: decimal.NewFromInt(3677),
		67: decimal.NewFromInt(3966),
		68: decimal.NewFromInt(4093),
		69: decimal.NewFromInt(4433),
		70: decimal.NewFromInt(4988),
	}
}

func formatClaimAge(age float64) string {
	if age == float64(int(age)) {
		return fmt.Sprintf("%d", int(age))
	}
	return fmt.Sprintf("%.2f", age)
}
