package output

import (
	"fmt"

	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists modeling conventions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Benefits are simulated month by month; interest accrues before each month's deposit",
	"COLA steps up once per full year since claiming",
	"Tax is a flat effective rate applied to every deposit",
}

// GenerateAssumptions creates the assumption lines for a run from its actual rates
func GenerateAssumptions(results *domain.RunResult) []string {
	p := results.Parameters
	lines := []string{
		fmt.Sprintf("COLA: %.2f%% annually", p.COLAAnnual.Mul(decimalHundred).InexactFloat64()),
		fmt.Sprintf("Reinvestment interest: %.2f%% annually (monthly compounding)", p.InterestAnnual.Mul(decimalHundred).InexactFloat64()),
		fmt.Sprintf("Effective tax on benefits: %.2f%%", p.TaxRate.Mul(decimalHundred).InexactFloat64()),
	}
	if results.DiscountAnnual.IsPositive() {
		lines = append(lines, fmt.Sprintf("Present value discount: %.2f%% annually", results.DiscountAnnual.Mul(decimalHundred).InexactFloat64()))
	}
	return append(lines, DefaultAssumptions...)
}

var decimalHundred = decimal.NewFromInt(100)
