package calculation

import (
	"sort"

	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TotalAt returns the balance at the end of a curve, which is the outcome
// used to rank options.
func TotalAt(curve domain.Curve) decimal.Decimal {
	return curve.Last()
}

// RankOptions orders results by Total, highest first. Equal totals keep
// their incoming order.
func RankOptions(results []domain.OptionResult) []domain.OptionResult {
	ranked := append([]domain.OptionResult(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Total.GreaterThan(ranked[j].Total) })
	return ranked
}

// GenerateAssumptions lists the non-default modeling assumptions of a run
func GenerateAssumptions(params domain.SimulationParameters, discountAnnual decimal.Decimal) []string {
	hundred := decimal.NewFromInt(100)
	var lines []string
	if params.COLAAnnual.IsPositive() {
		lines = append(lines, "COLA="+params.COLAAnnual.Mul(hundred).StringFixed(2)+"%/yr")
	}
	if params.InterestAnnual.IsPositive() {
		lines = append(lines, "Interest="+params.InterestAnnual.Mul(hundred).StringFixed(2)+"%/yr (monthly comp)")
	}
	if params.TaxRate.IsPositive() {
		lines = append(lines, "Tax="+params.TaxRate.Mul(hundred).StringFixed(2)+"% effective on benefits")
	}
	if discountAnnual.IsPositive() {
		lines = append(lines, "Discount="+discountAnnual.Mul(hundred).StringFixed(2)+"%/yr for present value")
	}
	return lines
}
