package output

import (
	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best claim age.
type Recommendation struct {
	ClaimAge float64
	Label    string
	Total    decimal.Decimal
	// Margin over the second-ranked option
	MarginOverNext decimal.Decimal
	// Gain over claiming at the earliest age in the table, as a percentage
	PercentOverEarliest decimal.Decimal
}

// AnalyzeOptions picks the highest-total option of a run.
// Extracted from embedded console logic for testability.
func AnalyzeOptions(results *domain.RunResult) Recommendation {
	best, ok := results.Best()
	if !ok {
		return Recommendation{}
	}
	rec := Recommendation{ClaimAge: best.Option.ClaimAge, Label: best.Label, Total: best.Total}
	if len(results.Options) > 1 {
		rec.MarginOverNext = best.Total.Sub(results.Options[1].Total)
	}

	earliest := results.Options[0]
	for _, o := range results.Options[1:] {
		if o.Option.ClaimAge < earliest.Option.ClaimAge {
			earliest = o
		}
	}
	if !earliest.Total.IsZero() {
		rec.PercentOverEarliest = best.Total.Sub(earliest.Total).Div(earliest.Total).Mul(decimalHundred)
	}
	return rec
}

// totalLabel names the ranked quantity: a plain sum, or an invested balance when interest applies.
func totalLabel(results *domain.RunResult) string {
	if results.HasInterest() {
		return "Balance"
	}
	return "Total"
}
