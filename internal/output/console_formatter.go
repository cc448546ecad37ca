package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/claim-calculator/internal/domain"
	money "github.com/rpgo/claim-calculator/pkg/decimal"
)

// ConsoleFormatter renders the ranked claim-age table and any break-even results.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.RunResult) ([]byte, error) {
	var buf bytes.Buffer
	writeSummaryTable(&buf, results)
	writeComparison(&buf, results)
	writeBreakEvens(&buf, results)
	return buf.Bytes(), nil
}

func writeSummaryTable(w io.Writer, results *domain.RunResult) {
	label := totalLabel(results)
	fmt.Fprintf(w, "\n%s benefits from age %.1f through age %.1f\n", label, results.StartAge, results.ThroughAge)
	for _, a := range results.Assumptions {
		fmt.Fprintf(w, "Assumptions: %s\n", a)
	}

	withPV := results.DiscountAnnual.IsPositive()
	header := fmt.Sprintf("%9s  %12s  %20s", "Claim Age", "Monthly ($)", label+" thru age X ($)")
	if withPV {
		header += fmt.Sprintf("  %18s", "Present value ($)")
	}
	fmt.Fprintf(w, "\n%s\n", header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	for _, o := range results.Options {
		row := fmt.Sprintf("%9s  %12s  %20s",
			FormatClaimAge(o.Option.ClaimAge),
			money.NewMoneyFromDecimal(o.Option.Monthly).Grouped(),
			money.NewMoneyFromDecimal(o.Total).Grouped())
		if withPV {
			row += fmt.Sprintf("  %18s", money.NewMoneyFromDecimal(o.PresentValue).Grouped())
		}
		fmt.Fprintln(w, row)
	}

	if rec := AnalyzeOptions(results); rec.Label != "" {
		fmt.Fprintf(w, "\nBest by age %.1f: claim at %s (%s %s)\n\n",
			results.ThroughAge, FormatClaimAge(rec.ClaimAge), label, money.NewMoneyFromDecimal(rec.Total).Grouped())
	}
}

func writeComparison(w io.Writer, results *domain.RunResult) {
	cmp := results.Comparison
	if cmp == nil {
		return
	}
	if cmp.BreakEvenAge == nil {
		fmt.Fprintf(w, "No break-even found up to age %.1f between claim %d and %d.\n", cmp.SearchedTo, cmp.ClaimAgeA, cmp.ClaimAgeB)
		return
	}
	fmt.Fprintf(w, "Break-even age between claim %d and %d: %.2f\n", cmp.ClaimAgeA, cmp.ClaimAgeB, *cmp.BreakEvenAge)
}

func writeBreakEvens(w io.Writer, results *domain.RunResult) {
	if len(results.BreakEvens) == 0 {
		return
	}
	fmt.Fprintln(w, "\nBreak-even (intersection) points:")
	for _, be := range results.BreakEvens {
		switch {
		case be.Skipped != "":
			fmt.Fprintf(w, "  (%s)\n", be.Skipped)
		case be.Intersection == nil:
			fmt.Fprintf(w, "  %d vs %d: no break-even up to age %.1f\n", be.ClaimAgeA, be.ClaimAgeB, results.MaxAge)
		default:
			fmt.Fprintf(w, "  Claim %d vs Claim %d: %.2f (%s)\n", be.ClaimAgeA, be.ClaimAgeB, be.Intersection.Age, FormatWholeCurrency(be.Intersection.Value))
		}
	}
}
