package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/rpgo/claim-calculator/pkg/dateutil"
)

// ConsoleVerboseFormatter renders the summary plus a year-by-year table of every sampled series.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "verbose" }

func (c ConsoleVerboseFormatter) Format(results *domain.RunResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf, "CLAIM AGE BREAK-EVEN ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}

	writeSummaryTable(&buf, results)
	writeComparison(&buf, results)
	writeBreakEvens(&buf, results)

	rec := AnalyzeOptions(results)
	if rec.Label != "" && len(results.Options) > 1 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s leads the next option by %s and claiming at the earliest age by %s\n",
			rec.Label, FormatWholeCurrency(rec.MarginOverNext), FormatPercentage(rec.PercentOverEarliest))
	}

	series := results.SeriesOptions()
	if len(series) == 0 {
		return buf.Bytes(), nil
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "SERIES (every %d months, through age %.1f)\n", results.StepMonths, results.MaxAge)
	fmt.Fprintln(&buf, strings.Repeat("-", 50))
	fmt.Fprintf(&buf, "%-8s", "Age")
	for _, s := range series {
		fmt.Fprintf(&buf, " %14s", "Claim "+FormatClaimAge(s.Option.ClaimAge))
	}
	fmt.Fprintln(&buf)

	grid := series[0].Series
	for i, age := range grid.Ages {
		fmt.Fprintf(&buf, "%-8s", dateutil.FormatAge(age))
		for _, s := range series {
			v := "-"
			if i < s.Series.Len() {
				v = FormatWholeCurrency(s.Series.Balances[i])
			}
			fmt.Fprintf(&buf, " %14s", v)
		}
		fmt.Fprintln(&buf)
	}
	return buf.Bytes(), nil
}
