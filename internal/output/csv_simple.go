package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/claim-calculator/internal/domain"
)

// CSVSummarizer implements the ranked summary CSV output (one row per claim age).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.RunResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Rank", "ClaimAge", "Monthly", "Total", "PresentValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, o := range results.Options {
		row := []string{
			intToString(i + 1),
			FormatClaimAge(o.Option.ClaimAge),
			o.Option.Monthly.StringFixed(2),
			o.Total.StringFixed(2),
			o.PresentValue.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
