package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/rpgo/claim-calculator/internal/domain"
)

// CSVSeriesExporter writes the sampled series: one row per age, one column
// per claim option. Ages carry four decimals and balances two.
type CSVSeriesExporter struct{}

func (c CSVSeriesExporter) Name() string { return "series-csv" }

func (c CSVSeriesExporter) Format(results *domain.RunResult) ([]byte, error) {
	series := results.SeriesOptions()
	if len(series) == 0 {
		return nil, fmt.Errorf("no series to export; run with series sampling enabled")
	}

	// All series share the age grid of the first one.
	grid := series[0].Series
	for _, s := range series[1:] {
		if s.Series.Len() != grid.Len() {
			return nil, fmt.Errorf("series %q has %d samples, expected %d", s.Label, s.Series.Len(), grid.Len())
		}
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"age"}
	for _, s := range series {
		header = append(header, s.Label)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, age := range grid.Ages {
		row := []string{FormatAge(age)}
		for _, s := range series {
			row = append(row, s.Series.Balances[i].StringFixed(2))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
