package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/rpgo/claim-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report: the ranked table, break-even
// results and an SVG chart of the sampled series.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":     FormatWholeCurrency,
	"pct":      FormatPercentage,
	"claimAge": FormatClaimAge,
	"add":      func(i, j int) int { return i + j },
	"deref":    func(f *float64) float64 { return *f },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// Chart canvas geometry in SVG user units
const (
	chartWidth   = 800.0
	chartHeight  = 420.0
	chartPadding = 50.0
)

var chartColors = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"}

type chartLine struct {
	Label  string
	Color  string
	Points string
}

type chartMarker struct {
	X, Y  float64
	Title string
}

type chartData struct {
	Width, Height float64
	Lines         []chartLine
	Markers       []chartMarker
	MinAge        float64
	MaxAge        float64
	MaxValue      string
}

// buildChart projects the sampled series into SVG coordinates. Returns nil
// when the run carries no series.
func buildChart(results *domain.RunResult) *chartData {
	series := results.SeriesOptions()
	if len(series) == 0 {
		return nil
	}
	minAge, maxAge := series[0].Series.Ages[0], series[0].Series.Ages[series[0].Series.Len()-1]
	maxValue := 0.0
	for _, s := range series {
		if v := s.Series.Last().InexactFloat64(); v > maxValue {
			maxValue = v
		}
	}
	if maxValue <= 0 {
		maxValue = 1
	}
	span := maxAge - minAge
	if span <= 0 {
		span = 1
	}
	x := func(age float64) float64 { return chartPadding + (age-minAge)/span*(chartWidth-2*chartPadding) }
	y := func(v float64) float64 { return chartHeight - chartPadding - v/maxValue*(chartHeight-2*chartPadding) }

	chart := &chartData{Width: chartWidth, Height: chartHeight, MinAge: minAge, MaxAge: maxAge}
	chart.MaxValue = FormatWholeCurrency(series[0].Series.Last())
	for _, s := range series {
		if s.Series.Last().GreaterThan(series[0].Series.Last()) {
			chart.MaxValue = FormatWholeCurrency(s.Series.Last())
		}
	}
	for i, s := range series {
		var pts strings.Builder
		for j, age := range s.Series.Ages {
			if j > 0 {
				pts.WriteByte(' ')
			}
			fmt.Fprintf(&pts, "%.1f,%.1f", x(age), y(s.Series.Balances[j].InexactFloat64()))
		}
		chart.Lines = append(chart.Lines, chartLine{Label: s.Label, Color: chartColors[i%len(chartColors)], Points: pts.String()})
	}
	for _, be := range results.BreakEvens {
		if be.Intersection == nil {
			continue
		}
		chart.Markers = append(chart.Markers, chartMarker{
			X:     x(be.Intersection.Age),
			Y:     y(be.Intersection.Value.InexactFloat64()),
			Title: fmt.Sprintf("BE %d↔%d ~ %.1f", be.ClaimAgeA, be.ClaimAgeB, be.Intersection.Age),
		})
	}
	return chart
}

func (h HTMLFormatter) Format(results *domain.RunResult) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.RunResult
		Recommendation Recommendation
		Assumptions    []string
		TotalLabel     string
		Chart          *chartData
	}{results, AnalyzeOptions(results), GenerateAssumptions(results), totalLabel(results), buildChart(results)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
