package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// OptionResult holds everything computed for one claiming option in a run
type OptionResult struct {
	Option Option `json:"option"`
	Label  string `json:"label"`

	// Balance at the run's through age
	Total decimal.Decimal `json:"total"`
	// After-tax deposits through the through age discounted to the start age.
	// Zero when the run has no discount rate.
	PresentValue decimal.Decimal `json:"present_value"`

	// Series sampled from the start age to the max age; empty unless series were requested
	Series Curve `json:"series"`
}

// BreakEvenPoint is the intersection of two claim ages' series
type BreakEvenPoint struct {
	ClaimAgeA    int           `json:"claim_age_a"`
	ClaimAgeB    int           `json:"claim_age_b"`
	Intersection *Intersection `json:"intersection,omitempty"`
	// Skipped explains why the pair was not evaluated (missing claim age)
	Skipped string `json:"skipped,omitempty"`
}

// ClaimComparison is the monthly-resolution break-even between two claim ages
type ClaimComparison struct {
	ClaimAgeA    int      `json:"claim_age_a"`
	ClaimAgeB    int      `json:"claim_age_b"`
	BreakEvenAge *float64 `json:"break_even_age,omitempty"`
	SearchedTo   float64  `json:"searched_to"`
}

// RunResult is the full output of one calculator run, consumed by the formatters
type RunResult struct {
	StartAge       float64              `json:"start_age"`
	ThroughAge     float64              `json:"through_age"`
	MaxAge         float64              `json:"max_age"`
	StepMonths     int                  `json:"step_months"`
	Parameters     SimulationParameters `json:"parameters"`
	DiscountAnnual decimal.Decimal      `json:"discount_annual"`

	// Options ranked by Total, best first
	Options     []OptionResult   `json:"options"`
	Comparison  *ClaimComparison `json:"comparison,omitempty"`
	BreakEvens  []BreakEvenPoint `json:"break_evens,omitempty"`
	Assumptions []string         `json:"assumptions,omitempty"`
}

// Best returns the top-ranked option, if any
func (r *RunResult) Best() (OptionResult, bool) {
	if r == nil || len(r.Options) == 0 {
		return OptionResult{}, false
	}
	return r.Options[0], true
}

// HasInterest reports whether balances include reinvestment growth
func (r *RunResult) HasInterest() bool {
	return r.Parameters.InterestAnnual.IsPositive()
}

// SeriesOptions returns the options that carry a sampled series, in claim-age order
func (r *RunResult) SeriesOptions() []OptionResult {
	var out []OptionResult
	for _, o := range r.Options {
		if o.Series.Len() > 0 {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Option.ClaimAge < out[j].Option.ClaimAge })
	return out
}
