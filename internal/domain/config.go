package domain

import "github.com/shopspring/decimal"

// Default run settings, matching the command line defaults
const (
	DefaultThroughAge = 85.0
	DefaultMaxAge     = 100.0
	DefaultStepMonths = 12
)

// DefaultCOLAPercent is the annual COLA assumed when none is configured
var DefaultCOLAPercent = decimal.NewFromInt(2)

// Configuration represents a complete calculator run loaded from YAML
type Configuration struct {
	Assumptions Assumptions `yaml:"assumptions" json:"assumptions"`
	Ages        AgeRange    `yaml:"ages" json:"ages"`
	StepMonths  int         `yaml:"step_months" json:"step_months"`

	// Benefit table: inline rows, or a CSV file with headers age,monthly.
	// When both are empty the built-in table is used.
	Benefits    map[int]decimal.Decimal `yaml:"benefits,omitempty" json:"benefits,omitempty"`
	BenefitsCSV string                  `yaml:"benefits_csv,omitempty" json:"benefits_csv,omitempty"`

	// Compare holds exactly two claim ages when a break-even comparison is wanted
	Compare []int `yaml:"compare,omitempty" json:"compare,omitempty"`
	// BreakEvenPairs lists claim-age pairs whose series intersections are reported
	BreakEvenPairs [][]int `yaml:"break_even_pairs,omitempty" json:"break_even_pairs,omitempty"`

	Output OutputSettings `yaml:"output" json:"output"`
}

// Assumptions are expressed as percents (2 means 2%), the way users type them
type Assumptions struct {
	COLAPercent     decimal.Decimal `yaml:"cola_percent" json:"cola_percent"`
	InterestPercent decimal.Decimal `yaml:"interest_percent" json:"interest_percent"`
	TaxPercent      decimal.Decimal `yaml:"tax_percent" json:"tax_percent"`
	DiscountPercent decimal.Decimal `yaml:"discount_percent" json:"discount_percent"`
}

// AgeRange bounds the evaluation. A nil Start means "earliest claim age in the table".
type AgeRange struct {
	Start   *float64 `yaml:"start,omitempty" json:"start,omitempty"`
	Through float64  `yaml:"through" json:"through"`
	Max     float64  `yaml:"max" json:"max"`
}

// OutputSettings selects how results are rendered
type OutputSettings struct {
	Format     string `yaml:"format,omitempty" json:"format,omitempty"`
	SeriesPath string `yaml:"series_path,omitempty" json:"series_path,omitempty"`
}

var hundred = decimal.NewFromInt(100)

// Parameters converts the percent assumptions into decimal simulation rates
func (a Assumptions) Parameters() SimulationParameters {
	return SimulationParameters{
		COLAAnnual:     a.COLAPercent.Div(hundred),
		InterestAnnual: a.InterestPercent.Div(hundred),
		TaxRate:        a.TaxPercent.Div(hundred),
	}
}

// DiscountAnnual returns the discount rate as a decimal
func (a Assumptions) DiscountAnnual() decimal.Decimal {
	return a.DiscountPercent.Div(hundred)
}

// NewDefaultConfiguration returns a configuration populated with the command line defaults
func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		Assumptions: Assumptions{COLAPercent: DefaultCOLAPercent},
		Ages:        AgeRange{Through: DefaultThroughAge, Max: DefaultMaxAge},
		StepMonths:  DefaultStepMonths,
		Output:      OutputSettings{Format: "console"},
	}
}
