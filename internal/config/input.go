package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a run configuration from a YAML or JSON file (by
// extension). Settings absent
// from the file keep their command line defaults. A relative benefits_csv
// path is resolved against the configuration file's directory.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	parse := ip.Parse
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		parse = ip.ParseJSON
	}
	config, err := parse(data)
	if err != nil {
		return nil, err
	}

	if config.BenefitsCSV != "" && !filepath.IsAbs(config.BenefitsCSV) {
		config.BenefitsCSV = filepath.Join(filepath.Dir(filename), config.BenefitsCSV)
	}
	return config, nil
}

// Parse decodes and validates YAML configuration bytes
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := domain.NewDefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ParseJSON decodes and validates JSON configuration bytes
func (ip *InputParser) ParseJSON(data []byte) (*domain.Configuration, error) {
	config := domain.NewDefaultConfiguration()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.StepMonths < 1 {
		return fmt.Errorf("%w: step months must be >= 1, got %d", domain.ErrInvalidParameter, config.StepMonths)
	}

	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	if err := ip.validateAges(&config.Ages); err != nil {
		return fmt.Errorf("ages validation failed: %w", err)
	}

	if len(config.Benefits) > 0 && config.BenefitsCSV != "" {
		return fmt.Errorf("%w: specify either benefits or benefits_csv, not both", domain.ErrInvalidParameter)
	}
	for age, monthly := range config.Benefits {
		if age < 0 {
			return fmt.Errorf("%w: benefit claim age cannot be negative, got %d", domain.ErrInvalidParameter, age)
		}
		if !monthly.IsPositive() {
			return fmt.Errorf("%w: monthly benefit at age %d must be positive", domain.ErrInvalidParameter, age)
		}
	}

	if len(config.Compare) != 0 && len(config.Compare) != 2 {
		return fmt.Errorf("%w: compare needs exactly two claim ages, got %d", domain.ErrInvalidParameter, len(config.Compare))
	}
	for i, pair := range config.BreakEvenPairs {
		if len(pair) != 2 {
			return fmt.Errorf("%w: break_even_pairs[%d] must name two claim ages, got %d", domain.ErrInvalidParameter, i, len(pair))
		}
	}

	return nil
}

// validateAssumptions validates the percent rates
func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	if a.COLAPercent.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: COLA cannot be negative", domain.ErrInvalidParameter)
	}
	if a.InterestPercent.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: interest cannot be negative", domain.ErrInvalidParameter)
	}
	if a.TaxPercent.LessThan(decimal.Zero) || a.TaxPercent.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: tax must be between 0%% and 100%% (exclusive)", domain.ErrInvalidParameter)
	}
	if a.DiscountPercent.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: discount cannot be negative", domain.ErrInvalidParameter)
	}
	return nil
}

// validateAges validates the evaluation age range
func (ip *InputParser) validateAges(ages *domain.AgeRange) error {
	if ages.Start != nil && *ages.Start < 0 {
		return fmt.Errorf("%w: start age cannot be negative", domain.ErrInvalidParameter)
	}
	if ages.Through <= 0 {
		return fmt.Errorf("%w: through age must be positive", domain.ErrInvalidParameter)
	}
	if ages.Max <= 0 {
		return fmt.Errorf("%w: max age must be positive", domain.ErrInvalidParameter)
	}
	if ages.Start != nil && ages.Through < *ages.Start {
		return fmt.Errorf("%w: through age %g is before start age %g", domain.ErrInvalidParameter, ages.Through, *ages.Start)
	}
	return nil
}

// ResolveBenefitTable returns the benefit table a configuration refers to:
// the CSV file, the inline rows, or the built-in table, in that order.
func (ip *InputParser) ResolveBenefitTable(config *domain.Configuration) (domain.BenefitTable, error) {
	if config.BenefitsCSV != "" {
		return LoadBenefitsCSV(config.BenefitsCSV)
	}
	if len(config.Benefits) > 0 {
		table := make(domain.BenefitTable, len(config.Benefits))
		for age, monthly := range config.Benefits {
			table[age] = monthly
		}
		return table, nil
	}
	return domain.DefaultBenefits(), nil
}
