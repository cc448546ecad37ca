package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/claim-calculator/internal/calculation"
	"github.com/rpgo/claim-calculator/internal/config"
	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/rpgo/claim-calculator/internal/output"
)

// runOptions holds every flag value; only flags the user set override the configuration
type runOptions struct {
	configFile string
	csvFile    string
	base62     float64
	verbose    bool

	cola     float64
	interest float64
	tax      float64
	discount float64

	startAge   float64
	throughAge float64
	maxAge     float64
	stepMonths int

	compare    []int
	pairs      []string
	format     string
	outputFile string
	seriesOut  string
	saveConfig string
}

// NewRootCommand builds the claimcalc command tree writing results to stdout
// and log lines to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &runOptions{}
	root := &cobra.Command{
		Use:   "claimcalc",
		Short: "Compare cumulative benefits across claim ages and find break-even ages",
		Long: `claimcalc simulates a monthly benefit for every claim age in a benefit table,
with an annual COLA, a flat tax on each payment and optional reinvestment
interest, then ranks the claim ages by their cumulative value at a target age.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd, opts, stdout, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "YAML or JSON run configuration")
	pf.StringVar(&opts.csvFile, "csv", "", "CSV benefit table (headers: age,monthly)")
	pf.Float64Var(&opts.base62, "base-62", 0, "derive the benefit table from this monthly amount at age 62")
	pf.Float64Var(&opts.cola, "cola", domain.DefaultCOLAPercent.InexactFloat64(), "annual COLA percent (2.5 for 2.5%)")
	pf.Float64Var(&opts.interest, "interest", 0, "annual interest percent earned on invested benefits")
	pf.Float64Var(&opts.tax, "tax", 0, "effective tax percent on benefits")
	pf.Float64Var(&opts.discount, "discount", 0, "annual discount percent for a present value column")
	pf.Float64Var(&opts.startAge, "start-age", 0, "start age for evaluation (default: earliest claim age)")
	pf.Float64Var(&opts.maxAge, "max-age", domain.DefaultMaxAge, "last age of the series and break-even search")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	f := root.Flags()
	f.Float64Var(&opts.throughAge, "through-age", domain.DefaultThroughAge, "evaluate cumulative benefits through this age")
	f.IntVar(&opts.stepMonths, "step-months", domain.DefaultStepMonths, "series sampling granularity (1=monthly, 12=yearly)")
	f.IntSliceVar(&opts.compare, "compare", nil, "print the break-even age between two claim ages, e.g. --compare 62,70")
	f.StringArrayVar(&opts.pairs, "be", nil, "report the series intersection of two claim ages; repeatable: --be 62,70 --be 67,70")
	f.StringVarP(&opts.format, "format", "f", "console", "output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	f.StringVarP(&opts.outputFile, "output", "o", "", "file for non-console formats (default: timestamped name)")
	f.StringVar(&opts.seriesOut, "out", "", "write the sampled series to this CSV file")
	f.StringVar(&opts.saveConfig, "save-config", "", "save the effective configuration as YAML")

	root.AddCommand(newCompareCommand(opts, stdout, stderr))
	root.AddCommand(newTableCommand(opts, stdout))
	root.AddCommand(newFormatsCommand(stdout))
	return root
}

func runAnalysis(cmd *cobra.Command, opts *runOptions, stdout, stderr io.Writer) error {
	cfg, table, err := loadRun(cmd, opts)
	if err != nil {
		return err
	}

	engine := newEngine(opts, stderr)
	includeSeries := cfg.Output.SeriesPath != ""
	switch output.NormalizeFormatName(cfg.Output.Format) {
	case "series-csv", "html", "verbose":
		includeSeries = true
	}
	result, err := engine.Run(cmd.Context(), cfg, table, calculation.RunOptions{IncludeSeries: includeSeries})
	if err != nil {
		return err
	}

	if err := output.GenerateReport(result, cfg.Output.Format, stdout, opts.outputFile); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	if cfg.Output.SeriesPath != "" {
		if _, err := output.WriteFormatted(output.CSVSeriesExporter{}, result, cfg.Output.SeriesPath); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote series to %s\n", cfg.Output.SeriesPath)
	}
	if opts.saveConfig != "" {
		if err := output.SaveConfiguration(cfg, opts.saveConfig); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
	}
	return nil
}

func newEngine(opts *runOptions, stderr io.Writer) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(calculation.NewWriterLogger(stderr, opts.verbose))
	engine.Debug = opts.verbose
	return engine
}

// loadRun builds the effective configuration (file, then flags) and resolves its benefit table
func loadRun(cmd *cobra.Command, opts *runOptions) (*domain.Configuration, domain.BenefitTable, error) {
	parser := config.NewInputParser()
	cfg := domain.NewDefaultConfiguration()
	if opts.configFile != "" {
		loaded, err := parser.LoadFromFile(opts.configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	if err := applyFlags(cmd, opts, cfg); err != nil {
		return nil, nil, err
	}
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, nil, err
	}

	if !cmd.Flags().Changed("base-62") {
		table, err := parser.ResolveBenefitTable(cfg)
		return cfg, table, err
	}
	if cfg.BenefitsCSV != "" || len(cfg.Benefits) > 0 {
		return nil, nil, fmt.Errorf("%w: --base-62 cannot be combined with a benefit table", domain.ErrInvalidParameter)
	}
	table, err := calculation.BuildBenefitTableFromBase(decimal.NewFromFloat(opts.base62), cfg.Assumptions.Parameters().COLAAnnual)
	return cfg, table, err
}

func applyFlags(cmd *cobra.Command, opts *runOptions, cfg *domain.Configuration) error {
	flags := cmd.Flags()
	percent := func(name string, v float64, dst *decimal.Decimal) {
		if flags.Changed(name) {
			*dst = decimal.NewFromFloat(v)
		}
	}
	percent("cola", opts.cola, &cfg.Assumptions.COLAPercent)
	percent("interest", opts.interest, &cfg.Assumptions.InterestPercent)
	percent("tax", opts.tax, &cfg.Assumptions.TaxPercent)
	percent("discount", opts.discount, &cfg.Assumptions.DiscountPercent)

	if flags.Changed("start-age") {
		start := opts.startAge
		cfg.Ages.Start = &start
	}
	if flags.Changed("through-age") {
		cfg.Ages.Through = opts.throughAge
	}
	if flags.Changed("max-age") {
		cfg.Ages.Max = opts.maxAge
	}
	if flags.Changed("step-months") {
		cfg.StepMonths = opts.stepMonths
	}
	if flags.Changed("csv") {
		cfg.BenefitsCSV = opts.csvFile
		cfg.Benefits = nil
	}
	if flags.Changed("compare") {
		cfg.Compare = opts.compare
	}
	if flags.Changed("be") {
		pairs, err := parsePairs(opts.pairs)
		if err != nil {
			return err
		}
		cfg.BreakEvenPairs = pairs
	}
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("out") {
		cfg.Output.SeriesPath = opts.seriesOut
	}
	return nil
}
