package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/rpgo/claim-calculator/internal/output"
)

func newTableCommand(opts *runOptions, stdout io.Writer) *cobra.Command {
	var csvOut string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the effective benefit table",
		Long: `Print the benefit table a run would use: the --csv file, the configuration's
inline rows, a table derived with --base-62, or the built-in default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, table, err := loadRun(cmd, opts)
			if err != nil {
				return err
			}
			if csvOut != "" {
				if err := writeTableCSV(table, csvOut); err != nil {
					return err
				}
				fmt.Fprintf(stdout, "Wrote benefit table to %s\n", csvOut)
				return nil
			}
			fmt.Fprintf(stdout, "%9s  %12s\n", "Claim Age", "Monthly")
			for _, o := range table.Options() {
				fmt.Fprintf(stdout, "%9s  %12s\n", output.FormatClaimAge(o.ClaimAge), output.FormatCurrency(o.Monthly))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&csvOut, "write-csv", "", "write the table as an age,monthly CSV instead of printing it")
	return cmd
}

// writeTableCSV writes the table in the format config.LoadBenefitsCSV reads
func writeTableCSV(table domain.BenefitTable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"age", "monthly"}); err != nil {
		return err
	}
	for _, age := range table.Ages() {
		if err := w.Write([]string{strconv.Itoa(age), table[age].StringFixed(2)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func newFormatsCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintln(stdout, name)
			}
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(stdout, "%s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
		},
	}
}
