package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rpgo/claim-calculator/internal/calculation"
	"github.com/rpgo/claim-calculator/internal/domain"
)

func newCompareCommand(opts *runOptions, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "compare AGE_A AGE_B",
		Short: "Print the monthly break-even age between two claim ages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ages := make([]int, 2)
			for i, a := range args {
				age, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("%w: invalid claim age %q", domain.ErrInvalidParameter, a)
				}
				ages[i] = age
			}

			cfg, table, err := loadRun(cmd, opts)
			if err != nil {
				return err
			}
			options := table.Options()
			if len(options) == 0 {
				return fmt.Errorf("%w: benefit table has no rows", domain.ErrMalformedInput)
			}
			startAge := options[0].ClaimAge
			if cfg.Ages.Start != nil {
				startAge = *cfg.Ages.Start
			}

			logger := calculation.NewWriterLogger(stderr, opts.verbose)
			logger.Debugf("searching %d vs %d from age %g to %g", ages[0], ages[1], startAge, cfg.Ages.Max)
			cmp, err := calculation.CompareClaimAges(table, ages[0], ages[1], startAge, cfg.Ages.Max, cfg.Assumptions.Parameters())
			if err != nil {
				return err
			}
			if cmp.BreakEvenAge == nil {
				fmt.Fprintf(stdout, "No break-even found up to age %.1f between claim %d and %d.\n", cmp.SearchedTo, cmp.ClaimAgeA, cmp.ClaimAgeB)
				return nil
			}
			fmt.Fprintf(stdout, "Break-even age between claim %d and %d: %.2f\n", cmp.ClaimAgeA, cmp.ClaimAgeB, *cmp.BreakEvenAge)
			return nil
		},
	}
}
