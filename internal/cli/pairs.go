package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rpgo/claim-calculator/internal/domain"
)

// parsePairs turns "62,70" or "62 70" flag values into claim-age pairs
func parsePairs(values []string) ([][]int, error) {
	pairs := make([][]int, 0, len(values))
	for _, v := range values {
		fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' || r == ':' })
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: break-even pair %q must name two claim ages", domain.ErrInvalidParameter, v)
		}
		pair := make([]int, 2)
		for i, field := range fields {
			age, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid claim age %q in pair %q", domain.ErrInvalidParameter, field, v)
			}
			pair[i] = age
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}
