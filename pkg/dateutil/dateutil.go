package dateutil

import (
	"fmt"
	"math"
)

// MonthsPerYear is the number of simulation months in one year of age
const MonthsPerYear = 12

// MonthIndex converts a fractional age in years to the nearest whole month
func MonthIndex(age float64) int {
	return int(math.Round(age * MonthsPerYear))
}

// AgeAtMonth converts a month index back to a fractional age in years
func AgeAtMonth(month int) float64 {
	return float64(month) / MonthsPerYear
}

// CompletedYears returns the number of full years contained in a month offset.
// Negative offsets count as zero years.
func CompletedYears(months int) int {
	if months < 0 {
		return 0
	}
	return months / MonthsPerYear
}

// FormatAge renders an age as years and months, e.g. "70y 6m"
func FormatAge(age float64) string {
	m := MonthIndex(age)
	if m%MonthsPerYear == 0 {
		return fmt.Sprintf("%dy", m/MonthsPerYear)
	}
	return fmt.Sprintf("%dy %dm", m/MonthsPerYear, m%MonthsPerYear)
}
