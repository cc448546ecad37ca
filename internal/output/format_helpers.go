package output

import (
	"strconv"

	money "github.com/rpgo/claim-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals and thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatWholeCurrency formats a decimal as whole USD with thousands separators.
func FormatWholeCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatWhole()
}

// FormatAge formats an age with the four decimals used for exported series.
func FormatAge(age float64) string { return strconv.FormatFloat(age, 'f', 4, 64) }

// FormatClaimAge formats a claim age without decimals when it is a whole year.
func FormatClaimAge(age float64) string {
	if age == float64(int(age)) {
		return strconv.Itoa(int(age))
	}
	return strconv.FormatFloat(age, 'f', 2, 64)
}

func intToString(i int) string { return strconv.Itoa(i) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }
