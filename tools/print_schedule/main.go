package main

import (
	"flag"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rpgo/claim-calculator/internal/calculation"
	"github.com/rpgo/claim-calculator/pkg/dateutil"
	money "github.com/rpgo/claim-calculator/pkg/decimal"
)

func main() {
	monthly := flag.Float64("monthly", 2632, "monthly benefit at claim")
	cola := flag.Float64("cola", 2, "annual COLA percent")
	tax := flag.Float64("tax", 0, "effective tax percent")
	years := flag.Int("years", 10, "anniversaries to print")
	flag.Parse()

	schedule := calculation.NewPaymentSchedule(decimal.NewFromFloat(*monthly), decimal.NewFromFloat(*cola).Div(decimal.NewFromInt(100)))
	taxRate := decimal.NewFromFloat(*tax).Div(decimal.NewFromInt(100))

	fmt.Printf("%4s  %14s  %14s\n", "Year", "Payment", "After tax")
	for y := 0; y <= *years; y++ {
		amount := money.NewMoneyFromDecimal(schedule.AmountAt(y * dateutil.MonthsPerYear))
		fmt.Printf("%4d  %14s  %14s\n", y, amount.Format(), amount.ApplyTaxRate(taxRate).Format())
	}
}
