package main

import (
	"fmt"
	"os"
	"strconv"

	calc "github.com/rpgo/claim-calculator/internal/calculation"
	"github.com/rpgo/claim-calculator/internal/config"
	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/rpgo/claim-calculator/pkg/dateutil"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("usage: debug_break_even <config-file> <age-a> <age-b>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	table, err := p.ResolveBenefitTable(cfg)
	if err != nil {
		panic(err)
	}
	ageA, errA := strconv.Atoi(os.Args[2])
	ageB, errB := strconv.Atoi(os.Args[3])
	if errA != nil || errB != nil {
		panic(fmt.Sprintf("claim ages must be integers: %q %q", os.Args[2], os.Args[3]))
	}
	opts, err := table.Lookup(ageA, ageB)
	if err != nil {
		panic(err)
	}

	startAge := table.Options()[0].ClaimAge
	if cfg.Ages.Start != nil {
		startAge = *cfg.Ages.Start
	}
	params := cfg.Assumptions.Parameters()

	a, err := calc.Simulate(opts[0], startAge, cfg.Ages.Max, 1, params)
	if err != nil {
		panic(err)
	}
	b, err := calc.Simulate(opts[1], startAge, cfg.Ages.Max, 1, params)
	if err != nil {
		panic(err)
	}

	fmt.Println("Month,Age,BalanceA,BalanceB,Diff")
	for i := 0; i < a.Len() && i < b.Len(); i++ {
		age := a.Ages[i]
		fmt.Printf("%d,%s,%s,%s,%s\n", dateutil.MonthIndex(age), dateutil.FormatAge(age),
			a.Balances[i].StringFixed(2), b.Balances[i].StringFixed(2), b.Balances[i].Sub(a.Balances[i]).StringFixed(2))
	}

	minAge := float64(ageA)
	if ageB > ageA {
		minAge = float64(ageB)
	}
	fmt.Printf("\nIntersection: %+v\n", calc.FindCurveCrossing(a, b, minAge))
	cmp, err := calc.CompareClaimAges(table, ageA, ageB, startAge, cfg.Ages.Max, params)
	if err != nil {
		panic(err)
	}
	printBreakEven(cmp)
}

func printBreakEven(cmp *domain.ClaimComparison) {
	if cmp.BreakEvenAge == nil {
		fmt.Printf("BreakEven: none up to %.1f\n", cmp.SearchedTo)
		return
	}
	fmt.Printf("BreakEven: %.4f\n", *cmp.BreakEvenAge)
}
