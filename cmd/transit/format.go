package main

import (
	"fmt"

	"github.com/ArunNairID/transit/pkg/analytics"
	"github.com/ArunNairID/transit/pkg/scenario"
	"github.com/ArunNairID/transit/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Param != "" {
				fmt.Printf("    -> %s = %v\n", e.Param, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Param != "" {
				fmt.Printf("    -> %s = %v\n", w.Param, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printSolution(sc *scenario.Scenario, sol *analytics.Solution) {
	name := sc.Name
	if name == "" {
		name = "scenario"
	}

	fmt.Printf("Break-Even Operating Point (%s)\n", name)
	fmt.Println("================================")
	fmt.Println()
	fmt.Printf("  Ridership (Q*):         %10.2f trips\n", sol.Ridership)
	fmt.Printf("  Fare (P*):              %10.2f per trip\n", sol.Fare)
	fmt.Printf("  Frequency (F*):         %10.2f vehicles/hr\n", sol.Frequency)
	fmt.Println()
	fmt.Printf("  Revenue:                %10.2f\n", sol.Revenue)
	fmt.Printf("  Operating cost:         %10.2f\n", sol.OperatingCost)
	fmt.Printf("  Residual:               %10.2e\n", sol.Residual)
	fmt.Println()
	fmt.Printf("  Lagrange multiplier:    %10.4f riders per budget unit\n", sol.Multiplier)
	fmt.Printf("  dQ*/db:                 %10.4f\n", sol.FixedCostSensitivity)
	fmt.Printf("  Solver iterations:      %10d\n", sol.Iterations)
}

func printSweepTable(points []analytics.SweepPoint) {
	fmt.Printf("%-8s %14s %14s %10s %14s\n",
		"Factor", "Fixed cost", "Ridership", "Fare", "Frequency")
	fmt.Printf("%-8s %14s %14s %10s %14s\n",
		"--------", "--------------", "--------------", "----------", "--------------")

	for _, pt := range points {
		fmt.Printf("%-8.2f %14.2f %14.2f %10.2f %14.2f\n",
			pt.Factor, pt.FixedCost, pt.Ridership, pt.Fare, pt.Frequency)
	}
}
