package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/ArunNairID/transit/pkg/analytics"
	"github.com/ArunNairID/transit/pkg/curve"
	"github.com/ArunNairID/transit/pkg/scenario"
	"github.com/ArunNairID/transit/pkg/validation"
)

// loadAndValidate loads the scenario and runs schema validation.
func loadAndValidate(projectPath string) (*scenario.Scenario, *validation.Report, error) {
	sc, err := scenario.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading scenario: %w", err)
	}
	schemaReport := analytics.ValidateSchema(sc)
	return sc, schemaReport, nil
}

func runValidate(projectPath string) error {
	sc, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	// Run the solver for analytical validation as well.
	if schemaReport.Valid {
		_, solveReport := analytics.Resolve(sc)
		schemaReport.Merge(solveReport)
	}

	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runSolve(projectPath string, asJSON bool) error {
	sc, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("scenario has validation errors")
	}

	sol, solveReport := analytics.Resolve(sc)
	if !solveReport.Valid {
		printValidationReport(solveReport)
		return fmt.Errorf("solver failed")
	}

	slog.Info("solved break-even operating point",
		"scenario", sc.Name,
		"ridership", sol.Ridership,
		"iterations", sol.Iterations)

	if asJSON {
		output := map[string]any{
			"scenario":   sc,
			"solution":   sol,
			"validation": solveReport,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	printSolution(sc, sol)
	if len(solveReport.Warnings) > 0 {
		fmt.Println()
		printValidationReport(solveReport)
	}
	return nil
}

func runCurve(projectPath, out string, samples int) error {
	sc, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("scenario has validation errors")
	}
	if samples <= 0 {
		samples = sc.Curve.Samples
	}

	p := sc.Params()
	series, err := curve.Sample(p.Residual, sc.Curve.Min, sc.Curve.Max, samples)
	if err != nil {
		return err
	}

	title := sc.Name
	if title == "" {
		title = "break-even residual"
	}
	if err := curve.Save(series, title, out); err != nil {
		return err
	}

	slog.Info("wrote residual curve",
		"out", out,
		"domain", fmt.Sprintf("[%g, %g]", sc.Curve.Min, sc.Curve.Max),
		"samples", samples)
	return nil
}

func runSweep(projectPath string, maxFactor float64, steps int) error {
	sc, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("scenario has validation errors")
	}

	points, err := analytics.SweepFixedCost(sc, maxFactor, steps)
	if err != nil {
		// Print whatever solved before the failure.
		if len(points) > 0 {
			printSweepTable(points)
			fmt.Println()
		}
		return err
	}

	printSweepTable(points)
	return nil
}
