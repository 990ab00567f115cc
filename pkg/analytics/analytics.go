// Package analytics resolves a scenario into its break-even operating
// point: it validates the inputs, runs the root search on the residual,
// and derives the fare, frequency, and sensitivity figures.
package analytics

import (
	"errors"
	"fmt"

	"github.com/ArunNairID/transit/pkg/model"
	"github.com/ArunNairID/transit/pkg/scenario"
	"github.com/ArunNairID/transit/pkg/solve"
	"github.com/ArunNairID/transit/pkg/validation"
)

// Solution holds the resolved operating point.
type Solution struct {
	Ridership     float64 `json:"ridership"`
	Fare          float64 `json:"fare"`
	Frequency     float64 `json:"frequency"`
	Revenue       float64 `json:"revenue"`
	OperatingCost float64 `json:"operating_cost"`

	// Multiplier is the Lagrange multiplier of the break-even
	// constraint: marginal ridership per unit of budget relaxation.
	Multiplier float64 `json:"lagrange_multiplier"`
	// FixedCostSensitivity is dQ*/db from a 1% finite-difference bump
	// of the fixed cost. Negative for a viable corridor: higher fixed
	// costs sustain less break-even ridership.
	FixedCostSensitivity float64 `json:"fixed_cost_sensitivity"`

	Residual   float64 `json:"residual"`
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`
}

// ValidateSchema checks the scenario's raw values before any math runs.
func ValidateSchema(sc *scenario.Scenario) *validation.Report {
	report := validation.NewReport()

	positives := []struct {
		param string
		val   float64
	}{
		{"demand.intercept", sc.Demand.Intercept},
		{"demand.price_sensitivity", sc.Demand.PriceSensitivity},
		{"demand.wait_sensitivity", sc.Demand.WaitSensitivity},
		{"cost.marginal_frequency", sc.Cost.MarginalFrequency},
		{"cost.fixed", sc.Cost.Fixed},
	}
	for _, p := range positives {
		if p.val <= 0 {
			report.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("%s must be positive", p.param),
				Param:       p.param,
				ActualValue: p.val,
				Expected:    "> 0",
			})
		}
	}

	if sc.Solver.InitialGuess <= 0 {
		report.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "solver initial guess must be positive ridership",
			Param:       "solver.initial_guess",
			ActualValue: sc.Solver.InitialGuess,
			Expected:    "> 0",
		})
	} else if sc.Demand.Intercept > 0 && sc.Solver.InitialGuess >= sc.Demand.Intercept {
		report.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "initial guess is at or beyond the demand intercept; fares are negative there",
			Param:       "solver.initial_guess",
			ActualValue: sc.Solver.InitialGuess,
			Expected:    fmt.Sprintf("< %g", sc.Demand.Intercept),
			Suggestions: []string{"pick a guess inside (0, intercept)"},
		})
	}

	if sc.Curve.Min >= sc.Curve.Max {
		report.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "curve domain is empty",
			Param:       "curve",
			ActualValue: fmt.Sprintf("[%g, %g]", sc.Curve.Min, sc.Curve.Max),
			Expected:    "min < max",
		})
	}
	if sc.Curve.Min <= 0 {
		report.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "curve domain must start above zero ridership",
			Param:       "curve.min",
			ActualValue: sc.Curve.Min,
			Expected:    "> 0",
		})
	}
	if sc.Curve.Samples < 2 {
		report.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "curve needs at least two samples",
			Param:       "curve.samples",
			ActualValue: sc.Curve.Samples,
			Expected:    ">= 2",
		})
	}

	return report
}

// Resolve runs the break-even root search on the scenario and derives
// the full operating point. The report carries solver failures and
// analytical warnings; the solution is nil whenever the report is
// invalid.
func Resolve(sc *scenario.Scenario) (*Solution, *validation.Report) {
	report := validation.NewReport()

	p := sc.Params()
	if err := p.Validate(); err != nil {
		report.AddError(validation.Result{
			Level:   validation.LevelSchema,
			Message: err.Error(),
		})
		return nil, report
	}

	res, err := solve.Root(p.Residual, sc.Solver.InitialGuess, sc.SolveSettings())
	if err != nil {
		report.AddError(solverFailure(err, sc.Solver.InitialGuess))
		return nil, report
	}

	sol, err := deriveSolution(p, res)
	if err != nil {
		report.AddError(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("deriving operating point: %v", err),
			ActualValue: res.Root,
		})
		return nil, report
	}

	if sens, err := fixedCostSensitivity(p, res.Root, sc.SolveSettings()); err != nil {
		report.AddWarning(validation.Result{
			Level:   validation.LevelAnalytical,
			Message: fmt.Sprintf("fixed-cost sensitivity unavailable: %v", err),
			Param:   "cost.fixed",
		})
	} else {
		sol.FixedCostSensitivity = sens
	}

	if sol.Fare <= 0 {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     "break-even fare is non-positive; the corridor funds itself without fares at this ridership",
			Param:       "demand",
			ActualValue: sol.Fare,
		})
	}
	if sol.Ridership >= p.DemandIntercept {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     "solved ridership exceeds the demand intercept",
			ActualValue: sol.Ridership,
			Expected:    fmt.Sprintf("< %g", p.DemandIntercept),
		})
	}

	return sol, report
}

func solverFailure(err error, guess float64) validation.Result {
	r := validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     err.Error(),
		Param:       "solver.initial_guess",
		ActualValue: guess,
	}
	switch {
	case errors.Is(err, solve.ErrNoBracket):
		r.Suggestions = []string{
			"no break-even point near the guess; move the guess or lower the fixed cost",
		}
	case errors.Is(err, solve.ErrNoConvergence):
		r.Suggestions = []string{"raise solver.max_iterations or loosen solver.tolerance"}
	}
	return r
}

func deriveSolution(p model.Params, res solve.Result) (*Solution, error) {
	fare, err := p.Fare(res.Root)
	if err != nil {
		return nil, err
	}
	freq, err := p.Frequency(res.Root)
	if err != nil {
		return nil, err
	}
	revenue, err := p.Revenue(res.Root)
	if err != nil {
		return nil, err
	}
	cost, err := p.OperatingCost(res.Root)
	if err != nil {
		return nil, err
	}

	return &Solution{
		Ridership:     res.Root,
		Fare:          fare,
		Frequency:     freq,
		Revenue:       revenue,
		OperatingCost: cost,
		Multiplier:    p.Multiplier(res.Root, fare),
		Residual:      res.Residual,
		Iterations:    res.Iterations,
		Converged:     res.Converged,
	}, nil
}

// fixedCostSensitivity re-solves with the fixed cost bumped 1% and
// returns the finite-difference dQ*/db, seeded from the solved root.
func fixedCostSensitivity(p model.Params, root float64, s solve.Settings) (float64, error) {
	db := 0.01 * p.FixedCost
	bumped := p
	bumped.FixedCost += db

	res, err := solve.Root(bumped.Residual, root, s)
	if err != nil {
		return 0, err
	}
	return (res.Root - root) / db, nil
}
