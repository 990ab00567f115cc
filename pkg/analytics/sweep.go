package analytics

import (
	"fmt"

	"github.com/ArunNairID/transit/pkg/scenario"
	"github.com/ArunNairID/transit/pkg/solve"
)

// SweepPoint is one re-solve of the scenario at a scaled fixed cost.
type SweepPoint struct {
	Factor    float64 `json:"factor"`
	FixedCost float64 `json:"fixed_cost"`
	Ridership float64 `json:"ridership"`
	Fare      float64 `json:"fare"`
	Frequency float64 `json:"frequency"`
}

// SweepFixedCost re-solves the scenario with the fixed cost scaled from
// 1x up to maxFactor across the given number of steps, seeding each
// solve from the previous root. Higher fixed costs sustain less
// break-even ridership, so the ridership column declines monotonically
// for a viable corridor.
//
// If a scaled scenario has no break-even point, the points solved so
// far are returned together with the error.
func SweepFixedCost(sc *scenario.Scenario, maxFactor float64, steps int) ([]SweepPoint, error) {
	if steps < 2 {
		return nil, fmt.Errorf("analytics: sweep needs at least 2 steps, got %d", steps)
	}
	if maxFactor <= 1 {
		return nil, fmt.Errorf("analytics: sweep max factor must exceed 1, got %g", maxFactor)
	}

	base := sc.Params()
	if err := base.Validate(); err != nil {
		return nil, err
	}

	points := make([]SweepPoint, 0, steps)
	guess := sc.Solver.InitialGuess
	settings := sc.SolveSettings()

	for i := 0; i < steps; i++ {
		factor := 1 + (maxFactor-1)*float64(i)/float64(steps-1)
		p := base
		p.FixedCost = base.FixedCost * factor

		res, err := solve.Root(p.Residual, guess, settings)
		if err != nil {
			return points, fmt.Errorf("analytics: sweep at %gx fixed cost: %w", factor, err)
		}
		fare, err := p.Fare(res.Root)
		if err != nil {
			return points, fmt.Errorf("analytics: sweep at %gx fixed cost: %w", factor, err)
		}
		freq, err := p.Frequency(res.Root)
		if err != nil {
			return points, fmt.Errorf("analytics: sweep at %gx fixed cost: %w", factor, err)
		}

		points = append(points, SweepPoint{
			Factor:    factor,
			FixedCost: p.FixedCost,
			Ridership: res.Root,
			Fare:      fare,
			Frequency: freq,
		})
		guess = res.Root
	}

	return points, nil
}
