// Package model implements the break-even transit fare model.
//
// Ridership Q follows a linear demand curve with a wait-time penalty:
//
//	Q = a - c_P*P - c_W/(2F)
//
// Maximizing Q subject to the break-even constraint P*Q = b + c_F*F
// reduces, via the Lagrange first-order conditions, to closed forms for
// the optimal frequency and fare as functions of Q, plus one nonlinear
// equation in Q (the residual) whose zero is the operating point.
package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeRidership is returned when Q < 0, which would put a
	// negative value under the frequency square root.
	ErrNegativeRidership = errors.New("model: ridership must be non-negative")

	// ErrZeroFrequency is returned when the optimal frequency is zero
	// (Q = 0), where the fare expression divides by zero.
	ErrZeroFrequency = errors.New("model: optimal frequency is zero")
)

// Params holds the demand and cost constants for one scenario.
// All five must be positive; see Validate.
type Params struct {
	DemandIntercept  float64 `json:"demand_intercept"`   // a
	PriceSensitivity float64 `json:"price_sensitivity"`  // c_P
	WaitSensitivity  float64 `json:"wait_sensitivity"`   // c_W
	FrequencyCost    float64 `json:"frequency_cost"`     // c_F
	FixedCost        float64 `json:"fixed_cost"`         // b
}

// Validate checks that every constant is positive.
func (p Params) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"demand intercept", p.DemandIntercept},
		{"price sensitivity", p.PriceSensitivity},
		{"wait sensitivity", p.WaitSensitivity},
		{"frequency cost", p.FrequencyCost},
		{"fixed cost", p.FixedCost},
	}
	for _, f := range fields {
		if f.val <= 0 {
			return fmt.Errorf("model: %s must be positive, got %g", f.name, f.val)
		}
	}
	return nil
}

// Frequency returns the ridership-optimal service frequency
// F*(Q) = sqrt(c_W*Q / (2*c_F*c_P)).
func (p Params) Frequency(q float64) (float64, error) {
	if q < 0 {
		return 0, fmt.Errorf("Q = %g: %w", q, ErrNegativeRidership)
	}
	return math.Sqrt(p.WaitSensitivity * q / (2 * p.FrequencyCost * p.PriceSensitivity)), nil
}

// Fare returns the demand-clearing fare at ridership Q:
// P*(Q) = (a - Q - c_W/(2*F*(Q))) / c_P.
func (p Params) Fare(q float64) (float64, error) {
	f, err := p.Frequency(q)
	if err != nil {
		return 0, err
	}
	if f == 0 {
		return 0, fmt.Errorf("Q = %g: %w", q, ErrZeroFrequency)
	}
	return (p.DemandIntercept - q - p.WaitSensitivity/(2*f)) / p.PriceSensitivity, nil
}

// Residual returns the break-even gap Q*P*(Q) - b - c_F*F*(Q).
// The operating point is the Q where this is zero.
func (p Params) Residual(q float64) (float64, error) {
	fare, err := p.Fare(q)
	if err != nil {
		return 0, err
	}
	freq, err := p.Frequency(q)
	if err != nil {
		return 0, err
	}
	return q*fare - p.FixedCost - p.FrequencyCost*freq, nil
}

// Revenue returns fare revenue Q*P*(Q).
func (p Params) Revenue(q float64) (float64, error) {
	fare, err := p.Fare(q)
	if err != nil {
		return 0, err
	}
	return q * fare, nil
}

// OperatingCost returns total cost b + c_F*F*(Q).
func (p Params) OperatingCost(q float64) (float64, error) {
	freq, err := p.Frequency(q)
	if err != nil {
		return 0, err
	}
	return p.FixedCost + p.FrequencyCost*freq, nil
}

// Multiplier returns the Lagrange multiplier of the break-even
// constraint at the point (q, fare), from the stationarity condition in
// P: lambda = c_P / (Q - c_P*P). It is the marginal ridership gained per
// unit of budget relaxation. Returns +Inf when the denominator is zero.
func (p Params) Multiplier(q, fare float64) float64 {
	denom := q - p.PriceSensitivity*fare
	if denom == 0 {
		return math.Inf(1)
	}
	return p.PriceSensitivity / denom
}
