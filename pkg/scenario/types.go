package scenario

import (
	"github.com/ArunNairID/transit/pkg/model"
	"github.com/ArunNairID/transit/pkg/solve"
)

// Scenario is the top-level description of one transit corridor.
type Scenario struct {
	Name   string    `yaml:"name" json:"name"`
	Demand DemandDef `yaml:"demand" json:"demand"`
	Cost   CostDef   `yaml:"cost" json:"cost"`
	Solver SolverDef `yaml:"solver" json:"solver"`
	Curve  CurveDef  `yaml:"curve" json:"curve"`
}

// DemandDef describes the linear demand curve with wait-time penalty:
// Q = intercept - price_sensitivity*P - wait_sensitivity/(2F).
type DemandDef struct {
	Intercept        float64 `yaml:"intercept" json:"intercept"`
	PriceSensitivity float64 `yaml:"price_sensitivity" json:"price_sensitivity"`
	WaitSensitivity  float64 `yaml:"wait_sensitivity" json:"wait_sensitivity"`
}

// CostDef describes the operator's cost curve: fixed + marginal_frequency*F.
type CostDef struct {
	MarginalFrequency float64 `yaml:"marginal_frequency" json:"marginal_frequency"`
	Fixed             float64 `yaml:"fixed" json:"fixed"`
}

// SolverDef configures the root search for the break-even ridership.
type SolverDef struct {
	InitialGuess  float64 `yaml:"initial_guess" json:"initial_guess"`
	Tolerance     float64 `yaml:"tolerance" json:"tolerance"`
	MaxIterations int     `yaml:"max_iterations" json:"max_iterations"`
}

// CurveDef configures residual-curve sampling for visualization.
type CurveDef struct {
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
	Samples int     `yaml:"samples" json:"samples"`
}

// Sampling defaults, matching the usual plotting window for corridor
// scenarios in the hundreds-of-riders range.
const (
	DefaultCurveMin     = 2.0
	DefaultCurveMax     = 700.0
	DefaultCurveSamples = 50
)

// ApplyDefaults fills unset solver and curve fields.
func (s *Scenario) ApplyDefaults() {
	def := solve.DefaultSettings()
	if s.Solver.Tolerance <= 0 {
		s.Solver.Tolerance = def.Tolerance
	}
	if s.Solver.MaxIterations <= 0 {
		s.Solver.MaxIterations = def.MaxIterations
	}
	if s.Curve.Min == 0 && s.Curve.Max == 0 {
		s.Curve.Min = DefaultCurveMin
		s.Curve.Max = DefaultCurveMax
	}
	if s.Curve.Samples <= 0 {
		s.Curve.Samples = DefaultCurveSamples
	}
}

// Params converts the scenario constants into a model parameter set.
func (s *Scenario) Params() model.Params {
	return model.Params{
		DemandIntercept:  s.Demand.Intercept,
		PriceSensitivity: s.Demand.PriceSensitivity,
		WaitSensitivity:  s.Demand.WaitSensitivity,
		FrequencyCost:    s.Cost.MarginalFrequency,
		FixedCost:        s.Cost.Fixed,
	}
}

// SolveSettings converts the solver block into solve settings.
func (s *Scenario) SolveSettings() solve.Settings {
	return solve.Settings{
		Tolerance:     s.Solver.Tolerance,
		MaxIterations: s.Solver.MaxIterations,
	}
}
