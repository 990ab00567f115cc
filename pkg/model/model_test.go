package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// referenceParams is the corridor scenario used throughout the test
// suite: a=600, c_P=48, c_W=566, c_F=24, b=641.
func referenceParams() Params {
	return Params{
		DemandIntercept:  600,
		PriceSensitivity: 48,
		WaitSensitivity:  566,
		FrequencyCost:    24,
		FixedCost:        641,
	}
}

func TestFrequencyReferencePoint(t *testing.T) {
	p := referenceParams()

	f, err := p.Frequency(484.64)
	require.NoError(t, err)
	// sqrt(566*484.64 / (2*24*48))
	require.InDelta(t, 10.9113, f, 1e-3)
}

func TestFareReferencePoint(t *testing.T) {
	p := referenceParams()

	fare, err := p.Fare(484.64)
	require.NoError(t, err)
	require.InDelta(t, 1.8630, fare, 1e-3)
}

func TestResidualNearRoot(t *testing.T) {
	p := referenceParams()

	r, err := p.Residual(484.641)
	require.NoError(t, err)
	require.InDelta(t, 0, r, 0.05)
}

func TestFrequencyAtZero(t *testing.T) {
	p := referenceParams()

	f, err := p.Frequency(0)
	require.NoError(t, err)
	require.Equal(t, 0.0, f)
}

func TestFareAtZeroFails(t *testing.T) {
	p := referenceParams()

	_, err := p.Fare(0)
	require.ErrorIs(t, err, ErrZeroFrequency)
}

func TestNegativeRidershipFails(t *testing.T) {
	p := referenceParams()

	_, err := p.Frequency(-1)
	require.ErrorIs(t, err, ErrNegativeRidership)

	_, err = p.Residual(-0.5)
	require.ErrorIs(t, err, ErrNegativeRidership)
}

func TestWellDefinedOnOpenDomain(t *testing.T) {
	// Frequency and Fare must evaluate without domain errors for all
	// Q in (0, a) given positive parameters.
	p := referenceParams()

	for q := 1.0; q < p.DemandIntercept; q++ {
		f, err := p.Frequency(q)
		require.NoError(t, err, "Frequency(%g)", q)
		require.False(t, math.IsNaN(f))

		fare, err := p.Fare(q)
		require.NoError(t, err, "Fare(%g)", q)
		require.False(t, math.IsNaN(fare))
	}
}

func TestRevenueCostSplit(t *testing.T) {
	p := referenceParams()
	q := 484.641

	rev, err := p.Revenue(q)
	require.NoError(t, err)
	cost, err := p.OperatingCost(q)
	require.NoError(t, err)
	res, err := p.Residual(q)
	require.NoError(t, err)

	require.InDelta(t, res, rev-cost, 1e-9)
}

func TestMultiplierReferencePoint(t *testing.T) {
	p := referenceParams()

	fare, err := p.Fare(484.641)
	require.NoError(t, err)

	lambda := p.Multiplier(484.641, fare)
	require.InDelta(t, 0.1215, lambda, 1e-3)
	require.Greater(t, lambda, 0.0)
}

func TestValidateRejectsNonPositive(t *testing.T) {
	cases := map[string]func(*Params){
		"demand intercept":  func(p *Params) { p.DemandIntercept = 0 },
		"price sensitivity": func(p *Params) { p.PriceSensitivity = -1 },
		"wait sensitivity":  func(p *Params) { p.WaitSensitivity = 0 },
		"frequency cost":    func(p *Params) { p.FrequencyCost = -24 },
		"fixed cost":        func(p *Params) { p.FixedCost = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := referenceParams()
			mutate(&p)
			require.Error(t, p.Validate())
		})
	}

	require.NoError(t, referenceParams().Validate())
}
