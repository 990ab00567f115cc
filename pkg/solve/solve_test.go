package solve

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootQuadratic(t *testing.T) {
	f := func(x float64) (float64, error) { return x*x - 4, nil }

	res, err := Root(f, 3, Settings{})
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, 2.0, res.Root, 1e-6)
	require.LessOrEqual(t, math.Abs(res.Residual), 1e-9)
}

func TestRootPicksRootNearGuess(t *testing.T) {
	// x^2 - 4 has roots at -2 and +2; the bracket grows outward from
	// the guess, so a negative guess lands on the negative root.
	f := func(x float64) (float64, error) { return x*x - 4, nil }

	res, err := Root(f, -3, Settings{})
	require.NoError(t, err)
	require.InDelta(t, -2.0, res.Root, 1e-6)
}

func TestRootRespectsDomain(t *testing.T) {
	// sqrt(x) - 2 is undefined below zero; the bracket expansion must
	// skip the invalid side and still find the root at 4.
	domainErr := errors.New("negative input")
	f := func(x float64) (float64, error) {
		if x < 0 {
			return 0, domainErr
		}
		return math.Sqrt(x) - 2, nil
	}

	res, err := Root(f, 1, Settings{})
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, 4.0, res.Root, 1e-6)
}

func TestRootAtGuess(t *testing.T) {
	f := func(x float64) (float64, error) { return x - 5, nil }

	res, err := Root(f, 5, Settings{})
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, 0, res.Iterations)
	require.Equal(t, 5.0, res.Root)
}

func TestRootNoBracket(t *testing.T) {
	// x^2 + 1 has no real root; failure must be distinct, not a number.
	f := func(x float64) (float64, error) { return x*x + 1, nil }

	res, err := Root(f, 0, Settings{})
	require.ErrorIs(t, err, ErrNoBracket)
	require.False(t, res.Converged)
}

func TestRootGuessOutsideDomain(t *testing.T) {
	domainErr := errors.New("out of domain")
	f := func(x float64) (float64, error) { return 0, domainErr }

	_, err := Root(f, 1, Settings{})
	require.ErrorIs(t, err, domainErr)
}

func TestRootNoConvergence(t *testing.T) {
	// A sign change with an absurdly tight budget: one iteration of
	// bisection cannot satisfy the tolerance.
	f := func(x float64) (float64, error) { return math.Tanh(x) - 0.5, nil }

	res, err := Root(f, 10, Settings{Tolerance: 1e-14, MaxIterations: 1})
	require.ErrorIs(t, err, ErrNoConvergence)
	require.False(t, res.Converged)
}

func TestSettingsDefaults(t *testing.T) {
	s := Settings{}.withDefaults(500)
	require.Equal(t, 1e-9, s.Tolerance)
	require.Equal(t, 100, s.MaxIterations)
	require.Equal(t, 40, s.MaxBracketTries)
	require.InDelta(t, 10.0, s.BracketStep, 1e-12)
}
