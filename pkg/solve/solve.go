// Package solve finds a zero of a scalar function with a safeguarded
// Newton iteration: a sign-change bracket is expanded outward from the
// caller's guess, Newton steps use a central finite-difference
// derivative, and any step that leaves the bracket (or hits a domain
// error) falls back to bisection. Convergence is always reported
// explicitly; callers must not use Result.Root unless Converged is true.
package solve

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

var (
	// ErrNoBracket is returned when no sign change can be found around
	// the initial guess within the bracket expansion budget.
	ErrNoBracket = errors.New("solve: no sign change found around guess")

	// ErrNoConvergence is returned when the iteration budget is spent
	// without meeting the tolerance.
	ErrNoConvergence = errors.New("solve: did not converge")
)

// Func is a scalar function that may reject inputs outside its domain.
type Func func(x float64) (float64, error)

// Settings controls the root search.
type Settings struct {
	// Tolerance is the convergence threshold on |f(x)|.
	Tolerance float64
	// MaxIterations bounds the Newton/bisection loop.
	MaxIterations int
	// BracketStep is the initial expansion step around the guess.
	// Zero means 2% of the guess magnitude (at least 1).
	BracketStep float64
	// MaxBracketTries bounds the geometric bracket expansion.
	MaxBracketTries int
}

// DefaultSettings returns the settings used when a field is unset.
func DefaultSettings() Settings {
	return Settings{
		Tolerance:       1e-9,
		MaxIterations:   100,
		MaxBracketTries: 40,
	}
}

func (s Settings) withDefaults(guess float64) Settings {
	def := DefaultSettings()
	if s.Tolerance <= 0 {
		s.Tolerance = def.Tolerance
	}
	if s.MaxIterations <= 0 {
		s.MaxIterations = def.MaxIterations
	}
	if s.BracketStep <= 0 {
		s.BracketStep = 0.02 * math.Max(1, math.Abs(guess))
	}
	if s.MaxBracketTries <= 0 {
		s.MaxBracketTries = def.MaxBracketTries
	}
	return s
}

// Result reports the outcome of a root search.
type Result struct {
	Root       float64 `json:"root"`
	Residual   float64 `json:"residual"`
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`
}

// Root solves f(x) = 0 starting from guess. Only one root is sought; if
// f has several, the bracket expansion converges to one near the guess.
// The error is non-nil exactly when Result.Converged is false.
func Root(f Func, guess float64, s Settings) (Result, error) {
	s = s.withDefaults(guess)

	fg, err := f(guess)
	if err != nil {
		return Result{}, fmt.Errorf("solve: evaluating at guess %g: %w", guess, err)
	}
	if math.Abs(fg) <= s.Tolerance {
		return Result{Root: guess, Residual: fg, Converged: true}, nil
	}

	lo, hi, flo, err := bracket(f, guess, fg, s)
	if err != nil {
		return Result{}, err
	}

	x, fx := guess, fg
	if x < lo || x > hi {
		x = 0.5 * (lo + hi)
		if fx, err = f(x); err != nil {
			return Result{}, fmt.Errorf("solve: evaluating at %g: %w", x, err)
		}
	}

	// Derivative probe for the Newton step. Domain errors surface as
	// NaN, which forces a bisection step instead.
	probe := func(t float64) float64 {
		v, perr := f(t)
		if perr != nil {
			return math.NaN()
		}
		return v
	}

	for i := 1; i <= s.MaxIterations; i++ {
		d := fd.Derivative(probe, x, &fd.Settings{Formula: fd.Central})

		next := math.NaN()
		if d != 0 && !math.IsNaN(d) && !math.IsInf(d, 0) {
			next = x - fx/d
		}
		if math.IsNaN(next) || next <= lo || next >= hi {
			next = 0.5 * (lo + hi)
		}

		fnext, err := f(next)
		if err != nil {
			return Result{Iterations: i}, fmt.Errorf("solve: evaluating at %g: %w", next, err)
		}

		if math.Abs(fnext) <= s.Tolerance {
			return Result{Root: next, Residual: fnext, Iterations: i, Converged: true}, nil
		}

		// Shrink the bracket around the sign change.
		if (flo < 0) == (fnext < 0) {
			lo, flo = next, fnext
		} else {
			hi = next
		}
		x, fx = next, fnext

		if hi-lo <= s.Tolerance*math.Max(1, math.Abs(x)) {
			return Result{Root: x, Residual: fx, Iterations: i, Converged: true}, nil
		}
	}

	return Result{Root: x, Residual: fx, Iterations: s.MaxIterations},
		fmt.Errorf("%w after %d iterations (|f| = %g)", ErrNoConvergence, s.MaxIterations, math.Abs(fx))
}

// bracket expands geometrically around the guess until the function
// changes sign. Endpoints that land outside f's domain are skipped; the
// expansion then only grows on the side that still evaluates.
func bracket(f Func, guess, fg float64, s Settings) (lo, hi, flo float64, err error) {
	lo, hi = guess, guess
	flo = fg
	fhi := fg
	step := s.BracketStep

	for try := 0; try < s.MaxBracketTries; try++ {
		if v, verr := f(lo - step); verr == nil {
			lo, flo = lo-step, v
		}
		if v, verr := f(hi + step); verr == nil {
			hi, fhi = hi+step, v
		}

		switch {
		case flo*fg < 0:
			return lo, guess, flo, nil
		case fg*fhi < 0:
			return guess, hi, fg, nil
		case flo*fhi < 0:
			return lo, hi, flo, nil
		}
		step *= 1.6
	}

	return 0, 0, 0, fmt.Errorf("%w (guess %g, widest bracket [%g, %g])", ErrNoBracket, guess, lo, hi)
}
