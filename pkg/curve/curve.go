// Package curve samples the break-even residual over a ridership range
// and renders it as a line chart, a visual sanity check on where the
// solver's root sits.
package curve

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"

	"github.com/ArunNairID/transit/pkg/solve"
)

// Series is a sampled residual curve.
type Series struct {
	Q []float64 `json:"q"`
	R []float64 `json:"residual"`
}

// Sample evaluates f at n linearly spaced points on [min, max]. A
// domain error at any sample point fails the whole sample run rather
// than leaving a silent gap in the curve.
func Sample(f solve.Func, min, max float64, n int) (Series, error) {
	if n < 2 {
		return Series{}, fmt.Errorf("curve: need at least 2 samples, got %d", n)
	}
	if min >= max {
		return Series{}, fmt.Errorf("curve: invalid domain [%g, %g]", min, max)
	}

	qs := floats.Span(make([]float64, n), min, max)
	rs := make([]float64, n)
	for i, q := range qs {
		v, err := f(q)
		if err != nil {
			return Series{}, fmt.Errorf("curve: sampling at Q = %g: %w", q, err)
		}
		rs[i] = v
	}
	return Series{Q: qs, R: rs}, nil
}

// XYs converts the series for plotting.
func (s Series) XYs() plotter.XYs {
	xys := make(plotter.XYs, len(s.Q))
	for i := range s.Q {
		xys[i].X = s.Q[i]
		xys[i].Y = s.R[i]
	}
	return xys
}
