package curve

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func linear(x float64) (float64, error) { return 2*x - 10, nil }

func TestSampleSpansDomain(t *testing.T) {
	s, err := Sample(linear, 2, 700, 50)
	require.NoError(t, err)
	require.Len(t, s.Q, 50)
	require.Len(t, s.R, 50)
	require.Equal(t, 2.0, s.Q[0])
	require.Equal(t, 700.0, s.Q[len(s.Q)-1])
	require.InDelta(t, -6.0, s.R[0], 1e-12)
	require.InDelta(t, 1390.0, s.R[len(s.R)-1], 1e-12)
}

func TestSampleRejectsBadInputs(t *testing.T) {
	_, err := Sample(linear, 2, 700, 1)
	require.Error(t, err)

	_, err = Sample(linear, 700, 2, 50)
	require.Error(t, err)

	_, err = Sample(linear, 5, 5, 50)
	require.Error(t, err)
}

func TestSampleSurfacesDomainErrors(t *testing.T) {
	domainErr := errors.New("below zero")
	f := func(x float64) (float64, error) {
		if x < 0 {
			return 0, domainErr
		}
		return x, nil
	}

	_, err := Sample(f, -5, 5, 10)
	require.ErrorIs(t, err, domainErr)
}

func TestXYs(t *testing.T) {
	s := Series{Q: []float64{1, 2}, R: []float64{10, 20}}
	xys := s.XYs()
	require.Len(t, xys, 2)
	require.Equal(t, 1.0, xys[0].X)
	require.Equal(t, 20.0, xys[1].Y)
}

func TestWritePNG(t *testing.T) {
	s, err := Sample(linear, 0, 10, 20)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(s, "residual", &buf))
	require.Greater(t, buf.Len(), 0)
	// PNG magic bytes
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestRenderEmptySeries(t *testing.T) {
	_, err := Render(Series{}, "residual")
	require.Error(t, err)
}
