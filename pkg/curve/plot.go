package curve

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 5 * vg.Inch
)

// Render builds a line chart of the series with a dashed zero axis so
// the root location can be read off directly.
func Render(s Series, title string) (*plot.Plot, error) {
	if len(s.Q) == 0 {
		return nil, fmt.Errorf("curve: empty series")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Ridership Q"
	p.Y.Label.Text = "Break-even residual"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(s.XYs())
	if err != nil {
		return nil, fmt.Errorf("curve: building line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(line)

	zero, err := plotter.NewLine(plotter.XYs{
		{X: s.Q[0], Y: 0},
		{X: s.Q[len(s.Q)-1], Y: 0},
	})
	if err != nil {
		return nil, fmt.Errorf("curve: building zero axis: %w", err)
	}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	zero.LineStyle.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	p.Add(zero)

	return p, nil
}

// Save renders the series and writes it to path; the image format
// follows the file extension (png, svg, pdf).
func Save(s Series, title, path string) error {
	p, err := Render(s, title)
	if err != nil {
		return err
	}
	return p.Save(plotWidth, plotHeight, path)
}

// WritePNG renders the series as PNG to w, for serving over HTTP.
func WritePNG(s Series, title string, w io.Writer) error {
	p, err := Render(s, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return fmt.Errorf("curve: encoding png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("curve: writing png: %w", err)
	}
	return nil
}
