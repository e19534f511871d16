// Package diagnostics renders residual diagnostics for fitted models as
// gonum plots. The callers pass plain fitted and observed slices, so the
// package works for any estimation family.
package diagnostics

import (
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/YuminosukeSato/statgo/pkg/errors"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

var referenceLineColor = color.RGBA{R: 196, G: 196, B: 196, A: 255}

// FittedVsActual builds a scatter of observed values against fitted
// values with a dashed identity line. Points on the line are perfect
// predictions.
func FittedVsActual(fitted, actual []float64) (*plot.Plot, error) {
	if err := checkSeries("FittedVsActual", fitted, actual); err != nil {
		return nil, err
	}

	pts := make(plotter.XYs, len(fitted))
	lo, hi := fitted[0], fitted[0]
	for i := range fitted {
		pts[i].X = fitted[i]
		pts[i].Y = actual[i]
		lo = min(lo, min(fitted[i], actual[i]))
		hi = max(hi, max(fitted[i], actual[i]))
	}

	p := plot.New()
	p.Title.Text = "Fitted vs. actual"
	p.X.Label.Text = "Fitted"
	p.Y.Label.Text = "Actual"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "statgo: FittedVsActual: scatter")
	}
	scatter.GlyphStyle.Radius = vg.Points(2)

	identity, err := referenceLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return nil, errors.Wrap(err, "statgo: FittedVsActual: identity line")
	}

	p.Add(plotter.NewGrid(), identity, scatter)
	return p, nil
}

// Residuals builds a scatter of residuals against fitted values with a
// dashed zero line. Structure in this plot points at a misspecified
// mean or non-constant variance.
func Residuals(fitted, residuals []float64) (*plot.Plot, error) {
	if err := checkSeries("Residuals", fitted, residuals); err != nil {
		return nil, err
	}

	pts := make(plotter.XYs, len(fitted))
	lo, hi := fitted[0], fitted[0]
	for i := range fitted {
		pts[i].X = fitted[i]
		pts[i].Y = residuals[i]
		lo = min(lo, fitted[i])
		hi = max(hi, fitted[i])
	}

	p := plot.New()
	p.Title.Text = "Residuals vs. fitted"
	p.X.Label.Text = "Fitted"
	p.Y.Label.Text = "Residual"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "statgo: Residuals: scatter")
	}
	scatter.GlyphStyle.Radius = vg.Points(2)

	zero, err := referenceLine(plotter.XYs{{X: lo, Y: 0}, {X: hi, Y: 0}})
	if err != nil {
		return nil, errors.Wrap(err, "statgo: Residuals: zero line")
	}

	p.Add(plotter.NewGrid(), zero, scatter)
	return p, nil
}

// WritePNG renders the plot as a 6x4 inch PNG to w.
func WritePNG(w io.Writer, p *plot.Plot) error {
	if p == nil {
		return errors.NewValueError("WritePNG", "plot is nil")
	}
	canvas := vgimg.PngCanvas{Canvas: vgimg.New(plotWidth, plotHeight)}
	p.Draw(draw.New(canvas))
	if _, err := canvas.WriteTo(w); err != nil {
		return errors.Wrap(err, "statgo: WritePNG: encoding failed")
	}
	return nil
}

// SavePNG renders the plot as a 6x4 inch PNG file at path.
func SavePNG(p *plot.Plot, path string) error {
	if p == nil {
		return errors.NewValueError("SavePNG", "plot is nil")
	}
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return errors.Wrap(err, "statgo: SavePNG: save failed")
	}
	return nil
}

func referenceLine(pts plotter.XYs) (*plotter.Line, error) {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = referenceLineColor
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	return line, nil
}

func checkSeries(op string, x, y []float64) error {
	if len(x) == 0 {
		return errors.NewValueError(op, "empty slice")
	}
	if len(x) != len(y) {
		return errors.NewDimensionError(op, len(x), len(y), 0)
	}
	return nil
}
