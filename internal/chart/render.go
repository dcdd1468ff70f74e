// Package chart draws lesson.ChartSpec descriptions, as PNG images for the bot
// and as text plots for the terminal.
package chart

import (
	"bytes"
	"fmt"
	"io"

	"github.com/example/bernoulli/internal/lesson"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default PNG size
const (
	DefaultWidth  = 1000
	DefaultHeight = 600
)

var (
	curveColor = drawing.ColorFromHex("1f77b4")
	gridColor  = drawing.Color{R: 0xb0, G: 0xb0, B: 0xb0, A: 0x4d}
)

// Renderer renders chart specs to PNG
type Renderer struct {
	Width  int
	Height int
}

// NewRenderer creates a renderer, falling back to the default size for
// non-positive dimensions
func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{Width: width, Height: height}
}

// pointStyle draws dots only, without a connecting line
func pointStyle(col drawing.Color, size float64) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    size,
		DotColor:    col,
	}
}

// PNG renders spec and returns the encoded image
func (r *Renderer) PNG(spec lesson.ChartSpec) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WritePNG(&buf, spec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePNG renders spec as PNG into w
func (r *Renderer) WritePNG(w io.Writer, spec lesson.ChartSpec) error {
	xs, ys := clip(spec.Curve, spec.Y)
	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "P = 100 - 5v²",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: curveColor,
				StrokeWidth: 3,
			},
		},
	}
	if spec.MarkerVisible() {
		series = append(series, chart.ContinuousSeries{
			Name:    "Current value",
			XValues: []float64{spec.Marker.X},
			YValues: []float64{spec.Marker.Y},
			Style:   pointStyle(drawing.ColorRed, 10),
		})
	}

	grid := chart.Style{StrokeColor: gridColor, StrokeWidth: 1}
	ch := chart.Chart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontSize: 14},
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 24, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           spec.XLabel,
			Range:          &chart.ContinuousRange{Min: spec.X.Min, Max: spec.X.Max},
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           spec.YLabel,
			Range:          &chart.ContinuousRange{Min: spec.Y.Min, Max: spec.Y.Max},
			GridMajorStyle: grid,
		},
		Series: series,
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// clip drops curve samples outside the y range so the line stays inside the plot
func clip(curve []lesson.Point, y lesson.Range) ([]float64, []float64) {
	xs := make([]float64, 0, len(curve))
	ys := make([]float64, 0, len(curve))
	for _, p := range curve {
		if !y.Contains(p.Y) {
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	return xs, ys
}
