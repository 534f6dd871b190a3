package plot

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"

	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	apperrors "github.com/agbru/pvadjust/internal/errors"
)

var (
	originalColor  = color.RGBA{B: 255, A: 255}
	adjustedColor  = color.RGBA{R: 255, A: 255}
	thresholdColor = color.RGBA{G: 128, A: 255}
)

// FileName returns the export file name for a figure, e.g. "fdr_bh.png".
func FileName(f Figure, format string) string {
	return f.Method.String() + "." + format
}

// starGlyph draws a six-armed star: a plus overlaid with a cross.
type starGlyph struct{}

// DrawGlyph implements draw.GlyphDrawer.
func (starGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	draw.PlusGlyph{}.DrawGlyph(c, sty, pt)
	draw.CrossGlyph{}.DrawGlyph(c, sty, pt)
}

// Build converts the figure into a gonum plot: blue circles for the original
// p-values, red stars for the adjusted ones and a dashed green line at
// the threshold.
func Build(f Figure) (*gonumplot.Plot, error) {
	p := gonumplot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.X.Min, p.X.Max = f.XRange()
	p.Y.Min, p.Y.Max = f.Bounds()
	p.X.Tick.Marker = comparisonTicks(f.Len())
	p.Add(plotter.NewGrid())

	original, err := plotter.NewScatter(toXYs(f.Original.Points))
	if err != nil {
		return nil, fmt.Errorf("original series: %w", err)
	}
	original.GlyphStyle = draw.GlyphStyle{Color: originalColor, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}

	adjusted, err := plotter.NewScatter(toXYs(f.Adjusted.Points))
	if err != nil {
		return nil, fmt.Errorf("adjusted series: %w", err)
	}
	adjusted.GlyphStyle = draw.GlyphStyle{Color: adjustedColor, Radius: vg.Points(4), Shape: starGlyph{}}

	alpha := f.Threshold
	threshold := plotter.NewFunction(func(float64) float64 { return alpha })
	threshold.Color = thresholdColor
	threshold.Width = vg.Points(1)
	threshold.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	p.Add(threshold, original, adjusted)
	p.Legend.Add(f.Original.Label, original)
	p.Legend.Add(f.Adjusted.Label, adjusted)
	p.Legend.Add(ThresholdLabel, threshold)
	p.Legend.Top = true
	return p, nil
}

// Save renders the figure to path. The image format is taken from the file
// extension (png, svg or pdf); width and height are in inches.
func Save(f Figure, path string, width, height float64) error {
	p, err := Build(f)
	if err != nil {
		return apperrors.RenderError{Path: path, Cause: err}
	}
	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path); err != nil {
		return apperrors.RenderError{Path: path, Cause: err}
	}
	return nil
}

// SaveTo writes the figure into dir using FileName and returns the full path.
func SaveTo(f Figure, dir, format string, width, height float64) (string, error) {
	path := filepath.Join(dir, FileName(f, format))
	return path, Save(f, path, width, height)
}

func toXYs(points []Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	return xys
}

func comparisonTicks(n int) gonumplot.ConstantTicks {
	ticks := make(gonumplot.ConstantTicks, n)
	for i := range ticks {
		ticks[i] = gonumplot.Tick{Value: float64(i + 1), Label: strconv.Itoa(i + 1)}
	}
	return ticks
}
