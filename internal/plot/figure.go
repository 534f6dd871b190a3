// Package plot builds the figure shown for each correction method and
// renders it to image files with gonum/plot.
package plot

import (
	"math"

	"github.com/agbru/pvadjust/internal/correction"
)

// Legend labels shared by the image exporter and the terminal viewer.
const (
	OriginalLabel  = "Original p-values"
	ThresholdLabel = "Significance threshold"
	XLabel         = "Comparison"
	YLabel         = "P-value"
)

// Point is one plotted observation. X is the 1-based comparison index.
type Point struct {
	X, Y float64
}

// Series is a labelled set of points.
type Series struct {
	Label  string
	Points []Point
}

// Figure describes one correction plot: original and adjusted p-values
// against their comparison index, and a horizontal threshold line.
type Figure struct {
	Method    correction.Method
	Title     string
	XLabel    string
	YLabel    string
	Original  Series
	Adjusted  Series
	Threshold float64
}

// NewFigure builds the figure for a correction result.
func NewFigure(r correction.Result, alpha float64) Figure {
	return Figure{
		Method:    r.Method,
		Title:     r.Method.Title(),
		XLabel:    XLabel,
		YLabel:    YLabel,
		Original:  Series{Label: OriginalLabel, Points: indexed(r.Original)},
		Adjusted:  Series{Label: "Adjusted p-values (" + r.Method.ShortLabel() + ")", Points: indexed(r.Adjusted)},
		Threshold: alpha,
	}
}

func indexed(values []float64) []Point {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{X: float64(i + 1), Y: v}
	}
	return points
}

// Len returns the number of comparisons on the x axis.
func (f Figure) Len() int {
	return max(len(f.Original.Points), len(f.Adjusted.Points))
}

// Bounds returns the y range covering every point and the threshold,
// padded by 5% of the span and never extending below 0 or above 1.05.
func (f Figure) Bounds() (lo, hi float64) {
	lo, hi = f.Threshold, f.Threshold
	for _, s := range []Series{f.Original, f.Adjusted} {
		for _, p := range s.Points {
			lo = math.Min(lo, p.Y)
			hi = math.Max(hi, p.Y)
		}
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 0.05
	}
	lo = math.Max(0, lo-pad)
	hi = math.Min(1.05, hi+pad)
	if hi <= lo {
		hi = lo + 0.1
	}
	return lo, hi
}

// XRange returns the x range with half a comparison of margin on each side.
func (f Figure) XRange() (lo, hi float64) {
	return 0.5, float64(f.Len()) + 0.5
}
