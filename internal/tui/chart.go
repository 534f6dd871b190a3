package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/pvadjust/internal/plot"
)

// Chart marks. An original and an adjusted point on the same cell are drawn
// as markOverlap.
const (
	markOriginal  = '●'
	markAdjusted  = '*'
	markOverlap   = '◆'
	markThreshold = '┄'
)

// yAxisWidth is the width of the y axis gutter: a 5-character label, a space
// and the axis rune.
const yAxisWidth = 7

// chartChrome is the number of lines around the raster: title, y label,
// x label and legend.
const chartChrome = 4

// RenderScatter draws the figure on a character grid of the given size,
// y axis gutter included. The last two lines are the x axis and its tick
// labels. It returns nil when the area is too small to draw anything.
func RenderScatter(f plot.Figure, width, height int) []string {
	cols := width - yAxisWidth
	rows := height - 2
	if cols < 2 || rows < 2 {
		return nil
	}

	ylo, yhi := f.Bounds()
	xlo, xhi := f.XRange()
	rowOf := func(y float64) int {
		r := int(math.Round((yhi - y) / (yhi - ylo) * float64(rows-1)))
		return min(max(r, 0), rows-1)
	}
	colOf := func(x float64) int {
		c := int(math.Round((x - xlo) / (xhi - xlo) * float64(cols-1)))
		return min(max(c, 0), cols-1)
	}

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cols))
	}

	thresholdRow := rowOf(f.Threshold)
	for c := range grid[thresholdRow] {
		grid[thresholdRow][c] = markThreshold
	}
	for _, p := range f.Original.Points {
		grid[rowOf(p.Y)][colOf(p.X)] = markOriginal
	}
	for _, p := range f.Adjusted.Points {
		r, c := rowOf(p.Y), colOf(p.X)
		if grid[r][c] == markOriginal {
			grid[r][c] = markOverlap
		} else {
			grid[r][c] = markAdjusted
		}
	}

	lines := make([]string, 0, rows+2)
	for r, row := range grid {
		var label string
		switch r {
		case 0:
			label = fmt.Sprintf("%5.2f ┤", yhi)
		case rows - 1:
			label = fmt.Sprintf("%5.2f ┤", ylo)
		case thresholdRow:
			label = fmt.Sprintf("%5.2f ┤", f.Threshold)
		default:
			label = "      │"
		}
		lines = append(lines, label+string(row))
	}

	lines = append(lines, "      └"+strings.Repeat("─", cols))

	ticks := []rune(strings.Repeat(" ", cols))
	for i := 1; i <= f.Len(); i++ {
		c := colOf(float64(i))
		for j, ch := range strconv.Itoa(i) {
			if c+j < cols {
				ticks[c+j] = ch
			}
		}
	}
	lines = append(lines, strings.Repeat(" ", yAxisWidth)+string(ticks))
	return lines
}

// ChartModel renders a figure inside a bordered panel.
type ChartModel struct {
	figure plot.Figure
	width  int
	height int
}

// NewChartModel creates a chart for the figure.
func NewChartModel(f plot.Figure) ChartModel {
	return ChartModel{figure: f}
}

// SetSize updates the outer dimensions of the panel.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
}

// View renders the panel: title, y label, raster, x label and legend.
func (c ChartModel) View() string {
	innerW := c.width - 2
	innerH := c.height - 2
	raster := RenderScatter(c.figure, innerW, innerH-chartChrome)
	if raster == nil {
		return "Terminal too small to draw the figure."
	}

	styled := make([]string, len(raster))
	for i, line := range raster {
		styled[i] = styleMarks(line)
	}

	legend := strings.Join([]string{
		originalStyle.Render(string(markOriginal)) + " " + c.figure.Original.Label,
		adjustedStyle.Render(string(markAdjusted)) + " " + c.figure.Adjusted.Label,
		thresholdStyle.Render(string(markThreshold)) + " " + plot.ThresholdLabel,
	}, "   ")

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(innerW, lipgloss.Center, titleStyle.Render(c.figure.Title)),
		axisLabelStyle.Render(c.figure.YLabel),
		strings.Join(styled, "\n"),
		lipgloss.PlaceHorizontal(innerW, lipgloss.Center, axisLabelStyle.Render(c.figure.XLabel)),
		legend,
	)
	return panelStyle.Width(innerW).Render(body)
}

// styleMarks colors the plot marks of a raster line.
func styleMarks(line string) string {
	var b strings.Builder
	for _, r := range line {
		switch r {
		case markOriginal:
			b.WriteString(originalStyle.Render(string(r)))
		case markAdjusted:
			b.WriteString(adjustedStyle.Render(string(r)))
		case markOverlap:
			b.WriteString(overlapStyle.Render(string(r)))
		case markThreshold:
			b.WriteString(thresholdStyle.Render(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
