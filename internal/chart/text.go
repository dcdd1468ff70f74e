package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/example/bernoulli/internal/lesson"
)

const (
	curveRune  = '•'
	markerRune = '●'
)

// Text draws spec as a plot of cols x rows characters with axes and labels
func Text(spec lesson.ChartSpec, cols, rows int) string {
	if cols < 2 || rows < 2 {
		return ""
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	plot := func(p lesson.Point, r rune) {
		if !spec.X.Contains(p.X) || !spec.Y.Contains(p.Y) {
			return
		}
		col := scale(p.X, spec.X, cols)
		row := rows - 1 - scale(p.Y, spec.Y, rows)
		grid[row][col] = r
	}
	for _, p := range spec.Curve {
		plot(p, curveRune)
	}
	plot(spec.Marker, markerRune)

	top := fmt.Sprintf("%.0f", spec.Y.Max)
	bottom := fmt.Sprintf("%.0f", spec.Y.Min)
	width := len(top)
	if len(bottom) > width {
		width = len(bottom)
	}

	var b strings.Builder
	b.WriteString(spec.Title)
	b.WriteByte('\n')
	for i, line := range grid {
		label := ""
		switch i {
		case 0:
			label = top
		case rows - 1:
			label = bottom
		}
		fmt.Fprintf(&b, "%*s │%s\n", width, label, string(line))
	}
	fmt.Fprintf(&b, "%*s └%s\n", width, "", strings.Repeat("─", cols))

	left := fmt.Sprintf("%.0f", spec.X.Min)
	right := fmt.Sprintf("%.0f", spec.X.Max)
	gap := cols - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	fmt.Fprintf(&b, "%*s  %s%s%s\n", width, "", left, strings.Repeat(" ", gap), right)
	fmt.Fprintf(&b, "%*s  %s / %s", width, "", spec.XLabel, spec.YLabel)
	return b.String()
}

// scale maps v in r onto 0..n-1
func scale(v float64, r lesson.Range, n int) int {
	if r.Max == r.Min {
		return 0
	}
	i := int(math.Round((v - r.Min) / (r.Max - r.Min) * float64(n-1)))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
