package ui

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/sef-community/sefctl/internal/mood"
)

const (
	chartLabelWidth  = 10 // len("Very Happy")
	chartColsPerItem = 6
	chartMinWidth    = 22
	chartDateLayout  = "2006-01-02"
)

// RenderMoodChart plots mood ordinals against their dates as a connected
// line. Points are ordered by date and placed at their day offset from the
// earliest entry, so uneven gaps show as uneven spacing. The y axis is
// labelled with the mood names and dates are printed under the x axis where
// they fit. width bounds the whole chart including labels.
func RenderMoodChart(points []mood.Point, width int) string {
	if len(points) == 0 {
		return "No mood entries yet. Press n to record how you feel."
	}

	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b mood.Point) int { return a.Date.Compare(b.Date) })
	xs := dayOffsets(sorted)
	span := xs[len(xs)-1]

	plotWidth := max(chartMinWidth, len(sorted)*chartColsPerItem, int(math.Ceil(span))+1)
	if limit := width - chartLabelWidth - 2; width > 0 && plotWidth > limit {
		plotWidth = max(limit, 2)
	}

	cols := make([]int, len(xs))
	for i, x := range xs {
		cols[i] = columnOf(x, span, plotWidth)
	}
	data := resample(sorted, xs, cols, plotWidth)

	graph := asciigraph.Plot(data,
		asciigraph.Height(len(mood.All())-1),
		asciigraph.Width(plotWidth),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(float64(mood.VeryHappy)),
		asciigraph.Precision(0),
		asciigraph.Offset(1),
	)

	lines := relabel(strings.Split(graph, "\n"))
	lines = append(lines, xLegend(sorted, cols, plotWidth))
	return strings.Join(lines, "\n")
}

// dayOffsets returns each point's distance in days from the first one.
// When every point falls on the same day they are spread by position.
func dayOffsets(sorted []mood.Point) []float64 {
	xs := make([]float64, len(sorted))
	for i, p := range sorted {
		xs[i] = p.Date.Sub(sorted[0].Date).Hours() / 24
	}
	if xs[len(xs)-1] > 0 {
		return xs
	}
	for i := range xs {
		xs[i] = float64(i)
	}
	if len(xs) == 1 {
		xs = append(xs, 1)
	}
	return xs
}

func columnOf(x, span float64, plotWidth int) int {
	if span <= 0 {
		return 0
	}
	return int(math.Round(x / span * float64(plotWidth-1)))
}

// resample turns the dated points into one value per plot column, joining
// neighbours linearly. Every point's own column carries its exact ordinal.
func resample(sorted []mood.Point, xs []float64, cols []int, plotWidth int) []float64 {
	ys := make([]float64, len(xs))
	for i := range xs {
		ys[i] = float64(sorted[min(i, len(sorted)-1)].Ordinal)
	}
	span := xs[len(xs)-1]

	out := make([]float64, plotWidth)
	j := 0
	for c := range out {
		x := span * float64(c) / float64(plotWidth-1)
		for j < len(xs)-2 && xs[j+1] <= x {
			j++
		}
		x0, x1 := xs[j], xs[j+1]
		if x1 <= x0 {
			out[c] = ys[j+1]
			continue
		}
		out[c] = ys[j] + (ys[j+1]-ys[j])*(x-x0)/(x1-x0)
	}
	for i, c := range cols {
		out[c] = ys[i]
	}
	return out
}

// relabel swaps the numeric y labels for mood names. Row 0 is the top of
// the plot, which is the highest ordinal.
func relabel(lines []string) []string {
	top := len(mood.All()) - 1
	for i, line := range lines {
		if i > top {
			break
		}
		axis := strings.IndexAny(line, "┤┼")
		if axis < 0 {
			continue
		}
		name := mood.Mood(top - i).String()
		lines[i] = fmt.Sprintf("%*s ", chartLabelWidth, name) + line[axis:]
	}
	return lines
}

// xLegend prints the earliest and latest dates at the ends of the axis and
// any other date under its column when it does not collide with a neighbour.
func xLegend(sorted []mood.Point, cols []int, plotWidth int) string {
	n := len(chartDateLayout)
	width := max(plotWidth, n)
	last := len(sorted) - 1
	first := sorted[0].Date.Format(chartDateLayout)
	lastDate := sorted[last].Date.Format(chartDateLayout)
	if last > 0 && lastDate != first {
		width = max(width, 2*n+1)
	}

	buf := []rune(strings.Repeat(" ", width))
	taken := make([]bool, width)
	put := func(start int, label string) {
		start = max(min(start, width-n), 0)
		for i := max(start-1, 0); i < min(start+n+1, width); i++ {
			if taken[i] {
				return
			}
		}
		for i, r := range []rune(label) {
			buf[start+i] = r
			taken[start+i] = true
		}
	}

	put(0, first)
	if last > 0 && lastDate != first {
		put(width-n, lastDate)
	}
	for i := 1; i < last; i++ {
		put(cols[i], sorted[i].Date.Format(chartDateLayout))
	}

	pad := strings.Repeat(" ", chartLabelWidth+2)
	return pad + strings.TrimRight(string(buf), " ")
}
