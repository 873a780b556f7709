// Package figure converts derived numeric sequences into renderable chart
// images and table rows. Everything here is pure over its inputs so views can
// rebuild their output on each interaction without hidden state.
package figure

import (
	"bytes"
	"fmt"
	"image"
	png "image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/equinor/webviz-container-boilerplate/src/viewlogic"
)

// ColorScheme picks the series color used by the plot view element.
type ColorScheme int

const (
	SchemeBlue ColorScheme = iota
	SchemeGreen
	SchemeGray
)

func (s ColorScheme) String() string {
	switch s {
	case SchemeBlue:
		return "Blue"
	case SchemeGreen:
		return "Green"
	case SchemeGray:
		return "Gray"
	}
	panic(fmt.Sprintf("figure: invalid ColorScheme %d", int(s)))
}

func Schemes() []ColorScheme { return []ColorScheme{SchemeBlue, SchemeGreen, SchemeGray} }

func ParseColorScheme(v string) (ColorScheme, error) {
	switch v {
	case "Blue", "blue":
		return SchemeBlue, nil
	case "Green", "green":
		return SchemeGreen, nil
	case "Gray", "gray", "grey":
		return SchemeGray, nil
	}
	return SchemeBlue, fmt.Errorf("unknown color scheme %q", v)
}

func (s ColorScheme) color() drawing.Color {
	switch s {
	case SchemeBlue:
		return chart.ColorBlue
	case SchemeGreen:
		return chart.ColorGreen
	case SchemeGray:
		return chart.ColorAlternateGray
	}
	panic(fmt.Sprintf("figure: invalid ColorScheme %d", int(s)))
}

// PlotSpec describes one plot render: the already-derived values plus the
// chosen geometry and styling.
type PlotSpec struct {
	Title  string
	Kind   viewlogic.ChartKind
	Scheme ColorScheme
	Width  int
	Height int
	Values []float64
}

// lineStyle connects points with a stroke and marks each sample with a dot.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
		DotWidth:    4,
		DotColor:    col,
	}
}

// BuildLineChart assembles the go-chart descriptor for a line plot. Values are
// plotted against 1-based sample index with integer ticks.
func BuildLineChart(spec PlotSpec) chart.Chart {
	xs, ys, ticks, xRange := indexAxis(spec.Values)
	minY, maxY := valueBounds(spec.Values)
	_, nMax := niceAxisBounds(math.Min(minY, 0), maxY)
	nMin, _ := niceAxisBounds(minY, math.Max(maxY, 0))
	st := lineStyle(spec.Scheme.color())
	if len(spec.Values) == 1 {
		st.DotWidth = 6
	}
	ch := chart.Chart{
		Title:      spec.Title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		Width:      spec.Width,
		Height:     spec.Height,
		XAxis:      chart.XAxis{Name: "Index", Ticks: ticks, Range: xRange},
		YAxis:      chart.YAxis{Name: "Value", Range: &chart.ContinuousRange{Min: nMin, Max: nMax}},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: spec.Title, XValues: xs, YValues: ys, Style: st},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// BuildBarChart assembles the go-chart descriptor for a bar chart with one
// bar per sample, labeled by 1-based index.
func BuildBarChart(spec PlotSpec) chart.BarChart {
	minY, maxY := valueBounds(spec.Values)
	_, nMax := niceAxisBounds(0, math.Max(maxY, 0))
	nMin, _ := niceAxisBounds(math.Min(minY, 0), 0)
	bars := make([]chart.Value, len(spec.Values))
	col := spec.Scheme.color()
	for i, v := range spec.Values {
		bars[i] = chart.Value{
			Value: v,
			Label: fmt.Sprintf("%d", i+1),
			Style: chart.Style{FillColor: col, StrokeColor: col},
		}
	}
	return chart.BarChart{
		Title:      spec.Title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		Width:      spec.Width,
		Height:     spec.Height,
		BarWidth:   barWidth(spec.Width, len(spec.Values)),
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: nMin, Max: nMax}},
		Bars:       bars,
	}
}

// RenderPNG renders the spec to an image. Empty value sets are an error so
// callers can decide on a fallback; render failures bubble up the same way.
func RenderPNG(spec PlotSpec) (image.Image, error) {
	if len(spec.Values) == 0 {
		return nil, fmt.Errorf("figure: no values to plot")
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("figure: invalid size %dx%d", spec.Width, spec.Height)
	}
	var buf bytes.Buffer
	switch spec.Kind {
	case viewlogic.ChartLine:
		ch := BuildLineChart(spec)
		if err := ch.Render(chart.PNG, &buf); err != nil {
			return nil, fmt.Errorf("figure: line render: %w", err)
		}
	case viewlogic.ChartBar:
		ch := BuildBarChart(spec)
		if err := ch.Render(chart.PNG, &buf); err != nil {
			return nil, fmt.Errorf("figure: bar render: %w", err)
		}
	default:
		panic(fmt.Sprintf("figure: invalid ChartKind %d", int(spec.Kind)))
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("figure: decode rendered png: %w", err)
	}
	return img, nil
}

// indexAxis builds 1-based X values with integer ticks and a padded range so
// single-point series still render with non-zero width.
func indexAxis(values []float64) ([]float64, []float64, []chart.Tick, *chart.ContinuousRange) {
	n := len(values)
	xs := make([]float64, n)
	ys := make([]float64, n)
	ticks := make([]chart.Tick, 0, n+1)
	for i := 0; i < n; i++ {
		xs[i] = float64(i + 1)
		ys[i] = values[i]
		ticks = append(ticks, chart.Tick{Value: xs[i], Label: fmt.Sprintf("%d", i+1)})
	}
	maxR := float64(n) + 0.5
	if n == 1 {
		// go-chart needs a non-zero x delta
		xs = append(xs, 2)
		ys = append(ys, ys[0])
		ticks = append(ticks, chart.Tick{Value: 2, Label: ""})
		maxR = 2.0
	}
	return xs, ys, ticks, &chart.ContinuousRange{Min: 0.5, Max: maxR}
}

func valueBounds(values []float64) (float64, float64) {
	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	if minY == math.MaxFloat64 {
		return 0, 1
	}
	return minY, maxY
}

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice"
// numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// barWidth sizes bars to fill roughly the plot width while keeping gaps.
func barWidth(totalWidth, n int) int {
	if n <= 0 {
		return 20
	}
	w := (totalWidth - 100) / (n * 2)
	if w < 10 {
		w = 10
	}
	if w > 80 {
		w = 80
	}
	return w
}
