// Package viewlogic holds the pure derivation logic shared by the views:
// visualization transforms for the plot and ordering for the table. No UI or
// rendering imports belong here.
package viewlogic

import (
	"fmt"
	"sort"
	"strings"
)

// Visualization selects how plot values are derived from the stored series.
type Visualization int

const (
	VisualizationRaw Visualization = iota
	VisualizationReversed
	VisualizationFlipped
)

func (v Visualization) String() string {
	switch v {
	case VisualizationRaw:
		return "Raw"
	case VisualizationReversed:
		return "Reversed"
	case VisualizationFlipped:
		return "Flipped"
	}
	panic(fmt.Sprintf("viewlogic: invalid Visualization %d", int(v)))
}

// Visualizations lists all modes in display order.
func Visualizations() []Visualization {
	return []Visualization{VisualizationRaw, VisualizationReversed, VisualizationFlipped}
}

// ParseVisualization maps a control label back to its mode.
func ParseVisualization(s string) (Visualization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return VisualizationRaw, nil
	case "reversed":
		return VisualizationReversed, nil
	case "flipped":
		return VisualizationFlipped, nil
	}
	return VisualizationRaw, fmt.Errorf("unknown visualization %q", s)
}

// SortOrder selects the table ordering.
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

func (o SortOrder) String() string {
	switch o {
	case SortAscending:
		return "Ascending"
	case SortDescending:
		return "Descending"
	}
	panic(fmt.Sprintf("viewlogic: invalid SortOrder %d", int(o)))
}

func SortOrders() []SortOrder { return []SortOrder{SortAscending, SortDescending} }

func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc":
		return SortAscending, nil
	case "descending", "desc":
		return SortDescending, nil
	}
	return SortAscending, fmt.Errorf("unknown sort order %q", s)
}

// ChartKind selects the plot geometry.
type ChartKind int

const (
	ChartLine ChartKind = iota
	ChartBar
)

func (k ChartKind) String() string {
	switch k {
	case ChartLine:
		return "Line"
	case ChartBar:
		return "Bar"
	}
	panic(fmt.Sprintf("viewlogic: invalid ChartKind %d", int(k)))
}

func ChartKinds() []ChartKind { return []ChartKind{ChartLine, ChartBar} }

func ParseChartKind(s string) (ChartKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return ChartLine, nil
	case "bar":
		return ChartBar, nil
	}
	return ChartLine, fmt.Errorf("unknown chart kind %q", s)
}

// ApplyVisualization derives a new slice from values. The input is never
// mutated. Out-of-range modes panic.
func ApplyVisualization(values []float64, v Visualization) []float64 {
	switch v {
	case VisualizationRaw:
		out := make([]float64, len(values))
		copy(out, values)
		return out
	case VisualizationReversed:
		return Reverse(values)
	case VisualizationFlipped:
		return FlipAround(values, 0)
	}
	panic(fmt.Sprintf("viewlogic: invalid Visualization %d", int(v)))
}

// Reverse returns values in reverse order. Applying it twice restores the
// original sequence.
func Reverse(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}

// FlipAround mirrors every value about ref (2*ref - v). For a fixed ref the
// transform is an involution.
func FlipAround(values []float64, ref float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = 2*ref - v
	}
	return out
}

// SortValues returns a stably sorted copy of values in the given order.
func SortValues(values []float64, order SortOrder) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	switch order {
	case SortAscending:
		sort.SliceStable(out, func(i, j int) bool { return out[i] < out[j] })
	case SortDescending:
		sort.SliceStable(out, func(i, j int) bool { return out[i] > out[j] })
	default:
		panic(fmt.Sprintf("viewlogic: invalid SortOrder %d", int(order)))
	}
	return out
}
