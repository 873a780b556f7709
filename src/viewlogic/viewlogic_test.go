package viewlogic

import (
	"reflect"
	"testing"
)

func TestWorkedExample(t *testing.T) {
	series := []float64{3, 1, 2}
	cases := []struct {
		name string
		got  []float64
		want []float64
	}{
		{"raw", ApplyVisualization(series, VisualizationRaw), []float64{3, 1, 2}},
		{"reversed", ApplyVisualization(series, VisualizationReversed), []float64{2, 1, 3}},
		{"ascending", SortValues(series, SortAscending), []float64{1, 2, 3}},
		{"descending", SortValues(series, SortDescending), []float64{3, 2, 1}},
	}
	for _, c := range cases {
		if !reflect.DeepEqual(c.got, c.want) {
			t.Fatalf("%s = %v want %v", c.name, c.got, c.want)
		}
	}
}

func TestReverseIsInvolution(t *testing.T) {
	inputs := [][]float64{
		{},
		{1},
		{3, 1, 2},
		{5, 2, 8, 4, 6, 1},
		{-2, 7, 0, 3, -5, 9, 4},
	}
	for _, in := range inputs {
		twice := Reverse(Reverse(in))
		if !reflect.DeepEqual(twice, in) && len(in) > 0 {
			t.Fatalf("Reverse twice of %v = %v", in, twice)
		}
	}
}

func TestFlipIsInvolution(t *testing.T) {
	in := []float64{-2, 7, 0, 3, -5, 9, 4}
	for _, ref := range []float64{0, 1, -3.5, 100} {
		twice := FlipAround(FlipAround(in, ref), ref)
		if !reflect.DeepEqual(twice, in) {
			t.Fatalf("FlipAround twice (ref=%v) of %v = %v", ref, in, twice)
		}
	}
}

func TestFlippedNegates(t *testing.T) {
	got := ApplyVisualization([]float64{3, -1, 0}, VisualizationFlipped)
	want := []float64{-3, 1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("flipped = %v want %v", got, want)
	}
}

func TestSortAscendingReversedEqualsDescending(t *testing.T) {
	// Holds for sequences with distinct values.
	inputs := [][]float64{
		{3, 1, 2},
		{5, 2, 8, 4, 6, 1},
		{-2, 7, 0, 3, -5, 9, 4},
	}
	for _, in := range inputs {
		asc := SortValues(in, SortAscending)
		desc := SortValues(in, SortDescending)
		if !reflect.DeepEqual(Reverse(asc), desc) {
			t.Fatalf("reverse(asc(%v)) = %v want %v", in, Reverse(asc), desc)
		}
	}
}

func TestTransformsDoNotMutateInput(t *testing.T) {
	in := []float64{3, 1, 2}
	orig := []float64{3, 1, 2}
	_ = ApplyVisualization(in, VisualizationReversed)
	_ = ApplyVisualization(in, VisualizationFlipped)
	_ = SortValues(in, SortAscending)
	_ = SortValues(in, SortDescending)
	if !reflect.DeepEqual(in, orig) {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestParseRoundTrips(t *testing.T) {
	for _, v := range Visualizations() {
		got, err := ParseVisualization(v.String())
		if err != nil || got != v {
			t.Fatalf("ParseVisualization(%q) = %v, %v", v.String(), got, err)
		}
	}
	for _, o := range SortOrders() {
		got, err := ParseSortOrder(o.String())
		if err != nil || got != o {
			t.Fatalf("ParseSortOrder(%q) = %v, %v", o.String(), got, err)
		}
	}
	for _, k := range ChartKinds() {
		got, err := ParseChartKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseChartKind(%q) = %v, %v", k.String(), got, err)
		}
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	if _, err := ParseVisualization("sideways"); err == nil {
		t.Fatalf("expected error for unknown visualization")
	}
	if _, err := ParseSortOrder("shuffled"); err == nil {
		t.Fatalf("expected error for unknown sort order")
	}
	if _, err := ParseChartKind("pie"); err == nil {
		t.Fatalf("expected error for unknown chart kind")
	}
}

func TestInvalidEnumPanics(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			fn()
		})
	}
	mustPanic("visualization", func() { ApplyVisualization([]float64{1}, Visualization(99)) })
	mustPanic("sort order", func() { SortValues([]float64{1}, SortOrder(99)) })
	mustPanic("chart kind string", func() { _ = ChartKind(99).String() })
}
