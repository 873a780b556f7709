package datamodel

import (
	"reflect"
	"testing"
)

func newPopulated() *DataModel {
	m := New()
	m.PopulateWithMockData()
	return m
}

func TestNamesSortedAndStable(t *testing.T) {
	m := newPopulated()
	want := []string{"Dataset A", "Dataset B", "Dataset C"}
	for i := 0; i < 3; i++ {
		got := m.Names()
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Names() run %d = %v want %v", i, got, want)
		}
	}
}

func TestSeriesNonEmptyForAllNames(t *testing.T) {
	m := newPopulated()
	for _, name := range m.Names() {
		vals := m.Series(name)
		if len(vals) == 0 {
			t.Fatalf("series %q is empty", name)
		}
		again := m.Series(name)
		if !reflect.DeepEqual(vals, again) {
			t.Fatalf("series %q not deterministic: %v vs %v", name, vals, again)
		}
	}
}

func TestSeriesReturnsDefensiveCopy(t *testing.T) {
	m := newPopulated()
	vals := m.Series("Dataset A")
	vals[0] = 999
	if got := m.Series("Dataset A")[0]; got == 999 {
		t.Fatalf("mutating returned slice leaked into the model")
	}
}

func TestWorkedExampleDatasetA(t *testing.T) {
	m := newPopulated()
	want := []float64{3, 1, 2}
	if got := m.Series("Dataset A"); !reflect.DeepEqual(got, want) {
		t.Fatalf("Dataset A = %v want %v", got, want)
	}
}

func TestUnknownNamePanics(t *testing.T) {
	m := newPopulated()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown series name")
		}
	}()
	m.Series("nope")
}

func TestDoublePopulatePanics(t *testing.T) {
	m := newPopulated()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on second PopulateWithMockData")
		}
	}()
	m.PopulateWithMockData()
}

func TestAddValidation(t *testing.T) {
	cases := []struct {
		name string
		fn   func(*DataModel)
	}{
		{"empty name", func(m *DataModel) { m.Add("", []float64{1}) }},
		{"empty values", func(m *DataModel) { m.Add("x", nil) }},
		{"duplicate", func(m *DataModel) { m.Add("x", []float64{1}); m.Add("x", []float64{2}) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := New()
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			c.fn(m)
		})
	}
}

func TestAddCopiesInput(t *testing.T) {
	m := New()
	src := []float64{1, 2, 3}
	m.Add("x", src)
	src[0] = 42
	if got := m.Series("x")[0]; got != 1 {
		t.Fatalf("Add did not copy input: got %v", got)
	}
}
