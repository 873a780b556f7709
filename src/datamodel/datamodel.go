package datamodel

import (
	"fmt"
	"sort"
)

// DataModel holds named numeric series. It is populated once at startup and
// treated as read-only afterwards; lookups on unknown names indicate a wiring
// bug and fail fast.
type DataModel struct {
	series    map[string][]float64
	populated bool
}

// New returns an empty model. Call PopulateWithMockData (or Add) before use.
func New() *DataModel {
	return &DataModel{series: map[string][]float64{}}
}

// PopulateWithMockData seeds the fixed demo datasets. It may only be called
// once; a second call panics because the model is immutable after seeding.
func (m *DataModel) PopulateWithMockData() {
	if m.populated {
		panic("datamodel: PopulateWithMockData called twice")
	}
	m.Add("Dataset A", []float64{3, 1, 2})
	m.Add("Dataset B", []float64{5, 2, 8, 4, 6, 1})
	m.Add("Dataset C", []float64{-2, 7, 0, 3, -5, 9, 4})
	m.populated = true
}

// Add registers a series under name. Duplicate names and empty sequences are
// programming errors.
func (m *DataModel) Add(name string, values []float64) {
	if m.populated {
		panic("datamodel: Add after PopulateWithMockData")
	}
	if name == "" {
		panic("datamodel: empty series name")
	}
	if len(values) == 0 {
		panic(fmt.Sprintf("datamodel: empty series %q", name))
	}
	if _, dup := m.series[name]; dup {
		panic(fmt.Sprintf("datamodel: duplicate series %q", name))
	}
	cp := make([]float64, len(values))
	copy(cp, values)
	m.series[name] = cp
}

// Has reports whether name is a known series.
func (m *DataModel) Has(name string) bool {
	_, ok := m.series[name]
	return ok
}

// Series returns a copy of the values stored under name. Unknown names panic:
// every caller selects from Names(), so a miss means broken wiring.
func (m *DataModel) Series(name string) []float64 {
	vals, ok := m.series[name]
	if !ok {
		panic(fmt.Sprintf("datamodel: unknown series %q", name))
	}
	out := make([]float64, len(vals))
	copy(out, vals)
	return out
}

// Names returns all series names sorted, so selector options are stable
// across runs.
func (m *DataModel) Names() []string {
	out := make([]string, 0, len(m.series))
	for name := range m.series {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
