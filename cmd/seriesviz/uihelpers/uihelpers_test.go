package uihelpers

import "testing"

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		in    int
		wantW int
	}{
		{100, 640},
		{639, 640},
		{640, 640},
		{1600, 1600},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.in)
		if w != c.wantW {
			t.Fatalf("input %d => width %d want %d", c.in, w, c.wantW)
		}
		if h < 280 || h > 520 {
			t.Fatalf("height clamp violated for input %d => h=%d", c.in, h)
		}
	}
}

func TestComputeTableColumnWidths(t *testing.T) {
	compact := ComputeTableColumnWidths(400)
	if compact != [2]int{60, 110} {
		t.Fatalf("compact widths mismatch: %#v", compact)
	}
	full := ComputeTableColumnWidths(1200)
	if full != [2]int{90, 180} {
		t.Fatalf("full widths mismatch: %#v", full)
	}
	// Edge transitions around the breakpoint
	if ComputeTableColumnWidths(519)[0] != 60 {
		t.Fatalf("expected compact layout at 519")
	}
	if ComputeTableColumnWidths(521)[0] != 90 {
		t.Fatalf("expected full layout at 521")
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{3, "3.00"},
		{-5, "-5.00"},
		{12.34, "12.3"},
		{123.4, "123"},
		{0.5, "0.500"},
	}
	for _, c := range cases {
		if got := FormatValue(c.in); got != c.want {
			t.Fatalf("FormatValue(%v) = %q want %q", c.in, got, c.want)
		}
	}
}
