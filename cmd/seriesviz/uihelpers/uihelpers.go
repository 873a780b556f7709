package uihelpers

import (
	"math"
	"strconv"
)

// ComputeChartDimensions applies width/height clamp rules used for the plot
// image. Input: desired raw width (e.g., canvas width). Returns clamped
// width & height keeping a ~3:1 aspect ratio.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	h := int(float32(w) * 0.33)
	if h < 280 {
		h = 280
	}
	if h > 520 {
		h = 520
	}
	return w, h
}

// ComputeTableColumnWidths returns the Index and Value column widths for a
// given window width. Narrow windows get a compact layout.
func ComputeTableColumnWidths(winW float32) [2]int {
	const compactBreakpoint = 520
	if winW < compactBreakpoint {
		return [2]int{60, 110}
	}
	return [2]int{90, 180}
}

// FormatValue provides a compact numeric label for table cells and the
// crosshair readout.
func FormatValue(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av == 0:
		return "0"
	default:
		return strconv.FormatFloat(v, 'f', 3, 64)
	}
}
