package main

import (
	"fmt"
	"image/color"
	"math"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/equinor/webviz-container-boilerplate/cmd/seriesviz/uihelpers"
)

// Gutter the rendered chart reserves left of the plot area for y-axis labels,
// in image pixels. Keep in sync with the figure package padding.
const (
	axisLeftGutterPx  = float32(40)
	axisRightGutterPx = float32(8)
)

// computeContainRect returns where an imgW x imgH image lands inside a
// viewW x viewH canvas under ImageFillContain, plus the applied scale.
func computeContainRect(imgW, imgH, viewW, viewH float32) (drawX, drawY, drawW, drawH, scale float32) {
	if imgW <= 0 || imgH <= 0 {
		return 0, 0, viewW, viewH, 1
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	drawW = imgW * scale
	drawH = imgH * scale
	drawX = (viewW - drawW) / 2
	drawY = (viewH - drawH) / 2
	return drawX, drawY, drawW, drawH, scale
}

// xCentersIndexMode computes the overlay-space x position of each plotted
// sample when samples are spread evenly across the plot area.
func xCentersIndexMode(n int, imgW, imgH, viewW, viewH float32) []float32 {
	if n <= 0 {
		return nil
	}
	drawX, _, _, _, scale := computeContainRect(imgW, imgH, viewW, viewH)
	leftPadImg := float32(16) + axisLeftGutterPx
	rightPadImg := float32(12) + axisRightGutterPx
	plotWImg := imgW - leftPadImg - rightPadImg
	if plotWImg < 1 {
		plotWImg = imgW
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		pxImg := leftPadImg + plotWImg*(float32(i)+0.5)/float32(n)
		out[i] = drawX + pxImg*scale
	}
	return out
}

// nearestIndexAndLineXFromCenters picks the index closest to mouseX and the
// snapped line position.
func nearestIndexAndLineXFromCenters(centers []float32, mouseX float32) (int, float32) {
	if len(centers) == 0 {
		return 0, 0
	}
	best := 0
	bestD := float32(math.MaxFloat32)
	for i, c := range centers {
		d := float32(math.Abs(float64(mouseX - c)))
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best, centers[best]
}

// crosshairOverlay draws a crosshair over the plot image when enabled,
// snapping the vertical line to the nearest plotted sample and showing its
// index and value near the cursor.
type crosshairOverlay struct {
	widget.BaseWidget
	state    *uiState
	enabled  bool
	mouse    fyne.Position
	hovering bool
}

func newCrosshairOverlay(state *uiState) *crosshairOverlay {
	c := &crosshairOverlay{state: state, enabled: state != nil && state.crosshairEnabled}
	c.ExtendBaseWidget(c)
	return c
}

func (c *crosshairOverlay) CreateRenderer() fyne.WidgetRenderer {
	// transparent background keeps the full hit-area for hover events
	bg := canvas.NewRectangle(color.RGBA{})
	lineV := canvas.NewLine(color.RGBA{R: 200, G: 200, B: 200, A: 220})
	lineV.StrokeWidth = 1.0
	lineH := canvas.NewLine(color.RGBA{R: 200, G: 200, B: 200, A: 220})
	lineH.StrokeWidth = 1.0
	dot := canvas.NewCircle(color.RGBA{R: 240, G: 240, B: 240, A: 220})
	label := widget.NewRichText()
	label.Wrapping = fyne.TextWrapOff
	labelBG := canvas.NewRectangle(color.RGBA{A: 170})
	objs := []fyne.CanvasObject{bg, lineV, lineH, dot, labelBG, label}
	return &crosshairRenderer{c: c, bg: bg, lineV: lineV, lineH: lineH, dot: dot, labelBG: labelBG, label: label, objs: objs}
}

type crosshairRenderer struct {
	c       *crosshairOverlay
	bg      *canvas.Rectangle
	lineV   *canvas.Line
	lineH   *canvas.Line
	dot     *canvas.Circle
	labelBG *canvas.Rectangle
	label   *widget.RichText
	objs    []fyne.CanvasObject
}

func (r *crosshairRenderer) Destroy() {}

func (r *crosshairRenderer) hide() {
	r.lineV.Position1 = fyne.NewPos(-10, -10)
	r.lineV.Position2 = fyne.NewPos(-10, -10)
	r.lineH.Position1 = fyne.NewPos(-10, -10)
	r.lineH.Position2 = fyne.NewPos(-10, -10)
	r.dot.Move(fyne.NewPos(-10, -10))
	r.labelBG.Resize(fyne.NewSize(0, 0))
	r.labelBG.Move(fyne.NewPos(-1000, -1000))
	r.label.Move(fyne.NewPos(-1000, -1000))
}

func (r *crosshairRenderer) Layout(size fyne.Size) {
	if r.c == nil {
		return
	}
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	if !r.c.enabled || !r.c.hovering {
		r.hide()
		return
	}
	x := clampF(r.c.mouse.X, 0, size.Width)
	y := clampF(r.c.mouse.Y, 0, size.Height)

	// Determine the drawn image rect (contain fit) in overlay coordinates.
	var imgW, imgH float32
	if r.c.state != nil && r.c.state.plotImgCanvas != nil && r.c.state.plotImgCanvas.Image != nil {
		b := r.c.state.plotImgCanvas.Image.Bounds()
		imgW = float32(b.Dx())
		imgH = float32(b.Dy())
	}
	if imgW <= 0 || imgH <= 0 {
		imgW, imgH = size.Width, size.Height
	}
	drawX, drawY, drawW, drawH, _ := computeContainRect(imgW, imgH, size.Width, size.Height)
	if x < drawX || x > drawX+drawW || y < drawY || y > drawY+drawH {
		r.hide()
		return
	}

	values := derivedPlotValues(r.c.state)
	centers := xCentersIndexMode(len(values), imgW, imgH, size.Width, size.Height)
	idx, lineX := nearestIndexAndLineXFromCenters(centers, x)

	r.lineV.Position1 = fyne.NewPos(lineX, 0)
	r.lineV.Position2 = fyne.NewPos(lineX, size.Height)
	r.lineH.Position1 = fyne.NewPos(0, y)
	r.lineH.Position2 = fyne.NewPos(size.Width, y)
	r.dot.Resize(fyne.NewSize(6, 6))
	r.dot.Move(fyne.NewPos(lineX-3, y-3))

	if len(values) > 0 {
		text := fmt.Sprintf("Index %d\nValue %s", idx+1, uihelpers.FormatValue(values[idx]))
		r.label.Segments = []widget.RichTextSegment{&widget.TextSegment{Text: text}}
	} else {
		r.label.Segments = nil
	}
	r.label.Refresh()

	pad := float32(6)
	ts := r.label.MinSize()
	bgW := ts.Width + 2*pad
	bgH := ts.Height + 2*pad
	tx, ty := x+8, y+8
	if tx+bgW > size.Width {
		tx = size.Width - bgW
	}
	if ty+bgH > size.Height {
		ty = size.Height - bgH
	}
	if len(r.label.Segments) == 0 {
		r.labelBG.Resize(fyne.NewSize(0, 0))
		r.labelBG.Move(fyne.NewPos(-1000, -1000))
		r.label.Move(fyne.NewPos(-1000, -1000))
	} else {
		r.labelBG.Resize(fyne.NewSize(bgW, bgH))
		r.labelBG.Move(fyne.NewPos(tx, ty))
		r.label.Move(fyne.NewPos(tx+pad, ty+pad))
	}
}

func (r *crosshairRenderer) MinSize() fyne.Size           { return fyne.NewSize(10, 10) }
func (r *crosshairRenderer) Objects() []fyne.CanvasObject { return r.objs }
func (r *crosshairRenderer) Refresh() {
	r.Layout(r.c.Size())
	r.bg.Refresh()
	r.lineV.StrokeColor = theme.Color(theme.ColorNameDisabled)
	r.lineH.StrokeColor = theme.Color(theme.ColorNameDisabled)
	r.lineV.Refresh()
	r.lineH.Refresh()
	r.dot.Refresh()
	r.labelBG.Refresh()
	r.label.Refresh()
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (c *crosshairOverlay) MouseMoved(ev *desktop.MouseEvent) {
	if !c.enabled {
		return
	}
	c.hovering = true
	c.mouse = ev.Position
	c.Refresh()
}
func (c *crosshairOverlay) MouseIn(ev *desktop.MouseEvent) { c.hovering = true; c.Refresh() }
func (c *crosshairOverlay) MouseOut()                      { c.hovering = false; c.Refresh() }

var _ desktop.Hoverable = (*crosshairOverlay)(nil)
