package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	png "image/png"
	"os"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/equinor/webviz-container-boilerplate/cmd/seriesviz/uihelpers"
	"github.com/equinor/webviz-container-boilerplate/src/applog"
	"github.com/equinor/webviz-container-boilerplate/src/datamodel"
	"github.com/equinor/webviz-container-boilerplate/src/figure"
	"github.com/equinor/webviz-container-boilerplate/src/viewlogic"
)

type uiState struct {
	app    fyne.App
	window fyne.Window
	model  *datamodel.DataModel

	// shared selection
	dataName string

	// plot view settings
	chartKind     viewlogic.ChartKind
	visualization viewlogic.Visualization
	scheme        figure.ColorScheme
	showHints     bool

	// table view settings
	sortOrder viewlogic.SortOrder

	// crosshair
	crosshairEnabled bool
	plotOverlay      *crosshairOverlay

	// widgets
	plotImgCanvas *canvas.Image
	table         *widget.Table
}

// derivedPlotValues recomputes the plot view's sequence from the model. Same
// selection and mode always yield the same output; nothing is cached.
func derivedPlotValues(state *uiState) []float64 {
	return viewlogic.ApplyVisualization(state.model.Series(state.dataName), state.visualization)
}

// derivedTableRows recomputes the table view's rows from the model.
func derivedTableRows(state *uiState) []figure.TableRow {
	return figure.BuildTableRows(viewlogic.SortValues(state.model.Series(state.dataName), state.sortOrder))
}

func plotTitle(state *uiState) string {
	if state.visualization == viewlogic.VisualizationRaw {
		return state.dataName
	}
	return state.dataName + " – " + state.visualization.String()
}

func hintText(v viewlogic.Visualization) string {
	switch v {
	case viewlogic.VisualizationReversed:
		return "Hint: sequence order is reversed."
	case viewlogic.VisualizationFlipped:
		return "Hint: values are mirrored about zero."
	default:
		return "Hint: values shown as stored."
	}
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var screenshotsDir string
	var logLevel string
	flag.StringVar(&screenshotsDir, "screenshots", "", "Render all dataset/kind/mode combinations to PNGs in this directory and exit")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	applog.SetLevel(logLevel)

	model := datamodel.New()
	model.PopulateWithMockData()

	if screenshotsDir != "" {
		if err := RunScreenshotsMode(model, screenshotsDir); err != nil {
			applog.Errorf("screenshots mode failed: %v", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.equinor.seriesviz")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("Series Viewer")
	w.Resize(fyne.NewSize(1000, 700))

	state := &uiState{
		app:           a,
		window:        w,
		model:         model,
		dataName:      model.Names()[0],
		chartKind:     viewlogic.ChartLine,
		visualization: viewlogic.VisualizationRaw,
		scheme:        figure.SchemeBlue,
		sortOrder:     viewlogic.SortAscending,
	}
	// Load toggle prefs before creating overlay/controls so they reflect it
	state.crosshairEnabled = a.Preferences().BoolWithFallback("crosshair", false)
	state.showHints = a.Preferences().BoolWithFallback("showHints", false)

	// Shared settings: the dataset selector visible to both views.
	// Callbacks are assigned after the canvases exist, teaching order matters
	// in fyne: a radio change must not fire into a nil canvas.
	dataRadio := widget.NewRadioGroup(model.Names(), nil)
	dataRadio.Horizontal = true
	dataRadio.Selected = state.dataName

	// Plot view local settings
	kindRadio := widget.NewRadioGroup(chartKindLabels(), nil)
	kindRadio.Selected = state.chartKind.String()
	vizRadio := widget.NewRadioGroup(visualizationLabels(), nil)
	vizRadio.Selected = state.visualization.String()
	schemeRadio := widget.NewRadioGroup(schemeLabels(), nil)
	schemeRadio.Selected = state.scheme.String()
	hintsChk := widget.NewCheck("Hints", nil)
	hintsChk.SetChecked(state.showHints)
	crosshairChk := widget.NewCheck("Crosshair", nil)
	crosshairChk.SetChecked(state.crosshairEnabled)

	// Table view local settings
	sortRadio := widget.NewRadioGroup(sortOrderLabels(), nil)
	sortRadio.Selected = state.sortOrder.String()

	// Table: 1 header row + data rows, 2 columns (Index, Value)
	state.table = widget.NewTable(
		func() (int, int) {
			return len(derivedTableRows(state)) + 1, 2
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			if id.Row == 0 {
				switch id.Col {
				case 0:
					lbl.SetText("Index")
				case 1:
					lbl.SetText("Value")
				}
				return
			}
			rows := derivedTableRows(state)
			rix := id.Row - 1
			if rix < 0 || rix >= len(rows) {
				lbl.SetText("")
				return
			}
			switch id.Col {
			case 0:
				lbl.SetText(fmt.Sprintf("%d", rows[rix].Index))
			case 1:
				lbl.SetText(uihelpers.FormatValue(rows[rix].Value))
			}
		},
	)
	applyTableColumnWidths(state)

	// plot placeholder
	state.plotImgCanvas = canvas.NewImageFromImage(figure.Blank(100, 60))
	state.plotImgCanvas.FillMode = canvas.ImageFillContain
	state.plotImgCanvas.SetMinSize(fyne.NewSize(640, 280))
	state.plotOverlay = newCrosshairOverlay(state)

	// layout
	shared := container.NewHBox(widget.NewLabel("Dataset:"), dataRadio)
	plotSettings := container.NewVBox(
		widget.NewLabel("Graph type"), kindRadio,
		widget.NewSeparator(),
		widget.NewLabel("Visualization"), vizRadio,
		widget.NewSeparator(),
		widget.NewLabel("Color"), schemeRadio,
		widget.NewSeparator(),
		hintsChk, crosshairChk,
	)
	plotArea := container.NewStack(state.plotImgCanvas, state.plotOverlay)
	plotTab := container.NewBorder(nil, nil, plotSettings, nil, plotArea)
	tableSettings := container.NewVBox(widget.NewLabel("Order"), sortRadio)
	tableTab := container.NewBorder(nil, nil, tableSettings, nil, state.table)

	tabs := container.NewAppTabs(
		container.NewTabItem("Plot", plotTab),
		container.NewTabItem("Table", tableTab),
	)
	tabs.SetTabLocation(container.TabLocationTop)
	tabs.OnSelected = func(ti *container.TabItem) {
		state.app.Preferences().SetInt("selectedTabIndex", tabs.SelectedIndex())
	}
	w.SetContent(container.NewBorder(shared, nil, nil, nil, tabs))

	// Redraw the plot on window resize so it scales with width
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			savePrefs(state)
			close(done)
		})
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						fyne.Do(func() {
							redrawPlot(state)
							applyTableColumnWidths(state)
						})
					}
				}
			}
		}()
	}

	// Now that canvases exist, assign the control callbacks.
	dataRadio.OnChanged = func(v string) {
		if v == "" || !state.model.Has(v) {
			return
		}
		state.dataName = v
		applog.Debugf("dataset changed to %q", v)
		savePrefs(state)
		redrawPlot(state)
		state.table.Refresh()
	}
	kindRadio.OnChanged = func(v string) {
		k, err := viewlogic.ParseChartKind(v)
		if err != nil {
			applog.Warnf("chart kind: %v", err)
			return
		}
		state.chartKind = k
		savePrefs(state)
		redrawPlot(state)
	}
	vizRadio.OnChanged = func(v string) {
		m, err := viewlogic.ParseVisualization(v)
		if err != nil {
			applog.Warnf("visualization: %v", err)
			return
		}
		state.visualization = m
		savePrefs(state)
		redrawPlot(state)
	}
	schemeRadio.OnChanged = func(v string) {
		s, err := figure.ParseColorScheme(v)
		if err != nil {
			applog.Warnf("color scheme: %v", err)
			return
		}
		state.scheme = s
		savePrefs(state)
		redrawPlot(state)
	}
	sortRadio.OnChanged = func(v string) {
		o, err := viewlogic.ParseSortOrder(v)
		if err != nil {
			applog.Warnf("sort order: %v", err)
			return
		}
		state.sortOrder = o
		savePrefs(state)
		state.table.Refresh()
	}
	hintsChk.OnChanged = func(b bool) {
		state.showHints = b
		savePrefs(state)
		redrawPlot(state)
	}
	crosshairChk.OnChanged = func(b bool) {
		state.crosshairEnabled = b
		savePrefs(state)
		if state.plotOverlay != nil {
			state.plotOverlay.enabled = b
			state.plotOverlay.Refresh()
		}
	}

	buildMenus(state)
	loadPrefs(state, dataRadio, kindRadio, vizRadio, schemeRadio, sortRadio, tabs)
	hintsChk.SetChecked(state.showHints)
	crosshairChk.SetChecked(state.crosshairEnabled)
	if state.plotOverlay != nil {
		state.plotOverlay.enabled = state.crosshairEnabled
		state.plotOverlay.Refresh()
	}
	redrawPlot(state)

	w.ShowAndRun()
}

func chartKindLabels() []string {
	kinds := viewlogic.ChartKinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.String()
	}
	return out
}

func visualizationLabels() []string {
	modes := viewlogic.Visualizations()
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = m.String()
	}
	return out
}

func schemeLabels() []string {
	schemes := figure.Schemes()
	out := make([]string, len(schemes))
	for i, s := range schemes {
		out[i] = s.String()
	}
	return out
}

func sortOrderLabels() []string {
	orders := viewlogic.SortOrders()
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.String()
	}
	return out
}

// chartSize derives the plot render size from the current window width.
func chartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		return 900, 300
	}
	sz := state.window.Canvas().Size()
	return uihelpers.ComputeChartDimensions(int(sz.Width*0.95) - 180)
}

func applyTableColumnWidths(state *uiState) {
	if state == nil || state.table == nil {
		return
	}
	var winW float32 = 1000
	if state.window != nil && state.window.Canvas() != nil {
		winW = state.window.Canvas().Size().Width
	}
	widths := uihelpers.ComputeTableColumnWidths(winW)
	state.table.SetColumnWidth(0, float32(widths[0]))
	state.table.SetColumnWidth(1, float32(widths[1]))
	state.table.Refresh()
}

func redrawPlot(state *uiState) {
	if state == nil || state.plotImgCanvas == nil {
		return
	}
	cw, chh := chartSize(state)
	img := renderPlot(state, cw, chh)
	state.plotImgCanvas.Image = img
	state.plotImgCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(chh)))
	state.plotImgCanvas.Refresh()
	if state.plotOverlay != nil {
		state.plotOverlay.Refresh()
	}
}

// renderPlot builds the figure for the current selection. Render errors fall
// back to a blank image so the UI still visibly updates.
func renderPlot(state *uiState, w, h int) image.Image {
	spec := figure.PlotSpec{
		Title:  plotTitle(state),
		Kind:   state.chartKind,
		Scheme: state.scheme,
		Width:  w,
		Height: h,
		Values: derivedPlotValues(state),
	}
	img, err := figure.RenderPNG(spec)
	if err != nil {
		applog.Errorf("plot render: %v; showing blank fallback", err)
		return figure.Blank(w, h)
	}
	if state.showHints {
		return figure.AnnotateHint(img, hintText(state.visualization))
	}
	return img
}

// menus and shortcuts
func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Plot…", func() { exportPlotPNG(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { exportPlotPNG(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { exportPlotPNG(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

// exportPlotPNG writes the currently displayed plot image via a save dialog.
func exportPlotPNG(state *uiState) {
	if state == nil || state.window == nil || state.plotImgCanvas == nil || state.plotImgCanvas.Image == nil {
		dialog.ShowInformation("Export", "No plot to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, state.plotImgCanvas.Image); err != nil {
			applog.Errorf("export plot: %v", err)
		}
	}, state.window)
	fs.SetFileName(screenshotName(state.dataName, state.chartKind, state.visualization))
	fs.Show()
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("dataName", state.dataName)
	prefs.SetString("chartKind", state.chartKind.String())
	prefs.SetString("visualization", state.visualization.String())
	prefs.SetString("colorScheme", state.scheme.String())
	prefs.SetString("sortOrder", state.sortOrder.String())
	prefs.SetBool("showHints", state.showHints)
	prefs.SetBool("crosshair", state.crosshairEnabled)
}

func loadPrefs(state *uiState, dataRadio, kindRadio, vizRadio, schemeRadio, sortRadio *widget.RadioGroup, tabs *container.AppTabs) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	if name := prefs.StringWithFallback("dataName", state.dataName); state.model.Has(name) {
		state.dataName = name
	}
	if k, err := viewlogic.ParseChartKind(prefs.StringWithFallback("chartKind", state.chartKind.String())); err == nil {
		state.chartKind = k
	}
	if m, err := viewlogic.ParseVisualization(prefs.StringWithFallback("visualization", state.visualization.String())); err == nil {
		state.visualization = m
	}
	if s, err := figure.ParseColorScheme(prefs.StringWithFallback("colorScheme", state.scheme.String())); err == nil {
		state.scheme = s
	}
	if o, err := viewlogic.ParseSortOrder(prefs.StringWithFallback("sortOrder", state.sortOrder.String())); err == nil {
		state.sortOrder = o
	}
	state.showHints = prefs.BoolWithFallback("showHints", state.showHints)
	state.crosshairEnabled = prefs.BoolWithFallback("crosshair", state.crosshairEnabled)

	if dataRadio != nil {
		dataRadio.Selected = state.dataName
		dataRadio.Refresh()
	}
	if kindRadio != nil {
		kindRadio.Selected = state.chartKind.String()
		kindRadio.Refresh()
	}
	if vizRadio != nil {
		vizRadio.Selected = state.visualization.String()
		vizRadio.Refresh()
	}
	if schemeRadio != nil {
		schemeRadio.Selected = state.scheme.String()
		schemeRadio.Refresh()
	}
	if sortRadio != nil {
		sortRadio.Selected = state.sortOrder.String()
		sortRadio.Refresh()
	}
	if tabs != nil {
		idx := prefs.IntWithFallback("selectedTabIndex", 0)
		if idx >= 0 && idx < len(tabs.Items) {
			tabs.SelectIndex(idx)
		}
	}
}
