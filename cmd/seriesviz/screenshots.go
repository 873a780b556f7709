package main

import (
	"bytes"
	"fmt"
	png "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/equinor/webviz-container-boilerplate/src/applog"
	"github.com/equinor/webviz-container-boilerplate/src/datamodel"
	"github.com/equinor/webviz-container-boilerplate/src/figure"
	"github.com/equinor/webviz-container-boilerplate/src/viewlogic"
)

// RunScreenshotsMode renders every dataset/kind/visualization combination to
// PNGs under outDir. It runs headlessly without creating a UI window.
func RunScreenshotsMode(model *datamodel.DataModel, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	const w, h = 900, 300
	count := 0
	for _, name := range model.Names() {
		for _, kind := range viewlogic.ChartKinds() {
			for _, viz := range viewlogic.Visualizations() {
				values := viewlogic.ApplyVisualization(model.Series(name), viz)
				spec := figure.PlotSpec{
					Title:  name + " – " + viz.String(),
					Kind:   kind,
					Scheme: figure.SchemeBlue,
					Width:  w,
					Height: h,
					Values: values,
				}
				img, err := figure.RenderPNG(spec)
				if err != nil {
					return fmt.Errorf("render %s/%s/%s: %w", name, kind, viz, err)
				}
				var buf bytes.Buffer
				if err := png.Encode(&buf, img); err != nil {
					return fmt.Errorf("png encode %s: %w", name, err)
				}
				outPath := filepath.Join(outDir, screenshotName(name, kind, viz))
				if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", outPath, err)
				}
				count++
			}
		}
	}
	applog.Infof("wrote %d screenshots to %s", count, outDir)
	return nil
}

// screenshotName builds a filesystem-friendly PNG name for one combination.
func screenshotName(dataset string, kind viewlogic.ChartKind, viz viewlogic.Visualization) string {
	return fmt.Sprintf("%s_%s_%s.png", slug(dataset), slug(kind.String()), slug(viz.String()))
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	return b.String()
}
