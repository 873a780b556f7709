package applog

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() { baseLogger = saved })
	return &buf
}

func TestInfofNoDoubleFormattingWithPercent(t *testing.T) {
	buf := capture(t)
	SetLevel("info")

	msg := "rendered plot (100.0% of 3 samples) scheme=Blue"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(100.0% of 3 samples)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	SetLevel("warn")
	defer SetLevel("info")

	Debugf("dropped debug")
	Infof("dropped info")
	Warnf("kept warn")
	Errorf("kept error")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("low-severity lines leaked: %s", out)
	}
	if !strings.Contains(out, "[WARN] kept warn") || !strings.Contains(out, "[ERROR] kept error") {
		t.Fatalf("expected warn/error lines, got: %s", out)
	}
}

func TestSetLevelIgnoresUnknown(t *testing.T) {
	SetLevel("info")
	SetLevel("chatty")
	if GetLevel() != LevelInfo {
		t.Fatalf("unknown level changed state: %v", GetLevel())
	}
}
