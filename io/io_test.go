package optio

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestManager_ColorOverrides(t *testing.T) {
	var buf bytes.Buffer
	m := New().WithOut(&buf)

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	if m.SupportsColor() {
		t.Fatalf("a bytes.Buffer is not a terminal")
	}

	t.Setenv("FORCE_COLOR", "1")
	if !m.SupportsColor() {
		t.Fatalf("FORCE_COLOR should enable color")
	}

	t.Setenv("NO_COLOR", "1")
	if m.SupportsColor() {
		t.Fatalf("NO_COLOR should win over FORCE_COLOR")
	}

	if !m.ForceColor().SupportsColor() {
		t.Fatalf("ForceColor should win over the environment")
	}
	if m.NoColor().SupportsColor() {
		t.Fatalf("NoColor should disable color")
	}
}

func TestManager_Colorize(t *testing.T) {
	m := New().ForceColor()
	out := m.Colorize("x", BrightRed)
	if out != "\x1b[91mx\x1b[0m" {
		t.Errorf("unexpected sequence %q", out)
	}
	if got := m.Colorize("x", Red); got != "\x1b[31mx\x1b[0m" {
		t.Errorf("unexpected sequence %q", got)
	}
	if got := m.Colorize("x", ColorNone); got != "x" {
		t.Errorf("ColorNone should not style, got %q", got)
	}
	if got := New().NoColor().Bold("x"); got != "x" {
		t.Errorf("Bold without color should be plain, got %q", got)
	}
}

func TestLogger_LevelsAndStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLogger(New().WithOut(&out).WithErr(&errOut).NoColor())

	l.Debug("hidden")
	l.Info("hello %s", "world")
	l.Error("boom")

	if strings.Contains(out.String(), "hidden") {
		t.Errorf("debug should be filtered at the default level")
	}
	if out.String() != "[INFO] hello world\n" {
		t.Errorf("unexpected stdout %q", out.String())
	}
	if errOut.String() != "[ERROR] boom\n" {
		t.Errorf("unexpected stderr %q", errOut.String())
	}

	out.Reset()
	l.WithLevel(LevelDebug).Debug("now visible")
	if out.String() != "[DEBUG] now visible\n" {
		t.Errorf("unexpected debug output %q", out.String())
	}
}

func TestLogger_FormatsAndTimestamp(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(New().WithOut(&out).NoColor()).
		WithFormat(LogFormatPlain).
		WithTimestamp(true).
		WithTimeFormat("15:04")
	l.now = func() time.Time { return time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC) }

	l.Success("done")
	if out.String() != "09:30 done\n" {
		t.Errorf("unexpected output %q", out.String())
	}

	out.Reset()
	l.WithFormat(LogFormatSymbols).WithTimestamp(false).Success("done")
	if out.String() != "✓ done\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestLogger_ErrorsToStdout(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(New().WithOut(&out).NoColor()).ErrorsToStderr(false)
	l.Warning("careful")
	if out.String() != "[WARN] careful\n" {
		t.Errorf("expected warning on stdout, got %q", out.String())
	}
}

func TestLogger_NilAndDiscard(t *testing.T) {
	var l *Logger
	if l.Enabled(LevelError) {
		t.Errorf("nil logger must be disabled")
	}
	l.Error("no panic")

	Discard().Error("dropped")
}
