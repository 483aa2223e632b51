package favebutton

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestLifecycleLogging(t *testing.T) {
	buf := captureLogs(t)
	s := NewScene()
	b := newTestButton(s, DefaultOptions())
	b.Toggle()
	stepFor(s, 1.5)

	out := buf.String()
	for _, msg := range []string{"ignited", "ring removed", "spark removed", "selection settled"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log is missing %q", msg)
		}
	}
	if !strings.Contains(out, "button=heart") {
		t.Error("log records should name the button")
	}
}

func TestSetLoggerNilSilences(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger should never be nil")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestDebugModeKeepsExplicitLogger(t *testing.T) {
	captureLogs(t)
	l := Logger()
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	if Logger() != l {
		t.Error("debug mode replaced an explicit logger")
	}
}

func TestDebugModePanicsOnDisposed(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := NewContainer("gone")
	n.Dispose()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if !strings.Contains(r.(string), `"gone"`) {
			t.Errorf("panic = %v, want it to name the node", r)
		}
	}()
	s.Root().AddChild(n)
}
