package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestPreInitLoggerUsesConfiguredHandler(t *testing.T) {
	logger := L("dispatch")

	var buf bytes.Buffer
	Init("text", "info", &buf)

	logger.Info("connected", "server", "http://localhost:3001")

	out := buf.String()
	if strings.Contains(out, `msg="INFO connected`) {
		t.Fatalf("unexpected nested severity prefix in message: %s", out)
	}
	if !strings.Contains(out, "msg=connected") {
		t.Fatalf("expected plain connected message, got: %s", out)
	}
	if !strings.Contains(out, "component=dispatch") {
		t.Fatalf("expected component field, got: %s", out)
	}
	if !strings.Contains(out, "server=http://localhost:3001") {
		t.Fatalf("expected server field, got: %s", out)
	}
}

func TestPreInitLoggerRespectsConfiguredLevel(t *testing.T) {
	logger := L("dispatch")

	var buf bytes.Buffer
	Init("text", "warn", &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info log should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn log should be emitted: %s", out)
	}
}

func TestSetProcForwardsRecords(t *testing.T) {
	var buf bytes.Buffer
	Init("text", "debug", &buf)

	var mu sync.Mutex
	var gotLevel slog.Level
	var gotUser any
	var gotMsg string

	SetProc(func(level slog.Level, user any, format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		gotLevel = level
		gotUser = user
		gotMsg = format
		if len(args) > 0 {
			if s, ok := args[0].(string); ok {
				gotMsg = s
			}
		}
	}, "handle-123")
	t.Cleanup(func() { SetProc(nil, nil) })

	L("capture").Warn("hook disabled by OS")

	mu.Lock()
	defer mu.Unlock()
	if gotLevel != slog.LevelWarn {
		t.Fatalf("expected warn level, got %v", gotLevel)
	}
	if gotUser != "handle-123" {
		t.Fatalf("expected forwarded user value, got %#v", gotUser)
	}
	if !strings.Contains(gotMsg, "hook disabled by OS") {
		t.Fatalf("expected forwarded message, got %q", gotMsg)
	}
}
