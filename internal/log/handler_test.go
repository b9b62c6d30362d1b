package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{name: "debug", input: "debug", expected: LevelDebug},
		{name: "uppercase is accepted", input: "WARN", expected: LevelWarn},
		{name: "mixed case", input: "Info", expected: LevelInfo},
		{name: "error", input: "error", expected: LevelError},
		{name: "unknown level", input: "loud", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLevel(%q) succeeded, expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) failed: %v", tt.input, err)
			}
			if level != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, level)
			}
		})
	}
}

func TestHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelDebug)

	record := slog.NewRecord(time.Now(), slog.LevelDebug, "processed line", 0)
	record.AddAttrs(slog.String("input", "sum 1 2"))
	if err := h.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	got := buf.String()
	if !strings.HasPrefix(got, "[DEBUG] processed line") {
		t.Errorf("Expected '[DEBUG] processed line' prefix, got %q", got)
	}
	if !strings.Contains(got, "input=sum 1 2") {
		t.Errorf("Expected attribute in output, got %q", got)
	}
}

func TestHandlerInfoHasNoPrefix(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelInfo)

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "ready", 0)
	if err := h.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if got := buf.String(); got != "ready\n" {
		t.Errorf("Expected %q, got %q", "ready\n", got)
	}
}

func TestHandlerLevelGate(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, slog.LevelInfo)
	ctx := context.Background()

	if h.Enabled(ctx, slog.LevelDebug) {
		t.Error("Expected debug to be disabled at info level")
	}
	if !h.Enabled(ctx, slog.LevelWarn) {
		t.Error("Expected warn to be enabled at info level")
	}
}

func TestCallbackLoggerForwardsRecords(t *testing.T) {
	var got []slog.Record
	logger := NewCallbackLogger(func(record slog.Record) {
		got = append(got, record)
	}, slog.LevelInfo)

	logger.Info("session started", slog.String("prompt", "> "))
	logger.Debug("dropped by level gate")

	if len(got) != 1 {
		t.Fatalf("Expected 1 forwarded record, got %d", len(got))
	}
	if got[0].Message != "session started" {
		t.Errorf("Expected 'session started', got %q", got[0].Message)
	}
}

func TestFormat(t *testing.T) {
	record := slog.NewRecord(time.Now(), slog.LevelWarn, "slow input", 0)
	record.AddAttrs(slog.Int("bytes", 4096))

	expected := "[WARN] slow input bytes=4096"
	if got := Format(record); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}
