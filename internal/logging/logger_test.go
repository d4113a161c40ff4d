package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "test", LevelWarn)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("calibration off", "spacing", 14)
	log.Error("failed", "path", "score.png")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below the level should be dropped: %q", out)
	}
	if !strings.Contains(out, "[test] ") {
		t.Errorf("expected prefix in output: %q", out)
	}
	if !strings.Contains(out, "[WARN] calibration off spacing=14") {
		t.Errorf("expected warn line in output: %q", out)
	}
	if !strings.Contains(out, "[ERROR] failed path=score.png") {
		t.Errorf("expected error line in output: %q", out)
	}
}

func TestLoggerOddKeyValues(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "test", LevelDebug)

	log.Info("odd", "a", 1, "dangling")
	if out := buf.String(); !strings.HasSuffix(strings.TrimSpace(out), "odd a=1") {
		t.Errorf("dangling key should be ignored: %q", out)
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "sheet", LevelInfo).With("api")

	log.Info("listening")
	if !strings.Contains(buf.String(), "[sheet/api] ") {
		t.Errorf("expected nested prefix: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNilAndDiscard(t *testing.T) {
	var log *Logger
	log.Info("no panic")
	if log.With("child") != nil {
		t.Error("With on a nil logger should return nil")
	}
	Discard().Error("dropped")
}
