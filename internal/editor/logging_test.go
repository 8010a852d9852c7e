package editor

import (
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var out strings.Builder
	log := NewLogger(&out, LogLevelWarn)

	log.Debug("quiet")
	log.Info("quiet")
	log.Warn("loud %d", 1)
	log.Error("loud %d", 2)

	got := out.String()
	if strings.Contains(got, "quiet") {
		t.Errorf("low levels should be filtered:\n%s", got)
	}
	if !strings.Contains(got, "[WARN] tern: loud 1") || !strings.Contains(got, "[ERROR] tern: loud 2") {
		t.Errorf("missing log lines:\n%s", got)
	}
}

func TestLoggerFields(t *testing.T) {
	var out strings.Builder
	log := NewLogger(&out, LogLevelInfo).WithField("doc", "a.txt")

	log.Info("saved")
	if !strings.Contains(out.String(), "doc=a.txt") {
		t.Errorf("missing field:\n%s", out.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	if ParseLogLevel("debug") != LogLevelDebug {
		t.Error("debug")
	}
	if ParseLogLevel("ERROR") != LogLevelError {
		t.Error("error")
	}
	if ParseLogLevel("bogus") != LogLevelInfo {
		t.Error("default should be info")
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	// Must not panic with a nil output.
	NullLogger.Info("dropped")
	NullLogger.Error("dropped")
}
