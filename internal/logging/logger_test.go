package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json", Output: &buf})

	logger.Info("round complete", "round", 2, "score", 0.72)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "round complete" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["round"] != float64(2) {
		t.Errorf("round = %v", entry["round"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "text", Output: &buf})

	logger.Info("should not appear")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Error("info line leaked through warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn line missing")
	}
}

func TestSanitizerRedactsKeys(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		name  string
		input string
	}{
		{"anthropic", "key sk-ant-" + strings.Repeat("a", 48) + " leaked"},
		{"openai", "key sk-" + strings.Repeat("b", 32) + " leaked"},
		{"google", "key AIza" + strings.Repeat("c", 35) + " leaked"},
		{"bearer", "Authorization: Bearer " + strings.Repeat("d", 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Sanitize(tt.input)
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("Sanitize(%q) = %q, secret not redacted", tt.input, out)
			}
		})
	}
}

func TestSanitizerLeavesPlainText(t *testing.T) {
	s := NewSanitizer()
	in := "the panel agreed on 2028 as the likely year"
	if got := s.Sanitize(in); got != in {
		t.Errorf("Sanitize modified plain text: %q", got)
	}
}

func TestLoggerRedactsThroughHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json", Output: &buf})

	logger.Info("request failed", "detail", "used key sk-"+strings.Repeat("x", 30))

	if strings.Contains(buf.String(), "sk-"+strings.Repeat("x", 30)) {
		t.Error("API key leaked into log output")
	}
	if !strings.Contains(buf.String(), "[REDACTED]") {
		t.Error("redaction placeholder missing")
	}
}

func TestWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Format: "json", Output: &buf})

	logger.WithSession("abc-123").WithRound(3).WithParticipant("claude").Debug("fan-out")

	out := buf.String()
	for _, want := range []string{"abc-123", `"round":3`, "claude"} {
		if !strings.Contains(out, want) {
			t.Errorf("log line missing %q: %s", want, out)
		}
	}
}
