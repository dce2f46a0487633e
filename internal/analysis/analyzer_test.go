package analysis

import (
	"errors"
	"strings"
	"testing"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

func TestCoreConflictFindsMarker(t *testing.T) {
	texts := []string{
		"The approach works in most settings.",
		"The idea is sound. However, it ignores operational cost entirely.",
	}

	got := CoreConflict(texts)
	if !strings.HasPrefix(got, "However, it ignores") {
		t.Errorf("CoreConflict() = %q, want window starting at the marker", got)
	}
}

func TestCoreConflictPrefersExplicitDisagreement(t *testing.T) {
	texts := []string{"I disagree with the premise that scale fixes this."}

	got := CoreConflict(texts)
	if !strings.Contains(got, "disagree with the premise") {
		t.Errorf("CoreConflict() = %q", got)
	}
}

func TestCoreConflictGenericFallback(t *testing.T) {
	texts := []string{
		"Option A seems preferable.",
		"Option B fits the constraints better.",
	}

	if got := CoreConflict(texts); got != genericConflict {
		t.Errorf("CoreConflict() = %q, want generic message", got)
	}
}

func TestCoreConflictTruncatesWindow(t *testing.T) {
	long := "However, " + strings.Repeat("detail ", 60)
	got := CoreConflict([]string{long})
	if len(got) > conflictWindow+3 {
		t.Errorf("CoreConflict() length = %d, want at most %d", len(got), conflictWindow+3)
	}
}

func TestKeyDifference(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"first long sentence",
			"Yes. The main constraint is regulatory approval timelines. More detail follows.",
			"The main constraint is regulatory approval timelines.",
		},
		{
			"short text used as-is",
			"Fine by me",
			"Fine by me",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyDifference(tt.text); got != tt.want {
				t.Errorf("KeyDifference() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyDifferenceTruncates(t *testing.T) {
	text := strings.Repeat("word ", 50) + "."
	got := KeyDifference(text)
	if len(got) > keyPointLimit+3 {
		t.Errorf("KeyDifference() length = %d, want at most %d", len(got), keyPointLimit+3)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated extract should end with ellipsis: %q", got)
	}
}

func TestAnalyze(t *testing.T) {
	round := &core.Round{
		Number: 3,
		Responses: map[string]core.Response{
			"claude": {
				Participant: "claude",
				Content:     "The transition began in 2019. However, adoption remains uneven. Confidence: 90%",
				Confidence:  90,
			},
			"gpt": {
				Participant: "gpt",
				Content:     "The shift is far more recent than claimed. Confidence: 88%",
				Confidence:  88,
			},
		},
	}

	report := Analyze(round, []string{"claude", "gpt"})

	if report.Type != core.DisagreementFactual {
		t.Errorf("Type = %v, want factual", report.Type)
	}
	// Factual baseline 8, average confidence 89 > 85 lowers it by one.
	if report.Resolvability != 7 {
		t.Errorf("Resolvability = %d, want 7", report.Resolvability)
	}
	if !strings.Contains(report.CoreConflict, "However") {
		t.Errorf("CoreConflict = %q", report.CoreConflict)
	}
	if len(report.KeyPoints) != 2 {
		t.Fatalf("KeyPoints = %d entries, want 2", len(report.KeyPoints))
	}
	if report.KeyPoints[0].Participant != "claude" || report.KeyPoints[1].Participant != "gpt" {
		t.Errorf("KeyPoints order = %v, want participant order", report.KeyPoints)
	}
}

func TestAnalyzeExcludesFailedResponses(t *testing.T) {
	round := &core.Round{
		Number: 2,
		Responses: map[string]core.Response{
			"claude": {
				Participant: "claude",
				Content:     "The passage reads as satire in my view, given its framing.",
				Confidence:  40,
			},
			"gpt": core.ErrorResponse("gpt", errors.New("rate limited")),
		},
	}

	report := Analyze(round, []string{"claude", "gpt"})

	if len(report.KeyPoints) != 1 {
		t.Fatalf("KeyPoints = %d entries, want 1 (failed excluded)", len(report.KeyPoints))
	}
	if report.KeyPoints[0].Participant != "claude" {
		t.Errorf("KeyPoints[0] = %v", report.KeyPoints[0])
	}
	// Only claude's confidence of 40 counts: interpretive 6 + 2 for low confidence.
	if report.Type != core.DisagreementInterpretive || report.Resolvability != 8 {
		t.Errorf("Type=%v Resolvability=%d, want interpretive/8", report.Type, report.Resolvability)
	}
}

func TestAnalyzeAllFailed(t *testing.T) {
	round := &core.Round{
		Number: 1,
		Responses: map[string]core.Response{
			"claude": core.ErrorResponse("claude", errors.New("timeout")),
			"gpt":    core.ErrorResponse("gpt", errors.New("timeout")),
		},
	}

	report := Analyze(round, []string{"claude", "gpt"})
	if report == nil {
		t.Fatal("Analyze() = nil, want report even when every participant failed")
	}
	if len(report.KeyPoints) != 2 {
		t.Errorf("KeyPoints = %d entries, want 2", len(report.KeyPoints))
	}
}
