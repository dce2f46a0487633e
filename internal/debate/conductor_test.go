package debate

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

func TestRunRoundFullResponseSet(t *testing.T) {
	claude := &fakeParticipant{name: "claude", content: "Answer A", cost: 0.01, tokens: 100}
	gpt := &fakeParticipant{name: "gpt", content: "Answer B", cost: 0.02, tokens: 200}
	gemini := &fakeParticipant{name: "gemini", err: errors.New("rate limited")}

	rec := newRecorderSpy()
	c := NewConductor([]core.Participant{claude, gpt, gemini}, rec, &scriptedScorer{scores: []float64{0.5}}, nil)
	session := &core.Session{ID: "s1", Question: "q", Participants: c.Participants()}

	round, err := c.RunRound(context.Background(), session, 1)
	if err != nil {
		t.Fatalf("RunRound() error = %v", err)
	}

	if len(round.Responses) != 3 {
		t.Fatalf("responses = %d, want one per configured participant", len(round.Responses))
	}

	failed := round.Responses["gemini"]
	if !failed.Failed {
		t.Error("gemini's response should be synthetic")
	}
	if failed.CostUSD != 0 || failed.Confidence != 0 {
		t.Errorf("synthetic response must be zero-cost zero-confidence: %+v", failed)
	}
	if !strings.Contains(failed.Content, "rate limited") {
		t.Errorf("synthetic content = %q, want underlying error text", failed.Content)
	}

	if math.Abs(round.TotalCost-0.03) > 1e-9 {
		t.Errorf("TotalCost = %v, want 0.03", round.TotalCost)
	}
	if round.TotalTokens != 600 {
		t.Errorf("TotalTokens = %v, want 600", round.TotalTokens)
	}
	if round.CompletedAt.IsZero() {
		t.Error("round missing completion timestamp")
	}
}

func TestRunRoundRecordsCosts(t *testing.T) {
	claude := &fakeParticipant{name: "claude", content: "A", cost: 0.01, tokens: 50}
	gpt := &fakeParticipant{name: "gpt", err: errors.New("down")}

	rec := newRecorderSpy()
	c := NewConductor([]core.Participant{claude, gpt}, rec, &scriptedScorer{}, nil)
	session := &core.Session{ID: "s1", Question: "q", Participants: c.Participants()}

	if _, err := c.RunRound(context.Background(), session, 2); err != nil {
		t.Fatalf("RunRound() error = %v", err)
	}

	entries := rec.entriesFor("s1")
	if len(entries) != 2 {
		t.Fatalf("cost entries = %d, want one per participant including failures", len(entries))
	}
	for _, e := range entries {
		if e.round != 2 {
			t.Errorf("entry tagged round %d, want 2", e.round)
		}
	}
}

func TestRunRoundExcludesFailedFromScoring(t *testing.T) {
	claude := &fakeParticipant{name: "claude", content: "Shared position"}
	gpt := &fakeParticipant{name: "gpt", content: "Shared position"}
	gemini := &fakeParticipant{name: "gemini", err: errors.New("boom")}

	scorer := &scriptedScorer{scores: []float64{0.9}}
	c := NewConductor([]core.Participant{claude, gpt, gemini}, newRecorderSpy(), scorer, nil)
	session := &core.Session{ID: "s1", Question: "q", Participants: c.Participants()}

	round, err := c.RunRound(context.Background(), session, 1)
	if err != nil {
		t.Fatalf("RunRound() error = %v", err)
	}

	texts := scorer.scoredTexts()
	if len(texts) != 2 {
		t.Fatalf("scorer saw %d texts, want 2 (error response excluded)", len(texts))
	}
	for _, text := range texts {
		if strings.Contains(text, "[error:") {
			t.Errorf("error text leaked into scoring: %q", text)
		}
	}
	if round.Score != 0.9 {
		t.Errorf("Score = %v, want 0.9", round.Score)
	}
	if round.ScoreMethod != "scripted" {
		t.Errorf("ScoreMethod = %q, want scripted", round.ScoreMethod)
	}
}

func TestRunRoundScoreZeroWithOneSurvivor(t *testing.T) {
	claude := &fakeParticipant{name: "claude", content: "Only me"}
	gpt := &fakeParticipant{name: "gpt", err: errors.New("down")}

	c := NewConductor([]core.Participant{claude, gpt}, newRecorderSpy(), &scriptedScorer{scores: []float64{0.99}}, nil)
	session := &core.Session{ID: "s1", Question: "q", Participants: c.Participants()}

	round, err := c.RunRound(context.Background(), session, 1)
	if err != nil {
		t.Fatalf("RunRound() error = %v", err)
	}
	if round.Score != 0 {
		t.Errorf("Score = %v, want 0 with fewer than two real answers", round.Score)
	}
}

func TestRunRoundInfersConfidence(t *testing.T) {
	claude := &fakeParticipant{name: "claude", content: "It holds. Confidence: 85%"}
	gpt := &fakeParticipant{name: "gpt", content: "No stated number here at all."}

	c := NewConductor([]core.Participant{claude, gpt}, newRecorderSpy(), &scriptedScorer{}, nil)
	session := &core.Session{ID: "s1", Question: "q", Participants: c.Participants()}

	round, err := c.RunRound(context.Background(), session, 1)
	if err != nil {
		t.Fatalf("RunRound() error = %v", err)
	}
	if got := round.Responses["claude"].Confidence; got != 85 {
		t.Errorf("claude confidence = %d, want 85", got)
	}
	if got := round.Responses["gpt"].Confidence; got != 50 {
		t.Errorf("gpt confidence = %d, want default 50", got)
	}
}

func TestRunRoundPreconditionTooFewParticipants(t *testing.T) {
	c := NewConductor([]core.Participant{&fakeParticipant{name: "claude"}}, newRecorderSpy(), &scriptedScorer{}, nil)
	session := &core.Session{ID: "s1", Question: "q", Participants: c.Participants()}

	_, err := c.RunRound(context.Background(), session, 1)
	if err == nil {
		t.Fatal("RunRound() expected precondition error")
	}
	var derr *core.DomainError
	if !errors.As(err, &derr) || derr.Category != core.ErrCatPrecondition {
		t.Errorf("error = %v, want precondition category", err)
	}
}
