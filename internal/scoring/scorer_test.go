package scoring

import (
	"context"
	"errors"
	"testing"
)

type stubScorer struct {
	name  string
	score float64
	err   error
	calls int
}

func (s *stubScorer) Method() string { return s.name }

func (s *stubScorer) Score(context.Context, []string) (float64, error) {
	s.calls++
	return s.score, s.err
}

func TestCombinedUsesPrimary(t *testing.T) {
	primary := &stubScorer{name: "semantic", score: 0.92}
	fallback := &stubScorer{name: "lexical_jaccard", score: 0.4}
	c := NewCombined(primary, fallback, nil)

	score, err := c.Score(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if score != 0.92 {
		t.Errorf("Score() = %v, want 0.92", score)
	}
	if c.Method() != "semantic" {
		t.Errorf("Method() = %q, want semantic", c.Method())
	}
	if fallback.calls != 0 {
		t.Error("fallback ran even though primary succeeded")
	}
}

func TestCombinedFallsBackOnPrimaryError(t *testing.T) {
	primary := &stubScorer{name: "semantic", err: errors.New("subprocess missing")}
	fallback := &stubScorer{name: "lexical_jaccard", score: 0.4}
	c := NewCombined(primary, fallback, nil)

	score, err := c.Score(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("Score() error = %v, fallback must absorb primary failure", err)
	}
	if score != 0.4 {
		t.Errorf("Score() = %v, want fallback's 0.4", score)
	}
	if c.Method() != "lexical_jaccard" {
		t.Errorf("Method() = %q, want lexical_jaccard", c.Method())
	}
}

func TestCombinedNilPrimary(t *testing.T) {
	fallback := &stubScorer{name: "lexical_jaccard", score: 0.7}
	c := NewCombined(nil, fallback, nil)

	score, err := c.Score(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if score != 0.7 {
		t.Errorf("Score() = %v, want 0.7", score)
	}
}

func TestCombinedClampsOutOfRange(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{1.3, 1.0},
		{-0.2, 0.0},
		{0.5, 0.5},
	}

	for _, tt := range tests {
		primary := &stubScorer{name: "semantic", score: tt.raw}
		c := NewCombined(primary, NewLexicalScorer(), nil)

		score, err := c.Score(context.Background(), []string{"a", "b"})
		if err != nil {
			t.Fatalf("Score() error = %v", err)
		}
		if score != tt.want {
			t.Errorf("Score() with raw %v = %v, want %v", tt.raw, score, tt.want)
		}
	}
}

func TestCombinedTooFewTexts(t *testing.T) {
	primary := &stubScorer{name: "semantic", score: 1.0}
	c := NewCombined(primary, NewLexicalScorer(), nil)

	score, err := c.Score(context.Background(), []string{"just one"})
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if score != 0 {
		t.Errorf("Score() = %v, want 0 for fewer than two texts", score)
	}
	if primary.calls != 0 {
		t.Error("primary must not run for fewer than two texts")
	}
}

func TestCombinedFallbackFailureSurfaces(t *testing.T) {
	primary := &stubScorer{name: "semantic", err: errors.New("down")}
	fallback := &stubScorer{name: "broken", err: errors.New("also down")}
	c := NewCombined(primary, fallback, nil)

	if _, err := c.Score(context.Background(), []string{"a", "b"}); err == nil {
		t.Fatal("Score() expected error when both strategies fail")
	}
}
