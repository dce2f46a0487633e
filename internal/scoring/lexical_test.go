package scoring

import (
	"context"
	"testing"
)

func TestLexicalIdenticalTexts(t *testing.T) {
	s := NewLexicalScorer()
	texts := []string{
		"The answer is forty-two because deep thought computed it",
		"The answer is forty-two because deep thought computed it",
	}

	score, err := s.Score(context.Background(), texts)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if score != 1.0 {
		t.Errorf("identical texts score = %v, want 1.0", score)
	}
}

func TestLexicalDisjointTexts(t *testing.T) {
	s := NewLexicalScorer()
	texts := []string{
		"apples bananas cherries",
		"trains planes automobiles",
	}

	score, err := s.Score(context.Background(), texts)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if score != 0.0 {
		t.Errorf("disjoint texts score = %v, want 0.0", score)
	}
}

func TestLexicalTooFewTexts(t *testing.T) {
	s := NewLexicalScorer()

	for _, texts := range [][]string{nil, {}, {"only one response"}} {
		score, err := s.Score(context.Background(), texts)
		if err != nil {
			t.Fatalf("Score(%v) error = %v", texts, err)
		}
		if score != 0 {
			t.Errorf("Score(%v) = %v, want 0", texts, score)
		}
	}
}

func TestLexicalPartialOverlap(t *testing.T) {
	s := NewLexicalScorer()
	texts := []string{
		"microservices improve scalability",
		"microservices increase complexity",
	}

	score, err := s.Score(context.Background(), texts)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if score <= 0 || score >= 1 {
		t.Errorf("partial overlap score = %v, want strictly between 0 and 1", score)
	}
}

func TestLexicalIgnoresShortWords(t *testing.T) {
	// Words of three characters or fewer must not inflate agreement.
	s := NewLexicalScorer()
	texts := []string{
		"it is a big cat and the sky held stars",
		"it is a big dog and the sky held rain",
	}

	score, err := s.Score(context.Background(), texts)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	// Qualifying tokens: {held, stars} vs {held, rain}. Jaccard = 1/3.
	want := 1.0 / 3.0
	if diff := score - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("score = %v, want %v", score, want)
	}
}

func TestLexicalCaseAndPunctuationInsensitive(t *testing.T) {
	s := NewLexicalScorer()
	texts := []string{
		"Consensus REACHED, participants agree!",
		"consensus reached; participants agree",
	}

	score, err := s.Score(context.Background(), texts)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if score != 1.0 {
		t.Errorf("score = %v, want 1.0 after normalization", score)
	}
}

func TestLexicalThreeWay(t *testing.T) {
	s := NewLexicalScorer()
	texts := []string{
		"golang channels coordinate goroutines",
		"golang channels coordinate goroutines",
		"completely unrelated words here",
	}

	score, err := s.Score(context.Background(), texts)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	// One perfect pair, two zero pairs averaged.
	want := 1.0 / 3.0
	if diff := score - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("score = %v, want %v", score, want)
	}
}
