// Package scoring measures semantic agreement across a round's response
// texts. The primary strategy delegates to an external semantic engine;
// the lexical fallback keeps scoring available when it isn't.
package scoring

import (
	"context"
	"strings"
	"unicode"
)

// minWordLen filters short filler words out of the token sets.
const minWordLen = 4

// LexicalScorer computes pairwise token-set (Jaccard) overlap averaged
// across all participant pairs. It systematically under-scores paraphrase
// agreement and over-scores superficial keyword overlap; it exists as a
// degraded-but-always-available safety net, not as the documented
// behavior of the system.
type LexicalScorer struct{}

// NewLexicalScorer creates the fallback scorer.
func NewLexicalScorer() *LexicalScorer {
	return &LexicalScorer{}
}

// Method identifies this strategy in logs.
func (s *LexicalScorer) Method() string { return "lexical_jaccard" }

// Score averages pairwise Jaccard similarity over words longer than
// three characters. Fewer than two texts scores 0.
func (s *LexicalScorer) Score(_ context.Context, texts []string) (float64, error) {
	if len(texts) < 2 {
		return 0, nil
	}

	sets := make([]map[string]bool, len(texts))
	for i, t := range texts {
		sets[i] = tokenSet(t)
	}

	sum := 0.0
	pairs := 0
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets); j++ {
			sum += jaccard(sets[i], sets[j])
			pairs++
		}
	}

	return clamp01(sum / float64(pairs)), nil
}

// tokenSet lowercases, strips punctuation, and keeps words of at least
// minWordLen characters.
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	var word strings.Builder
	flush := func() {
		if word.Len() >= minWordLen {
			set[word.String()] = true
		}
		word.Reset()
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return set
}

// jaccard computes |A ∩ B| / |A ∪ B|. Two empty sets count as perfect
// agreement; one empty set counts as none.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	intersection := 0
	for item := range a {
		if b[item] {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 1.0
	}
	return float64(intersection) / float64(union)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
