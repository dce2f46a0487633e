package analysis

import (
	"regexp"
	"strings"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

// Classification is a priority cascade: factual claims win over
// philosophical vocabulary, which wins over the interpretive default.
var (
	factualPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(19|20)\d{2}\b`),                      // years
		regexp.MustCompile(`(?i)\b(true|false|incorrect|untrue)\b`), // truth assertions
		regexp.MustCompile(`\d+(\.\d+)?\s*%`),                       // percentages
		regexp.MustCompile(`(?i)\bfact(?:s|ually)?\b`),
	}

	philosophicalWords = []string{
		"believe", "belief", "opinion", "ethic", "moral",
		"should", "ought", "value", "subjective", "worldview",
	}
)

// ClassifyDisagreement tags the nature of the panel's disagreement from
// the last round's response texts.
func ClassifyDisagreement(texts []string) core.DisagreementType {
	for _, text := range texts {
		for _, p := range factualPatterns {
			if p.MatchString(text) {
				return core.DisagreementFactual
			}
		}
	}

	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, w := range philosophicalWords {
			if strings.Contains(lower, w) {
				return core.DisagreementPhilosophical
			}
		}
	}

	return core.DisagreementInterpretive
}

// resolvabilityBaseline maps disagreement type to a 1-10 starting score.
// Factual disputes yield to evidence; philosophical ones rarely do.
func resolvabilityBaseline(t core.DisagreementType) int {
	switch t {
	case core.DisagreementFactual:
		return 8
	case core.DisagreementPhilosophical:
		return 4
	default:
		return 6
	}
}

// Resolvability estimates how likely additional rounds or evidence are to
// resolve the disagreement. Low average confidence suggests openness to
// new evidence; high confidence in divergent positions suggests
// entrenchment.
func Resolvability(t core.DisagreementType, avgConfidence float64) int {
	score := resolvabilityBaseline(t)
	switch {
	case avgConfidence < 60:
		score += 2
	case avgConfidence > 85:
		score--
	}

	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score
}
