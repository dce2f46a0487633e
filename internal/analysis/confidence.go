// Package analysis holds the text heuristics used when a debate ends
// without consensus: confidence extraction, disagreement classification,
// and report assembly. All heuristics are pure functions over immutable
// text with deliberately simple, documented behavior.
package analysis

import (
	"regexp"
	"strconv"
)

// DefaultConfidence is assumed when a response states no confidence.
const DefaultConfidence = 50

var confidencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)confidence[:\s]+(\d{1,3})\s*%`),
	regexp.MustCompile(`(?i)(\d{1,3})\s*%\s+confiden(?:t|ce)`),
	regexp.MustCompile(`(?i)confidence\s+(?:level\s+)?(?:of\s+|is\s+)(\d{1,3})`),
}

// ExtractConfidence pulls a self-reported confidence percentage out of a
// response text. Values above 100 are treated as noise, not clamped.
// Returns DefaultConfidence when nothing matches.
func ExtractConfidence(text string) int {
	for _, p := range confidencePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n > 100 {
			continue
		}
		return n
	}
	return DefaultConfidence
}
