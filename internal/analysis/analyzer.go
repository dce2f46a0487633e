package analysis

import (
	"strings"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

// contrastMarkers are scanned in order; the first hit across all
// responses supplies the stated conflict.
var contrastMarkers = []string{
	"on the contrary",
	"in contrast",
	"disagree",
	"however",
	"but ",
}

// genericConflict is returned when no response states its disagreement
// explicitly.
const genericConflict = "The participants apply different interpretations or methodologies rather than stating an explicit conflict."

const (
	conflictWindow = 150
	keyPointLimit  = 100
	minSentenceLen = 20
)

// CoreConflict scans the response texts for a contrast marker and returns
// the surrounding text window as the stated conflict.
func CoreConflict(texts []string) string {
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, marker := range contrastMarkers {
			idx := strings.Index(lower, marker)
			if idx < 0 {
				continue
			}
			return truncate(strings.TrimSpace(text[idx:]), conflictWindow)
		}
	}
	return genericConflict
}

// KeyDifference extracts a participant's distinguishing point: the first
// sentence of at least minSentenceLen characters, truncated to roughly
// keyPointLimit characters.
func KeyDifference(text string) string {
	for _, sentence := range splitSentences(text) {
		if len(sentence) >= minSentenceLen {
			return truncate(sentence, keyPointLimit)
		}
	}
	return truncate(strings.TrimSpace(text), keyPointLimit)
}

// Analyze builds the disagreement report for a session's last completed
// round. Synthetic error responses contribute neither text nor confidence;
// if every participant failed, the error texts are all that's left and are
// used as-is.
func Analyze(round *core.Round, participants []string) *core.DisagreementReport {
	responses := round.SuccessfulResponses(participants)
	if len(responses) == 0 {
		for _, name := range participants {
			if resp, ok := round.Responses[name]; ok {
				responses = append(responses, resp)
			}
		}
	}

	texts := make([]string, len(responses))
	confSum := 0
	for i, resp := range responses {
		texts[i] = resp.Content
		confSum += resp.Confidence
	}

	avgConf := 0.0
	if len(responses) > 0 {
		avgConf = float64(confSum) / float64(len(responses))
	}

	dtype := ClassifyDisagreement(texts)
	report := &core.DisagreementReport{
		CoreConflict:  CoreConflict(texts),
		Type:          dtype,
		Resolvability: Resolvability(dtype, avgConf),
	}

	for _, resp := range responses {
		report.KeyPoints = append(report.KeyPoints, core.KeyPoint{
			Participant: resp.Participant,
			Point:       KeyDifference(resp.Content),
		})
	}

	return report
}

func splitSentences(text string) []string {
	var out []string
	var cur strings.Builder
	for _, r := range text {
		cur.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			if s := strings.TrimSpace(cur.String()); s != "" {
				out = append(out, s)
			}
			cur.Reset()
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		out = append(out, s)
	}
	return out
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	if idx := strings.LastIndex(cut, " "); idx > limit/2 {
		cut = cut[:idx]
	}
	return cut + "..."
}
