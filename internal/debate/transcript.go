package debate

import (
	"fmt"
	"strings"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

// TranscriptFormat selects one of the two textual renderings.
type TranscriptFormat string

const (
	FormatMarkdown TranscriptFormat = "markdown"
	FormatPlain    TranscriptFormat = "plain"
)

// RenderTranscript produces the round-by-round transcript of a session.
func RenderTranscript(session *core.Session, format TranscriptFormat) (string, error) {
	switch format {
	case FormatMarkdown, "":
		return renderMarkdown(session), nil
	case FormatPlain:
		return renderPlain(session), nil
	default:
		return "", core.ErrValidation("UNKNOWN_FORMAT", fmt.Sprintf("unknown transcript format %q", format))
	}
}

func renderMarkdown(s *core.Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Debate %s\n\n", s.ID)
	fmt.Fprintf(&b, "**Question:** %s\n\n", s.Question)
	if s.Context != "" {
		fmt.Fprintf(&b, "**Context:** %s\n\n", s.Context)
	}
	fmt.Fprintf(&b, "**Status:** %s · **Rounds:** %d · **Cost:** $%.4f · **Tokens:** %d\n",
		s.Status, len(s.Rounds), s.TotalCost(), s.TotalTokens())

	for i := range s.Rounds {
		round := &s.Rounds[i]
		fmt.Fprintf(&b, "\n## Round %d\n\n", round.Number)
		fmt.Fprintf(&b, "Agreement score: **%.2f**", round.Score)
		if round.ScoreMethod != "" {
			fmt.Fprintf(&b, " (%s)", round.ScoreMethod)
		}
		b.WriteString("\n")

		for _, name := range orderedParticipants(s, round) {
			resp := round.Responses[name]
			fmt.Fprintf(&b, "\n### %s\n\n", name)
			if resp.Failed {
				fmt.Fprintf(&b, "> call failed: %s\n", resp.Content)
				continue
			}
			fmt.Fprintf(&b, "*confidence %d%% · %s · $%.4f*\n\n", resp.Confidence, resp.Model, resp.CostUSD)
			b.WriteString(resp.Content)
			b.WriteString("\n")
		}
	}

	if s.FinalAnswer != "" {
		b.WriteString("\n## Final Answer\n\n")
		b.WriteString(s.FinalAnswer)
		b.WriteString("\n")
	}
	return b.String()
}

func renderPlain(s *core.Session) string {
	var b strings.Builder
	divider := strings.Repeat("=", 60)

	fmt.Fprintf(&b, "DEBATE %s\n", s.ID)
	fmt.Fprintf(&b, "Question: %s\n", s.Question)
	if s.Context != "" {
		fmt.Fprintf(&b, "Context: %s\n", s.Context)
	}
	fmt.Fprintf(&b, "Status: %s | Rounds: %d | Cost: $%.4f | Tokens: %d\n",
		s.Status, len(s.Rounds), s.TotalCost(), s.TotalTokens())

	for i := range s.Rounds {
		round := &s.Rounds[i]
		fmt.Fprintf(&b, "\n%s\nROUND %d (score %.2f)\n%s\n", divider, round.Number, round.Score, divider)

		for _, name := range orderedParticipants(s, round) {
			resp := round.Responses[name]
			if resp.Failed {
				fmt.Fprintf(&b, "\n[%s] FAILED: %s\n", name, resp.Content)
				continue
			}
			fmt.Fprintf(&b, "\n[%s] confidence %d%%, $%.4f\n%s\n", name, resp.Confidence, resp.CostUSD, resp.Content)
		}
	}

	if s.FinalAnswer != "" {
		fmt.Fprintf(&b, "\n%s\nFINAL ANSWER\n%s\n%s\n", divider, divider, s.FinalAnswer)
	}
	return b.String()
}
