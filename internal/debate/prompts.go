// Package debate orchestrates multi-round debates between AI
// participants: prompt construction, concurrent round execution, the
// session state machine, and transcript rendering.
package debate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

// confidenceInstruction asks every participant to self-report in a form
// the extraction heuristics recognize.
const confidenceInstruction = `End your answer with a line of the form "Confidence: NN%" stating how confident you are in your position.`

// roundInstructions escalate the pressure to converge. Rounds past the
// last templated entry reuse the round 3 instruction indefinitely.
var roundInstructions = map[int]string{
	2: "Review the other participants' answers above. Analyze where and why you disagree, then restate your own position, revising it if another argument genuinely persuades you.",
	3: "Push toward consensus. If you now agree with another participant, say so plainly and converge on a shared answer. If the disagreement is irreconcilable, state exactly why.",
	4: "Synthesize a single unified answer that the whole panel could stand behind, incorporating the strongest points raised so far.",
	5: "This is the last chance to converge. Either commit to a consensus answer or explain precisely why no consensus is possible.",
}

// instructionFor returns the escalation text for a round number of 2 or
// higher.
func instructionFor(round int) string {
	if instr, ok := roundInstructions[round]; ok {
		return instr
	}
	return roundInstructions[3]
}

// BuildPrompt produces the prompt every participant receives for the
// given round. Round 1 states the question; later rounds replay the prior
// round's answers verbatim with their confidences plus an escalating
// instruction.
func BuildPrompt(session *core.Session, round int) string {
	var b strings.Builder

	b.WriteString("Question: ")
	b.WriteString(session.Question)
	b.WriteString("\n")
	if session.Context != "" {
		b.WriteString("\nContext: ")
		b.WriteString(session.Context)
		b.WriteString("\n")
	}

	if round <= 1 {
		b.WriteString("\nAnswer the question directly and justify your reasoning.\n")
		b.WriteString(confidenceInstruction)
		b.WriteString("\n")
		return b.String()
	}

	prior := session.LastRound()
	if prior != nil {
		fmt.Fprintf(&b, "\nRound %d answers:\n", prior.Number)
		for _, name := range orderedParticipants(session, prior) {
			resp := prior.Responses[name]
			fmt.Fprintf(&b, "\n--- %s (confidence %d%%) ---\n%s\n", name, resp.Confidence, resp.Content)
		}
	}

	fmt.Fprintf(&b, "\nRound %d instruction: %s\n", round, instructionFor(round))
	b.WriteString(confidenceInstruction)
	b.WriteString("\n")
	return b.String()
}

// orderedParticipants yields the session's configured order, extended
// with any response-only names so nothing silently drops out of prompts.
func orderedParticipants(session *core.Session, round *core.Round) []string {
	seen := make(map[string]bool, len(session.Participants))
	out := make([]string, 0, len(round.Responses))
	for _, name := range session.Participants {
		if _, ok := round.Responses[name]; ok {
			out = append(out, name)
			seen[name] = true
		}
	}

	var extra []string
	for name := range round.Responses {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
