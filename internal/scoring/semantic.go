package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

// SemanticScorer delegates agreement scoring to an external command that
// speaks a small JSON contract: the responses go in on stdin and a score
// comes back on stdout. The command is expected to use embeddings or an
// equivalent semantic model, so it recognizes paraphrased agreement the
// lexical fallback cannot.
type SemanticScorer struct {
	command []string
	timeout time.Duration
}

type scoreRequest struct {
	Responses []string `json:"responses"`
}

type scoreReply struct {
	ConsensusScore float64 `json:"consensus_score"`
}

// NewSemanticScorer builds a scorer that runs the given command with a
// per-invocation timeout. The command slice must be non-empty.
func NewSemanticScorer(command []string, timeout time.Duration) (*SemanticScorer, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, core.ErrValidation("EMPTY_SCORER_COMMAND", "scorer command must not be empty")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SemanticScorer{command: command, timeout: timeout}, nil
}

// Method identifies this strategy in logs.
func (s *SemanticScorer) Method() string { return "semantic" }

// Score runs the external scorer over the texts. Any failure of the
// subprocess, its output, or the score's range is reported as an error
// so the caller can substitute the fallback.
func (s *SemanticScorer) Score(ctx context.Context, texts []string) (float64, error) {
	if len(texts) < 2 {
		return 0, nil
	}

	payload, err := json.Marshal(scoreRequest{Responses: texts})
	if err != nil {
		return 0, core.ErrScoring("encode scorer request").WithCause(err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.command[0], s.command[1:]...)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return 0, core.ErrScoring(fmt.Sprintf("scorer timed out after %s", s.timeout)).WithCause(ctx.Err())
		}
		return 0, core.ErrScoring(fmt.Sprintf("scorer exited: %s", firstLine(stderr.String()))).WithCause(err)
	}

	var reply scoreReply
	if err := json.Unmarshal(stdout.Bytes(), &reply); err != nil {
		return 0, core.ErrScoring("decode scorer output").WithCause(err)
	}
	if reply.ConsensusScore < 0 || reply.ConsensusScore > 1 {
		return 0, core.ErrScoring(fmt.Sprintf("scorer returned out-of-range score %v", reply.ConsensusScore))
	}

	return reply.ConsensusScore, nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
