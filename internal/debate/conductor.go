package debate

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/analysis"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/logging"
)

// Conductor runs one round at a time: it fans the round prompt out to
// every participant concurrently, tolerates individual failures, records
// costs, and scores the collected answers.
type Conductor struct {
	participants map[string]core.Participant
	order        []string
	recorder     core.CostRecorder
	scorer       core.Scorer
	logger       *logging.Logger
}

// NewConductor wires the round executor. Participant order is preserved
// for prompts and reports.
func NewConductor(participants []core.Participant, recorder core.CostRecorder, scorer core.Scorer, logger *logging.Logger) *Conductor {
	if logger == nil {
		logger = logging.NewNop()
	}
	byName := make(map[string]core.Participant, len(participants))
	order := make([]string, 0, len(participants))
	for _, p := range participants {
		byName[p.Name()] = p
		order = append(order, p.Name())
	}
	return &Conductor{
		participants: byName,
		order:        order,
		recorder:     recorder,
		scorer:       scorer,
		logger:       logger,
	}
}

// Participants returns the configured participant names in order.
func (c *Conductor) Participants() []string {
	return append([]string(nil), c.order...)
}

// RunRound executes round number for the session and returns the
// completed immutable record. The round always carries one response per
// configured participant: a failed call yields a synthetic zero-cost
// error response instead of aborting the round.
func (c *Conductor) RunRound(ctx context.Context, session *core.Session, number int) (*core.Round, error) {
	if len(c.participants) < core.MinParticipants {
		return nil, core.ErrPrecondition("at least two participants are required to debate")
	}

	prompt := BuildPrompt(session, number)
	log := c.logger.WithSession(string(session.ID)).WithRound(number)
	log.Info("starting round", "participants", len(c.participants))

	var mu sync.Mutex
	responses := make(map[string]core.Response, len(c.participants))

	g, gctx := errgroup.WithContext(ctx)
	for name, p := range c.participants {
		g.Go(func() error {
			resp := c.callParticipant(gctx, log, p, prompt)
			c.recorder.RecordCost(session.ID, name, resp.CostUSD, resp.TotalTokens(), number)
			mu.Lock()
			responses[name] = resp
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // participant failures become synthetic responses, never errors

	round := &core.Round{
		Number:      number,
		Responses:   responses,
		CompletedAt: time.Now(),
	}
	for _, resp := range responses {
		round.TotalTokens += resp.TotalTokens()
		round.TotalCost += resp.CostUSD
	}

	c.scoreRound(ctx, log, round)

	log.Info("round complete",
		"score", round.Score,
		"method", round.ScoreMethod,
		"cost_usd", round.TotalCost,
		"tokens", round.TotalTokens)
	return round, nil
}

// callParticipant invokes one agent and normalizes the outcome into a
// Response. Confidence missing from the agent's own accounting is
// inferred from the text.
func (c *Conductor) callParticipant(ctx context.Context, log *logging.Logger, p core.Participant, prompt string) core.Response {
	plog := log.WithParticipant(p.Name())

	resp, err := p.Generate(ctx, prompt, "")
	if err != nil {
		perr := core.ErrParticipant(p.Name(), err)
		plog.Warn("participant failed, recording error response", "error", perr)
		return core.ErrorResponse(p.Name(), err)
	}

	resp.Participant = p.Name()
	if resp.Confidence == 0 {
		resp.Confidence = analysis.ExtractConfidence(resp.Content)
	}
	if resp.Timestamp.IsZero() {
		resp.Timestamp = time.Now()
	}
	plog.Debug("participant answered",
		"model", resp.Model,
		"confidence", resp.Confidence,
		"cost_usd", resp.CostUSD)
	return *resp
}

// scoreRound computes the agreement score over the round's successful
// response texts. Synthetic error responses never participate in
// scoring; with fewer than two real answers the score is 0.
func (c *Conductor) scoreRound(ctx context.Context, log *logging.Logger, round *core.Round) {
	texts := make([]string, 0, len(round.Responses))
	for _, resp := range round.SuccessfulResponses(c.order) {
		texts = append(texts, resp.Content)
	}

	score, err := c.scorer.Score(ctx, texts)
	if err != nil {
		log.Warn("scoring failed, recording zero agreement", "error", err)
		round.Score = 0
		round.ScoreMethod = "none"
		return
	}
	round.Score = score
	round.ScoreMethod = c.scorer.Method()
}
