package core

import (
	"context"
)

// Participant defines the contract for an agent client wrapping a hosted
// text-generation API. The engine treats every participant as a
// capability-uniform black box keyed by Name.
type Participant interface {
	// Name returns the participant identity (e.g. "claude", "gpt", "gemini").
	Name() string

	// Generate sends a prompt and returns the normalized response. An empty
	// model selects the adapter's default. Blocking; bounded only by the
	// underlying call's own timeout behavior.
	Generate(ctx context.Context, prompt, model string) (*Response, error)

	// Models returns the model identifiers this participant can use.
	Models() []string
}

// Scorer computes a normalized agreement score over a set of response
// texts. Implementations must return a value in [0,1].
type Scorer interface {
	// Score measures semantic convergence across texts. Fewer than two
	// texts is undefined and scores 0.
	Score(ctx context.Context, texts []string) (float64, error)

	// Method names the scoring strategy for logs and telemetry.
	Method() string
}

// SessionStore is the owned registry of live sessions, keyed by session
// id. Sessions are created on debate start and never evicted by the
// engine; long-running hosts accumulate them until process exit.
type SessionStore interface {
	// Put inserts or replaces a session.
	Put(session *Session) error

	// Get returns the session for id, or ErrSessionNotFound.
	Get(id SessionID) (*Session, error)

	// List returns all sessions in creation order.
	List() []*Session
}

// CostRecorder receives per-participant spend as round results arrive.
type CostRecorder interface {
	InitSession(id SessionID)
	RecordCost(id SessionID, participant string, costUSD float64, tokens, roundNumber int)
	CurrentCost(id SessionID) float64
}
