package ledger

import (
	"sync"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

// SessionLedger holds the cumulative totals for one session. All values
// are monotonically non-decreasing for the session's lifetime.
type SessionLedger struct {
	TotalCostUSD  float64            `json:"total_cost_usd"`
	ByParticipant map[string]float64 `json:"by_participant"`
	ByRound       []float64          `json:"by_round"` // index 0 = round 1
	TotalTokens   int                `json:"total_tokens"`
}

// BudgetStatus is the result of a budget check against a ceiling.
type BudgetStatus struct {
	WithinBudget   bool
	SpentUSD       float64
	RemainingUSD   float64
	WarningCrossed bool // spend has passed 75% of the ceiling
}

// warnRatio is the fraction of the ceiling at which a warning is raised.
const warnRatio = 0.75

// Controller is the per-session cost ledger. Each session's ledger is
// only mutated by that session's single in-flight round, but the
// controller serves independent sessions concurrently, so the map itself
// is guarded.
type Controller struct {
	mu      sync.RWMutex
	ledgers map[core.SessionID]*SessionLedger
}

// NewController creates an empty cost controller.
func NewController() *Controller {
	return &Controller{
		ledgers: make(map[core.SessionID]*SessionLedger),
	}
}

// InitSession creates a zeroed ledger for a session. Re-initializing an
// existing session is a no-op so replays never reset totals.
func (c *Controller) InitSession(id core.SessionID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.ledgers[id]; ok {
		return
	}
	c.ledgers[id] = &SessionLedger{
		ByParticipant: make(map[string]float64),
	}
}

// RecordCost adds one participant result to the session totals. Round
// buckets are 1-indexed by round number and grown as needed.
func (c *Controller) RecordCost(id core.SessionID, participant string, costUSD float64, tokens, roundNumber int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.ledgers[id]
	if !ok {
		l = &SessionLedger{ByParticipant: make(map[string]float64)}
		c.ledgers[id] = l
	}

	l.TotalCostUSD += costUSD
	l.ByParticipant[participant] += costUSD
	l.TotalTokens += tokens

	if roundNumber >= 1 {
		for len(l.ByRound) < roundNumber {
			l.ByRound = append(l.ByRound, 0)
		}
		l.ByRound[roundNumber-1] += costUSD
	}
}

// CurrentCost returns the session's total spend so far. Unknown sessions
// report zero.
func (c *Controller) CurrentCost(id core.SessionID) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if l, ok := c.ledgers[id]; ok {
		return l.TotalCostUSD
	}
	return 0
}

// CheckBudget evaluates the session's spend against a ceiling.
func (c *Controller) CheckBudget(id core.SessionID, ceilingUSD float64) BudgetStatus {
	spent := c.CurrentCost(id)
	remaining := ceilingUSD - spent
	if remaining < 0 {
		remaining = 0
	}
	return BudgetStatus{
		WithinBudget:   spent < ceilingUSD,
		SpentUSD:       spent,
		RemainingUSD:   remaining,
		WarningCrossed: ceilingUSD > 0 && spent >= ceilingUSD*warnRatio,
	}
}

// Snapshot returns a copy of the session's ledger for reporting. The
// second return is false for unknown sessions.
func (c *Controller) Snapshot(id core.SessionID) (SessionLedger, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	l, ok := c.ledgers[id]
	if !ok {
		return SessionLedger{}, false
	}

	cp := SessionLedger{
		TotalCostUSD:  l.TotalCostUSD,
		ByParticipant: make(map[string]float64, len(l.ByParticipant)),
		ByRound:       append([]float64(nil), l.ByRound...),
		TotalTokens:   l.TotalTokens,
	}
	for k, v := range l.ByParticipant {
		cp.ByParticipant[k] = v
	}
	return cp, true
}

var _ core.CostRecorder = (*Controller)(nil)
