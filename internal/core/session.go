package core

import (
	"time"

	"github.com/google/uuid"
)

// SessionID uniquely identifies a debate session within the process.
type SessionID string

// NewSessionID generates a fresh session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.New().String())
}

// Status represents the lifecycle state of a debate session.
type Status string

const (
	// StatusActive means the session can run further rounds.
	StatusActive Status = "active"
	// StatusConsensus means the panel converged above the threshold.
	StatusConsensus Status = "consensus"
	// StatusDeadlock means the session stopped without consensus.
	// A deadlocked session may be resumed with additional rounds.
	StatusDeadlock Status = "deadlock"
	// StatusPaused means interactive mode returned control after a round.
	StatusPaused Status = "paused"
	// StatusFailed means the emergency cost ceiling was hit.
	StatusFailed Status = "failed"
)

// Terminal reports whether no further rounds will run for this invocation.
func (s Status) Terminal() bool {
	return s == StatusConsensus || s == StatusDeadlock || s == StatusFailed
}

// Strategy selects the debate style. Only StrategyDebate has full
// semantics; the other tags are accepted and recorded for forward
// compatibility with synthesize/tournament flows.
type Strategy string

const (
	StrategyDebate     Strategy = "debate"
	StrategySynthesize Strategy = "synthesize"
	StrategyTournament Strategy = "tournament"
)

// ConsensusThreshold is the agreement score at or above which a round
// resolves the debate.
const ConsensusThreshold = 0.85

// EmergencyCeilingUSD is the hard spending cap per session. It is not
// configurable and always takes precedence over the caller's budget.
const EmergencyCeilingUSD = 50.0

// MinParticipants is the smallest panel that can produce a meaningful
// agreement score.
const MinParticipants = 2

// Response is one participant's answer to a round prompt.
type Response struct {
	Participant string    `json:"participant"`
	Content     string    `json:"content"`
	Confidence  int       `json:"confidence"` // 0-100, self-reported or inferred; advisory only
	Model       string    `json:"model"`
	TokensIn    int       `json:"tokens_in"`
	TokensOut   int       `json:"tokens_out"`
	CostUSD     float64   `json:"cost_usd"`
	Failed      bool      `json:"failed,omitempty"` // synthetic error response
	Timestamp   time.Time `json:"timestamp"`
}

// TotalTokens returns the sum of input and output tokens.
func (r *Response) TotalTokens() int {
	return r.TokensIn + r.TokensOut
}

// ErrorResponse builds the synthetic zero-cost response recorded when a
// participant call fails. The round always carries a full response set.
func ErrorResponse(participant string, err error) Response {
	return Response{
		Participant: participant,
		Content:     "[error: " + err.Error() + "]",
		Confidence:  0,
		Failed:      true,
		Timestamp:   time.Now(),
	}
}

// Round is the immutable record of one debate cycle.
type Round struct {
	Number      int                 `json:"number"` // 1-based
	Responses   map[string]Response `json:"responses"`
	Score       float64             `json:"score"` // agreement in [0,1]
	ScoreMethod string              `json:"score_method,omitempty"`
	TotalTokens int                 `json:"total_tokens"`
	TotalCost   float64             `json:"total_cost"`
	CompletedAt time.Time           `json:"completed_at"`
}

// SuccessfulResponses returns the non-synthetic responses in participant
// name order independent of map iteration.
func (r *Round) SuccessfulResponses(order []string) []Response {
	out := make([]Response, 0, len(order))
	for _, name := range order {
		if resp, ok := r.Responses[name]; ok && !resp.Failed {
			out = append(out, resp)
		}
	}
	return out
}

// LongestResponse returns the longest successful answer of the round, or
// the longest answer overall when every participant failed.
func (r *Round) LongestResponse() Response {
	var best Response
	found := false
	for _, resp := range r.Responses {
		if resp.Failed {
			continue
		}
		if !found || len(resp.Content) > len(best.Content) {
			best = resp
			found = true
		}
	}
	if !found {
		for _, resp := range r.Responses {
			if len(resp.Content) >= len(best.Content) {
				best = resp
			}
		}
	}
	return best
}

// Session owns one debate from creation to a terminal status.
type Session struct {
	ID           SessionID `json:"id"`
	Question     string    `json:"question"`
	Context      string    `json:"context,omitempty"`
	Strategy     Strategy  `json:"strategy"`
	Status       Status    `json:"status"`
	Participants []string  `json:"participants"`
	Rounds       []Round   `json:"rounds"`
	RoundLimit   int       `json:"round_limit"`
	BudgetUSD    float64   `json:"budget_usd"`
	FinalAnswer  string    `json:"final_answer,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LastRound returns the most recent completed round, or nil before round 1.
func (s *Session) LastRound() *Round {
	if len(s.Rounds) == 0 {
		return nil
	}
	return &s.Rounds[len(s.Rounds)-1]
}

// TotalCost sums the recorded cost of all completed rounds.
func (s *Session) TotalCost() float64 {
	total := 0.0
	for i := range s.Rounds {
		total += s.Rounds[i].TotalCost
	}
	return total
}

// TotalTokens sums the token usage of all completed rounds.
func (s *Session) TotalTokens() int {
	total := 0
	for i := range s.Rounds {
		total += s.Rounds[i].TotalTokens
	}
	return total
}

// DisagreementType classifies the nature of an unresolved disagreement.
type DisagreementType string

const (
	DisagreementFactual       DisagreementType = "factual"
	DisagreementInterpretive  DisagreementType = "interpretive"
	DisagreementPhilosophical DisagreementType = "philosophical"
)

// KeyPoint is one participant's distinguishing position extract.
type KeyPoint struct {
	Participant string `json:"participant"`
	Point       string `json:"point"`
}

// DisagreementReport summarizes a non-consensus termination for a human
// decision-maker.
type DisagreementReport struct {
	CoreConflict  string           `json:"core_conflict"`
	Type          DisagreementType `json:"type"`
	Resolvability int              `json:"resolvability"` // 1-10
	KeyPoints     []KeyPoint       `json:"key_points"`
}

// Result is what every debate invocation returns to the caller. Consensus
// and deadlock alike carry the full round history and cost summary.
type Result struct {
	SessionID      SessionID           `json:"session_id"`
	Status         Status              `json:"status"`
	FinalAnswer    string              `json:"final_answer,omitempty"`
	Rounds         []Round             `json:"rounds"`
	TotalCostUSD   float64             `json:"total_cost_usd"`
	TotalTokens    int                 `json:"total_tokens"`
	Report         *DisagreementReport `json:"report,omitempty"`
	BudgetExceeded bool                `json:"budget_exceeded,omitempty"`
}

// ResumeMode selects how a paused or deadlocked session continues.
type ResumeMode string

const (
	// ResumeTwoRounds runs exactly two more rounds.
	ResumeTwoRounds ResumeMode = "two_rounds"
	// ResumeUntilConsensus runs up to ten more rounds, stopping early on
	// consensus.
	ResumeUntilConsensus ResumeMode = "until_consensus"
	// ResumeAcceptAnswer accepts a named participant's last answer verbatim.
	ResumeAcceptAnswer ResumeMode = "accept_answer"
	// ResumeSynthesize synthesizes the last round into a final answer
	// without running further rounds.
	ResumeSynthesize ResumeMode = "synthesize"
)

// ResumeInstruction carries a resume mode plus its mode-specific argument.
type ResumeInstruction struct {
	Mode        ResumeMode `json:"mode"`
	Participant string     `json:"participant,omitempty"` // for ResumeAcceptAnswer
}
