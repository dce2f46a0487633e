package debate

import (
	"context"
	"fmt"
	"time"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/analysis"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/ledger"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/logging"
)

// Defaults applied when a start request leaves limits unset.
const (
	DefaultRoundLimit = 3
	DefaultBudgetUSD  = 1.0
)

// resumeRounds maps the round-granting resume modes to how many more
// rounds they allow.
const (
	twoMoreRounds       = 2
	untilConsensusLimit = 10
)

// StartRequest describes a new debate.
type StartRequest struct {
	Question   string
	Context    string
	Strategy   core.Strategy
	RoundLimit int
	BudgetUSD  float64
	// Interactive runs a single round at a time, pausing the session and
	// returning control to the caller after each round.
	Interactive bool
}

// Engine owns session lifecycles: it creates sessions, drives rounds
// through the conductor, applies the stop conditions, and produces the
// final result object.
type Engine struct {
	conductor *Conductor
	store     core.SessionStore
	costs     core.CostRecorder
	logger    *logging.Logger
	threshold float64
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithThreshold overrides the consensus threshold. Values outside (0,1]
// are ignored and the default stands.
func WithThreshold(threshold float64) EngineOption {
	return func(e *Engine) {
		if threshold > 0 && threshold <= 1 {
			e.threshold = threshold
		}
	}
}

// NewEngine wires the session state machine.
func NewEngine(conductor *Conductor, store core.SessionStore, costs core.CostRecorder, logger *logging.Logger, opts ...EngineOption) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	e := &Engine{
		conductor: conductor,
		store:     store,
		costs:     costs,
		logger:    logger,
		threshold: core.ConsensusThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store exposes the session registry for read-side handlers.
func (e *Engine) Store() core.SessionStore { return e.store }

// StartDebate creates a session and runs it until a stop condition is
// met. A hard budget failure returns both the result collected so far
// and the fatal error.
func (e *Engine) StartDebate(ctx context.Context, req StartRequest) (*core.Result, error) {
	if err := e.validate(&req); err != nil {
		return nil, err
	}

	session := &core.Session{
		ID:           core.NewSessionID(),
		Question:     req.Question,
		Context:      req.Context,
		Strategy:     req.Strategy,
		Status:       core.StatusActive,
		Participants: e.conductor.Participants(),
		RoundLimit:   req.RoundLimit,
		BudgetUSD:    req.BudgetUSD,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := e.store.Put(session); err != nil {
		return nil, err
	}
	e.costs.InitSession(session.ID)

	e.logger.WithSession(string(session.ID)).Info("debate started",
		"question", logging.Truncate(session.Question, 120),
		"rounds", session.RoundLimit,
		"budget_usd", session.BudgetUSD,
		"strategy", session.Strategy)

	return e.run(ctx, session, session.RoundLimit, req.Interactive)
}

func (e *Engine) validate(req *StartRequest) error {
	if req.Question == "" {
		return core.ErrValidation("EMPTY_QUESTION", "question must not be empty")
	}
	if req.RoundLimit <= 0 {
		req.RoundLimit = DefaultRoundLimit
	}
	if req.BudgetUSD <= 0 {
		req.BudgetUSD = DefaultBudgetUSD
	}
	if req.BudgetUSD > core.EmergencyCeilingUSD {
		return core.ErrValidation("BUDGET_TOO_HIGH",
			fmt.Sprintf("budget $%.2f exceeds the hard ceiling of $%.2f", req.BudgetUSD, core.EmergencyCeilingUSD))
	}
	switch req.Strategy {
	case "":
		req.Strategy = core.StrategyDebate
	case core.StrategyDebate, core.StrategySynthesize, core.StrategyTournament:
	default:
		return core.ErrValidation("UNKNOWN_STRATEGY", fmt.Sprintf("unknown strategy %q", req.Strategy))
	}
	if len(e.conductor.Participants()) < core.MinParticipants {
		return core.ErrPrecondition("at least two participants are required to debate")
	}
	return nil
}

// Resume continues a paused or deadlocked session with one of the four
// resume instructions. Round-granting modes re-enter the normal per-round
// decision loop with a raised limit.
func (e *Engine) Resume(ctx context.Context, id core.SessionID, instr core.ResumeInstruction) (*core.Result, error) {
	session, err := e.store.Get(id)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case core.StatusPaused, core.StatusDeadlock:
	case core.StatusConsensus:
		return nil, core.ErrValidation("ALREADY_RESOLVED", "session already reached consensus")
	case core.StatusFailed:
		return nil, core.ErrValidation("SESSION_FAILED", "a failed session cannot be resumed")
	default:
		return nil, core.ErrValidation("SESSION_ACTIVE", "session is still running")
	}

	last := session.LastRound()
	if last == nil {
		return nil, core.ErrValidation("NO_ROUNDS", "session has no completed rounds to resume from")
	}

	log := e.logger.WithSession(string(session.ID))

	switch instr.Mode {
	case core.ResumeAcceptAnswer:
		resp, ok := last.Responses[instr.Participant]
		if !ok {
			return nil, core.ErrNotFound("participant", instr.Participant)
		}
		session.FinalAnswer = resp.Content
		e.finish(session, core.StatusConsensus)
		log.Info("resume accepted participant answer", "participant", instr.Participant)
		return e.result(session, nil, false), nil

	case core.ResumeSynthesize:
		session.FinalAnswer = synthesizeFinal(last)
		e.finish(session, core.StatusConsensus)
		log.Info("resume synthesized final answer")
		return e.result(session, nil, false), nil

	case core.ResumeTwoRounds:
		session.Status = core.StatusActive
		session.RoundLimit = len(session.Rounds) + twoMoreRounds
		log.Info("resuming for two more rounds", "limit", session.RoundLimit)
		return e.run(ctx, session, session.RoundLimit, false)

	case core.ResumeUntilConsensus:
		session.Status = core.StatusActive
		session.RoundLimit = len(session.Rounds) + untilConsensusLimit
		log.Info("resuming until consensus", "limit", session.RoundLimit)
		return e.run(ctx, session, session.RoundLimit, false)

	default:
		return nil, core.ErrValidation("UNKNOWN_RESUME_MODE", fmt.Sprintf("unknown resume mode %q", instr.Mode))
	}
}

// Report builds the disagreement report for a session's last completed
// round. Available for any session with at least one round; most useful
// after a deadlock.
func (e *Engine) Report(id core.SessionID) (*core.DisagreementReport, error) {
	session, err := e.store.Get(id)
	if err != nil {
		return nil, err
	}
	last := session.LastRound()
	if last == nil {
		return nil, core.ErrValidation("NO_ROUNDS", "session has no completed rounds to analyze")
	}
	return analysis.Analyze(last, session.Participants), nil
}

// run drives rounds until a stop condition fires. The limit is an
// absolute round number, not a delta.
func (e *Engine) run(ctx context.Context, session *core.Session, limit int, interactive bool) (*core.Result, error) {
	log := e.logger.WithSession(string(session.ID))

	for {
		number := len(session.Rounds) + 1

		round, err := e.conductor.RunRound(ctx, session, number)
		if err != nil {
			e.finish(session, core.StatusFailed)
			return nil, err
		}

		session.Rounds = append(session.Rounds, *round)
		session.UpdatedAt = time.Now()
		if err := e.store.Put(session); err != nil {
			return nil, err
		}

		spent := e.costs.CurrentCost(session.ID)

		switch {
		case round.Score >= e.threshold:
			session.FinalAnswer = synthesizeFinal(round)
			e.finish(session, core.StatusConsensus)
			log.Info("consensus reached", "round", number, "score", round.Score)
			return e.result(session, nil, false), nil

		case spent >= core.EmergencyCeilingUSD:
			e.finish(session, core.StatusFailed)
			err := core.ErrBudgetExceeded(spent, core.EmergencyCeilingUSD)
			log.Error("emergency ceiling reached", "round", number, "spent_usd", spent)
			return e.result(session, e.analyze(session), true), err

		case spent >= session.BudgetUSD:
			e.finish(session, core.StatusDeadlock)
			log.Warn("budget exhausted without consensus",
				"round", number, "spent_usd", spent, "budget_usd", session.BudgetUSD)
			return e.result(session, e.analyze(session), true), nil

		case number >= limit:
			e.finish(session, core.StatusDeadlock)
			log.Info("round limit reached without consensus", "round", number, "score", round.Score)
			return e.result(session, e.analyze(session), false), nil
		}

		if bc, ok := e.costs.(budgetChecker); ok {
			if st := bc.CheckBudget(session.ID, session.BudgetUSD); st.WithinBudget && st.WarningCrossed {
				log.Warn("budget warning threshold crossed",
					"round", number, "spent_usd", st.SpentUSD, "remaining_usd", st.RemainingUSD)
			}
		}

		if interactive {
			e.finish(session, core.StatusPaused)
			log.Info("pausing after round", "round", number, "score", round.Score)
			return e.result(session, nil, false), nil
		}
	}
}

// budgetChecker is the optional richer budget view a cost recorder may
// provide. Recorders without it skip the warning log only.
type budgetChecker interface {
	CheckBudget(id core.SessionID, ceilingUSD float64) ledger.BudgetStatus
}

// finish applies a status transition and persists the session.
func (e *Engine) finish(session *core.Session, status core.Status) {
	session.Status = status
	session.UpdatedAt = time.Now()
	_ = e.store.Put(session)
}

func (e *Engine) analyze(session *core.Session) *core.DisagreementReport {
	last := session.LastRound()
	if last == nil {
		return nil
	}
	return analysis.Analyze(last, session.Participants)
}

func (e *Engine) result(session *core.Session, report *core.DisagreementReport, budgetExceeded bool) *core.Result {
	return &core.Result{
		SessionID:      session.ID,
		Status:         session.Status,
		FinalAnswer:    session.FinalAnswer,
		Rounds:         append([]core.Round(nil), session.Rounds...),
		TotalCostUSD:   session.TotalCost(),
		TotalTokens:    session.TotalTokens(),
		Report:         report,
		BudgetExceeded: budgetExceeded,
	}
}

// synthesizeFinal produces the converged answer: the longest single
// response of the round, annotated as the panel's position. Deliberately
// a simple selection, not a re-query of any participant.
func synthesizeFinal(round *core.Round) string {
	best := round.LongestResponse()
	return fmt.Sprintf("Converged position of the panel (from %s):\n\n%s", best.Participant, best.Content)
}
