package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/debate"
)

// startDebateRequest is the body of POST /api/v1/debates.
type startDebateRequest struct {
	Question    string  `json:"question"`
	Context     string  `json:"context,omitempty"`
	Strategy    string  `json:"strategy,omitempty"`
	RoundLimit  int     `json:"round_limit,omitempty"`
	BudgetUSD   float64 `json:"budget_usd,omitempty"`
	Interactive bool    `json:"interactive,omitempty"`
}

// resumeRequest is the body of POST /api/v1/debates/{id}/resume.
type resumeRequest struct {
	Mode        string `json:"mode"`
	Participant string `json:"participant,omitempty"`
}

// sessionSummary is the list-view projection of a session.
type sessionSummary struct {
	ID        core.SessionID `json:"id"`
	Question  string         `json:"question"`
	Status    core.Status    `json:"status"`
	Rounds    int            `json:"rounds"`
	CostUSD   float64        `json:"cost_usd"`
	CreatedAt string         `json:"created_at"`
}

func (s *Server) handleStartDebate(w http.ResponseWriter, r *http.Request) {
	var req startDebateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, core.ErrValidation("INVALID_BODY", "request body is not valid JSON").WithCause(err))
		return
	}

	result, err := s.engine.StartDebate(r.Context(), debate.StartRequest{
		Question:    req.Question,
		Context:     req.Context,
		Strategy:    core.Strategy(req.Strategy),
		RoundLimit:  req.RoundLimit,
		BudgetUSD:   req.BudgetUSD,
		Interactive: req.Interactive,
	})
	if err != nil {
		// A hard budget failure still carries the collected result.
		if result != nil {
			status, _ := httpStatusForDomainError(err)
			s.respondJSON(w, status, map[string]interface{}{
				"error":  s.logger.Sanitize(err.Error()),
				"result": result,
			})
			return
		}
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, result)
}

func (s *Server) handleResumeDebate(w http.ResponseWriter, r *http.Request) {
	id := core.SessionID(chi.URLParam(r, "sessionID"))

	var req resumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, core.ErrValidation("INVALID_BODY", "request body is not valid JSON").WithCause(err))
		return
	}

	result, err := s.engine.Resume(r.Context(), id, core.ResumeInstruction{
		Mode:        core.ResumeMode(req.Mode),
		Participant: req.Participant,
	})
	if err != nil {
		if result != nil {
			status, _ := httpStatusForDomainError(err)
			s.respondJSON(w, status, map[string]interface{}{
				"error":  s.logger.Sanitize(err.Error()),
				"result": result,
			})
			return
		}
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetDebate(w http.ResponseWriter, r *http.Request) {
	id := core.SessionID(chi.URLParam(r, "sessionID"))

	session, err := s.engine.Store().Get(id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, session)
}

func (s *Server) handleListDebates(w http.ResponseWriter, _ *http.Request) {
	sessions := s.engine.Store().List()
	out := make([]sessionSummary, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, sessionSummary{
			ID:        session.ID,
			Question:  session.Question,
			Status:    session.Status,
			Rounds:    len(session.Rounds),
			CostUSD:   session.TotalCost(),
			CreatedAt: session.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := core.SessionID(chi.URLParam(r, "sessionID"))

	report, err := s.engine.Report(id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	id := core.SessionID(chi.URLParam(r, "sessionID"))

	session, err := s.engine.Store().Get(id)
	if err != nil {
		s.respondError(w, err)
		return
	}

	format := debate.TranscriptFormat(r.URL.Query().Get("format"))
	transcript, err := debate.RenderTranscript(session, format)
	if err != nil {
		s.respondError(w, err)
		return
	}

	contentType := "text/markdown; charset=utf-8"
	if format == debate.FormatPlain {
		contentType = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(transcript))
}
