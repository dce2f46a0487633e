package api

import (
	"errors"
	"net/http"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func httpStatusForDomainError(err error) (int, bool) {
	var domErr *core.DomainError
	if !errors.As(err, &domErr) || domErr == nil {
		return 0, false
	}

	switch domErr.Category {
	case core.ErrCatValidation:
		return http.StatusUnprocessableEntity, true
	case core.ErrCatPrecondition:
		return http.StatusConflict, true
	case core.ErrCatNotFound:
		return http.StatusNotFound, true
	case core.ErrCatBudgetFatal:
		return http.StatusPaymentRequired, true
	case core.ErrCatParticipant, core.ErrCatScoring:
		return http.StatusBadGateway, true
	default:
		return http.StatusInternalServerError, true
	}
}

// respondError maps an error to a JSON response with the right status.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	status, ok := httpStatusForDomainError(err)
	if !ok {
		status = http.StatusInternalServerError
	}

	body := errorBody{Error: s.logger.Sanitize(err.Error())}
	var domErr *core.DomainError
	if errors.As(err, &domErr) {
		body.Code = domErr.Code
		body.Details = domErr.Details
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "error", err)
	}
	s.respondJSON(w, status, body)
}
