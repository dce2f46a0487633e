package core

import (
	"fmt"
)

// ErrorCategory classifies errors for handling decisions.
type ErrorCategory string

const (
	ErrCatValidation   ErrorCategory = "validation"   // Invalid input
	ErrCatPrecondition ErrorCategory = "precondition" // Panel too small to debate
	ErrCatParticipant  ErrorCategory = "participant"  // One agent's call failed
	ErrCatScoring      ErrorCategory = "scoring"      // Primary agreement method failed
	ErrCatBudget       ErrorCategory = "budget"       // Caller's ceiling reached (planned stop)
	ErrCatBudgetFatal  ErrorCategory = "budget_fatal" // Emergency ceiling reached
	ErrCatNotFound     ErrorCategory = "not_found"    // Unknown session or participant
	ErrCatInternal     ErrorCategory = "internal"     // Unexpected internal error
)

// DomainError represents a structured error from the engine.
type DomainError struct {
	Category  ErrorCategory
	Code      string
	Message   string
	Retryable bool
	Cause     error
	Details   map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches a target.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Category == t.Category && e.Code == t.Code
}

// WithCause wraps an underlying error.
func (e *DomainError) WithCause(cause error) *DomainError {
	e.Cause = cause
	return e
}

// WithDetail adds contextual information.
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ErrValidation creates a validation error.
func ErrValidation(code, message string) *DomainError {
	return &DomainError{
		Category:  ErrCatValidation,
		Code:      code,
		Message:   message,
		Retryable: false,
	}
}

// ErrPrecondition creates a precondition error. It is fatal: no round may
// start when the panel is smaller than the configured minimum.
func ErrPrecondition(message string) *DomainError {
	return &DomainError{
		Category:  ErrCatPrecondition,
		Code:      "PANEL_TOO_SMALL",
		Message:   message,
		Retryable: false,
	}
}

// ErrParticipant creates a participant failure error. Recovered locally as
// a synthetic error response; never propagated as a round failure.
func ErrParticipant(participant string, cause error) *DomainError {
	return &DomainError{
		Category:  ErrCatParticipant,
		Code:      "PARTICIPANT_FAILED",
		Message:   fmt.Sprintf("participant %s failed", participant),
		Retryable: true,
		Cause:     cause,
	}
}

// ErrScoring creates a scoring failure error. Recovered locally via the
// fallback scorer.
func ErrScoring(message string) *DomainError {
	return &DomainError{
		Category:  ErrCatScoring,
		Code:      "SCORING_FAILED",
		Message:   message,
		Retryable: true,
	}
}

// ErrBudgetExceeded creates the fatal emergency-ceiling error.
func ErrBudgetExceeded(spent, ceiling float64) *DomainError {
	return &DomainError{
		Category:  ErrCatBudgetFatal,
		Code:      "EMERGENCY_CEILING",
		Message:   fmt.Sprintf("emergency cost ceiling reached: spent $%.2f of hard limit $%.2f", spent, ceiling),
		Retryable: false,
	}
}

// ErrSessionNotFound creates a not-found error for an unknown session id.
func ErrSessionNotFound(id SessionID) *DomainError {
	return &DomainError{
		Category:  ErrCatNotFound,
		Code:      "SESSION_NOT_FOUND",
		Message:   fmt.Sprintf("unknown session %s", id),
		Retryable: false,
	}
}

// ErrNotFound creates a generic not-found error.
func ErrNotFound(kind, name string) *DomainError {
	return &DomainError{
		Category:  ErrCatNotFound,
		Code:      "NOT_FOUND",
		Message:   fmt.Sprintf("%s %q not found", kind, name),
		Retryable: false,
	}
}

// ErrInternal creates an internal error.
func ErrInternal(message string) *DomainError {
	return &DomainError{
		Category:  ErrCatInternal,
		Code:      "INTERNAL",
		Message:   message,
		Retryable: false,
	}
}
