package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation: %s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator validates configuration.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{errors: make(ValidationErrors, 0)}
}

// Validate validates the entire configuration.
func (v *Validator) Validate(cfg *Config) error {
	v.validateLog(&cfg.Log)
	v.validateDebate(&cfg.Debate)
	v.validateConsensus(&cfg.Consensus)
	v.validateParticipants(cfg)

	if v.errors.HasErrors() {
		return v.errors
	}
	return nil
}

func (v *Validator) addError(field string, value interface{}, message string) {
	v.errors = append(v.errors, ValidationError{Field: field, Value: value, Message: message})
}

func (v *Validator) validateLog(cfg *LogConfig) {
	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		v.addError("log.level", cfg.Level, "must be debug, info, warn or error")
	}
	switch cfg.Format {
	case "auto", "text", "json":
	default:
		v.addError("log.format", cfg.Format, "must be auto, text or json")
	}
}

func (v *Validator) validateDebate(cfg *DebateConfig) {
	if cfg.RoundLimit < 1 {
		v.addError("debate.round_limit", cfg.RoundLimit, "must be at least 1")
	}
	if cfg.BudgetUSD <= 0 {
		v.addError("debate.budget_usd", cfg.BudgetUSD, "must be positive")
	}
	if cfg.BudgetUSD > core.EmergencyCeilingUSD {
		v.addError("debate.budget_usd", cfg.BudgetUSD,
			fmt.Sprintf("exceeds the hard ceiling of $%.2f", core.EmergencyCeilingUSD))
	}
	switch core.Strategy(cfg.Strategy) {
	case core.StrategyDebate, core.StrategySynthesize, core.StrategyTournament:
	default:
		v.addError("debate.strategy", cfg.Strategy, "must be debate, synthesize or tournament")
	}
}

func (v *Validator) validateConsensus(cfg *ConsensusConfig) {
	if cfg.Threshold <= 0 || cfg.Threshold > 1 {
		v.addError("consensus.threshold", cfg.Threshold, "must be in (0,1]")
	}
	if cfg.ScorerTimeout != "" {
		if _, err := time.ParseDuration(cfg.ScorerTimeout); err != nil {
			v.addError("consensus.scorer_timeout", cfg.ScorerTimeout, "must be a duration like 30s")
		}
	}
}

func (v *Validator) validateParticipants(cfg *Config) {
	enabled := cfg.EnabledParticipants()
	if len(enabled) < core.MinParticipants {
		v.addError("participants", enabled,
			fmt.Sprintf("at least %d participants must be enabled", core.MinParticipants))
	}

	for _, name := range enabled {
		pc, _ := cfg.Participant(name)
		if pc.Model == "" {
			v.addError("participants."+name+".model", pc.Model, "must not be empty")
		}
		if pc.APIKeyEnv == "" {
			v.addError("participants."+name+".api_key_env", pc.APIKeyEnv, "must not be empty")
		}
		if pc.MaxTokens < 1 {
			v.addError("participants."+name+".max_tokens", pc.MaxTokens, "must be at least 1")
		}
		if pc.Temperature < 0 || pc.Temperature > 2 {
			v.addError("participants."+name+".temperature", pc.Temperature, "must be in [0,2]")
		}
	}
}
