// Package config loads and validates debate engine configuration from
// flags, environment variables, and YAML config files.
package config

// Config holds all application configuration.
type Config struct {
	Log          LogConfig          `mapstructure:"log"`
	Debate       DebateConfig       `mapstructure:"debate"`
	Consensus    ConsensusConfig    `mapstructure:"consensus"`
	Participants ParticipantsConfig `mapstructure:"participants"`
	Server       ServerConfig       `mapstructure:"server"`
}

// LogConfig configures logging behavior.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DebateConfig configures session defaults. The caller may override the
// round limit and budget per debate; these are the fallbacks.
type DebateConfig struct {
	RoundLimit int     `mapstructure:"round_limit"`
	BudgetUSD  float64 `mapstructure:"budget_usd"`
	Strategy   string  `mapstructure:"strategy"`
}

// ConsensusConfig configures agreement scoring.
type ConsensusConfig struct {
	// Threshold is the agreement score that resolves a debate.
	Threshold float64 `mapstructure:"threshold"`
	// ScorerCommand is the external semantic scorer invocation, split into
	// argv form. Empty disables the primary method entirely, leaving only
	// the lexical fallback.
	ScorerCommand []string `mapstructure:"scorer_command"`
	// ScorerTimeout bounds one scorer subprocess run, as a duration string.
	ScorerTimeout string `mapstructure:"scorer_timeout"`
}

// ParticipantsConfig configures the debate panel.
type ParticipantsConfig struct {
	Claude ParticipantConfig `mapstructure:"claude"`
	GPT    ParticipantConfig `mapstructure:"gpt"`
	Gemini ParticipantConfig `mapstructure:"gemini"`
}

// ParticipantConfig configures a single hosted-API participant.
type ParticipantConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Model       string  `mapstructure:"model"`
	APIKeyEnv   string  `mapstructure:"api_key_env"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// ServerConfig configures the HTTP host surface.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// EnabledParticipants returns the names of enabled participants in the
// fixed panel order.
func (c *Config) EnabledParticipants() []string {
	names := make([]string, 0, 3)
	if c.Participants.Claude.Enabled {
		names = append(names, "claude")
	}
	if c.Participants.GPT.Enabled {
		names = append(names, "gpt")
	}
	if c.Participants.Gemini.Enabled {
		names = append(names, "gemini")
	}
	return names
}

// Participant returns the configuration for a named participant.
func (c *Config) Participant(name string) (ParticipantConfig, bool) {
	switch name {
	case "claude":
		return c.Participants.Claude, true
	case "gpt":
		return c.Participants.GPT, true
	case "gemini":
		return c.Participants.Gemini, true
	}
	return ParticipantConfig{}, false
}
