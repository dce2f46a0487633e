package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading from multiple sources.
type Loader struct {
	v          *viper.Viper
	configFile string
	envPrefix  string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		v:         viper.New(),
		envPrefix: "DEBATE",
	}
}

// NewLoaderWithViper creates a loader using an existing viper instance.
// This allows integration with CLI flag bindings.
func NewLoaderWithViper(v *viper.Viper) *Loader {
	return &Loader{
		v:         v,
		envPrefix: "DEBATE",
	}
}

// WithConfigFile sets an explicit config file path.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Viper returns the underlying viper instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load loads configuration from all sources.
// Precedence (highest to lowest):
// 1. CLI flags (set via viper.BindPFlag)
// 2. Environment variables (DEBATE_*)
// 3. Project config (.debate.yaml in current directory)
// 4. User config (~/.config/debate/config.yaml)
// 5. Defaults
func (l *Loader) Load() (*Config, error) {
	l.setDefaults()

	l.v.SetEnvPrefix(l.envPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName(".debate")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			l.v.AddConfigPath(filepath.Join(home, ".config", "debate"))
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values.
func (l *Loader) setDefaults() {
	l.v.SetDefault("log.level", "info")
	l.v.SetDefault("log.format", "auto")

	l.v.SetDefault("debate.round_limit", 3)
	l.v.SetDefault("debate.budget_usd", 1.0)
	l.v.SetDefault("debate.strategy", "debate")

	l.v.SetDefault("consensus.threshold", 0.85)
	l.v.SetDefault("consensus.scorer_command", []string{"python3", "scripts/smart_consensus.py"})
	l.v.SetDefault("consensus.scorer_timeout", "30s")

	l.v.SetDefault("participants.claude.enabled", true)
	l.v.SetDefault("participants.claude.model", "claude-sonnet-4-20250514")
	l.v.SetDefault("participants.claude.api_key_env", "ANTHROPIC_API_KEY")
	l.v.SetDefault("participants.claude.max_tokens", 4096)
	l.v.SetDefault("participants.claude.temperature", 0.7)

	l.v.SetDefault("participants.gpt.enabled", true)
	l.v.SetDefault("participants.gpt.model", "gpt-4o")
	l.v.SetDefault("participants.gpt.api_key_env", "OPENAI_API_KEY")
	l.v.SetDefault("participants.gpt.max_tokens", 4096)
	l.v.SetDefault("participants.gpt.temperature", 0.7)

	l.v.SetDefault("participants.gemini.enabled", true)
	l.v.SetDefault("participants.gemini.model", "gemini-2.5-flash")
	l.v.SetDefault("participants.gemini.api_key_env", "GEMINI_API_KEY")
	l.v.SetDefault("participants.gemini.max_tokens", 4096)
	l.v.SetDefault("participants.gemini.temperature", 0.7)

	l.v.SetDefault("server.addr", "127.0.0.1:8385")
}
