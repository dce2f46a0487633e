package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// The scaffold written by `debate init` must stay parseable and must agree
// with the loader defaults, or a freshly initialized project behaves
// differently from an unconfigured one.
func TestDefaultConfigYAMLParses(t *testing.T) {
	var doc struct {
		Log struct {
			Level  string `yaml:"level"`
			Format string `yaml:"format"`
		} `yaml:"log"`
		Debate struct {
			RoundLimit int     `yaml:"round_limit"`
			BudgetUSD  float64 `yaml:"budget_usd"`
		} `yaml:"debate"`
		Consensus struct {
			Threshold     float64  `yaml:"threshold"`
			ScorerCommand []string `yaml:"scorer_command"`
		} `yaml:"consensus"`
		Participants map[string]struct {
			Enabled   bool   `yaml:"enabled"`
			APIKeyEnv string `yaml:"api_key_env"`
		} `yaml:"participants"`
		Server struct {
			Addr string `yaml:"addr"`
		} `yaml:"server"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(DefaultConfigYAML), &doc))

	assert.Equal(t, "info", doc.Log.Level)
	assert.Equal(t, 3, doc.Debate.RoundLimit)
	assert.InDelta(t, 1.0, doc.Debate.BudgetUSD, 1e-9)
	assert.InDelta(t, 0.85, doc.Consensus.Threshold, 1e-9)
	assert.Equal(t, []string{"python3", "scripts/smart_consensus.py"}, doc.Consensus.ScorerCommand)
	assert.Len(t, doc.Participants, 3)
	for name, pc := range doc.Participants {
		assert.True(t, pc.Enabled, name)
		assert.NotEmpty(t, pc.APIKeyEnv, name)
	}
	assert.Equal(t, "127.0.0.1:8385", doc.Server.Addr)
}
