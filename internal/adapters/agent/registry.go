// Package agent provides the hosted-API participant adapters behind the
// core.Participant port, with a registry keyed by participant name.
package agent

import (
	"os"
	"sync"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/config"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/logging"
)

// Factory creates a participant from its configuration.
type Factory func(cfg config.ParticipantConfig, logger *logging.Logger) (core.Participant, error)

// Registry manages the available participant factories and caches built
// participants per name.
type Registry struct {
	mu           sync.RWMutex
	factories    map[string]Factory
	participants map[string]core.Participant
	logger       *logging.Logger
}

// NewRegistry creates a registry with the built-in providers registered.
func NewRegistry(logger *logging.Logger) *Registry {
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Registry{
		factories:    make(map[string]Factory),
		participants: make(map[string]core.Participant),
		logger:       logger,
	}
	r.RegisterFactory("claude", NewClaude)
	r.RegisterFactory("gpt", NewGPT)
	r.RegisterFactory("gemini", NewGemini)
	return r
}

// RegisterFactory registers a factory for a participant name.
func (r *Registry) RegisterFactory(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
	delete(r.participants, name)
}

// Register adds a built participant directly, bypassing its factory.
func (r *Registry) Register(name string, p core.Participant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.participants[name] = p
}

// Get returns the participant for a name, building it on first use.
func (r *Registry) Get(name string, cfg config.ParticipantConfig) (core.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.participants[name]; ok {
		return p, nil
	}
	factory, ok := r.factories[name]
	if !ok {
		return nil, core.ErrNotFound("participant", name)
	}
	p, err := factory(cfg, r.logger)
	if err != nil {
		return nil, err
	}
	r.participants[name] = p
	return p, nil
}

// FromConfig builds every enabled participant in panel order.
func (r *Registry) FromConfig(cfg *config.Config) ([]core.Participant, error) {
	names := cfg.EnabledParticipants()
	out := make([]core.Participant, 0, len(names))
	for _, name := range names {
		pcfg, _ := cfg.Participant(name)
		p, err := r.Get(name, pcfg)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// apiKey resolves a participant's API key from its configured environment
// variable.
func apiKey(cfg config.ParticipantConfig, participant string) (string, error) {
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return "", core.ErrValidation("MISSING_API_KEY",
			"environment variable "+cfg.APIKeyEnv+" is not set for participant "+participant)
	}
	return key, nil
}
