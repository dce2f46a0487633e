package scoring

import (
	"context"
	"sync"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/logging"
)

// Combined is the production scorer: it tries the primary strategy and
// silently substitutes the fallback when the primary fails for any
// reason. The caller always gets a valid score in [0, 1]; only the
// reported method reveals which strategy produced it.
type Combined struct {
	primary  core.Scorer
	fallback core.Scorer
	logger   *logging.Logger

	mu         sync.Mutex
	lastMethod string
}

// NewCombined wires a primary and a fallback scorer together. The
// fallback must never fail; LexicalScorer satisfies that.
func NewCombined(primary, fallback core.Scorer, logger *logging.Logger) *Combined {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Combined{
		primary:    primary,
		fallback:   fallback,
		logger:     logger,
		lastMethod: fallback.Method(),
	}
}

// Method reports the strategy that produced the most recent score. Read
// it right after Score when sessions share one Combined instance.
func (c *Combined) Method() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastMethod
}

func (c *Combined) setMethod(m string) {
	c.mu.Lock()
	c.lastMethod = m
	c.mu.Unlock()
}

// Score returns the agreement score for the texts. Fewer than two texts
// always scores 0 regardless of strategy.
func (c *Combined) Score(ctx context.Context, texts []string) (float64, error) {
	if len(texts) < 2 {
		return 0, nil
	}

	if c.primary != nil {
		score, err := c.primary.Score(ctx, texts)
		if err == nil {
			c.setMethod(c.primary.Method())
			return clamp01(score), nil
		}
		c.logger.Warn("primary scorer failed, using fallback",
			"primary", c.primary.Method(),
			"fallback", c.fallback.Method(),
			"error", err)
	}

	score, err := c.fallback.Score(ctx, texts)
	if err != nil {
		return 0, core.ErrScoring("fallback scorer failed").WithCause(err)
	}
	c.setMethod(c.fallback.Method())
	return clamp01(score), nil
}

var (
	_ core.Scorer = (*Combined)(nil)
	_ core.Scorer = (*LexicalScorer)(nil)
	_ core.Scorer = (*SemanticScorer)(nil)
)
