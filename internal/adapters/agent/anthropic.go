package agent

import (
	"context"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/config"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/ledger"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/logging"
)

// Claude is the Anthropic Messages API participant.
type Claude struct {
	client anthropic.Client
	cfg    config.ParticipantConfig
	logger *logging.Logger
}

// NewClaude builds the Anthropic participant from configuration.
func NewClaude(cfg config.ParticipantConfig, logger *logging.Logger) (core.Participant, error) {
	key, err := apiKey(cfg, "claude")
	if err != nil {
		return nil, err
	}
	return &Claude{
		client: anthropic.NewClient(option.WithAPIKey(key)),
		cfg:    cfg,
		logger: logger.WithParticipant("claude"),
	}, nil
}

// Name implements core.Participant.
func (c *Claude) Name() string { return "claude" }

// Models returns the model identifiers this participant can use.
func (c *Claude) Models() []string {
	return []string{c.cfg.Model}
}

// Generate sends one prompt and returns the normalized response. An empty
// model argument uses the configured default.
func (c *Claude) Generate(ctx context.Context, prompt, model string) (*core.Response, error) {
	if model == "" {
		model = c.cfg.Model
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   int64(c.cfg.MaxTokens),
		Temperature: anthropic.Float(c.cfg.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, core.ErrParticipant("claude", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.AsText().Text)
		}
	}

	tokensIn := int(resp.Usage.InputTokens)
	tokensOut := int(resp.Usage.OutputTokens)
	return &core.Response{
		Participant: "claude",
		Content:     text.String(),
		Model:       model,
		TokensIn:    tokensIn,
		TokensOut:   tokensOut,
		CostUSD:     ledger.EstimateCost(model, tokensIn, tokensOut),
		Timestamp:   time.Now(),
	}, nil
}

var _ core.Participant = (*Claude)(nil)
