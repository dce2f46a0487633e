package agent

import (
	"context"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/config"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/ledger"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/logging"
)

// GPT is the OpenAI Chat Completions participant.
type GPT struct {
	client openai.Client
	cfg    config.ParticipantConfig
	logger *logging.Logger
}

// NewGPT builds the OpenAI participant from configuration.
func NewGPT(cfg config.ParticipantConfig, logger *logging.Logger) (core.Participant, error) {
	key, err := apiKey(cfg, "gpt")
	if err != nil {
		return nil, err
	}
	return &GPT{
		client: openai.NewClient(option.WithAPIKey(key)),
		cfg:    cfg,
		logger: logger.WithParticipant("gpt"),
	}, nil
}

// Name implements core.Participant.
func (g *GPT) Name() string { return "gpt" }

// Models returns the model identifiers this participant can use.
func (g *GPT) Models() []string {
	return []string{g.cfg.Model}
}

// Generate sends one prompt and returns the normalized response.
func (g *GPT) Generate(ctx context.Context, prompt, model string) (*core.Response, error) {
	if model == "" {
		model = g.cfg.Model
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(g.cfg.Temperature),
		MaxCompletionTokens: openai.Int(int64(g.cfg.MaxTokens)),
	})
	if err != nil {
		return nil, core.ErrParticipant("gpt", err)
	}
	if len(resp.Choices) == 0 {
		return nil, core.ErrParticipant("gpt", core.ErrInternal("empty completion"))
	}

	tokensIn := int(resp.Usage.PromptTokens)
	tokensOut := int(resp.Usage.CompletionTokens)
	return &core.Response{
		Participant: "gpt",
		Content:     resp.Choices[0].Message.Content,
		Model:       model,
		TokensIn:    tokensIn,
		TokensOut:   tokensOut,
		CostUSD:     ledger.EstimateCost(model, tokensIn, tokensOut),
		Timestamp:   time.Now(),
	}, nil
}

var _ core.Participant = (*GPT)(nil)
