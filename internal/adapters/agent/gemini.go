package agent

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/config"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/ledger"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/logging"
)

// Gemini is the Google Generative AI participant. The genai client needs
// a context to construct, so it is created lazily on first call.
type Gemini struct {
	cfg    config.ParticipantConfig
	apiKey string
	logger *logging.Logger

	mu     sync.Mutex
	client *genai.Client
}

// NewGemini builds the Google participant from configuration.
func NewGemini(cfg config.ParticipantConfig, logger *logging.Logger) (core.Participant, error) {
	key, err := apiKey(cfg, "gemini")
	if err != nil {
		return nil, err
	}
	return &Gemini{
		cfg:    cfg,
		apiKey: key,
		logger: logger.WithParticipant("gemini"),
	}, nil
}

// Name implements core.Participant.
func (g *Gemini) Name() string { return "gemini" }

// Models returns the model identifiers this participant can use.
func (g *Gemini) Models() []string {
	return []string{g.cfg.Model}
}

func (g *Gemini) getClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, core.ErrParticipant("gemini", err)
	}
	g.client = client
	return client, nil
}

// Generate sends one prompt and returns the normalized response.
func (g *Gemini) Generate(ctx context.Context, prompt, model string) (*core.Response, error) {
	if model == "" {
		model = g.cfg.Model
	}

	client, err := g.getClient(ctx)
	if err != nil {
		return nil, err
	}

	gm := client.GenerativeModel(model)
	gm.SetTemperature(float32(g.cfg.Temperature))
	gm.SetMaxOutputTokens(int32(g.cfg.MaxTokens))

	resp, err := gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, core.ErrParticipant("gemini", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, core.ErrParticipant("gemini", core.ErrInternal("empty candidate set"))
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	tokensIn, tokensOut := 0, 0
	if resp.UsageMetadata != nil {
		tokensIn = int(resp.UsageMetadata.PromptTokenCount)
		tokensOut = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	return &core.Response{
		Participant: "gemini",
		Content:     text.String(),
		Model:       model,
		TokensIn:    tokensIn,
		TokensOut:   tokensOut,
		CostUSD:     ledger.EstimateCost(model, tokensIn, tokensOut),
		Timestamp:   time.Now(),
	}, nil
}

var _ core.Participant = (*Gemini)(nil)
