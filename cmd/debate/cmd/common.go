package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/adapters/agent"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/config"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/debate"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/ledger"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/logging"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/scoring"
)

// loadConfig loads and validates configuration, honoring the persistent
// logging flags over file and environment values.
func loadConfig() (*config.Config, *logging.Logger, error) {
	loader := config.NewLoader()
	if cfgFile != "" {
		loader = loader.WithConfigFile(cfgFile)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}

	if err := config.NewValidator().Validate(cfg); err != nil {
		return nil, nil, err
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	return cfg, logger, nil
}

// buildEngine assembles the full stack: participants, cost controller,
// scorer, conductor, and state machine.
func buildEngine(cfg *config.Config, logger *logging.Logger) (*debate.Engine, *ledger.Controller, error) {
	registry := agent.NewRegistry(logger)
	participants, err := registry.FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	scorer, err := buildScorer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	costs := ledger.NewController()
	conductor := debate.NewConductor(participants, costs, scorer, logger)
	engine := debate.NewEngine(conductor, debate.NewMemoryStore(), costs, logger,
		debate.WithThreshold(cfg.Consensus.Threshold))
	return engine, costs, nil
}

// buildScorer wires the semantic scorer subprocess as primary with the
// lexical fallback; an empty scorer command leaves only the fallback.
func buildScorer(cfg *config.Config, logger *logging.Logger) (core.Scorer, error) {
	fallback := scoring.NewLexicalScorer()

	if len(cfg.Consensus.ScorerCommand) == 0 {
		return scoring.NewCombined(nil, fallback, logger), nil
	}

	timeout, err := time.ParseDuration(cfg.Consensus.ScorerTimeout)
	if err != nil {
		timeout = 30 * time.Second
	}
	primary, err := scoring.NewSemanticScorer(cfg.Consensus.ScorerCommand, timeout)
	if err != nil {
		return nil, err
	}
	return scoring.NewCombined(primary, fallback, logger), nil
}

// renderMarkdown pretty-prints markdown when stdout is a terminal and
// passes it through unchanged otherwise.
func renderMarkdown(text string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}

// printResultSummary writes the human-facing outcome of a debate.
func printResultSummary(result *core.Result) {
	fmt.Printf("\nSession:  %s\n", result.SessionID)
	fmt.Printf("Status:   %s\n", result.Status)
	fmt.Printf("Rounds:   %d\n", len(result.Rounds))
	fmt.Printf("Cost:     $%.4f (%d tokens)\n", result.TotalCostUSD, result.TotalTokens)

	for _, round := range result.Rounds {
		fmt.Printf("  round %d: agreement %.2f (%s)\n", round.Number, round.Score, round.ScoreMethod)
	}

	if result.FinalAnswer != "" {
		fmt.Println()
		fmt.Print(renderMarkdown("## Final Answer\n\n" + result.FinalAnswer + "\n"))
	}

	if result.Report != nil {
		printReport(result.Report)
	}
}

// printReport writes a disagreement report.
func printReport(report *core.DisagreementReport) {
	fmt.Println()
	fmt.Println("Disagreement report:")
	fmt.Printf("  type:          %s\n", report.Type)
	fmt.Printf("  resolvability: %d/10\n", report.Resolvability)
	fmt.Printf("  core conflict: %s\n", report.CoreConflict)
	for _, kp := range report.KeyPoints {
		fmt.Printf("  - %s: %s\n", kp.Participant, kp.Point)
	}
}
