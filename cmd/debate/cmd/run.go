package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/clip"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
	"github.com/hugo-lorenzo-mato/debate-ai/internal/debate"
)

var (
	runContext     string
	runRounds      int
	runBudget      float64
	runStrategy    string
	runInteractive bool
	runShowFull    bool
	runCopy        bool
)

var runCmd = &cobra.Command{
	Use:   "run [question]",
	Short: "Run a debate on a question",
	Long: `Run a multi-round debate on a question. The panel answers
concurrently each round, agreement is scored, and rounds continue until
consensus, the round limit, or the budget stops them.

With --interactive the debate pauses after every round and asks how to
proceed.`,
	Args: cobra.ExactArgs(1),
	RunE: runDebate,
}

func init() {
	runCmd.Flags().StringVarP(&runContext, "context", "c", "", "optional context for the question")
	runCmd.Flags().IntVarP(&runRounds, "rounds", "r", 0, "round limit (default from config)")
	runCmd.Flags().Float64VarP(&runBudget, "budget", "b", 0, "budget ceiling in USD (default from config)")
	runCmd.Flags().StringVar(&runStrategy, "strategy", "", "debate strategy (debate, synthesize, tournament)")
	runCmd.Flags().BoolVarP(&runInteractive, "interactive", "i", false, "pause after each round for instructions")
	runCmd.Flags().BoolVar(&runShowFull, "full", false, "print the full transcript after the summary")
	runCmd.Flags().BoolVar(&runCopy, "copy", false, "copy the final answer or transcript to the clipboard")
	rootCmd.AddCommand(runCmd)
}

func runDebate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	engine, _, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	req := debate.StartRequest{
		Question:    args[0],
		Context:     runContext,
		Strategy:    core.Strategy(runStrategy),
		RoundLimit:  runRounds,
		BudgetUSD:   runBudget,
		Interactive: runInteractive,
	}
	if req.RoundLimit == 0 {
		req.RoundLimit = cfg.Debate.RoundLimit
	}
	if req.BudgetUSD == 0 {
		req.BudgetUSD = cfg.Debate.BudgetUSD
	}
	if req.Strategy == "" {
		req.Strategy = core.Strategy(cfg.Debate.Strategy)
	}

	ctx := cmd.Context()
	result, err := engine.StartDebate(ctx, req)
	if err != nil {
		// The hard budget stop still produced a result worth showing.
		if result == nil {
			return err
		}
		printResultSummary(result)
		return err
	}

	if runInteractive {
		result, err = interactLoop(ctx, engine, result, os.Stdin)
		if err != nil {
			printResultSummary(result)
			return err
		}
	}

	printResultSummary(result)

	if runShowFull {
		if err := printTranscript(engine, result.SessionID); err != nil {
			return err
		}
	}
	if runCopy {
		if err := copyResult(engine, result); err != nil {
			return err
		}
	}
	return nil
}

// interactLoop drives interactive mode: after each paused round it asks
// the operator how to proceed, mirroring the resume instructions the API
// offers. A fatal error from a resume is returned alongside the last
// result so the caller can show it before exiting nonzero.
func interactLoop(ctx context.Context, engine *debate.Engine, result *core.Result, in io.Reader) (*core.Result, error) {
	reader := bufio.NewReader(in)

	for result.Status == core.StatusPaused || result.Status == core.StatusDeadlock {
		printResultSummary(result)
		fmt.Println("\nHow should the debate continue?")
		fmt.Println("  [c] run two more rounds")
		fmt.Println("  [u] run until consensus (up to ten rounds)")
		fmt.Println("  [a <participant>] accept that participant's answer")
		fmt.Println("  [s] synthesize a final answer now")
		fmt.Println("  [q] stop here")
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return result, nil
		}
		fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
		if len(fields) == 0 {
			continue
		}

		var instr core.ResumeInstruction
		switch fields[0] {
		case "c":
			instr = core.ResumeInstruction{Mode: core.ResumeTwoRounds}
		case "u":
			instr = core.ResumeInstruction{Mode: core.ResumeUntilConsensus}
		case "a":
			if len(fields) < 2 {
				fmt.Println("usage: a <participant>")
				continue
			}
			instr = core.ResumeInstruction{Mode: core.ResumeAcceptAnswer, Participant: fields[1]}
		case "s":
			instr = core.ResumeInstruction{Mode: core.ResumeSynthesize}
		case "q":
			return result, nil
		default:
			fmt.Println("unrecognized choice")
			continue
		}

		next, err := engine.Resume(ctx, result.SessionID, instr)
		if err != nil {
			var derr *core.DomainError
			if errors.As(err, &derr) && derr.Category == core.ErrCatNotFound {
				fmt.Println(derr.Message)
				continue
			}
			if next == nil {
				next = result
			}
			return next, err
		}
		result = next
	}
	return result, nil
}

func printTranscript(engine *debate.Engine, id core.SessionID) error {
	session, err := engine.Store().Get(id)
	if err != nil {
		return err
	}
	transcript, err := debate.RenderTranscript(session, debate.FormatMarkdown)
	if err != nil {
		return err
	}
	fmt.Print(renderMarkdown(transcript))
	return nil
}

func copyResult(engine *debate.Engine, result *core.Result) error {
	text := result.FinalAnswer
	if text == "" {
		session, err := engine.Store().Get(result.SessionID)
		if err != nil {
			return err
		}
		text, err = debate.RenderTranscript(session, debate.FormatPlain)
		if err != nil {
			return err
		}
	}

	res, err := clip.WriteAll(text)
	if err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	switch res.Method {
	case clip.MethodFile:
		fmt.Fprintf(os.Stderr, "clipboard unavailable, content written to %s\n", res.FilePath)
	default:
		fmt.Fprintf(os.Stderr, "copied to clipboard (%s)\n", res.Method)
	}
	return nil
}
