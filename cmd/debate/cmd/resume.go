package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

var (
	resumeTwoRounds   bool
	resumeUntil       bool
	resumeAccept      string
	resumeSynthesizeF bool
)

var resumeCmd = &cobra.Command{
	Use:   "resume [session-id]",
	Short: "Resume a paused or deadlocked session",
	Long: `Resume a session held by a running debate server with one of four
instructions: run two more rounds, run until consensus, accept one
participant's answer verbatim, or synthesize a final answer now.`,
	Args: cobra.ExactArgs(1),
	RunE: runResume,
}

func init() {
	resumeCmd.Flags().BoolVar(&resumeTwoRounds, "two-rounds", false, "run two more rounds")
	resumeCmd.Flags().BoolVar(&resumeUntil, "until-consensus", false, "keep debating until consensus, up to ten more rounds")
	resumeCmd.Flags().StringVar(&resumeAccept, "accept", "", "accept the named participant's answer verbatim")
	resumeCmd.Flags().BoolVar(&resumeSynthesizeF, "synthesize", false, "synthesize a final answer from the last round")
	rootCmd.AddCommand(resumeCmd)
}

func runResume(_ *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	var mode core.ResumeMode
	chosen := 0
	if resumeTwoRounds {
		mode = core.ResumeTwoRounds
		chosen++
	}
	if resumeUntil {
		mode = core.ResumeUntilConsensus
		chosen++
	}
	if resumeAccept != "" {
		mode = core.ResumeAcceptAnswer
		chosen++
	}
	if resumeSynthesizeF {
		mode = core.ResumeSynthesize
		chosen++
	}
	if chosen != 1 {
		return fmt.Errorf("choose exactly one of --two-rounds, --until-consensus, --accept, --synthesize")
	}

	body := map[string]string{"mode": string(mode)}
	if resumeAccept != "" {
		body["participant"] = resumeAccept
	}

	var result core.Result
	path := "/api/v1/debates/" + args[0] + "/resume"
	if _, err := apiPost(serverURL(cfg.Server.Addr), path, body, &result); err != nil {
		return err
	}

	printResultSummary(&result)
	return nil
}
