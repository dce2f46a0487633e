package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

var reportCmd = &cobra.Command{
	Use:   "report [session-id]",
	Short: "Show the disagreement report for a session",
	Long: `Fetch the disagreement report for a session held by a running debate
server. The report classifies the disagreement, rates how resolvable
it looks, and quotes each participant's key point.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	var report core.DisagreementReport
	path := "/api/v1/debates/" + args[0] + "/report"
	if _, err := apiGet(serverURL(cfg.Server.Addr), path, &report); err != nil {
		return err
	}

	printReport(&report)
	return nil
}
