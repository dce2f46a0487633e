package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List debate sessions on a running server",
	Long: `List the sessions held by a running debate server. Sessions live in
server memory, so this talks to the server started with "debate serve"
rather than reading local state.`,
	RunE: runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	var sessions []struct {
		ID        string  `json:"id"`
		Question  string  `json:"question"`
		Status    string  `json:"status"`
		Rounds    int     `json:"rounds"`
		CostUSD   float64 `json:"cost_usd"`
		CreatedAt string  `json:"created_at"`
	}
	if _, err := apiGet(serverURL(cfg.Server.Addr), "/api/v1/debates/", &sessions); err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tROUNDS\tCOST\tQUESTION")
	for _, s := range sessions {
		question := s.Question
		if len(question) > 60 {
			question = question[:57] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t$%.4f\t%s\n", s.ID, s.Status, s.Rounds, s.CostUSD, question)
	}
	return w.Flush()
}
