package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/clip"
)

var (
	transcriptFormat string
	transcriptCopy   bool
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript [session-id]",
	Short: "Show the full transcript of a session",
	Long: `Fetch the round-by-round transcript of a session held by a running
debate server, in markdown or plain text.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscript,
}

func init() {
	transcriptCmd.Flags().StringVarP(&transcriptFormat, "format", "f", "markdown", "output format (markdown, plain)")
	transcriptCmd.Flags().BoolVar(&transcriptCopy, "copy", false, "copy the transcript to the clipboard")
	rootCmd.AddCommand(transcriptCmd)
}

func runTranscript(_ *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	path := "/api/v1/debates/" + args[0] + "/transcript?format=" + transcriptFormat
	body, err := apiGet(serverURL(cfg.Server.Addr), path, nil)
	if err != nil {
		return err
	}

	if transcriptFormat == "markdown" {
		fmt.Print(renderMarkdown(body))
	} else {
		fmt.Print(body)
	}

	if transcriptCopy {
		if _, err := clip.WriteAll(body); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
	}
	return nil
}
