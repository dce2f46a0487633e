package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: `Run a Model Context Protocol server over stdin/stdout. This lets an
MCP client start debates, resume paused sessions, and fetch reports
and transcripts as tools.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	engine, _, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	server := mcp.NewServer(engine, appVersion, logger)
	return server.Run(cmd.Context())
}
