package cli

import (
	"os"

	"github.com/spf13/cobra"

	inframcp "github.com/KnownUser19/Smart-Task-Analyzer/internal/infrastructure/mcp"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/application"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdin/stdout",
	Long: `Start a Model Context Protocol server so agent clients can call
the analyzer as tools: analyze_tasks, suggest_tasks, validate_tasks and
list_strategies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("TASK_ANALYZER_SKIP_MCP_START") == "true" {
			return nil
		}
		server := inframcp.NewServer(application.NewAnalysisService())
		return server.Start(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(mcpCmd)
}
