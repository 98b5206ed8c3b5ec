package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "task-analyzer",
	Version: Version,
	Short:   "Score and rank tasks by urgency, importance, effort and dependencies",
	Long: `Task Analyzer scores a list of tasks and tells you what to work on next.
Each task gets a priority score from four weighted factors:
1. How soon is it due?
2. How much does it matter?
3. How quickly can it be done?
4. How many other tasks does it unblock?`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}
