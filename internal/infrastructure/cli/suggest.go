package cli

import (
	"github.com/spf13/cobra"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/application"
)

var (
	suggestFile     string
	suggestStrategy string
	suggestDate     string
	suggestCount    int
	suggestJSON     bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show the top tasks to work on next",
	Long: `Score a task list and print the highest-priority tasks with a
reason and a suggested next step for each.

Examples:
  task-analyzer suggest -f tasks.json
  task-analyzer suggest -f tasks.json -n 5 -s fastest_wins`,
	RunE: runSuggestCmd,
}

func init() {
	RootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().StringVarP(&suggestFile, "file", "f", "", "Task file (JSON or YAML)")
	suggestCmd.Flags().StringVarP(&suggestStrategy, "strategy", "s", "", "Scoring strategy (default smart_balance)")
	suggestCmd.Flags().StringVar(&suggestDate, "date", "", "Reference date for urgency (YYYY-MM-DD, default today)")
	suggestCmd.Flags().IntVarP(&suggestCount, "count", "n", 0, "How many suggestions to show (1-10, default 3)")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Output in JSON format")
	_ = suggestCmd.MarkFlagRequired("file")
}

func runSuggestCmd(cmd *cobra.Command, args []string) error {
	drafts, err := LoadDrafts(suggestFile)
	if err != nil {
		return err
	}

	svc := application.NewAnalysisService()
	result, err := svc.Suggest(cmd.Context(), application.SuggestRequest{
		AnalyzeRequest: application.AnalyzeRequest{
			Tasks:         drafts,
			Strategy:      suggestStrategy,
			ReferenceDate: suggestDate,
		},
		Count: suggestCount,
	})
	if err != nil {
		return MapError(err)
	}

	if suggestJSON {
		return printJSON(cmd, result)
	}
	cmd.Println(renderSuggestions(result))
	return nil
}
