package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/application"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/scoring"
)

var (
	analyzeFile     string
	analyzeStrategy string
	analyzeDate     string
	analyzeWeights  string
	analyzeJSON     bool
	analyzeVerbose  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score and rank a task list",
	Long: `Score every task in a JSON or YAML file and print them ranked
by priority, highest first.

Examples:
  task-analyzer analyze -f tasks.json
  task-analyzer analyze -f tasks.yaml -s deadline_driven
  task-analyzer analyze -f tasks.json --weights 40,30,15,15 --json`,
	RunE: runAnalyzeCmd,
}

func init() {
	RootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Task file (JSON or YAML)")
	analyzeCmd.Flags().StringVarP(&analyzeStrategy, "strategy", "s", "", "Scoring strategy (default smart_balance)")
	analyzeCmd.Flags().StringVar(&analyzeDate, "date", "", "Reference date for urgency (YYYY-MM-DD, default today)")
	analyzeCmd.Flags().StringVar(&analyzeWeights, "weights", "", "Custom weights as urgency,importance,effort,dependency (must sum to 100)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output in JSON format")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Show per-factor score breakdowns")
	_ = analyzeCmd.MarkFlagRequired("file")
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	drafts, err := LoadDrafts(analyzeFile)
	if err != nil {
		return err
	}

	weights, err := parseWeightsFlag(analyzeWeights)
	if err != nil {
		return err
	}

	svc := application.NewAnalysisService()
	analysis, err := svc.Analyze(cmd.Context(), application.AnalyzeRequest{
		Tasks:         drafts,
		Strategy:      analyzeStrategy,
		Weights:       weights,
		ReferenceDate: analyzeDate,
	})
	if err != nil {
		return MapError(err)
	}

	if analyzeJSON {
		return printJSON(cmd, analysis)
	}
	cmd.Println(renderAnalysis(analysis, analyzeVerbose))
	return nil
}

// parseWeightsFlag turns "30,35,15,20" into a weight table.
func parseWeightsFlag(raw string) (*scoring.Weights, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, NewCLIError(
			"invalid --weights value",
			"Provide four comma-separated integers: urgency,importance,effort,dependency",
			nil,
		)
	}

	values := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, NewCLIError(
				fmt.Sprintf("invalid weight %q", p),
				"Weights must be whole numbers, for example --weights 40,30,15,15",
				err,
			)
		}
		values[i] = n
	}

	return &scoring.Weights{
		Urgency:    values[0],
		Importance: values[1],
		Effort:     values[2],
		Dependency: values[3],
	}, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
