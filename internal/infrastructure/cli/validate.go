package cli

import (
	"github.com/spf13/cobra"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/application"
)

var (
	validateFile string
	validateJSON bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a task file for errors without scoring it",
	Long: `Validate every task in a file and report errors and warnings.
Unlike analyze, validation does not stop at the first bad task.

Examples:
  task-analyzer validate -f tasks.json
  task-analyzer validate -f tasks.yaml --json`,
	RunE: runValidateCmd,
}

func init() {
	RootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Task file (JSON or YAML)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output in JSON format")
	_ = validateCmd.MarkFlagRequired("file")
}

func runValidateCmd(cmd *cobra.Command, args []string) error {
	drafts, err := LoadDrafts(validateFile)
	if err != nil {
		return err
	}

	svc := application.NewAnalysisService()
	result, err := svc.Validate(cmd.Context(), drafts)
	if err != nil {
		return MapError(err)
	}

	if validateJSON {
		return printJSON(cmd, result)
	}
	cmd.Println(renderValidation(result))

	if !result.AllValid {
		return NewCLIError("some tasks are invalid", "Fix the reported errors and re-run validate", nil)
	}
	return nil
}
