package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/application"
)

var strategiesJSON bool

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the available scoring strategies",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := application.NewAnalysisService()
		infos := svc.Strategies()

		if strategiesJSON {
			return printJSON(cmd, infos)
		}

		var b strings.Builder
		b.WriteString(titleStyle.Render("Scoring strategies"))
		b.WriteString("\n\n")
		for _, info := range infos {
			fmt.Fprintf(&b, "%s\n", info.Name)
			fmt.Fprintf(&b, "  %s\n", info.Description)
			fmt.Fprintf(&b, "  %s\n\n", dimStyle.Render(fmt.Sprintf(
				"urgency %d, importance %d, effort %d, dependency %d",
				info.Weights.Urgency, info.Weights.Importance, info.Weights.Effort, info.Weights.Dependency)))
		}
		cmd.Println(b.String())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(strategiesCmd)
	strategiesCmd.Flags().BoolVar(&strategiesJSON, "json", false, "Output in JSON format")
}
