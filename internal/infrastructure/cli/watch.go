package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KnownUser19/Smart-Task-Analyzer/internal/infrastructure/watch"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/application"
)

var (
	watchFile     string
	watchStrategy string
	watchDebounce time.Duration
	watchVerbose  bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-analyze a task file whenever it changes",
	Long: `Watch a task file and re-run the analysis on every save.
Useful while grooming a backlog: edit the file in one terminal and keep
this command running in another.

Examples:
  task-analyzer watch -f tasks.json
  task-analyzer watch -f tasks.yaml -s high_impact --debounce 1s`,
	RunE: runWatchCmd,
}

func init() {
	RootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchFile, "file", "f", "", "Task file (JSON or YAML)")
	watchCmd.Flags().StringVarP(&watchStrategy, "strategy", "s", "", "Scoring strategy (default smart_balance)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "Delay before re-analyzing after a change (default 400ms)")
	watchCmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false, "Show per-factor score breakdowns")
	_ = watchCmd.MarkFlagRequired("file")
}

func runWatchCmd(cmd *cobra.Command, args []string) error {
	svc := application.NewAnalysisService()

	analyzeOnce := func(path string) {
		drafts, err := LoadDrafts(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "reload failed: %v\n", err)
			return
		}
		analysis, err := svc.Analyze(cmd.Context(), application.AnalyzeRequest{
			Tasks:    drafts,
			Strategy: watchStrategy,
		})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "analysis failed: %v\n", MapError(err))
			return
		}
		cmd.Println(renderAnalysis(analysis, watchVerbose))
	}

	// First run before any change
	analyzeOnce(watchFile)

	watcher, err := watch.NewFileWatcher(watchFile, watchDebounce, analyzeOnce)
	if err != nil {
		return NewCLIError("cannot watch file", "Check that the file and its directory exist", err)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("Watching %s, press Ctrl+C to stop\n", watchFile)
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch error: %w", err)
	}
	return nil
}
