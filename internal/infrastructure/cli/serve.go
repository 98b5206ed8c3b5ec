package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KnownUser19/Smart-Task-Analyzer/internal/infrastructure/config"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/application"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/infrastructure/httpapi"
)

var (
	serveAddr   string
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP server that exposes task analysis over a JSON API.

Endpoints:
  POST /api/tasks/analyze
  POST /api/tasks/suggest
  POST /api/tasks/validate
  GET  /api/strategies
  GET  /api
  GET  /health`,
	Example: `  # Start on the default address
  task-analyzer serve

  # Start on a custom port
  task-analyzer serve --addr :9000

  # Start with a config file
  task-analyzer serve --config analyzer.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(serveConfig)
		if err != nil {
			return NewCLIError("invalid config file", "Check the YAML syntax and field values", err)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr = serveAddr
		}

		svc := application.NewAnalysisService()
		server := httpapi.NewServer(cfg.Server.Addr, svc, Version).
			WithRequestTimeout(cfg.RequestTimeout())

		// Handle graceful shutdown
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			<-stop
			fmt.Println("\nShutting down server...")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		}()

		fmt.Printf("Starting task analyzer API on %s\n", cfg.Server.Addr)
		fmt.Println("Press Ctrl+C to stop")

		if err := server.Start(); err != nil && err.Error() != "http: Server closed" {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "analyzer.yaml", "Path to config file (optional)")
}
