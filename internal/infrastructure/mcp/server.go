package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/application"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/scoring"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/task"
)

// Server exposes the analyzer over the Model Context Protocol so
// agent clients can score task lists without the HTTP API.
type Server struct {
	mcpServer *mcp.Server
	svc       *application.AnalysisService
}

var Version = "dev"

// mcpErr returns a user-friendly error for MCP clients.
// Internal details are omitted — only the friendly message is returned.
func mcpErr(friendly string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %v", friendly, err)
	}
	return fmt.Errorf("%s", friendly)
}

func NewServer(svc *application.AnalysisService) *Server {
	info := mcp.ServerInfo{
		Name:    "task-analyzer",
		Version: Version,
	}

	s := &Server{
		mcpServer: mcp.NewServer(info,
			mcp.WithTitle("Task Analyzer MCP Server"),
			mcp.WithDescription("Scores and ranks task lists by urgency, importance, effort and dependencies."),
			mcp.WithInstructions("Use analyze_tasks to score a full list, suggest_tasks for the top picks, validate_tasks to check input before analysis, and list_strategies to discover scoring strategies."),
		),
		svc: svc,
	}

	s.registerTools()
	return s
}

type AnalyzeArgs struct {
	Tasks         []task.Draft     `json:"tasks" jsonschema:"description=The tasks to analyze"`
	Strategy      string           `json:"strategy,omitempty" jsonschema:"description=Scoring strategy (smart_balance, fastest_wins, high_impact, deadline_driven)"`
	Weights       *scoring.Weights `json:"weights,omitempty" jsonschema:"description=Custom factor weights, must sum to 100"`
	ReferenceDate string           `json:"reference_date,omitempty" jsonschema:"description=Date to score urgency against, YYYY-MM-DD, defaults to today"`
}

type SuggestArgs struct {
	AnalyzeArgs
	Count int `json:"count,omitempty" jsonschema:"description=How many suggestions to return, 1 to 10, defaults to 3"`
}

type ValidateArgs struct {
	Tasks []task.Draft `json:"tasks" jsonschema:"description=The tasks to validate"`
}

func (s *Server) registerTools() {
	s.mcpServer.Tool("analyze_tasks").
		Description("Score and rank a list of tasks, returning per-factor breakdowns and circular dependency warnings").
		Handler(s.handleAnalyze)

	s.mcpServer.Tool("suggest_tasks").
		Description("Return the top-ranked tasks with reasons and next-step insights").
		Handler(s.handleSuggest)

	s.mcpServer.Tool("validate_tasks").
		Description("Check a task list for errors and warnings without scoring it").
		Handler(s.handleValidate)

	s.mcpServer.Tool("list_strategies").
		Description("List the available scoring strategies and their factor weights").
		Handler(s.handleStrategies)
}

func (s *Server) handleAnalyze(ctx context.Context, args AnalyzeArgs) (string, error) {
	analysis, err := s.svc.Analyze(ctx, application.AnalyzeRequest{
		Tasks:         args.Tasks,
		Strategy:      args.Strategy,
		Weights:       args.Weights,
		ReferenceDate: args.ReferenceDate,
	})
	if err != nil {
		return "", mcpErr("Failed to analyze tasks", err)
	}
	return marshalResult(analysis)
}

func (s *Server) handleSuggest(ctx context.Context, args SuggestArgs) (string, error) {
	result, err := s.svc.Suggest(ctx, application.SuggestRequest{
		AnalyzeRequest: application.AnalyzeRequest{
			Tasks:         args.Tasks,
			Strategy:      args.Strategy,
			Weights:       args.Weights,
			ReferenceDate: args.ReferenceDate,
		},
		Count: args.Count,
	})
	if err != nil {
		return "", mcpErr("Failed to suggest tasks", err)
	}
	return marshalResult(result)
}

func (s *Server) handleValidate(ctx context.Context, args ValidateArgs) (string, error) {
	result, err := s.svc.Validate(ctx, args.Tasks)
	if err != nil {
		return "", mcpErr("Failed to validate tasks", err)
	}
	return marshalResult(result)
}

func (s *Server) handleStrategies(ctx context.Context, _ struct{}) (string, error) {
	return marshalResult(s.svc.Strategies())
}

func marshalResult(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", mcpErr("Failed to encode result", err)
	}
	return string(data), nil
}

// Start serves the MCP protocol on stdin/stdout until the client
// disconnects or the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}
