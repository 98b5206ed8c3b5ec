// Package application wires the domain pieces into the two caller-facing
// operations: Analyze and Suggest, plus the auxiliary Validate and
// Strategies queries.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/recommend"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/scoring"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/task"
)

// AnalyzeRequest carries one task list to score.
type AnalyzeRequest struct {
	Tasks    []task.Draft `json:"tasks"`
	Strategy string       `json:"strategy,omitempty"`
	// Weights optionally overrides the strategy's weight table. Must sum
	// to exactly 100 when set.
	Weights *scoring.Weights `json:"weights,omitempty"`
	// ReferenceDate pins "today" for urgency scoring (YYYY-MM-DD).
	// Defaults to the current calendar date.
	ReferenceDate string `json:"reference_date,omitempty"`
}

// SuggestRequest asks for the top Count recommendations.
type SuggestRequest struct {
	AnalyzeRequest
	Count int `json:"count,omitempty"`
}

// SuggestionResult is the ranked recommendation list.
type SuggestionResult struct {
	Suggestions        []recommend.Suggestion `json:"suggestions"`
	Strategy           scoring.Strategy       `json:"strategy"`
	AnalysisDate       task.DueDate           `json:"analysis_date"`
	TotalTasksAnalyzed int                    `json:"total_tasks_analyzed"`
}

// TaskValidation reports the outcome of validating one draft.
type TaskValidation struct {
	Index    int        `json:"index"`
	Task     *task.Task `json:"task,omitempty"`
	Error    string     `json:"error,omitempty"`
	Warnings []string   `json:"warnings"`
	IsValid  bool       `json:"is_valid"`
}

// ValidationResult reports validation of a whole request without scoring.
type ValidationResult struct {
	AllValid          bool             `json:"all_valid"`
	TotalTasks        int              `json:"total_tasks"`
	TasksWithWarnings int              `json:"tasks_with_warnings"`
	Results           []TaskValidation `json:"results"`
}

// StrategyInfo describes one available strategy.
type StrategyInfo struct {
	Name        scoring.Strategy `json:"name"`
	Description string           `json:"description"`
	Weights     scoring.Weights  `json:"weights"`
}

// AnalysisService executes scoring requests. It is stateless between
// calls; the clock is injectable for tests.
type AnalysisService struct {
	now func() time.Time
}

// NewAnalysisService creates a service using the system clock.
func NewAnalysisService() *AnalysisService {
	return &AnalysisService{now: time.Now}
}

// NewAnalysisServiceWithClock creates a service with a fixed clock.
func NewAnalysisServiceWithClock(now func() time.Time) *AnalysisService {
	return &AnalysisService{now: now}
}

// Analyze validates, scores, and ranks a task list.
func (s *AnalysisService) Analyze(ctx context.Context, req AnalyzeRequest) (*scoring.Analysis, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	validated, err := task.ValidateAll(req.Tasks)
	if err != nil {
		return nil, err
	}

	strategy, err := s.resolveStrategy(req.Strategy)
	if err != nil {
		return nil, err
	}

	today, err := s.resolveReferenceDate(req.ReferenceDate)
	if err != nil {
		return nil, err
	}

	scorer := scoring.NewScorer(strategy, today)
	if req.Weights != nil {
		if err := req.Weights.Validate(); err != nil {
			return nil, err
		}
		scorer.WithWeights(*req.Weights)
	}

	return scorer.Analyze(validated), nil
}

// Suggest re-runs Analyze and returns the top-ranked tasks with reasons.
func (s *AnalysisService) Suggest(ctx context.Context, req SuggestRequest) (*SuggestionResult, error) {
	analysis, err := s.Analyze(ctx, req.AnalyzeRequest)
	if err != nil {
		return nil, err
	}

	return &SuggestionResult{
		Suggestions:        recommend.TopN(analysis, req.Count),
		Strategy:           analysis.Strategy,
		AnalysisDate:       analysis.AnalysisDate,
		TotalTasksAnalyzed: analysis.TotalCount,
	}, nil
}

// Validate checks task data without scoring it. Unlike Analyze, a broken
// entry does not reject the request: each draft is reported individually.
func (s *AnalysisService) Validate(ctx context.Context, drafts []task.Draft) (*ValidationResult, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, task.ErrNoTasks
	}

	result := &ValidationResult{
		TotalTasks: len(drafts),
		Results:    make([]TaskValidation, 0, len(drafts)),
		AllValid:   true,
	}

	seen := make(map[string]struct{}, len(drafts))
	for i, d := range drafts {
		entry := TaskValidation{Index: i, Warnings: []string{}}

		v, err := task.ValidateDraft(d)
		if err == nil {
			if _, dup := seen[v.Task.ID]; dup {
				err = fmt.Errorf("%s: %w", v.Task.ID, task.ErrDuplicateID)
			} else {
				seen[v.Task.ID] = struct{}{}
			}
		}

		switch {
		case err != nil:
			entry.Error = err.Error()
			entry.IsValid = false
		default:
			t := v.Task
			entry.Task = &t
			entry.Warnings = append(entry.Warnings, v.Warnings...)
			entry.IsValid = true
		}

		if !entry.IsValid {
			result.AllValid = false
		}
		if len(entry.Warnings) > 0 {
			result.TasksWithWarnings++
		}
		result.Results = append(result.Results, entry)
	}

	return result, nil
}

// Strategies lists the available strategies with their weight tables.
func (s *AnalysisService) Strategies() []StrategyInfo {
	all := scoring.AllStrategies()
	infos := make([]StrategyInfo, 0, len(all))
	for _, st := range all {
		infos = append(infos, StrategyInfo{
			Name:        st,
			Description: st.Description(),
			Weights:     st.Weights(),
		})
	}
	return infos
}

func (s *AnalysisService) resolveStrategy(name string) (scoring.Strategy, error) {
	if name == "" {
		return scoring.DefaultStrategy(), nil
	}
	return scoring.ParseStrategy(name)
}

func (s *AnalysisService) resolveReferenceDate(raw string) (task.DueDate, error) {
	if raw == "" {
		return task.DateOf(s.now()), nil
	}
	date, err := task.ParseDueDate(raw)
	if err != nil {
		return task.DueDate{}, fmt.Errorf("%w: %s", ErrInvalidReferenceDate, raw)
	}
	return date, nil
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
