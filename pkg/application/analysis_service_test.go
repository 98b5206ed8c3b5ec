package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/scoring"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/task"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	}
}

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func drafts() []task.Draft {
	return []task.Draft{
		{ID: "t1", Title: "fix login bug", DueDate: "2026-03-10", EstimatedHours: ptrF(2), Importance: ptrI(5)},
		{ID: "t2", Title: "write report", DueDate: "2026-03-20", EstimatedHours: ptrF(4), Importance: ptrI(7), Dependencies: []string{"t1"}},
	}
}

func TestAnalyzeDefaults(t *testing.T) {
	svc := NewAnalysisServiceWithClock(fixedClock())

	got, err := svc.Analyze(context.Background(), AnalyzeRequest{Tasks: drafts()})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.Strategy != scoring.StrategySmartBalance {
		t.Errorf("Strategy = %v, want smart_balance default", got.Strategy)
	}
	if got.AnalysisDate.String() != "2026-03-10" {
		t.Errorf("AnalysisDate = %s, want clock date", got.AnalysisDate)
	}
	if got.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", got.TotalCount)
	}
}

func TestAnalyzeErrorTaxonomy(t *testing.T) {
	svc := NewAnalysisServiceWithClock(fixedClock())

	tests := []struct {
		name    string
		req     AnalyzeRequest
		wantErr error
	}{
		{"no tasks", AnalyzeRequest{}, task.ErrNoTasks},
		{"missing title", AnalyzeRequest{Tasks: []task.Draft{{ID: "t1"}}}, task.ErrMissingTitle},
		{
			"duplicate ids",
			AnalyzeRequest{Tasks: []task.Draft{{ID: "t1", Title: "a"}, {ID: "t1", Title: "b"}}},
			task.ErrDuplicateID,
		},
		{"unknown strategy", AnalyzeRequest{Tasks: drafts(), Strategy: "yolo"}, scoring.ErrInvalidStrategy},
		{"bad reference date", AnalyzeRequest{Tasks: drafts(), ReferenceDate: "tomorrow"}, ErrInvalidReferenceDate},
		{
			"weights not summing to 100",
			AnalyzeRequest{Tasks: drafts(), Weights: &scoring.Weights{Urgency: 50, Importance: 30, Effort: 10, Dependency: 5}},
			scoring.ErrInvalidWeights,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Analyze(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Analyze() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAnalyzeReferenceDatePinsUrgency(t *testing.T) {
	svc := NewAnalysisServiceWithClock(fixedClock())

	got, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Tasks:         drafts(),
		ReferenceDate: "2026-03-12",
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.AnalysisDate.String() != "2026-03-12" {
		t.Errorf("AnalysisDate = %s, want the pinned date", got.AnalysisDate)
	}

	// t1 is due 2026-03-10, so against the pinned date it is overdue
	// by two days: urgency 110.
	for _, st := range got.Tasks {
		if st.ID == "t1" && st.Breakdown.Urgency.Score != 110 {
			t.Errorf("t1 urgency = %v, want 110", st.Breakdown.Urgency.Score)
		}
	}
}

func TestAnalyzeCancelledContext(t *testing.T) {
	svc := NewAnalysisServiceWithClock(fixedClock())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Analyze(ctx, AnalyzeRequest{Tasks: drafts()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Analyze() error = %v, want context.Canceled", err)
	}
}

func TestSuggest(t *testing.T) {
	svc := NewAnalysisServiceWithClock(fixedClock())

	got, err := svc.Suggest(context.Background(), SuggestRequest{
		AnalyzeRequest: AnalyzeRequest{Tasks: drafts()},
		Count:          1,
	})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if len(got.Suggestions) != 1 {
		t.Fatalf("len(Suggestions) = %d, want 1", len(got.Suggestions))
	}
	if got.TotalTasksAnalyzed != 2 {
		t.Errorf("TotalTasksAnalyzed = %d, want 2", got.TotalTasksAnalyzed)
	}
	if got.Suggestions[0].Rank != 1 {
		t.Errorf("Rank = %d, want 1", got.Suggestions[0].Rank)
	}
}

func TestValidateReportsAllEntries(t *testing.T) {
	svc := NewAnalysisServiceWithClock(fixedClock())

	got, err := svc.Validate(context.Background(), []task.Draft{
		{ID: "t1", Title: "ok"},
		{Title: "no id"},
		{ID: "t3", Title: "warned", DueDate: "not-a-date"},
		{ID: "t1", Title: "dup"},
	})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if got.AllValid {
		t.Errorf("AllValid = true, want false")
	}
	if got.TotalTasks != 4 {
		t.Errorf("TotalTasks = %d, want 4", got.TotalTasks)
	}
	if len(got.Results) != 4 {
		t.Fatalf("len(Results) = %d, want 4 (validation must not stop early)", len(got.Results))
	}

	if !got.Results[0].IsValid {
		t.Errorf("entry 0 should be valid")
	}
	if got.Results[1].IsValid || got.Results[1].Error == "" {
		t.Errorf("entry 1 should carry an error, got %+v", got.Results[1])
	}
	if !got.Results[2].IsValid || len(got.Results[2].Warnings) == 0 {
		t.Errorf("entry 2 should be valid with warnings, got %+v", got.Results[2])
	}
	if got.Results[3].IsValid {
		t.Errorf("entry 3 duplicates t1 and should be invalid")
	}
	if got.TasksWithWarnings != 1 {
		t.Errorf("TasksWithWarnings = %d, want 1", got.TasksWithWarnings)
	}
}

func TestValidateEmpty(t *testing.T) {
	svc := NewAnalysisServiceWithClock(fixedClock())
	_, err := svc.Validate(context.Background(), nil)
	if !errors.Is(err, task.ErrNoTasks) {
		t.Errorf("Validate(nil) error = %v, want ErrNoTasks", err)
	}
}

func TestStrategies(t *testing.T) {
	svc := NewAnalysisService()
	got := svc.Strategies()
	if len(got) != 4 {
		t.Fatalf("len(Strategies) = %d, want 4", len(got))
	}
	for _, info := range got {
		if info.Description == "" {
			t.Errorf("strategy %s missing description", info.Name)
		}
		if info.Weights.Total() != 100 {
			t.Errorf("strategy %s weights sum to %d", info.Name, info.Weights.Total())
		}
	}
}
