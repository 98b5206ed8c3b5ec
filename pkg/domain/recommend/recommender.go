// Package recommend selects the top-ranked tasks from an analysis and
// explains why each one was chosen.
package recommend

import (
	"fmt"
	"strings"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/scoring"
)

// Suggestion count bounds.
const (
	DefaultCount = 3
	MaxCount     = 10
)

// secondFactorThreshold is the minimum weighted score a runner-up factor
// needs before it is worth mentioning in the reason.
const secondFactorThreshold = 10.0

// Suggestion is one ranked recommendation.
type Suggestion struct {
	Rank                 int                `json:"rank"`
	Task                 scoring.ScoredTask `json:"task"`
	RecommendationReason string             `json:"recommendation_reason"`
	ActionableInsight    string             `json:"actionable_insight"`
}

// ClampCount normalizes a requested suggestion count: non-positive falls
// back to the default, and the result never exceeds MaxCount.
func ClampCount(count int) int {
	if count <= 0 {
		return DefaultCount
	}
	if count > MaxCount {
		return MaxCount
	}
	return count
}

// TopN returns the first count tasks of the analysis (already sorted by
// priority descending, input order on ties) with a synthesized reason
// and next-step insight per task.
func TopN(a *scoring.Analysis, count int) []Suggestion {
	count = ClampCount(count)
	if count > len(a.Tasks) {
		count = len(a.Tasks)
	}

	suggestions := make([]Suggestion, 0, count)
	for i, t := range a.Tasks[:count] {
		suggestions = append(suggestions, Suggestion{
			Rank:                 i + 1,
			Task:                 t,
			RecommendationReason: reason(t.Breakdown),
			ActionableInsight:    insight(t),
		})
	}
	return suggestions
}

// reason names the dominant weighted factor, plus the runner-up when it
// contributes meaningfully.
func reason(b scoring.Breakdown) string {
	factors := []scoring.FactorScore{b.Urgency, b.Importance, b.Effort, b.Dependency}

	top, second := factors[0], factors[0]
	for _, f := range factors[1:] {
		if f.WeightedScore > top.WeightedScore {
			second = top
			top = f
		} else if f.WeightedScore > second.WeightedScore || second == top {
			second = f
		}
	}

	r := "Recommended because: " + strings.ToLower(top.Explanation)
	if second != top && second.WeightedScore > secondFactorThreshold {
		r += ", and " + strings.ToLower(second.Explanation)
	}
	return r
}

// insight produces a generic next-step string keyed to the task's level
// and its dominant trait.
func insight(t scoring.ScoredTask) string {
	b := t.Breakdown

	switch t.PriorityLevel {
	case scoring.PriorityHigh:
		switch {
		case strings.Contains(b.Urgency.Explanation, "overdue"):
			return "This task is overdue. Address it immediately to avoid further delays."
		case strings.Contains(b.Urgency.Explanation, "due today"):
			return "Due today. Block time now to complete this task."
		case b.Dependency.Score > 80:
			return "This task is holding up other work. Completing it will unblock the rest."
		default:
			return "High priority. Consider starting your day with this."
		}
	case scoring.PriorityMedium:
		if t.EstimatedHours <= 2 {
			return fmt.Sprintf("Medium priority but quick to complete (%gh). Good for a gap between meetings.", t.EstimatedHours)
		}
		return "Schedule dedicated time for this task this week."
	default:
		return "Lower priority. Good for when you have spare capacity."
	}
}
