package scoring

import (
	"fmt"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/task"
)

// Factor identifies one of the four scoring components.
type Factor string

const (
	FactorUrgency    Factor = "urgency"
	FactorImportance Factor = "importance"
	FactorEffort     Factor = "effort"
	FactorDependency Factor = "dependency"
)

// FactorScore is one factor's contribution to a task's priority.
type FactorScore struct {
	Score         float64 `json:"score"`
	Weight        int     `json:"weight"`
	WeightedScore float64 `json:"weighted_score"`
	Explanation   string  `json:"explanation"`
}

// Breakdown holds all four factor scores for a task.
type Breakdown struct {
	Urgency    FactorScore `json:"urgency"`
	Importance FactorScore `json:"importance"`
	Effort     FactorScore `json:"effort"`
	Dependency FactorScore `json:"dependency"`
}

// Urgency score bounds.
const (
	noDueDateScore = 20.0
	overdueCeiling = 150.0
	overduePenalty = 5.0
	farFutureScore = 20.0
)

// ScoreUrgency maps a due date to a 0-150 urgency score relative to the
// reference date. Fewer days remaining always scores higher; overdue
// tasks score above anything still due.
//
// Bands: overdue min(150, 100+5d); today 100; tomorrow 90; 2-3 days
// 85..80; 4-7 days 77.5..70; 8-14 days ..50; 15-30 days ..30;
// beyond 30 days flat 20. Interpolation inside each band is linear.
func ScoreUrgency(due task.DueDate, today task.DueDate) (float64, string) {
	if due.IsZero() {
		return noDueDateScore, "no due date set - baseline urgency"
	}

	days := due.DaysUntil(today)
	switch {
	case days < 0:
		overdue := -days
		score := 100 + overduePenalty*float64(overdue)
		if score > overdueCeiling {
			score = overdueCeiling
		}
		return score, fmt.Sprintf("overdue by %d day(s) - critical priority", overdue)
	case days == 0:
		return 100, "due today - maximum urgency"
	case days == 1:
		return 90, "due tomorrow - very high urgency"
	case days <= 3:
		return 90 - 5*float64(days-1), fmt.Sprintf("due in %d days - high urgency", days)
	case days <= 7:
		return 80 - 2.5*float64(days-3), fmt.Sprintf("due this week (%d days) - moderate-high urgency", days)
	case days <= 14:
		return 70 - float64(days-7)*20.0/7.0, fmt.Sprintf("due in %d days - moderate urgency", days)
	case days <= 30:
		return 50 - float64(days-14)*20.0/16.0, fmt.Sprintf("due in %d days - lower urgency", days)
	default:
		return farFutureScore, fmt.Sprintf("due in %d days - low urgency", days)
	}
}

// ScoreImportance scales the 1-10 importance rating linearly to 0-100.
func ScoreImportance(importance int) (float64, string) {
	score := float64(importance) * 10

	var label string
	switch {
	case importance >= 9:
		label = "critical"
	case importance >= 7:
		label = "high"
	case importance >= 5:
		label = "medium"
	case importance >= 3:
		label = "lower"
	default:
		label = "low"
	}
	return score, fmt.Sprintf("%s importance (%d/10)", label, importance)
}

// effortFloor is the minimum effort score for very large tasks.
const effortFloor = 10.0

// ScoreEffort maps estimated hours to a score that rewards quick wins:
// less effort scores higher. Beyond 8 hours the score decays linearly to
// a floor of 10 (reached at 16h).
func ScoreEffort(hours float64) (float64, string) {
	switch {
	case hours < 0.5:
		return 100, fmt.Sprintf("quick win (%gh) - very low effort", hours)
	case hours < 1:
		return 95, fmt.Sprintf("quick task (%gh) - low effort", hours)
	case hours <= 2:
		return 90 - 20*(hours-1), fmt.Sprintf("short task (%gh) - manageable effort", hours)
	case hours <= 4:
		return 70 - 10*(hours-2), fmt.Sprintf("medium task (%gh) - moderate effort", hours)
	case hours <= 8:
		return 50 - 5*(hours-4), fmt.Sprintf("long task (%gh) - significant effort", hours)
	default:
		score := 30 - 2.5*(hours-8)
		if score < effortFloor {
			score = effortFloor
		}
		return score, fmt.Sprintf("major task (%gh) - consider breaking down", hours)
	}
}

// ScoreDependency maps the number of tasks directly blocked by this one
// to a score. Tasks holding up more work rank higher.
func ScoreDependency(blocks int) (float64, string) {
	switch {
	case blocks == 0:
		return 40, "doesn't block other tasks"
	case blocks == 1:
		return 70, "blocks 1 other task"
	case blocks == 2:
		return 85, "blocks 2 tasks - key dependency"
	case blocks == 3:
		return 90, "blocks 3 tasks - key dependency"
	default:
		return 100, fmt.Sprintf("blocks %d tasks - critical path", blocks)
	}
}
