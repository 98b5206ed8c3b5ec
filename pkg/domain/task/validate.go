package task

import (
	"fmt"
	"strings"
)

// Defaults applied when optional fields are absent or invalid.
const (
	DefaultEstimatedHours = 1.0
	DefaultImportance     = 5
	MinImportance         = 1
	MaxImportance         = 10

	// highEstimateThreshold triggers an advisory warning suggesting the
	// task be broken down.
	highEstimateThreshold = 100.0
)

// ValidateDraft sanitizes a single draft. Structural problems (blank id or
// title) are hard errors; everything else degrades to a default plus a
// warning on the task.
func ValidateDraft(d Draft) (Validated, error) {
	if strings.TrimSpace(d.ID) == "" {
		return Validated{}, ErrMissingID
	}
	if strings.TrimSpace(d.Title) == "" {
		return Validated{}, ErrMissingTitle
	}

	var warnings []string

	due, err := ParseDueDate(strings.TrimSpace(d.DueDate))
	if err != nil {
		due = DueDate{}
		warnings = append(warnings, fmt.Sprintf("invalid due date %q - treating as no due date", d.DueDate))
	}

	hours := DefaultEstimatedHours
	if d.EstimatedHours != nil {
		hours = *d.EstimatedHours
		if hours <= 0 {
			hours = DefaultEstimatedHours
			warnings = append(warnings, fmt.Sprintf("invalid estimated_hours (%v) - defaulted to %v", *d.EstimatedHours, DefaultEstimatedHours))
		} else if hours > highEstimateThreshold {
			warnings = append(warnings, fmt.Sprintf("very high estimated_hours (%v) - consider breaking down the task", hours))
		}
	}

	importance := DefaultImportance
	if d.Importance != nil {
		importance = *d.Importance
		if importance < MinImportance {
			importance = MinImportance
			warnings = append(warnings, fmt.Sprintf("importance %d below range - clamped to %d", *d.Importance, MinImportance))
		} else if importance > MaxImportance {
			importance = MaxImportance
			warnings = append(warnings, fmt.Sprintf("importance %d above range - clamped to %d", *d.Importance, MaxImportance))
		}
	}

	deps := d.Dependencies
	if deps == nil {
		deps = []string{}
	}

	return Validated{
		Task: Task{
			ID:             strings.TrimSpace(d.ID),
			Title:          strings.TrimSpace(d.Title),
			DueDate:        due,
			EstimatedHours: hours,
			Importance:     importance,
			Dependencies:   deps,
		},
		Warnings: warnings,
	}, nil
}

// ValidateAll sanitizes a full request. It fails on an empty request, on
// the first structurally broken task, and on duplicate identifiers.
func ValidateAll(drafts []Draft) ([]Validated, error) {
	if len(drafts) == 0 {
		return nil, ErrNoTasks
	}

	validated := make([]Validated, 0, len(drafts))
	seen := make(map[string]struct{}, len(drafts))
	for i, d := range drafts {
		v, err := ValidateDraft(d)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		if _, ok := seen[v.Task.ID]; ok {
			return nil, fmt.Errorf("task %d (%s): %w", i, v.Task.ID, ErrDuplicateID)
		}
		seen[v.Task.ID] = struct{}{}
		validated = append(validated, v)
	}
	return validated, nil
}
