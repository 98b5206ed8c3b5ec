// Package task defines the task input model and its validation rules.
package task

// Draft is a task record exactly as submitted by a caller, before
// validation. Optional numeric fields are pointers so that an absent
// value can be told apart from an invalid one.
type Draft struct {
	ID             string   `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	DueDate        string   `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty" yaml:"estimated_hours,omitempty"`
	Importance     *int     `json:"importance,omitempty" yaml:"importance,omitempty"`
	Dependencies   []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Task is a sanitized task ready for scoring.
type Task struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	DueDate        DueDate  `json:"due_date"`
	EstimatedHours float64  `json:"estimated_hours"`
	Importance     int      `json:"importance"`
	Dependencies   []string `json:"dependencies"`
}

// Validated pairs a sanitized task with the soft warnings raised while
// sanitizing it.
type Validated struct {
	Task     Task
	Warnings []string
}
