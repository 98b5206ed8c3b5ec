package task

import (
	"errors"
	"strings"
	"testing"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func TestValidateDraftStructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr error
	}{
		{"missing id", Draft{Title: "write docs"}, ErrMissingID},
		{"blank id", Draft{ID: "   ", Title: "write docs"}, ErrMissingID},
		{"missing title", Draft{ID: "t1"}, ErrMissingTitle},
		{"blank title", Draft{ID: "t1", Title: "\t"}, ErrMissingTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateDraft(tt.draft)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDraft() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDraftDefaults(t *testing.T) {
	v, err := ValidateDraft(Draft{ID: "t1", Title: "write docs"})
	if err != nil {
		t.Fatalf("ValidateDraft() error = %v", err)
	}
	if v.Task.EstimatedHours != DefaultEstimatedHours {
		t.Errorf("EstimatedHours = %v, want %v", v.Task.EstimatedHours, DefaultEstimatedHours)
	}
	if v.Task.Importance != DefaultImportance {
		t.Errorf("Importance = %d, want %d", v.Task.Importance, DefaultImportance)
	}
	if v.Task.Dependencies == nil || len(v.Task.Dependencies) != 0 {
		t.Errorf("Dependencies = %v, want empty non-nil slice", v.Task.Dependencies)
	}
	if !v.Task.DueDate.IsZero() {
		t.Errorf("DueDate should be unset")
	}
	if len(v.Warnings) != 0 {
		t.Errorf("absent optional fields should not warn, got %v", v.Warnings)
	}
}

func TestValidateDraftSoftFailures(t *testing.T) {
	tests := []struct {
		name        string
		draft       Draft
		wantWarning string
		check       func(t *testing.T, v Validated)
	}{
		{
			name:        "bad date degrades to none",
			draft:       Draft{ID: "t1", Title: "a", DueDate: "soon"},
			wantWarning: "invalid due date",
			check: func(t *testing.T, v Validated) {
				if !v.Task.DueDate.IsZero() {
					t.Errorf("bad date should clear the due date")
				}
			},
		},
		{
			name:        "zero hours defaults",
			draft:       Draft{ID: "t1", Title: "a", EstimatedHours: ptrF(0)},
			wantWarning: "invalid estimated_hours",
			check: func(t *testing.T, v Validated) {
				if v.Task.EstimatedHours != DefaultEstimatedHours {
					t.Errorf("EstimatedHours = %v, want %v", v.Task.EstimatedHours, DefaultEstimatedHours)
				}
			},
		},
		{
			name:        "negative hours defaults",
			draft:       Draft{ID: "t1", Title: "a", EstimatedHours: ptrF(-3)},
			wantWarning: "invalid estimated_hours",
			check:       func(t *testing.T, v Validated) {},
		},
		{
			name:        "very high hours keeps value",
			draft:       Draft{ID: "t1", Title: "a", EstimatedHours: ptrF(120)},
			wantWarning: "very high estimated_hours",
			check: func(t *testing.T, v Validated) {
				if v.Task.EstimatedHours != 120 {
					t.Errorf("advisory warning must not change the value, got %v", v.Task.EstimatedHours)
				}
			},
		},
		{
			name:        "importance below range clamps",
			draft:       Draft{ID: "t1", Title: "a", Importance: ptrI(0)},
			wantWarning: "below range",
			check: func(t *testing.T, v Validated) {
				if v.Task.Importance != MinImportance {
					t.Errorf("Importance = %d, want %d", v.Task.Importance, MinImportance)
				}
			},
		},
		{
			name:        "importance above range clamps",
			draft:       Draft{ID: "t1", Title: "a", Importance: ptrI(15)},
			wantWarning: "above range",
			check: func(t *testing.T, v Validated) {
				if v.Task.Importance != MaxImportance {
					t.Errorf("Importance = %d, want %d", v.Task.Importance, MaxImportance)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ValidateDraft(tt.draft)
			if err != nil {
				t.Fatalf("ValidateDraft() error = %v", err)
			}
			found := false
			for _, w := range v.Warnings {
				if strings.Contains(w, tt.wantWarning) {
					found = true
				}
			}
			if !found {
				t.Errorf("warnings %v missing %q", v.Warnings, tt.wantWarning)
			}
			tt.check(t, v)
		})
	}
}

func TestValidateAll(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		_, err := ValidateAll(nil)
		if !errors.Is(err, ErrNoTasks) {
			t.Errorf("ValidateAll(nil) error = %v, want ErrNoTasks", err)
		}
	})

	t.Run("first broken task aborts with index", func(t *testing.T) {
		_, err := ValidateAll([]Draft{
			{ID: "t1", Title: "ok"},
			{ID: "t2"},
		})
		if !errors.Is(err, ErrMissingTitle) {
			t.Fatalf("error = %v, want ErrMissingTitle", err)
		}
		if !strings.Contains(err.Error(), "task 1") {
			t.Errorf("error should name the offending index, got %v", err)
		}
	})

	t.Run("duplicate ids rejected", func(t *testing.T) {
		_, err := ValidateAll([]Draft{
			{ID: "t1", Title: "a"},
			{ID: "t1", Title: "b"},
		})
		if !errors.Is(err, ErrDuplicateID) {
			t.Errorf("error = %v, want ErrDuplicateID", err)
		}
	})

	t.Run("valid list passes through in order", func(t *testing.T) {
		got, err := ValidateAll([]Draft{
			{ID: "t1", Title: "a"},
			{ID: "t2", Title: "b", Dependencies: []string{"t1"}},
		})
		if err != nil {
			t.Fatalf("ValidateAll() error = %v", err)
		}
		if len(got) != 2 || got[0].Task.ID != "t1" || got[1].Task.ID != "t2" {
			t.Errorf("unexpected result order: %+v", got)
		}
	})
}
