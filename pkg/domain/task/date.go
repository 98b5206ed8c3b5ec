package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the calendar-date wire format for due dates.
const dateLayout = "2006-01-02"

// DueDate is an optional calendar date. The zero value means "no due
// date", which is distinct from an invalid one (ParseDueDate rejects
// those).
type DueDate struct {
	t   time.Time
	set bool
}

// ParseDueDate parses a YYYY-MM-DD string into a DueDate.
// An empty string yields the zero DueDate.
func ParseDueDate(s string) (DueDate, error) {
	if s == "" {
		return DueDate{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return DueDate{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return DueDate{t: t, set: true}, nil
}

// MustParseDueDate parses a due date or panics. Use only in tests.
func MustParseDueDate(s string) DueDate {
	d, err := ParseDueDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf truncates a point in time to its calendar date.
func DateOf(t time.Time) DueDate {
	y, m, d := t.Date()
	return DueDate{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), set: true}
}

// IsZero returns true if no due date is set.
func (d DueDate) IsZero() bool {
	return !d.set
}

// DaysUntil returns the number of whole calendar days from ref to d.
// Negative values mean d is before ref.
func (d DueDate) DaysUntil(ref DueDate) int {
	return int(d.t.Sub(ref.t).Hours() / 24)
}

// AddDays returns the date shifted by n calendar days.
func (d DueDate) AddDays(n int) DueDate {
	return DueDate{t: d.t.AddDate(0, 0, n), set: true}
}

// String returns the YYYY-MM-DD representation, or "" if unset.
func (d DueDate) String() string {
	if !d.set {
		return ""
	}
	return d.t.Format(dateLayout)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string, or null if unset.
func (d DueDate) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string or null.
func (d *DueDate) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*d = DueDate{}
		return nil
	}
	parsed, err := ParseDueDate(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
