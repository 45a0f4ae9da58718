package override

import (
	"time"

	"date_dimension/internal/domain/calendar"
)

// Override is a stored one-off holiday. It applies to Date only; there is no
// recurrence.
type Override struct {
	ID        int64
	Date      calendar.Date
	Name      string
	CreatedAt time.Time
}

// ToMap converts stored overrides into the lookup map used by the calendar
// package. Later entries win when two share a date.
func ToMap(overrides []*Override) calendar.Overrides {
	m := make(calendar.Overrides, len(overrides))
	for _, o := range overrides {
		m[o.Date] = o.Name
	}
	return m
}
