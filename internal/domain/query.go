package domain

import "time"

// Query represents the requested time window for an availability check.
// Start == End означает мгновенную проверку "прямо сейчас".
type Query struct {
	Start time.Time
	End   time.Time
}

// IsInstant returns true if the query denotes a single instant rather than a range
func (q Query) IsInstant() bool {
	return q.Start.Equal(q.End)
}
