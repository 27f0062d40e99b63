package models

import "time"

const day = 24 * time.Hour

// BookingPeriod is a half-open [Start, End) stay range. Immutable once built.
type BookingPeriod struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// NewBookingPeriod builds a period, enforcing strict chronological ordering.
func NewBookingPeriod(start, end time.Time) (BookingPeriod, error) {
	if !end.After(start) {
		return BookingPeriod{}, ErrInvalidRange
	}
	return BookingPeriod{Start: start, End: end}, nil
}

// Duration is the stay length in whole days. Partial days are discarded,
// matching day-granularity billing.
func (p BookingPeriod) Duration() int {
	return int(p.End.Sub(p.Start) / day)
}

// Overlaps reports whether two half-open ranges intersect. Periods that only
// touch at an endpoint do not overlap.
func (p BookingPeriod) Overlaps(other BookingPeriod) bool {
	return p.Start.Before(other.End) && other.Start.Before(p.End)
}
