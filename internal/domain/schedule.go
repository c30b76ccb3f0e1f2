package domain

import "time"

// Schedule is a venue's booking calendar
type Schedule struct {
	ID    string
	Dates []ScheduleDate
}

// ScheduleDate holds the booked slots of one date.
// At most one entry per date is expected; lookups return the first match.
type ScheduleDate struct {
	Date  time.Time
	Slots []BookedSlot
}

// FindDate returns the first date entry matching date under the given matcher
func (s *Schedule) FindDate(matcher DateMatcher, date time.Time) (*ScheduleDate, bool) {
	for i := range s.Dates {
		if matcher.Equal(s.Dates[i].Date, date) {
			return &s.Dates[i], true
		}
	}
	return nil, false
}

// IsBooked reports whether the cell of slot is already taken on the date entry
func (d *ScheduleDate) IsBooked(slot BookedSlot) bool {
	for _, existing := range d.Slots {
		if existing.SameCell(slot) {
			return true
		}
	}
	return false
}
