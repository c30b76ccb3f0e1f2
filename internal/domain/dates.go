package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateMatchMode controls how a requested date is compared with stored dates
type DateMatchMode string

const (
	// DateMatchInstant compares exact instants after UTC normalization
	DateMatchInstant DateMatchMode = "instant"
	// DateMatchCalendarDay compares the calendar day in the matcher's location
	DateMatchCalendarDay DateMatchMode = "calendar_day"
)

// ErrInvalidDate is returned by ParseDate
var ErrInvalidDate = errors.New("invalid date")

// IsValid reports whether the mode is known
func (m DateMatchMode) IsValid() bool {
	return m == DateMatchInstant || m == DateMatchCalendarDay
}

// DateMatcher normalizes and compares schedule dates
type DateMatcher struct {
	Mode     DateMatchMode
	Location *time.Location // used by DateMatchCalendarDay, UTC when nil
}

// NewDateMatcher builds a matcher from config values
func NewDateMatcher(mode DateMatchMode, timezone string) (DateMatcher, error) {
	if mode == "" {
		mode = DateMatchInstant
	}
	if !mode.IsValid() {
		return DateMatcher{}, fmt.Errorf("unknown date match mode %q", mode)
	}
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return DateMatcher{}, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return DateMatcher{Mode: mode, Location: loc}, nil
}

// Normalize maps t onto the value that is stored and compared.
// Instants are truncated to milliseconds, the precision of BSON datetimes.
func (m DateMatcher) Normalize(t time.Time) time.Time {
	t = t.UTC().Truncate(time.Millisecond)
	if m.Mode != DateMatchCalendarDay {
		return t
	}
	local := t.In(m.location())
	y, mo, d := local.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, m.location()).UTC()
}

// Equal compares two dates after normalization
func (m DateMatcher) Equal(a, b time.Time) bool {
	return m.Normalize(a).Equal(m.Normalize(b))
}

func (m DateMatcher) location() *time.Location {
	if m.Location == nil {
		return time.UTC
	}
	return m.Location
}

// ParseDate parses a date-like input. Bare dates and zone-less date-times are read as UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	for _, layout := range DateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}
