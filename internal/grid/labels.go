package grid

import "fmt"

// LabelFunc turns an hour index (0-23) into a row label
type LabelFunc func(hour int) string

// LegacyLabel keeps the historical labels: hour 0 is "0 AM" and hour 12 is "0 PM".
func LegacyLabel(hour int) string {
	if hour < 12 {
		return fmt.Sprintf("%d AM", hour)
	}
	return fmt.Sprintf("%d PM", hour-12)
}

// ClockLabel is the conventional 12-hour clock: "12 AM", "1 AM", ..., "12 PM", "1 PM".
func ClockLabel(hour int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	if hour < 12 {
		return fmt.Sprintf("%d AM", h)
	}
	return fmt.Sprintf("%d PM", h)
}
