package domain

// BookedSlot is one court booked for one hour on a schedule date.
// Slots for all courts of a date live in one flat list, told apart by CourtNumber.
type BookedSlot struct {
	CourtNumber  int    // 1-based
	StartTime    int    // hour of day, 0-23
	CustomerName string
	ContactInfo  string // optional, set by the booking path
	Amount       int64  // optional, set by the booking path
}

// InHours reports whether the slot starts within the day
func (s BookedSlot) InHours() bool {
	return s.StartTime >= 0 && s.StartTime < HoursPerDay
}

// OnCourt reports whether the slot belongs to a court in [1, courts]
func (s BookedSlot) OnCourt(courts int) bool {
	return s.CourtNumber >= 1 && s.CourtNumber <= courts
}

// SameCell reports whether both slots occupy the same court and hour
func (s BookedSlot) SameCell(other BookedSlot) bool {
	return s.CourtNumber == other.CourtNumber && s.StartTime == other.StartTime
}
