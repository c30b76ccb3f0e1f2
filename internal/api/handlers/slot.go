package handlers

import "github.com/m04kA/SMC-CourtSchedule/internal/domain"

// Slot is the wire form of a booked slot
type Slot struct {
	CourtNumber  int    `json:"courtNumber"`
	StartTime    int    `json:"start_time"`
	CustomerName string `json:"customer_name"`
	ContactInfo  string `json:"contact_info,omitempty"`
	Amount       int64  `json:"amount,omitempty"`
}

// SlotFromDomain конвертирует доменный слот
func SlotFromDomain(s domain.BookedSlot) Slot {
	return Slot{
		CourtNumber:  s.CourtNumber,
		StartTime:    s.StartTime,
		CustomerName: s.CustomerName,
		ContactInfo:  s.ContactInfo,
		Amount:       s.Amount,
	}
}

// SlotsFromDomain конвертирует список слотов, результат никогда не nil
func SlotsFromDomain(slots []domain.BookedSlot) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotFromDomain(s))
	}
	return out
}
