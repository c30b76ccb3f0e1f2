package slotsapi

import "github.com/m04kA/SMC-CourtSchedule/internal/domain"

// Slot забронированный слот в формате API
type Slot struct {
	CourtNumber  int    `json:"courtNumber"`
	StartTime    int    `json:"start_time"`
	CustomerName string `json:"customer_name"`
	ContactInfo  string `json:"contact_info,omitempty"`
	Amount       int64  `json:"amount,omitempty"`
}

func (s Slot) ToDomain() domain.BookedSlot {
	return domain.BookedSlot{
		CourtNumber:  s.CourtNumber,
		StartTime:    s.StartTime,
		CustomerName: s.CustomerName,
		ContactInfo:  s.ContactInfo,
		Amount:       s.Amount,
	}
}

// ToDomainSlots конвертирует список слотов
func ToDomainSlots(slots []Slot) []domain.BookedSlot {
	out := make([]domain.BookedSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.ToDomain())
	}
	return out
}

type getSlotsRequest struct {
	ScheduleID string `json:"scheduleId"`
	Date       string `json:"date"`
}

type getSlotsResponse struct {
	Slots []Slot `json:"slots"`
}

// BookSlotRequest тело запроса POST /bookslot
type BookSlotRequest struct {
	ScheduleID   string `json:"scheduleId"`
	Date         string `json:"date"`
	CourtNumber  int    `json:"courtNumber"`
	StartTime    int    `json:"start_time"`
	CustomerName string `json:"customer_name"`
	ContactInfo  string `json:"contact_info"`
	Amount       int64  `json:"amount,omitempty"`
}

type bookSlotResponse struct {
	Slot *Slot `json:"slot"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
