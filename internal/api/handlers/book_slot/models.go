package book_slot

import (
	"github.com/m04kA/SMC-CourtSchedule/internal/api/handlers"
	bookSlot "github.com/m04kA/SMC-CourtSchedule/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	ScheduleID   string `json:"scheduleId"`
	Date         string `json:"date"`
	CourtNumber  int    `json:"courtNumber"`
	StartTime    int    `json:"start_time"`
	CustomerName string `json:"customer_name"`
	ContactInfo  string `json:"contact_info"`
	Amount       int64  `json:"amount,omitempty"`
}

// BookSlotResponse HTTP response model
type BookSlotResponse struct {
	Slot handlers.Slot `json:"slot"`
}

func (r *BookSlotRequest) ToUseCaseRequest() *bookSlot.Request {
	return &bookSlot.Request{
		ScheduleID:   r.ScheduleID,
		Date:         r.Date,
		CourtNumber:  r.CourtNumber,
		StartTime:    r.StartTime,
		CustomerName: r.CustomerName,
		ContactInfo:  r.ContactInfo,
		Amount:       r.Amount,
	}
}

func FromUseCaseResponse(resp *bookSlot.Response) BookSlotResponse {
	return BookSlotResponse{Slot: handlers.SlotFromDomain(resp.Slot)}
}
