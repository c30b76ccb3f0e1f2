package get_slots

import (
	"github.com/m04kA/SMC-CourtSchedule/internal/api/handlers"
	getSlots "github.com/m04kA/SMC-CourtSchedule/internal/usecase/get_slots"
)

// GetSlotsRequest HTTP request model
type GetSlotsRequest struct {
	ScheduleID string `json:"scheduleId"`
	Date       string `json:"date"` // "2024-05-01" or RFC 3339
}

// GetSlotsResponse HTTP response model
type GetSlotsResponse struct {
	Slots []handlers.Slot `json:"slots"`
}

func (r *GetSlotsRequest) ToUseCaseRequest() *getSlots.Request {
	return &getSlots.Request{
		ScheduleID: r.ScheduleID,
		Date:       r.Date,
	}
}

func FromUseCaseResponse(resp *getSlots.Response) GetSlotsResponse {
	return GetSlotsResponse{Slots: handlers.SlotsFromDomain(resp.Slots)}
}
