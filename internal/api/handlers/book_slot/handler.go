package book_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtSchedule/internal/api/handlers"
	bookSlot "github.com/m04kA/SMC-CourtSchedule/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgScheduleNotFound   = "Schedule not found."
	msgSlotTaken          = "Slot is already booked."
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /bookslot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookslot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrSlotTaken):
			h.logger.Warn("POST /bookslot - Slot taken: schedule_id=%s, court=%d, hour=%d",
				req.ScheduleID, req.CourtNumber, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, bookSlot.ErrScheduleNotFound):
			h.logger.Warn("POST /bookslot - Schedule not found: schedule_id=%s", req.ScheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /bookslot - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookslot - Failed to book slot: schedule_id=%s, error=%v", req.ScheduleID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /bookslot - Slot booked: schedule_id=%s, court=%d, hour=%d",
		req.ScheduleID, result.Slot.CourtNumber, result.Slot.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
