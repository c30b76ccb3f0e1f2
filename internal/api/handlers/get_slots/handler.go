package get_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtSchedule/internal/api/handlers"
	getSlots "github.com/m04kA/SMC-CourtSchedule/internal/usecase/get_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgScheduleNotFound   = "Schedule not found."
)

type Handler struct {
	useCase GetSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /getslots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GetSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /getslots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrScheduleNotFound):
			h.logger.Warn("POST /getslots - Schedule not found: schedule_id=%s", req.ScheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("POST /getslots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /getslots - Failed to get slots: schedule_id=%s, error=%v", req.ScheduleID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
