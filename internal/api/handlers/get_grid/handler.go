package get_grid

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtSchedule/internal/api/handlers"
	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
	"github.com/m04kA/SMC-CourtSchedule/internal/grid"
	getSlots "github.com/m04kA/SMC-CourtSchedule/internal/usecase/get_slots"
)

const msgScheduleNotFound = "Schedule not found."

var msgInvalidCourts = fmt.Sprintf("courts must be an integer between %d and %d", domain.MinCourts, domain.MaxCourts)

type Handler struct {
	useCase       GetSlotsUseCase
	defaultCourts int
	label         grid.LabelFunc
	logger        Logger
}

// NewHandler создает handler сетки. При label == nil используется grid.LegacyLabel.
func NewHandler(useCase GetSlotsUseCase, defaultCourts int, label grid.LabelFunc, logger Logger) *Handler {
	if defaultCourts < domain.MinCourts || defaultCourts > domain.MaxCourts {
		defaultCourts = domain.DefaultCourts
	}
	if label == nil {
		label = grid.LegacyLabel
	}
	return &Handler{
		useCase:       useCase,
		defaultCourts: defaultCourts,
		label:         label,
		logger:        logger,
	}
}

// Handle GET /schedules/{scheduleId}/grid?date=YYYY-MM-DD&courts=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID := mux.Vars(r)["scheduleId"]
	query := r.URL.Query()

	courts := h.defaultCourts
	if raw := query.Get("courts"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < domain.MinCourts || n > domain.MaxCourts {
			h.logger.Warn("GET /schedules/%s/grid - Invalid courts: %q", scheduleID, raw)
			handlers.RespondBadRequest(w, msgInvalidCourts)
			return
		}
		courts = n
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		ScheduleID: scheduleID,
		Date:       query.Get("date"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrScheduleNotFound):
			h.logger.Warn("GET /schedules/%s/grid - Schedule not found", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /schedules/%s/grid - Invalid input: %v", scheduleID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /schedules/%s/grid - Failed to get slots: %v", scheduleID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	g := grid.ProjectWithLabels(result.Slots, courts, h.label)
	handlers.RespondJSON(w, http.StatusOK, FromGrid(result, g))
}
