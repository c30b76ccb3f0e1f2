package get_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ScheduleID) == "" {
		return fmt.Errorf("%w: scheduleId is required", ErrInvalidInput)
	}
	return nil
}

func parseDate(raw string) (time.Time, error) {
	date, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return date, nil
}
