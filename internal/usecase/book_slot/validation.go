package book_slot

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
)

// validateRequest проверяет запрос и возвращает разобранную дату.
// Имя и контакты обрезаются на месте.
func validateRequest(req *Request) (time.Time, error) {
	if req == nil {
		return time.Time{}, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	req.ScheduleID = strings.TrimSpace(req.ScheduleID)
	if req.ScheduleID == "" {
		return time.Time{}, fmt.Errorf("%w: scheduleId is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.CourtNumber < domain.MinCourts || req.CourtNumber > domain.MaxCourts {
		return time.Time{}, fmt.Errorf("%w: courtNumber must be between %d and %d",
			ErrInvalidInput, domain.MinCourts, domain.MaxCourts)
	}

	if req.StartTime < 0 || req.StartTime >= domain.HoursPerDay {
		return time.Time{}, fmt.Errorf("%w: start_time must be between 0 and %d",
			ErrInvalidInput, domain.HoursPerDay-1)
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return time.Time{}, fmt.Errorf("%w: customer_name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return time.Time{}, fmt.Errorf("%w: customer_name is longer than %d characters",
			ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	req.ContactInfo = strings.TrimSpace(req.ContactInfo)
	if req.ContactInfo == "" {
		return time.Time{}, fmt.Errorf("%w: contact_info is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.ContactInfo) > domain.MaxContactInfoLength {
		return time.Time{}, fmt.Errorf("%w: contact_info is longer than %d characters",
			ErrInvalidInput, domain.MaxContactInfoLength)
	}

	return date, nil
}
