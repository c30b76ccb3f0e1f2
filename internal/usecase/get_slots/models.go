package get_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
)

// Request запрос слотов на одну дату расписания
type Request struct {
	ScheduleID string
	Date       string // any of domain.DateLayouts
}

// Response забронированные слоты найденной даты (Slots никогда не nil)
type Response struct {
	Date      time.Time // parsed request date
	DateFound bool      // false, если в расписании нет записи на эту дату
	Slots     []domain.BookedSlot
}
