package book_slot

import (
	"time"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
)

// Request бронирование одного корта на один час
type Request struct {
	ScheduleID   string
	Date         string // any of domain.DateLayouts
	CourtNumber  int    // 1-based
	StartTime    int    // hour, 0-23
	CustomerName string
	ContactInfo  string
	Amount       int64 // <= 0 means the configured default
}

// Response сохраненное бронирование
type Response struct {
	Date time.Time // date of the entry the slot was added to
	Slot domain.BookedSlot
}
