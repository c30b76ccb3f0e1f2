package book_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
)

// ScheduleRepository интерфейс для загрузки расписаний и добавления слотов
type ScheduleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	AddSlot(ctx context.Context, scheduleID string, date time.Time, slot domain.BookedSlot) error
}

// Metrics интерфейс для подсчета результатов бронирования
type Metrics interface {
	ObserveBooking(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
