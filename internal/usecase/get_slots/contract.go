package get_slots

import (
	"context"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
)

// ScheduleRepository интерфейс для загрузки расписаний
type ScheduleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
}

// Metrics интерфейс для подсчета результатов поиска
type Metrics interface {
	ObserveSlotLookup(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
