package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
	"github.com/m04kA/SMC-CourtSchedule/pkg/dbmetrics"
)

// Repository интерфейс хранилища расписаний, реализуется всеми хранилищами пакета
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	AddSlot(ctx context.Context, scheduleID string, date time.Time, slot domain.BookedSlot) error
}

// Переиспользуем интерфейс из dbmetrics, поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor

// Logger интерфейс для логирования (используется кэшем)
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

var (
	_ Repository = (*PostgresRepository)(nil)
	_ Repository = (*MongoRepository)(nil)
	_ Repository = (*CachedRepository)(nil)
)
