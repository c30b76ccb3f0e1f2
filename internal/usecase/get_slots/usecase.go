package get_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-CourtSchedule/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-CourtSchedule/pkg/metrics"
)

// UseCase use case для получения слотов на дату расписания
type UseCase struct {
	scheduleRepo ScheduleRepository
	matcher      domain.DateMatcher
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(scheduleRepo ScheduleRepository, matcher domain.DateMatcher, m Metrics, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		matcher:      matcher,
		metrics:      m,
		logger:       logger,
	}
}

// Execute находит расписание и возвращает слоты подходящей даты.
// Отсутствие даты в расписании не ошибка: результат без слотов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetSlots: schedule=%s, date=%q", req.ScheduleID, req.Date)

	// 2. Получаем расписание (неизвестное расписание -> 404 до разбора даты)
	schedule, err := uc.scheduleRepo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("GetSlots: schedule id=%s not found", req.ScheduleID)
			uc.observe(metrics.LookupNotFound)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("GetSlots: failed to load schedule id=%s: %v", req.ScheduleID, err)
		uc.observe(metrics.LookupError)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	// 3. Разбираем дату
	date, err := parseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetSlots: validation failed: %v", err)
		return nil, err
	}

	// 4. Ищем запись даты
	entry, ok := schedule.FindDate(uc.matcher, date)
	if !ok {
		uc.observe(metrics.LookupEmpty)
		return &Response{Date: date, Slots: []domain.BookedSlot{}}, nil
	}

	slots := entry.Slots
	if slots == nil {
		slots = []domain.BookedSlot{}
	}

	uc.observe(metrics.LookupFound)
	return &Response{Date: date, DateFound: true, Slots: slots}, nil
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveSlotLookup(result)
	}
}
