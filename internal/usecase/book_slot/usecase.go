package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-CourtSchedule/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-CourtSchedule/pkg/metrics"
)

// UseCase use case для бронирования корта на один час
type UseCase struct {
	scheduleRepo  ScheduleRepository
	matcher       domain.DateMatcher
	defaultAmount int64
	metrics       Metrics
	logger        Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	scheduleRepo ScheduleRepository,
	matcher domain.DateMatcher,
	defaultAmount int64,
	m Metrics,
	logger Logger,
) *UseCase {
	if defaultAmount <= 0 {
		defaultAmount = domain.DefaultBookingAmount
	}
	return &UseCase{
		scheduleRepo:  scheduleRepo,
		matcher:       matcher,
		defaultAmount: defaultAmount,
		metrics:       m,
		logger:        logger,
	}
}

// Execute проверяет запрос, отклоняет занятую ячейку и сохраняет слот.
// Проверка занятости выполняется только при чтении, два параллельных запроса могут ее пройти.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		uc.observe(metrics.BookingInvalid)
		return nil, err
	}

	uc.logger.Info("BookSlot: schedule=%s, date=%s, court=%d, hour=%d",
		req.ScheduleID, date.Format(domain.DateFormat), req.CourtNumber, req.StartTime)

	slot := domain.BookedSlot{
		CourtNumber:  req.CourtNumber,
		StartTime:    req.StartTime,
		CustomerName: req.CustomerName,
		ContactInfo:  req.ContactInfo,
		Amount:       req.Amount,
	}
	if slot.Amount <= 0 {
		slot.Amount = uc.defaultAmount
	}

	// 2. Получаем расписание
	schedule, err := uc.scheduleRepo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		return nil, uc.storageError("load schedule", req.ScheduleID, err)
	}

	// 3. Берем найденную запись даты или нормализованную новую
	entryDate := uc.matcher.Normalize(date)
	if entry, ok := schedule.FindDate(uc.matcher, date); ok {
		if entry.IsBooked(slot) {
			uc.logger.Warn("BookSlot: court=%d hour=%d already booked on %s",
				slot.CourtNumber, slot.StartTime, entryDate.Format(domain.DateFormat))
			uc.observe(metrics.BookingTaken)
			return nil, ErrSlotTaken
		}
		entryDate = entry.Date
	}

	// 4. Сохраняем слот
	if err := uc.scheduleRepo.AddSlot(ctx, req.ScheduleID, entryDate, slot); err != nil {
		return nil, uc.storageError("add slot", req.ScheduleID, err)
	}

	uc.logger.Info("BookSlot: booked court=%d hour=%d for schedule=%s",
		slot.CourtNumber, slot.StartTime, req.ScheduleID)
	uc.observe(metrics.BookingCreated)

	return &Response{Date: entryDate, Slot: slot}, nil
}

func (uc *UseCase) storageError(op, scheduleID string, err error) error {
	if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Warn("BookSlot: schedule id=%s not found", scheduleID)
		uc.observe(metrics.BookingNotFound)
		return ErrScheduleNotFound
	}
	uc.logger.Error("BookSlot: failed to %s for schedule id=%s: %v", op, scheduleID, err)
	uc.observe(metrics.BookingError)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBooking(result)
	}
}
