package book_slot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-CourtSchedule/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-CourtSchedule/pkg/logger"
	"github.com/m04kA/SMC-CourtSchedule/pkg/metrics"
)

type addCall struct {
	scheduleID string
	date       time.Time
	slot       domain.BookedSlot
}

type fakeRepository struct {
	schedule *domain.Schedule
	getErr   error
	addErr   error
	adds     []addCall
}

func (f *fakeRepository) GetByID(context.Context, string) (*domain.Schedule, error) {
	return f.schedule, f.getErr
}

func (f *fakeRepository) AddSlot(_ context.Context, scheduleID string, date time.Time, slot domain.BookedSlot) error {
	f.adds = append(f.adds, addCall{scheduleID, date, slot})
	return f.addErr
}

type fakeMetrics struct {
	results []string
}

func (f *fakeMetrics) ObserveBooking(result string) {
	f.results = append(f.results, result)
}

var may1 = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func fixture() *domain.Schedule {
	return &domain.Schedule{
		ID: "club-1",
		Dates: []domain.ScheduleDate{
			{
				Date: may1,
				Slots: []domain.BookedSlot{
					{CourtNumber: 2, StartTime: 14, CustomerName: "Alice"},
				},
			},
		},
	}
}

func validRequest() *Request {
	return &Request{
		ScheduleID:   "club-1",
		Date:         "2024-05-01",
		CourtNumber:  3,
		StartTime:    9,
		CustomerName: "  Dave ",
		ContactInfo:  "dave@example.com",
	}
}

func TestUseCase_Execute_ExistingDate(t *testing.T) {
	repo := &fakeRepository{schedule: fixture()}
	m := &fakeMetrics{}
	uc := NewUseCase(repo, domain.DateMatcher{}, 500, m, logger.NewNop())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	want := domain.BookedSlot{
		CourtNumber:  3,
		StartTime:    9,
		CustomerName: "Dave",
		ContactInfo:  "dave@example.com",
		Amount:       500,
	}
	assert.Equal(t, want, resp.Slot)
	assert.True(t, resp.Date.Equal(may1))

	require.Len(t, repo.adds, 1)
	assert.Equal(t, "club-1", repo.adds[0].scheduleID)
	assert.True(t, repo.adds[0].date.Equal(may1))
	assert.Equal(t, want, repo.adds[0].slot)
	assert.Equal(t, []string{metrics.BookingCreated}, m.results)
}

func TestUseCase_Execute_CreatesDateEntry(t *testing.T) {
	repo := &fakeRepository{schedule: fixture()}
	uc := NewUseCase(repo, domain.DateMatcher{}, 500, nil, logger.NewNop())

	req := validRequest()
	req.Date = "2024-05-03T00:00:00.123456Z"
	req.Amount = 750

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	wantDate := time.Date(2024, 5, 3, 0, 0, 0, 123000000, time.UTC)
	require.Len(t, repo.adds, 1)
	assert.True(t, repo.adds[0].date.Equal(wantDate), "date is normalized to milliseconds")
	assert.Equal(t, int64(750), resp.Slot.Amount)
}

func TestUseCase_Execute_CalendarDayReusesStoredDate(t *testing.T) {
	matcher, err := domain.NewDateMatcher(domain.DateMatchCalendarDay, "UTC")
	require.NoError(t, err)

	repo := &fakeRepository{schedule: fixture()}
	uc := NewUseCase(repo, matcher, 500, nil, logger.NewNop())

	req := validRequest()
	req.Date = "2024-05-01T18:30:00Z"

	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, repo.adds, 1)
	assert.True(t, repo.adds[0].date.Equal(may1))
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	repo := &fakeRepository{schedule: fixture()}
	m := &fakeMetrics{}
	uc := NewUseCase(repo, domain.DateMatcher{}, 500, m, logger.NewNop())

	req := validRequest()
	req.CourtNumber = 2
	req.StartTime = 14

	resp, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, resp)
	assert.Empty(t, repo.adds, "nothing is written for a taken slot")
	assert.Equal(t, []string{metrics.BookingTaken}, m.results)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{"empty schedule id", func(r *Request) { r.ScheduleID = "" }},
		{"bad date", func(r *Request) { r.Date = "05/01/2024" }},
		{"court zero", func(r *Request) { r.CourtNumber = 0 }},
		{"court above max", func(r *Request) { r.CourtNumber = domain.MaxCourts + 1 }},
		{"negative hour", func(r *Request) { r.StartTime = -1 }},
		{"hour 24", func(r *Request) { r.StartTime = 24 }},
		{"blank name", func(r *Request) { r.CustomerName = "   " }},
		{"long name", func(r *Request) { r.CustomerName = strings.Repeat("n", domain.MaxCustomerNameLength+1) }},
		{"blank contact", func(r *Request) { r.ContactInfo = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{schedule: fixture()}
			uc := NewUseCase(repo, domain.DateMatcher{}, 500, nil, logger.NewNop())

			req := validRequest()
			tt.modify(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.adds)
		})
	}
}

func TestUseCase_Execute_StorageErrors(t *testing.T) {
	tests := []struct {
		name    string
		repo    *fakeRepository
		wantErr error
	}{
		{
			name:    "schedule not found",
			repo:    &fakeRepository{getErr: scheduleRepo.ErrScheduleNotFound},
			wantErr: ErrScheduleNotFound,
		},
		{
			name:    "load fails",
			repo:    &fakeRepository{getErr: errors.New("timeout")},
			wantErr: ErrInternal,
		},
		{
			name:    "schedule removed before write",
			repo:    &fakeRepository{schedule: fixture(), addErr: scheduleRepo.ErrScheduleNotFound},
			wantErr: ErrScheduleNotFound,
		},
		{
			name:    "write fails",
			repo:    &fakeRepository{schedule: fixture(), addErr: scheduleRepo.ErrExecQuery},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.repo, domain.DateMatcher{}, 500, nil, logger.NewNop())

			_, err := uc.Execute(context.Background(), validRequest())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewUseCase_DefaultAmount(t *testing.T) {
	repo := &fakeRepository{schedule: fixture()}
	uc := NewUseCase(repo, domain.DateMatcher{}, 0, nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(domain.DefaultBookingAmount), resp.Slot.Amount)
}
