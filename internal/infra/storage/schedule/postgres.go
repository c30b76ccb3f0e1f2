package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
	"github.com/m04kA/SMC-CourtSchedule/pkg/psqlbuilder"
)

// PostgresRepository хранит расписания в трех таблицах:
// schedules, schedule_dates (одна строка на расписание и дату) и booked_slots.
type PostgresRepository struct {
	db DBExecutor
}

// NewPostgresRepository создает новый экземпляр репозитория на PostgreSQL
func NewPostgresRepository(db DBExecutor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// GetByID загружает расписание со всеми датами и слотами
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	if err := r.ensureExists(ctx, r.db, id); err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select(
		"sd.id",
		"sd.date",
		"bs.court_number",
		"bs.start_time",
		"bs.customer_name",
		"bs.contact_info",
		"bs.amount",
	).
		From("schedule_dates sd").
		LeftJoin("booked_slots bs ON bs.schedule_date_id = sd.id").
		Where(squirrel.Eq{"sd.schedule_id": id}).
		OrderBy("sd.date", "bs.created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := &domain.Schedule{ID: id, Dates: []domain.ScheduleDate{}}
	index := make(map[int64]int)

	for rows.Next() {
		var (
			dateID       int64
			date         time.Time
			courtNumber  sql.NullInt64
			startTime    sql.NullInt64
			customerName sql.NullString
			contactInfo  sql.NullString
			amount       sql.NullInt64
		)
		if err := rows.Scan(&dateID, &date, &courtNumber, &startTime, &customerName, &contactInfo, &amount); err != nil {
			return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
		}

		pos, ok := index[dateID]
		if !ok {
			schedule.Dates = append(schedule.Dates, domain.ScheduleDate{
				Date:  date.UTC(),
				Slots: []domain.BookedSlot{},
			})
			pos = len(schedule.Dates) - 1
			index[dateID] = pos
		}

		// для даты без бронирований LEFT JOIN дает NULL слот
		if !courtNumber.Valid {
			continue
		}

		schedule.Dates[pos].Slots = append(schedule.Dates[pos].Slots, domain.BookedSlot{
			CourtNumber:  int(courtNumber.Int64),
			StartTime:    int(startTime.Int64),
			CustomerName: customerName.String,
			ContactInfo:  contactInfo.String,
			Amount:       amount.Int64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByID - iterate rows: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// AddSlot добавляет слот к записи даты, создавая запись при отсутствии.
// Выполняется в одной транзакции, новая дата не остается без слота.
func (r *PostgresRepository) AddSlot(ctx context.Context, scheduleID string, date time.Time, slot domain.BookedSlot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: AddSlot - begin: %v", ErrTransaction, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := r.ensureExists(ctx, tx, scheduleID); err != nil {
		return err
	}

	dateQuery, dateArgs, err := psqlbuilder.Insert("schedule_dates").
		Columns("schedule_id", "date").
		Values(scheduleID, date.UTC()).
		Suffix("ON CONFLICT (schedule_id, date) DO UPDATE SET date = EXCLUDED.date RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddSlot - build date upsert: %v", ErrBuildQuery, err)
	}

	var dateID int64
	if err := tx.QueryRowContext(ctx, dateQuery, dateArgs...).Scan(&dateID); err != nil {
		return fmt.Errorf("%w: AddSlot - upsert date: %v", ErrExecQuery, err)
	}

	slotQuery, slotArgs, err := psqlbuilder.Insert("booked_slots").
		Columns(
			"id",
			"schedule_date_id",
			"court_number",
			"start_time",
			"customer_name",
			"contact_info",
			"amount",
		).
		Values(
			uuid.NewString(),
			dateID,
			slot.CourtNumber,
			slot.StartTime,
			slot.CustomerName,
			slot.ContactInfo,
			slot.Amount,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddSlot - build slot insert: %v", ErrBuildQuery, err)
	}

	if _, err := tx.ExecContext(ctx, slotQuery, slotArgs...); err != nil {
		return fmt.Errorf("%w: AddSlot - insert slot: %v", ErrExecQuery, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: AddSlot - commit: %v", ErrTransaction, err)
	}

	return nil
}

func (r *PostgresRepository) ensureExists(ctx context.Context, q queryRower, id string) error {
	query, args, err := psqlbuilder.Select("id").
		From("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ensureExists - build select query: %v", ErrBuildQuery, err)
	}

	var found string
	err = q.QueryRowContext(ctx, query, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrScheduleNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: ensureExists - scan: %v", ErrScanRow, err)
	}

	return nil
}
