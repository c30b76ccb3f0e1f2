package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
)

const cacheKeyPrefix = "schedule:"

// CachedRepository read-through кэш в Redis поверх другого Repository.
// Ошибки кэша логируются и не ломают запрос.
type CachedRepository struct {
	next   Repository
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewCachedRepository оборачивает next кэшем в Redis.
// Чтение, параллельное AddSlot, может записать устаревшую запись после инвалидации, ttl ограничивает ее жизнь.
func NewCachedRepository(next Repository, client *redis.Client, ttl time.Duration, logger Logger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetByID отдает из кэша, при промахе загружает и сохраняет
func (r *CachedRepository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	key := cacheKey(id)

	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var schedule domain.Schedule
		if err := json.Unmarshal(raw, &schedule); err == nil {
			return &schedule, nil
		}
		r.logger.Warn("schedule cache: corrupt entry %s, reloading", key)
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("schedule cache: get %s: %v", key, err)
	}

	schedule, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(schedule); err != nil {
		r.logger.Warn("schedule cache: encode %s: %v", key, err)
	} else if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		r.logger.Warn("schedule cache: set %s: %v", key, err)
	}

	return schedule, nil
}

// AddSlot пишет в хранилище и сбрасывает кэш расписания
func (r *CachedRepository) AddSlot(ctx context.Context, scheduleID string, date time.Time, slot domain.BookedSlot) error {
	if err := r.next.AddSlot(ctx, scheduleID, date, slot); err != nil {
		return err
	}

	if err := r.client.Del(ctx, cacheKey(scheduleID)).Err(); err != nil {
		r.logger.Error("schedule cache: invalidate %s: %v", scheduleID, err)
	}

	return nil
}

func cacheKey(id string) string {
	return cacheKeyPrefix + id
}
