package repository

import (
	"context"
	"errors"
	"time"

	"smartride/internal/domain/entities"
	"smartride/internal/usecase/interfaces"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "smart_ride:session:"

	// Sessions share the pending-payment cookies' 1-day lifetime so a
	// redirect round trip never outlives its session.
	sessionTTL = 24 * time.Hour
)

// BookingSessionRedisRepository keeps in-flight wizard sessions in Redis as
// JSON values with a rolling TTL.

type BookingSessionRedisRepository struct {
	rdb *redis.Client
}

var _ interfaces.IBookingSessionRepository = (*BookingSessionRedisRepository)(nil)

func NewBookingSessionRedisRepository(rdb *redis.Client) *BookingSessionRedisRepository {
	return &BookingSessionRedisRepository{rdb: rdb}
}

func (r *BookingSessionRedisRepository) Save(ctx context.Context, s entities.BookingSession) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, sessionKeyPrefix+s.ID, b, sessionTTL).Err()
}

func (r *BookingSessionRedisRepository) GetByID(ctx context.Context, id string) (entities.BookingSession, error) {
	b, err := r.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.BookingSession{}, nil
		}
		return entities.BookingSession{}, err
	}

	var s entities.BookingSession
	if err := json.Unmarshal(b, &s); err != nil {
		return entities.BookingSession{}, err
	}
	return s, nil
}

func (r *BookingSessionRedisRepository) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}
