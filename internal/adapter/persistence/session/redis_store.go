package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"homeez_booking/internal/domain/wizard"
	"homeez_booking/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix        = "wizard:session:"
	maxUpdateRetries = 5
)

var ErrUpdateConflict = errors.New("session update conflict")

// RedisStore keeps sessions as JSON values with a sliding TTL.
// Update uses WATCH/MULTI so concurrent writers never lose a change.

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ISessionRepository = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func (r *RedisStore) Create(ctx context.Context, s wizard.Session) error {
	b, err := encode(s)
	if err != nil {
		return err
	}
	ok, err := r.client.SetNX(ctx, sessionKey(s.ID), b, r.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrDuplicateSession
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (wizard.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return wizard.Session{}, nil
	}
	if err != nil {
		return wizard.Session{}, err
	}
	return decode(data)
}

func (r *RedisStore) Update(ctx context.Context, id string, fn func(*wizard.Session) error) (wizard.Session, error) {
	key := sessionKey(id)

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		var out wizard.Session
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, key).Bytes()
			if err == redis.Nil {
				out = wizard.Session{}
				return nil
			}
			if err != nil {
				return err
			}
			s, err := decode(data)
			if err != nil {
				return err
			}
			if err := fn(&s); err != nil {
				return err
			}
			s.ID = id
			b, err := encode(s)
			if err != nil {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, b, r.ttl)
				return nil
			})
			if err != nil {
				return err
			}
			out = s
			return nil
		}, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return wizard.Session{}, err
		}
		return out, nil
	}
	return wizard.Session{}, fmt.Errorf("%w: %s", ErrUpdateConflict, id)
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}

func encode(s wizard.Session) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode session %s: %w", s.ID, err)
	}
	return b, nil
}

func decode(data []byte) (wizard.Session, error) {
	var s wizard.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return wizard.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}
