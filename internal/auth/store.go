package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrCodeNotFound is returned when no OTP is pending for a phone number.
	ErrCodeNotFound = errors.New("no pending code")
	// ErrRefreshNotFound is returned for unknown refresh tokens.
	ErrRefreshNotFound = errors.New("refresh token not found")
)

// CodeStore holds short-lived authentication state: pending OTP hashes,
// failure strikes, and refresh tokens.
type CodeStore interface {
	SaveCode(ctx context.Context, phone, hash string, ttl time.Duration) error
	GetCode(ctx context.Context, phone string) (string, error)
	DeleteCode(ctx context.Context, phone string) error

	IncrStrikes(ctx context.Context, phone string, window time.Duration) (int, error)
	Strikes(ctx context.Context, phone string) (int, error)
	ClearStrikes(ctx context.Context, phone string) error

	SaveRefresh(ctx context.Context, token, userID string, ttl time.Duration) error
	// TakeRefresh returns the user id behind a refresh token and consumes it.
	TakeRefresh(ctx context.Context, token string) (string, error)
}

// RedisCodeStore backs CodeStore with Redis; TTLs ride on the keys.
type RedisCodeStore struct {
	rdb *redis.Client
}

func NewRedisCodeStore(rdb *redis.Client) *RedisCodeStore {
	return &RedisCodeStore{rdb: rdb}
}

func (s *RedisCodeStore) SaveCode(ctx context.Context, phone, hash string, ttl time.Duration) error {
	return s.rdb.Set(ctx, "otp:"+phone, hash, ttl).Err()
}

func (s *RedisCodeStore) GetCode(ctx context.Context, phone string) (string, error) {
	hash, err := s.rdb.Get(ctx, "otp:"+phone).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCodeNotFound
	}
	return hash, err
}

func (s *RedisCodeStore) DeleteCode(ctx context.Context, phone string) error {
	return s.rdb.Del(ctx, "otp:"+phone).Err()
}

func (s *RedisCodeStore) IncrStrikes(ctx context.Context, phone string, window time.Duration) (int, error) {
	key := "otp_strikes:" + phone
	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		s.rdb.Expire(ctx, key, window)
	}
	return int(n), nil
}

func (s *RedisCodeStore) Strikes(ctx context.Context, phone string) (int, error) {
	n, err := s.rdb.Get(ctx, "otp_strikes:"+phone).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

func (s *RedisCodeStore) ClearStrikes(ctx context.Context, phone string) error {
	return s.rdb.Del(ctx, "otp_strikes:"+phone).Err()
}

func (s *RedisCodeStore) SaveRefresh(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, "refresh:"+token, userID, ttl).Err()
}

func (s *RedisCodeStore) TakeRefresh(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.GetDel(ctx, "refresh:"+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrRefreshNotFound
	}
	return userID, err
}
