package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arjunpn/airticket/config"
	"github.com/arjunpn/airticket/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache serves two jobs: a TTL-bounded snapshot of the flight list for
// the read path, and SetNX seat-hold locks taken while a booking request is
// in flight. Both are optional; every consumer is nil-safe without it.
type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.FlightSummary, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.FlightSummary
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.FlightSummary) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

func (c *RedisCache) AcquireSeatLock(ctx context.Context, flightID, seatCode string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, seatLockKey(flightID, seatCode), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseSeatLock(ctx context.Context, flightID, seatCode string) error {
	return c.client.Del(ctx, seatLockKey(flightID, seatCode)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func seatLockKey(flightID, seatCode string) string {
	return fmt.Sprintf("lock:flight:%s:seat:%s", flightID, seatCode)
}
