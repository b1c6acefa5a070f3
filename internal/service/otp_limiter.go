package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CooldownLimiter gates how often a code may be requested for the same email
type CooldownLimiter interface {
	// Allow reports whether a request for key may proceed, starting a new cooldown if so
	Allow(ctx context.Context, key string, cooldown time.Duration) (bool, error)
}

// RedisCooldownLimiter keeps cooldowns as expiring redis keys
type RedisCooldownLimiter struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisCooldownLimiter creates a limiter backed by redis
func NewRedisCooldownLimiter(client redis.UniversalClient) *RedisCooldownLimiter {
	return &RedisCooldownLimiter{client: client, prefix: "otp:cooldown:"}
}

// Allow sets the key only when absent (SET NX EX), so the first request in a window wins
func (l *RedisCooldownLimiter) Allow(ctx context.Context, key string, cooldown time.Duration) (bool, error) {
	if cooldown <= 0 {
		return true, nil
	}
	ok, err := l.client.SetNX(ctx, l.prefix+key, time.Now().Unix(), cooldown).Result()
	if err != nil {
		return false, fmt.Errorf("otp cooldown: %w", err)
	}
	return ok, nil
}

// NoopCooldownLimiter allows every request
type NoopCooldownLimiter struct{}

// Allow always returns true
func (NoopCooldownLimiter) Allow(context.Context, string, time.Duration) (bool, error) {
	return true, nil
}
