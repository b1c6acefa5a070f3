//go:build integration
// +build integration

package service_test

import (
	"context"
	"os"
	"testing"
	"time"

	"lpg-backoffice/internal/service"
	"lpg-backoffice/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

func TestRedisCooldownLimiter(t *testing.T) {
	client := testutils.SetupRedis(t)
	testutils.FlushRedis(t)
	t.Cleanup(func() { testutils.FlushRedis(t) })

	limiter := service.NewRedisCooldownLimiter(client)
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "owner@gasagency.in", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "owner@gasagency.in", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second request inside the window")

	ok, err = limiter.Allow(ctx, "counter@gasagency.in", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "cooldowns are per email")

	ttl, err := client.TTL(ctx, "otp:cooldown:owner@gasagency.in").Result()
	require.NoError(t, err)
	assert.InDelta(t, time.Minute.Seconds(), ttl.Seconds(), 2)

	ok, err = limiter.Allow(ctx, "owner@gasagency.in", 0)
	require.NoError(t, err)
	assert.True(t, ok, "zero cooldown disables the limiter")
}

func TestRedisCooldownLimiterExpiry(t *testing.T) {
	client := testutils.SetupRedis(t)
	testutils.FlushRedis(t)

	limiter := service.NewRedisCooldownLimiter(client)
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "owner@gasagency.in", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		ok, err := limiter.Allow(ctx, "owner@gasagency.in", time.Second)
		return err == nil && ok
	}, 5*time.Second, 200*time.Millisecond)
}
