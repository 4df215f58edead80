// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/taibuivan/nolfolio/internal/platform/redis"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestNewClient_Errors rejects a malformed URL and an unreachable server.
*/
func TestNewClient_Errors(t *testing.T) {
	_, err := redisstore.NewClient(t.Context(), "not-a-redis-url", discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid URL")

	started := time.Now()
	_, err = redisstore.NewClient(t.Context(), "redis://127.0.0.1:1/0", discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping failed")
	assert.Less(t, time.Since(started), 5*time.Second)
}

/*
TestChecker_HonoursCallerContext returns at once for a cancelled caller.
*/
func TestChecker_HonoursCallerContext(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	started := time.Now()
	err := redisstore.Checker(client)(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(started), time.Second)
}
