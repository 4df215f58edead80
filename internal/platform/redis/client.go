// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis builds the optional Redis client shared by API instances.

The only workload is the contact form's duplicate guard: one SET NX per
submission and a DEL when delivery fails. Replies are tiny and traffic is
low, so the pool is small and timeouts are short. A slow Redis must never hold
up a submission for long, since the guard fails open.

When REDIS_URL is empty the API runs with the in-memory guard and this package
is never called.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client settings for short claim commands. Values given in the URL query
// (pool_size, dial_timeout, ...) take precedence over the pool defaults.
const (
	clientName = "nolfolio-api"

	dialTimeout  = 2 * time.Second
	readTimeout  = 500 * time.Millisecond
	writeTimeout = 500 * time.Millisecond
	maxRetries   = 1

	defaultPoolSize     = 4
	defaultMinIdleConns = 1

	// pingTimeout caps a readiness probe even when the caller has no deadline.
	pingTimeout = time.Second
)

// NewClient parses redisURL, applies the claim workload settings and pings
// the server once with context.
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.ClientName = clientName
	options.DialTimeout = dialTimeout
	options.ReadTimeout = readTimeout
	options.WriteTimeout = writeTimeout
	options.MaxRetries = maxRetries

	if options.PoolSize == 0 {
		options.PoolSize = defaultPoolSize
	}
	if options.MinIdleConns == 0 {
		options.MinIdleConns = defaultMinIdleConns
	}

	client := redis.NewClient(options)

	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_client_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
		slog.Int("pool_size", options.PoolSize),
	)

	return client, nil
}

// Ping checks the server within context, bounded by a one second cap.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}

// Checker returns a readiness check bound to client.
func Checker(client *redis.Client) func(stdctx.Context) error {
	return func(context stdctx.Context) error {
		return Ping(context, client)
	}
}
