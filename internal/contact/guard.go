// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/nolfolio/internal/platform/constants"
)

// # Duplicate Guard

// Guard hands out short-lived claims on submission fingerprints.
type Guard interface {

	/*
		Claim reserves key for ttl.

		Returns:
		  - bool: false when the key is already claimed
		  - error: backend failures
	*/
	Claim(context context.Context, key string, ttl time.Duration) (bool, error)

	// Release drops a claim so a failed delivery can be retried.
	Release(context context.Context, key string) error
}

// # Redis Implementation

// RedisGuard stores claims as expiring Redis keys, shared by every API instance.
type RedisGuard struct {
	client *redis.Client
}

// NewRedisGuard constructs a [RedisGuard].
func NewRedisGuard(client *redis.Client) *RedisGuard {
	return &RedisGuard{client: client}
}

// Claim implements [Guard] with SET NX.
func (guard *RedisGuard) Claim(context context.Context, key string, ttl time.Duration) (bool, error) {
	return guard.client.SetNX(context, constants.RedisPrefixContactClaim+key, 1, ttl).Result()
}

// Release implements [Guard].
func (guard *RedisGuard) Release(context context.Context, key string) error {
	return guard.client.Del(context, constants.RedisPrefixContactClaim+key).Err()
}

// # In-memory Implementation

// MemoryGuard keeps claims in process memory. Used when Redis is not configured.
//
// # Concurrency
//
// Safe for concurrent use.
type MemoryGuard struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

// NewMemoryGuard constructs an empty [MemoryGuard].
func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{expires: make(map[string]time.Time), now: time.Now}
}

// Claim implements [Guard]. Expired claims are swept on every call.
func (guard *MemoryGuard) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	guard.mu.Lock()
	defer guard.mu.Unlock()

	now := guard.now()
	for claimed, expiry := range guard.expires {
		if !now.Before(expiry) {
			delete(guard.expires, claimed)
		}
	}

	if _, taken := guard.expires[key]; taken {
		return false, nil
	}

	guard.expires[key] = now.Add(ttl)
	return true, nil
}

// Release implements [Guard].
func (guard *MemoryGuard) Release(_ context.Context, key string) error {
	guard.mu.Lock()
	defer guard.mu.Unlock()

	delete(guard.expires, key)
	return nil
}
