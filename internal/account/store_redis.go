// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartval/identity/internal/identity"
	"github.com/smartval/identity/internal/platform/constants"
)

// # Profile Cache (Redis)

// RedisProfileCache implements ProfileCache using Redis.
//
// Profiles are stored as JSON under a per-username key. Password material
// never reaches the cache: the entity's hash field is excluded from JSON
// serialization, so a cache dump exposes no credentials.
type RedisProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileCache creates a new Redis-backed ProfileCache with the standard TTL.
func NewProfileCache(client *redis.Client) *RedisProfileCache {
	return &RedisProfileCache{
		client: client,
		ttl:    constants.UserProfileCacheTTL,
	}
}

/*
Get retrieves a cached profile by username.

Description: Returns (nil, nil) when the key is absent or expired so the
caller falls through to the repository.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *identity.User: Cached entity, or nil on a miss
  - error: Connectivity or decoding errors
*/
func (cache *RedisProfileCache) Get(context context.Context, username string) (*identity.User, error) {
	key := profileKey(username)

	payload, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_profile_get_failed: %w", err)
	}

	user := &identity.User{}
	if err := json.Unmarshal(payload, user); err != nil {
		// A corrupt entry behaves as a miss after we drop it.
		cache.client.Del(context, key)
		return nil, nil
	}

	return user, nil
}

/*
Set stores a profile under its username key.

Parameters:
  - context: context.Context
  - user: *identity.User

Returns:
  - error: Serialization or storage failures
*/
func (cache *RedisProfileCache) Set(context context.Context, user *identity.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("redis_profile_encode_failed: %w", err)
	}

	key := profileKey(user.Username)
	if err := cache.client.Set(context, key, payload, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_profile_set_failed: %w", err)
	}

	return nil
}

/*
Invalidate removes a cached profile after a write.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - error: Deletion failures
*/
func (cache *RedisProfileCache) Invalidate(context context.Context, username string) error {
	if err := cache.client.Del(context, profileKey(username)).Err(); err != nil {
		return fmt.Errorf("redis_profile_invalidate_failed: %w", err)
	}

	return nil
}

// profileKey builds the namespaced cache key for a username.
func profileKey(username string) string {
	return constants.RedisPrefixUserProfile + username
}
