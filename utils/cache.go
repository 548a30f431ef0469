// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/voueil/Herafona-website/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix keys the session-token hashes kept for revocation checks.
const AuthCachePrefix = "session:"

// AuthCacheClient is the dedicated client for session caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for session caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for session caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// SaveSessionHash stores the hash of a freshly minted session token so it can
// be revoked on sign-out.
func SaveSessionHash(client *redis.Client, uid, tokenHash string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Set(ctx, AuthCachePrefix+uid, tokenHash, ttl).Err()
}

// GetSessionHash fetches the stored token hash for a user, or "" when none.
func GetSessionHash(client *redis.Client, uid string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	hash, err := client.Get(ctx, AuthCachePrefix+uid).Result()
	if err == redis.Nil {
		return "", nil
	}
	return hash, err
}

// DeleteSessionHash revokes a user's session.
func DeleteSessionHash(client *redis.Client, uid string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Del(ctx, AuthCachePrefix+uid).Err()
}
