// File: utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"voyager/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (search results, widget
	// snapshots, booking sessions).
	CacheClient *redis.Client
	// ChatContextClient is the dedicated client for conversation context.
	ChatContextClient *redis.Client
)

// InitRedis initializes all Redis clients.
func InitRedis() {
	InitCache()
	InitChatContextCache()
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitChatContextCache initializes the Redis client holding per-user
// conversation context for the orchestrator.
func InitChatContextCache() {
	ChatContextClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatCtxDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ChatContextClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Chat Context): %v", err)
	}
}

// GetChatContextClient returns the Redis client for conversation context.
func GetChatContextClient() *redis.Client {
	if ChatContextClient == nil {
		InitChatContextCache()
	}
	return ChatContextClient
}

// CacheJSON stores v as JSON under key for the given TTL. A nil client
// is a no-op so services stay usable without Redis.
func CacheJSON(ctx context.Context, client *redis.Client, key string, v interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, data, ttl).Err()
}

// FetchJSON loads the JSON value at key into v. The bool reports a hit;
// a nil client or a missing key is a miss, not an error.
func FetchJSON(ctx context.Context, client *redis.Client, key string, v interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}
	data, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return false, err
	}
	return true, nil
}
