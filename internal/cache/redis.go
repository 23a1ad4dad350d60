package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// teamHistoryTTL keeps rollups fresh across an ingest cycle without
// hammering the play tables on every request.
const teamHistoryTTL = 15 * time.Minute

// RedisCache handles caching and fast state storage
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache connection
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
	}, nil
}

// Close closes the Redis connection
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// Client returns the underlying Redis client
func (rc *RedisCache) Client() *redis.Client {
	return rc.client
}

// HealthCheck pings Redis to verify connection
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// Set stores a key-value pair with TTL
func (rc *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return rc.client.Set(ctx, key, value, ttl).Err()
}

// Get retrieves a value by key
func (rc *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return rc.client.Get(ctx, key).Result()
}

// Delete removes a key
func (rc *RedisCache) Delete(ctx context.Context, keys ...string) error {
	return rc.client.Del(ctx, keys...).Err()
}

// TeamHistoryKey builds the cache key for a team's rollup as of a date.
func TeamHistoryKey(teamID string, season int, asOfDate string) string {
	return fmt.Sprintf("history:%s:%d:%s", teamID, season, asOfDate)
}

// GetTeamHistory returns a cached rollup payload, or "" on miss.
func (rc *RedisCache) GetTeamHistory(ctx context.Context, teamID string, season int, asOfDate string) (string, error) {
	val, err := rc.client.Get(ctx, TeamHistoryKey(teamID, season, asOfDate)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// SetTeamHistory caches a rollup payload.
func (rc *RedisCache) SetTeamHistory(ctx context.Context, teamID string, season int, asOfDate string, payload string) error {
	return rc.client.Set(ctx, TeamHistoryKey(teamID, season, asOfDate), payload, teamHistoryTTL).Err()
}

// InvalidateTeamHistory drops every cached rollup for a team. Called
// after a save changes the team's prior-game set.
func (rc *RedisCache) InvalidateTeamHistory(ctx context.Context, teamID string) error {
	pattern := fmt.Sprintf("history:%s:*", teamID)

	iter := rc.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return rc.client.Del(ctx, keys...).Err()
}
