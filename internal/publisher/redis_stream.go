package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stream names shared with downstream consumers.
const (
	GameSavedStream      = "games.saved.football_nfl"
	IngestProgressStream = "ingest.progress.football_nfl"
)

// RedisPublisher publishes ingestion events to Redis streams
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates a new Redis stream publisher
func NewRedisPublisher(redisURL string) (*RedisPublisher, error) {
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

	return &RedisPublisher{
		client: client,
	}, nil
}

// NewRedisPublisherFromClient wraps an existing client.
func NewRedisPublisherFromClient(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// Close closes the Redis connection
func (rp *RedisPublisher) Close() error {
	return rp.client.Close()
}

// GameSavedEvent announces a game whose plays and derived features were
// just (re)written.
type GameSavedEvent struct {
	GameID     string `json:"game_id"`
	Season     int    `json:"season"`
	SeasonType string `json:"season_type"`
	Week       string `json:"week"`
	PlayCount  int    `json:"play_count"`
	Status     string `json:"status,omitempty"`
}

// IngestProgressEvent reports week/backfill ingestion progress.
type IngestProgressEvent struct {
	JobID       string `json:"job_id,omitempty"`
	Season      int    `json:"season"`
	SeasonType  string `json:"season_type"`
	Week        string `json:"week"`
	GamesTotal  int    `json:"games_total"`
	GamesDone   int    `json:"games_done"`
	GamesFailed int    `json:"games_failed"`
}

// PublishGameSaved publishes a saved-game event to the stream.
func (rp *RedisPublisher) PublishGameSaved(ctx context.Context, event GameSavedEvent) error {
	return rp.publish(ctx, GameSavedStream, event)
}

// PublishIngestProgress publishes an ingestion progress event.
func (rp *RedisPublisher) PublishIngestProgress(ctx context.Context, event IngestProgressEvent) error {
	return rp.publish(ctx, IngestProgressStream, event)
}

func (rp *RedisPublisher) publish(ctx context.Context, stream string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return rp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}
