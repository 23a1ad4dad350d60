package pro

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	// BaseURL for the pro.nfl.com API
	BaseURL = "https://pro.nfl.com"

	// UserAgent for requests
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	maxRetries = 3
	retryDelay = 2 * time.Second
)

// Client handles pro.nfl.com API requests. The bearer token is passed
// through as given; acquiring it is the operator's problem.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a new API client. An empty baseURL uses the production host.
func New(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// GameMetadata fetches the schedules/game payload for one game.
func (c *Client) GameMetadata(ctx context.Context, gameID string) (*GameMetadata, error) {
	url := fmt.Sprintf("%s/api/schedules/game?gameId=%s", c.baseURL, gameID)

	var meta GameMetadata
	if err := c.fetch(ctx, url, &meta); err != nil {
		return nil, fmt.Errorf("fetching game metadata for %s: %w", gameID, err)
	}
	return &meta, nil
}

// Standings fetches the raw standings payload for a season. It stays
// untyped because the whole document is stored as game metadata.
func (c *Client) Standings(ctx context.Context, season int, seasonType string) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s/api/schedules/standings?season=%d&seasonType=%s", c.baseURL, season, seasonType)

	var standings map[string]interface{}
	if err := c.fetch(ctx, url, &standings); err != nil {
		return nil, fmt.Errorf("fetching standings for %d %s: %w", season, seasonType, err)
	}
	return standings, nil
}

// LiveScores fetches the scores feed for a week.
func (c *Client) LiveScores(ctx context.Context, season int, seasonType, week string) (*LiveScoresResponse, error) {
	url := fmt.Sprintf("%s/api/scores/live/games?season=%d&seasonType=%s&week=%s",
		c.baseURL, season, seasonType, weekNumber(week))

	var scores LiveScoresResponse
	if err := c.fetch(ctx, url, &scores); err != nil {
		return nil, fmt.Errorf("fetching live scores for %d %s %s: %w", season, seasonType, week, err)
	}
	return &scores, nil
}

// WeekOdds fetches the odds snapshot for a week.
func (c *Client) WeekOdds(ctx context.Context, season int, seasonType, week string) (*OddsResponse, error) {
	url := fmt.Sprintf("%s/api/schedules/week/odds?season=%d&seasonType=%s&week=%s",
		c.baseURL, season, seasonType, weekNumber(week))

	var odds OddsResponse
	if err := c.fetch(ctx, url, &odds); err != nil {
		return nil, fmt.Errorf("fetching odds for %d %s %s: %w", season, seasonType, week, err)
	}
	return &odds, nil
}

// weekNumber strips the WEEK_ prefix the film URLs use; the API wants the
// bare number.
func weekNumber(week string) string {
	return strings.TrimPrefix(week, "WEEK_")
}

// fetch GETs a URL and decodes the JSON body, retrying transient failures
// with a fixed delay.
func (c *Client) fetch(ctx context.Context, url string, out interface{}) error {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if attempt > 1 {
			log.Printf("[pro-client] retry %d/%d for %s", attempt, maxRetries, url)
			select {
			case <-time.After(retryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = c.fetchOnce(ctx, url, out)
		if lastErr == nil {
			return nil
		}
	}

	return lastErr
}

func (c *Client) fetchOnce(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w (body: %s)", err, truncate(body, 200))
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
