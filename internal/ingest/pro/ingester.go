package pro

import (
	"context"
	"fmt"
	"log"

	"github.com/fortuna/gridiron/internal/nfl"
	"github.com/fortuna/gridiron/internal/publisher"
	"github.com/fortuna/gridiron/internal/service"
)

// PlaySource supplies a game's play-by-play records. The web scraper
// implements it; a nil source ingests games without plays.
type PlaySource interface {
	FetchPlays(ctx context.Context, season int, seasonType, week, gameID string) ([]nfl.Play, error)
}

// Ingester pulls a week's games from the vendor feeds and hands each one
// to the game service.
type Ingester struct {
	client    *Client
	games     *service.GameService
	plays     PlaySource
	publisher *publisher.RedisPublisher
}

// NewIngester creates a new ingester. plays and pub may be nil.
func NewIngester(client *Client, games *service.GameService, plays PlaySource, pub *publisher.RedisPublisher) *Ingester {
	return &Ingester{
		client:    client,
		games:     games,
		plays:     plays,
		publisher: pub,
	}
}

// WeekResult summarizes one week's ingestion.
type WeekResult struct {
	Season     int
	SeasonType string
	Week       string
	Total      int
	Saved      int
	Failed     int
}

// IngestWeek fetches and saves every game in a week. A failing game is
// logged and skipped; the week continues.
func (i *Ingester) IngestWeek(ctx context.Context, season int, seasonType, week string) (*WeekResult, error) {
	log.Printf("[ingest] fetching %d %s %s", season, seasonType, week)

	scores, err := i.client.LiveScores(ctx, season, seasonType, week)
	if err != nil {
		return nil, fmt.Errorf("fetching week scores: %w", err)
	}

	odds, err := i.client.WeekOdds(ctx, season, seasonType, week)
	if err != nil {
		log.Printf("[ingest] warning: odds unavailable for %d %s %s: %v", season, seasonType, week, err)
	}

	standings, err := i.client.Standings(ctx, season, seasonType)
	if err != nil {
		log.Printf("[ingest] warning: standings unavailable for %d %s: %v", season, seasonType, err)
	}

	result := &WeekResult{
		Season:     season,
		SeasonType: seasonType,
		Week:       week,
		Total:      len(scores.Games),
	}

	for _, live := range scores.Games {
		if live.GameID == "" {
			log.Printf("[ingest] skipping game without id in %d %s %s", season, seasonType, week)
			result.Failed++
			continue
		}

		if err := i.ingestGame(ctx, season, seasonType, week, live, odds, standings); err != nil {
			log.Printf("[ingest] error ingesting game %s: %v", live.GameID, err)
			result.Failed++
		} else {
			result.Saved++
		}

		i.publishProgress(ctx, result)
	}

	log.Printf("[ingest] ✓ %d %s %s: %d/%d games saved", season, seasonType, week, result.Saved, result.Total)
	return result, nil
}

// IngestGame fetches and saves a single game by id, locating it on the
// week's scores feed.
func (i *Ingester) IngestGame(ctx context.Context, season int, seasonType, week, gameID string) error {
	scores, err := i.client.LiveScores(ctx, season, seasonType, week)
	if err != nil {
		return fmt.Errorf("fetching week scores: %w", err)
	}

	var live *LiveGame
	for idx := range scores.Games {
		if scores.Games[idx].GameID == gameID {
			live = &scores.Games[idx]
			break
		}
	}
	if live == nil {
		return fmt.Errorf("game %s not found in %d %s %s", gameID, season, seasonType, week)
	}

	odds, err := i.client.WeekOdds(ctx, season, seasonType, week)
	if err != nil {
		log.Printf("[ingest] warning: odds unavailable for game %s: %v", gameID, err)
	}

	standings, err := i.client.Standings(ctx, season, seasonType)
	if err != nil {
		log.Printf("[ingest] warning: standings unavailable for game %s: %v", gameID, err)
	}

	return i.ingestGame(ctx, season, seasonType, week, *live, odds, standings)
}

func (i *Ingester) ingestGame(ctx context.Context, season int, seasonType, week string, live LiveGame, odds *OddsResponse, standings map[string]interface{}) error {
	meta, err := i.client.GameMetadata(ctx, live.GameID)
	if err != nil {
		return fmt.Errorf("fetching metadata: %w", err)
	}

	gameOdds := MatchOdds(odds, meta.HomeTeam.Abbr, meta.VisitorTeam.Abbr)
	game := BuildGame(season, seasonType, week, live, meta, gameOdds, standings)

	if i.plays != nil {
		plays, err := i.plays.FetchPlays(ctx, season, seasonType, week, live.GameID)
		if err != nil {
			log.Printf("[ingest] warning: plays unavailable for %s: %v", live.GameID, err)
		} else {
			game.Plays = plays
		}
	}

	return i.games.SaveGame(ctx, game)
}

func (i *Ingester) publishProgress(ctx context.Context, result *WeekResult) {
	if i.publisher == nil {
		return
	}
	event := publisher.IngestProgressEvent{
		Season:      result.Season,
		SeasonType:  result.SeasonType,
		Week:        result.Week,
		GamesTotal:  result.Total,
		GamesDone:   result.Saved,
		GamesFailed: result.Failed,
	}
	if err := i.publisher.PublishIngestProgress(ctx, event); err != nil {
		log.Printf("[ingest] warning: publishing progress: %v", err)
	}
}
