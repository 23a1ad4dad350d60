package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fortuna/gridiron/internal/ingest/pro"
)

// Orchestrator manages scheduled tasks for data ingestion
type Orchestrator struct {
	client   *pro.Client
	ingester *pro.Ingester
	config   *Config
	cancel   context.CancelFunc

	// Task coordination
	liveCtx      context.Context
	liveCancel   context.CancelFunc
	weeklyCtx    context.Context
	weeklyCancel context.CancelFunc

	// Game ids seen in progress, awaiting their final ingest
	inProgress map[string]bool
}

// Config holds scheduler configuration
type Config struct {
	LivePollInterval      time.Duration // Default: 30s
	WeeklyIngestionDay    time.Weekday  // Default: Tuesday (all games final)
	WeeklyIngestionHour   int           // Default: 5 (5 AM)
	Season                int           // e.g., 2025
	SeasonType            string        // REG or POST
	CurrentWeek           string        // e.g., "WEEK_3"
	EnableLivePolling     bool          // Default: true
	EnableWeeklyIngestion bool          // Default: true
	MaxRetries            int           // Default: 3
	RetryDelay            time.Duration // Default: 5s
}

// DefaultConfig returns default scheduler configuration
func DefaultConfig() *Config {
	return &Config{
		LivePollInterval:      30 * time.Second,
		WeeklyIngestionDay:    time.Tuesday,
		WeeklyIngestionHour:   5,
		Season:                2025,
		SeasonType:            "REG",
		CurrentWeek:           "WEEK_1",
		EnableLivePolling:     true,
		EnableWeeklyIngestion: true,
		MaxRetries:            3,
		RetryDelay:            5 * time.Second,
	}
}

// NewOrchestrator creates a new scheduler orchestrator
func NewOrchestrator(client *pro.Client, ingester *pro.Ingester, config *Config) *Orchestrator {
	if config == nil {
		config = DefaultConfig()
	}

	return &Orchestrator{
		client:     client,
		ingester:   ingester,
		config:     config,
		inProgress: make(map[string]bool),
	}
}

// Start begins all scheduled tasks and blocks until the context is
// cancelled.
func (o *Orchestrator) Start(ctx context.Context) {
	log.Println("╔════════════════════════════════════════╗")
	log.Println("║   Gridiron Scheduler Orchestrator      ║")
	log.Println("╚════════════════════════════════════════╝")
	log.Printf("Live polling: %v (interval: %v)", o.config.EnableLivePolling, o.config.LivePollInterval)
	log.Printf("Weekly ingestion: %v (%s %02d:00)", o.config.EnableWeeklyIngestion, o.config.WeeklyIngestionDay, o.config.WeeklyIngestionHour)
	log.Printf("Season: %d %s, week %s", o.config.Season, o.config.SeasonType, o.config.CurrentWeek)
	log.Println()

	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	if o.config.EnableLivePolling {
		o.liveCtx, o.liveCancel = context.WithCancel(ctx)
		go o.runLivePolling(o.liveCtx)
	}

	if o.config.EnableWeeklyIngestion {
		o.weeklyCtx, o.weeklyCancel = context.WithCancel(ctx)
		go o.runWeeklyIngestion(o.weeklyCtx)
	}

	<-ctx.Done()
	log.Println("Scheduler orchestrator stopping...")
}

// runLivePolling polls the live scores feed for in-progress games
func (o *Orchestrator) runLivePolling(ctx context.Context) {
	log.Printf("→ Live polling started (interval: %v)", o.config.LivePollInterval)

	ticker := time.NewTicker(o.config.LivePollInterval)
	defer ticker.Stop()

	consecutiveErrors := 0
	maxConsecutiveErrors := 5

	// Run immediately on start
	o.pollLiveGamesWithRetry(ctx, &consecutiveErrors, maxConsecutiveErrors)

	for {
		select {
		case <-ctx.Done():
			log.Println("→ Live polling stopped")
			return
		case <-ticker.C:
			o.pollLiveGamesWithRetry(ctx, &consecutiveErrors, maxConsecutiveErrors)
		}
	}
}

// pollLiveGamesWithRetry polls the scores feed with retry logic
func (o *Orchestrator) pollLiveGamesWithRetry(ctx context.Context, consecutiveErrors *int, maxConsecutiveErrors int) {
	var scores *pro.LiveScoresResponse
	var err error

	for attempt := 1; attempt <= o.config.MaxRetries; attempt++ {
		scores, err = o.client.LiveScores(ctx, o.config.Season, o.config.SeasonType, o.config.CurrentWeek)
		if err == nil {
			*consecutiveErrors = 0
			break
		}

		log.Printf("  ⚠️  Polling attempt %d/%d failed: %v", attempt, o.config.MaxRetries, err)

		if attempt < o.config.MaxRetries {
			select {
			case <-ctx.Done():
				return
			case <-time.After(o.config.RetryDelay):
			}
		}
	}

	if err != nil {
		*consecutiveErrors++
		log.Printf("  ❌ All %d retry attempts failed. Consecutive errors: %d/%d",
			o.config.MaxRetries, *consecutiveErrors, maxConsecutiveErrors)

		// Back off when the feed keeps failing
		if *consecutiveErrors >= maxConsecutiveErrors {
			log.Printf("  ⚠️  High error rate detected. Slowing polling...")
			time.Sleep(20 * time.Second)
		}
		return
	}

	o.processLiveScores(ctx, scores)
}

// processLiveScores ingests in-progress games and games that just
// went final. A final game is ingested once more so its complete play
// set and final score land, then dropped from tracking.
func (o *Orchestrator) processLiveScores(ctx context.Context, scores *pro.LiveScoresResponse) {
	liveCount := 0

	for _, game := range scores.Games {
		if game.GameID == "" {
			continue
		}

		switch {
		case isInProgress(game.Phase):
			o.inProgress[game.GameID] = true
			liveCount++
			if err := o.ingester.IngestGame(ctx, o.config.Season, o.config.SeasonType, o.config.CurrentWeek, game.GameID); err != nil {
				log.Printf("  ⚠️  Failed to ingest live game %s: %v", game.GameID, err)
			}

		case isFinal(game.Phase) && o.inProgress[game.GameID]:
			delete(o.inProgress, game.GameID)
			if err := o.ingester.IngestGame(ctx, o.config.Season, o.config.SeasonType, o.config.CurrentWeek, game.GameID); err != nil {
				log.Printf("  ⚠️  Failed to ingest final game %s: %v", game.GameID, err)
			} else {
				log.Printf("  ✓ Final ingest complete for %s", game.GameID)
			}
		}
	}

	if liveCount > 0 {
		log.Printf("  ✓ Refreshed %d live games", liveCount)
	}
}

func isInProgress(phase string) bool {
	switch strings.ToUpper(phase) {
	case "INGAME", "HALFTIME", "SUSPENDED":
		return true
	}
	return false
}

func isFinal(phase string) bool {
	return strings.HasPrefix(strings.ToUpper(phase), "FINAL")
}

// runWeeklyIngestion re-ingests the current week once all its games
// are final, so late stat corrections are captured.
func (o *Orchestrator) runWeeklyIngestion(ctx context.Context) {
	log.Printf("→ Weekly ingestion scheduler started (%s %02d:00)", o.config.WeeklyIngestionDay, o.config.WeeklyIngestionHour)

	for {
		waitDuration := time.Until(o.nextWeeklyRun(time.Now()))
		log.Printf("  Next weekly ingestion in %v", waitDuration.Round(time.Second))

		select {
		case <-ctx.Done():
			log.Println("→ Weekly ingestion scheduler stopped")
			return
		case <-time.After(waitDuration):
			log.Println("═══ Weekly Ingestion Starting ═══")
			o.runWeeklyIngestionTask(ctx)
			log.Println("═══ Weekly Ingestion Complete ═══")
		}
	}
}

// nextWeeklyRun finds the next configured weekday/hour after now.
func (o *Orchestrator) nextWeeklyRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), o.config.WeeklyIngestionHour, 0, 0, 0, now.Location())
	for next.Weekday() != o.config.WeeklyIngestionDay || !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// runWeeklyIngestionTask performs the weekly full-week ingestion
func (o *Orchestrator) runWeeklyIngestionTask(ctx context.Context) {
	startTime := time.Now()

	result, err := o.ingester.IngestWeek(ctx, o.config.Season, o.config.SeasonType, o.config.CurrentWeek)
	if err != nil {
		log.Printf("❌ Weekly ingestion failed: %v", err)
		return
	}

	duration := time.Since(startTime)
	log.Printf("✓ Weekly ingestion complete in %v: %d/%d games saved", duration.Round(time.Second), result.Saved, result.Total)
}

// TriggerWeekIngestion manually ingests a specific week
func (o *Orchestrator) TriggerWeekIngestion(ctx context.Context, season int, seasonType, week string) error {
	log.Printf("Manual ingestion triggered for %d %s %s", season, seasonType, week)

	result, err := o.ingester.IngestWeek(ctx, season, seasonType, week)
	if err != nil {
		return fmt.Errorf("manual ingestion: %w", err)
	}

	log.Printf("✓ Manual ingestion complete: %d/%d games saved", result.Saved, result.Total)
	return nil
}

// SetCurrentWeek advances the week the live poller and weekly pass
// operate on.
func (o *Orchestrator) SetCurrentWeek(week string) {
	o.config.CurrentWeek = week
}

// GetStatus returns current scheduler status
func (o *Orchestrator) GetStatus() map[string]interface{} {
	return map[string]interface{}{
		"live_polling_enabled":     o.config.EnableLivePolling,
		"live_poll_interval":       o.config.LivePollInterval.String(),
		"weekly_ingestion_enabled": o.config.EnableWeeklyIngestion,
		"weekly_ingestion_day":     o.config.WeeklyIngestionDay.String(),
		"season":                   o.config.Season,
		"season_type":              o.config.SeasonType,
		"current_week":             o.config.CurrentWeek,
	}
}

// Stop gracefully stops the scheduler
func (o *Orchestrator) Stop() {
	log.Println("Stopping scheduler orchestrator...")

	if o.liveCancel != nil {
		o.liveCancel()
	}
	if o.weeklyCancel != nil {
		o.weeklyCancel()
	}
	if o.cancel != nil {
		o.cancel()
	}

	log.Println("✓ Scheduler orchestrator stopped")
}
