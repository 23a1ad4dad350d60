package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fortuna/gridiron/internal/store"
)

// gameColumns is the full column list of the games table, in the order
// gameFields and gameScanTargets use it.
var gameColumns = []string{
	"game_id", "season", "season_type", "week", "status", "display_status",
	"game_state", "attendance", "gamebook_url", "game_date", "game_time", "network",
	"weather", "weather_temperature", "weather_wind_speed", "weather_wind_direction",
	"weather_precipitation", "weather_humidity", "weather_conditions",
	"venue_name", "venue_city", "venue_state", "venue_roof_type",
	"home_team_id", "home_team_name", "home_team_nickname", "home_team_abbreviation",
	"away_team_id", "away_team_name", "away_team_nickname", "away_team_abbreviation",
	"home_score_q1", "home_score_q2", "home_score_q3", "home_score_q4", "home_score_ot", "home_score_total",
	"away_score_q1", "away_score_q2", "away_score_q3", "away_score_q4", "away_score_ot", "away_score_total",
	"current_quarter", "current_clock", "current_down", "current_distance",
	"current_yard_line", "is_red_zone", "is_goal_to_go",
	"moneyline_home", "moneyline_away",
	"spread_home_handicap", "spread_away_handicap", "spread_home_price", "spread_away_price",
	"total_over_handicap", "total_under_handicap", "total_over_price", "total_under_price",
	"odds_updated_at",
	"home_team_wins", "home_team_losses", "home_team_win_streak",
	"away_team_wins", "away_team_losses", "away_team_win_streak",
	"historical_stats",
}

// placeholders renders "$1, $2, ... $n".
func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

// gameFields returns insert values matching gameColumns.
func gameFields(g *store.Game) []interface{} {
	return []interface{}{
		g.GameID, g.Season, g.SeasonType, g.Week, g.Status, g.DisplayStatus,
		g.GameState, g.Attendance, g.GamebookURL, g.GameDate, g.GameTime, g.Network,
		g.Weather, g.WeatherTemperature, g.WeatherWindSpeed, g.WeatherWindDirection,
		g.WeatherPrecipitation, g.WeatherHumidity, g.WeatherConditions,
		g.VenueName, g.VenueCity, g.VenueState, g.VenueRoofType,
		g.HomeTeamID, g.HomeTeamName, g.HomeTeamNickname, g.HomeTeamAbbreviation,
		g.AwayTeamID, g.AwayTeamName, g.AwayTeamNickname, g.AwayTeamAbbreviation,
		g.HomeScoreQ1, g.HomeScoreQ2, g.HomeScoreQ3, g.HomeScoreQ4, g.HomeScoreOT, g.HomeScoreTotal,
		g.AwayScoreQ1, g.AwayScoreQ2, g.AwayScoreQ3, g.AwayScoreQ4, g.AwayScoreOT, g.AwayScoreTotal,
		g.CurrentQuarter, g.CurrentClock, g.CurrentDown, g.CurrentDistance,
		g.CurrentYardLine, g.IsRedZone, g.IsGoalToGo,
		g.MoneylineHome, g.MoneylineAway,
		g.SpreadHomeHandicap, g.SpreadAwayHandicap, g.SpreadHomePrice, g.SpreadAwayPrice,
		g.TotalOverHandicap, g.TotalUnderHandicap, g.TotalOverPrice, g.TotalUnderPrice,
		g.OddsUpdatedAt,
		g.HomeTeamWins, g.HomeTeamLosses, g.HomeTeamWinStreak,
		g.AwayTeamWins, g.AwayTeamLosses, g.AwayTeamWinStreak,
		g.HistoricalStats,
	}
}

// gameScanTargets returns scan destinations matching gameColumns plus the
// created/updated timestamps.
func gameScanTargets(g *store.Game) []interface{} {
	return []interface{}{
		&g.GameID, &g.Season, &g.SeasonType, &g.Week, &g.Status, &g.DisplayStatus,
		&g.GameState, &g.Attendance, &g.GamebookURL, &g.GameDate, &g.GameTime, &g.Network,
		&g.Weather, &g.WeatherTemperature, &g.WeatherWindSpeed, &g.WeatherWindDirection,
		&g.WeatherPrecipitation, &g.WeatherHumidity, &g.WeatherConditions,
		&g.VenueName, &g.VenueCity, &g.VenueState, &g.VenueRoofType,
		&g.HomeTeamID, &g.HomeTeamName, &g.HomeTeamNickname, &g.HomeTeamAbbreviation,
		&g.AwayTeamID, &g.AwayTeamName, &g.AwayTeamNickname, &g.AwayTeamAbbreviation,
		&g.HomeScoreQ1, &g.HomeScoreQ2, &g.HomeScoreQ3, &g.HomeScoreQ4, &g.HomeScoreOT, &g.HomeScoreTotal,
		&g.AwayScoreQ1, &g.AwayScoreQ2, &g.AwayScoreQ3, &g.AwayScoreQ4, &g.AwayScoreOT, &g.AwayScoreTotal,
		&g.CurrentQuarter, &g.CurrentClock, &g.CurrentDown, &g.CurrentDistance,
		&g.CurrentYardLine, &g.IsRedZone, &g.IsGoalToGo,
		&g.MoneylineHome, &g.MoneylineAway,
		&g.SpreadHomeHandicap, &g.SpreadAwayHandicap, &g.SpreadHomePrice, &g.SpreadAwayPrice,
		&g.TotalOverHandicap, &g.TotalUnderHandicap, &g.TotalOverPrice, &g.TotalUnderPrice,
		&g.OddsUpdatedAt,
		&g.HomeTeamWins, &g.HomeTeamLosses, &g.HomeTeamWinStreak,
		&g.AwayTeamWins, &g.AwayTeamLosses, &g.AwayTeamWinStreak,
		&g.HistoricalStats,
		&g.CreatedAt, &g.UpdatedAt,
	}
}

// GameRepository handles game data access
type GameRepository struct {
	db *store.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *store.Database) *GameRepository {
	return &GameRepository{db: db}
}

// selectGames is the shared SELECT prefix for game queries.
var selectGames = fmt.Sprintf(
	"SELECT %s, created_at, updated_at FROM games",
	strings.Join(gameColumns, ", "),
)

// GetByID finds a game by its vendor-assigned ID.
func (r *GameRepository) GetByID(ctx context.Context, gameID string) (*store.Game, error) {
	query := selectGames + " WHERE game_id = $1"

	game := &store.Game{}
	err := r.db.DB().QueryRowContext(ctx, query, gameID).Scan(gameScanTargets(game)...)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying game: %w", err)
	}

	return game, nil
}

// GameFilter narrows List results. Zero values mean "no filter".
type GameFilter struct {
	Season     int
	SeasonType string
	Week       string
	TeamID     string
	Limit      int
}

// List returns games matching the filter, newest first.
func (r *GameRepository) List(ctx context.Context, filter GameFilter) ([]*store.Game, error) {
	query := selectGames
	var conditions []string
	var args []interface{}

	if filter.Season != 0 {
		args = append(args, filter.Season)
		conditions = append(conditions, fmt.Sprintf("season = $%d", len(args)))
	}
	if filter.SeasonType != "" {
		args = append(args, filter.SeasonType)
		conditions = append(conditions, fmt.Sprintf("season_type = $%d", len(args)))
	}
	if filter.Week != "" {
		args = append(args, filter.Week)
		conditions = append(conditions, fmt.Sprintf("week = $%d", len(args)))
	}
	if filter.TeamID != "" {
		args = append(args, filter.TeamID)
		conditions = append(conditions, fmt.Sprintf("(home_team_id = $%d OR away_team_id = $%d)", len(args), len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY game_date DESC, game_time DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// GetLiveGames returns games currently marked in progress.
func (r *GameRepository) GetLiveGames(ctx context.Context) ([]*store.Game, error) {
	query := selectGames + " WHERE status = 'in_progress' ORDER BY updated_at DESC"

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying live games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// UpsertTx inserts or updates a game row inside the caller's transaction.
// The caller owns commit/rollback; a full game save spans this plus the
// play delete/insert and player upserts.
func (r *GameRepository) UpsertTx(ctx context.Context, tx *sql.Tx, game *store.Game) error {
	updates := make([]string, 0, len(gameColumns)-1)
	for _, col := range gameColumns[1:] {
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	query := fmt.Sprintf(`
		INSERT INTO games (%s)
		VALUES (%s)
		ON CONFLICT (game_id) DO UPDATE SET
			%s,
			updated_at = NOW()
	`, strings.Join(gameColumns, ", "), placeholders(len(gameColumns)), strings.Join(updates, ",\n\t\t\t"))

	if _, err := tx.ExecContext(ctx, query, gameFields(game)...); err != nil {
		return fmt.Errorf("upserting game: %w", err)
	}

	return nil
}

// scanGames scans multiple game rows
func scanGames(rows *sql.Rows) ([]*store.Game, error) {
	var games []*store.Game
	for rows.Next() {
		game := &store.Game{}
		if err := rows.Scan(gameScanTargets(game)...); err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, game)
	}

	return games, rows.Err()
}
