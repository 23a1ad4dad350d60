package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

// HistoryRepository serves the queries the season-to-date aggregator
// scans: a team's prior games, their plays, and head-to-head meetings.
type HistoryRepository struct {
	db *store.Database
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *store.Database) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// HistoryPlay is the slice of a play row the aggregator reads.
type HistoryPlay struct {
	PossessionTeamID sql.NullString
	PlayType         sql.NullString
	Down             sql.NullInt32
	YardsGained      sql.NullInt32
	IsFirstDown      sql.NullBool
	IsRedzonePlay    sql.NullBool
	IsTouchdownPass  sql.NullBool
	IsTouchdownRun   sql.NullBool
	IsTurnover       sql.NullBool
	IsSack           sql.NullBool
}

// PriorGames returns a team's games in the season strictly before the
// given date, newest first. Dates are vendor ISO strings, so string
// comparison orders correctly.
func (r *HistoryRepository) PriorGames(ctx context.Context, teamID string, season int, beforeDate string) ([]*store.Game, error) {
	query := selectGames + `
		WHERE (home_team_id = $1 OR away_team_id = $1)
			AND season = $2
			AND game_date < $3
		ORDER BY game_date DESC
	`

	rows, err := r.db.DB().QueryContext(ctx, query, teamID, season, beforeDate)
	if err != nil {
		return nil, fmt.Errorf("querying prior games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// PlaysForGame returns the aggregator's play slice for one game.
func (r *HistoryRepository) PlaysForGame(ctx context.Context, gameID string) ([]HistoryPlay, error) {
	query := `
		SELECT possession_team_id, play_type, down, yards_gained, is_first_down,
			is_redzone_play, is_touchdown_pass, is_touchdown_run, is_turnover, is_sack
		FROM plays
		WHERE game_id = $1
	`

	rows, err := r.db.DB().QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying history plays: %w", err)
	}
	defer rows.Close()

	var plays []HistoryPlay
	for rows.Next() {
		var p HistoryPlay
		err := rows.Scan(
			&p.PossessionTeamID, &p.PlayType, &p.Down, &p.YardsGained, &p.IsFirstDown,
			&p.IsRedzonePlay, &p.IsTouchdownPass, &p.IsTouchdownRun, &p.IsTurnover, &p.IsSack,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning history play: %w", err)
		}
		plays = append(plays, p)
	}

	return plays, rows.Err()
}

// HeadToHeadGames returns the last up-to-10 meetings between two clubs in
// either home/away order, strictly before the given date, newest first.
func (r *HistoryRepository) HeadToHeadGames(ctx context.Context, homeTeamID, awayTeamID, beforeDate string) ([]*store.Game, error) {
	query := selectGames + `
		WHERE ((home_team_id = $1 AND away_team_id = $2)
			OR (home_team_id = $2 AND away_team_id = $1))
			AND game_date < $3
		ORDER BY game_date DESC
		LIMIT 10
	`

	rows, err := r.db.DB().QueryContext(ctx, query, homeTeamID, awayTeamID, beforeDate)
	if err != nil {
		return nil, fmt.Errorf("querying head-to-head games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}
