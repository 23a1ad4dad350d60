package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fortuna/gridiron/internal/store"
)

// playColumns lists every plays column except the serial id and the
// timestamps, in the order playFields and playScanTargets use.
var playColumns = []string{
	"game_id", "play_id", "sequence", "quarter", "down", "yards_to_go",
	"yardline", "game_clock", "play_type", "play_description",
	"possession_team_id", "defense_team_id",
	"pre_snap_home_score", "pre_snap_visitor_score", "home_score", "visitor_score",
	"is_big_play", "is_end_quarter", "is_goal_to_go", "is_no_play", "is_penalty",
	"is_scoring", "is_st_play", "is_change_of_possession", "is_redzone_play",
	"expected_points", "expected_points_added",
	"pre_snap_home_win_probability", "pre_snap_visitor_win_probability",
	"post_play_home_win_probability", "post_play_visitor_win_probability",
	"home_timeouts_left", "visitor_timeouts_left",
	"play_state", "play_type_code", "yardline_number", "yardline_side",
	"absolute_yardline_number", "play_direction", "time_of_day_utc",
	"offensive_formation", "yards_gained", "pass_length", "pass_location", "run_direction",
	"is_complete_pass", "is_touchdown_pass", "is_interception", "pass_target", "pass_defender",
	"is_sack", "sack_yards", "quarterback_hit", "quarterback_scramble",
	"run_gap", "yards_after_contact", "is_touchdown_run",
	"is_fumble", "fumble_recovered_by", "fumble_forced_by",
	"is_first_down", "is_turnover", "field_position_gained",
	"is_penalty_on_play", "penalty_type", "penalty_team", "penalty_player",
	"penalty_yards", "penalty_declined", "penalty_offset", "penalty_no_play",
	"is_field_goal", "field_goal_distance", "field_goal_result",
	"is_punt", "punt_distance", "punt_return_yards",
	"is_kickoff", "kickoff_return_yards", "is_touchback",
	"defensive_formation", "defensive_package", "defensive_db_count",
	"defensive_lb_count", "defensive_dl_count", "defensive_box_count",
	"score_differential", "time_remaining_half", "time_remaining_game",
	"is_two_minute_drill", "is_must_score_situation",
	"drive_number", "drive_play_number", "drive_start_yardline",
	"drive_time_of_possession", "drive_plays_so_far",
	"is_winning_team", "is_losing_team", "is_comeback_situation",
	"is_blowout_situation", "game_competitive_index",
	"possessing_team_last_score", "opposing_team_last_score",
	"possessing_team_turnovers", "opposing_team_turnovers", "turnover_margin",
	"possessing_team_timeouts", "opposing_team_timeouts", "timeout_advantage",
	"weather_impact_score", "is_indoor_game",
	"field_position_category", "yards_from_own_endzone", "yards_from_opponent_endzone",
	"play_stats_json", "home_personnel_json", "away_personnel_json",
}

func playFields(p *store.Play) []interface{} {
	return []interface{}{
		p.GameID, p.PlayID, p.Sequence, p.Quarter, p.Down, p.YardsToGo,
		p.Yardline, p.GameClock, p.PlayType, p.PlayDescription,
		p.PossessionTeamID, p.DefenseTeamID,
		p.PreSnapHomeScore, p.PreSnapVisitorScore, p.HomeScore, p.VisitorScore,
		p.IsBigPlay, p.IsEndQuarter, p.IsGoalToGo, p.IsNoPlay, p.IsPenalty,
		p.IsScoring, p.IsSTPlay, p.IsChangeOfPossession, p.IsRedzonePlay,
		p.ExpectedPoints, p.ExpectedPointsAdded,
		p.PreSnapHomeWinProbability, p.PreSnapVisitorWinProbability,
		p.PostPlayHomeWinProbability, p.PostPlayVisitorWinProbability,
		p.HomeTimeoutsLeft, p.VisitorTimeoutsLeft,
		p.PlayState, p.PlayTypeCode, p.YardlineNumber, p.YardlineSide,
		p.AbsoluteYardlineNumber, p.PlayDirection, p.TimeOfDayUTC,
		p.OffensiveFormation, p.YardsGained, p.PassLength, p.PassLocation, p.RunDirection,
		p.IsCompletePass, p.IsTouchdownPass, p.IsInterception, p.PassTarget, p.PassDefender,
		p.IsSack, p.SackYards, p.QuarterbackHit, p.QuarterbackScramble,
		p.RunGap, p.YardsAfterContact, p.IsTouchdownRun,
		p.IsFumble, p.FumbleRecoveredBy, p.FumbleForcedBy,
		p.IsFirstDown, p.IsTurnover, p.FieldPositionGained,
		p.IsPenaltyOnPlay, p.PenaltyType, p.PenaltyTeam, p.PenaltyPlayer,
		p.PenaltyYards, p.PenaltyDeclined, p.PenaltyOffset, p.PenaltyNoPlay,
		p.IsFieldGoal, p.FieldGoalDistance, p.FieldGoalResult,
		p.IsPunt, p.PuntDistance, p.PuntReturnYards,
		p.IsKickoff, p.KickoffReturnYards, p.IsTouchback,
		p.DefensiveFormation, p.DefensivePackage, p.DefensiveDBCount,
		p.DefensiveLBCount, p.DefensiveDLCount, p.DefensiveBoxCount,
		p.ScoreDifferential, p.TimeRemainingHalf, p.TimeRemainingGame,
		p.IsTwoMinuteDrill, p.IsMustScoreSituation,
		p.DriveNumber, p.DrivePlayNumber, p.DriveStartYardline,
		p.DriveTimeOfPossession, p.DrivePlaysSoFar,
		p.IsWinningTeam, p.IsLosingTeam, p.IsComebackSituation,
		p.IsBlowoutSituation, p.GameCompetitiveIndex,
		p.PossessingTeamLastScore, p.OpposingTeamLastScore,
		p.PossessingTeamTurnovers, p.OpposingTeamTurnovers, p.TurnoverMargin,
		p.PossessingTeamTimeouts, p.OpposingTeamTimeouts, p.TimeoutAdvantage,
		p.WeatherImpactScore, p.IsIndoorGame,
		p.FieldPositionCategory, p.YardsFromOwnEndzone, p.YardsFromOpponentEndzone,
		p.PlayStatsJSON, p.HomePersonnelJSON, p.AwayPersonnelJSON,
	}
}

func playScanTargets(p *store.Play) []interface{} {
	return []interface{}{
		&p.ID,
		&p.GameID, &p.PlayID, &p.Sequence, &p.Quarter, &p.Down, &p.YardsToGo,
		&p.Yardline, &p.GameClock, &p.PlayType, &p.PlayDescription,
		&p.PossessionTeamID, &p.DefenseTeamID,
		&p.PreSnapHomeScore, &p.PreSnapVisitorScore, &p.HomeScore, &p.VisitorScore,
		&p.IsBigPlay, &p.IsEndQuarter, &p.IsGoalToGo, &p.IsNoPlay, &p.IsPenalty,
		&p.IsScoring, &p.IsSTPlay, &p.IsChangeOfPossession, &p.IsRedzonePlay,
		&p.ExpectedPoints, &p.ExpectedPointsAdded,
		&p.PreSnapHomeWinProbability, &p.PreSnapVisitorWinProbability,
		&p.PostPlayHomeWinProbability, &p.PostPlayVisitorWinProbability,
		&p.HomeTimeoutsLeft, &p.VisitorTimeoutsLeft,
		&p.PlayState, &p.PlayTypeCode, &p.YardlineNumber, &p.YardlineSide,
		&p.AbsoluteYardlineNumber, &p.PlayDirection, &p.TimeOfDayUTC,
		&p.OffensiveFormation, &p.YardsGained, &p.PassLength, &p.PassLocation, &p.RunDirection,
		&p.IsCompletePass, &p.IsTouchdownPass, &p.IsInterception, &p.PassTarget, &p.PassDefender,
		&p.IsSack, &p.SackYards, &p.QuarterbackHit, &p.QuarterbackScramble,
		&p.RunGap, &p.YardsAfterContact, &p.IsTouchdownRun,
		&p.IsFumble, &p.FumbleRecoveredBy, &p.FumbleForcedBy,
		&p.IsFirstDown, &p.IsTurnover, &p.FieldPositionGained,
		&p.IsPenaltyOnPlay, &p.PenaltyType, &p.PenaltyTeam, &p.PenaltyPlayer,
		&p.PenaltyYards, &p.PenaltyDeclined, &p.PenaltyOffset, &p.PenaltyNoPlay,
		&p.IsFieldGoal, &p.FieldGoalDistance, &p.FieldGoalResult,
		&p.IsPunt, &p.PuntDistance, &p.PuntReturnYards,
		&p.IsKickoff, &p.KickoffReturnYards, &p.IsTouchback,
		&p.DefensiveFormation, &p.DefensivePackage, &p.DefensiveDBCount,
		&p.DefensiveLBCount, &p.DefensiveDLCount, &p.DefensiveBoxCount,
		&p.ScoreDifferential, &p.TimeRemainingHalf, &p.TimeRemainingGame,
		&p.IsTwoMinuteDrill, &p.IsMustScoreSituation,
		&p.DriveNumber, &p.DrivePlayNumber, &p.DriveStartYardline,
		&p.DriveTimeOfPossession, &p.DrivePlaysSoFar,
		&p.IsWinningTeam, &p.IsLosingTeam, &p.IsComebackSituation,
		&p.IsBlowoutSituation, &p.GameCompetitiveIndex,
		&p.PossessingTeamLastScore, &p.OpposingTeamLastScore,
		&p.PossessingTeamTurnovers, &p.OpposingTeamTurnovers, &p.TurnoverMargin,
		&p.PossessingTeamTimeouts, &p.OpposingTeamTimeouts, &p.TimeoutAdvantage,
		&p.WeatherImpactScore, &p.IsIndoorGame,
		&p.FieldPositionCategory, &p.YardsFromOwnEndzone, &p.YardsFromOpponentEndzone,
		&p.PlayStatsJSON, &p.HomePersonnelJSON, &p.AwayPersonnelJSON,
		&p.CreatedAt, &p.UpdatedAt,
	}
}

// PlayRepository handles play and play-stat data access
type PlayRepository struct {
	db *store.Database
}

// NewPlayRepository creates a new play repository
func NewPlayRepository(db *store.Database) *PlayRepository {
	return &PlayRepository{db: db}
}

var selectPlays = fmt.Sprintf(
	"SELECT id, %s, created_at, updated_at FROM plays",
	strings.Join(playColumns, ", "),
)

// DeleteByGameTx removes all plays for a game inside the caller's
// transaction. Re-ingestion is destructive-then-additive: every save
// deletes and reinserts the full play set, which keeps repeated runs
// idempotent. play_stats rows cascade.
func (r *PlayRepository) DeleteByGameTx(ctx context.Context, tx *sql.Tx, gameID string) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM plays WHERE game_id = $1", gameID); err != nil {
		return fmt.Errorf("deleting plays: %w", err)
	}
	return nil
}

// InsertTx inserts one play inside the caller's transaction and fills in
// its serial row id.
func (r *PlayRepository) InsertTx(ctx context.Context, tx *sql.Tx, play *store.Play) error {
	query := fmt.Sprintf(
		"INSERT INTO plays (%s) VALUES (%s) RETURNING id",
		strings.Join(playColumns, ", "), placeholders(len(playColumns)),
	)

	if err := tx.QueryRowContext(ctx, query, playFields(play)...).Scan(&play.ID); err != nil {
		return fmt.Errorf("inserting play %d/%d: %w", play.PlayID, play.Sequence, err)
	}

	return nil
}

// InsertStatTx inserts one player-attributed stat event for a play.
func (r *PlayRepository) InsertStatTx(ctx context.Context, tx *sql.Tx, stat *store.PlayStat) error {
	query := `
		INSERT INTO play_stats (play_row_id, game_id, club_code, player_name, stat_id, yards, gsis_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := tx.ExecContext(ctx, query,
		stat.PlayRowID, stat.GameID, stat.ClubCode, stat.PlayerName,
		stat.StatID, stat.Yards, stat.GSISID,
	)
	if err != nil {
		return fmt.Errorf("inserting play stat: %w", err)
	}

	return nil
}

// PlayFilter narrows GetByGame results. Zero values mean "no filter".
type PlayFilter struct {
	PlayType string
	Down     int
	Quarter  int
}

// GetByGame returns a game's plays in sequence order.
func (r *PlayRepository) GetByGame(ctx context.Context, gameID string, filter PlayFilter) ([]*store.Play, error) {
	query := selectPlays + " WHERE game_id = $1"
	args := []interface{}{gameID}

	if filter.PlayType != "" {
		args = append(args, filter.PlayType)
		query += fmt.Sprintf(" AND play_type = $%d", len(args))
	}
	if filter.Down != 0 {
		args = append(args, filter.Down)
		query += fmt.Sprintf(" AND down = $%d", len(args))
	}
	if filter.Quarter != 0 {
		args = append(args, filter.Quarter)
		query += fmt.Sprintf(" AND quarter = $%d", len(args))
	}
	query += " ORDER BY sequence"

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying plays: %w", err)
	}
	defer rows.Close()

	var plays []*store.Play
	for rows.Next() {
		play := &store.Play{}
		if err := rows.Scan(playScanTargets(play)...); err != nil {
			return nil, fmt.Errorf("scanning play: %w", err)
		}
		plays = append(plays, play)
	}

	return plays, rows.Err()
}

// GameSummary is the aggregated per-game play breakdown.
type GameSummary struct {
	TotalPlays   int            `json:"total_plays"`
	ScoringPlays int            `json:"scoring_plays"`
	Penalties    int            `json:"penalties"`
	Turnovers    int            `json:"turnovers"`
	RedZonePlays int            `json:"red_zone_plays"`
	PlayTypes    map[string]int `json:"play_types"`
	Downs        map[int]int    `json:"downs"`
}

// GetGameSummary aggregates play counts for one game: totals, scoring,
// penalties, turnovers, red-zone snaps, and play-type/down histograms.
func (r *PlayRepository) GetGameSummary(ctx context.Context, gameID string) (*GameSummary, error) {
	query := `
		SELECT play_type, down, is_scoring, is_penalty, is_change_of_possession, is_redzone_play
		FROM plays
		WHERE game_id = $1
	`

	rows, err := r.db.DB().QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying play summary: %w", err)
	}
	defer rows.Close()

	summary := &GameSummary{
		PlayTypes: make(map[string]int),
		Downs:     map[int]int{1: 0, 2: 0, 3: 0, 4: 0},
	}

	for rows.Next() {
		var playType sql.NullString
		var down sql.NullInt32
		var isScoring, isPenalty, isChangeOfPossession, isRedzone sql.NullBool

		if err := rows.Scan(&playType, &down, &isScoring, &isPenalty, &isChangeOfPossession, &isRedzone); err != nil {
			return nil, fmt.Errorf("scanning play summary: %w", err)
		}

		summary.TotalPlays++
		if isScoring.Valid && isScoring.Bool {
			summary.ScoringPlays++
		}
		if isPenalty.Valid && isPenalty.Bool {
			summary.Penalties++
		}
		if isChangeOfPossession.Valid && isChangeOfPossession.Bool {
			summary.Turnovers++
		}
		if isRedzone.Valid && isRedzone.Bool {
			summary.RedZonePlays++
		}
		if playType.Valid && playType.String != "" {
			summary.PlayTypes[playType.String]++
		}
		if down.Valid {
			if _, ok := summary.Downs[int(down.Int32)]; ok {
				summary.Downs[int(down.Int32)]++
			}
		}
	}

	return summary, rows.Err()
}
