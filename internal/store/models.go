package store

import (
	"database/sql"
	"time"
)

// Game is one stored NFL game row. Vendor payload fields are flattened;
// weather columns hold both the raw vendor text and its parsed form, and
// the home_team_/away_team_ columns carry the season-to-date rollups
// computed at save time.
type Game struct {
	GameID        string         `json:"game_id" db:"game_id"`
	Season        int            `json:"season" db:"season"`
	SeasonType    string         `json:"season_type" db:"season_type"`
	Week          string         `json:"week" db:"week"`
	Status        sql.NullString `json:"status,omitempty" db:"status"`
	DisplayStatus sql.NullString `json:"display_status,omitempty" db:"display_status"`
	GameState     sql.NullString `json:"game_state,omitempty" db:"game_state"`
	Attendance    sql.NullInt32  `json:"attendance,omitempty" db:"attendance"`
	GamebookURL   sql.NullString `json:"gamebook_url,omitempty" db:"gamebook_url"`
	GameDate      sql.NullString `json:"game_date,omitempty" db:"game_date"`
	GameTime      sql.NullString `json:"game_time,omitempty" db:"game_time"`
	Network       sql.NullString `json:"network,omitempty" db:"network"`

	// Raw weather text plus its parsed attributes
	Weather              sql.NullString  `json:"weather,omitempty" db:"weather"`
	WeatherTemperature   sql.NullFloat64 `json:"weather_temperature,omitempty" db:"weather_temperature"`
	WeatherWindSpeed     sql.NullFloat64 `json:"weather_wind_speed,omitempty" db:"weather_wind_speed"`
	WeatherWindDirection sql.NullString  `json:"weather_wind_direction,omitempty" db:"weather_wind_direction"`
	WeatherPrecipitation sql.NullString  `json:"weather_precipitation,omitempty" db:"weather_precipitation"`
	WeatherHumidity      sql.NullFloat64 `json:"weather_humidity,omitempty" db:"weather_humidity"`
	WeatherConditions    sql.NullString  `json:"weather_conditions,omitempty" db:"weather_conditions"`

	// Venue
	VenueName     sql.NullString `json:"venue_name,omitempty" db:"venue_name"`
	VenueCity     sql.NullString `json:"venue_city,omitempty" db:"venue_city"`
	VenueState    sql.NullString `json:"venue_state,omitempty" db:"venue_state"`
	VenueRoofType sql.NullString `json:"venue_roof_type,omitempty" db:"venue_roof_type"`

	// Denormalized team identity
	HomeTeamID           string         `json:"home_team_id" db:"home_team_id"`
	HomeTeamName         sql.NullString `json:"home_team_name,omitempty" db:"home_team_name"`
	HomeTeamNickname     sql.NullString `json:"home_team_nickname,omitempty" db:"home_team_nickname"`
	HomeTeamAbbreviation sql.NullString `json:"home_team_abbreviation,omitempty" db:"home_team_abbreviation"`
	AwayTeamID           string         `json:"away_team_id" db:"away_team_id"`
	AwayTeamName         sql.NullString `json:"away_team_name,omitempty" db:"away_team_name"`
	AwayTeamNickname     sql.NullString `json:"away_team_nickname,omitempty" db:"away_team_nickname"`
	AwayTeamAbbreviation sql.NullString `json:"away_team_abbreviation,omitempty" db:"away_team_abbreviation"`

	// Line score
	HomeScoreQ1    int `json:"home_score_q1" db:"home_score_q1"`
	HomeScoreQ2    int `json:"home_score_q2" db:"home_score_q2"`
	HomeScoreQ3    int `json:"home_score_q3" db:"home_score_q3"`
	HomeScoreQ4    int `json:"home_score_q4" db:"home_score_q4"`
	HomeScoreOT    int `json:"home_score_ot" db:"home_score_ot"`
	HomeScoreTotal int `json:"home_score_total" db:"home_score_total"`
	AwayScoreQ1    int `json:"away_score_q1" db:"away_score_q1"`
	AwayScoreQ2    int `json:"away_score_q2" db:"away_score_q2"`
	AwayScoreQ3    int `json:"away_score_q3" db:"away_score_q3"`
	AwayScoreQ4    int `json:"away_score_q4" db:"away_score_q4"`
	AwayScoreOT    int `json:"away_score_ot" db:"away_score_ot"`
	AwayScoreTotal int `json:"away_score_total" db:"away_score_total"`

	// Current situation snapshot
	CurrentQuarter  sql.NullString `json:"current_quarter,omitempty" db:"current_quarter"`
	CurrentClock    sql.NullString `json:"current_clock,omitempty" db:"current_clock"`
	CurrentDown     sql.NullInt32  `json:"current_down,omitempty" db:"current_down"`
	CurrentDistance sql.NullInt32  `json:"current_distance,omitempty" db:"current_distance"`
	CurrentYardLine sql.NullString `json:"current_yard_line,omitempty" db:"current_yard_line"`
	IsRedZone       sql.NullBool   `json:"is_red_zone,omitempty" db:"is_red_zone"`
	IsGoalToGo      sql.NullBool   `json:"is_goal_to_go,omitempty" db:"is_goal_to_go"`

	// Betting odds snapshot
	MoneylineHome      sql.NullString  `json:"moneyline_home,omitempty" db:"moneyline_home"`
	MoneylineAway      sql.NullString  `json:"moneyline_away,omitempty" db:"moneyline_away"`
	SpreadHomeHandicap sql.NullString  `json:"spread_home_handicap,omitempty" db:"spread_home_handicap"`
	SpreadAwayHandicap sql.NullString  `json:"spread_away_handicap,omitempty" db:"spread_away_handicap"`
	SpreadHomePrice    sql.NullString  `json:"spread_home_price,omitempty" db:"spread_home_price"`
	SpreadAwayPrice    sql.NullString  `json:"spread_away_price,omitempty" db:"spread_away_price"`
	TotalOverHandicap  sql.NullFloat64 `json:"total_over_handicap,omitempty" db:"total_over_handicap"`
	TotalUnderHandicap sql.NullFloat64 `json:"total_under_handicap,omitempty" db:"total_under_handicap"`
	TotalOverPrice     sql.NullInt32   `json:"total_over_price,omitempty" db:"total_over_price"`
	TotalUnderPrice    sql.NullInt32   `json:"total_under_price,omitempty" db:"total_under_price"`
	OddsUpdatedAt      sql.NullString  `json:"odds_updated_at,omitempty" db:"odds_updated_at"`

	// Standings enrichment
	HomeTeamWins      sql.NullInt32  `json:"home_team_wins,omitempty" db:"home_team_wins"`
	HomeTeamLosses    sql.NullInt32  `json:"home_team_losses,omitempty" db:"home_team_losses"`
	HomeTeamWinStreak sql.NullInt32  `json:"home_team_win_streak,omitempty" db:"home_team_win_streak"`
	AwayTeamWins      sql.NullInt32  `json:"away_team_wins,omitempty" db:"away_team_wins"`
	AwayTeamLosses    sql.NullInt32  `json:"away_team_losses,omitempty" db:"away_team_losses"`
	AwayTeamWinStreak sql.NullInt32  `json:"away_team_win_streak,omitempty" db:"away_team_win_streak"`

	// Historical rollups, serialized JSON keyed home_team_/away_team_/
	// head_to_head_ (computed at save time from prior games)
	HistoricalStats sql.NullString `json:"historical_stats,omitempty" db:"historical_stats"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Play is one stored play row: base vendor fields, the play summary
// snapshot, and the full derived-feature set. Derived columns are
// recomputed in full on every save of the parent game.
type Play struct {
	ID               int            `json:"id" db:"id"`
	GameID           string         `json:"game_id" db:"game_id"`
	PlayID           int            `json:"play_id" db:"play_id"`
	Sequence         int            `json:"sequence" db:"sequence"`
	Quarter          sql.NullInt32  `json:"quarter,omitempty" db:"quarter"`
	Down             sql.NullInt32  `json:"down,omitempty" db:"down"`
	YardsToGo        sql.NullInt32  `json:"yards_to_go,omitempty" db:"yards_to_go"`
	Yardline         sql.NullString `json:"yardline,omitempty" db:"yardline"`
	GameClock        sql.NullString `json:"game_clock,omitempty" db:"game_clock"`
	PlayType         sql.NullString `json:"play_type,omitempty" db:"play_type"`
	PlayDescription  sql.NullString `json:"play_description,omitempty" db:"play_description"`
	PossessionTeamID sql.NullString `json:"possession_team_id,omitempty" db:"possession_team_id"`
	DefenseTeamID    sql.NullString `json:"defense_team_id,omitempty" db:"defense_team_id"`

	// Summary snapshot
	PreSnapHomeScore     sql.NullInt32   `json:"pre_snap_home_score,omitempty" db:"pre_snap_home_score"`
	PreSnapVisitorScore  sql.NullInt32   `json:"pre_snap_visitor_score,omitempty" db:"pre_snap_visitor_score"`
	HomeScore            sql.NullInt32   `json:"home_score,omitempty" db:"home_score"`
	VisitorScore         sql.NullInt32   `json:"visitor_score,omitempty" db:"visitor_score"`
	IsBigPlay            sql.NullBool    `json:"is_big_play,omitempty" db:"is_big_play"`
	IsEndQuarter         sql.NullBool    `json:"is_end_quarter,omitempty" db:"is_end_quarter"`
	IsGoalToGo           sql.NullBool    `json:"is_goal_to_go,omitempty" db:"is_goal_to_go"`
	IsNoPlay             sql.NullBool    `json:"is_no_play,omitempty" db:"is_no_play"`
	IsPenalty            sql.NullBool    `json:"is_penalty,omitempty" db:"is_penalty"`
	IsScoring            sql.NullBool    `json:"is_scoring,omitempty" db:"is_scoring"`
	IsSTPlay             sql.NullBool    `json:"is_st_play,omitempty" db:"is_st_play"`
	IsChangeOfPossession sql.NullBool    `json:"is_change_of_possession,omitempty" db:"is_change_of_possession"`
	IsRedzonePlay        sql.NullBool    `json:"is_redzone_play,omitempty" db:"is_redzone_play"`
	ExpectedPoints       sql.NullFloat64 `json:"expected_points,omitempty" db:"expected_points"`
	ExpectedPointsAdded  sql.NullFloat64 `json:"expected_points_added,omitempty" db:"expected_points_added"`

	PreSnapHomeWinProbability     sql.NullFloat64 `json:"pre_snap_home_win_probability,omitempty" db:"pre_snap_home_win_probability"`
	PreSnapVisitorWinProbability  sql.NullFloat64 `json:"pre_snap_visitor_win_probability,omitempty" db:"pre_snap_visitor_win_probability"`
	PostPlayHomeWinProbability    sql.NullFloat64 `json:"post_play_home_win_probability,omitempty" db:"post_play_home_win_probability"`
	PostPlayVisitorWinProbability sql.NullFloat64 `json:"post_play_visitor_win_probability,omitempty" db:"post_play_visitor_win_probability"`

	HomeTimeoutsLeft    sql.NullInt32 `json:"home_timeouts_left,omitempty" db:"home_timeouts_left"`
	VisitorTimeoutsLeft sql.NullInt32 `json:"visitor_timeouts_left,omitempty" db:"visitor_timeouts_left"`

	PlayState              sql.NullString `json:"play_state,omitempty" db:"play_state"`
	PlayTypeCode           sql.NullInt32  `json:"play_type_code,omitempty" db:"play_type_code"`
	YardlineNumber         sql.NullInt32  `json:"yardline_number,omitempty" db:"yardline_number"`
	YardlineSide           sql.NullString `json:"yardline_side,omitempty" db:"yardline_side"`
	AbsoluteYardlineNumber sql.NullInt32  `json:"absolute_yardline_number,omitempty" db:"absolute_yardline_number"`
	PlayDirection          sql.NullString `json:"play_direction,omitempty" db:"play_direction"`
	TimeOfDayUTC           sql.NullString `json:"time_of_day_utc,omitempty" db:"time_of_day_utc"`

	// Derived: description parsing
	OffensiveFormation sql.NullString `json:"offensive_formation,omitempty" db:"offensive_formation"`
	YardsGained        sql.NullInt32  `json:"yards_gained,omitempty" db:"yards_gained"`
	PassLength         sql.NullString `json:"pass_length,omitempty" db:"pass_length"`
	PassLocation       sql.NullString `json:"pass_location,omitempty" db:"pass_location"`
	RunDirection       sql.NullString `json:"run_direction,omitempty" db:"run_direction"`

	IsCompletePass      sql.NullBool   `json:"is_complete_pass,omitempty" db:"is_complete_pass"`
	IsTouchdownPass     sql.NullBool   `json:"is_touchdown_pass,omitempty" db:"is_touchdown_pass"`
	IsInterception      sql.NullBool   `json:"is_interception,omitempty" db:"is_interception"`
	PassTarget          sql.NullString `json:"pass_target,omitempty" db:"pass_target"`
	PassDefender        sql.NullString `json:"pass_defender,omitempty" db:"pass_defender"`
	IsSack              sql.NullBool   `json:"is_sack,omitempty" db:"is_sack"`
	SackYards           sql.NullInt32  `json:"sack_yards,omitempty" db:"sack_yards"`
	QuarterbackHit      sql.NullBool   `json:"quarterback_hit,omitempty" db:"quarterback_hit"`
	QuarterbackScramble sql.NullBool   `json:"quarterback_scramble,omitempty" db:"quarterback_scramble"`

	RunGap            sql.NullString `json:"run_gap,omitempty" db:"run_gap"`
	YardsAfterContact sql.NullInt32  `json:"yards_after_contact,omitempty" db:"yards_after_contact"`
	IsTouchdownRun    sql.NullBool   `json:"is_touchdown_run,omitempty" db:"is_touchdown_run"`
	IsFumble          sql.NullBool   `json:"is_fumble,omitempty" db:"is_fumble"`
	FumbleRecoveredBy sql.NullString `json:"fumble_recovered_by,omitempty" db:"fumble_recovered_by"`
	FumbleForcedBy    sql.NullString `json:"fumble_forced_by,omitempty" db:"fumble_forced_by"`

	IsFirstDown         sql.NullBool  `json:"is_first_down,omitempty" db:"is_first_down"`
	IsTurnover          sql.NullBool  `json:"is_turnover,omitempty" db:"is_turnover"`
	FieldPositionGained sql.NullInt32 `json:"field_position_gained,omitempty" db:"field_position_gained"`

	IsPenaltyOnPlay sql.NullBool   `json:"is_penalty_on_play,omitempty" db:"is_penalty_on_play"`
	PenaltyType     sql.NullString `json:"penalty_type,omitempty" db:"penalty_type"`
	PenaltyTeam     sql.NullString `json:"penalty_team,omitempty" db:"penalty_team"`
	PenaltyPlayer   sql.NullString `json:"penalty_player,omitempty" db:"penalty_player"`
	PenaltyYards    sql.NullInt32  `json:"penalty_yards,omitempty" db:"penalty_yards"`
	PenaltyDeclined sql.NullBool   `json:"penalty_declined,omitempty" db:"penalty_declined"`
	PenaltyOffset   sql.NullBool   `json:"penalty_offset,omitempty" db:"penalty_offset"`
	PenaltyNoPlay   sql.NullBool   `json:"penalty_no_play,omitempty" db:"penalty_no_play"`

	IsFieldGoal        sql.NullBool   `json:"is_field_goal,omitempty" db:"is_field_goal"`
	FieldGoalDistance  sql.NullInt32  `json:"field_goal_distance,omitempty" db:"field_goal_distance"`
	FieldGoalResult    sql.NullString `json:"field_goal_result,omitempty" db:"field_goal_result"`
	IsPunt             sql.NullBool   `json:"is_punt,omitempty" db:"is_punt"`
	PuntDistance       sql.NullInt32  `json:"punt_distance,omitempty" db:"punt_distance"`
	PuntReturnYards    sql.NullInt32  `json:"punt_return_yards,omitempty" db:"punt_return_yards"`
	IsKickoff          sql.NullBool   `json:"is_kickoff,omitempty" db:"is_kickoff"`
	KickoffReturnYards sql.NullInt32  `json:"kickoff_return_yards,omitempty" db:"kickoff_return_yards"`
	IsTouchback        sql.NullBool   `json:"is_touchback,omitempty" db:"is_touchback"`

	// Derived: defensive personnel
	DefensiveFormation sql.NullString `json:"defensive_formation,omitempty" db:"defensive_formation"`
	DefensivePackage   sql.NullString `json:"defensive_package,omitempty" db:"defensive_package"`
	DefensiveDBCount   sql.NullInt32  `json:"defensive_db_count,omitempty" db:"defensive_db_count"`
	DefensiveLBCount   sql.NullInt32  `json:"defensive_lb_count,omitempty" db:"defensive_lb_count"`
	DefensiveDLCount   sql.NullInt32  `json:"defensive_dl_count,omitempty" db:"defensive_dl_count"`
	DefensiveBoxCount  sql.NullInt32  `json:"defensive_box_count,omitempty" db:"defensive_box_count"`

	// Derived: clock and score
	ScoreDifferential    sql.NullInt32 `json:"score_differential,omitempty" db:"score_differential"`
	TimeRemainingHalf    sql.NullInt32 `json:"time_remaining_half,omitempty" db:"time_remaining_half"`
	TimeRemainingGame    sql.NullInt32 `json:"time_remaining_game,omitempty" db:"time_remaining_game"`
	IsTwoMinuteDrill     sql.NullBool  `json:"is_two_minute_drill,omitempty" db:"is_two_minute_drill"`
	IsMustScoreSituation sql.NullBool  `json:"is_must_score_situation,omitempty" db:"is_must_score_situation"`

	// Derived: sequential game context
	DriveNumber           sql.NullInt32   `json:"drive_number,omitempty" db:"drive_number"`
	DrivePlayNumber       sql.NullInt32   `json:"drive_play_number,omitempty" db:"drive_play_number"`
	DriveStartYardline    sql.NullInt32   `json:"drive_start_yardline,omitempty" db:"drive_start_yardline"`
	DriveTimeOfPossession sql.NullInt32   `json:"drive_time_of_possession,omitempty" db:"drive_time_of_possession"`
	DrivePlaysSoFar       sql.NullInt32   `json:"drive_plays_so_far,omitempty" db:"drive_plays_so_far"`
	IsWinningTeam         sql.NullBool    `json:"is_winning_team,omitempty" db:"is_winning_team"`
	IsLosingTeam          sql.NullBool    `json:"is_losing_team,omitempty" db:"is_losing_team"`
	IsComebackSituation   sql.NullBool    `json:"is_comeback_situation,omitempty" db:"is_comeback_situation"`
	IsBlowoutSituation    sql.NullBool    `json:"is_blowout_situation,omitempty" db:"is_blowout_situation"`
	GameCompetitiveIndex  sql.NullFloat64 `json:"game_competitive_index,omitempty" db:"game_competitive_index"`

	PossessingTeamLastScore sql.NullInt32 `json:"possessing_team_last_score,omitempty" db:"possessing_team_last_score"`
	OpposingTeamLastScore   sql.NullInt32 `json:"opposing_team_last_score,omitempty" db:"opposing_team_last_score"`
	PossessingTeamTurnovers sql.NullInt32 `json:"possessing_team_turnovers,omitempty" db:"possessing_team_turnovers"`
	OpposingTeamTurnovers   sql.NullInt32 `json:"opposing_team_turnovers,omitempty" db:"opposing_team_turnovers"`
	TurnoverMargin          sql.NullInt32 `json:"turnover_margin,omitempty" db:"turnover_margin"`

	PossessingTeamTimeouts sql.NullInt32 `json:"possessing_team_timeouts,omitempty" db:"possessing_team_timeouts"`
	OpposingTeamTimeouts   sql.NullInt32 `json:"opposing_team_timeouts,omitempty" db:"opposing_team_timeouts"`
	TimeoutAdvantage       sql.NullInt32 `json:"timeout_advantage,omitempty" db:"timeout_advantage"`

	WeatherImpactScore sql.NullFloat64 `json:"weather_impact_score,omitempty" db:"weather_impact_score"`
	IsIndoorGame       sql.NullBool    `json:"is_indoor_game,omitempty" db:"is_indoor_game"`

	FieldPositionCategory    sql.NullString `json:"field_position_category,omitempty" db:"field_position_category"`
	YardsFromOwnEndzone      sql.NullInt32  `json:"yards_from_own_endzone,omitempty" db:"yards_from_own_endzone"`
	YardsFromOpponentEndzone sql.NullInt32  `json:"yards_from_opponent_endzone,omitempty" db:"yards_from_opponent_endzone"`

	// Raw JSON captures of the snap's stats and personnel lists
	PlayStatsJSON     sql.NullString `json:"play_stats_json,omitempty" db:"play_stats_json"`
	HomePersonnelJSON sql.NullString `json:"home_personnel_json,omitempty" db:"home_personnel_json"`
	AwayPersonnelJSON sql.NullString `json:"away_personnel_json,omitempty" db:"away_personnel_json"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PlayStat is one player-attributed stat event row for a play.
type PlayStat struct {
	ID         int            `json:"id" db:"id"`
	PlayRowID  int            `json:"play_row_id" db:"play_row_id"`
	GameID     string         `json:"game_id" db:"game_id"`
	ClubCode   sql.NullString `json:"club_code,omitempty" db:"club_code"`
	PlayerName sql.NullString `json:"player_name,omitempty" db:"player_name"`
	StatID     sql.NullInt32  `json:"stat_id,omitempty" db:"stat_id"`
	Yards      sql.NullInt32  `json:"yards,omitempty" db:"yards"`
	GSISID     sql.NullString `json:"gsis_id,omitempty" db:"gsis_id"`
}

// Player is one upsert-only player row collected from personnel lists.
// Re-ingesting a game never deletes players; mutable attributes (team,
// number, position) are overwritten on conflict.
type Player struct {
	NFLID         int            `json:"nfl_id" db:"nfl_id"`
	GSISID        sql.NullString `json:"gsis_id,omitempty" db:"gsis_id"`
	FirstName     sql.NullString `json:"first_name,omitempty" db:"first_name"`
	LastName      sql.NullString `json:"last_name,omitempty" db:"last_name"`
	PlayerName    sql.NullString `json:"player_name,omitempty" db:"player_name"`
	Position      sql.NullString `json:"position,omitempty" db:"position"`
	PositionGroup sql.NullString `json:"position_group,omitempty" db:"position_group"`
	UniformNumber sql.NullString `json:"uniform_number,omitempty" db:"uniform_number"`
	TeamID        sql.NullString `json:"team_id,omitempty" db:"team_id"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}
