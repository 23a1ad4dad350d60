package store

const createGamesSQL = `
CREATE TABLE IF NOT EXISTS games (
	game_id VARCHAR(64) PRIMARY KEY,
	season INTEGER NOT NULL,
	season_type VARCHAR(16) NOT NULL,
	week VARCHAR(16) NOT NULL,
	status VARCHAR(32),
	display_status VARCHAR(64),
	game_state VARCHAR(32),
	attendance INTEGER,
	gamebook_url TEXT,
	game_date VARCHAR(32),
	game_time VARCHAR(32),
	network VARCHAR(64),

	weather TEXT,
	weather_temperature DOUBLE PRECISION,
	weather_wind_speed DOUBLE PRECISION,
	weather_wind_direction VARCHAR(8),
	weather_precipitation VARCHAR(16),
	weather_humidity DOUBLE PRECISION,
	weather_conditions VARCHAR(16),

	venue_name VARCHAR(128),
	venue_city VARCHAR(64),
	venue_state VARCHAR(32),
	venue_roof_type VARCHAR(32),

	home_team_id VARCHAR(16) NOT NULL,
	home_team_name VARCHAR(64),
	home_team_nickname VARCHAR(64),
	home_team_abbreviation VARCHAR(8),
	away_team_id VARCHAR(16) NOT NULL,
	away_team_name VARCHAR(64),
	away_team_nickname VARCHAR(64),
	away_team_abbreviation VARCHAR(8),

	home_score_q1 INTEGER NOT NULL DEFAULT 0,
	home_score_q2 INTEGER NOT NULL DEFAULT 0,
	home_score_q3 INTEGER NOT NULL DEFAULT 0,
	home_score_q4 INTEGER NOT NULL DEFAULT 0,
	home_score_ot INTEGER NOT NULL DEFAULT 0,
	home_score_total INTEGER NOT NULL DEFAULT 0,
	away_score_q1 INTEGER NOT NULL DEFAULT 0,
	away_score_q2 INTEGER NOT NULL DEFAULT 0,
	away_score_q3 INTEGER NOT NULL DEFAULT 0,
	away_score_q4 INTEGER NOT NULL DEFAULT 0,
	away_score_ot INTEGER NOT NULL DEFAULT 0,
	away_score_total INTEGER NOT NULL DEFAULT 0,

	current_quarter VARCHAR(8),
	current_clock VARCHAR(8),
	current_down INTEGER,
	current_distance INTEGER,
	current_yard_line VARCHAR(16),
	is_red_zone BOOLEAN,
	is_goal_to_go BOOLEAN,

	moneyline_home VARCHAR(16),
	moneyline_away VARCHAR(16),
	spread_home_handicap VARCHAR(16),
	spread_away_handicap VARCHAR(16),
	spread_home_price VARCHAR(16),
	spread_away_price VARCHAR(16),
	total_over_handicap DOUBLE PRECISION,
	total_under_handicap DOUBLE PRECISION,
	total_over_price INTEGER,
	total_under_price INTEGER,
	odds_updated_at VARCHAR(64),

	home_team_wins INTEGER,
	home_team_losses INTEGER,
	home_team_win_streak INTEGER,
	away_team_wins INTEGER,
	away_team_losses INTEGER,
	away_team_win_streak INTEGER,

	historical_stats JSONB,

	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)
`

const createPlaysSQL = `
CREATE TABLE IF NOT EXISTS plays (
	id SERIAL PRIMARY KEY,
	game_id VARCHAR(64) NOT NULL REFERENCES games(game_id) ON DELETE CASCADE,
	play_id INTEGER NOT NULL,
	sequence INTEGER NOT NULL,
	quarter INTEGER,
	down INTEGER,
	yards_to_go INTEGER,
	yardline VARCHAR(16),
	game_clock VARCHAR(8),
	play_type VARCHAR(32),
	play_description TEXT,
	possession_team_id VARCHAR(16),
	defense_team_id VARCHAR(16),

	pre_snap_home_score INTEGER,
	pre_snap_visitor_score INTEGER,
	home_score INTEGER,
	visitor_score INTEGER,
	is_big_play BOOLEAN,
	is_end_quarter BOOLEAN,
	is_goal_to_go BOOLEAN,
	is_no_play BOOLEAN,
	is_penalty BOOLEAN,
	is_scoring BOOLEAN,
	is_st_play BOOLEAN,
	is_change_of_possession BOOLEAN,
	is_redzone_play BOOLEAN,
	expected_points DOUBLE PRECISION,
	expected_points_added DOUBLE PRECISION,
	pre_snap_home_win_probability DOUBLE PRECISION,
	pre_snap_visitor_win_probability DOUBLE PRECISION,
	post_play_home_win_probability DOUBLE PRECISION,
	post_play_visitor_win_probability DOUBLE PRECISION,
	home_timeouts_left INTEGER,
	visitor_timeouts_left INTEGER,
	play_state VARCHAR(32),
	play_type_code INTEGER,
	yardline_number INTEGER,
	yardline_side VARCHAR(8),
	absolute_yardline_number INTEGER,
	play_direction VARCHAR(8),
	time_of_day_utc VARCHAR(64),

	offensive_formation VARCHAR(32),
	yards_gained INTEGER,
	pass_length VARCHAR(16),
	pass_location VARCHAR(16),
	run_direction VARCHAR(16),
	is_complete_pass BOOLEAN,
	is_touchdown_pass BOOLEAN,
	is_interception BOOLEAN,
	pass_target VARCHAR(64),
	pass_defender VARCHAR(128),
	is_sack BOOLEAN,
	sack_yards INTEGER,
	quarterback_hit BOOLEAN,
	quarterback_scramble BOOLEAN,
	run_gap VARCHAR(16),
	yards_after_contact INTEGER,
	is_touchdown_run BOOLEAN,
	is_fumble BOOLEAN,
	fumble_recovered_by VARCHAR(64),
	fumble_forced_by VARCHAR(64),
	is_first_down BOOLEAN,
	is_turnover BOOLEAN,
	field_position_gained INTEGER,
	is_penalty_on_play BOOLEAN,
	penalty_type VARCHAR(64),
	penalty_team VARCHAR(8),
	penalty_player VARCHAR(64),
	penalty_yards INTEGER,
	penalty_declined BOOLEAN,
	penalty_offset BOOLEAN,
	penalty_no_play BOOLEAN,
	is_field_goal BOOLEAN,
	field_goal_distance INTEGER,
	field_goal_result VARCHAR(16),
	is_punt BOOLEAN,
	punt_distance INTEGER,
	punt_return_yards INTEGER,
	is_kickoff BOOLEAN,
	kickoff_return_yards INTEGER,
	is_touchback BOOLEAN,

	defensive_formation VARCHAR(16),
	defensive_package VARCHAR(16),
	defensive_db_count INTEGER,
	defensive_lb_count INTEGER,
	defensive_dl_count INTEGER,
	defensive_box_count INTEGER,

	score_differential INTEGER,
	time_remaining_half INTEGER,
	time_remaining_game INTEGER,
	is_two_minute_drill BOOLEAN,
	is_must_score_situation BOOLEAN,

	drive_number INTEGER,
	drive_play_number INTEGER,
	drive_start_yardline INTEGER,
	drive_time_of_possession INTEGER,
	drive_plays_so_far INTEGER,
	is_winning_team BOOLEAN,
	is_losing_team BOOLEAN,
	is_comeback_situation BOOLEAN,
	is_blowout_situation BOOLEAN,
	game_competitive_index DOUBLE PRECISION,
	possessing_team_last_score INTEGER,
	opposing_team_last_score INTEGER,
	possessing_team_turnovers INTEGER,
	opposing_team_turnovers INTEGER,
	turnover_margin INTEGER,
	possessing_team_timeouts INTEGER,
	opposing_team_timeouts INTEGER,
	timeout_advantage INTEGER,
	weather_impact_score DOUBLE PRECISION,
	is_indoor_game BOOLEAN,
	field_position_category VARCHAR(32),
	yards_from_own_endzone INTEGER,
	yards_from_opponent_endzone INTEGER,

	play_stats_json JSONB,
	home_personnel_json JSONB,
	away_personnel_json JSONB,

	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),

	UNIQUE (game_id, play_id, sequence)
)
`

const createPlayStatsSQL = `
CREATE TABLE IF NOT EXISTS play_stats (
	id SERIAL PRIMARY KEY,
	play_row_id INTEGER NOT NULL REFERENCES plays(id) ON DELETE CASCADE,
	game_id VARCHAR(64) NOT NULL,
	club_code VARCHAR(8),
	player_name VARCHAR(64),
	stat_id INTEGER,
	yards INTEGER,
	gsis_id VARCHAR(32)
)
`

const createPlayersSQL = `
CREATE TABLE IF NOT EXISTS players (
	nfl_id INTEGER PRIMARY KEY,
	gsis_id VARCHAR(32),
	first_name VARCHAR(64),
	last_name VARCHAR(64),
	player_name VARCHAR(64),
	position VARCHAR(8),
	position_group VARCHAR(8),
	uniform_number VARCHAR(8),
	team_id VARCHAR(16),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)
`

const createBackfillJobsSQL = `
CREATE TABLE IF NOT EXISTS backfill_jobs (
	job_id VARCHAR(64) PRIMARY KEY,
	job_type VARCHAR(16) NOT NULL,
	season INTEGER,
	season_type VARCHAR(16),
	week VARCHAR(16),
	game_id VARCHAR(64),
	status VARCHAR(16) NOT NULL,
	games_total INTEGER NOT NULL DEFAULT 0,
	games_done INTEGER NOT NULL DEFAULT 0,
	games_failed INTEGER NOT NULL DEFAULT 0,
	error_message TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	started_at TIMESTAMPTZ,
	finished_at TIMESTAMPTZ
)
`

const createIndexesSQL = `
CREATE INDEX IF NOT EXISTS idx_games_season_week ON games(season, season_type, week);
CREATE INDEX IF NOT EXISTS idx_games_date ON games(game_date);
CREATE INDEX IF NOT EXISTS idx_games_home_team ON games(home_team_id);
CREATE INDEX IF NOT EXISTS idx_games_away_team ON games(away_team_id);
CREATE INDEX IF NOT EXISTS idx_plays_game ON plays(game_id);
CREATE INDEX IF NOT EXISTS idx_plays_possession ON plays(possession_team_id);
CREATE INDEX IF NOT EXISTS idx_play_stats_game ON play_stats(game_id);
CREATE INDEX IF NOT EXISTS idx_backfill_jobs_status ON backfill_jobs(status)
`
