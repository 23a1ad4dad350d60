package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/nfl"
)

func sampleGame() *nfl.Game {
	return &nfl.Game{
		GameInfo: nfl.GameInfo{
			ID:         "2024_10_BUF_KC",
			Season:     2024,
			SeasonType: "REG",
			Week:       "10",
			Status:     "FINAL",
			Weather:    "72°F, Wind NW 10 mph, Clear",
			Date:       "2024-11-10",
			Attendance: 73426,
		},
		Venue: &nfl.Venue{
			SiteFullName: "GEHA Field at Arrowhead Stadium",
			SiteCity:     "Kansas City",
			SiteState:    "MO",
			RoofType:     "OUTDOOR",
		},
		Teams: nfl.Teams{
			Home: nfl.Team{
				Info: nfl.TeamInfo{ID: "KC", Name: "Kansas City Chiefs", Abbreviation: "KC"},
				GameStats: nfl.TeamGameStats{
					Score: nfl.Score{Q1: 7, Q2: 3, Q3: 10, Q4: 7, Total: 27},
				},
			},
			Away: nfl.Team{
				Info: nfl.TeamInfo{ID: "BUF", Name: "Buffalo Bills", Abbreviation: "BUF"},
				GameStats: nfl.TeamGameStats{
					Score: nfl.Score{Q1: 0, Q2: 14, Q3: 3, Q4: 3, Total: 20},
				},
			},
		},
	}
}

func TestBuildGameRowBasics(t *testing.T) {
	game := sampleGame()
	row := buildGameRow(game)

	assert.Equal(t, "2024_10_BUF_KC", row.GameID)
	assert.Equal(t, "KC", row.HomeTeamID)
	assert.Equal(t, "BUF", row.AwayTeamID)
	assert.Equal(t, 27, row.HomeScoreTotal)
	assert.Equal(t, 20, row.AwayScoreTotal)
	assert.Equal(t, int32(73426), row.Attendance.Int32)

	require.True(t, row.WeatherTemperature.Valid)
	assert.Equal(t, 72.0, row.WeatherTemperature.Float64)
	assert.Equal(t, 10.0, row.WeatherWindSpeed.Float64)
	assert.Equal(t, "NW", row.WeatherWindDirection.String)

	assert.Equal(t, "GEHA Field at Arrowhead Stadium", row.VenueName.String)
	assert.Equal(t, "OUTDOOR", row.VenueRoofType.String)
	assert.False(t, row.Network.Valid)
}

func TestBuildGameRowOdds(t *testing.T) {
	game := sampleGame()
	game.Betting = &nfl.BettingOdds{
		Moneyline: &nfl.MoneyLine{HomePrice: "-150", AwayPrice: "+130"},
		Spread:    &nfl.Spread{HomeHandicap: "-2.5", AwayHandicap: "+2.5"},
		Totals:    &nfl.Totals{OverHandicap: 46.5, UnderHandicap: 46.5, OverPrice: -110, UnderPrice: -110},
	}

	row := buildGameRow(game)

	assert.Equal(t, "-150", row.MoneylineHome.String)
	assert.Equal(t, "+2.5", row.SpreadAwayHandicap.String)
	assert.Equal(t, 46.5, row.TotalOverHandicap.Float64)
	assert.Equal(t, int32(-110), row.TotalUnderPrice.Int32)
}

func TestApplyStandingsStringStreak(t *testing.T) {
	game := sampleGame()
	game.Metadata = map[string]interface{}{
		"standings": map[string]interface{}{
			"weeks": []interface{}{
				map[string]interface{}{
					"standings": []interface{}{
						map[string]interface{}{
							"team":    map[string]interface{}{"fullName": "Kansas City Chiefs"},
							"overall": map[string]interface{}{"wins": 8.0, "losses": 1.0, "streak": "W5"},
						},
						map[string]interface{}{
							"team":    map[string]interface{}{"fullName": "Buffalo Bills"},
							"overall": map[string]interface{}{"wins": 7.0, "losses": 2.0, "streak": "L1"},
						},
					},
				},
			},
		},
	}

	row := buildGameRow(game)
	applyStandings(row, game)

	assert.Equal(t, int32(8), row.HomeTeamWins.Int32)
	assert.Equal(t, int32(1), row.HomeTeamLosses.Int32)
	assert.Equal(t, int32(5), row.HomeTeamWinStreak.Int32)
	assert.Equal(t, int32(-1), row.AwayTeamWinStreak.Int32)
}

func TestApplyStandingsObjectStreak(t *testing.T) {
	game := sampleGame()
	game.Metadata = map[string]interface{}{
		"standings": map[string]interface{}{
			"weeks": []interface{}{
				map[string]interface{}{"standings": []interface{}{}}, // earlier week ignored
				map[string]interface{}{
					"standings": []interface{}{
						map[string]interface{}{
							"team": map[string]interface{}{"fullName": "Kansas City Chiefs"},
							"overall": map[string]interface{}{
								"wins":   6.0,
								"losses": 3.0,
								"streak": map[string]interface{}{"type": "loss", "length": 2.0},
							},
						},
					},
				},
			},
		},
	}

	row := buildGameRow(game)
	applyStandings(row, game)

	assert.Equal(t, int32(6), row.HomeTeamWins.Int32)
	assert.Equal(t, int32(-2), row.HomeTeamWinStreak.Int32)
	assert.False(t, row.AwayTeamWins.Valid)
}

func TestApplyStandingsMissingMetadata(t *testing.T) {
	game := sampleGame()
	row := buildGameRow(game)
	applyStandings(row, game)

	assert.False(t, row.HomeTeamWins.Valid)
	assert.False(t, row.AwayTeamWinStreak.Valid)
}

func TestBuildPlayRowFeatures(t *testing.T) {
	game := sampleGame()
	game.Plays = []nfl.Play{
		{
			PlayID:           101,
			Sequence:         1,
			Quarter:          2,
			Down:             3,
			YardsToGo:        7,
			GameClock:        "1:45",
			PlayType:         "play_type_pass",
			PlayDescription:  "(Shotgun) P.Mahomes pass short right to T.Kelce for 12 yards (D.White).",
			PossessionTeamID: "KC",
			DefenseTeamID:    "BUF",
			HomeTeamID:       "KC",
			Summary: &nfl.PlaySummary{
				Play: &nfl.PlayDetail{
					HomeScore:    14,
					VisitorScore: 17,
					Quarter:      2,
					GameClock:    "1:45",
					PlayStats: []nfl.PlayStat{
						{ClubCode: "KC", PlayerName: "P.Mahomes", StatID: 15, Yards: 12},
					},
				},
				Home: []nfl.PersonnelPlayer{
					{NFLID: 1, PlayerName: "P.Mahomes", Position: "QB", PositionGroup: "QB", TeamID: "KC"},
				},
				Away: []nfl.PersonnelPlayer{
					{NFLID: 2, PlayerName: "D.White", Position: "CB", PositionGroup: "DB", TeamID: "BUF"},
				},
				HomeIsOffense: true,
			},
		},
	}

	row := buildPlayRow(game, 0, &game.Plays[0])

	assert.Equal(t, "2024_10_BUF_KC", row.GameID)
	assert.Equal(t, 101, row.PlayID)

	// Description features
	assert.Equal(t, "shotgun", row.OffensiveFormation.String)
	assert.Equal(t, int32(12), row.YardsGained.Int32)
	assert.Equal(t, "T.Kelce", row.PassTarget.String)
	assert.True(t, row.IsCompletePass.Bool)
	assert.Equal(t, int32(12), row.FieldPositionGained.Int32)

	// Score differential is home minus visitor
	require.True(t, row.ScoreDifferential.Valid)
	assert.Equal(t, int32(-3), row.ScoreDifferential.Int32)

	// Clock: Q2 1:45 inside the two-minute window
	assert.Equal(t, int32(105), row.TimeRemainingHalf.Int32)
	assert.True(t, row.IsTwoMinuteDrill.Bool)

	// Personnel: single DB on defense
	assert.Equal(t, int32(1), row.DefensiveDBCount.Int32)

	// JSON captures present
	assert.True(t, row.PlayStatsJSON.Valid)
	assert.True(t, row.HomePersonnelJSON.Valid)
	assert.True(t, row.AwayPersonnelJSON.Valid)
}

func TestBuildPlayRowNoSummary(t *testing.T) {
	game := sampleGame()
	game.Plays = []nfl.Play{
		{PlayID: 1, Sequence: 1, Quarter: 2, GameClock: "15:00", PlayType: "play_type_rush"},
	}

	row := buildPlayRow(game, 0, &game.Plays[0])

	assert.False(t, row.HomeScore.Valid)
	assert.False(t, row.ScoreDifferential.Valid)
	assert.False(t, row.PlayStatsJSON.Valid)
	// Clock still derives from the base fields
	assert.Equal(t, int32(900), row.TimeRemainingHalf.Int32)
	// Context falls back to all-null without a summary
	assert.False(t, row.DriveNumber.Valid)
}

func TestCollectPlayersDedupes(t *testing.T) {
	game := sampleGame()
	game.Plays = []nfl.Play{
		{
			PlayID: 1,
			Summary: &nfl.PlaySummary{
				Home: []nfl.PersonnelPlayer{
					{NFLID: 10, PlayerName: "P.Mahomes", TeamID: "KC"},
					{NFLID: 11, PlayerName: "T.Kelce", TeamID: "KC"},
				},
				Away: []nfl.PersonnelPlayer{{NFLID: 20, PlayerName: "J.Allen", TeamID: "BUF"}},
			},
		},
		{
			PlayID: 2,
			Summary: &nfl.PlaySummary{
				Home: []nfl.PersonnelPlayer{{NFLID: 10, PlayerName: "P.Mahomes", TeamID: "KC"}},
				Away: []nfl.PersonnelPlayer{{NFLID: 0, PlayerName: "unidentified"}},
			},
		},
		{PlayID: 3},
	}

	players := collectPlayers(game)

	require.Len(t, players, 3)
	assert.Equal(t, 10, players[0].NFLID)
	assert.Equal(t, 11, players[1].NFLID)
	assert.Equal(t, 20, players[2].NFLID)
}

func TestParseStreakFormats(t *testing.T) {
	tests := []struct {
		name  string
		raw   interface{}
		want  int32
		valid bool
	}{
		{"win string", "W3", 3, true},
		{"loss string", "L2", -2, true},
		{"lowercase loss", "l4", -4, true},
		{"bad string", "W", 0, false},
		{"object win", map[string]interface{}{"type": "win", "length": 5.0}, 5, true},
		{"object loss", map[string]interface{}{"type": "Loss", "length": 1.0}, -1, true},
		{"object missing length", map[string]interface{}{"type": "win"}, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseStreak(tt.raw)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.Equal(t, tt.want, got.Int32)
			}
		})
	}
}
