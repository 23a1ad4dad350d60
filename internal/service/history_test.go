package service

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/repository"
)

func historyGame(id, home, away string, homeScore, awayScore int) *store.Game {
	return &store.Game{
		GameID:         id,
		HomeTeamID:     home,
		AwayTeamID:     away,
		HomeScoreTotal: homeScore,
		AwayScoreTotal: awayScore,
	}
}

func nullInt(v int) sql.NullInt32    { return sql.NullInt32{Int32: int32(v), Valid: true} }
func nullStr(v string) sql.NullString { return sql.NullString{String: v, Valid: true} }
func nullBool(v bool) sql.NullBool   { return sql.NullBool{Bool: v, Valid: true} }

func TestComputeTeamStatsNoPriorGames(t *testing.T) {
	stats := ComputeTeamStats("KC", nil, nil)
	assert.Equal(t, TeamStats{}, stats)
}

func TestComputeTeamStatsOffenseDefenseSplit(t *testing.T) {
	games := []*store.Game{historyGame("g1", "KC", "BUF", 27, 20)}
	plays := map[string][]repository.HistoryPlay{
		"g1": {
			{PossessionTeamID: nullStr("KC"), PlayType: nullStr("pass"), YardsGained: nullInt(15)},
			{PossessionTeamID: nullStr("KC"), PlayType: nullStr("rush"), YardsGained: nullInt(6)},
			{PossessionTeamID: nullStr("KC"), PlayType: nullStr("pass"), YardsGained: nullInt(-8), IsSack: nullBool(true)},
			{PossessionTeamID: nullStr("BUF"), PlayType: nullStr("pass"), YardsGained: nullInt(22)},
			{PossessionTeamID: nullStr("BUF"), PlayType: nullStr("rush"), YardsGained: nullInt(3), IsSack: nullBool(true)},
		},
	}

	stats := ComputeTeamStats("KC", games, plays)

	assert.Equal(t, 27.0, stats.PointsPerGame)
	assert.Equal(t, 20.0, stats.PointsAllowedPerGame)
	// 15 + 6 - 8 net; pass/rush splits clamp negative plays to zero
	assert.Equal(t, 13.0, stats.YardsPerGame)
	assert.Equal(t, 15.0, stats.PassYardsPerGame)
	assert.Equal(t, 6.0, stats.RushYardsPerGame)
	assert.Equal(t, 25.0, stats.YardsAllowedPerGame)
	assert.Equal(t, 22.0, stats.PassYardsAllowedPerGame)
	assert.Equal(t, 3.0, stats.RushYardsAllowedPerGame)
	// Only sacks on defense count as forced
	assert.Equal(t, 1.0, stats.SacksPerGame)
}

func TestComputeTeamStatsThirdDownAndRedZone(t *testing.T) {
	games := []*store.Game{historyGame("g1", "KC", "BUF", 21, 17)}
	plays := map[string][]repository.HistoryPlay{
		"g1": {
			{PossessionTeamID: nullStr("KC"), YardsGained: nullInt(7), Down: nullInt(3), IsFirstDown: nullBool(true)},
			{PossessionTeamID: nullStr("KC"), YardsGained: nullInt(1), Down: nullInt(3)},
			{PossessionTeamID: nullStr("KC"), YardsGained: nullInt(4), IsRedzonePlay: nullBool(true), IsTouchdownRun: nullBool(true)},
			{PossessionTeamID: nullStr("KC"), YardsGained: nullInt(0), IsRedzonePlay: nullBool(true)},
			{PossessionTeamID: nullStr("BUF"), YardsGained: nullInt(2), Down: nullInt(3)},
			{PossessionTeamID: nullStr("BUF"), YardsGained: nullInt(12), Down: nullInt(3), IsFirstDown: nullBool(true)},
			{PossessionTeamID: nullStr("BUF"), YardsGained: nullInt(5), IsRedzonePlay: nullBool(true)},
		},
	}

	stats := ComputeTeamStats("KC", games, plays)

	assert.InDelta(t, 50.0, stats.ThirdDownPct, 1e-9)
	assert.InDelta(t, 50.0, stats.RedZonePct, 1e-9)
	assert.InDelta(t, 50.0, stats.ThirdDownDefPct, 1e-9)
	assert.InDelta(t, 100.0, stats.RedZoneDefPct, 1e-9)
}

func TestComputeTeamStatsSkipsPlaysWithoutYardage(t *testing.T) {
	games := []*store.Game{historyGame("g1", "KC", "BUF", 14, 10)}
	plays := map[string][]repository.HistoryPlay{
		"g1": {
			{PossessionTeamID: nullStr("KC"), Down: nullInt(3), IsFirstDown: nullBool(true)},
			{PossessionTeamID: nullStr("KC"), YardsGained: nullInt(0), Down: nullInt(3)},
		},
	}

	stats := ComputeTeamStats("KC", games, plays)

	// The yardless play is ignored entirely; the zero-yard play counts.
	assert.InDelta(t, 0.0, stats.ThirdDownPct, 1e-9)
	assert.Equal(t, 0.0, stats.YardsPerGame)
}

func TestComputeTeamStatsTurnoverRates(t *testing.T) {
	games := []*store.Game{
		historyGame("g1", "KC", "BUF", 20, 10),
		historyGame("g2", "DEN", "KC", 13, 27),
	}
	plays := map[string][]repository.HistoryPlay{
		"g1": {
			{PossessionTeamID: nullStr("KC"), YardsGained: nullInt(0), IsTurnover: nullBool(true)},
			{PossessionTeamID: nullStr("BUF"), YardsGained: nullInt(0), IsTurnover: nullBool(true)},
		},
		"g2": {
			{PossessionTeamID: nullStr("DEN"), YardsGained: nullInt(0), IsTurnover: nullBool(true)},
		},
	}

	stats := ComputeTeamStats("KC", games, plays)

	assert.InDelta(t, 0.5, stats.TurnoverRate, 1e-9)
	assert.InDelta(t, 1.0, stats.TakeawayRate, 1e-9)
}

func TestComputeTeamStatsRecentForm(t *testing.T) {
	// Newest first, matching the repository's ordering
	games := []*store.Game{
		historyGame("g5", "KC", "LV", 30, 10),
		historyGame("g4", "DEN", "KC", 24, 20),
		historyGame("g3", "KC", "LAC", 17, 14),
		historyGame("g2", "BUF", "KC", 21, 28),
		historyGame("g1", "KC", "CIN", 13, 20),
	}

	stats := ComputeTeamStats("KC", games, nil)

	assert.Equal(t, 2, stats.Last3Wins)
	assert.InDelta(t, (30.0+20+17)/3, stats.Last3PointsPerGame, 1e-9)
	assert.InDelta(t, (10.0+24+14)/3, stats.Last3PointsAllowed, 1e-9)
	assert.Equal(t, 3, stats.Last5Wins)
	assert.InDelta(t, (30.0+20+17+28+13)/5, stats.Last5PointsPerGame, 1e-9)
}

func TestComputeTeamStatsRecentFormUnderWindow(t *testing.T) {
	games := []*store.Game{
		historyGame("g2", "KC", "LV", 30, 10),
		historyGame("g1", "DEN", "KC", 10, 24),
	}

	stats := ComputeTeamStats("KC", games, nil)

	assert.Equal(t, 0, stats.Last3Wins)
	assert.Equal(t, 0.0, stats.Last3PointsPerGame)
	assert.Equal(t, 0, stats.Last5Wins)
	assert.Equal(t, 10.0, stats.PointsAllowedPerGame)
}

func TestComputeHeadToHead(t *testing.T) {
	games := []*store.Game{
		historyGame("g3", "KC", "BUF", 27, 24),  // current home won at home
		historyGame("g2", "BUF", "KC", 31, 17),  // current home lost on the road
		historyGame("g1", "BUF", "KC", 20, 23),  // current home won on the road
	}

	stats := ComputeHeadToHead("KC", games)

	assert.Equal(t, 2, stats.HomeWins)
	assert.Equal(t, 1, stats.AwayWins)
	assert.InDelta(t, (51.0+48+43)/3, stats.AvgTotalPoints, 1e-9)
}

func TestComputeHeadToHeadTieCountsForAway(t *testing.T) {
	games := []*store.Game{historyGame("g1", "KC", "BUF", 20, 20)}
	stats := ComputeHeadToHead("KC", games)

	assert.Equal(t, 0, stats.HomeWins)
	assert.Equal(t, 1, stats.AwayWins)
}

func TestComputeHeadToHeadEmpty(t *testing.T) {
	require.Equal(t, HeadToHeadStats{}, ComputeHeadToHead("KC", nil))
}
