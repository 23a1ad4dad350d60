package features

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/nfl"
)

const (
	homeID = "KC"
	awayID = "BUF"
)

func contextPlay(possession string, detail *nfl.PlayDetail) nfl.Play {
	p := nfl.Play{
		PossessionTeamID: possession,
		DefenseTeamID:    awayID,
		HomeTeamID:       homeID,
	}
	if detail != nil {
		p.Summary = &nfl.PlaySummary{Play: detail}
	}
	return p
}

func outdoorGame(weather string) *nfl.Game {
	return &nfl.Game{
		GameInfo: nfl.GameInfo{ID: "g1", Weather: weather},
		Venue:    &nfl.Venue{RoofType: "OUTDOOR"},
	}
}

func TestComputeContextMissingSummary(t *testing.T) {
	plays := []nfl.Play{contextPlay(homeID, nil)}
	ctx := ComputeContext(plays, 0, outdoorGame(""))
	assert.Equal(t, Context{}, ctx)
}

func TestComputeContextDriveTracking(t *testing.T) {
	plays := []nfl.Play{
		contextPlay(homeID, &nfl.PlayDetail{AbsoluteYardlineNumber: 25}),
		contextPlay(homeID, &nfl.PlayDetail{AbsoluteYardlineNumber: 30}),
		contextPlay(awayID, &nfl.PlayDetail{AbsoluteYardlineNumber: 70}),
		contextPlay(awayID, &nfl.PlayDetail{AbsoluteYardlineNumber: 65}),
		contextPlay(homeID, &nfl.PlayDetail{AbsoluteYardlineNumber: 40}),
		contextPlay(homeID, &nfl.PlayDetail{AbsoluteYardlineNumber: 48}),
	}

	ctx := ComputeContext(plays, 5, nil)

	require.True(t, ctx.DriveNumber.Valid)
	assert.Equal(t, int32(3), ctx.DriveNumber.Int32)
	assert.Equal(t, int32(2), ctx.DrivePlayNumber.Int32)
	assert.Equal(t, int32(2), ctx.DrivePlaysSoFar.Int32)
	require.True(t, ctx.DriveStartYardline.Valid)
	assert.Equal(t, int32(40), ctx.DriveStartYardline.Int32)
}

func TestComputeContextFirstPlayDefaults(t *testing.T) {
	plays := []nfl.Play{contextPlay(homeID, &nfl.PlayDetail{})}
	ctx := ComputeContext(plays, 0, nil)

	assert.Equal(t, int32(1), ctx.DriveNumber.Int32)
	assert.Equal(t, int32(1), ctx.DrivePlayNumber.Int32)
	assert.Equal(t, int32(1), ctx.DrivePlaysSoFar.Int32)
	assert.False(t, ctx.DriveStartYardline.Valid)
}

func TestComputeContextDriveTimeOfPossession(t *testing.T) {
	plays := []nfl.Play{
		contextPlay(homeID, &nfl.PlayDetail{TimeOfDayUTC: "2025-09-07T17:05:00Z"}),
		contextPlay(homeID, &nfl.PlayDetail{TimeOfDayUTC: "2025-09-07T17:07:30Z"}),
	}

	ctx := ComputeContext(plays, 1, nil)

	require.True(t, ctx.DriveTimeOfPossession.Valid)
	assert.Equal(t, int32(-150), ctx.DriveTimeOfPossession.Int32)
}

func TestComputeContextGameScript(t *testing.T) {
	tests := []struct {
		name       string
		possession string
		home, away int
		quarter    int
		winning    bool
		losing     bool
		comeback   bool
		blowout    bool
	}{
		{"home leading", homeID, 21, 14, 2, true, false, false, false},
		{"home trailing big late", homeID, 10, 31, 4, false, true, true, true},
		{"trailing under blowout margin", homeID, 10, 30, 4, false, true, true, false},
		{"tied", homeID, 7, 7, 3, false, false, false, false},
		{"away side orientation", awayID, 14, 24, 2, true, false, false, false},
		{"blowout lead", homeID, 35, 7, 3, true, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plays := []nfl.Play{contextPlay(tt.possession, &nfl.PlayDetail{
				HomeScore:    tt.home,
				VisitorScore: tt.away,
				Quarter:      tt.quarter,
			})}
			ctx := ComputeContext(plays, 0, nil)

			require.True(t, ctx.IsWinningTeam.Valid)
			assert.Equal(t, tt.winning, ctx.IsWinningTeam.Bool)
			assert.Equal(t, tt.losing, ctx.IsLosingTeam.Bool)
			assert.Equal(t, tt.comeback, ctx.IsComebackSituation.Bool)
			assert.Equal(t, tt.blowout, ctx.IsBlowoutSituation.Bool)
		})
	}
}

func TestComputeContextCompetitiveIndex(t *testing.T) {
	plays := []nfl.Play{contextPlay(homeID, &nfl.PlayDetail{
		HomeScore:    14,
		VisitorScore: 14,
		Quarter:      4,
	})}
	ctx := ComputeContext(plays, 0, nil)

	require.True(t, ctx.GameCompetitiveIndex.Valid)
	assert.InDelta(t, 1.0, ctx.GameCompetitiveIndex.Float64, 1e-9)

	blowout := []nfl.Play{contextPlay(homeID, &nfl.PlayDetail{
		HomeScore:    42,
		VisitorScore: 0,
		Quarter:      1,
	})}
	ctx = ComputeContext(blowout, 0, nil)
	assert.InDelta(t, 0.075, ctx.GameCompetitiveIndex.Float64, 1e-9)
}

func TestComputeContextMomentum(t *testing.T) {
	plays := []nfl.Play{
		contextPlay(homeID, &nfl.PlayDetail{IsScoring: true}),
		contextPlay(awayID, &nfl.PlayDetail{IsChangeOfPossession: true}),
		contextPlay(homeID, &nfl.PlayDetail{}),
		contextPlay(homeID, &nfl.PlayDetail{IsChangeOfPossession: true}),
		contextPlay(awayID, &nfl.PlayDetail{IsScoring: true}),
		contextPlay(homeID, &nfl.PlayDetail{}),
	}

	ctx := ComputeContext(plays, 5, nil)

	assert.Equal(t, int32(0), ctx.PossessingTeamLastScore.Int32)
	assert.Equal(t, int32(4), ctx.OpposingTeamLastScore.Int32)
	assert.Equal(t, int32(1), ctx.PossessingTeamTurnovers.Int32)
	assert.Equal(t, int32(1), ctx.OpposingTeamTurnovers.Int32)
	assert.Equal(t, int32(0), ctx.TurnoverMargin.Int32)
}

func TestComputeContextTurnoverMarginFavorsPossession(t *testing.T) {
	plays := []nfl.Play{
		contextPlay(awayID, &nfl.PlayDetail{IsChangeOfPossession: true}),
		contextPlay(awayID, &nfl.PlayDetail{IsChangeOfPossession: true}),
		contextPlay(homeID, &nfl.PlayDetail{}),
	}

	ctx := ComputeContext(plays, 2, nil)
	assert.Equal(t, int32(2), ctx.TurnoverMargin.Int32)
}

func TestComputeContextTimeouts(t *testing.T) {
	plays := []nfl.Play{contextPlay(awayID, &nfl.PlayDetail{
		HomeTimeoutsLeft:    2,
		VisitorTimeoutsLeft: 3,
	})}

	ctx := ComputeContext(plays, 0, nil)

	assert.Equal(t, int32(3), ctx.PossessingTeamTimeouts.Int32)
	assert.Equal(t, int32(2), ctx.OpposingTeamTimeouts.Int32)
	assert.Equal(t, int32(1), ctx.TimeoutAdvantage.Int32)
}

func TestComputeContextWeatherImpactIndoorAlwaysZero(t *testing.T) {
	for _, roof := range []string{"DOME", "RETRACTABLE_CLOSED", "INDOOR"} {
		game := &nfl.Game{
			GameInfo: nfl.GameInfo{Weather: "25°F, Wind NW 25 mph, Snow"},
			Venue:    &nfl.Venue{RoofType: roof},
		}
		plays := []nfl.Play{contextPlay(homeID, &nfl.PlayDetail{})}
		ctx := ComputeContext(plays, 0, game)

		require.True(t, ctx.WeatherImpactScore.Valid, roof)
		assert.Equal(t, 0.0, ctx.WeatherImpactScore.Float64, roof)
		require.True(t, ctx.IsIndoorGame.Valid)
		assert.True(t, ctx.IsIndoorGame.Bool)
	}
}

func TestComputeContextWeatherImpactWindMonotonic(t *testing.T) {
	speeds := []int{5, 11, 16, 21, 30}
	var last float64 = -1
	for _, speed := range speeds {
		game := outdoorGame(fmt.Sprintf("55°F, Wind NW %d mph", speed))
		plays := []nfl.Play{contextPlay(homeID, &nfl.PlayDetail{})}
		ctx := ComputeContext(plays, 0, game)

		require.True(t, ctx.WeatherImpactScore.Valid)
		assert.GreaterOrEqual(t, ctx.WeatherImpactScore.Float64, last, "wind %d mph", speed)
		last = ctx.WeatherImpactScore.Float64
	}
}

func TestComputeContextWeatherImpactAccumulatesAndClamps(t *testing.T) {
	game := outdoorGame("20°F, Wind N 25 mph, Heavy Snow, Sleet")
	plays := []nfl.Play{contextPlay(homeID, &nfl.PlayDetail{})}
	ctx := ComputeContext(plays, 0, game)

	// 0.4 wind + 0.3 precipitation + 0.2 freezing
	assert.InDelta(t, 0.9, ctx.WeatherImpactScore.Float64, 1e-9)
	assert.False(t, ctx.IsIndoorGame.Bool)
}

func TestComputeContextFieldPositionBuckets(t *testing.T) {
	tests := []struct {
		yardline int
		category string
	}{
		{5, "own_territory"},
		{40, "own_territory"},
		{41, "midfield"},
		{60, "midfield"},
		{61, "opponent_territory"},
		{80, "opponent_territory"},
		{81, "red_zone"},
		{99, "red_zone"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			plays := []nfl.Play{contextPlay(homeID, &nfl.PlayDetail{AbsoluteYardlineNumber: tt.yardline})}
			ctx := ComputeContext(plays, 0, nil)

			require.True(t, ctx.FieldPositionCategory.Valid)
			assert.Equal(t, tt.category, ctx.FieldPositionCategory.String)
			assert.Equal(t, int32(tt.yardline), ctx.YardsFromOwnEndzone.Int32)
			assert.Equal(t, int32(100-tt.yardline), ctx.YardsFromOpponentEndzone.Int32)
		})
	}
}

func TestMustScoreSituation(t *testing.T) {
	trailing := &nfl.PlayDetail{Quarter: 4, HomeScore: 10, VisitorScore: 20}

	got := MustScoreSituation(trailing, true, sql.NullInt32{Int32: 240, Valid: true})
	require.True(t, got.Valid)
	assert.True(t, got.Bool)

	got = MustScoreSituation(trailing, false, sql.NullInt32{Int32: 240, Valid: true})
	require.True(t, got.Valid)
	assert.False(t, got.Bool)

	got = MustScoreSituation(trailing, true, sql.NullInt32{Int32: 400, Valid: true})
	assert.False(t, got.Valid)

	early := &nfl.PlayDetail{Quarter: 3, HomeScore: 0, VisitorScore: 20}
	got = MustScoreSituation(early, true, sql.NullInt32{Int32: 100, Valid: true})
	assert.False(t, got.Valid)
}
