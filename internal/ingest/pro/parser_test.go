package pro

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/nfl"
)

const liveGameFixture = `{
	"gameId": "2024_10_BUF_KC",
	"phase": "FINAL",
	"displayStatus": "Final",
	"gameState": "COMPLETED",
	"attendance": 73426,
	"weather": "72°F, Wind NW 10 mph, Clear",
	"gameBookUrl": "https://example.com/gamebook.pdf",
	"clock": "0:00",
	"quarter": "4",
	"yardLine": "KC 25",
	"homeTeam": {
		"score": {"q1": 7, "q2": 3, "q3": 10, "q4": 7, "ot": 0, "total": 27},
		"timeouts": {"remaining": 1, "used": 2},
		"hasPossession": true
	},
	"awayTeam": {
		"score": {"q1": 0, "q2": 14, "q3": 3, "q4": 3, "ot": 0, "total": 20},
		"timeouts": {"remaining": 2, "used": 1}
	}
}`

const metadataFixture = `{
	"homeTeam": {
		"smartId": "KC",
		"fullName": "Kansas City Chiefs",
		"nick": "Chiefs",
		"abbr": "KC",
		"cityState": "Kansas City, MO",
		"conferenceAbbr": "AFC",
		"divisionAbbr": "AFC West"
	},
	"visitorTeam": {
		"smartId": "BUF",
		"fullName": "Buffalo Bills",
		"nick": "Bills",
		"abbr": "BUF"
	},
	"site": {
		"siteFullName": "GEHA Field at Arrowhead Stadium",
		"siteCity": "Kansas City",
		"siteState": "MO",
		"roofType": "OUTDOOR"
	},
	"gameDate": "2024-11-10",
	"gameTimeEastern": "16:25",
	"networkChannel": "CBS"
}`

func TestBuildGameFromFeeds(t *testing.T) {
	var live LiveGame
	require.NoError(t, json.Unmarshal([]byte(liveGameFixture), &live))

	var meta GameMetadata
	require.NoError(t, json.Unmarshal([]byte(metadataFixture), &meta))

	odds := &GameOdds{
		HomeTeamAbbr:    "KC",
		VisitorTeamAbbr: "BUF",
		Spread:          &nfl.Spread{HomeHandicap: "-2.5", AwayHandicap: "+2.5"},
	}
	standings := map[string]interface{}{"weeks": []interface{}{}}

	game := BuildGame(2024, "REG", "WEEK_10", live, &meta, odds, standings)

	assert.Equal(t, "2024_10_BUF_KC", game.GameInfo.ID)
	assert.Equal(t, 2024, game.GameInfo.Season)
	assert.Equal(t, "WEEK_10", game.GameInfo.Week)
	assert.Equal(t, "FINAL", game.GameInfo.Status)
	assert.Equal(t, "2024-11-10", game.GameInfo.Date)
	assert.Equal(t, "CBS", game.GameInfo.Network)

	assert.Equal(t, "KC", game.Teams.Home.Info.ID)
	assert.Equal(t, "Kansas City Chiefs", game.Teams.Home.Info.Name)
	require.NotNil(t, game.Teams.Home.Info.Location)
	assert.Equal(t, "AFC", game.Teams.Home.Info.Location.Conference)
	assert.Nil(t, game.Teams.Away.Info.Location)

	assert.Equal(t, 27, game.Teams.Home.GameStats.Score.Total)
	assert.Equal(t, 20, game.Teams.Away.GameStats.Score.Total)
	assert.True(t, game.Teams.Home.GameStats.Possession)
	assert.Equal(t, 1, game.Teams.Home.GameStats.Timeouts.Remaining)

	require.NotNil(t, game.Venue)
	assert.Equal(t, "OUTDOOR", game.Venue.RoofType)

	require.NotNil(t, game.Betting)
	assert.Equal(t, "-2.5", game.Betting.Spread.HomeHandicap)

	require.NotNil(t, game.Metadata)
	_, hasStandings := game.Metadata["standings"]
	assert.True(t, hasStandings)
}

func TestBuildGameWithoutMetadata(t *testing.T) {
	var live LiveGame
	require.NoError(t, json.Unmarshal([]byte(liveGameFixture), &live))

	game := BuildGame(2024, "REG", "WEEK_10", live, nil, nil, nil)

	assert.Equal(t, "2024_10_BUF_KC", game.GameInfo.ID)
	assert.Empty(t, game.Teams.Home.Info.ID)
	assert.Nil(t, game.Venue)
	assert.Nil(t, game.Betting)
	assert.Nil(t, game.Metadata)
	// Live scores still populate the line score
	assert.Equal(t, 27, game.Teams.Home.GameStats.Score.Total)
}

func TestMatchOdds(t *testing.T) {
	odds := &OddsResponse{
		Games: []GameOdds{
			{HomeTeamAbbr: "DEN", VisitorTeamAbbr: "LV"},
			{HomeTeamAbbr: "KC", VisitorTeamAbbr: "BUF", UpdatedAt: "2024-11-10T12:00:00Z"},
		},
	}

	match := MatchOdds(odds, "KC", "BUF")
	require.NotNil(t, match)
	assert.Equal(t, "2024-11-10T12:00:00Z", match.UpdatedAt)

	assert.Nil(t, MatchOdds(odds, "KC", "DEN"))
	assert.Nil(t, MatchOdds(odds, "", "BUF"))
	assert.Nil(t, MatchOdds(nil, "KC", "BUF"))
}

func TestWeekNumber(t *testing.T) {
	assert.Equal(t, "10", weekNumber("WEEK_10"))
	assert.Equal(t, "3", weekNumber("3"))
}
