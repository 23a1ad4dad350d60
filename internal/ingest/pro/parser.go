package pro

import (
	"github.com/fortuna/gridiron/internal/nfl"
)

// BuildGame assembles the vendor game aggregate from the week feeds: the
// live scores entry, the per-game metadata, the matched odds, and the raw
// standings document. Metadata and odds may be nil; the game is built from
// whatever arrived.
func BuildGame(season int, seasonType, week string, live LiveGame, meta *GameMetadata, odds *GameOdds, standings map[string]interface{}) *nfl.Game {
	game := &nfl.Game{
		GameInfo: nfl.GameInfo{
			ID:            live.GameID,
			Season:        season,
			SeasonType:    seasonType,
			Week:          week,
			Status:        live.Phase,
			DisplayStatus: live.DisplayStatus,
			GameState:     live.GameState,
			Attendance:    live.Attendance,
			Weather:       live.Weather,
			GamebookURL:   live.GameBookURL,
		},
		Situation: nfl.GameSituation{
			Clock:      live.Clock,
			Quarter:    live.Quarter,
			Down:       live.Down,
			Distance:   live.Distance,
			YardLine:   live.YardLine,
			IsRedZone:  live.IsRedZone,
			IsGoalToGo: live.IsGoalToGo,
		},
		Teams: nfl.Teams{
			Home: nfl.Team{
				GameStats: nfl.TeamGameStats{
					Score:      live.HomeTeam.Score,
					Timeouts:   live.HomeTeam.Timeouts,
					Possession: live.HomeTeam.HasPossession,
				},
			},
			Away: nfl.Team{
				GameStats: nfl.TeamGameStats{
					Score:      live.AwayTeam.Score,
					Timeouts:   live.AwayTeam.Timeouts,
					Possession: live.AwayTeam.HasPossession,
				},
			},
		},
	}

	if meta != nil {
		game.GameInfo.Date = meta.GameDate
		game.GameInfo.Time = meta.GameTimeEastern
		game.GameInfo.Network = meta.NetworkChannel
		game.Venue = meta.Site
		game.Teams.Home.Info = teamInfo(meta.HomeTeam)
		game.Teams.Away.Info = teamInfo(meta.VisitorTeam)
	}

	if odds != nil {
		game.Betting = &nfl.BettingOdds{
			Moneyline: odds.Moneyline,
			Spread:    odds.Spread,
			Totals:    odds.Totals,
			UpdatedAt: odds.UpdatedAt,
		}
	}

	if standings != nil {
		game.Metadata = map[string]interface{}{"standings": standings}
	}

	return game
}

func teamInfo(meta TeamMetadata) nfl.TeamInfo {
	info := nfl.TeamInfo{
		ID:           meta.SmartID,
		Name:         meta.FullName,
		Nickname:     meta.Nick,
		Abbreviation: meta.Abbr,
	}
	if meta.CityState != "" || meta.ConferenceAbbr != "" || meta.DivisionAbbr != "" {
		info.Location = &nfl.TeamLocation{
			CityState:  meta.CityState,
			Conference: meta.ConferenceAbbr,
			Division:   meta.DivisionAbbr,
		}
	}
	return info
}

// MatchOdds finds a game's odds entry by its team abbreviation pair. The
// odds feed carries no game ids.
func MatchOdds(odds *OddsResponse, homeAbbr, awayAbbr string) *GameOdds {
	if odds == nil || homeAbbr == "" || awayAbbr == "" {
		return nil
	}
	for i := range odds.Games {
		g := &odds.Games[i]
		if g.HomeTeamAbbr == homeAbbr && g.VisitorTeamAbbr == awayAbbr {
			return g
		}
	}
	return nil
}
