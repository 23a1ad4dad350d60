package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/repository"
)

// TeamStats is a team's season-to-date rollup as of a game date. Zero is
// the default everywhere: a team with no prior games keeps an all-zero
// record rather than nulls.
type TeamStats struct {
	PointsPerGame    float64 `json:"points_per_game"`
	YardsPerGame     float64 `json:"yards_per_game"`
	PassYardsPerGame float64 `json:"pass_yards_per_game"`
	RushYardsPerGame float64 `json:"rush_yards_per_game"`
	ThirdDownPct     float64 `json:"third_down_pct"`
	RedZonePct       float64 `json:"red_zone_pct"`
	TurnoverRate     float64 `json:"turnover_rate"`

	PointsAllowedPerGame    float64 `json:"points_allowed_per_game"`
	YardsAllowedPerGame     float64 `json:"yards_allowed_per_game"`
	PassYardsAllowedPerGame float64 `json:"pass_yards_allowed_per_game"`
	RushYardsAllowedPerGame float64 `json:"rush_yards_allowed_per_game"`
	ThirdDownDefPct         float64 `json:"third_down_def_pct"`
	RedZoneDefPct           float64 `json:"red_zone_def_pct"`
	TakeawayRate            float64 `json:"takeaway_rate"`
	SacksPerGame            float64 `json:"sacks_per_game"`

	Last3Wins          int     `json:"last3_wins"`
	Last3PointsPerGame float64 `json:"last3_points_per_game"`
	Last3PointsAllowed float64 `json:"last3_points_allowed"`
	Last5Wins          int     `json:"last5_wins"`
	Last5PointsPerGame float64 `json:"last5_points_per_game"`
	Last5PointsAllowed float64 `json:"last5_points_allowed"`
}

// HeadToHeadStats summarizes the last meetings between two clubs from the
// perspective of the current home/away assignment.
type HeadToHeadStats struct {
	HomeWins       int     `json:"head_to_head_home_wins"`
	AwayWins       int     `json:"head_to_head_away_wins"`
	AvgTotalPoints float64 `json:"head_to_head_avg_total_points"`
}

// HistoricalStats is the full rollup bundle attached to a game at save
// time.
type HistoricalStats struct {
	HomeTeam   TeamStats       `json:"home_team"`
	AwayTeam   TeamStats       `json:"away_team"`
	HeadToHead HeadToHeadStats `json:"head_to_head"`
}

// ComputeTeamStats accumulates a team's rollup from its prior games
// (newest first) and their plays. Pure function; the repository supplies
// the inputs.
func ComputeTeamStats(teamID string, games []*store.Game, playsByGame map[string][]repository.HistoryPlay) TeamStats {
	var stats TeamStats
	if len(games) == 0 {
		return stats
	}

	gamesCount := len(games)
	var totalPoints, totalPointsAllowed int
	var totalYards, totalPassYards, totalRushYards int
	var totalYardsAllowed, totalPassYardsAllowed, totalRushYardsAllowed int
	var thirdDownAttempts, thirdDownConversions int
	var thirdDownDefAttempts, thirdDownDefStops int
	var redZoneAttempts, redZoneTDs int
	var redZoneDefAttempts, redZoneDefStops int
	var turnoversCommitted, turnoversForced int
	var sacksForced int

	for _, game := range games {
		teamWasHome := game.HomeTeamID == teamID
		if teamWasHome {
			totalPoints += game.HomeScoreTotal
			totalPointsAllowed += game.AwayScoreTotal
		} else {
			totalPoints += game.AwayScoreTotal
			totalPointsAllowed += game.HomeScoreTotal
		}

		for _, play := range playsByGame[game.GameID] {
			// Plays that never yielded a yardage figure carry no signal
			// for the offense/defense splits.
			if !play.YardsGained.Valid {
				continue
			}

			yards := int(play.YardsGained.Int32)
			positiveYards := yards
			if positiveYards < 0 {
				positiveYards = 0
			}
			playType := play.PlayType.String
			teamHadPossession := play.PossessionTeamID.String == teamID

			if teamHadPossession {
				totalYards += yards
				if strings.Contains(playType, "pass") {
					totalPassYards += positiveYards
				} else if strings.Contains(playType, "rush") {
					totalRushYards += positiveYards
				}

				if play.Down.Valid && play.Down.Int32 == 3 {
					thirdDownAttempts++
					if play.IsFirstDown.Valid && play.IsFirstDown.Bool {
						thirdDownConversions++
					}
				}
				if play.IsRedzonePlay.Valid && play.IsRedzonePlay.Bool {
					redZoneAttempts++
					if (play.IsTouchdownPass.Valid && play.IsTouchdownPass.Bool) ||
						(play.IsTouchdownRun.Valid && play.IsTouchdownRun.Bool) {
						redZoneTDs++
					}
				}
				if play.IsTurnover.Valid && play.IsTurnover.Bool {
					turnoversCommitted++
				}
			} else {
				totalYardsAllowed += yards
				if strings.Contains(playType, "pass") {
					totalPassYardsAllowed += positiveYards
				} else if strings.Contains(playType, "rush") {
					totalRushYardsAllowed += positiveYards
				}

				if play.Down.Valid && play.Down.Int32 == 3 {
					thirdDownDefAttempts++
					if !(play.IsFirstDown.Valid && play.IsFirstDown.Bool) {
						thirdDownDefStops++
					}
				}
				if play.IsRedzonePlay.Valid && play.IsRedzonePlay.Bool {
					redZoneDefAttempts++
					if !((play.IsTouchdownPass.Valid && play.IsTouchdownPass.Bool) ||
						(play.IsTouchdownRun.Valid && play.IsTouchdownRun.Bool)) {
						redZoneDefStops++
					}
				}
				if play.IsTurnover.Valid && play.IsTurnover.Bool {
					turnoversForced++
				}
				if play.IsSack.Valid && play.IsSack.Bool {
					sacksForced++
				}
			}
		}
	}

	n := float64(gamesCount)
	stats.PointsPerGame = float64(totalPoints) / n
	stats.PointsAllowedPerGame = float64(totalPointsAllowed) / n
	stats.YardsPerGame = float64(totalYards) / n
	stats.PassYardsPerGame = float64(totalPassYards) / n
	stats.RushYardsPerGame = float64(totalRushYards) / n
	stats.YardsAllowedPerGame = float64(totalYardsAllowed) / n
	stats.PassYardsAllowedPerGame = float64(totalPassYardsAllowed) / n
	stats.RushYardsAllowedPerGame = float64(totalRushYardsAllowed) / n
	stats.SacksPerGame = float64(sacksForced) / n
	stats.TurnoverRate = float64(turnoversCommitted) / n
	stats.TakeawayRate = float64(turnoversForced) / n

	if thirdDownAttempts > 0 {
		stats.ThirdDownPct = float64(thirdDownConversions) / float64(thirdDownAttempts) * 100
	}
	if thirdDownDefAttempts > 0 {
		stats.ThirdDownDefPct = float64(thirdDownDefStops) / float64(thirdDownDefAttempts) * 100
	}
	if redZoneAttempts > 0 {
		stats.RedZonePct = float64(redZoneTDs) / float64(redZoneAttempts) * 100
	}
	if redZoneDefAttempts > 0 {
		stats.RedZoneDefPct = float64(redZoneDefStops) / float64(redZoneDefAttempts) * 100
	}

	stats.Last3Wins, stats.Last3PointsPerGame, stats.Last3PointsAllowed = recentForm(teamID, games, 3)
	stats.Last5Wins, stats.Last5PointsPerGame, stats.Last5PointsAllowed = recentForm(teamID, games, 5)

	return stats
}

// recentForm sums wins and scoring over the newest window games. Fewer
// games than the window leaves the zero defaults.
func recentForm(teamID string, games []*store.Game, window int) (int, float64, float64) {
	if len(games) < window {
		return 0, 0, 0
	}

	var wins, points, pointsAllowed int
	for _, game := range games[:window] {
		if game.HomeTeamID == teamID {
			points += game.HomeScoreTotal
			pointsAllowed += game.AwayScoreTotal
			if game.HomeScoreTotal > game.AwayScoreTotal {
				wins++
			}
		} else {
			points += game.AwayScoreTotal
			pointsAllowed += game.HomeScoreTotal
			if game.AwayScoreTotal > game.HomeScoreTotal {
				wins++
			}
		}
	}

	return wins, float64(points) / float64(window), float64(pointsAllowed) / float64(window)
}

// ComputeHeadToHead tallies past meetings from the current home team's
// perspective. A tie counts for the other side, matching the win test
// being strict.
func ComputeHeadToHead(currentHomeTeamID string, games []*store.Game) HeadToHeadStats {
	var stats HeadToHeadStats
	if len(games) == 0 {
		return stats
	}

	var totalPoints int
	for _, game := range games {
		totalPoints += game.HomeScoreTotal + game.AwayScoreTotal

		if game.HomeTeamID == currentHomeTeamID {
			if game.HomeScoreTotal > game.AwayScoreTotal {
				stats.HomeWins++
			} else {
				stats.AwayWins++
			}
		} else {
			if game.AwayScoreTotal > game.HomeScoreTotal {
				stats.HomeWins++
			} else {
				stats.AwayWins++
			}
		}
	}

	stats.AvgTotalPoints = float64(totalPoints) / float64(len(games))
	return stats
}

// HistoryService computes season-to-date rollups from stored games.
type HistoryService struct {
	historyRepo *repository.HistoryRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(db *store.Database) *HistoryService {
	return &HistoryService{
		historyRepo: repository.NewHistoryRepository(db),
	}
}

// TeamStatsAsOf computes one team's rollup from games strictly before
// the given date.
func (s *HistoryService) TeamStatsAsOf(ctx context.Context, teamID string, season int, beforeDate string) (*TeamStats, error) {
	games, err := s.historyRepo.PriorGames(ctx, teamID, season, beforeDate)
	if err != nil {
		return nil, fmt.Errorf("fetching prior games: %w", err)
	}

	playsByGame := make(map[string][]repository.HistoryPlay, len(games))
	for _, game := range games {
		plays, err := s.historyRepo.PlaysForGame(ctx, game.GameID)
		if err != nil {
			return nil, fmt.Errorf("fetching plays for %s: %w", game.GameID, err)
		}
		playsByGame[game.GameID] = plays
	}

	stats := ComputeTeamStats(teamID, games, playsByGame)
	return &stats, nil
}

// GameRollups computes both teams' rollups plus head-to-head for a game
// about to be saved.
func (s *HistoryService) GameRollups(ctx context.Context, homeTeamID, awayTeamID string, season int, gameDate string) (*HistoricalStats, error) {
	home, err := s.TeamStatsAsOf(ctx, homeTeamID, season, gameDate)
	if err != nil {
		return nil, fmt.Errorf("home team stats: %w", err)
	}

	away, err := s.TeamStatsAsOf(ctx, awayTeamID, season, gameDate)
	if err != nil {
		return nil, fmt.Errorf("away team stats: %w", err)
	}

	h2hGames, err := s.historyRepo.HeadToHeadGames(ctx, homeTeamID, awayTeamID, gameDate)
	if err != nil {
		return nil, fmt.Errorf("head-to-head games: %w", err)
	}

	return &HistoricalStats{
		HomeTeam:   *home,
		AwayTeam:   *away,
		HeadToHead: ComputeHeadToHead(homeTeamID, h2hGames),
	}, nil
}
