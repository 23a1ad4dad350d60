package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/fortuna/gridiron/internal/cache"
	"github.com/fortuna/gridiron/internal/features"
	"github.com/fortuna/gridiron/internal/nfl"
	"github.com/fortuna/gridiron/internal/publisher"
	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/repository"
)

// GameService handles game persistence and the feature pipeline that runs
// on every save.
type GameService struct {
	db         *store.Database
	gameRepo   *repository.GameRepository
	playRepo   *repository.PlayRepository
	playerRepo *repository.PlayerRepository
	history    *HistoryService
	cache      *cache.RedisCache
	publisher  *publisher.RedisPublisher
}

// NewGameService creates a new game service. Cache and publisher may be
// nil; saves then skip invalidation and event publishing.
func NewGameService(db *store.Database, c *cache.RedisCache, pub *publisher.RedisPublisher) *GameService {
	return &GameService{
		db:         db,
		gameRepo:   repository.NewGameRepository(db),
		playRepo:   repository.NewPlayRepository(db),
		playerRepo: repository.NewPlayerRepository(db),
		history:    NewHistoryService(db),
		cache:      c,
		publisher:  pub,
	}
}

// SaveGame persists a vendor game payload: the game row, every play with
// its full derived-feature set, play stats, and the players seen in
// personnel lists. Plays are deleted and reinserted so re-ingesting a
// game is idempotent. The write is one transaction.
func (s *GameService) SaveGame(ctx context.Context, game *nfl.Game) error {
	if game == nil || game.GameInfo.ID == "" {
		return fmt.Errorf("game payload missing id")
	}
	if game.Teams.Home.Info.ID == "" || game.Teams.Away.Info.ID == "" {
		return fmt.Errorf("game %s missing team identity", game.GameInfo.ID)
	}

	row := buildGameRow(game)
	applyStandings(row, game)
	s.attachRollups(ctx, row, game)

	playRows, playStats := s.buildPlayRows(game)
	players := collectPlayers(game)

	tx, err := s.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.gameRepo.UpsertTx(ctx, tx, row); err != nil {
		return fmt.Errorf("upserting game %s: %w", row.GameID, err)
	}

	if err := s.playRepo.DeleteByGameTx(ctx, tx, row.GameID); err != nil {
		return fmt.Errorf("clearing plays for %s: %w", row.GameID, err)
	}

	for _, player := range players {
		if err := s.playerRepo.UpsertTx(ctx, tx, player); err != nil {
			return fmt.Errorf("upserting player %d: %w", player.NFLID, err)
		}
	}

	for i, play := range playRows {
		if err := s.playRepo.InsertTx(ctx, tx, play); err != nil {
			return fmt.Errorf("inserting play %d of %s: %w", play.PlayID, row.GameID, err)
		}
		for _, stat := range playStats[i] {
			stat.PlayRowID = play.ID
			if err := s.playRepo.InsertStatTx(ctx, tx, stat); err != nil {
				return fmt.Errorf("inserting play stat for %s: %w", row.GameID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing game %s: %w", row.GameID, err)
	}

	log.Printf("[games] ✓ saved %s: %d plays, %d players", row.GameID, len(playRows), len(players))

	s.afterSave(ctx, game, len(playRows))
	return nil
}

// afterSave invalidates rollup caches and announces the save. Failures
// here never fail the save itself.
func (s *GameService) afterSave(ctx context.Context, game *nfl.Game, playCount int) {
	if s.cache != nil {
		for _, teamID := range []string{game.Teams.Home.Info.ID, game.Teams.Away.Info.ID} {
			if err := s.cache.InvalidateTeamHistory(ctx, teamID); err != nil {
				log.Printf("[games] warning: invalidating history cache for %s: %v", teamID, err)
			}
		}
	}

	if s.publisher != nil {
		event := publisher.GameSavedEvent{
			GameID:     game.GameInfo.ID,
			Season:     game.GameInfo.Season,
			SeasonType: game.GameInfo.SeasonType,
			Week:       game.GameInfo.Week,
			PlayCount:  playCount,
			Status:     game.GameInfo.Status,
		}
		if err := s.publisher.PublishGameSaved(ctx, event); err != nil {
			log.Printf("[games] warning: publishing saved event for %s: %v", game.GameInfo.ID, err)
		}
	}
}

func buildGameRow(game *nfl.Game) *store.Game {
	info := game.GameInfo
	row := &store.Game{
		GameID:     info.ID,
		Season:     info.Season,
		SeasonType: info.SeasonType,
		Week:       info.Week,
		HomeTeamID: game.Teams.Home.Info.ID,
		AwayTeamID: game.Teams.Away.Info.ID,
	}

	row.Status = nullString(info.Status)
	row.DisplayStatus = nullString(info.DisplayStatus)
	row.GameState = nullString(info.GameState)
	row.GamebookURL = nullString(info.GamebookURL)
	row.GameDate = nullString(info.Date)
	row.GameTime = nullString(info.Time)
	row.Network = nullString(info.Network)
	if info.Attendance > 0 {
		row.Attendance = sql.NullInt32{Int32: int32(info.Attendance), Valid: true}
	}

	row.Weather = nullString(info.Weather)
	w := features.ParseWeather(info.Weather)
	row.WeatherTemperature = w.Temperature
	row.WeatherWindSpeed = w.WindSpeed
	row.WeatherWindDirection = w.WindDirection
	row.WeatherPrecipitation = w.Precipitation
	row.WeatherHumidity = w.Humidity
	row.WeatherConditions = w.Conditions

	if v := game.Venue; v != nil {
		row.VenueName = nullString(v.SiteFullName)
		row.VenueCity = nullString(v.SiteCity)
		row.VenueState = nullString(v.SiteState)
		row.VenueRoofType = nullString(v.RoofType)
	}

	home, away := game.Teams.Home, game.Teams.Away
	row.HomeTeamName = nullString(home.Info.Name)
	row.HomeTeamNickname = nullString(home.Info.Nickname)
	row.HomeTeamAbbreviation = nullString(home.Info.Abbreviation)
	row.AwayTeamName = nullString(away.Info.Name)
	row.AwayTeamNickname = nullString(away.Info.Nickname)
	row.AwayTeamAbbreviation = nullString(away.Info.Abbreviation)

	row.HomeScoreQ1 = home.GameStats.Score.Q1
	row.HomeScoreQ2 = home.GameStats.Score.Q2
	row.HomeScoreQ3 = home.GameStats.Score.Q3
	row.HomeScoreQ4 = home.GameStats.Score.Q4
	row.HomeScoreOT = home.GameStats.Score.OT
	row.HomeScoreTotal = home.GameStats.Score.Total
	row.AwayScoreQ1 = away.GameStats.Score.Q1
	row.AwayScoreQ2 = away.GameStats.Score.Q2
	row.AwayScoreQ3 = away.GameStats.Score.Q3
	row.AwayScoreQ4 = away.GameStats.Score.Q4
	row.AwayScoreOT = away.GameStats.Score.OT
	row.AwayScoreTotal = away.GameStats.Score.Total

	sit := game.Situation
	row.CurrentQuarter = nullString(sit.Quarter)
	row.CurrentClock = nullString(sit.Clock)
	if sit.Down > 0 {
		row.CurrentDown = sql.NullInt32{Int32: int32(sit.Down), Valid: true}
		row.CurrentDistance = sql.NullInt32{Int32: int32(sit.Distance), Valid: true}
	}
	row.CurrentYardLine = nullString(sit.YardLine)
	if sit.Quarter != "" {
		row.IsRedZone = sql.NullBool{Bool: sit.IsRedZone, Valid: true}
		row.IsGoalToGo = sql.NullBool{Bool: sit.IsGoalToGo, Valid: true}
	}

	if b := game.Betting; b != nil {
		if b.Moneyline != nil {
			row.MoneylineHome = nullString(b.Moneyline.HomePrice)
			row.MoneylineAway = nullString(b.Moneyline.AwayPrice)
		}
		if b.Spread != nil {
			row.SpreadHomeHandicap = nullString(b.Spread.HomeHandicap)
			row.SpreadAwayHandicap = nullString(b.Spread.AwayHandicap)
			row.SpreadHomePrice = nullString(b.Spread.HomePrice)
			row.SpreadAwayPrice = nullString(b.Spread.AwayPrice)
		}
		if b.Totals != nil {
			row.TotalOverHandicap = sql.NullFloat64{Float64: b.Totals.OverHandicap, Valid: true}
			row.TotalUnderHandicap = sql.NullFloat64{Float64: b.Totals.UnderHandicap, Valid: true}
			row.TotalOverPrice = sql.NullInt32{Int32: int32(b.Totals.OverPrice), Valid: true}
			row.TotalUnderPrice = sql.NullInt32{Int32: int32(b.Totals.UnderPrice), Valid: true}
		}
		row.OddsUpdatedAt = nullString(b.UpdatedAt)
	}

	return row
}

// applyStandings enriches the row with each team's record from the latest
// standings week in the payload metadata. Teams are matched by full name.
// Missing or malformed standings leave the columns null.
func applyStandings(row *store.Game, game *nfl.Game) {
	standings, ok := game.Metadata["standings"].(map[string]interface{})
	if !ok {
		return
	}
	weeks, ok := standings["weeks"].([]interface{})
	if !ok || len(weeks) == 0 {
		return
	}
	latest, ok := weeks[len(weeks)-1].(map[string]interface{})
	if !ok {
		return
	}
	entries, ok := latest["standings"].([]interface{})
	if !ok {
		return
	}

	homeName := game.Teams.Home.Info.Name
	awayName := game.Teams.Away.Info.Name

	for _, raw := range entries {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		team, _ := entry["team"].(map[string]interface{})
		fullName, _ := team["fullName"].(string)
		overall, _ := entry["overall"].(map[string]interface{})
		if fullName == "" || overall == nil {
			continue
		}

		wins := nullIntFromJSON(overall["wins"])
		losses := nullIntFromJSON(overall["losses"])
		streak := parseStreak(overall["streak"])

		switch fullName {
		case homeName:
			row.HomeTeamWins = wins
			row.HomeTeamLosses = losses
			row.HomeTeamWinStreak = streak
		case awayName:
			row.AwayTeamWins = wins
			row.AwayTeamLosses = losses
			row.AwayTeamWinStreak = streak
		}
	}
}

// parseStreak reads a streak in either vendor format: the compact string
// ("W3", "L2") or the object {"type": ..., "length": ...}. Losing streaks
// come out negative.
func parseStreak(raw interface{}) sql.NullInt32 {
	switch v := raw.(type) {
	case string:
		if len(v) < 2 {
			return sql.NullInt32{}
		}
		n, err := strconv.Atoi(v[1:])
		if err != nil {
			return sql.NullInt32{}
		}
		if v[0] == 'L' || v[0] == 'l' {
			n = -n
		}
		return sql.NullInt32{Int32: int32(n), Valid: true}
	case map[string]interface{}:
		length := nullIntFromJSON(v["length"])
		if !length.Valid {
			return sql.NullInt32{}
		}
		kind, _ := v["type"].(string)
		if strings.HasPrefix(strings.ToLower(kind), "l") {
			length.Int32 = -length.Int32
		}
		return length
	}
	return sql.NullInt32{}
}

// attachRollups computes both teams' season-to-date stats and the
// head-to-head record and stores them as JSON on the game row. A rollup
// failure is logged and the save continues without it.
func (s *GameService) attachRollups(ctx context.Context, row *store.Game, game *nfl.Game) {
	if !row.GameDate.Valid {
		return
	}

	rollups, err := s.history.GameRollups(ctx, row.HomeTeamID, row.AwayTeamID, row.Season, row.GameDate.String)
	if err != nil {
		log.Printf("[games] warning: computing rollups for %s: %v", row.GameID, err)
		return
	}

	data, err := json.Marshal(rollups)
	if err != nil {
		log.Printf("[games] warning: encoding rollups for %s: %v", row.GameID, err)
		return
	}
	row.HistoricalStats = sql.NullString{String: string(data), Valid: true}
}

// buildPlayRows runs the feature pipeline over the game's play sequence.
// The second return carries each play's stat events, index-aligned with
// the rows.
func (s *GameService) buildPlayRows(game *nfl.Game) ([]*store.Play, [][]*store.PlayStat) {
	rows := make([]*store.Play, 0, len(game.Plays))
	stats := make([][]*store.PlayStat, 0, len(game.Plays))

	for i := range game.Plays {
		play := &game.Plays[i]
		row := buildPlayRow(game, i, play)
		rows = append(rows, row)
		stats = append(stats, buildPlayStats(game.GameInfo.ID, play))
	}

	return rows, stats
}

func buildPlayRow(game *nfl.Game, index int, play *nfl.Play) *store.Play {
	row := &store.Play{
		GameID:   game.GameInfo.ID,
		PlayID:   play.PlayID,
		Sequence: play.Sequence,
	}

	if play.Quarter > 0 {
		row.Quarter = sql.NullInt32{Int32: int32(play.Quarter), Valid: true}
	}
	if play.Down > 0 {
		row.Down = sql.NullInt32{Int32: int32(play.Down), Valid: true}
		row.YardsToGo = sql.NullInt32{Int32: int32(play.YardsToGo), Valid: true}
	}
	row.Yardline = nullString(play.Yardline)
	row.GameClock = nullString(play.GameClock)
	row.PlayType = nullString(play.PlayType)
	row.PlayDescription = nullString(play.PlayDescription)
	row.PossessionTeamID = nullString(play.PossessionTeamID)
	row.DefenseTeamID = nullString(play.DefenseTeamID)

	if detail := play.Detail(); detail != nil {
		copyDetail(row, detail)
		row.ScoreDifferential = sql.NullInt32{
			Int32: int32(detail.HomeScore - detail.VisitorScore),
			Valid: true,
		}
	}

	// Description features
	desc := features.ParseDescription(play.PlayDescription, play.PlayType)
	applyDescription(row, desc)
	row.FieldPositionGained = desc.YardsGained

	// Defensive personnel
	personnel := features.AnalyzePersonnel(play.DefensivePersonnel())
	row.DefensiveFormation = personnel.Formation
	row.DefensivePackage = personnel.Package
	row.DefensiveDBCount = personnel.DBCount
	row.DefensiveLBCount = personnel.LBCount
	row.DefensiveDLCount = personnel.DLCount
	row.DefensiveBoxCount = personnel.BoxCount

	// Clock
	clock := features.ComputeClock(play.Quarter, play.GameClock)
	row.TimeRemainingHalf = clock.TimeRemainingHalf
	row.TimeRemainingGame = clock.TimeRemainingGame
	row.IsTwoMinuteDrill = clock.IsTwoMinuteDrill
	possessionIsHome := play.PossessionTeamID == game.Teams.Home.Info.ID
	row.IsMustScoreSituation = features.MustScoreSituation(play.Detail(), possessionIsHome, clock.TimeRemainingGame)

	// Sequential game context
	ctx := features.ComputeContext(game.Plays, index, game)
	applyContext(row, ctx)

	// Raw JSON captures
	if summary := play.Summary; summary != nil {
		if detail := summary.Play; detail != nil && len(detail.PlayStats) > 0 {
			row.PlayStatsJSON = marshalJSON(detail.PlayStats)
		}
		if len(summary.Home) > 0 {
			row.HomePersonnelJSON = marshalJSON(summary.Home)
		}
		if len(summary.Away) > 0 {
			row.AwayPersonnelJSON = marshalJSON(summary.Away)
		}
	}

	return row
}

func copyDetail(row *store.Play, d *nfl.PlayDetail) {
	row.PreSnapHomeScore = sql.NullInt32{Int32: int32(d.PreSnapHomeScore), Valid: true}
	row.PreSnapVisitorScore = sql.NullInt32{Int32: int32(d.PreSnapVisitorScore), Valid: true}
	row.HomeScore = sql.NullInt32{Int32: int32(d.HomeScore), Valid: true}
	row.VisitorScore = sql.NullInt32{Int32: int32(d.VisitorScore), Valid: true}

	row.IsBigPlay = sql.NullBool{Bool: d.IsBigPlay, Valid: true}
	row.IsEndQuarter = sql.NullBool{Bool: d.IsEndQuarter, Valid: true}
	row.IsGoalToGo = sql.NullBool{Bool: d.IsGoalToGo, Valid: true}
	row.IsNoPlay = sql.NullBool{Bool: d.IsNoPlay, Valid: true}
	row.IsPenalty = sql.NullBool{Bool: d.IsPenalty, Valid: true}
	row.IsScoring = sql.NullBool{Bool: d.IsScoring, Valid: true}
	row.IsSTPlay = sql.NullBool{Bool: d.IsSTPlay, Valid: true}
	row.IsChangeOfPossession = sql.NullBool{Bool: d.IsChangeOfPossession, Valid: true}
	row.IsRedzonePlay = sql.NullBool{Bool: d.IsRedzonePlay, Valid: true}

	row.ExpectedPoints = sql.NullFloat64{Float64: d.ExpectedPoints, Valid: true}
	row.ExpectedPointsAdded = sql.NullFloat64{Float64: d.ExpectedPointsAdded, Valid: true}

	row.PreSnapHomeWinProbability = sql.NullFloat64{Float64: d.PreSnapHomeTeamWinProbability, Valid: true}
	row.PreSnapVisitorWinProbability = sql.NullFloat64{Float64: d.PreSnapVisitorTeamWinProbability, Valid: true}
	row.PostPlayHomeWinProbability = sql.NullFloat64{Float64: d.PostPlayHomeTeamWinProbability, Valid: true}
	row.PostPlayVisitorWinProbability = sql.NullFloat64{Float64: d.PostPlayVisitorTeamWinProbability, Valid: true}

	row.HomeTimeoutsLeft = sql.NullInt32{Int32: int32(d.HomeTimeoutsLeft), Valid: true}
	row.VisitorTimeoutsLeft = sql.NullInt32{Int32: int32(d.VisitorTimeoutsLeft), Valid: true}

	row.PlayState = nullString(d.PlayState)
	if d.PlayTypeCode > 0 {
		row.PlayTypeCode = sql.NullInt32{Int32: int32(d.PlayTypeCode), Valid: true}
	}
	if d.YardlineNumber > 0 {
		row.YardlineNumber = sql.NullInt32{Int32: int32(d.YardlineNumber), Valid: true}
	}
	row.YardlineSide = nullString(d.YardlineSide)
	if d.AbsoluteYardlineNumber > 0 {
		row.AbsoluteYardlineNumber = sql.NullInt32{Int32: int32(d.AbsoluteYardlineNumber), Valid: true}
	}
	row.PlayDirection = nullString(d.PlayDirection)
	row.TimeOfDayUTC = nullString(d.TimeOfDayUTC)
}

func applyDescription(row *store.Play, d features.Description) {
	row.OffensiveFormation = d.OffensiveFormation
	row.YardsGained = d.YardsGained
	row.PassLength = d.PassLength
	row.PassLocation = d.PassLocation
	row.RunDirection = d.RunDirection

	row.IsCompletePass = d.IsCompletePass
	row.IsTouchdownPass = d.IsTouchdownPass
	row.IsInterception = d.IsInterception
	row.PassTarget = d.PassTarget
	row.PassDefender = d.PassDefender
	row.IsSack = d.IsSack
	row.SackYards = d.SackYards
	row.QuarterbackHit = d.QuarterbackHit
	row.QuarterbackScramble = d.QuarterbackScramble

	row.RunGap = d.RunGap
	row.YardsAfterContact = d.YardsAfterContact
	row.IsTouchdownRun = d.IsTouchdownRun
	row.IsFumble = d.IsFumble
	row.FumbleRecoveredBy = d.FumbleRecoveredBy
	row.FumbleForcedBy = d.FumbleForcedBy

	row.IsFirstDown = d.IsFirstDown
	row.IsTurnover = d.IsTurnover

	row.IsPenaltyOnPlay = d.IsPenaltyOnPlay
	row.PenaltyType = d.PenaltyType
	row.PenaltyTeam = d.PenaltyTeam
	row.PenaltyPlayer = d.PenaltyPlayer
	row.PenaltyYards = d.PenaltyYards
	row.PenaltyDeclined = d.PenaltyDeclined
	row.PenaltyOffset = d.PenaltyOffset
	row.PenaltyNoPlay = d.PenaltyNoPlay

	row.IsFieldGoal = d.IsFieldGoal
	row.FieldGoalDistance = d.FieldGoalDistance
	row.FieldGoalResult = d.FieldGoalResult
	row.IsPunt = d.IsPunt
	row.PuntDistance = d.PuntDistance
	row.PuntReturnYards = d.PuntReturnYards
	row.IsKickoff = d.IsKickoff
	row.KickoffReturnYards = d.KickoffReturnYards
	row.IsTouchback = d.IsTouchback
}

func applyContext(row *store.Play, ctx features.Context) {
	row.DriveNumber = ctx.DriveNumber
	row.DrivePlayNumber = ctx.DrivePlayNumber
	row.DriveStartYardline = ctx.DriveStartYardline
	row.DriveTimeOfPossession = ctx.DriveTimeOfPossession
	row.DrivePlaysSoFar = ctx.DrivePlaysSoFar

	row.IsWinningTeam = ctx.IsWinningTeam
	row.IsLosingTeam = ctx.IsLosingTeam
	row.IsComebackSituation = ctx.IsComebackSituation
	row.IsBlowoutSituation = ctx.IsBlowoutSituation
	row.GameCompetitiveIndex = ctx.GameCompetitiveIndex

	row.PossessingTeamLastScore = ctx.PossessingTeamLastScore
	row.OpposingTeamLastScore = ctx.OpposingTeamLastScore
	row.PossessingTeamTurnovers = ctx.PossessingTeamTurnovers
	row.OpposingTeamTurnovers = ctx.OpposingTeamTurnovers
	row.TurnoverMargin = ctx.TurnoverMargin

	row.PossessingTeamTimeouts = ctx.PossessingTeamTimeouts
	row.OpposingTeamTimeouts = ctx.OpposingTeamTimeouts
	row.TimeoutAdvantage = ctx.TimeoutAdvantage

	row.WeatherImpactScore = ctx.WeatherImpactScore
	row.IsIndoorGame = ctx.IsIndoorGame

	row.FieldPositionCategory = ctx.FieldPositionCategory
	row.YardsFromOwnEndzone = ctx.YardsFromOwnEndzone
	row.YardsFromOpponentEndzone = ctx.YardsFromOpponentEndzone
}

func buildPlayStats(gameID string, play *nfl.Play) []*store.PlayStat {
	detail := play.Detail()
	if detail == nil || len(detail.PlayStats) == 0 {
		return nil
	}

	stats := make([]*store.PlayStat, 0, len(detail.PlayStats))
	for _, ps := range detail.PlayStats {
		stats = append(stats, &store.PlayStat{
			GameID:     gameID,
			ClubCode:   nullString(ps.ClubCode),
			PlayerName: nullString(ps.PlayerName),
			StatID:     sql.NullInt32{Int32: int32(ps.StatID), Valid: true},
			Yards:      sql.NullInt32{Int32: int32(ps.Yards), Valid: true},
			GSISID:     nullString(ps.GSISID),
		})
	}
	return stats
}

// collectPlayers gathers the unique players seen across every play's
// personnel lists. One upsert per player regardless of snap count.
func collectPlayers(game *nfl.Game) []*store.Player {
	seen := make(map[int]*store.Player)
	order := make([]int, 0)

	add := func(p nfl.PersonnelPlayer) {
		if p.NFLID == 0 {
			return
		}
		if _, ok := seen[p.NFLID]; ok {
			return
		}
		seen[p.NFLID] = &store.Player{
			NFLID:         p.NFLID,
			GSISID:        nullString(p.GSISID),
			FirstName:     nullString(p.FirstName),
			LastName:      nullString(p.LastName),
			PlayerName:    nullString(p.PlayerName),
			Position:      nullString(p.Position),
			PositionGroup: nullString(p.PositionGroup),
			UniformNumber: nullString(p.UniformNumber),
			TeamID:        nullString(p.TeamID),
		}
		order = append(order, p.NFLID)
	}

	for i := range game.Plays {
		summary := game.Plays[i].Summary
		if summary == nil {
			continue
		}
		for _, p := range summary.Home {
			add(p)
		}
		for _, p := range summary.Away {
			add(p)
		}
	}

	players := make([]*store.Player, 0, len(order))
	for _, id := range order {
		players = append(players, seen[id])
	}
	return players
}

// GetGame fetches a stored game by ID.
func (s *GameService) GetGame(ctx context.Context, gameID string) (*store.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetching game: %w", err)
	}
	return game, nil
}

// ListGames fetches games matching a filter.
func (s *GameService) ListGames(ctx context.Context, filter repository.GameFilter) ([]*store.Game, error) {
	games, err := s.gameRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}
	return games, nil
}

// GetLiveGames fetches games currently in progress.
func (s *GameService) GetLiveGames(ctx context.Context) ([]*store.Game, error) {
	games, err := s.gameRepo.GetLiveGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching live games: %w", err)
	}
	return games, nil
}

// GetPlays fetches a game's plays in sequence order.
func (s *GameService) GetPlays(ctx context.Context, gameID string, filter repository.PlayFilter) ([]*store.Play, error) {
	plays, err := s.playRepo.GetByGame(ctx, gameID, filter)
	if err != nil {
		return nil, fmt.Errorf("fetching plays: %w", err)
	}
	return plays, nil
}

// GetGameSummary aggregates a game's play counts.
func (s *GameService) GetGameSummary(ctx context.Context, gameID string) (*repository.GameSummary, error) {
	summary, err := s.playRepo.GetGameSummary(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("summarizing game: %w", err)
	}
	return summary, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullIntFromJSON(raw interface{}) sql.NullInt32 {
	switch v := raw.(type) {
	case float64:
		return sql.NullInt32{Int32: int32(v), Valid: true}
	case int:
		return sql.NullInt32{Int32: int32(v), Valid: true}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return sql.NullInt32{Int32: int32(n), Valid: true}
		}
	}
	return sql.NullInt32{}
}

func marshalJSON(v interface{}) sql.NullString {
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(data), Valid: true}
}
