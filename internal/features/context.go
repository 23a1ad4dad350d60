package features

import (
	"database/sql"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fortuna/gridiron/internal/nfl"
)

// Context is the derived game-state snapshot for one play, computed from
// the play's position in the game's ordered play list plus game metadata.
// A play with no summary detail yields an all-null Context.
type Context struct {
	// Drive context
	DriveNumber           sql.NullInt32
	DrivePlayNumber       sql.NullInt32
	DriveStartYardline    sql.NullInt32
	DriveTimeOfPossession sql.NullInt32
	DrivePlaysSoFar       sql.NullInt32

	// Game script
	IsWinningTeam        sql.NullBool
	IsLosingTeam         sql.NullBool
	IsComebackSituation  sql.NullBool
	IsBlowoutSituation   sql.NullBool
	GameCompetitiveIndex sql.NullFloat64

	// Momentum
	PossessingTeamLastScore sql.NullInt32
	OpposingTeamLastScore   sql.NullInt32
	PossessingTeamTurnovers sql.NullInt32
	OpposingTeamTurnovers   sql.NullInt32
	TurnoverMargin          sql.NullInt32

	// Timeouts
	PossessingTeamTimeouts sql.NullInt32
	OpposingTeamTimeouts   sql.NullInt32
	TimeoutAdvantage       sql.NullInt32

	// Weather
	WeatherImpactScore sql.NullFloat64
	IsIndoorGame       sql.NullBool

	// Field position
	FieldPositionCategory    sql.NullString
	YardsFromOwnEndzone      sql.NullInt32
	YardsFromOpponentEndzone sql.NullInt32
}

var windSpeedRe = regexp.MustCompile(`(\d+)\s*mph`)

// indoorRoofTypes are the venue roof values that zero out weather impact.
var indoorRoofTypes = map[string]bool{
	"DOME":               true,
	"RETRACTABLE_CLOSED": true,
	"INDOOR":             true,
}

// ComputeContext derives the sequential game context for plays[index].
// The scan is backward over the prefix, bounded by one game's play count.
func ComputeContext(plays []nfl.Play, index int, game *nfl.Game) Context {
	var ctx Context

	if index < 0 || index >= len(plays) {
		return ctx
	}
	current := &plays[index]
	detail := current.Detail()
	if detail == nil {
		return ctx
	}

	computeDriveContext(&ctx, plays, index, current)
	computeGameScript(&ctx, detail, current)
	computeMomentum(&ctx, plays, index, current)
	computeTimeoutContext(&ctx, detail, current)
	computeWeatherImpact(&ctx, game)
	computeFieldPosition(&ctx, detail)

	return ctx
}

func computeDriveContext(ctx *Context, plays []nfl.Play, index int, current *nfl.Play) {
	ctx.DriveNumber = sql.NullInt32{Int32: 1, Valid: true}
	ctx.DrivePlayNumber = sql.NullInt32{Int32: 1, Valid: true}
	ctx.DrivePlaysSoFar = sql.NullInt32{Int32: 1, Valid: true}

	if index == 0 {
		return
	}

	possessionTeam := current.PossessionTeamID
	playsInDrive := int32(1)
	var driveStartTime string

	// Walk back to the start of the current drive; the last update before
	// the possession flip is the drive's opening play.
	for i := index - 1; i >= 0; i-- {
		prev := &plays[i]
		if prev.PossessionTeamID != possessionTeam {
			break
		}
		playsInDrive++
		if d := prev.Detail(); d != nil {
			ctx.DriveStartYardline = sql.NullInt32{Int32: int32(d.AbsoluteYardlineNumber), Valid: true}
			driveStartTime = d.TimeOfDayUTC
		}
	}

	driveCount := int32(1)
	for i := 1; i < index; i++ {
		curr := plays[i].PossessionTeamID
		prev := plays[i-1].PossessionTeamID
		if curr != prev && curr != "" && prev != "" {
			driveCount++
		}
	}

	ctx.DriveNumber = sql.NullInt32{Int32: driveCount, Valid: true}
	ctx.DrivePlayNumber = sql.NullInt32{Int32: playsInDrive, Valid: true}
	ctx.DrivePlaysSoFar = sql.NullInt32{Int32: playsInDrive, Valid: true}

	if driveStartTime != "" {
		if d := current.Detail(); d != nil && d.TimeOfDayUTC != "" {
			start, err1 := parseUTCTimestamp(driveStartTime)
			now, err2 := parseUTCTimestamp(d.TimeOfDayUTC)
			if err1 == nil && err2 == nil {
				ctx.DriveTimeOfPossession = sql.NullInt32{
					Int32: int32(start.Sub(now) / time.Second),
					Valid: true,
				}
			}
		}
	}
}

func parseUTCTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	// Some feeds omit the zone suffix.
	return time.Parse("2006-01-02T15:04:05.999999999", s)
}

func computeGameScript(ctx *Context, detail *nfl.PlayDetail, current *nfl.Play) {
	possessionIsHome := current.PossessionTeamID == current.HomeTeamID

	var possessionScore, opponentScore int
	if possessionIsHome {
		possessionScore, opponentScore = detail.HomeScore, detail.VisitorScore
	} else {
		possessionScore, opponentScore = detail.VisitorScore, detail.HomeScore
	}

	diff := possessionScore - opponentScore
	absDiff := diff
	if absDiff < 0 {
		absDiff = -absDiff
	}

	ctx.IsWinningTeam = sql.NullBool{Bool: diff > 0, Valid: true}
	ctx.IsLosingTeam = sql.NullBool{Bool: diff < 0, Valid: true}
	ctx.IsComebackSituation = sql.NullBool{Bool: detail.Quarter >= 4 && diff <= -10, Valid: true}
	ctx.IsBlowoutSituation = sql.NullBool{Bool: absDiff >= 21, Valid: true}

	// 0 = blowout, 1 = very competitive. The score gap is scaled against
	// four touchdowns; lateness in the game counts for 30%.
	timeFactor := float64(detail.Quarter) / 4.0
	if timeFactor > 1.0 {
		timeFactor = 1.0
	}
	scoreFactor := 1.0 - float64(absDiff)/28.0
	if scoreFactor < 0 {
		scoreFactor = 0
	}
	ctx.GameCompetitiveIndex = sql.NullFloat64{
		Float64: scoreFactor*0.7 + timeFactor*0.3,
		Valid:   true,
	}
}

func computeMomentum(ctx *Context, plays []nfl.Play, index int, current *nfl.Play) {
	ctx.PossessingTeamLastScore = sql.NullInt32{Int32: 0, Valid: true}
	ctx.OpposingTeamLastScore = sql.NullInt32{Int32: 0, Valid: true}

	possessionTeam := current.PossessionTeamID
	var possessionTurnovers, opponentTurnovers int32
	possessionScoreSeen := false
	opponentScoreSeen := false

	for i := index - 1; i >= 0; i-- {
		d := plays[i].Detail()
		if d == nil {
			continue
		}

		if d.IsScoring {
			if plays[i].PossessionTeamID == possessionTeam {
				if !possessionScoreSeen {
					ctx.PossessingTeamLastScore = sql.NullInt32{Int32: int32(i), Valid: true}
					possessionScoreSeen = true
				}
			} else {
				if !opponentScoreSeen {
					ctx.OpposingTeamLastScore = sql.NullInt32{Int32: int32(i), Valid: true}
					opponentScoreSeen = true
				}
			}
		}

		// Attributed to the side holding the ball when it was lost.
		if d.IsChangeOfPossession {
			if plays[i].PossessionTeamID == possessionTeam {
				possessionTurnovers++
			} else {
				opponentTurnovers++
			}
		}
	}

	ctx.PossessingTeamTurnovers = sql.NullInt32{Int32: possessionTurnovers, Valid: true}
	ctx.OpposingTeamTurnovers = sql.NullInt32{Int32: opponentTurnovers, Valid: true}
	// Positive favors the possessing team.
	ctx.TurnoverMargin = sql.NullInt32{Int32: opponentTurnovers - possessionTurnovers, Valid: true}
}

func computeTimeoutContext(ctx *Context, detail *nfl.PlayDetail, current *nfl.Play) {
	possessionIsHome := current.PossessionTeamID == current.HomeTeamID

	var possessionTimeouts, opponentTimeouts int
	if possessionIsHome {
		possessionTimeouts, opponentTimeouts = detail.HomeTimeoutsLeft, detail.VisitorTimeoutsLeft
	} else {
		possessionTimeouts, opponentTimeouts = detail.VisitorTimeoutsLeft, detail.HomeTimeoutsLeft
	}

	ctx.PossessingTeamTimeouts = sql.NullInt32{Int32: int32(possessionTimeouts), Valid: true}
	ctx.OpposingTeamTimeouts = sql.NullInt32{Int32: int32(opponentTimeouts), Valid: true}
	ctx.TimeoutAdvantage = sql.NullInt32{Int32: int32(possessionTimeouts - opponentTimeouts), Valid: true}
}

func computeWeatherImpact(ctx *Context, game *nfl.Game) {
	ctx.WeatherImpactScore = sql.NullFloat64{Float64: 0.0, Valid: true}

	if game == nil {
		return
	}

	if game.Venue != nil {
		indoor := indoorRoofTypes[game.Venue.RoofType]
		ctx.IsIndoorGame = sql.NullBool{Bool: indoor, Valid: true}
		if indoor {
			return
		}
	}

	weather := strings.ToLower(game.GameInfo.Weather)
	if weather == "" {
		return
	}

	score := 0.0

	if strings.Contains(weather, "wind") {
		if m := windSpeedRe.FindStringSubmatch(weather); m != nil {
			speed, _ := strconv.Atoi(m[1])
			switch {
			case speed > 20:
				score += 0.4
			case speed > 15:
				score += 0.3
			case speed > 10:
				score += 0.2
			default:
				score += 0.1
			}
		}
	}

	if strings.Contains(weather, "rain") || strings.Contains(weather, "snow") || strings.Contains(weather, "sleet") {
		score += 0.3
	}

	if m := temperatureRe.FindStringSubmatch(weather); m != nil {
		temp, _ := strconv.Atoi(m[1])
		switch {
		case temp < 32:
			score += 0.2
		case temp < 40:
			score += 0.1
		case temp > 90:
			score += 0.1
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	ctx.WeatherImpactScore = sql.NullFloat64{Float64: score, Valid: true}
}

func computeFieldPosition(ctx *Context, detail *nfl.PlayDetail) {
	yardline := detail.AbsoluteYardlineNumber

	ctx.YardsFromOwnEndzone = sql.NullInt32{Int32: int32(yardline), Valid: true}
	ctx.YardsFromOpponentEndzone = sql.NullInt32{Int32: int32(100 - yardline), Valid: true}

	var category string
	switch {
	case yardline <= 40:
		category = "own_territory"
	case yardline <= 60:
		category = "midfield"
	case yardline <= 80:
		category = "opponent_territory"
	default:
		category = "red_zone"
	}
	ctx.FieldPositionCategory = sql.NullString{String: category, Valid: true}
}

// MustScoreSituation flags a trailing side late in the game: fourth
// quarter, under five minutes, down by more than one score. Outside that
// window the flag stays null.
func MustScoreSituation(detail *nfl.PlayDetail, possessionIsHome bool, timeRemainingGame sql.NullInt32) sql.NullBool {
	if detail == nil || detail.Quarter != 4 || !timeRemainingGame.Valid || timeRemainingGame.Int32 >= 300 {
		return sql.NullBool{}
	}

	var diff int
	if possessionIsHome {
		diff = detail.HomeScore - detail.VisitorScore
	} else {
		diff = detail.VisitorScore - detail.HomeScore
	}
	return sql.NullBool{Bool: diff <= -8, Valid: true}
}
