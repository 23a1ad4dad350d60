package features

import (
	"database/sql"
	"strconv"
	"strings"
)

// ClockContext is the absolute time remaining at a snap. Quarters past the
// fourth are treated as a fourth quarter; there is no separate overtime
// arithmetic.
type ClockContext struct {
	TimeRemainingHalf sql.NullInt32
	TimeRemainingGame sql.NullInt32
	IsTwoMinuteDrill  sql.NullBool
}

// ComputeClock converts a quarter and an MM:SS game clock into seconds
// remaining in the half and game plus the two-minute flag. A missing
// quarter or unparseable clock yields an all-null result.
func ComputeClock(quarter int, gameClock string) ClockContext {
	var c ClockContext

	if quarter <= 0 {
		return c
	}

	parts := strings.Split(gameClock, ":")
	if len(parts) != 2 {
		return c
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return c
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return c
	}

	clockSeconds := minutes*60 + seconds

	halfRemaining := clockSeconds
	if quarter == 1 || quarter == 3 {
		halfRemaining += 900
	}

	gameRemaining := clockSeconds
	switch quarter {
	case 1:
		gameRemaining += 2700
	case 2:
		gameRemaining += 1800
	case 3:
		gameRemaining += 900
	}

	c.TimeRemainingHalf = sql.NullInt32{Int32: int32(halfRemaining), Valid: true}
	c.TimeRemainingGame = sql.NullInt32{Int32: int32(gameRemaining), Valid: true}
	c.IsTwoMinuteDrill = sql.NullBool{Bool: halfRemaining <= 120, Valid: true}

	return c
}
