package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPhaseClassification(t *testing.T) {
	assert.True(t, isInProgress("INGAME"))
	assert.True(t, isInProgress("ingame"))
	assert.True(t, isInProgress("HALFTIME"))
	assert.False(t, isInProgress("PREGAME"))
	assert.False(t, isInProgress("FINAL"))

	assert.True(t, isFinal("FINAL"))
	assert.True(t, isFinal("FINAL_OVERTIME"))
	assert.False(t, isFinal("INGAME"))
	assert.False(t, isFinal(""))
}

func TestNextWeeklyRun(t *testing.T) {
	o := NewOrchestrator(nil, nil, &Config{
		WeeklyIngestionDay:  time.Tuesday,
		WeeklyIngestionHour: 5,
	})

	// Sunday afternoon: next run is Tuesday 05:00
	now := time.Date(2025, time.September, 7, 16, 30, 0, 0, time.UTC)
	next := o.nextWeeklyRun(now)
	assert.Equal(t, time.Tuesday, next.Weekday())
	assert.Equal(t, 5, next.Hour())
	assert.Equal(t, 9, next.Day())

	// Tuesday 06:00, past this week's run: next run is a week out
	now = time.Date(2025, time.September, 9, 6, 0, 0, 0, time.UTC)
	next = o.nextWeeklyRun(now)
	assert.Equal(t, time.Tuesday, next.Weekday())
	assert.Equal(t, 16, next.Day())
}
