package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeClock(t *testing.T) {
	tests := []struct {
		name          string
		quarter       int
		clock         string
		halfRemaining int32
		gameRemaining int32
		twoMinute     bool
	}{
		{"start of game", 1, "15:00", 1800, 3600, false},
		{"first quarter", 1, "7:30", 1350, 3150, false},
		{"second quarter", 2, "10:00", 600, 2400, false},
		{"two minute first half", 2, "1:45", 105, 1905, true},
		{"just over two minutes", 2, "2:01", 121, 1921, false},
		{"exactly two minutes", 2, "2:00", 120, 1920, true},
		{"third quarter", 3, "12:00", 1620, 1620, false},
		{"fourth quarter", 4, "5:00", 300, 300, false},
		{"end of game", 4, "0:14", 14, 14, true},
		{"overtime treated as fourth", 5, "8:00", 480, 480, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ComputeClock(tt.quarter, tt.clock)
			require.True(t, c.TimeRemainingHalf.Valid)
			assert.Equal(t, tt.halfRemaining, c.TimeRemainingHalf.Int32)
			assert.Equal(t, tt.gameRemaining, c.TimeRemainingGame.Int32)
			assert.Equal(t, tt.twoMinute, c.IsTwoMinuteDrill.Bool)
		})
	}
}

func TestComputeClockUnparseable(t *testing.T) {
	for _, clock := range []string{"", "15", "a:b", "15:00:00"} {
		c := ComputeClock(2, clock)
		assert.False(t, c.TimeRemainingHalf.Valid, clock)
		assert.False(t, c.TimeRemainingGame.Valid, clock)
		assert.False(t, c.IsTwoMinuteDrill.Valid, clock)
	}
}

func TestComputeClockMissingQuarter(t *testing.T) {
	for _, quarter := range []int{0, -1} {
		c := ComputeClock(quarter, "12:30")
		assert.False(t, c.TimeRemainingHalf.Valid, quarter)
		assert.False(t, c.TimeRemainingGame.Valid, quarter)
		assert.False(t, c.IsTwoMinuteDrill.Valid, quarter)
	}
}
