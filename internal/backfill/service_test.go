package backfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestDeriveType(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		want    JobType
		wantErr bool
	}{
		{"game wins over week", Request{Season: 2024, Week: "WEEK_1", GameID: "g1"}, JobTypeGame, false},
		{"week wins over season", Request{Season: 2024, Week: "WEEK_1"}, JobTypeWeek, false},
		{"season alone", Request{Season: 2024}, JobTypeSeason, false},
		{"empty", Request{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.DeriveType()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeasonWeeks(t *testing.T) {
	reg := seasonWeeks("REG")
	require.Len(t, reg, 18)
	assert.Equal(t, "WEEK_1", reg[0])
	assert.Equal(t, "WEEK_18", reg[17])

	post := seasonWeeks("POST")
	assert.Equal(t, []string{"1", "2", "3", "4"}, post)
}
