package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/nfl"
)

func defender(position, group string) nfl.PersonnelPlayer {
	return nfl.PersonnelPlayer{Position: position, PositionGroup: group}
}

func TestAnalyzePersonnelBaseFourThree(t *testing.T) {
	players := []nfl.PersonnelPlayer{
		defender("DE", "DL"), defender("DT", "DL"), defender("DT", "DL"), defender("DE", "DL"),
		defender("OLB", "LB"), defender("MLB", "LB"), defender("OLB", "LB"),
		defender("CB", "DB"), defender("CB", "DB"), defender("FS", "DB"), defender("SS", "DB"),
	}

	p := AnalyzePersonnel(players)

	require.True(t, p.Formation.Valid)
	assert.Equal(t, "4-3", p.Formation.String)
	assert.Equal(t, "base", p.Package.String)
	assert.Equal(t, int32(8), p.BoxCount.Int32)
	assert.Equal(t, int32(4), p.DBCount.Int32)
	assert.Equal(t, int32(3), p.LBCount.Int32)
	assert.Equal(t, int32(4), p.DLCount.Int32)
}

func TestAnalyzePersonnelPackages(t *testing.T) {
	tests := []struct {
		name string
		dbs  int
		pkg  string
	}{
		{"dime", 6, "dime"},
		{"nickel", 5, "nickel"},
		{"base", 4, "base"},
		{"heavy", 3, "heavy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var players []nfl.PersonnelPlayer
			for i := 0; i < tt.dbs; i++ {
				players = append(players, defender("CB", "DB"))
			}
			p := AnalyzePersonnel(players)
			require.True(t, p.Package.Valid)
			assert.Equal(t, tt.pkg, p.Package.String)
		})
	}
}

func TestAnalyzePersonnelFormationLookup(t *testing.T) {
	tests := []struct {
		dl, lb    int
		formation string
	}{
		{4, 3, "4-3"},
		{4, 2, "4-2-5"},
		{4, 1, "4-1-6"},
		{3, 4, "3-4"},
		{3, 3, "3-3-5"},
		{3, 2, "3-2-6"},
		{2, 4, "2-4-5"},
		{5, 2, "5-2"},
		{5, 3, "5-2"},
		{6, 1, "6-1"},
	}

	for _, tt := range tests {
		t.Run(tt.formation, func(t *testing.T) {
			var players []nfl.PersonnelPlayer
			for i := 0; i < tt.dl; i++ {
				players = append(players, defender("DT", "DL"))
			}
			for i := 0; i < tt.lb; i++ {
				players = append(players, defender("LB", "LB"))
			}
			p := AnalyzePersonnel(players)
			require.True(t, p.Formation.Valid)
			assert.Equal(t, tt.formation, p.Formation.String)
		})
	}
}

func TestAnalyzePersonnelUnknownFront(t *testing.T) {
	players := []nfl.PersonnelPlayer{
		defender("DT", "DL"),
		defender("LB", "LB"),
	}
	p := AnalyzePersonnel(players)
	assert.False(t, p.Formation.Valid)
	assert.True(t, p.BoxCount.Valid)
	assert.Equal(t, int32(2), p.BoxCount.Int32)
}

func TestAnalyzePersonnelStrongSafetyCountedOnce(t *testing.T) {
	players := []nfl.PersonnelPlayer{
		defender("DT", "DL"), defender("DT", "DL"),
		defender("LB", "LB"),
		defender("SS", "DB"), defender("SS", "DB"),
	}
	p := AnalyzePersonnel(players)
	assert.Equal(t, int32(4), p.BoxCount.Int32)
}

func TestAnalyzePersonnelEmptyList(t *testing.T) {
	p := AnalyzePersonnel(nil)
	assert.Equal(t, Personnel{}, p)
}
