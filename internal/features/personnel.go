package features

import (
	"database/sql"
	"strings"

	"github.com/fortuna/gridiron/internal/nfl"
)

// Personnel classifies a defensive side's on-field players for one snap.
type Personnel struct {
	DBCount   sql.NullInt32
	LBCount   sql.NullInt32
	DLCount   sql.NullInt32
	Package   sql.NullString
	Formation sql.NullString
	BoxCount  sql.NullInt32
}

// defensiveFormations keys front labels by (DL, LB) counts.
var defensiveFormations = map[[2]int]string{
	{4, 3}: "4-3",
	{4, 2}: "4-2-5",
	{4, 1}: "4-1-6",
	{3, 4}: "3-4",
	{3, 3}: "3-3-5",
	{3, 2}: "3-2-6",
	{2, 4}: "2-4-5",
}

// AnalyzePersonnel derives package, front and box count from a defensive
// personnel list. A nil/empty list yields an all-null result; an unmatched
// (DL, LB) combination leaves only the formation null.
func AnalyzePersonnel(players []nfl.PersonnelPlayer) Personnel {
	var p Personnel
	if len(players) == 0 {
		return p
	}

	var db, lb, dl int
	hasStrongSafety := false
	for _, player := range players {
		switch strings.ToUpper(player.PositionGroup) {
		case "DB":
			db++
		case "LB":
			lb++
		case "DL":
			dl++
		}
		if strings.ToUpper(player.Position) == "SS" {
			hasStrongSafety = true
		}
	}

	p.DBCount = sql.NullInt32{Int32: int32(db), Valid: true}
	p.LBCount = sql.NullInt32{Int32: int32(lb), Valid: true}
	p.DLCount = sql.NullInt32{Int32: int32(dl), Valid: true}

	var pkg string
	switch {
	case db >= 6:
		pkg = "dime"
	case db == 5:
		pkg = "nickel"
	case db == 4:
		pkg = "base"
	default:
		pkg = "heavy"
	}
	p.Package = sql.NullString{String: pkg, Valid: true}

	if f, ok := defensiveFormations[[2]int{dl, lb}]; ok {
		p.Formation = sql.NullString{String: f, Valid: true}
	} else if dl == 5 {
		p.Formation = sql.NullString{String: "5-2", Valid: true}
	} else if dl == 6 {
		p.Formation = sql.NullString{String: "6-1", Valid: true}
	}

	// Box count approximates defenders near the line: the front seven plus
	// one for a strong safety in the lineup. It is not a spatial count.
	box := dl + lb
	if hasStrongSafety {
		box++
	}
	p.BoxCount = sql.NullInt32{Int32: int32(box), Valid: true}

	return p
}
