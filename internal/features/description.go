package features

import (
	"database/sql"
	"regexp"
	"strconv"
	"strings"
)

// Description holds everything extracted from one play's free-text
// description plus its play-type classification. Every field is nullable:
// a pattern that does not match leaves its field invalid, and that is the
// expected common case, not an error. Vendor text formats vary across
// seasons, so this is best-effort enrichment by design.
type Description struct {
	OffensiveFormation sql.NullString
	YardsGained        sql.NullInt32
	PassLength         sql.NullString
	PassLocation       sql.NullString
	RunDirection       sql.NullString

	// Pass play details
	IsCompletePass      sql.NullBool
	IsTouchdownPass     sql.NullBool
	IsInterception      sql.NullBool
	PassTarget          sql.NullString
	PassDefender        sql.NullString
	IsSack              sql.NullBool
	SackYards           sql.NullInt32
	QuarterbackHit      sql.NullBool
	QuarterbackScramble sql.NullBool

	// Run play details
	RunGap            sql.NullString
	YardsAfterContact sql.NullInt32
	IsTouchdownRun    sql.NullBool
	IsFumble          sql.NullBool
	FumbleRecoveredBy sql.NullString
	FumbleForcedBy    sql.NullString

	// Play outcome
	IsFirstDown sql.NullBool
	IsTurnover  sql.NullBool

	// Penalty details
	IsPenaltyOnPlay sql.NullBool
	PenaltyType     sql.NullString
	PenaltyTeam     sql.NullString
	PenaltyPlayer   sql.NullString
	PenaltyYards    sql.NullInt32
	PenaltyDeclined sql.NullBool
	PenaltyOffset   sql.NullBool
	PenaltyNoPlay   sql.NullBool

	// Special teams details
	IsFieldGoal        sql.NullBool
	FieldGoalDistance  sql.NullInt32
	FieldGoalResult    sql.NullString
	IsPunt             sql.NullBool
	PuntDistance       sql.NullInt32
	PuntReturnYards    sql.NullInt32
	IsKickoff          sql.NullBool
	KickoffReturnYards sql.NullInt32
	IsTouchback        sql.NullBool
}

// formationPatterns maps each formation label to the keyword variants the
// vendor uses for it. Order matters: the first label whose variant matches
// wins, so overlapping keywords resolve deterministically.
var formationPatterns = []struct {
	name     string
	variants []string
}{
	{"shotgun", []string{"shotgun", "(shotgun)"}},
	{"i-formation", []string{"i-formation", "i formation", "(i-form)"}},
	{"singleback", []string{"singleback", "single back", "(singleback)"}},
	{"pistol", []string{"pistol", "(pistol)"}},
	{"wildcat", []string{"wildcat", "(wildcat)"}},
	{"empty", []string{"empty", "(empty)", "empty backfield"}},
	{"under-center", []string{"under center", "(under center)"}},
	{"ace", []string{"ace formation", "(ace)"}},
	{"strong", []string{"strong formation", "(strong)"}},
	{"weak", []string{"weak formation", "(weak)"}},
	{"jumbo", []string{"jumbo", "(jumbo)"}},
	{"goal-line", []string{"goal line", "goal-line", "(goal line)"}},
}

// runGapPatterns maps gap labels to their keyword variants, checked in
// order ("up the middle" must win before the directional guards).
var runGapPatterns = []struct {
	gap      string
	variants []string
}{
	{"left end", []string{"left end", "swept left"}},
	{"left tackle", []string{"left tackle"}},
	{"left guard", []string{"left guard"}},
	{"middle", []string{"up the middle", "middle"}},
	{"right guard", []string{"right guard"}},
	{"right tackle", []string{"right tackle"}},
	{"right end", []string{"right end", "swept right"}},
}

// penaltyTypes is the fixed list of penalty names recognized in
// descriptions; the first one present wins.
var penaltyTypes = []string{
	"holding", "false start", "offside", "delay of game", "illegal formation",
	"pass interference", "roughing the passer", "unnecessary roughness",
	"facemask", "illegal contact", "illegal use of hands", "encroachment",
}

var (
	yardsGainedRe  = regexp.MustCompile(`for\s+(-?\d+)\s+yard`)
	passTargetRe   = regexp.MustCompile(`to\s+([A-Z]\.[A-Za-z\-]+)`)
	passDefenderRe = regexp.MustCompile(`\(([A-Z]\.[A-Za-z\-]+(?:,\s*[A-Z]\.[A-Za-z\-]+)*)\)`)
	recoveredByRe  = regexp.MustCompile(`(?i)recovered by\s+([A-Z]{2,3})-([A-Z]\.[A-Za-z\-]+)`)
	forcedByRe     = regexp.MustCompile(`\(([A-Z]\.[A-Za-z\-]+)\)`)
	penaltyOnRe    = regexp.MustCompile(`(?i)penalty on\s+([A-Z]{2,3})-([A-Z]\.[A-Za-z\-]+)`)
	numberYardRe   = regexp.MustCompile(`(\d+)\s+yard`)
	fieldGoalRe    = regexp.MustCompile(`(\d+)\s+yard\s+field\s+goal`)
	puntDistanceRe = regexp.MustCompile(`punts\s+(\d+)\s+yard`)
	returnYardsRe  = regexp.MustCompile(`for\s+(\d+)\s+yard`)
)

// ParseDescription extracts the derived play features from a description
// and its play-type classification. It is a priority-ordered keyword
// cascade, not a grammar: every feature is detected independently over the
// lower-cased text, numeric extraction always takes the first match, and
// a missed pattern simply leaves the field null.
func ParseDescription(description, playType string) Description {
	var d Description
	if description == "" {
		return d
	}

	lower := strings.ToLower(description)
	playTypeLower := strings.ToLower(playType)

	for _, f := range formationPatterns {
		for _, variant := range f.variants {
			if strings.Contains(lower, variant) {
				d.OffensiveFormation = sql.NullString{String: f.name, Valid: true}
				break
			}
		}
		if d.OffensiveFormation.Valid {
			break
		}
	}

	if m := yardsGainedRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			d.YardsGained = sql.NullInt32{Int32: int32(v), Valid: true}
		}
	} else if strings.Contains(lower, "no gain") {
		d.YardsGained = sql.NullInt32{Int32: 0, Valid: true}
	}

	if strings.Contains(lower, "touchdown") {
		if strings.Contains(playTypeLower, "pass") {
			d.IsTouchdownPass = sql.NullBool{Bool: true, Valid: true}
		} else if strings.Contains(playTypeLower, "rush") || strings.Contains(playTypeLower, "run") {
			d.IsTouchdownRun = sql.NullBool{Bool: true, Valid: true}
		}
	}

	if strings.Contains(lower, "pass") {
		parsePassPlay(&d, description, lower)
	}

	if strings.Contains(lower, "sacked") {
		d.IsSack = sql.NullBool{Bool: true, Valid: true}
		if m := yardsGainedRe.FindStringSubmatch(lower); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				if v < 0 {
					v = -v
				}
				d.SackYards = sql.NullInt32{Int32: int32(v), Valid: true}
			}
		}
	}

	// Run direction uses the description keywords; the gap table requires
	// a rush play type (or "run" in the text) and no pass wording.
	if strings.Contains(lower, "rush") || strings.Contains(lower, "run") {
		switch {
		case strings.Contains(lower, "left end") || strings.Contains(lower, "left tackle") || strings.Contains(lower, "left guard"):
			d.RunDirection = sql.NullString{String: "left", Valid: true}
		case strings.Contains(lower, "right end") || strings.Contains(lower, "right tackle") || strings.Contains(lower, "right guard"):
			d.RunDirection = sql.NullString{String: "right", Valid: true}
		case strings.Contains(lower, "middle") || strings.Contains(lower, "center"):
			d.RunDirection = sql.NullString{String: "middle", Valid: true}
		}
	}

	if (strings.Contains(playTypeLower, "rush") || strings.Contains(lower, "run")) && !strings.Contains(lower, "pass") {
		for _, g := range runGapPatterns {
			for _, variant := range g.variants {
				if strings.Contains(lower, variant) {
					d.RunGap = sql.NullString{String: g.gap, Valid: true}
					break
				}
			}
			if d.RunGap.Valid {
				break
			}
		}
	}

	if strings.Contains(lower, "fumble") {
		parseFumble(&d, description, playType)
	}

	if strings.Contains(lower, "first down") || strings.Contains(lower, "1st down") {
		d.IsFirstDown = sql.NullBool{Bool: true, Valid: true}
	}

	if strings.Contains(lower, "penalty") {
		parsePenalty(&d, description, lower)
	}

	parseSpecialTeams(&d, lower)

	return d
}

func parsePassPlay(d *Description, description, lower string) {
	if strings.Contains(lower, "incomplete") {
		d.IsCompletePass = sql.NullBool{Bool: false, Valid: true}
	} else if strings.Contains(lower, "complete") ||
		(strings.Contains(lower, "for") && strings.Contains(lower, "yard")) {
		d.IsCompletePass = sql.NullBool{Bool: true, Valid: true}
	}

	if strings.Contains(lower, "intercepted") {
		d.IsInterception = sql.NullBool{Bool: true, Valid: true}
		d.IsTurnover = sql.NullBool{Bool: true, Valid: true}
		d.IsCompletePass = sql.NullBool{Bool: false, Valid: true}
	}

	switch {
	case strings.Contains(lower, "short"):
		d.PassLength = sql.NullString{String: "short", Valid: true}
	case strings.Contains(lower, "deep"):
		d.PassLength = sql.NullString{String: "deep", Valid: true}
	default:
		d.PassLength = sql.NullString{String: "medium", Valid: true}
	}

	switch {
	case strings.Contains(lower, "left"):
		d.PassLocation = sql.NullString{String: "left", Valid: true}
	case strings.Contains(lower, "right"):
		d.PassLocation = sql.NullString{String: "right", Valid: true}
	case strings.Contains(lower, "middle"):
		d.PassLocation = sql.NullString{String: "middle", Valid: true}
	}

	if m := passTargetRe.FindStringSubmatch(description); m != nil {
		d.PassTarget = sql.NullString{String: m[1], Valid: true}
	}

	if m := passDefenderRe.FindStringSubmatch(description); m != nil {
		d.PassDefender = sql.NullString{String: m[1], Valid: true}
	}

	if strings.Contains(lower, "scramble") {
		d.QuarterbackScramble = sql.NullBool{Bool: true, Valid: true}
	}
}

func parseFumble(d *Description, description, playType string) {
	d.IsFumble = sql.NullBool{Bool: true, Valid: true}

	if m := recoveredByRe.FindStringSubmatch(description); m != nil {
		d.FumbleRecoveredBy = sql.NullString{String: m[1] + "-" + m[2], Valid: true}
		// A matched recovery is treated as a change of possession. This
		// does not verify the recovering club differs from the offense;
		// an own-team recovery still sets the flag.
		if playType != "" {
			d.IsTurnover = sql.NullBool{Bool: true, Valid: true}
		}
	}

	if m := forcedByRe.FindStringSubmatch(description); m != nil {
		d.FumbleForcedBy = sql.NullString{String: m[1], Valid: true}
	}
}

func parsePenalty(d *Description, description, lower string) {
	d.IsPenaltyOnPlay = sql.NullBool{Bool: true, Valid: true}

	for _, ptype := range penaltyTypes {
		if strings.Contains(lower, ptype) {
			d.PenaltyType = sql.NullString{String: titleCase(ptype), Valid: true}
			break
		}
	}

	if m := numberYardRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			d.PenaltyYards = sql.NullInt32{Int32: int32(v), Valid: true}
		}
	}

	if m := penaltyOnRe.FindStringSubmatch(description); m != nil {
		d.PenaltyTeam = sql.NullString{String: m[1], Valid: true}
		d.PenaltyPlayer = sql.NullString{String: m[2], Valid: true}
	}

	if strings.Contains(lower, "declined") {
		d.PenaltyDeclined = sql.NullBool{Bool: true, Valid: true}
	}
	if strings.Contains(lower, "offsetting") {
		d.PenaltyOffset = sql.NullBool{Bool: true, Valid: true}
	}
	if strings.Contains(lower, "no play") {
		d.PenaltyNoPlay = sql.NullBool{Bool: true, Valid: true}
	}
}

func parseSpecialTeams(d *Description, lower string) {
	switch {
	case strings.Contains(lower, "field goal"):
		d.IsFieldGoal = sql.NullBool{Bool: true, Valid: true}

		if m := fieldGoalRe.FindStringSubmatch(lower); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				d.FieldGoalDistance = sql.NullInt32{Int32: int32(v), Valid: true}
			}
		}

		// "no good" must be checked before "good"; the substring test
		// would otherwise classify every miss as made.
		switch {
		case strings.Contains(lower, "no good"):
			d.FieldGoalResult = sql.NullString{String: "NO GOOD", Valid: true}
		case strings.Contains(lower, "blocked"):
			d.FieldGoalResult = sql.NullString{String: "BLOCKED", Valid: true}
		case strings.Contains(lower, "good"):
			d.FieldGoalResult = sql.NullString{String: "GOOD", Valid: true}
		}

	case strings.Contains(lower, "punts"):
		d.IsPunt = sql.NullBool{Bool: true, Valid: true}

		if m := puntDistanceRe.FindStringSubmatch(lower); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				d.PuntDistance = sql.NullInt32{Int32: int32(v), Valid: true}
			}
		}

		if m := returnYardsRe.FindStringSubmatch(lower); m != nil && !strings.Contains(lower, "return") {
			if v, err := strconv.Atoi(m[1]); err == nil {
				d.PuntReturnYards = sql.NullInt32{Int32: int32(v), Valid: true}
			}
		}

	case strings.Contains(lower, "kickoff"):
		d.IsKickoff = sql.NullBool{Bool: true, Valid: true}

		if m := returnYardsRe.FindStringSubmatch(lower); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				d.KickoffReturnYards = sql.NullInt32{Int32: int32(v), Valid: true}
			}
		}

		if strings.Contains(lower, "touchback") {
			d.IsTouchback = sql.NullBool{Bool: true, Valid: true}
		}
	}
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
