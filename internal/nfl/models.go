package nfl

// Vendor payload model for pro.nfl.com game data. These types are the
// validated form of the JSON the schedules/scores endpoints and the
// play-by-play page return; the feature engine and the store both consume
// them.

// MoneyLine holds moneyline prices as the vendor formats them (strings).
type MoneyLine struct {
	HomePrice string `json:"homePrice,omitempty"`
	AwayPrice string `json:"awayPrice,omitempty"`
}

// Spread holds point-spread handicaps and prices.
type Spread struct {
	AwayHandicap string `json:"awayHandicap,omitempty"`
	HomeHandicap string `json:"homeHandicap,omitempty"`
	HomePrice    string `json:"homePrice,omitempty"`
	AwayPrice    string `json:"awayPrice,omitempty"`
}

// Totals holds over/under handicaps and prices.
type Totals struct {
	UnderHandicap float64 `json:"underHandicap,omitempty"`
	OverHandicap  float64 `json:"overHandicap,omitempty"`
	OverPrice     int     `json:"overPrice,omitempty"`
	UnderPrice    int     `json:"underPrice,omitempty"`
}

// BettingOdds is the odds snapshot attached to a game.
type BettingOdds struct {
	Moneyline *MoneyLine `json:"moneyline,omitempty"`
	Spread    *Spread    `json:"spread,omitempty"`
	Totals    *Totals    `json:"totals,omitempty"`
	UpdatedAt string     `json:"updatedAt,omitempty"`
}

// Score is a quarter-by-quarter line score.
type Score struct {
	Q1    int `json:"q1"`
	Q2    int `json:"q2"`
	Q3    int `json:"q3"`
	Q4    int `json:"q4"`
	OT    int `json:"ot"`
	Total int `json:"total"`
}

// Timeouts tracks a side's timeout budget.
type Timeouts struct {
	Remaining int `json:"remaining"`
	Used      int `json:"used"`
}

// TeamLocation is the city/conference/division triple from team metadata.
type TeamLocation struct {
	CityState  string `json:"cityState,omitempty"`
	Conference string `json:"conference,omitempty"`
	Division   string `json:"division,omitempty"`
}

// TeamInfo identifies a franchise.
type TeamInfo struct {
	ID           string        `json:"id"`
	Name         string        `json:"name,omitempty"`
	Nickname     string        `json:"nickname,omitempty"`
	Abbreviation string        `json:"abbreviation,omitempty"`
	Location     *TeamLocation `json:"location,omitempty"`
}

// TeamGameStats is a team's in-game state on the live feed.
type TeamGameStats struct {
	Score      Score    `json:"score"`
	Timeouts   Timeouts `json:"timeouts"`
	Possession bool     `json:"possession"`
}

// Team pairs franchise identity with its game state.
type Team struct {
	Info      TeamInfo      `json:"info"`
	GameStats TeamGameStats `json:"game_stats"`
}

// Teams holds both sides of a game.
type Teams struct {
	Home Team `json:"home"`
	Away Team `json:"away"`
}

// GameSituation is the current down-and-distance snapshot.
type GameSituation struct {
	Clock      string `json:"clock,omitempty"`
	Quarter    string `json:"quarter,omitempty"`
	Down       int    `json:"down,omitempty"`
	Distance   int    `json:"distance,omitempty"`
	YardLine   string `json:"yardLine,omitempty"`
	IsRedZone  bool   `json:"isRedZone,omitempty"`
	IsGoalToGo bool   `json:"isGoalToGo,omitempty"`
}

// Venue describes the stadium, including the roof type the weather-impact
// scoring keys off.
type Venue struct {
	SmartID      string `json:"smartId,omitempty"`
	SiteID       int    `json:"siteId,omitempty"`
	SiteFullName string `json:"siteFullName,omitempty"`
	SiteCity     string `json:"siteCity,omitempty"`
	SiteState    string `json:"siteState,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	RoofType     string `json:"roofType,omitempty"`
}

// GameInfo carries scheduling and status metadata for a game.
type GameInfo struct {
	ID            string `json:"id"`
	Season        int    `json:"season"`
	SeasonType    string `json:"season_type"`
	Week          string `json:"week"`
	Status        string `json:"status,omitempty"`
	DisplayStatus string `json:"display_status,omitempty"`
	GameState     string `json:"game_state,omitempty"`
	Attendance    int    `json:"attendance,omitempty"`
	Weather       string `json:"weather,omitempty"`
	GamebookURL   string `json:"gamebook_url,omitempty"`
	Date          string `json:"date,omitempty"`
	Time          string `json:"time,omitempty"`
	Network       string `json:"network,omitempty"`
}

// Game is the aggregate root handed to the game service: metadata plus the
// ordered play sequence.
type Game struct {
	GameInfo  GameInfo               `json:"game_info"`
	Venue     *Venue                 `json:"venue,omitempty"`
	Teams     Teams                  `json:"teams"`
	Situation GameSituation          `json:"situation"`
	Betting   *BettingOdds           `json:"betting,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Plays     []Play                 `json:"plays,omitempty"`
}

// PlayStat is one player-attributed stat event within a play.
type PlayStat struct {
	ClubCode   string `json:"clubCode,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
	StatID     int    `json:"statId,omitempty"`
	Yards      int    `json:"yards,omitempty"`
	GSISID     string `json:"gsisId,omitempty"`
}

// PersonnelPlayer is one on-field player in a snap's personnel list.
type PersonnelPlayer struct {
	NFLID         int    `json:"nflId"`
	GSISID        string `json:"gsisId,omitempty"`
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	PlayerName    string `json:"playerName,omitempty"`
	Position      string `json:"position,omitempty"`
	PositionGroup string `json:"positionGroup,omitempty"`
	UniformNumber string `json:"uniformNumber,omitempty"`
	TeamID        string `json:"teamId,omitempty"`
}

// PlayDetail is the full per-play attribute set from the play-by-play feed.
type PlayDetail struct {
	PreSnapHomeScore    int  `json:"preSnapHomeScore"`
	PreSnapVisitorScore int  `json:"preSnapVisitorScore"`
	HomeScore           int  `json:"homeScore"`
	VisitorScore        int  `json:"visitorScore"`
	IsBigPlay           bool `json:"isBigPlay,omitempty"`
	IsEndQuarter        bool `json:"isEndQuarter,omitempty"`
	IsGoalToGo          bool `json:"isGoalToGo,omitempty"`
	IsNoPlay            bool `json:"isNoPlay,omitempty"`
	IsPenalty           bool `json:"isPenalty,omitempty"`
	IsScoring           bool `json:"isScoring,omitempty"`
	IsSTPlay            bool `json:"isSTPlay,omitempty"`
	IsChangeOfPossession bool `json:"isChangeOfPossession,omitempty"`
	IsRedzonePlay       bool `json:"isRedzonePlay,omitempty"`

	ExpectedPoints      float64 `json:"expectedPoints,omitempty"`
	ExpectedPointsAdded float64 `json:"expectedPointsAdded,omitempty"`

	PreSnapHomeTeamWinProbability    float64 `json:"preSnapHomeTeamWinProbability,omitempty"`
	PreSnapVisitorTeamWinProbability float64 `json:"preSnapVisitorTeamWinProbability,omitempty"`
	PostPlayHomeTeamWinProbability   float64 `json:"postPlayHomeTeamWinProbability,omitempty"`
	PostPlayVisitorTeamWinProbability float64 `json:"postPlayVisitorTeamWinProbability,omitempty"`

	HomeTimeoutsLeft    int `json:"homeTimeoutsLeft"`
	VisitorTimeoutsLeft int `json:"visitorTimeoutsLeft"`

	PlayState              string `json:"playState,omitempty"`
	PlayTypeCode           int    `json:"playTypeCode,omitempty"`
	PlayType               string `json:"playType,omitempty"`
	PlayDescription        string `json:"playDescription,omitempty"`
	Quarter                int    `json:"quarter,omitempty"`
	GameClock              string `json:"gameClock,omitempty"`
	YardlineNumber         int    `json:"yardlineNumber,omitempty"`
	YardlineSide           string `json:"yardlineSide,omitempty"`
	AbsoluteYardlineNumber int    `json:"absoluteYardlineNumber,omitempty"`
	PlayDirection          string `json:"playDirection,omitempty"`
	TimeOfDayUTC           string `json:"timeOfDayUTC,omitempty"`

	PlayStats []PlayStat `json:"playStats,omitempty"`
}

// PlaySummary pairs a play's detail with the on-field personnel lists.
type PlaySummary struct {
	Play          *PlayDetail       `json:"play,omitempty"`
	Home          []PersonnelPlayer `json:"home,omitempty"`
	Away          []PersonnelPlayer `json:"away,omitempty"`
	HomeIsOffense bool              `json:"homeIsOffense,omitempty"`
}

// Play is one ordered record within a game. Summary is nil when the
// play-by-play feed did not carry detail for the snap; every consumer
// must tolerate that.
type Play struct {
	PlayID           int          `json:"playId"`
	Sequence         int          `json:"sequence"`
	Quarter          int          `json:"quarter,omitempty"`
	Down             int          `json:"down,omitempty"`
	YardsToGo        int          `json:"yardsToGo,omitempty"`
	Yardline         string       `json:"yardline,omitempty"`
	GameClock        string       `json:"gameClock,omitempty"`
	PlayType         string       `json:"playType,omitempty"`
	PlayDescription  string       `json:"playDescription,omitempty"`
	PossessionTeamID string       `json:"possessionTeamId,omitempty"`
	DefenseTeamID    string       `json:"defenseTeamId,omitempty"`
	HomeTeamID       string       `json:"homeTeamId,omitempty"`
	Summary          *PlaySummary `json:"summary,omitempty"`
}

// Detail returns the play's detail record, or nil when no summary was
// captured for the snap.
func (p *Play) Detail() *PlayDetail {
	if p == nil || p.Summary == nil {
		return nil
	}
	return p.Summary.Play
}

// DefensivePersonnel returns the personnel list for the side on defense.
func (p *Play) DefensivePersonnel() []PersonnelPlayer {
	if p == nil || p.Summary == nil {
		return nil
	}
	if p.Summary.HomeIsOffense {
		return p.Summary.Away
	}
	return p.Summary.Home
}
