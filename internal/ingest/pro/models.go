package pro

import (
	"github.com/fortuna/gridiron/internal/nfl"
)

// Vendor payload shapes for the pro.nfl.com schedule and score endpoints.
// Only the fields the ingester reads are typed; the standings payload is
// kept raw because it is stored as game metadata, not parsed field by
// field.

// TeamState is one side's live in-game state on the scores feed.
type TeamState struct {
	Score         nfl.Score    `json:"score"`
	Timeouts      nfl.Timeouts `json:"timeouts"`
	HasPossession bool         `json:"hasPossession"`
}

// LiveGame is one game on the live scores feed.
type LiveGame struct {
	GameID        string    `json:"gameId"`
	Phase         string    `json:"phase"`
	DisplayStatus string    `json:"displayStatus"`
	GameState     string    `json:"gameState"`
	Attendance    int       `json:"attendance"`
	Weather       string    `json:"weather"`
	GameBookURL   string    `json:"gameBookUrl"`
	Clock         string    `json:"clock"`
	Quarter       string    `json:"quarter"`
	Down          int       `json:"down"`
	Distance      int       `json:"distance"`
	YardLine      string    `json:"yardLine"`
	IsRedZone     bool      `json:"isRedZone"`
	IsGoalToGo    bool      `json:"isGoalToGo"`
	HomeTeam      TeamState `json:"homeTeam"`
	AwayTeam      TeamState `json:"awayTeam"`
}

// LiveScoresResponse is the scores/live/games payload.
type LiveScoresResponse struct {
	Games []LiveGame `json:"games"`
}

// TeamMetadata is a franchise record on the schedules/game payload.
type TeamMetadata struct {
	SmartID        string `json:"smartId"`
	FullName       string `json:"fullName"`
	Nick           string `json:"nick"`
	Abbr           string `json:"abbr"`
	CityState      string `json:"cityState"`
	ConferenceAbbr string `json:"conferenceAbbr"`
	DivisionAbbr   string `json:"divisionAbbr"`
}

// GameMetadata is the schedules/game payload for one game.
type GameMetadata struct {
	HomeTeam        TeamMetadata `json:"homeTeam"`
	VisitorTeam     TeamMetadata `json:"visitorTeam"`
	Site            *nfl.Venue   `json:"site,omitempty"`
	GameDate        string       `json:"gameDate"`
	GameTimeEastern string       `json:"gameTimeEastern"`
	NetworkChannel  string       `json:"networkChannel"`
}

// GameOdds is one game's odds snapshot on the week odds payload, keyed by
// the team abbreviation pair.
type GameOdds struct {
	HomeTeamAbbr    string         `json:"homeTeamAbbr"`
	VisitorTeamAbbr string         `json:"visitorTeamAbbr"`
	Moneyline       *nfl.MoneyLine `json:"moneyline,omitempty"`
	Spread          *nfl.Spread    `json:"spread,omitempty"`
	Totals          *nfl.Totals    `json:"totals,omitempty"`
	UpdatedAt       string         `json:"updatedAt,omitempty"`
}

// OddsResponse is the schedules/week/odds payload.
type OddsResponse struct {
	Games []GameOdds `json:"games"`
}
