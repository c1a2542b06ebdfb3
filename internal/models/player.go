package models

// Player roles as derived by the backend from balls faced and bowled.
const (
	RoleAllRounder = "All-Rounder"
	RoleBatsman    = "Batsman"
	RoleBowler     = "Bowler"
	RoleUnknown    = "Unknown"
)

// Player is one row of GET /players/all.
type Player struct {
	PlayerName  string  `json:"player_name" validate:"required"`
	Role        string  `json:"role"`
	BallsFaced  FlexInt `json:"balls_faced" validate:"gte=0"`
	RunsScored  FlexInt `json:"runs_scored" validate:"gte=0"`
	BallsBowled FlexInt `json:"balls_bowled" validate:"gte=0"`
	Wickets     FlexInt `json:"wickets" validate:"gte=0"`
	HasWonPOM   bool    `json:"has_won_pom"`
}

// PlayersEnvelope is the GET /players/all response body.
type PlayersEnvelope struct {
	Players []Player `json:"players" validate:"required,dive"`
	Count   FlexInt  `json:"count"`
}

// TopPlayer is one leaderboard row of GET /players/top/{category}.
// Only the fields relevant to the requested category are populated.
type TopPlayer struct {
	PlayerName string     `json:"player_name" validate:"required"`
	Matches    FlexInt    `json:"matches"`
	Runs       *FlexInt   `json:"runs,omitempty"`
	Wickets    *FlexInt   `json:"wickets,omitempty"`
	Sixes      *FlexInt   `json:"sixes,omitempty"`
	Fours      *FlexInt   `json:"fours,omitempty"`
	StrikeRate *FlexFloat `json:"strike_rate,omitempty"`
	Economy    *FlexFloat `json:"economy,omitempty"`
	Average    *FlexFloat `json:"average,omitempty"`
}

// TopPlayersEnvelope is the GET /players/top/{category} response body.
type TopPlayersEnvelope struct {
	Category string      `json:"category"`
	Season   *FlexInt    `json:"season"`
	Players  []TopPlayer `json:"players" validate:"required,dive"`
	Count    FlexInt     `json:"count"`
}
