package models

import (
	"encoding/json"
	"time"
)

// MatchPrediction is the backend's forecast for a fixture.
// Probabilities are percentages in [0, 100].
type MatchPrediction struct {
	Team1               string    `json:"team1"`
	Team2               string    `json:"team2"`
	Venue               string    `json:"venue"`
	SeasonYear          FlexInt   `json:"season_year"`
	Team1WinProbability FlexFloat `json:"team1_win_probability" validate:"gte=0,lte=100"`
	Team2WinProbability FlexFloat `json:"team2_win_probability" validate:"gte=0,lte=100"`
	PredictedWinner     string    `json:"predicted_winner" validate:"required"`
	Confidence          FlexFloat `json:"confidence"`
	KeyFactors          []string  `json:"key_factors,omitempty"`
}

// MatchPredictionParams identify the fixture of GET /predictions/match/{team1}/{team2}/{venue}.
type MatchPredictionParams struct {
	Team1ID    int `json:"team1_id" validate:"required,gt=0"`
	Team2ID    int `json:"team2_id" validate:"required,gt=0,nefield=Team1ID"`
	VenueID    int `json:"venue_id" validate:"required,gt=0"`
	SeasonYear int `json:"season_year" validate:"omitempty,gte=2008,lte=2100"`
}

// FantasyRequest is the body of POST /predictions/fantasy-team.
type FantasyRequest struct {
	Team1ID int     `json:"team1_id" validate:"required,gt=0"`
	Team2ID int     `json:"team2_id" validate:"required,gt=0,nefield=Team1ID"`
	VenueID int     `json:"venue_id" validate:"required,gt=0"`
	Budget  float64 `json:"budget" validate:"gt=0,lte=1000"`
}

// FantasyPick is one selected player in a fantasy XI.
type FantasyPick struct {
	PlayerID       FlexInt   `json:"player_id"`
	PlayerName     string    `json:"player_name" validate:"required"`
	Team           string    `json:"team"`
	Role           string    `json:"role"`
	Credits        FlexFloat `json:"credits" validate:"gte=0"`
	ExpectedPoints FlexFloat `json:"expected_points"`
}

// FantasyTeam is the optimised fantasy XI returned by the backend.
type FantasyTeam struct {
	Players        []FantasyPick `json:"players" validate:"required,dive"`
	TotalCredits   FlexFloat     `json:"total_credits"`
	ExpectedPoints FlexFloat     `json:"expected_points"`
	Captain        string        `json:"captain"`
	ViceCaptain    string        `json:"vice_captain"`
}

// PlayerPredictionParams are the query parameters of GET /predictions/player/{id}.
type PlayerPredictionParams struct {
	Team1ID      int `json:"team1_id" validate:"required,gt=0"`
	Team2ID      int `json:"team2_id" validate:"required,gt=0"`
	VenueID      int `json:"venue_id" validate:"required,gt=0"`
	PlayerTeamID int `json:"player_team_id" validate:"required,gt=0"`
}

// PlayerPrediction is the backend's forecast for one player in a fixture.
type PlayerPrediction struct {
	PlayerID              FlexInt   `json:"player_id"`
	PlayerName            string    `json:"player_name" validate:"required"`
	PredictedRuns         FlexFloat `json:"predicted_runs" validate:"gte=0"`
	PredictedWickets      FlexFloat `json:"predicted_wickets" validate:"gte=0"`
	ExpectedFantasyPoints FlexFloat `json:"expected_fantasy_points"`
	Confidence            FlexFloat `json:"confidence"`
}

// Prediction kinds recorded in the history.
const (
	PredictionKindMatch   = "match"
	PredictionKindFantasy = "fantasy"
	PredictionKindPlayer  = "player"
)

// PredictionRecord is one past prediction lookup.
type PredictionRecord struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Request   json.RawMessage `json:"request"`
	Response  json.RawMessage `json:"response"`
	CreatedAt time.Time       `json:"created_at"`
}
