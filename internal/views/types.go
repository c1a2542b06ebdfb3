package views

import (
	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

// Page is the chrome of a dashboard page.
type Page struct {
	Title   string
	Section string
}

// ErrorPanel is the single failure view: a message and a link that refetches.
type ErrorPanel struct {
	Status   int
	Message  string
	RetryURL string
}

type TeamsPageData struct {
	Search string        `json:"search,omitempty"`
	Count  int           `json:"count"`
	Teams  []models.Team `json:"teams"`
}

type VenuesPageData struct {
	Search string         `json:"search,omitempty"`
	Count  int            `json:"count"`
	Venues []models.Venue `json:"venues"`
}

// VenuePageData adds the season picker to a venue aggregate.
type VenuePageData struct {
	*logic.VenueDetailView
	Seasons []int `json:"-"`
}

type TossPageData struct {
	Filter   backend.TossFilter   `json:"filter"`
	Analysis *models.TossAnalysis `json:"analysis"`
}

type HeadToHeadPageData struct {
	Records []logic.HeadToHeadShare `json:"records"`
}

type RivalriesPageData struct {
	MinMatches int              `json:"min_matches"`
	Rivalries  []models.Rivalry `json:"rivalries"`
}

type PlayersPageData struct {
	Search  string          `json:"search,omitempty"`
	Role    string          `json:"role,omitempty"`
	Roles   []string        `json:"-"`
	Count   int             `json:"count"`
	Players []models.Player `json:"players"`
}

type TopPlayersPageData struct {
	*models.TopPlayersEnvelope
	Categories []string `json:"-"`
	Limit      int      `json:"limit"`
}

type PredictPageData struct {
	DefaultSeason int     `json:"default_season"`
	DefaultBudget float64 `json:"default_budget"`
}

type MatchPredictionPageData struct {
	Params     models.MatchPredictionParams `json:"params"`
	Prediction *models.MatchPrediction      `json:"prediction"`
}

type FantasyPageData struct {
	Request models.FantasyRequest `json:"request"`
	Team    *models.FantasyTeam   `json:"team"`
}

type PlayerPredictionPageData struct {
	PlayerID   int                           `json:"player_id"`
	Params     models.PlayerPredictionParams `json:"params"`
	Prediction *models.PlayerPrediction      `json:"prediction"`
}

type HistoryPageData struct {
	Count   int                       `json:"count"`
	Records []models.PredictionRecord `json:"records"`
}
