package logic

import (
	"context"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

// Backend defines the analytics backend operations the services depend on.
// *backend.Client satisfies it.
type Backend interface {
	Teams(ctx context.Context) ([]models.Team, error)
	TeamDetail(ctx context.Context, name string) (*models.TeamDetail, error)
	Venues(ctx context.Context) ([]models.Venue, error)
	VenueDetail(ctx context.Context, name string, season int) (*models.VenueDetail, error)
	MatchesSummary(ctx context.Context) (*models.MatchesSummary, error)
	SeasonMatches(ctx context.Context, year int) (*models.SeasonMatches, error)
	TossAnalysis(ctx context.Context, filter backend.TossFilter) (*models.TossAnalysis, error)
	TossTrends(ctx context.Context) ([]models.TossTrend, error)
	HeadToHeadRecords(ctx context.Context) ([]models.HeadToHeadRecord, error)
	HeadToHead(ctx context.Context, teamA, teamB string, season int) (*models.HeadToHeadDetail, error)
	StrongestRivalries(ctx context.Context, minMatches int) ([]models.Rivalry, error)
	Players(ctx context.Context) ([]models.Player, error)
	TopPlayers(ctx context.Context, category string, season, limit int) (*models.TopPlayersEnvelope, error)
	PredictMatch(ctx context.Context, params models.MatchPredictionParams) (*models.MatchPrediction, error)
	FantasyTeam(ctx context.Context, req models.FantasyRequest) (*models.FantasyTeam, error)
	PlayerPrediction(ctx context.Context, playerID int, params models.PlayerPredictionParams) (*models.PlayerPrediction, error)
}

// HistoryStore persists prediction lookups.
type HistoryStore interface {
	Record(ctx context.Context, kind string, request, response interface{}) error
	Recent(ctx context.Context, limit int) ([]models.PredictionRecord, error)
}

// TeamService serves the team overview and team detail views.
type TeamService interface {
	Overview(ctx context.Context, search string) ([]models.Team, error)
	Detail(ctx context.Context, name string) (*TeamDetailView, error)
}

// VenueService serves the venue overview and venue detail views.
type VenueService interface {
	Overview(ctx context.Context, search string) ([]models.Venue, error)
	Detail(ctx context.Context, name string, season int) (*VenueDetailView, error)
}

// MatchService serves the match summary and per-season match list.
type MatchService interface {
	Summary(ctx context.Context) (*models.MatchesSummary, error)
	Season(ctx context.Context, year int, filter MatchFilter) (*SeasonView, error)
}

// TossService serves toss analysis and toss decision trends.
type TossService interface {
	Analysis(ctx context.Context, filter backend.TossFilter) (*models.TossAnalysis, error)
	Trends(ctx context.Context) (*TossTrendSummary, error)
}

// HeadToHeadService serves pairings between teams.
type HeadToHeadService interface {
	Records(ctx context.Context) ([]HeadToHeadShare, error)
	Between(ctx context.Context, teamA, teamB string, season int) (*HeadToHeadView, error)
	Rivalries(ctx context.Context, minMatches int) ([]models.Rivalry, error)
}

// PlayerStatsService serves the player list and leaderboards.
type PlayerStatsService interface {
	All(ctx context.Context, search, role string) ([]models.Player, error)
	Top(ctx context.Context, category string, season, limit int) (*models.TopPlayersEnvelope, error)
}

// PredictionService proxies backend predictions and records them in the history.
type PredictionService interface {
	Match(ctx context.Context, params models.MatchPredictionParams) (*models.MatchPrediction, error)
	Fantasy(ctx context.Context, req models.FantasyRequest) (*models.FantasyTeam, error)
	Player(ctx context.Context, playerID int, params models.PlayerPredictionParams) (*models.PlayerPrediction, error)
	History(ctx context.Context, limit int) ([]models.PredictionRecord, error)
}

// DashboardService composes the home page.
type DashboardService interface {
	Home(ctx context.Context) (*HomeView, error)
}
