package logic

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

var errNotMocked = errors.New("not mocked")

// MockBackend implements Backend for testing
type MockBackend struct {
	TeamsFunc              func(ctx context.Context) ([]models.Team, error)
	TeamDetailFunc         func(ctx context.Context, name string) (*models.TeamDetail, error)
	VenuesFunc             func(ctx context.Context) ([]models.Venue, error)
	VenueDetailFunc        func(ctx context.Context, name string, season int) (*models.VenueDetail, error)
	MatchesSummaryFunc     func(ctx context.Context) (*models.MatchesSummary, error)
	SeasonMatchesFunc      func(ctx context.Context, year int) (*models.SeasonMatches, error)
	TossAnalysisFunc       func(ctx context.Context, filter backend.TossFilter) (*models.TossAnalysis, error)
	TossTrendsFunc         func(ctx context.Context) ([]models.TossTrend, error)
	HeadToHeadRecordsFunc  func(ctx context.Context) ([]models.HeadToHeadRecord, error)
	HeadToHeadFunc         func(ctx context.Context, a, b string, season int) (*models.HeadToHeadDetail, error)
	StrongestRivalriesFunc func(ctx context.Context, minMatches int) ([]models.Rivalry, error)
	PlayersFunc            func(ctx context.Context) ([]models.Player, error)
	TopPlayersFunc         func(ctx context.Context, category string, season, limit int) (*models.TopPlayersEnvelope, error)
	PredictMatchFunc       func(ctx context.Context, params models.MatchPredictionParams) (*models.MatchPrediction, error)
	FantasyTeamFunc        func(ctx context.Context, req models.FantasyRequest) (*models.FantasyTeam, error)
	PlayerPredictionFunc   func(ctx context.Context, id int, params models.PlayerPredictionParams) (*models.PlayerPrediction, error)
}

func (m *MockBackend) Teams(ctx context.Context) ([]models.Team, error) {
	if m.TeamsFunc != nil {
		return m.TeamsFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *MockBackend) TeamDetail(ctx context.Context, name string) (*models.TeamDetail, error) {
	if m.TeamDetailFunc != nil {
		return m.TeamDetailFunc(ctx, name)
	}
	return nil, errNotMocked
}

func (m *MockBackend) Venues(ctx context.Context) ([]models.Venue, error) {
	if m.VenuesFunc != nil {
		return m.VenuesFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *MockBackend) VenueDetail(ctx context.Context, name string, season int) (*models.VenueDetail, error) {
	if m.VenueDetailFunc != nil {
		return m.VenueDetailFunc(ctx, name, season)
	}
	return nil, errNotMocked
}

func (m *MockBackend) MatchesSummary(ctx context.Context) (*models.MatchesSummary, error) {
	if m.MatchesSummaryFunc != nil {
		return m.MatchesSummaryFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *MockBackend) SeasonMatches(ctx context.Context, year int) (*models.SeasonMatches, error) {
	if m.SeasonMatchesFunc != nil {
		return m.SeasonMatchesFunc(ctx, year)
	}
	return nil, errNotMocked
}

func (m *MockBackend) TossAnalysis(ctx context.Context, filter backend.TossFilter) (*models.TossAnalysis, error) {
	if m.TossAnalysisFunc != nil {
		return m.TossAnalysisFunc(ctx, filter)
	}
	return nil, errNotMocked
}

func (m *MockBackend) TossTrends(ctx context.Context) ([]models.TossTrend, error) {
	if m.TossTrendsFunc != nil {
		return m.TossTrendsFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *MockBackend) HeadToHeadRecords(ctx context.Context) ([]models.HeadToHeadRecord, error) {
	if m.HeadToHeadRecordsFunc != nil {
		return m.HeadToHeadRecordsFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *MockBackend) HeadToHead(ctx context.Context, a, b string, season int) (*models.HeadToHeadDetail, error) {
	if m.HeadToHeadFunc != nil {
		return m.HeadToHeadFunc(ctx, a, b, season)
	}
	return nil, errNotMocked
}

func (m *MockBackend) StrongestRivalries(ctx context.Context, minMatches int) ([]models.Rivalry, error) {
	if m.StrongestRivalriesFunc != nil {
		return m.StrongestRivalriesFunc(ctx, minMatches)
	}
	return nil, errNotMocked
}

func (m *MockBackend) Players(ctx context.Context) ([]models.Player, error) {
	if m.PlayersFunc != nil {
		return m.PlayersFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *MockBackend) TopPlayers(ctx context.Context, category string, season, limit int) (*models.TopPlayersEnvelope, error) {
	if m.TopPlayersFunc != nil {
		return m.TopPlayersFunc(ctx, category, season, limit)
	}
	return nil, errNotMocked
}

func (m *MockBackend) PredictMatch(ctx context.Context, params models.MatchPredictionParams) (*models.MatchPrediction, error) {
	if m.PredictMatchFunc != nil {
		return m.PredictMatchFunc(ctx, params)
	}
	return nil, errNotMocked
}

func (m *MockBackend) FantasyTeam(ctx context.Context, req models.FantasyRequest) (*models.FantasyTeam, error) {
	if m.FantasyTeamFunc != nil {
		return m.FantasyTeamFunc(ctx, req)
	}
	return nil, errNotMocked
}

func (m *MockBackend) PlayerPrediction(ctx context.Context, id int, params models.PlayerPredictionParams) (*models.PlayerPrediction, error) {
	if m.PlayerPredictionFunc != nil {
		return m.PlayerPredictionFunc(ctx, id, params)
	}
	return nil, errNotMocked
}

// MockHistory implements HistoryStore for testing
type MockHistory struct {
	mu        sync.Mutex
	Records   []models.PredictionRecord
	RecordErr error
	RecentErr error
}

func (m *MockHistory) Record(ctx context.Context, kind string, request, response interface{}) error {
	if m.RecordErr != nil {
		return m.RecordErr
	}
	req, err := json.Marshal(request)
	if err != nil {
		return err
	}
	resp, err := json.Marshal(response)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = append(m.Records, models.PredictionRecord{Kind: kind, Request: req, Response: resp})
	return nil
}

func (m *MockHistory) Recent(ctx context.Context, limit int) ([]models.PredictionRecord, error) {
	if m.RecentErr != nil {
		return nil, m.RecentErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.Records) {
		limit = len(m.Records)
	}
	return m.Records[:limit], nil
}
