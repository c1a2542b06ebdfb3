package logic

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

var historyWriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ipl_dashboard_history_write_failures_total",
	Help: "Prediction lookups that could not be recorded",
}, []string{"kind"})

type predictionService struct {
	api     Backend
	history HistoryStore
	logger  *zap.SugaredLogger
}

// NewPredictionService wires predictions to the backend. history may be nil.
func NewPredictionService(api Backend, history HistoryStore, logger *zap.Logger) PredictionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &predictionService{api: api, history: history, logger: logger.Sugar()}
}

func (s *predictionService) Match(ctx context.Context, params models.MatchPredictionParams) (*models.MatchPrediction, error) {
	if params.SeasonYear <= 0 {
		params.SeasonYear = backend.DefaultSeasonYear
	}
	if err := models.Validate(&params); err != nil {
		return nil, fmt.Errorf("%w: %v", backend.ErrInvalidArgument, err)
	}

	prediction, err := s.api.PredictMatch(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("match prediction: %w", err)
	}
	s.record(ctx, models.PredictionKindMatch, params, prediction)
	return prediction, nil
}

func (s *predictionService) Fantasy(ctx context.Context, req models.FantasyRequest) (*models.FantasyTeam, error) {
	if req.Budget == 0 {
		req.Budget = backend.DefaultFantasyBudget
	}
	team, err := s.api.FantasyTeam(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fantasy team: %w", err)
	}
	s.record(ctx, models.PredictionKindFantasy, req, team)
	return team, nil
}

func (s *predictionService) Player(ctx context.Context, playerID int, params models.PlayerPredictionParams) (*models.PlayerPrediction, error) {
	prediction, err := s.api.PlayerPrediction(ctx, playerID, params)
	if err != nil {
		return nil, fmt.Errorf("player prediction: %w", err)
	}
	request := struct {
		PlayerID int `json:"player_id"`
		models.PlayerPredictionParams
	}{playerID, params}
	s.record(ctx, models.PredictionKindPlayer, request, prediction)
	return prediction, nil
}

// History returns the most recent recorded lookups, newest first.
func (s *predictionService) History(ctx context.Context, limit int) ([]models.PredictionRecord, error) {
	if s.history == nil {
		return []models.PredictionRecord{}, nil
	}
	records, err := s.history.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("prediction history: %w", err)
	}
	return records, nil
}

// record never fails the lookup it belongs to.
func (s *predictionService) record(ctx context.Context, kind string, request, response interface{}) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(ctx, kind, request, response); err != nil {
		historyWriteFailures.WithLabelValues(kind).Inc()
		s.logger.Warnw("Failed to record prediction", "kind", kind, "error", err)
	}
}
