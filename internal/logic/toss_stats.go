package logic

import (
	"context"
	"fmt"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

type tossStatsService struct {
	api Backend
}

func NewTossStatsService(api Backend) TossService {
	return &tossStatsService{api: api}
}

func (s *tossStatsService) Analysis(ctx context.Context, filter backend.TossFilter) (*models.TossAnalysis, error) {
	analysis, err := s.api.TossAnalysis(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("toss analysis: %w", err)
	}
	return analysis, nil
}

func (s *tossStatsService) Trends(ctx context.Context) (*TossTrendSummary, error) {
	trends, err := s.api.TossTrends(ctx)
	if err != nil {
		return nil, fmt.Errorf("toss trends: %w", err)
	}
	summary := SummarizeTossTrends(trends)
	return &summary, nil
}
