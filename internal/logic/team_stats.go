package logic

import (
	"context"
	"fmt"
	"strings"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

// TeamDetailView is a team aggregate with its derived toss breakdown.
type TeamDetailView struct {
	Detail   *models.TeamDetail `json:"detail"`
	Toss     TossDecisionView   `json:"toss"`
	WinClass string             `json:"win_class"`
}

type teamStatsService struct {
	api Backend
}

func NewTeamStatsService(api Backend) TeamService {
	return &teamStatsService{api: api}
}

// Overview returns every team sorted by win percentage, filtered by search.
func (s *teamStatsService) Overview(ctx context.Context, search string) ([]models.Team, error) {
	teams, err := s.api.Teams(ctx)
	if err != nil {
		return nil, fmt.Errorf("teams: %w", err)
	}
	return FilterTeams(SortTeamsByWinPercentage(teams), search), nil
}

// Detail returns one team's aggregate.
func (s *teamStatsService) Detail(ctx context.Context, name string) (*TeamDetailView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", backend.ErrInvalidArgument)
	}
	detail, err := s.api.TeamDetail(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("team %q: %w", name, err)
	}
	return &TeamDetailView{
		Detail:   detail,
		Toss:     TossDecisionBreakdown(detail.TossStats),
		WinClass: WinClass(detail.BasicStats.WinPercentage.Float()),
	}, nil
}
