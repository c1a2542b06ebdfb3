package logic

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

const homeTopN = 5

// HomeView is the landing page: leading teams, busiest venues and the toss picture.
type HomeView struct {
	TeamCount  int              `json:"team_count"`
	VenueCount int              `json:"venue_count"`
	TopTeams   []models.Team    `json:"top_teams"`
	TopVenues  []models.Venue   `json:"top_venues"`
	Toss       TossTrendSummary `json:"toss"`
}

type dashboardService struct {
	api Backend
}

func NewDashboardService(api Backend) DashboardService {
	return &dashboardService{api: api}
}

// Home fetches teams, venues and toss trends concurrently. The first failure
// cancels the others and is returned.
func (s *dashboardService) Home(ctx context.Context) (*HomeView, error) {
	var (
		teams  []models.Team
		venues []models.Venue
		trends []models.TossTrend
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if teams, err = s.api.Teams(ctx); err != nil {
			return fmt.Errorf("teams: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if venues, err = s.api.Venues(ctx); err != nil {
			return fmt.Errorf("venues: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if trends, err = s.api.TossTrends(ctx); err != nil {
			return fmt.Errorf("toss trends: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &HomeView{
		TeamCount:  len(teams),
		VenueCount: len(venues),
		TopTeams:   firstN(SortTeamsByWinPercentage(teams), homeTopN),
		TopVenues:  firstN(SortVenuesByMatchesHosted(venues), homeTopN),
		Toss:       SummarizeTossTrends(trends),
	}, nil
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
