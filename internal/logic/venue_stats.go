package logic

import (
	"context"
	"fmt"
	"strings"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

// VenueDetailView is a venue aggregate with display-ready recent matches.
type VenueDetailView struct {
	Detail        *models.VenueDetail `json:"detail"`
	Season        int                 `json:"season,omitempty"`
	RecentMatches []MatchView         `json:"recent_matches"`
}

type venueStatsService struct {
	api Backend
}

func NewVenueStatsService(api Backend) VenueService {
	return &venueStatsService{api: api}
}

// Overview returns every venue sorted by matches hosted, filtered by name or city.
func (s *venueStatsService) Overview(ctx context.Context, search string) ([]models.Venue, error) {
	venues, err := s.api.Venues(ctx)
	if err != nil {
		return nil, fmt.Errorf("venues: %w", err)
	}
	return FilterVenues(SortVenuesByMatchesHosted(venues), search), nil
}

// Detail returns one venue's aggregate, for all seasons when season is 0.
func (s *venueStatsService) Detail(ctx context.Context, name string, season int) (*VenueDetailView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: venue name is required", backend.ErrInvalidArgument)
	}
	detail, err := s.api.VenueDetail(ctx, name, season)
	if err != nil {
		return nil, fmt.Errorf("venue %q: %w", name, err)
	}

	view := &VenueDetailView{Detail: detail, Season: season}
	view.RecentMatches = make([]MatchView, 0, len(detail.RecentMatches))
	for _, m := range detail.RecentMatches {
		view.RecentMatches = append(view.RecentMatches, MatchView{Match: m, MarginText: ParseMargin(m.Margin)})
	}
	return view, nil
}
