package logic

import (
	"context"
	"fmt"
	"sort"

	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

// SeasonView is one season's matches after filtering, grouped by day.
type SeasonView struct {
	Season    int                         `json:"season"`
	Total     int                         `json:"total_matches"`
	Shown     int                         `json:"shown_matches"`
	Filter    MatchFilter                 `json:"-"`
	Teams     []string                    `json:"teams"`
	Days      []MatchDay                  `json:"days"`
	TeamStats []models.SeasonTeamStanding `json:"team_stats,omitempty"`
}

type matchStatsService struct {
	api Backend
}

func NewMatchStatsService(api Backend) MatchService {
	return &matchStatsService{api: api}
}

func (s *matchStatsService) Summary(ctx context.Context) (*models.MatchesSummary, error) {
	summary, err := s.api.MatchesSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("matches summary: %w", err)
	}
	sort.SliceStable(summary.SeasonStats, func(i, j int) bool {
		return summary.SeasonStats[i].Season < summary.SeasonStats[j].Season
	})
	return summary, nil
}

// Season fetches a season, applies the filter and groups what is left by date.
// Teams lists every team of the unfiltered season for the filter dropdown.
func (s *matchStatsService) Season(ctx context.Context, year int, filter MatchFilter) (*SeasonView, error) {
	season, err := s.api.SeasonMatches(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("season %d: %w", year, err)
	}

	seen := map[string]bool{}
	var teams []string
	for _, m := range season.Matches {
		for _, t := range []string{m.Team1, m.Team2} {
			if t != "" && !seen[t] {
				seen[t] = true
				teams = append(teams, t)
			}
		}
	}
	sort.Strings(teams)

	filtered := FilterMatches(season.Matches, filter)
	return &SeasonView{
		Season:    year,
		Total:     len(season.Matches),
		Shown:     len(filtered),
		Filter:    filter,
		Teams:     teams,
		Days:      GroupMatchesByDate(filtered),
		TeamStats: season.TeamStats,
	}, nil
}
