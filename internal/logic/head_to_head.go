package logic

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

// HeadToHeadView is one pairing with its matches, newest first.
type HeadToHeadView struct {
	Share   HeadToHeadShare `json:"share"`
	Season  int             `json:"season,omitempty"`
	Matches []MatchView     `json:"matches"`
}

type headToHeadService struct {
	api Backend
}

func NewHeadToHeadService(api Backend) HeadToHeadService {
	return &headToHeadService{api: api}
}

// Records returns every pairing, most played first.
func (s *headToHeadService) Records(ctx context.Context) ([]HeadToHeadShare, error) {
	records, err := s.api.HeadToHeadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("head-to-head records: %w", err)
	}
	shares := make([]HeadToHeadShare, 0, len(records))
	for _, r := range records {
		shares = append(shares, HeadToHeadShares(r))
	}
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].Matches > shares[j].Matches })
	return shares, nil
}

func (s *headToHeadService) Between(ctx context.Context, teamA, teamB string, season int) (*HeadToHeadView, error) {
	teamA, teamB = strings.TrimSpace(teamA), strings.TrimSpace(teamB)
	if teamA == "" || teamB == "" {
		return nil, fmt.Errorf("%w: two teams are required", backend.ErrInvalidArgument)
	}
	if strings.EqualFold(teamA, teamB) {
		return nil, fmt.Errorf("%w: a team cannot face itself", backend.ErrInvalidArgument)
	}

	detail, err := s.api.HeadToHead(ctx, teamA, teamB, season)
	if err != nil {
		return nil, fmt.Errorf("head-to-head %s v %s: %w", teamA, teamB, err)
	}

	view := &HeadToHeadView{
		Share:   HeadToHeadShares(detail.HeadToHeadRecord),
		Season:  season,
		Matches: make([]MatchView, 0, len(detail.Matches)),
	}
	for _, m := range detail.Matches {
		view.Matches = append(view.Matches, MatchView{Match: m, MarginText: ParseMargin(m.Margin)})
	}
	sort.SliceStable(view.Matches, func(i, j int) bool { return view.Matches[i].MatchDate > view.Matches[j].MatchDate })
	return view, nil
}

func (s *headToHeadService) Rivalries(ctx context.Context, minMatches int) ([]models.Rivalry, error) {
	rivalries, err := s.api.StrongestRivalries(ctx, minMatches)
	if err != nil {
		return nil, fmt.Errorf("rivalries: %w", err)
	}
	return rivalries, nil
}
