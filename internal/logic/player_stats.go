package logic

import (
	"context"
	"fmt"
	"sort"

	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

type playerStatsService struct {
	api Backend
}

func NewPlayerStatsService(api Backend) PlayerStatsService {
	return &playerStatsService{api: api}
}

// All returns players matching search and role, heaviest run scorers first.
func (s *playerStatsService) All(ctx context.Context, search, role string) ([]models.Player, error) {
	players, err := s.api.Players(ctx)
	if err != nil {
		return nil, fmt.Errorf("players: %w", err)
	}
	filtered := FilterPlayers(players, search, role)
	out := make([]models.Player, len(filtered))
	copy(out, filtered)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RunsScored > out[j].RunsScored })
	return out, nil
}

func (s *playerStatsService) Top(ctx context.Context, category string, season, limit int) (*models.TopPlayersEnvelope, error) {
	top, err := s.api.TopPlayers(ctx, category, season, limit)
	if err != nil {
		return nil, fmt.Errorf("top players %q: %w", category, err)
	}
	return top, nil
}
