package handlers

import (
	"net/http"
	"strings"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
	"github.com/skyeanalytics/ipl-dashboard/internal/views"
)

var playerRoles = []string{models.RoleBatsman, models.RoleBowler, models.RoleAllRounder, models.RoleUnknown}

// Players returns every player, optionally filtered by name and role
// @Summary Players
// @Tags Players
// @Produce json
// @Param q query string false "Name filter"
// @Param role query string false "Batsman, Bowler, All-Rounder or Unknown"
// @Success 200 {object} views.PlayersPageData
// @Router /api/v1/players [get]
func (h *Handler) Players(r *http.Request) (interface{}, error) {
	q := r.URL.Query()
	search, role := strings.TrimSpace(q.Get("q")), strings.TrimSpace(q.Get("role"))
	players, err := h.players.All(r.Context(), search, role)
	if err != nil {
		return nil, err
	}
	return views.PlayersPageData{Search: search, Role: role, Roles: playerRoles, Count: len(players), Players: players}, nil
}

// TopPlayers returns a leaderboard for one category
// @Summary Top players
// @Tags Players
// @Produce json
// @Param category path string true "runs, wickets, sixes, strike_rate, economy, ..."
// @Param season query int false "Season year"
// @Param limit query int false "Rows (1-100)" default(10)
// @Success 200 {object} views.TopPlayersPageData
// @Failure 400 {object} map[string]string "Unknown category"
// @Router /api/v1/players/top/{category} [get]
func (h *Handler) TopPlayers(r *http.Request) (interface{}, error) {
	category := strings.ToLower(pathParam(r, "category"))
	if !backend.IsTopCategory(category) {
		return nil, badRequest("unknown category %q", category)
	}
	season, err := intQuery(r, "season", 0)
	if err != nil {
		return nil, err
	}
	limit, err := intQuery(r, "limit", backend.DefaultTopLimit)
	if err != nil {
		return nil, err
	}
	limit = backend.ClampLimit(limit)

	top, err := h.players.Top(r.Context(), category, season, limit)
	if err != nil {
		return nil, err
	}
	return views.TopPlayersPageData{TopPlayersEnvelope: top, Categories: backend.TopCategories, Limit: limit}, nil
}
