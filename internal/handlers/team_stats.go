package handlers

import (
	"net/http"
	"strings"

	"github.com/skyeanalytics/ipl-dashboard/internal/views"
)

// TeamsOverview returns all teams sorted by win percentage
// @Summary Teams overview
// @Description Every team, highest win percentage first, optionally filtered by name
// @Tags Teams
// @Produce json
// @Param q query string false "Case-insensitive name filter"
// @Success 200 {object} views.TeamsPageData
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /api/v1/teams [get]
func (h *Handler) TeamsOverview(r *http.Request) (interface{}, error) {
	search := strings.TrimSpace(r.URL.Query().Get("q"))
	teams, err := h.teams.Overview(r.Context(), search)
	if err != nil {
		return nil, err
	}
	return views.TeamsPageData{Search: search, Count: len(teams), Teams: teams}, nil
}

// TeamDetail returns one team's aggregate
// @Summary Team detail
// @Tags Teams
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} logic.TeamDetailView
// @Failure 404 {object} map[string]string "Unknown team"
// @Router /api/v1/teams/{name} [get]
func (h *Handler) TeamDetail(r *http.Request) (interface{}, error) {
	return h.teams.Detail(r.Context(), pathParam(r, "name"))
}
