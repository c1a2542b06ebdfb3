package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
)

// MatchesSummary returns the all-time and per-season match summary
// @Summary Matches summary
// @Tags Matches
// @Produce json
// @Success 200 {object} models.MatchesSummary
// @Router /api/v1/matches [get]
func (h *Handler) MatchesSummary(r *http.Request) (interface{}, error) {
	return h.matches.Summary(r.Context())
}

// SeasonMatches returns one season's matches grouped by date
// @Summary Season matches
// @Tags Matches
// @Produce json
// @Param year path int true "Season year"
// @Param q query string false "Search teams, venue, city or player of the match"
// @Param team query string false "Exact team name"
// @Param decision query string false "Toss decision (bat or field)"
// @Success 200 {object} logic.SeasonView
// @Router /api/v1/matches/seasons/{year} [get]
func (h *Handler) SeasonMatches(r *http.Request) (interface{}, error) {
	year, err := strconv.Atoi(pathParam(r, "year"))
	if err != nil || year < 2008 || year > 2100 {
		return nil, badRequest("season must be a year from 2008")
	}

	q := r.URL.Query()
	decision := strings.ToLower(strings.TrimSpace(q.Get("decision")))
	if decision != "" && decision != "bat" && decision != "field" {
		return nil, badRequest("decision must be bat or field")
	}

	return h.matches.Season(r.Context(), year, logic.MatchFilter{
		Search:   q.Get("q"),
		Team:     q.Get("team"),
		Decision: decision,
	})
}
