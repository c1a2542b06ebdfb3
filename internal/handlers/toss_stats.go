package handlers

import (
	"net/http"
	"strings"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/views"
)

// TossAnalysis returns toss statistics, optionally filtered
// @Summary Toss analysis
// @Tags Toss
// @Produce json
// @Param season query int false "Season year"
// @Param team query string false "Team name"
// @Param venue query string false "Venue name"
// @Success 200 {object} views.TossPageData
// @Router /api/v1/toss [get]
func (h *Handler) TossAnalysis(r *http.Request) (interface{}, error) {
	season, err := intQuery(r, "season", 0)
	if err != nil {
		return nil, err
	}
	q := r.URL.Query()
	filter := backend.TossFilter{
		Season: season,
		Team:   strings.TrimSpace(q.Get("team")),
		Venue:  strings.TrimSpace(q.Get("venue")),
	}
	analysis, err := h.toss.Analysis(r.Context(), filter)
	if err != nil {
		return nil, err
	}
	return views.TossPageData{Filter: filter, Analysis: analysis}, nil
}

// TossTrends returns per-season toss decisions with their averages
// @Summary Toss trends
// @Tags Toss
// @Produce json
// @Success 200 {object} logic.TossTrendSummary
// @Router /api/v1/toss/trends [get]
func (h *Handler) TossTrends(r *http.Request) (interface{}, error) {
	return h.toss.Trends(r.Context())
}
