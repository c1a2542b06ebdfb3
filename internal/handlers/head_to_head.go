package handlers

import (
	"net/http"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/views"
)

// HeadToHeadRecords returns every pairing
// @Summary Head-to-head records
// @Tags HeadToHead
// @Produce json
// @Success 200 {object} views.HeadToHeadPageData
// @Router /api/v1/head-to-head [get]
func (h *Handler) HeadToHeadRecords(r *http.Request) (interface{}, error) {
	records, err := h.headToHead.Records(r.Context())
	if err != nil {
		return nil, err
	}
	return views.HeadToHeadPageData{Records: records}, nil
}

// HeadToHeadPair returns the record between two teams
// @Summary Head-to-head pairing
// @Tags HeadToHead
// @Produce json
// @Param a path string true "First team"
// @Param b path string true "Second team"
// @Param season query int false "Season year"
// @Success 200 {object} logic.HeadToHeadView
// @Router /api/v1/head-to-head/{a}/{b} [get]
func (h *Handler) HeadToHeadPair(r *http.Request) (interface{}, error) {
	season, err := intQuery(r, "season", 0)
	if err != nil {
		return nil, err
	}
	return h.headToHead.Between(r.Context(), pathParam(r, "a"), pathParam(r, "b"), season)
}

// Rivalries returns the most closely contested pairings
// @Summary Strongest rivalries
// @Tags HeadToHead
// @Produce json
// @Param min_matches query int false "Minimum meetings" default(5)
// @Success 200 {object} views.RivalriesPageData
// @Router /api/v1/head-to-head/rivalries [get]
func (h *Handler) Rivalries(r *http.Request) (interface{}, error) {
	minMatches, err := intQuery(r, "min_matches", backend.DefaultRivalryMinMatches)
	if err != nil {
		return nil, err
	}
	if minMatches == 0 {
		minMatches = backend.DefaultRivalryMinMatches
	}
	rivalries, err := h.headToHead.Rivalries(r.Context(), minMatches)
	if err != nil {
		return nil, err
	}
	return views.RivalriesPageData{MinMatches: minMatches, Rivalries: rivalries}, nil
}
