package handlers

import (
	"net/http"
	"strings"

	"github.com/skyeanalytics/ipl-dashboard/internal/views"
)

// VenuesOverview returns all venues, busiest first
// @Summary Venues overview
// @Tags Venues
// @Produce json
// @Param q query string false "Filter on venue name or city"
// @Success 200 {object} views.VenuesPageData
// @Router /api/v1/venues [get]
func (h *Handler) VenuesOverview(r *http.Request) (interface{}, error) {
	search := strings.TrimSpace(r.URL.Query().Get("q"))
	venues, err := h.venues.Overview(r.Context(), search)
	if err != nil {
		return nil, err
	}
	return views.VenuesPageData{Search: search, Count: len(venues), Venues: venues}, nil
}

// VenueDetail returns one venue's aggregate, optionally for a single season
// @Summary Venue detail
// @Tags Venues
// @Produce json
// @Param name path string true "Venue name"
// @Param season query int false "Season year"
// @Success 200 {object} logic.VenueDetailView
// @Router /api/v1/venues/{name} [get]
func (h *Handler) VenueDetail(r *http.Request) (interface{}, error) {
	season, err := intQuery(r, "season", 0)
	if err != nil {
		return nil, err
	}
	view, err := h.venues.Detail(r.Context(), pathParam(r, "name"), season)
	if err != nil {
		return nil, err
	}

	// seasons the venue was used in, for the season picker
	seasons := make([]int, 0)
	if b := view.Detail.BasicStats; b != nil && b.FirstSeason > 0 && b.LastSeason >= b.FirstSeason {
		for y := b.LastSeason.Int(); y >= b.FirstSeason.Int(); y-- {
			seasons = append(seasons, y)
		}
	}
	return views.VenuePageData{VenueDetailView: view, Seasons: seasons}, nil
}
