package handlers

import (
	"net/http"

	"github.com/skyeanalytics/ipl-dashboard/internal/charts"
)

const venueChartLimit = 15

// chart serves an SVG built from a view. Failures return a small SVG so the
// surrounding page keeps its layout.
func (h *Handler) chart(build func(r *http.Request) (string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svg, err := build(r)
		status := http.StatusOK
		if err != nil {
			var message string
			status, message = h.classify(r, err)
			svg = charts.BarChart(message, nil, charts.ColorNegative)
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		if _, err := w.Write([]byte(svg)); err != nil {
			h.logger.Warnw("Failed to write chart", "path", r.URL.Path, "error", err)
		}
	}
}

// TeamsChart renders win percentage per team
func (h *Handler) TeamsChart(r *http.Request) (string, error) {
	teams, err := h.teams.Overview(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		return "", err
	}
	return charts.TeamWinChart(teams), nil
}

// VenuesChart renders matches hosted by the busiest venues
func (h *Handler) VenuesChart(r *http.Request) (string, error) {
	venues, err := h.venues.Overview(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		return "", err
	}
	return charts.VenueChart(venues, venueChartLimit), nil
}

// TossTrendsChart renders the per-season bat/field split
func (h *Handler) TossTrendsChart(r *http.Request) (string, error) {
	summary, err := h.toss.Trends(r.Context())
	if err != nil {
		return "", err
	}
	return charts.TossTrendChart(*summary), nil
}
