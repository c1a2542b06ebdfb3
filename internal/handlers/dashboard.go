package handlers

import (
	"net/http"
)

// Home returns the landing page summary
// @Summary Dashboard home
// @Description Team and venue counts, the five leading teams and venues, and the toss picture
// @Tags Dashboard
// @Produce json
// @Success 200 {object} logic.HomeView
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /api/v1/home [get]
func (h *Handler) Home(r *http.Request) (interface{}, error) {
	return h.dashboard.Home(r.Context())
}
