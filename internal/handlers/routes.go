package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skyeanalytics/ipl-dashboard/internal/views"
)

// RequestTimeout bounds every request, backend calls included.
const RequestTimeout = 30 * time.Second

// NewRouter mounts the dashboard pages, their /api/v1 JSON mirrors and the
// operational endpoints.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Dashboard pages
	r.Get("/", page(h, "Home", "home", h.Home, views.HomePage))
	r.Get("/teams", page(h, "Teams", "teams", h.TeamsOverview, views.TeamsPage))
	r.Get("/teams/{name}", page(h, "Team", "teams", h.TeamDetail, views.TeamPage))
	r.Get("/venues", page(h, "Venues", "venues", h.VenuesOverview, views.VenuesPage))
	r.Get("/venues/{name}", page(h, "Venue", "venues", h.VenueDetail, views.VenuePage))
	r.Get("/matches", page(h, "Matches", "matches", h.MatchesSummary, views.MatchesPage))
	r.Get("/matches/seasons/{year}", page(h, "Season", "matches", h.SeasonMatches, views.SeasonPage))
	r.Get("/toss", page(h, "Toss Analysis", "toss", h.TossAnalysis, views.TossPage))
	r.Get("/toss/trends", page(h, "Toss Trends", "toss", h.TossTrends, views.TossTrendsPage))
	r.Get("/head-to-head", page(h, "Head to Head", "head-to-head", h.HeadToHeadRecords, views.HeadToHeadPage))
	r.Get("/head-to-head/rivalries", page(h, "Rivalries", "head-to-head", h.Rivalries, views.RivalriesPage))
	r.Get("/head-to-head/{a}/{b}", page(h, "Head to Head", "head-to-head", h.HeadToHeadPair, views.HeadToHeadPairPage))
	r.Get("/players", page(h, "Players", "players", h.Players, views.PlayersPage))
	r.Get("/players/top/{category}", page(h, "Top Players", "players", h.TopPlayers, views.TopPlayersPage))
	r.Get("/predict", page(h, "Predictions", "predict", h.PredictForm, views.PredictPage))
	r.Get("/predict/match", page(h, "Match Prediction", "predict", h.MatchPrediction, views.MatchPredictionPage))
	r.Get("/predictions/match/{team1}/{team2}/{venue}", page(h, "Match Prediction", "predict", h.MatchPrediction, views.MatchPredictionPage))
	r.Get("/predictions/player/{id}", page(h, "Player Forecast", "predict", h.PlayerPrediction, views.PlayerPredictionPage))
	r.Get("/predict/fantasy", page(h, "Fantasy XI", "predict", h.FantasyTeam, views.FantasyPage))
	r.Get("/predict/player", h.PlayerPredictionLookup)
	r.Get("/predict/player/{id}", page(h, "Player Forecast", "predict", h.PlayerPrediction, views.PlayerPredictionPage))
	r.Get("/predict/history", page(h, "Prediction History", "predict", h.PredictionHistory, views.HistoryPage))

	// Charts
	r.Get("/charts/teams.svg", h.chart(h.TeamsChart))
	r.Get("/charts/venues.svg", h.chart(h.VenuesChart))
	r.Get("/charts/toss-trends.svg", h.chart(h.TossTrendsChart))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/home", h.api(h.Home))

		r.Get("/teams", h.api(h.TeamsOverview))
		r.Get("/teams/{name}", h.api(h.TeamDetail))

		r.Get("/venues", h.api(h.VenuesOverview))
		r.Get("/venues/{name}", h.api(h.VenueDetail))

		r.Get("/matches", h.api(h.MatchesSummary))
		r.Get("/matches/seasons/{year}", h.api(h.SeasonMatches))

		r.Get("/toss", h.api(h.TossAnalysis))
		r.Get("/toss/trends", h.api(h.TossTrends))

		r.Get("/head-to-head", h.api(h.HeadToHeadRecords))
		r.Get("/head-to-head/rivalries", h.api(h.Rivalries))
		r.Get("/head-to-head/{a}/{b}", h.api(h.HeadToHeadPair))

		r.Get("/players", h.api(h.Players))
		r.Get("/players/top/{category}", h.api(h.TopPlayers))

		r.Route("/predictions", func(r chi.Router) {
			r.Get("/match", h.api(h.MatchPrediction))
			r.Get("/match/{team1}/{team2}/{venue}", h.api(h.MatchPrediction))
			r.With(limitBody).Post("/fantasy-team", h.api(h.FantasyTeam))
			r.Get("/player/{id}", h.api(h.PlayerPrediction))
			r.Get("/history", h.api(h.PredictionHistory))
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.renderError(w, r, http.StatusNotFound, "Not found", "", "We couldn't find what you were looking for.")
	})

	return r
}
