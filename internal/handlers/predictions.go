package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
	"github.com/skyeanalytics/ipl-dashboard/internal/views"
)

// PredictForm serves the defaults of the prediction forms
func (h *Handler) PredictForm(r *http.Request) (interface{}, error) {
	return views.PredictPageData{
		DefaultSeason: h.defaultSeason,
		DefaultBudget: backend.DefaultFantasyBudget,
	}, nil
}

// MatchPrediction forecasts a fixture. The dashboard form sends ids as query
// parameters; the path form carries them as segments.
// @Summary Match prediction
// @Tags Predictions
// @Produce json
// @Param team1_id query int true "First team id"
// @Param team2_id query int true "Second team id"
// @Param venue_id query int true "Venue id"
// @Param season_year query int false "Season" default(2024)
// @Success 200 {object} views.MatchPredictionPageData
// @Failure 400 {object} map[string]string "Missing or identical teams"
// @Router /api/v1/predictions/match [get]
// @Router /api/v1/predictions/match/{team1}/{team2}/{venue} [get]
func (h *Handler) MatchPrediction(r *http.Request) (interface{}, error) {
	var params models.MatchPredictionParams
	var err error
	if params.SeasonYear, err = intQuery(r, "season_year", h.defaultSeason); err != nil {
		return nil, err
	}

	if pathParam(r, "team1") != "" {
		for key, dst := range map[string]*int{
			"team1": &params.Team1ID,
			"team2": &params.Team2ID,
			"venue": &params.VenueID,
		} {
			if *dst, err = strconv.Atoi(pathParam(r, key)); err != nil {
				return nil, badRequest("team and venue ids must be positive integers")
			}
		}
	} else {
		for key, dst := range map[string]*int{
			"team1_id": &params.Team1ID,
			"team2_id": &params.Team2ID,
			"venue_id": &params.VenueID,
		} {
			if *dst, err = intQuery(r, key, 0); err != nil {
				return nil, err
			}
		}
	}
	if err := h.validator.Struct(params); err != nil {
		return nil, badRequest("%s", describeValidation(err))
	}

	prediction, err := h.prediction.Match(r.Context(), params)
	if err != nil {
		return nil, err
	}
	return views.MatchPredictionPageData{Params: params, Prediction: prediction}, nil
}

// FantasyTeam builds a fantasy XI. The JSON API takes a POST body; the dashboard
// form submits the same fields as query parameters so the page can be retried.
// @Summary Fantasy team
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body models.FantasyRequest true "Fixture and budget"
// @Success 200 {object} views.FantasyPageData
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /api/v1/predictions/fantasy-team [post]
func (h *Handler) FantasyTeam(r *http.Request) (interface{}, error) {
	var req models.FantasyRequest
	if r.Method == http.MethodPost {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return nil, badRequest("body must be a JSON fantasy request")
		}
	} else {
		var err error
		if req, err = fantasyFromQuery(r); err != nil {
			return nil, err
		}
	}

	if req.Budget == 0 {
		req.Budget = backend.DefaultFantasyBudget
	}
	if err := h.validator.Struct(req); err != nil {
		return nil, badRequest("%s", describeValidation(err))
	}

	team, err := h.prediction.Fantasy(r.Context(), req)
	if err != nil {
		return nil, err
	}
	return views.FantasyPageData{Request: req, Team: team}, nil
}

func fantasyFromQuery(r *http.Request) (models.FantasyRequest, error) {
	var req models.FantasyRequest
	var err error
	if req.Team1ID, err = intQuery(r, "team1_id", 0); err != nil {
		return req, err
	}
	if req.Team2ID, err = intQuery(r, "team2_id", 0); err != nil {
		return req, err
	}
	if req.VenueID, err = intQuery(r, "venue_id", 0); err != nil {
		return req, err
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("budget")); raw != "" {
		if req.Budget, err = strconv.ParseFloat(raw, 64); err != nil {
			return req, badRequest("budget must be a number")
		}
	}
	return req, nil
}

// PlayerPrediction forecasts one player's output in a fixture
// @Summary Player prediction
// @Tags Predictions
// @Produce json
// @Param id path int true "Player id"
// @Param team1_id query int true "First team id"
// @Param team2_id query int true "Second team id"
// @Param venue_id query int true "Venue id"
// @Param player_team_id query int true "The player's team id"
// @Success 200 {object} views.PlayerPredictionPageData
// @Router /api/v1/predictions/player/{id} [get]
func (h *Handler) PlayerPrediction(r *http.Request) (interface{}, error) {
	id, err := strconv.Atoi(pathParam(r, "id"))
	if err != nil || id <= 0 {
		return nil, badRequest("player id must be a positive integer")
	}

	var params models.PlayerPredictionParams
	for key, dst := range map[string]*int{
		"team1_id":       &params.Team1ID,
		"team2_id":       &params.Team2ID,
		"venue_id":       &params.VenueID,
		"player_team_id": &params.PlayerTeamID,
	} {
		if *dst, err = intQuery(r, key, 0); err != nil {
			return nil, err
		}
	}
	if err := h.validator.Struct(params); err != nil {
		return nil, badRequest("%s", describeValidation(err))
	}

	prediction, err := h.prediction.Player(r.Context(), id, params)
	if err != nil {
		return nil, err
	}
	return views.PlayerPredictionPageData{PlayerID: id, Params: params, Prediction: prediction}, nil
}

// PlayerPredictionLookup redirects the player form to the canonical player URL.
func (h *Handler) PlayerPredictionLookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id, err := strconv.Atoi(strings.TrimSpace(q.Get("player_id")))
	if err != nil || id <= 0 {
		h.renderError(w, r, http.StatusBadRequest, "Player forecast", "predict", "Invalid request: player id must be a positive integer")
		return
	}
	q.Del("player_id")
	target := "/predict/player/" + strconv.Itoa(id)
	if encoded := q.Encode(); encoded != "" {
		target += "?" + encoded
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// PredictionHistory lists recent prediction lookups
// @Summary Prediction history
// @Tags Predictions
// @Produce json
// @Param limit query int false "Rows (1-100)" default(20)
// @Success 200 {object} views.HistoryPageData
// @Router /api/v1/predictions/history [get]
func (h *Handler) PredictionHistory(r *http.Request) (interface{}, error) {
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		return nil, err
	}
	records, err := h.prediction.History(r.Context(), limit)
	if err != nil {
		return nil, err
	}
	return views.HistoryPageData{Count: len(records), Records: records}, nil
}

// describeValidation turns validator errors into "field: rule" pairs.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+" failed "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}
