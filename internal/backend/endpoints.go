package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

const (
	// DefaultSeasonYear is used by match predictions when no season is given.
	DefaultSeasonYear = 2024
	// DefaultFantasyBudget is the credit budget of a fantasy XI when none is given.
	DefaultFantasyBudget = 100.0
	// DefaultRivalryMinMatches is the minimum meetings for a pairing to count as a rivalry.
	DefaultRivalryMinMatches = 5
	// DefaultTopLimit and MaxTopLimit bound leaderboard sizes.
	DefaultTopLimit = 10
	MaxTopLimit     = 100
)

// TopCategories are the leaderboard categories the backend understands.
var TopCategories = []string{
	"runs", "fours", "sixes", "strike_rate", "average", "fifties", "hundreds",
	"wickets", "economy", "bowling_average", "bowling_strike_rate", "three_wickets", "five_wickets",
}

// IsTopCategory reports whether category is a known leaderboard category.
func IsTopCategory(category string) bool {
	category = strings.ToLower(category)
	for _, c := range TopCategories {
		if c == category {
			return true
		}
	}
	return false
}

// TossFilter narrows a toss analysis. Zero values are not sent.
type TossFilter struct {
	Season int
	Team   string
	Venue  string
}

func (f TossFilter) query() url.Values {
	q := url.Values{}
	if f.Season > 0 {
		q.Set("season", strconv.Itoa(f.Season))
	}
	if f.Team != "" {
		q.Set("team", f.Team)
	}
	if f.Venue != "" {
		q.Set("venue", f.Venue)
	}
	return q
}

func seasonQuery(season int) url.Values {
	if season <= 0 {
		return nil
	}
	return url.Values{"season": []string{strconv.Itoa(season)}}
}

// Teams returns the team overview in backend order.
func (c *Client) Teams(ctx context.Context) ([]models.Team, error) {
	var env models.TeamsEnvelope
	if err := c.getJSON(ctx, "teams", "/teams/", nil, &env); err != nil {
		return nil, err
	}
	return env.Teams, nil
}

// TeamDetail returns the aggregate for one team.
func (c *Client) TeamDetail(ctx context.Context, name string) (*models.TeamDetail, error) {
	var detail models.TeamDetail
	path := "/teams/" + url.PathEscape(name)
	if err := c.getJSON(ctx, "team_detail", path, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Venues returns the venue overview in backend order.
func (c *Client) Venues(ctx context.Context) ([]models.Venue, error) {
	var env models.VenuesEnvelope
	if err := c.getJSON(ctx, "venues", "/venues/", nil, &env); err != nil {
		return nil, err
	}
	return env.Venues, nil
}

// VenueDetail returns the aggregate for one venue, optionally for a single season.
func (c *Client) VenueDetail(ctx context.Context, name string, season int) (*models.VenueDetail, error) {
	var detail models.VenueDetail
	path := "/venues/" + url.PathEscape(name)
	if err := c.getJSON(ctx, "venue_detail", path, seasonQuery(season), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// MatchesSummary returns the all-time and per-season match summary.
func (c *Client) MatchesSummary(ctx context.Context) (*models.MatchesSummary, error) {
	var summary models.MatchesSummary
	if err := c.getJSON(ctx, "matches_summary", "/matches/", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// SeasonMatches returns every match of one season.
func (c *Client) SeasonMatches(ctx context.Context, year int) (*models.SeasonMatches, error) {
	if year <= 0 {
		return nil, fmt.Errorf("%w: season %d", ErrInvalidArgument, year)
	}
	var season models.SeasonMatches
	path := "/matches/seasons/" + strconv.Itoa(year)
	if err := c.getJSON(ctx, "season_matches", path, nil, &season); err != nil {
		return nil, err
	}
	return &season, nil
}

// TossAnalysis returns toss statistics for the given filter.
func (c *Client) TossAnalysis(ctx context.Context, filter TossFilter) (*models.TossAnalysis, error) {
	var analysis models.TossAnalysis
	if err := c.getJSON(ctx, "toss_analysis", "/toss/analysis", filter.query(), &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// TossTrends returns per-season toss decisions.
func (c *Client) TossTrends(ctx context.Context) ([]models.TossTrend, error) {
	var env models.TossTrendsEnvelope
	if err := c.getJSON(ctx, "toss_trends", "/toss/trends", nil, &env); err != nil {
		return nil, err
	}
	return env.DecisionTrends, nil
}

// HeadToHeadRecords returns the record of every pairing.
func (c *Client) HeadToHeadRecords(ctx context.Context) ([]models.HeadToHeadRecord, error) {
	var env models.HeadToHeadEnvelope
	if err := c.getJSON(ctx, "head_to_head", "/head-to-head/", nil, &env); err != nil {
		return nil, err
	}
	return env.Records, nil
}

// HeadToHead returns the record between two teams, optionally for one season.
func (c *Client) HeadToHead(ctx context.Context, teamA, teamB string, season int) (*models.HeadToHeadDetail, error) {
	var detail models.HeadToHeadDetail
	path := "/head-to-head/" + url.PathEscape(teamA) + "/" + url.PathEscape(teamB)
	if err := c.getJSON(ctx, "head_to_head_pair", path, seasonQuery(season), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// StrongestRivalries returns the most closely contested pairings with at least
// minMatches meetings. A non-positive minMatches uses DefaultRivalryMinMatches.
func (c *Client) StrongestRivalries(ctx context.Context, minMatches int) ([]models.Rivalry, error) {
	if minMatches <= 0 {
		minMatches = DefaultRivalryMinMatches
	}
	q := url.Values{"min_matches": []string{strconv.Itoa(minMatches)}}
	var env models.RivalriesEnvelope
	if err := c.getJSON(ctx, "rivalries", "/head-to-head/strongest-rivalries", q, &env); err != nil {
		return nil, err
	}
	return env.Rivalries, nil
}

// Players returns every player with career totals.
func (c *Client) Players(ctx context.Context) ([]models.Player, error) {
	var env models.PlayersEnvelope
	if err := c.getJSON(ctx, "players", "/players/all", nil, &env); err != nil {
		return nil, err
	}
	return env.Players, nil
}

// TopPlayers returns a leaderboard. limit is clamped to [1, MaxTopLimit] with
// DefaultTopLimit for zero; season 0 means all seasons.
func (c *Client) TopPlayers(ctx context.Context, category string, season, limit int) (*models.TopPlayersEnvelope, error) {
	category = strings.ToLower(category)
	if !IsTopCategory(category) {
		return nil, fmt.Errorf("%w: unknown leaderboard category %q", ErrInvalidArgument, category)
	}
	limit = ClampLimit(limit)

	q := url.Values{"limit": []string{strconv.Itoa(limit)}}
	if season > 0 {
		q.Set("season", strconv.Itoa(season))
	}
	var env models.TopPlayersEnvelope
	if err := c.getJSON(ctx, "top_players", "/players/top/"+url.PathEscape(category), q, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// ClampLimit applies the leaderboard default and bounds.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultTopLimit
	case limit > MaxTopLimit:
		return MaxTopLimit
	default:
		return limit
	}
}

// PredictMatch asks the backend for a match forecast. Season 0 uses DefaultSeasonYear.
func (c *Client) PredictMatch(ctx context.Context, params models.MatchPredictionParams) (*models.MatchPrediction, error) {
	if params.SeasonYear <= 0 {
		params.SeasonYear = DefaultSeasonYear
	}
	if err := models.Validate(&params); err != nil {
		return nil, fmt.Errorf("%w: match prediction params: %v", ErrInvalidArgument, err)
	}
	path := "/predictions/match/" + strconv.Itoa(params.Team1ID) + "/" + strconv.Itoa(params.Team2ID) + "/" + strconv.Itoa(params.VenueID)
	q := url.Values{"season_year": []string{strconv.Itoa(params.SeasonYear)}}

	var prediction models.MatchPrediction
	if err := c.getJSON(ctx, "predict_match", path, q, &prediction); err != nil {
		return nil, err
	}
	return &prediction, nil
}

// FantasyTeam requests an optimised fantasy XI. A zero budget uses DefaultFantasyBudget.
func (c *Client) FantasyTeam(ctx context.Context, req models.FantasyRequest) (*models.FantasyTeam, error) {
	if req.Budget == 0 {
		req.Budget = DefaultFantasyBudget
	}
	if err := models.Validate(&req); err != nil {
		return nil, fmt.Errorf("%w: fantasy request: %v", ErrInvalidArgument, err)
	}

	var team models.FantasyTeam
	if err := c.postJSON(ctx, "predict_fantasy", "/predictions/fantasy-team", req, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// PlayerPrediction asks the backend for one player's forecast in a fixture.
func (c *Client) PlayerPrediction(ctx context.Context, playerID int, params models.PlayerPredictionParams) (*models.PlayerPrediction, error) {
	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id %d", ErrInvalidArgument, playerID)
	}
	if err := models.Validate(&params); err != nil {
		return nil, fmt.Errorf("%w: player prediction params: %v", ErrInvalidArgument, err)
	}

	q := url.Values{}
	q.Set("team1_id", strconv.Itoa(params.Team1ID))
	q.Set("team2_id", strconv.Itoa(params.Team2ID))
	q.Set("venue_id", strconv.Itoa(params.VenueID))
	q.Set("player_team_id", strconv.Itoa(params.PlayerTeamID))

	var prediction models.PlayerPrediction
	path := "/predictions/player/" + strconv.Itoa(playerID)
	if err := c.getJSON(ctx, "predict_player", path, q, &prediction); err != nil {
		return nil, err
	}
	return &prediction, nil
}
