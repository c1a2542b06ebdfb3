package logic

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

func TestTeamOverview_SortsThenFilters(t *testing.T) {
	api := &MockBackend{
		TeamsFunc: func(ctx context.Context) ([]models.Team, error) {
			return []models.Team{
				{TeamName: "A", WinPercentage: 60},
				{TeamName: "B", WinPercentage: 80},
				{TeamName: "Another A", WinPercentage: 70},
			}, nil
		},
	}
	svc := NewTeamStatsService(api)

	all, err := svc.Overview(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "B", all[0].TeamName)
	assert.Equal(t, "Another A", all[1].TeamName)
	assert.Equal(t, "A", all[2].TeamName)

	filtered, err := svc.Overview(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "Another A", filtered[0].TeamName)
}

func TestTeamOverview_PropagatesError(t *testing.T) {
	upstream := &backend.StatusError{Status: 500, Path: "/teams/"}
	api := &MockBackend{
		TeamsFunc: func(ctx context.Context) ([]models.Team, error) { return nil, upstream },
	}

	_, err := NewTeamStatsService(api).Overview(context.Background(), "")
	require.Error(t, err)
	var se *backend.StatusError
	assert.True(t, errors.As(err, &se))
}

func TestTeamDetail(t *testing.T) {
	winRate := models.FlexFloat(61)
	api := &MockBackend{
		TeamDetailFunc: func(ctx context.Context, name string) (*models.TeamDetail, error) {
			assert.Equal(t, "Mumbai Indians", name)
			return &models.TeamDetail{
				TeamName:   name,
				BasicStats: &models.TeamBasicStats{TeamName: name, WinPercentage: 55.9},
				TossStats:  &models.TeamTossStats{TossWins: 10, ChoseBat: 3, ChoseField: 7, WinRateAfterWinningToss: &winRate},
			}, nil
		},
	}
	svc := NewTeamStatsService(api)

	view, err := svc.Detail(context.Background(), "  Mumbai Indians ")
	require.NoError(t, err)
	assert.Equal(t, "positive", view.WinClass)
	assert.Equal(t, "field", view.Toss.Preferred)
	assert.InDelta(t, 70.0, view.Toss.FieldShare, 1e-9)

	_, err = svc.Detail(context.Background(), " ")
	assert.ErrorIs(t, err, backend.ErrInvalidArgument)
}

func TestVenueOverviewAndDetail(t *testing.T) {
	api := &MockBackend{
		VenuesFunc: func(ctx context.Context) ([]models.Venue, error) {
			return []models.Venue{
				{Venue: "Eden Gardens", City: "Kolkata", MatchesHosted: 77},
				{Venue: "Wankhede Stadium", City: "Mumbai", MatchesHosted: 82},
			}, nil
		},
		VenueDetailFunc: func(ctx context.Context, name string, season int) (*models.VenueDetail, error) {
			assert.Equal(t, 2019, season)
			return &models.VenueDetail{
				VenueName:     name,
				BasicStats:    &models.VenueBasicStats{Venue: name},
				RecentMatches: []models.Match{{Team1: "KKR", Team2: "MI", Margin: "{'runs': 34}"}},
			}, nil
		},
	}
	svc := NewVenueStatsService(api)

	venues, err := svc.Overview(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Wankhede Stadium", venues[0].Venue)

	kolkata, err := svc.Overview(context.Background(), "kolkata")
	require.NoError(t, err)
	require.Len(t, kolkata, 1)

	view, err := svc.Detail(context.Background(), "Eden Gardens", 2019)
	require.NoError(t, err)
	require.Len(t, view.RecentMatches, 1)
	assert.Equal(t, "34 runs", view.RecentMatches[0].MarginText)
}

func TestMatchSeason(t *testing.T) {
	api := &MockBackend{
		SeasonMatchesFunc: func(ctx context.Context, year int) (*models.SeasonMatches, error) {
			return &models.SeasonMatches{
				Season: models.FlexInt(year),
				Matches: []models.Match{
					{MatchDate: "2019-03-24", Team1: "MI", Team2: "DC", TossDecision: "field", Margin: "{'runs': 37}"},
					{MatchDate: "2019-03-23", Team1: "CSK", Team2: "RCB", TossDecision: "field", Margin: "{'wickets': 7}"},
					{MatchDate: "2019-03-24", Team1: "KKR", Team2: "SRH", TossDecision: "bat"},
				},
			}, nil
		},
	}
	svc := NewMatchStatsService(api)

	view, err := svc.Season(context.Background(), 2019, MatchFilter{Decision: "field"})
	require.NoError(t, err)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, 2, view.Shown)
	assert.Equal(t, []string{"CSK", "DC", "KKR", "MI", "RCB", "SRH"}, view.Teams)
	require.Len(t, view.Days, 2)
	assert.Equal(t, "2019-03-23", view.Days[0].Date)
	assert.Equal(t, "7 wickets", view.Days[0].Matches[0].MarginText)
}

func TestMatchSummary_SeasonsAscending(t *testing.T) {
	api := &MockBackend{
		MatchesSummaryFunc: func(ctx context.Context) (*models.MatchesSummary, error) {
			return &models.MatchesSummary{
				OverallStats: &models.MatchOverall{TotalMatches: 3},
				SeasonStats:  []models.MatchSeasonSummary{{Season: 2010}, {Season: 2008}, {Season: 2009}},
			}, nil
		},
	}
	summary, err := NewMatchStatsService(api).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2008, summary.SeasonStats[0].Season.Int())
	assert.Equal(t, 2010, summary.SeasonStats[2].Season.Int())
}

func TestTossService(t *testing.T) {
	var gotFilter backend.TossFilter
	api := &MockBackend{
		TossAnalysisFunc: func(ctx context.Context, f backend.TossFilter) (*models.TossAnalysis, error) {
			gotFilter = f
			return &models.TossAnalysis{OverallStats: &models.TossOverall{}}, nil
		},
		TossTrendsFunc: func(ctx context.Context) ([]models.TossTrend, error) {
			return []models.TossTrend{{Season: 2020, ChoseBatPercentage: 30, ChoseFieldPercentage: 70}}, nil
		},
	}
	svc := NewTossStatsService(api)

	_, err := svc.Analysis(context.Background(), backend.TossFilter{Season: 2020, Team: "MI"})
	require.NoError(t, err)
	assert.Equal(t, backend.TossFilter{Season: 2020, Team: "MI"}, gotFilter)

	summary, err := svc.Trends(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Prefer Fielding", summary.Preference)
}

func TestHeadToHeadService(t *testing.T) {
	api := &MockBackend{
		HeadToHeadRecordsFunc: func(ctx context.Context) ([]models.HeadToHeadRecord, error) {
			return []models.HeadToHeadRecord{
				{TeamA: "GT", TeamB: "LSG", MatchesPlayed: 4, TeamAWins: 3, TeamBWins: 1},
				{TeamA: "CSK", TeamB: "MI", MatchesPlayed: 36, TeamAWins: 16, TeamBWins: 20},
			}, nil
		},
		HeadToHeadFunc: func(ctx context.Context, a, b string, season int) (*models.HeadToHeadDetail, error) {
			return &models.HeadToHeadDetail{
				HeadToHeadRecord: models.HeadToHeadRecord{TeamA: a, TeamB: b, MatchesPlayed: 2, TeamAWins: 1, TeamBWins: 1},
				Matches: []models.Match{
					{MatchDate: "2018-04-07", Team1: a, Team2: b},
					{MatchDate: "2019-05-12", Team1: b, Team2: a, Margin: "{'runs': 1}"},
				},
			}, nil
		},
	}
	svc := NewHeadToHeadService(api)

	records, err := svc.Records(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "CSK", records[0].TeamA)
	assert.Equal(t, "GT", records[1].Leader)

	view, err := svc.Between(context.Background(), "CSK", "MI", 0)
	require.NoError(t, err)
	assert.Equal(t, "Level", view.Share.Leader)
	assert.Equal(t, "2019-05-12", view.Matches[0].MatchDate)
	assert.Equal(t, "1 runs", view.Matches[0].MarginText)

	_, err = svc.Between(context.Background(), "CSK", "csk", 0)
	assert.ErrorIs(t, err, backend.ErrInvalidArgument)
}

func TestPlayerService_All(t *testing.T) {
	api := &MockBackend{
		PlayersFunc: func(ctx context.Context) ([]models.Player, error) {
			return []models.Player{
				{PlayerName: "RG Sharma", Role: models.RoleBatsman, RunsScored: 6211},
				{PlayerName: "V Kohli", Role: models.RoleBatsman, RunsScored: 7263},
				{PlayerName: "YS Chahal", Role: models.RoleBowler, RunsScored: 37},
			}, nil
		},
	}

	players, err := NewPlayerStatsService(api).All(context.Background(), "", models.RoleBatsman)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "V Kohli", players[0].PlayerName)
}

func TestPredictionService_RecordsHistory(t *testing.T) {
	api := &MockBackend{
		PredictMatchFunc: func(ctx context.Context, params models.MatchPredictionParams) (*models.MatchPrediction, error) {
			assert.Equal(t, backend.DefaultSeasonYear, params.SeasonYear)
			assert.Equal(t, 1, params.Team1ID)
			return &models.MatchPrediction{Team1: "CSK", Team2: "MI", Team1WinProbability: 58, Team2WinProbability: 42, PredictedWinner: "CSK"}, nil
		},
		FantasyTeamFunc: func(ctx context.Context, req models.FantasyRequest) (*models.FantasyTeam, error) {
			assert.Equal(t, backend.DefaultFantasyBudget, req.Budget)
			return &models.FantasyTeam{Captain: "MS Dhoni"}, nil
		},
	}
	history := &MockHistory{}
	svc := NewPredictionService(api, history, nil)

	pred, err := svc.Match(context.Background(), models.MatchPredictionParams{Team1ID: 1, Team2ID: 2, VenueID: 7})
	require.NoError(t, err)
	assert.Equal(t, "CSK", pred.PredictedWinner)

	_, err = svc.Fantasy(context.Background(), models.FantasyRequest{Team1ID: 1, Team2ID: 2, VenueID: 3})
	require.NoError(t, err)

	require.Len(t, history.Records, 2)
	assert.Equal(t, models.PredictionKindMatch, history.Records[0].Kind)
	var req models.MatchPredictionParams
	require.NoError(t, json.Unmarshal(history.Records[0].Request, &req))
	assert.Equal(t, 2024, req.SeasonYear)
	assert.Equal(t, 7, req.VenueID)
	assert.Equal(t, models.PredictionKindFantasy, history.Records[1].Kind)

	recent, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestPredictionService_HistoryFailureDoesNotFailRequest(t *testing.T) {
	api := &MockBackend{
		PlayerPredictionFunc: func(ctx context.Context, id int, p models.PlayerPredictionParams) (*models.PlayerPrediction, error) {
			return &models.PlayerPrediction{PlayerName: "JJ Bumrah", PredictedWickets: 2}, nil
		},
	}
	svc := NewPredictionService(api, &MockHistory{RecordErr: errors.New("db down")}, nil)

	pred, err := svc.Player(context.Background(), 9, models.PlayerPredictionParams{Team1ID: 1, Team2ID: 2, VenueID: 3, PlayerTeamID: 1})
	require.NoError(t, err)
	assert.Equal(t, "JJ Bumrah", pred.PlayerName)
}

func TestPredictionService_ValidatesMatchQuery(t *testing.T) {
	svc := NewPredictionService(&MockBackend{}, nil, nil)

	_, err := svc.Match(context.Background(), models.MatchPredictionParams{Team1ID: 4, Team2ID: 4, VenueID: 1})
	assert.ErrorIs(t, err, backend.ErrInvalidArgument)

	_, err = svc.Match(context.Background(), models.MatchPredictionParams{Team1ID: 4})
	assert.ErrorIs(t, err, backend.ErrInvalidArgument)

	_, err = svc.Match(context.Background(), models.MatchPredictionParams{Team1ID: 4, Team2ID: 5, VenueID: 1, SeasonYear: 1999})
	assert.ErrorIs(t, err, backend.ErrInvalidArgument)

	records, err := svc.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDashboardHome(t *testing.T) {
	api := &MockBackend{
		TeamsFunc: func(ctx context.Context) ([]models.Team, error) {
			teams := make([]models.Team, 0, 10)
			for i := 0; i < 10; i++ {
				teams = append(teams, models.Team{TeamName: string(rune('A' + i)), WinPercentage: models.FlexFloat(40 + i)})
			}
			return teams, nil
		},
		VenuesFunc: func(ctx context.Context) ([]models.Venue, error) {
			return []models.Venue{{Venue: "Eden Gardens", MatchesHosted: 77}, {Venue: "Wankhede Stadium", MatchesHosted: 82}}, nil
		},
		TossTrendsFunc: func(ctx context.Context) ([]models.TossTrend, error) {
			return []models.TossTrend{{Season: 2023, ChoseBatPercentage: 45, ChoseFieldPercentage: 55}}, nil
		},
	}

	home, err := NewDashboardService(api).Home(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, home.TeamCount)
	require.Len(t, home.TopTeams, 5)
	assert.Equal(t, "J", home.TopTeams[0].TeamName)
	assert.Equal(t, "Wankhede Stadium", home.TopVenues[0].Venue)
	assert.Equal(t, "Prefer Fielding", home.Toss.Preference)
}

func TestDashboardHome_FirstFailureWins(t *testing.T) {
	var venuesCancelled atomic.Bool
	api := &MockBackend{
		TeamsFunc: func(ctx context.Context) ([]models.Team, error) {
			return nil, &backend.StatusError{Status: 500, Path: "/teams/"}
		},
		VenuesFunc: func(ctx context.Context) ([]models.Venue, error) {
			select {
			case <-ctx.Done():
				venuesCancelled.Store(true)
				return nil, ctx.Err()
			case <-time.After(2 * time.Second):
				return []models.Venue{}, nil
			}
		},
		TossTrendsFunc: func(ctx context.Context) ([]models.TossTrend, error) {
			return []models.TossTrend{}, nil
		},
	}

	_, err := NewDashboardService(api).Home(context.Background())
	require.Error(t, err)
	var se *backend.StatusError
	assert.True(t, errors.As(err, &se), "the teams failure is reported, not the cancellation")
	assert.True(t, venuesCancelled.Load())
}
