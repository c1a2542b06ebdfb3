package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamUnmarshal_NativeTypes(t *testing.T) {
	input := `{"team_name":"Mumbai Indians","seasons_played":16,"matches_played":247,"matches_won":138,"win_percentage":55.87}`

	var team Team
	require.NoError(t, json.Unmarshal([]byte(input), &team))

	assert.Equal(t, "Mumbai Indians", team.TeamName)
	assert.Equal(t, 16, team.SeasonsPlayed.Int())
	assert.Equal(t, 247, team.MatchesPlayed.Int())
	assert.Equal(t, 138, team.MatchesWon.Int())
	assert.InDelta(t, 55.87, team.WinPercentage.Float(), 1e-9)
}

func TestTeamUnmarshal_StringEncodedNumerics(t *testing.T) {
	// NUMERIC aggregates may arrive quoted
	input := `{"team_name":"Chennai Super Kings","seasons_played":"14","matches_played":"225.0","matches_won":"131","win_percentage":"58.22"}`

	var team Team
	require.NoError(t, json.Unmarshal([]byte(input), &team))

	assert.Equal(t, 14, team.SeasonsPlayed.Int())
	assert.Equal(t, 225, team.MatchesPlayed.Int())
	assert.InDelta(t, 58.22, team.WinPercentage.Float(), 1e-9)
}

func TestFlexFloat_NullKeepsPointerNil(t *testing.T) {
	input := `{"total_matches":0,"chose_bat":null,"chose_bat_percentage":null,"toss_winner_win_percentage":"50.5"}`

	var overall TossOverall
	require.NoError(t, json.Unmarshal([]byte(input), &overall))

	assert.Nil(t, overall.ChoseBat)
	assert.Nil(t, overall.ChoseBatPercentage)
	require.NotNil(t, overall.TossWinnerWinPercentage)
	assert.InDelta(t, 50.5, overall.TossWinnerWinPercentage.Float(), 1e-9)
	assert.Nil(t, overall.ChoseFieldPercentage)
}

func TestFlexFloat_EmptyStringIsZero(t *testing.T) {
	var f FlexFloat
	require.NoError(t, json.Unmarshal([]byte(`""`), &f))
	assert.Equal(t, FlexFloat(0), f)
}

func TestFlexFloat_RejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"word", `"abc"`},
		{"object", `{"a":1}`},
		{"bool", `true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			assert.Error(t, json.Unmarshal([]byte(tt.input), &f))

			var i FlexInt
			assert.Error(t, json.Unmarshal([]byte(tt.input), &i))
		})
	}
}

func TestValidate_Envelopes(t *testing.T) {
	tests := []struct {
		name    string
		payload interface{}
		wantErr bool
	}{
		{
			name:    "teams present",
			payload: &TeamsEnvelope{Teams: []Team{{TeamName: "A", WinPercentage: 60}}},
		},
		{
			name:    "teams empty but present",
			payload: &TeamsEnvelope{Teams: []Team{}},
		},
		{
			name:    "teams missing",
			payload: &TeamsEnvelope{},
			wantErr: true,
		},
		{
			name:    "team without name",
			payload: &TeamsEnvelope{Teams: []Team{{WinPercentage: 60}}},
			wantErr: true,
		},
		{
			name:    "win percentage out of range",
			payload: &TeamsEnvelope{Teams: []Team{{TeamName: "A", WinPercentage: 160}}},
			wantErr: true,
		},
		{
			name:    "fantasy request same teams",
			payload: &FantasyRequest{Team1ID: 1, Team2ID: 1, VenueID: 3, Budget: 100},
			wantErr: true,
		},
		{
			name:    "fantasy request valid",
			payload: &FantasyRequest{Team1ID: 1, Team2ID: 2, VenueID: 3, Budget: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
