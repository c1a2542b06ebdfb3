package models

// HeadToHeadRecord is the all-time record between two teams.
type HeadToHeadRecord struct {
	TeamA              string    `json:"team_a" validate:"required"`
	TeamB              string    `json:"team_b" validate:"required"`
	MatchesPlayed      FlexInt   `json:"matches_played" validate:"gte=0"`
	TeamAWins          FlexInt   `json:"team_a_wins" validate:"gte=0"`
	TeamBWins          FlexInt   `json:"team_b_wins" validate:"gte=0"`
	NoResults          FlexInt   `json:"no_results" validate:"gte=0"`
	TeamAWinPercentage FlexFloat `json:"team_a_win_percentage"`
	TeamBWinPercentage FlexFloat `json:"team_b_win_percentage"`
}

// HeadToHeadEnvelope is the GET /head-to-head/ response body.
type HeadToHeadEnvelope struct {
	Records []HeadToHeadRecord `json:"head_to_head_records" validate:"required,dive"`
}

// HeadToHeadDetail is GET /head-to-head/{a}/{b}: the flat record plus the matches behind it.
type HeadToHeadDetail struct {
	HeadToHeadRecord
	Season  *FlexInt `json:"season,omitempty"`
	Matches []Match  `json:"matches" validate:"dive"`
}

// Rivalry is a head-to-head pairing ranked by how closely contested it is.
type Rivalry struct {
	HeadToHeadRecord
	WinDifference FlexInt `json:"win_difference"`
}

// RivalriesEnvelope is the GET /head-to-head/strongest-rivalries response body.
type RivalriesEnvelope struct {
	Rivalries []Rivalry `json:"rivalries" validate:"required,dive"`
}
