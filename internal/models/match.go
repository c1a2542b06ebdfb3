package models

// Match is a single completed IPL match.
// Margin is a raw backend string such as "{'runs': 7}" or "7 runs".
type Match struct {
	MatchDate     string `json:"match_date"`
	Venue         string `json:"venue"`
	City          string `json:"city"`
	Team1         string `json:"team1" validate:"required"`
	Team2         string `json:"team2" validate:"required"`
	TossWinner    string `json:"toss_winner"`
	TossDecision  string `json:"toss_decision"`
	Winner        string `json:"winner"`
	Margin        string `json:"margin"`
	PlayerOfMatch string `json:"player_of_match"`
}

// MatchOverall is the all-time summary from GET /matches/.
type MatchOverall struct {
	TotalMatches            FlexInt    `json:"total_matches"`
	VenuesUsed              FlexInt    `json:"venues_used"`
	TeamCombinations        FlexInt    `json:"team_combinations"`
	BatFirstCount           FlexInt    `json:"bat_first_count"`
	FieldFirstCount         FlexInt    `json:"field_first_count"`
	BatFirstPercentage      *FlexFloat `json:"bat_first_percentage"`
	FieldFirstPercentage    *FlexFloat `json:"field_first_percentage"`
	WonBattingFirst         FlexInt    `json:"won_batting_first"`
	WonFieldingFirst        FlexInt    `json:"won_fielding_first"`
	TossWinnerWonMatch      FlexInt    `json:"toss_winner_won_match"`
	TossWinnerWinPercentage *FlexFloat `json:"toss_winner_win_percentage"`
}

// MatchSeasonSummary is one season row from GET /matches/.
type MatchSeasonSummary struct {
	Season                  FlexInt    `json:"season" validate:"required"`
	TotalMatches            FlexInt    `json:"total_matches"`
	VenuesUsed              FlexInt    `json:"venues_used"`
	BatFirstCount           FlexInt    `json:"bat_first_count"`
	FieldFirstCount         FlexInt    `json:"field_first_count"`
	WonBattingFirst         FlexInt    `json:"won_batting_first"`
	WonFieldingFirst        FlexInt    `json:"won_fielding_first"`
	TossWinnerWinPercentage *FlexFloat `json:"toss_winner_win_percentage"`
}

// MatchesSummary is the GET /matches/ response body.
type MatchesSummary struct {
	OverallStats *MatchOverall        `json:"overall_stats" validate:"required"`
	SeasonStats  []MatchSeasonSummary `json:"season_stats" validate:"required,dive"`
}

// SeasonTeamStanding is one team's record inside a season listing.
type SeasonTeamStanding struct {
	TeamName      string    `json:"team_name"`
	MatchesPlayed FlexInt   `json:"matches_played"`
	MatchesWon    FlexInt   `json:"matches_won"`
	WinPercentage FlexFloat `json:"win_percentage"`
}

// SeasonMatches is the GET /matches/seasons/{year} response body.
type SeasonMatches struct {
	Season    FlexInt              `json:"season"`
	Matches   []Match              `json:"matches" validate:"required,dive"`
	TeamStats []SeasonTeamStanding `json:"team_stats"`
}
