package models

// Team is one row of the team overview (GET /teams/).
type Team struct {
	TeamName      string    `json:"team_name" validate:"required"`
	SeasonsPlayed FlexInt   `json:"seasons_played" validate:"gte=0"`
	MatchesPlayed FlexInt   `json:"matches_played" validate:"gte=0"`
	MatchesWon    FlexInt   `json:"matches_won" validate:"gte=0"`
	WinPercentage FlexFloat `json:"win_percentage" validate:"gte=0,lte=100"`
}

// TeamsEnvelope is the GET /teams/ response body.
type TeamsEnvelope struct {
	Teams []Team `json:"teams" validate:"required,dive"`
}

// TeamBasicStats holds the all-time summary of a single team.
type TeamBasicStats struct {
	TeamName      string    `json:"team_name"`
	SeasonsPlayed FlexInt   `json:"seasons_played" validate:"gte=0"`
	MatchesPlayed FlexInt   `json:"matches_played" validate:"gte=0"`
	MatchesWon    FlexInt   `json:"matches_won" validate:"gte=0"`
	WinPercentage FlexFloat `json:"win_percentage" validate:"gte=0,lte=100"`
	FirstSeason   FlexInt   `json:"first_season"`
	LastSeason    FlexInt   `json:"last_season"`
	VenuesPlayed  FlexInt   `json:"venues_played"`
}

// SeasonRecord is a team's record in one season.
type SeasonRecord struct {
	Season        FlexInt   `json:"season" validate:"required"`
	MatchesPlayed FlexInt   `json:"matches_played"`
	MatchesWon    FlexInt   `json:"matches_won"`
	WinPercentage FlexFloat `json:"win_percentage"`
}

// VenueSplit is a team's Home/Away record.
type VenueSplit struct {
	VenueType     string    `json:"venue_type" validate:"required"`
	MatchesPlayed FlexInt   `json:"matches_played"`
	MatchesWon    FlexInt   `json:"matches_won"`
	WinPercentage FlexFloat `json:"win_percentage"`
}

// OpponentRecord is a team's record against one opponent.
type OpponentRecord struct {
	Opponent      string    `json:"opponent" validate:"required"`
	MatchesPlayed FlexInt   `json:"matches_played"`
	MatchesWon    FlexInt   `json:"matches_won"`
	WinPercentage FlexFloat `json:"win_percentage"`
}

// TeamTossStats summarises how a team fares at the toss.
// WinRateAfterWinningToss is null when the team never won a toss.
type TeamTossStats struct {
	TotalMatches            FlexInt    `json:"total_matches"`
	TossWins                FlexInt    `json:"toss_wins"`
	TossWinPercentage       *FlexFloat `json:"toss_win_percentage"`
	ChoseBat                FlexInt    `json:"chose_bat"`
	ChoseField              FlexInt    `json:"chose_field"`
	WonAfterWinningToss     FlexInt    `json:"won_after_winning_toss"`
	WinRateAfterWinningToss *FlexFloat `json:"win_rate_after_winning_toss"`
}

// TeamDetail is the GET /teams/{name} aggregate.
type TeamDetail struct {
	TeamName      string           `json:"team_name" validate:"required"`
	BasicStats    *TeamBasicStats  `json:"basic_stats" validate:"required"`
	SeasonStats   []SeasonRecord   `json:"season_stats" validate:"dive"`
	VenueStats    []VenueSplit     `json:"venue_stats" validate:"dive"`
	OpponentStats []OpponentRecord `json:"opponent_stats" validate:"dive"`
	TossStats     *TeamTossStats   `json:"toss_stats"`
}
