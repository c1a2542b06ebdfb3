package models

// Venue is one row of the venue overview (GET /venues/).
type Venue struct {
	Venue         string  `json:"venue" validate:"required"`
	City          string  `json:"city"`
	MatchesHosted FlexInt `json:"matches_hosted" validate:"gte=0"`
	SeasonsUsed   FlexInt `json:"seasons_used" validate:"gte=0"`
	FirstSeason   FlexInt `json:"first_season"`
	LastSeason    FlexInt `json:"last_season"`
}

// VenuesEnvelope is the GET /venues/ response body.
type VenuesEnvelope struct {
	Venues []Venue `json:"venues" validate:"required,dive"`
}

// VenueBasicStats summarises a venue, optionally restricted to one season.
type VenueBasicStats struct {
	Venue         string  `json:"venue"`
	City          string  `json:"city"`
	MatchesHosted FlexInt `json:"matches_hosted"`
	SeasonsUsed   FlexInt `json:"seasons_used"`
	FirstSeason   FlexInt `json:"first_season"`
	LastSeason    FlexInt `json:"last_season"`
	TeamsPlayed   FlexInt `json:"teams_played"`
}

// VenueOutcomes describes how toss decisions played out at a venue.
// Percentages are null when no match at the venue saw that decision.
type VenueOutcomes struct {
	TotalMatches               FlexInt    `json:"total_matches"`
	BatFirstCount              FlexInt    `json:"bat_first_count"`
	FieldFirstCount            FlexInt    `json:"field_first_count"`
	BatFirstPercentage         *FlexFloat `json:"bat_first_percentage"`
	FieldFirstPercentage       *FlexFloat `json:"field_first_percentage"`
	WonBattingFirst            FlexInt    `json:"won_batting_first"`
	WonFieldingFirst           FlexInt    `json:"won_fielding_first"`
	BattingFirstWinPercentage  *FlexFloat `json:"batting_first_win_percentage"`
	FieldingFirstWinPercentage *FlexFloat `json:"fielding_first_win_percentage"`
	TossWinnerWonMatch         FlexInt    `json:"toss_winner_won_match"`
	TossWinnerWinPercentage    *FlexFloat `json:"toss_winner_win_percentage"`
}

// VenueSeason is a venue's activity in one season.
type VenueSeason struct {
	Season          FlexInt `json:"season"`
	TotalMatches    FlexInt `json:"total_matches"`
	BatFirstCount   FlexInt `json:"bat_first_count"`
	FieldFirstCount FlexInt `json:"field_first_count"`
}

// VenueTeamRecord is a team's record at a venue.
type VenueTeamRecord struct {
	TeamName      string    `json:"team_name" validate:"required"`
	MatchesPlayed FlexInt   `json:"matches_played"`
	MatchesWon    FlexInt   `json:"matches_won"`
	WinPercentage FlexFloat `json:"win_percentage"`
	Seasons       FlexInt   `json:"seasons"`
}

// VenueDetail is the GET /venues/{name} aggregate.
type VenueDetail struct {
	VenueName      string            `json:"venue_name" validate:"required"`
	BasicStats     *VenueBasicStats  `json:"basic_stats" validate:"required"`
	MatchOutcomes  *VenueOutcomes    `json:"match_outcomes"`
	SeasonStats    []VenueSeason     `json:"season_stats"`
	TeamStats      []VenueTeamRecord `json:"team_stats" validate:"dive"`
	RecentMatches  []Match           `json:"recent_matches" validate:"dive"`
	FiltersApplied Filters           `json:"filters_applied"`
}

// Filters echoes the optional filters a backend aggregate was computed with.
type Filters struct {
	Season *FlexInt `json:"season,omitempty"`
	Team   *string  `json:"team,omitempty"`
	Venue  *string  `json:"venue,omitempty"`
}
