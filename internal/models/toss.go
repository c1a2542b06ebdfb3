package models

// TossOverall is the headline of a toss analysis. Every figure is nullable:
// the backend returns null when the filtered match set is empty.
type TossOverall struct {
	TotalMatches               FlexInt    `json:"total_matches"`
	ChoseBat                   *FlexInt   `json:"chose_bat"`
	ChoseField                 *FlexInt   `json:"chose_field"`
	ChoseBatPercentage         *FlexFloat `json:"chose_bat_percentage"`
	ChoseFieldPercentage       *FlexFloat `json:"chose_field_percentage"`
	WonAfterBatting            *FlexInt   `json:"won_after_batting"`
	WonAfterFielding           *FlexInt   `json:"won_after_fielding"`
	WonAfterBattingPercentage  *FlexFloat `json:"won_after_batting_percentage"`
	WonAfterFieldingPercentage *FlexFloat `json:"won_after_fielding_percentage"`
	TossWinnerWonMatch         *FlexInt   `json:"toss_winner_won_match"`
	TossWinnerWinPercentage    *FlexFloat `json:"toss_winner_win_percentage"`
}

// TossBreakdown is one row of the season/team/venue breakdowns of a toss analysis.
// Exactly one of Season, Team or Venue identifies the row.
type TossBreakdown struct {
	Season                  *FlexInt   `json:"season,omitempty"`
	Team                    string     `json:"team,omitempty"`
	Venue                   string     `json:"venue,omitempty"`
	TotalMatches            FlexInt    `json:"total_matches"`
	ChoseBat                *FlexInt   `json:"chose_bat"`
	ChoseField              *FlexInt   `json:"chose_field"`
	ChoseBatPercentage      *FlexFloat `json:"chose_bat_percentage"`
	ChoseFieldPercentage    *FlexFloat `json:"chose_field_percentage"`
	TossWinnerWinPercentage *FlexFloat `json:"toss_winner_win_percentage"`
}

// TossAnalysis is the GET /toss/analysis response body.
type TossAnalysis struct {
	OverallStats   *TossOverall    `json:"overall_stats" validate:"required"`
	SeasonStats    []TossBreakdown `json:"season_stats"`
	TeamStats      []TossBreakdown `json:"team_stats"`
	VenueStats     []TossBreakdown `json:"venue_stats"`
	FiltersApplied Filters         `json:"filters_applied"`
}

// TossTrend is one season of toss decisions (GET /toss/trends decision_trends).
type TossTrend struct {
	Season               FlexInt   `json:"season" validate:"required"`
	TotalMatches         FlexInt   `json:"total_matches" validate:"gte=0"`
	ChoseBat             FlexInt   `json:"chose_bat"`
	ChoseField           FlexInt   `json:"chose_field"`
	ChoseBatPercentage   FlexFloat `json:"chose_bat_percentage" validate:"gte=0,lte=100"`
	ChoseFieldPercentage FlexFloat `json:"chose_field_percentage" validate:"gte=0,lte=100"`
}

// TossTrendsEnvelope is the GET /toss/trends response body.
type TossTrendsEnvelope struct {
	DecisionTrends []TossTrend `json:"decision_trends" validate:"required,dive"`
}
