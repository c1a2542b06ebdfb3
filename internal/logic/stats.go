package logic

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

// NotAvailable is rendered wherever a derived value cannot be computed.
const NotAvailable = "N/A"

// Percentage returns num/den*100, or 0 when den is zero.
func Percentage(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}

// Round2 rounds to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WinClass is the positive/negative styling rule for any win rate.
func WinClass(p float64) string {
	if p > 50 {
		return "positive"
	}
	return "negative"
}

var plainMargin = regexp.MustCompile(`^(\d+)\s+(runs?|wickets?)$`)

// ParseMargin turns the backend's stringified margin object, e.g. "{'runs': 7}",
// into "7 runs". The plain "7 runs" form is passed through. Anything else is "N/A".
func ParseMargin(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return NotAvailable
	}
	if m := plainMargin.FindStringSubmatch(s); m != nil {
		return m[1] + " " + m[2]
	}
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return NotAvailable
	}

	var obj map[string]json.Number
	dec := json.NewDecoder(strings.NewReader(strings.ReplaceAll(s, "'", `"`)))
	dec.UseNumber()
	if err := dec.Decode(&obj); err != nil || len(obj) != 1 {
		return NotAvailable
	}
	for unit, n := range obj {
		v, err := n.Float64()
		if err != nil || v < 0 || unit == "" {
			return NotAvailable
		}
		return fmt.Sprintf("%s %s", strings.TrimSpace(n.String()), unit)
	}
	return NotAvailable
}

// SortTeamsByWinPercentage returns a copy sorted by win percentage, highest first.
// Ties keep their backend order.
func SortTeamsByWinPercentage(teams []models.Team) []models.Team {
	out := make([]models.Team, len(teams))
	copy(out, teams)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WinPercentage > out[j].WinPercentage
	})
	return out
}

// SortVenuesByMatchesHosted returns a copy sorted by matches hosted, busiest first.
func SortVenuesByMatchesHosted(venues []models.Venue) []models.Venue {
	out := make([]models.Venue, len(venues))
	copy(out, venues)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchesHosted > out[j].MatchesHosted
	})
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// FilterTeams keeps teams whose name contains search, case-insensitively.
// An empty search returns the input unchanged.
func FilterTeams(teams []models.Team, search string) []models.Team {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return teams
	}
	out := make([]models.Team, 0, len(teams))
	for _, t := range teams {
		if containsFold(t.TeamName, needle) {
			out = append(out, t)
		}
	}
	return out
}

// FilterVenues keeps venues whose name or city contains search.
func FilterVenues(venues []models.Venue, search string) []models.Venue {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return venues
	}
	out := make([]models.Venue, 0, len(venues))
	for _, v := range venues {
		if containsFold(v.Venue, needle) || containsFold(v.City, needle) {
			out = append(out, v)
		}
	}
	return out
}

// FilterPlayers keeps players matching the name search and role. Role "" or "all"
// matches every role.
func FilterPlayers(players []models.Player, search, role string) []models.Player {
	needle := strings.ToLower(strings.TrimSpace(search))
	role = strings.TrimSpace(role)
	anyRole := role == "" || strings.EqualFold(role, "all")
	if needle == "" && anyRole {
		return players
	}
	out := make([]models.Player, 0, len(players))
	for _, p := range players {
		if needle != "" && !containsFold(p.PlayerName, needle) {
			continue
		}
		if !anyRole && !strings.EqualFold(p.Role, role) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// TossTrendRow is one season of toss decisions with its display label.
type TossTrendRow struct {
	Season               int     `json:"season"`
	TotalMatches         int     `json:"total_matches"`
	ChoseBatPercentage   float64 `json:"chose_bat_percentage"`
	ChoseFieldPercentage float64 `json:"chose_field_percentage"`
	Label                string  `json:"label"`
}

// TossTrendSummary is the derived view over per-season toss decisions.
type TossTrendSummary struct {
	AvgBatFirst   float64        `json:"avg_bat_first"`
	AvgFieldFirst float64        `json:"avg_field_first"`
	Preference    string         `json:"preference"`
	Seasons       []TossTrendRow `json:"seasons"`
	Recent        []TossTrendRow `json:"recent"`
}

const recentSeasons = 5

// SummarizeTossTrends averages bat/field choice across seasons and labels each season.
// Seasons are ordered oldest first; Recent holds the last five.
func SummarizeTossTrends(trends []models.TossTrend) TossTrendSummary {
	rows := make([]TossTrendRow, 0, len(trends))
	var batSum, fieldSum float64
	for _, t := range trends {
		row := TossTrendRow{
			Season:               t.Season.Int(),
			TotalMatches:         t.TotalMatches.Int(),
			ChoseBatPercentage:   t.ChoseBatPercentage.Float(),
			ChoseFieldPercentage: t.ChoseFieldPercentage.Float(),
			Label:                "Bat First",
		}
		if row.ChoseFieldPercentage > 50 {
			row.Label = "Field First"
		}
		batSum += row.ChoseBatPercentage
		fieldSum += row.ChoseFieldPercentage
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Season < rows[j].Season })

	summary := TossTrendSummary{Seasons: rows, Preference: "Prefer Batting"}
	if n := len(rows); n > 0 {
		summary.AvgBatFirst = batSum / float64(n)
		summary.AvgFieldFirst = fieldSum / float64(n)
	}
	if summary.AvgFieldFirst > 50 {
		summary.Preference = "Prefer Fielding"
	}
	start := len(rows) - recentSeasons
	if start < 0 {
		start = 0
	}
	summary.Recent = rows[start:]
	return summary
}

// TossDecisionView explains how a team uses a won toss.
type TossDecisionView struct {
	TossWins            int      `json:"toss_wins"`
	Preferred           string   `json:"preferred"`
	PreferredCount      int      `json:"preferred_count"`
	BatShare            float64  `json:"bat_share"`
	FieldShare          float64  `json:"field_share"`
	TossWinPercentage   *float64 `json:"toss_win_percentage"`
	WinRateAfterToss    *float64 `json:"win_rate_after_toss"`
	WinRateAfterTossCSS string   `json:"win_rate_after_toss_class"`
}

// TossDecisionBreakdown derives the toss decision shares of a team. Shares are zero
// when the team never won a toss; nil backend percentages stay nil.
func TossDecisionBreakdown(ts *models.TeamTossStats) TossDecisionView {
	if ts == nil {
		return TossDecisionView{Preferred: NotAvailable}
	}
	bat, field, wins := ts.ChoseBat.Int(), ts.ChoseField.Int(), ts.TossWins.Int()
	view := TossDecisionView{
		TossWins:   wins,
		BatShare:   Percentage(bat, wins),
		FieldShare: Percentage(field, wins),
	}
	switch {
	case wins == 0:
		view.Preferred = NotAvailable
	case bat > field:
		view.Preferred, view.PreferredCount = "bat", bat
	default:
		view.Preferred, view.PreferredCount = "field", field
	}
	if ts.TossWinPercentage != nil {
		v := ts.TossWinPercentage.Float()
		view.TossWinPercentage = &v
	}
	if ts.WinRateAfterWinningToss != nil {
		v := ts.WinRateAfterWinningToss.Float()
		view.WinRateAfterToss = &v
		view.WinRateAfterTossCSS = WinClass(v)
	}
	return view
}

// MatchFilter narrows a season's match list.
type MatchFilter struct {
	Search   string
	Team     string
	Decision string
}

// FilterMatches applies the search (teams, venue, city, player of the match), an exact
// team and a toss decision ("bat" or "field").
func FilterMatches(matches []models.Match, f MatchFilter) []models.Match {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	team := strings.TrimSpace(f.Team)
	decision := strings.TrimSpace(f.Decision)
	if needle == "" && team == "" && decision == "" {
		return matches
	}

	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if needle != "" && !containsFold(m.Team1, needle) && !containsFold(m.Team2, needle) &&
			!containsFold(m.Venue, needle) && !containsFold(m.City, needle) &&
			!containsFold(m.PlayerOfMatch, needle) {
			continue
		}
		if team != "" && !strings.EqualFold(m.Team1, team) && !strings.EqualFold(m.Team2, team) {
			continue
		}
		if decision != "" && !strings.EqualFold(m.TossDecision, decision) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// MatchView is a match prepared for display.
type MatchView struct {
	models.Match
	MarginText string `json:"margin_text"`
}

// MatchDay groups the matches played on one date.
type MatchDay struct {
	Date    string      `json:"date"`
	Matches []MatchView `json:"matches"`
}

// GroupMatchesByDate formats margins and groups matches by match_date, dates ascending.
// Matches within a day keep their input order.
func GroupMatchesByDate(matches []models.Match) []MatchDay {
	index := map[string]int{}
	var days []MatchDay
	for _, m := range matches {
		date := strings.TrimSpace(m.MatchDate)
		if date == "" {
			date = NotAvailable
		}
		i, ok := index[date]
		if !ok {
			i = len(days)
			index[date] = i
			days = append(days, MatchDay{Date: date})
		}
		days[i].Matches = append(days[i].Matches, MatchView{Match: m, MarginText: ParseMargin(m.Margin)})
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// HeadToHeadShare is a pairing with win shares recomputed from the counts.
type HeadToHeadShare struct {
	TeamA      string  `json:"team_a"`
	TeamB      string  `json:"team_b"`
	Matches    int     `json:"matches_played"`
	TeamAWins  int     `json:"team_a_wins"`
	TeamBWins  int     `json:"team_b_wins"`
	NoResults  int     `json:"no_results"`
	TeamAShare float64 `json:"team_a_share"`
	TeamBShare float64 `json:"team_b_share"`
	Leader     string  `json:"leader"`
}

// HeadToHeadShares recomputes both sides' win percentages from the raw counts.
func HeadToHeadShares(r models.HeadToHeadRecord) HeadToHeadShare {
	s := HeadToHeadShare{
		TeamA:     r.TeamA,
		TeamB:     r.TeamB,
		Matches:   r.MatchesPlayed.Int(),
		TeamAWins: r.TeamAWins.Int(),
		TeamBWins: r.TeamBWins.Int(),
		NoResults: r.NoResults.Int(),
	}
	s.TeamAShare = Round2(Percentage(s.TeamAWins, s.Matches))
	s.TeamBShare = Round2(Percentage(s.TeamBWins, s.Matches))
	switch {
	case s.TeamAWins > s.TeamBWins:
		s.Leader = s.TeamA
	case s.TeamBWins > s.TeamAWins:
		s.Leader = s.TeamB
	default:
		s.Leader = "Level"
	}
	return s
}
