package views

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
)

// VenuesPage lists every venue, busiest first.
func VenuesPage(d VenuesPageData) templ.Component {
	return component(func(p *printer) {
		p.raw(`<h1>Venues</h1>`)
		p.searchForm("/venues", d.Search, "Search venue or city")
		p.raw(`<p class="muted">`, strconv.Itoa(d.Count), ` venues</p>`)
		p.chart(withSearch("/charts/venues.svg", d.Search), "Matches hosted by venue")

		p.raw(`<table>`)
		p.header("Venue", "City", "Matches hosted", "Seasons", "First", "Last")
		for _, v := range d.Venues {
			p.raw(`<tr>`)
			p.tdLink("/venues/"+url.PathEscape(v.Venue), v.Venue)
			p.td(v.City)
			p.td(n(v.MatchesHosted))
			p.td(n(v.SeasonsUsed))
			p.td(n(v.FirstSeason))
			p.td(n(v.LastSeason))
			p.raw(`</tr>`)
		}
		if len(d.Venues) == 0 {
			p.emptyRow(6, "No venues match your search.")
		}
		p.raw(`</table>`)
	})
}

// VenuePage shows one venue, optionally narrowed to a season.
func VenuePage(d VenuePageData) templ.Component {
	return component(func(p *printer) {
		detail := d.Detail
		p.raw(`<h1>`)
		p.text(detail.VenueName)
		p.raw(`</h1><form class="filters" method="get"><select name="season">`)
		p.option("", "All seasons", d.Season == 0)
		for _, y := range d.Seasons {
			year := strconv.Itoa(y)
			p.option(year, year, y == d.Season)
		}
		p.raw(`</select><button type="submit">Apply</button></form>`)

		if b := detail.BasicStats; b != nil {
			p.raw(`<div class="cards">`)
			p.card("City", b.City)
			p.card("Matches hosted", n(b.MatchesHosted))
			p.card("Seasons", n(b.SeasonsUsed)+" ("+n(b.FirstSeason)+"-"+n(b.LastSeason)+")")
			p.card("Teams played", n(b.TeamsPlayed))
			p.raw(`</div>`)
		}

		if o := detail.MatchOutcomes; o != nil {
			p.raw(`<h2>Outcomes</h2><table>`)
			p.header("", "Chose", "Share", "Won", "Win %")
			p.raw(`<tr>`)
			p.td("Bat first")
			p.td(n(o.BatFirstCount))
			p.td(optPct(o.BatFirstPercentage))
			p.td(n(o.WonBattingFirst))
			p.td(optPct(o.BattingFirstWinPercentage))
			p.raw(`</tr><tr>`)
			p.td("Field first")
			p.td(n(o.FieldFirstCount))
			p.td(optPct(o.FieldFirstPercentage))
			p.td(n(o.WonFieldingFirst))
			p.td(optPct(o.FieldingFirstWinPercentage))
			p.raw(`</tr></table><p>Toss winner won the match `, n(o.TossWinnerWonMatch), ` times (`, optPct(o.TossWinnerWinPercentage), `).</p>`)
		}

		p.raw(`<h2>Teams at this venue</h2><table>`)
		p.header("Team", "Matches", "Won", "Win %", "Seasons")
		for _, t := range detail.TeamStats {
			p.raw(`<tr>`)
			p.tdLink("/teams/"+url.PathEscape(t.TeamName), t.TeamName)
			p.td(n(t.MatchesPlayed))
			p.td(n(t.MatchesWon))
			p.winCell(t.WinPercentage.Float())
			p.td(n(t.Seasons))
			p.raw(`</tr>`)
		}
		p.raw(`</table>`)

		p.raw(`<h2>Recent matches</h2><table>`)
		p.header("Date", "Match", "Winner", "Margin")
		for _, m := range d.RecentMatches {
			p.raw(`<tr>`)
			p.td(m.MatchDate)
			p.td(m.Team1 + " vs " + m.Team2)
			p.td(m.Winner)
			p.td(m.MarginText)
			p.raw(`</tr>`)
		}
		if len(d.RecentMatches) == 0 {
			p.emptyRow(4, "No matches.")
		}
		p.raw(`</table>`)
	})
}

// matchRow writes one match line; lead is the first column (date or pairing).
func (p *printer) matchRow(lead, venue string, m logic.MatchView) {
	p.raw(`<tr>`)
	p.td(lead)
	p.td(venue)
	p.raw(`<td>`)
	p.text(m.TossWinner)
	p.raw(` `)
	p.badge(m.TossDecision, m.TossDecision)
	p.raw(`</td>`)
	p.td(m.Winner)
	p.td(m.MarginText)
	p.td(m.PlayerOfMatch)
	p.raw(`</tr>`)
}
