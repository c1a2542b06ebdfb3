package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

// MatchesPage shows the all-time match summary and one row per season.
func MatchesPage(d *models.MatchesSummary) templ.Component {
	return component(func(p *printer) {
		p.raw(`<h1>Matches</h1>`)
		if o := d.OverallStats; o != nil {
			p.raw(`<div class="cards">`)
			p.card("Total matches", n(o.TotalMatches))
			p.card("Venues used", n(o.VenuesUsed))
			p.card("Team combinations", n(o.TeamCombinations))
			p.card("Chose bat / field", optPct(o.BatFirstPercentage)+" / "+optPct(o.FieldFirstPercentage))
			p.card("Won batting / fielding first", n(o.WonBattingFirst)+" / "+n(o.WonFieldingFirst))
			p.card("Toss winner won", n(o.TossWinnerWonMatch)+" ("+optPct(o.TossWinnerWinPercentage)+")")
			p.raw(`</div>`)
		}

		p.raw(`<h2>Seasons</h2><table>`)
		p.header("Season", "Matches", "Venues", "Bat first", "Field first", "Won batting first", "Won fielding first", "Toss winner won")
		for _, s := range d.SeasonStats {
			p.raw(`<tr>`)
			p.tdLink("/matches/seasons/"+n(s.Season), n(s.Season))
			p.td(n(s.TotalMatches))
			p.td(n(s.VenuesUsed))
			p.td(n(s.BatFirstCount))
			p.td(n(s.FieldFirstCount))
			p.td(n(s.WonBattingFirst))
			p.td(n(s.WonFieldingFirst))
			p.td(optPct(s.TossWinnerWinPercentage))
			p.raw(`</tr>`)
		}
		p.raw(`</table>`)
	})
}

// SeasonPage lists a season's matches grouped by date, with filters and standings.
func SeasonPage(d *logic.SeasonView) templ.Component {
	return component(func(p *printer) {
		p.raw(`<h1>Season `, strconv.Itoa(d.Season), `</h1>`)
		p.raw(`<form class="filters" method="get">`,
			`<input type="search" name="q" value="`, templ.EscapeString(d.Filter.Search), `" placeholder="Team, venue, city or player">`,
			`<select name="team">`)
		p.option("", "All teams", false)
		for _, t := range d.Teams {
			p.option(t, t, t == d.Filter.Team)
		}
		p.raw(`</select><select name="decision">`)
		p.option("", "Any toss decision", false)
		p.option("bat", "Bat", d.Filter.Decision == "bat")
		p.option("field", "Field", d.Filter.Decision == "field")
		p.raw(`</select><button type="submit">Filter</button></form>`)
		p.raw(`<p class="muted">Showing `, strconv.Itoa(d.Shown), ` of `, strconv.Itoa(d.Total), ` matches</p>`)

		for _, day := range d.Days {
			p.raw(`<h3>`)
			p.text(day.Date)
			p.raw(`</h3><table>`)
			p.header("Match", "Venue", "Toss", "Winner", "Margin", "Player of the match")
			for _, m := range day.Matches {
				venue := m.Venue
				if m.City != "" {
					venue += ", " + m.City
				}
				p.matchRow(m.Team1+" vs "+m.Team2, venue, m)
			}
			p.raw(`</table>`)
		}
		if len(d.Days) == 0 {
			p.raw(`<p class="muted">No matches match these filters.</p>`)
		}

		if len(d.TeamStats) > 0 {
			p.raw(`<h2>Standings</h2><table>`)
			p.header("Team", "Matches", "Won", "Win %")
			for _, t := range d.TeamStats {
				p.raw(`<tr>`)
				p.td(t.TeamName)
				p.td(n(t.MatchesPlayed))
				p.td(n(t.MatchesWon))
				p.winCell(t.WinPercentage.Float())
				p.raw(`</tr>`)
			}
			p.raw(`</table>`)
		}
	})
}
