package views

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
)

// HomePage is the landing summary: counts, leading teams, busiest venues and toss trends.
func HomePage(d *logic.HomeView) templ.Component {
	return component(func(p *printer) {
		p.raw(`<h1>IPL at a glance</h1><div class="cards">`)
		p.card("Teams", strconv.Itoa(d.TeamCount))
		p.card("Venues", strconv.Itoa(d.VenueCount))
		p.card("Avg. chose to bat", pct(d.Toss.AvgBatFirst))
		p.raw(`<div class="card"><h3>Avg. chose to field</h3><p>`, pct(d.Toss.AvgFieldFirst), `</p>`)
		p.badge("", d.Toss.Preference)
		p.raw(`</div></div>`)

		p.raw(`<h2>Top teams</h2><table>`)
		p.header("Team", "Matches", "Won", "Win %")
		for _, t := range d.TopTeams {
			p.raw(`<tr>`)
			p.tdLink("/teams/"+url.PathEscape(t.TeamName), t.TeamName)
			p.td(n(t.MatchesPlayed))
			p.td(n(t.MatchesWon))
			p.winCell(t.WinPercentage.Float())
			p.raw(`</tr>`)
		}
		p.raw(`</table>`)

		p.raw(`<h2>Busiest venues</h2><table>`)
		p.header("Venue", "City", "Matches hosted")
		for _, v := range d.TopVenues {
			p.raw(`<tr>`)
			p.tdLink("/venues/"+url.PathEscape(v.Venue), v.Venue)
			p.td(v.City)
			p.td(n(v.MatchesHosted))
			p.raw(`</tr>`)
		}
		p.raw(`</table>`)

		p.raw(`<h2>Toss decisions</h2>`)
		p.chart("/charts/toss-trends.svg", "Toss decisions by season")
	})
}
