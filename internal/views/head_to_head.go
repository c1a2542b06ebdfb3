package views

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
)

func pairURL(a, b string) string {
	return "/head-to-head/" + url.PathEscape(a) + "/" + url.PathEscape(b)
}

// HeadToHeadPage lists every pairing, most played first.
func HeadToHeadPage(d HeadToHeadPageData) templ.Component {
	return component(func(p *printer) {
		p.raw(`<h1>Head to head</h1><p><a href="/head-to-head/rivalries">Strongest rivalries</a></p><table>`)
		p.header("Pairing", "Matches", "Wins", "No result", "Share", "Leader")
		for _, r := range d.Records {
			p.raw(`<tr>`)
			p.tdLink(pairURL(r.TeamA, r.TeamB), r.TeamA+" vs "+r.TeamB)
			p.td(strconv.Itoa(r.Matches))
			p.td(strconv.Itoa(r.TeamAWins) + " - " + strconv.Itoa(r.TeamBWins))
			p.td(strconv.Itoa(r.NoResults))
			p.td(pct(r.TeamAShare) + " / " + pct(r.TeamBShare))
			p.td(r.Leader)
			p.raw(`</tr>`)
		}
		if len(d.Records) == 0 {
			p.emptyRow(6, "No records.")
		}
		p.raw(`</table>`)
	})
}

// HeadToHeadPairPage shows two teams' record and the matches behind it.
func HeadToHeadPairPage(d *logic.HeadToHeadView) templ.Component {
	return component(func(p *printer) {
		s := d.Share
		p.raw(`<h1>`)
		p.text(s.TeamA + " vs " + s.TeamB)
		p.raw(`</h1><div class="cards">`)
		p.card("Matches", strconv.Itoa(s.Matches))
		p.cardClass(s.TeamA, logic.WinClass(s.TeamAShare), strconv.Itoa(s.TeamAWins)+" ("+pct(s.TeamAShare)+")")
		p.cardClass(s.TeamB, logic.WinClass(s.TeamBShare), strconv.Itoa(s.TeamBWins)+" ("+pct(s.TeamBShare)+")")
		p.card("No result", strconv.Itoa(s.NoResults))
		p.card("Leader", s.Leader)
		p.raw(`</div>`)
		if d.Season > 0 {
			p.raw(`<p class="muted">Season `, strconv.Itoa(d.Season), ` only. <a href="?">All seasons</a></p>`)
		}

		p.raw(`<h2>Matches</h2><table>`)
		p.header("Date", "Venue", "Toss", "Winner", "Margin", "Player of the match")
		for _, m := range d.Matches {
			p.matchRow(m.MatchDate, m.Venue, m)
		}
		if len(d.Matches) == 0 {
			p.emptyRow(6, "These teams have not met.")
		}
		p.raw(`</table>`)
	})
}

// RivalriesPage ranks pairings by how closely contested they are.
func RivalriesPage(d RivalriesPageData) templ.Component {
	return component(func(p *printer) {
		p.raw(`<h1>Strongest rivalries</h1><form class="filters" method="get">`,
			`<label>Minimum meetings <input type="number" name="min_matches" min="1" value="`, strconv.Itoa(d.MinMatches), `"></label>`,
			`<button type="submit">Apply</button></form><table>`)
		p.header("Pairing", "Matches", "Wins", "Win difference")
		for _, r := range d.Rivalries {
			p.raw(`<tr>`)
			p.tdLink(pairURL(r.TeamA, r.TeamB), r.TeamA+" vs "+r.TeamB)
			p.td(n(r.MatchesPlayed))
			p.td(n(r.TeamAWins) + " - " + n(r.TeamBWins))
			p.td(n(r.WinDifference))
			p.raw(`</tr>`)
		}
		if len(d.Rivalries) == 0 {
			p.emptyRow(4, "No pairing has met that often.")
		}
		p.raw(`</table>`)
	})
}
