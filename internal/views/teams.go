package views

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
)

func (p *printer) searchForm(action, search, placeholder string) {
	p.raw(`<form class="filters" method="get" action="`, action, `">`,
		`<input type="search" name="q" value="`, templ.EscapeString(search), `" placeholder="`, placeholder, `">`,
		`<button type="submit">Search</button></form>`)
}

// withSearch carries the overview filter over to its chart.
func withSearch(src, search string) string {
	if search == "" {
		return src
	}
	return src + "?q=" + url.QueryEscape(search)
}

// TeamsPage lists every team, highest win percentage first.
func TeamsPage(d TeamsPageData) templ.Component {
	return component(func(p *printer) {
		p.raw(`<h1>Teams</h1>`)
		p.searchForm("/teams", d.Search, "Search teams")
		p.raw(`<p class="muted">`, strconv.Itoa(d.Count), ` teams</p>`)
		p.chart(withSearch("/charts/teams.svg", d.Search), "Win percentage by team")

		p.raw(`<table>`)
		p.header("#", "Team", "Seasons", "Matches", "Won", "Win %")
		for i, t := range d.Teams {
			p.raw(`<tr>`)
			p.td(strconv.Itoa(i + 1))
			p.tdLink("/teams/"+url.PathEscape(t.TeamName), t.TeamName)
			p.td(n(t.SeasonsPlayed))
			p.td(n(t.MatchesPlayed))
			p.td(n(t.MatchesWon))
			p.winCell(t.WinPercentage.Float())
			p.raw(`</tr>`)
		}
		if len(d.Teams) == 0 {
			p.emptyRow(6, "No teams match your search.")
		}
		p.raw(`</table>`)
	})
}

// TeamPage shows one team: headline, toss habits and its season, venue and opponent splits.
func TeamPage(d *logic.TeamDetailView) templ.Component {
	return component(func(p *printer) {
		detail := d.Detail
		p.raw(`<h1>`)
		p.text(detail.TeamName)
		p.raw(`</h1>`)

		if b := detail.BasicStats; b != nil {
			p.raw(`<div class="cards">`)
			p.card("Matches", n(b.MatchesPlayed))
			p.card("Won", n(b.MatchesWon))
			p.cardClass("Win %", d.WinClass, pct(b.WinPercentage.Float()))
			p.card("Seasons", n(b.SeasonsPlayed)+" ("+n(b.FirstSeason)+"-"+n(b.LastSeason)+")")
			p.card("Venues played", n(b.VenuesPlayed))
			p.raw(`</div>`)
		}

		toss := d.Toss
		p.raw(`<h2>Toss</h2><div class="cards">`)
		p.card("Tosses won", strconv.Itoa(toss.TossWins)+" ("+optPctF(toss.TossWinPercentage)+")")
		p.raw(`<div class="card"><h3>Preferred decision</h3><p>`)
		p.badge(toss.Preferred, toss.Preferred)
		if toss.PreferredCount > 0 {
			p.raw(` `, strconv.Itoa(toss.PreferredCount), ` times`)
		}
		p.raw(`</p></div>`)
		p.card("Bat / Field", pct(toss.BatShare)+" / "+pct(toss.FieldShare))
		p.cardClass("Win rate after winning toss", toss.WinRateAfterTossCSS, optPctF(toss.WinRateAfterToss))
		p.raw(`</div>`)

		p.raw(`<h2>By season</h2><table>`)
		p.header("Season", "Matches", "Won", "Win %")
		for _, s := range detail.SeasonStats {
			p.raw(`<tr>`)
			p.td(n(s.Season))
			p.td(n(s.MatchesPlayed))
			p.td(n(s.MatchesWon))
			p.winCell(s.WinPercentage.Float())
			p.raw(`</tr>`)
		}
		p.raw(`</table>`)

		p.raw(`<h2>Home and away</h2><table>`)
		p.header("Venue type", "Matches", "Won", "Win %")
		for _, v := range detail.VenueStats {
			p.raw(`<tr>`)
			p.td(v.VenueType)
			p.td(n(v.MatchesPlayed))
			p.td(n(v.MatchesWon))
			p.winCell(v.WinPercentage.Float())
			p.raw(`</tr>`)
		}
		p.raw(`</table>`)

		p.raw(`<h2>Against opponents</h2><table>`)
		p.header("Opponent", "Matches", "Won", "Win %", "")
		team := url.PathEscape(detail.TeamName)
		for _, o := range detail.OpponentStats {
			opponent := url.PathEscape(o.Opponent)
			p.raw(`<tr>`)
			p.tdLink("/teams/"+opponent, o.Opponent)
			p.td(n(o.MatchesPlayed))
			p.td(n(o.MatchesWon))
			p.winCell(o.WinPercentage.Float())
			p.tdLink("/head-to-head/"+team+"/"+opponent, "Head to head")
			p.raw(`</tr>`)
		}
		p.raw(`</table>`)
	})
}
