package views

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"
)

// PlayersPage lists players filtered by name and role.
func PlayersPage(d PlayersPageData) templ.Component {
	return component(func(p *printer) {
		p.raw(`<h1>Players</h1><form class="filters" method="get" action="/players">`,
			`<input type="search" name="q" value="`, templ.EscapeString(d.Search), `" placeholder="Search players">`,
			`<select name="role">`)
		p.option("all", "All roles", false)
		for _, role := range d.Roles {
			p.option(role, role, role == d.Role)
		}
		p.raw(`</select><button type="submit">Search</button><a href="/players/top/runs">Leaderboards</a></form>`)
		p.raw(`<p class="muted">`, strconv.Itoa(d.Count), ` players</p><table>`)
		p.header("Player", "Role", "Runs", "Balls faced", "Wickets", "Balls bowled", "POM")
		for _, pl := range d.Players {
			p.raw(`<tr>`)
			p.td(pl.PlayerName)
			p.raw(`<td>`)
			p.badge("", pl.Role)
			p.raw(`</td>`)
			p.td(n(pl.RunsScored))
			p.td(n(pl.BallsFaced))
			p.td(n(pl.Wickets))
			p.td(n(pl.BallsBowled))
			pom := ""
			if pl.HasWonPOM {
				pom = "Yes"
			}
			p.td(pom)
			p.raw(`</tr>`)
		}
		if len(d.Players) == 0 {
			p.emptyRow(7, "No players match.")
		}
		p.raw(`</table>`)
	})
}

// TopPlayersPage is one category leaderboard.
func TopPlayersPage(d TopPlayersPageData) templ.Component {
	return component(func(p *printer) {
		p.raw(`<h1>Top players: `)
		p.text(d.Category)
		p.raw(`</h1><p>`)
		for _, c := range d.Categories {
			p.raw(`<a href="/players/top/`, url.PathEscape(c), `"`)
			if c == d.Category {
				p.raw(` class="badge"`)
			}
			p.raw(`>`)
			p.text(c)
			p.raw(`</a> `)
		}
		season := ""
		if d.Season != nil {
			season = n(*d.Season)
		}
		p.raw(`</p><form class="filters" method="get">`,
			`<input type="number" name="season" min="2008" value="`, season, `" placeholder="Season">`,
			`<input type="number" name="limit" min="1" max="100" value="`, strconv.Itoa(d.Limit), `">`,
			`<button type="submit">Apply</button></form><table>`)
		p.header("#", "Player", "Matches", "Runs", "Wickets", "Fours", "Sixes", "Strike rate", "Economy", "Average")
		for i, pl := range d.Players {
			p.raw(`<tr>`)
			p.td(strconv.Itoa(i + 1))
			p.td(pl.PlayerName)
			p.td(n(pl.Matches))
			p.td(optInt(pl.Runs))
			p.td(optInt(pl.Wickets))
			p.td(optInt(pl.Fours))
			p.td(optInt(pl.Sixes))
			p.td(optNum(pl.StrikeRate))
			p.td(optNum(pl.Economy))
			p.td(optNum(pl.Average))
			p.raw(`</tr>`)
		}
		if len(d.Players) == 0 {
			p.emptyRow(10, "No players in this category.")
		}
		p.raw(`</table>`)
	})
}
