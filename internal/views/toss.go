package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

func (p *printer) tossBreakdown(title, column string, rows []models.TossBreakdown, label func(models.TossBreakdown) string) {
	if len(rows) == 0 {
		return
	}
	p.raw(`<h2>`, title, `</h2><table>`)
	p.header(column, "Matches", "Bat", "Field", "Toss winner won")
	for _, r := range rows {
		p.raw(`<tr>`)
		p.td(label(r))
		p.td(n(r.TotalMatches))
		p.td(optPct(r.ChoseBatPercentage))
		p.td(optPct(r.ChoseFieldPercentage))
		p.td(optPct(r.TossWinnerWinPercentage))
		p.raw(`</tr>`)
	}
	p.raw(`</table>`)
}

// TossPage is the filtered toss analysis.
func TossPage(d TossPageData) templ.Component {
	return component(func(p *printer) {
		season := ""
		if d.Filter.Season > 0 {
			season = strconv.Itoa(d.Filter.Season)
		}
		p.raw(`<h1>Toss analysis</h1><form class="filters" method="get" action="/toss">`,
			`<input type="number" name="season" min="2008" value="`, season, `" placeholder="Season">`,
			`<input type="text" name="team" value="`, templ.EscapeString(d.Filter.Team), `" placeholder="Team">`,
			`<input type="text" name="venue" value="`, templ.EscapeString(d.Filter.Venue), `" placeholder="Venue">`,
			`<button type="submit">Apply</button><a href="/toss/trends">Season trends</a></form>`)

		a := d.Analysis
		if a == nil {
			return
		}
		if o := a.OverallStats; o != nil {
			p.raw(`<div class="cards">`)
			p.card("Matches", n(o.TotalMatches))
			p.card("Chose to bat", optInt(o.ChoseBat)+" ("+optPct(o.ChoseBatPercentage)+")")
			p.card("Chose to field", optInt(o.ChoseField)+" ("+optPct(o.ChoseFieldPercentage)+")")
			p.card("Won after batting", optInt(o.WonAfterBatting)+" ("+optPct(o.WonAfterBattingPercentage)+")")
			p.card("Won after fielding", optInt(o.WonAfterFielding)+" ("+optPct(o.WonAfterFieldingPercentage)+")")
			p.card("Toss winner won", optInt(o.TossWinnerWonMatch)+" ("+optPct(o.TossWinnerWinPercentage)+")")
			p.raw(`</div>`)
		}
		p.tossBreakdown("By season", "Season", a.SeasonStats, func(r models.TossBreakdown) string { return optInt(r.Season) })
		p.tossBreakdown("By team", "Team", a.TeamStats, func(r models.TossBreakdown) string { return r.Team })
		p.tossBreakdown("By venue", "Venue", a.VenueStats, func(r models.TossBreakdown) string { return r.Venue })
	})
}

// TossTrendsPage shows bat/field preference per season and the recent trend.
func TossTrendsPage(d *logic.TossTrendSummary) templ.Component {
	return component(func(p *printer) {
		p.raw(`<h1>Toss decision trends</h1><div class="cards">`)
		p.card("Avg. chose to bat", pct(d.AvgBatFirst))
		p.card("Avg. chose to field", pct(d.AvgFieldFirst))
		p.raw(`<div class="card"><h3>Overall</h3><p>`)
		p.badge("", d.Preference)
		p.raw(`</p></div></div>`)
		p.chart("/charts/toss-trends.svg", "Toss decisions by season")

		p.raw(`<h2>Recent seasons</h2><table>`)
		p.header("Season", "Matches", "Bat", "Field", "Trend")
		for _, r := range d.Recent {
			p.raw(`<tr>`)
			p.td(strconv.Itoa(r.Season))
			p.td(strconv.Itoa(r.TotalMatches))
			p.td(pct(r.ChoseBatPercentage))
			p.td(pct(r.ChoseFieldPercentage))
			p.raw(`<td>`)
			p.badge("", r.Label)
			p.raw(`</td></tr>`)
		}
		p.raw(`</table>`)

		p.raw(`<h2>All seasons</h2><table>`)
		p.header("Season", "Matches", "Bat", "Field", "Trend")
		for _, r := range d.Seasons {
			p.raw(`<tr>`)
			p.td(strconv.Itoa(r.Season))
			p.td(strconv.Itoa(r.TotalMatches))
			p.td(pct(r.ChoseBatPercentage))
			p.td(pct(r.ChoseFieldPercentage))
			p.td(r.Label)
			p.raw(`</tr>`)
		}
		if len(d.Seasons) == 0 {
			p.emptyRow(5, "No seasons recorded.")
		}
		p.raw(`</table>`)
	})
}
