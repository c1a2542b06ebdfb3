package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
)

// PredictPage holds the three prediction forms. Teams and venues are given by backend id.
func PredictPage(d PredictPageData) templ.Component {
	return component(func(p *printer) {
		p.raw(`<h1>Predictions</h1><p><a href="/predict/history">Recent predictions</a></p>`)

		p.raw(`<h2>Match winner</h2><form class="filters" method="get" action="/predict/match">`,
			`<input type="number" name="team1_id" min="1" placeholder="Team 1 id" required>`,
			`<input type="number" name="team2_id" min="1" placeholder="Team 2 id" required>`,
			`<input type="number" name="venue_id" min="1" placeholder="Venue id" required>`,
			`<input type="number" name="season_year" min="2008" value="`, strconv.Itoa(d.DefaultSeason), `">`,
			`<button type="submit">Predict</button></form>`)

		p.raw(`<h2>Fantasy XI</h2><form class="filters" method="get" action="/predict/fantasy">`,
			`<input type="number" name="team1_id" min="1" placeholder="Team 1 id" required>`,
			`<input type="number" name="team2_id" min="1" placeholder="Team 2 id" required>`,
			`<input type="number" name="venue_id" min="1" placeholder="Venue id" required>`,
			`<input type="number" name="budget" min="1" max="1000" step="0.5" value="`, strconv.FormatFloat(d.DefaultBudget, 'f', -1, 64), `">`,
			`<button type="submit">Build team</button></form>`)

		p.raw(`<h2>Player forecast</h2><form class="filters" method="get" action="/predict/player">`,
			`<input type="number" name="player_id" min="1" placeholder="Player id" required>`,
			`<input type="number" name="team1_id" min="1" placeholder="Team 1 id" required>`,
			`<input type="number" name="team2_id" min="1" placeholder="Team 2 id" required>`,
			`<input type="number" name="venue_id" min="1" placeholder="Venue id" required>`,
			`<input type="number" name="player_team_id" min="1" placeholder="Player's team id" required>`,
			`<button type="submit">Forecast</button></form>`)
	})
}

func MatchPredictionPage(d MatchPredictionPageData) templ.Component {
	return component(func(p *printer) {
		if m := d.Prediction; m != nil {
			p.raw(`<h1>`)
			p.text(m.Team1 + " vs " + m.Team2)
			p.raw(`</h1><p class="muted">`)
			p.text(m.Venue)
			p.raw(`, `, n(m.SeasonYear), `</p><div class="cards">`)
			p.cardClass(m.Team1, logic.WinClass(m.Team1WinProbability.Float()), pct(m.Team1WinProbability.Float()))
			p.cardClass(m.Team2, logic.WinClass(m.Team2WinProbability.Float()), pct(m.Team2WinProbability.Float()))
			p.raw(`<div class="card"><h3>Predicted winner</h3><p><strong>`)
			p.text(m.PredictedWinner)
			p.raw(`</strong></p></div>`)
			p.card("Confidence", pct(m.Confidence.Float()))
			p.raw(`</div>`)
			if len(m.KeyFactors) > 0 {
				p.raw(`<h2>Key factors</h2><ul>`)
				for _, f := range m.KeyFactors {
					p.raw(`<li>`)
					p.text(f)
					p.raw(`</li>`)
				}
				p.raw(`</ul>`)
			}
		}
		p.backToPredict()
	})
}

func FantasyPage(d FantasyPageData) templ.Component {
	return component(func(p *printer) {
		p.raw(`<h1>Fantasy XI</h1><p class="muted">Budget `, num(d.Request.Budget), ` credits</p>`)
		if t := d.Team; t != nil {
			p.raw(`<div class="cards">`)
			p.card("Captain", t.Captain)
			p.card("Vice captain", t.ViceCaptain)
			p.card("Credits used", num(t.TotalCredits.Float()))
			p.card("Expected points", num(t.ExpectedPoints.Float()))
			p.raw(`</div><table>`)
			p.header("Player", "Team", "Role", "Credits", "Expected points")
			for _, pick := range t.Players {
				p.raw(`<tr>`)
				p.td(pick.PlayerName)
				p.td(pick.Team)
				p.td(pick.Role)
				p.td(num(pick.Credits.Float()))
				p.td(num(pick.ExpectedPoints.Float()))
				p.raw(`</tr>`)
			}
			p.raw(`</table>`)
		}
		p.backToPredict()
	})
}

func PlayerPredictionPage(d PlayerPredictionPageData) templ.Component {
	return component(func(p *printer) {
		if pp := d.Prediction; pp != nil {
			p.raw(`<h1>`)
			p.text(pp.PlayerName)
			p.raw(`</h1><div class="cards">`)
			p.card("Predicted runs", num(pp.PredictedRuns.Float()))
			p.card("Predicted wickets", num(pp.PredictedWickets.Float()))
			p.card("Fantasy points", num(pp.ExpectedFantasyPoints.Float()))
			p.card("Confidence", pct(pp.Confidence.Float()))
			p.raw(`</div>`)
		}
		p.backToPredict()
	})
}

// HistoryPage lists recorded predictions, newest first. Stored payloads are shown escaped.
func HistoryPage(d HistoryPageData) templ.Component {
	return component(func(p *printer) {
		p.raw(`<h1>Recent predictions</h1><table>`)
		p.header("When", "Kind", "Request", "Result")
		for _, rec := range d.Records {
			p.raw(`<tr>`)
			p.td(rec.CreatedAt.Format("2006-01-02 15:04"))
			p.raw(`<td>`)
			p.badge("", rec.Kind)
			p.raw(`</td><td><code>`)
			p.text(string(rec.Request))
			p.raw(`</code></td><td><code>`)
			p.text(string(rec.Response))
			p.raw(`</code></td></tr>`)
		}
		if len(d.Records) == 0 {
			p.emptyRow(4, "No predictions recorded yet.")
		}
		p.raw(`</table>`)
	})
}
