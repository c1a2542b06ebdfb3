// Package views renders the dashboard pages as templ components.
package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

// printer writes markup to a component's writer and keeps the first error.
type printer struct {
	ctx context.Context
	w   io.Writer
	err error
}

// component adapts a markup function to templ.Component.
func component(fn func(p *printer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{ctx: ctx, w: w}
		fn(p)
		return p.err
	})
}

// raw writes trusted markup.
func (p *printer) raw(parts ...string) {
	for _, s := range parts {
		if p.err != nil {
			return
		}
		_, p.err = io.WriteString(p.w, s)
	}
}

// text writes escaped text.
func (p *printer) text(s string) {
	p.raw(templ.EscapeString(s))
}

func (p *printer) render(c templ.Component) {
	if p.err == nil {
		p.err = c.Render(p.ctx, p.w)
	}
}

func attrURL(href string) string {
	return templ.EscapeString(string(templ.URL(href)))
}

func (p *printer) link(href, label string) {
	p.raw(`<a href="`, attrURL(href), `">`)
	p.text(label)
	p.raw(`</a>`)
}

func (p *printer) header(cols ...string) {
	p.raw(`<tr>`)
	for _, c := range cols {
		p.raw(`<th>`)
		p.text(c)
		p.raw(`</th>`)
	}
	p.raw(`</tr>`)
}

func (p *printer) td(s string) {
	p.raw(`<td>`)
	p.text(s)
	p.raw(`</td>`)
}

func (p *printer) tdLink(href, label string) {
	p.raw(`<td>`)
	p.link(href, label)
	p.raw(`</td>`)
}

// winCell renders a percentage green above 50 and red otherwise.
func (p *printer) winCell(v float64) {
	p.raw(`<td class="`, logic.WinClass(v), `">`, pct(v), `</td>`)
}

func (p *printer) badge(class, label string) {
	p.raw(`<span class="badge`)
	if class != "" {
		p.raw(` `, templ.EscapeString(class))
	}
	p.raw(`">`)
	p.text(label)
	p.raw(`</span>`)
}

func (p *printer) emptyRow(cols int, message string) {
	p.raw(`<tr><td colspan="`, strconv.Itoa(cols), `" class="muted">`)
	p.text(message)
	p.raw(`</td></tr>`)
}

func (p *printer) card(title, value string) {
	p.cardClass(title, "", value)
}

func (p *printer) cardClass(title, class, value string) {
	p.raw(`<div class="card"><h3>`)
	p.text(title)
	p.raw(`</h3><p`)
	if class != "" {
		p.raw(` class="`, templ.EscapeString(class), `"`)
	}
	p.raw(`>`)
	p.text(value)
	p.raw(`</p></div>`)
}

func (p *printer) option(value, label string, selected bool) {
	p.raw(`<option value="`, templ.EscapeString(value), `"`)
	if selected {
		p.raw(` selected`)
	}
	p.raw(`>`)
	p.text(label)
	p.raw(`</option>`)
}

func (p *printer) chart(src, alt string) {
	p.raw(`<img class="chart" src="`, attrURL(src), `" alt="`, templ.EscapeString(alt), `">`)
}

func (p *printer) backToPredict() {
	p.raw(`<p><a href="/predict">New prediction</a></p>`)
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func n(v models.FlexInt) string {
	return strconv.Itoa(v.Int())
}

func optPct(v *models.FlexFloat) string {
	if v == nil {
		return logic.NotAvailable
	}
	return pct(v.Float())
}

func optPctF(v *float64) string {
	if v == nil {
		return logic.NotAvailable
	}
	return pct(*v)
}

func optInt(v *models.FlexInt) string {
	if v == nil {
		return logic.NotAvailable
	}
	return n(*v)
}

// optNum renders leaderboard columns the category does not fill as a dash.
func optNum(v *models.FlexFloat) string {
	if v == nil {
		return "-"
	}
	return num(v.Float())
}
