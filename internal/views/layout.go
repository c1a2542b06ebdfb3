package views

import (
	"github.com/a-h/templ"
)

const stylesheet = `body{font-family:system-ui,Arial,sans-serif;margin:0;background:#f3f4f6;color:#111827}
header{background:#1e3a8a;color:#fff;padding:12px 24px;display:flex;gap:24px;align-items:center;flex-wrap:wrap}
header a{color:#e0e7ff;text-decoration:none}
header a.active{color:#fff;font-weight:bold;border-bottom:2px solid #facc15}
main{max-width:1200px;margin:24px auto;padding:0 16px}
.cards{display:grid;grid-template-columns:repeat(auto-fill,minmax(220px,1fr));gap:16px}
.card{background:#fff;border-radius:8px;padding:16px;box-shadow:0 1px 3px rgba(0,0,0,.1)}
table{width:100%;border-collapse:collapse;background:#fff;margin:12px 0}
th,td{padding:8px 12px;border-bottom:1px solid #e5e7eb;text-align:left}
th{background:#f9fafb}
.positive{color:#16a34a;font-weight:bold}
.negative{color:#dc2626;font-weight:bold}
.muted{color:#6b7280}
.badge{padding:2px 8px;border-radius:9999px;font-size:12px;font-weight:bold;background:#dbeafe;color:#1e40af}
.badge.bat{background:#dcfce7;color:#166534}
.error-panel{background:#fef2f2;border:1px solid #fecaca;color:#991b1b;border-radius:8px;padding:24px;text-align:center}
.error-panel a.retry{display:inline-block;margin-top:12px;background:#dc2626;color:#fff;padding:8px 16px;border-radius:6px;text-decoration:none}
form.filters{display:flex;gap:8px;flex-wrap:wrap;margin:12px 0}
img.chart{max-width:100%;background:#fff;border-radius:8px}`

var navigation = []struct {
	href, label, section string
}{
	{"/", "Home", "home"},
	{"/teams", "Teams", "teams"},
	{"/venues", "Venues", "venues"},
	{"/matches", "Matches", "matches"},
	{"/toss", "Toss", "toss"},
	{"/head-to-head", "Head to Head", "head-to-head"},
	{"/players", "Players", "players"},
	{"/predict", "Predict", "predict"},
}

// Layout wraps page content in the dashboard chrome.
func Layout(page Page, content templ.Component) templ.Component {
	return component(func(p *printer) {
		p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		if page.Title != "" {
			p.text(page.Title)
			p.raw(` · `)
		}
		p.raw(`IPL Analytics</title><style>`, stylesheet, `</style></head><body><header><strong>IPL Analytics</strong>`)
		for _, item := range navigation {
			p.raw(`<a href="`, item.href, `"`)
			if item.section == page.Section {
				p.raw(` class="active"`)
			}
			p.raw(`>`, item.label, `</a>`)
		}
		p.raw(`</header><main>`)
		p.render(content)
		p.raw(`</main></body></html>`)
	})
}

// Error renders the failure panel. Its retry link re-requests the same URL.
func Error(panel ErrorPanel) templ.Component {
	return component(func(p *printer) {
		p.raw(`<div class="error-panel" role="alert"><h2>Something went wrong</h2><p>`)
		p.text(panel.Message)
		p.raw(`</p><a class="retry" href="`, attrURL(panel.RetryURL), `">Try again</a></div>`)
	})
}
