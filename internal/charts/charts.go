// Package charts renders the dashboard's bar charts as standalone SVG documents.
package charts

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

const (
	width         = 720
	height        = 440
	padding       = 50
	bottomPadding = 120
	maxBars       = 30
)

// Palette used across the dashboard.
const (
	ColorPositive = "#16a34a"
	ColorNegative = "#dc2626"
	ColorBat      = "#059669"
	ColorField    = "#2563eb"
	ColorNeutral  = "#7c3aed"
)

// Bar is one labelled value. Color overrides the chart color when set.
type Bar struct {
	Label string
	Value float64
	Color string
}

// Segment is one stacked bar made of two shares of the same whole.
type Segment struct {
	Label  string
	Bottom float64
	Top    float64
}

func header(sb *strings.Builder, title string) {
	fmt.Fprintf(sb, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg" role="img" aria-label="%s">`,
		width, height, width, height, html.EscapeString(title))
	sb.WriteString(`<rect width="100%" height="100%" fill="#ffffff" />`)
	fmt.Fprintf(sb, `<text x="%d" y="30" fill="#111827" font-family="Arial" font-size="20" text-anchor="middle">%s</text>`,
		width/2, html.EscapeString(title))
}

func footer(sb *strings.Builder) {
	baseline := height - bottomPadding
	fmt.Fprintf(sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#374151" stroke-width="2" />`, padding, baseline, width-padding, baseline)
	sb.WriteString(`</svg>`)
}

func empty(sb *strings.Builder) {
	fmt.Fprintf(sb, `<text x="%d" y="%d" fill="#6b7280" font-family="Arial" font-size="14" text-anchor="middle">No data</text>`, width/2, height/2)
}

func label(sb *strings.Builder, x int, text string) {
	y := height - bottomPadding + 15
	fmt.Fprintf(sb, `<text x="%d" y="%d" fill="#111827" font-family="Arial" font-size="11" text-anchor="end" transform="rotate(-45 %d %d)">%s</text>`,
		x, y, x, y, html.EscapeString(text))
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// BarChart renders bars scaled against the largest value. At most 30 bars are drawn.
func BarChart(title string, bars []Bar, color string) string {
	var sb strings.Builder
	header(&sb, title)

	if len(bars) > maxBars {
		bars = bars[:maxBars]
	}
	if len(bars) == 0 {
		empty(&sb)
		footer(&sb)
		return sb.String()
	}

	var maxVal float64
	for _, b := range bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
	}

	barWidth := (width - 2*padding) / len(bars)
	maxBarHeight := height - padding - bottomPadding
	for i, b := range bars {
		barHeight := 0
		if maxVal > 0 && b.Value > 0 {
			barHeight = int(b.Value / maxVal * float64(maxBarHeight))
		}
		x := padding + i*barWidth
		y := height - bottomPadding - barHeight
		fill := color
		if b.Color != "" {
			fill = b.Color
		}

		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" rx="3"><title>%s: %s</title></rect>`,
			x+3, y, max(barWidth-6, 1), barHeight, fill, html.EscapeString(b.Label), formatValue(b.Value))
		label(&sb, x+barWidth/2, b.Label)
		fmt.Fprintf(&sb, `<text x="%d" y="%d" fill="#111827" font-family="Arial" font-size="10" text-anchor="middle">%s</text>`,
			x+barWidth/2, y-5, formatValue(b.Value))
	}

	footer(&sb)
	return sb.String()
}

// StackedPercentChart renders 100% stacked bars, Bottom below Top.
func StackedPercentChart(title string, segments []Segment, bottomName, topName, bottomColor, topColor string) string {
	var sb strings.Builder
	header(&sb, title)

	// legend
	fmt.Fprintf(&sb, `<rect x="%d" y="42" width="12" height="12" fill="%s" /><text x="%d" y="52" fill="#111827" font-family="Arial" font-size="12">%s</text>`,
		width-220, bottomColor, width-203, html.EscapeString(bottomName))
	fmt.Fprintf(&sb, `<rect x="%d" y="42" width="12" height="12" fill="%s" /><text x="%d" y="52" fill="#111827" font-family="Arial" font-size="12">%s</text>`,
		width-120, topColor, width-103, html.EscapeString(topName))

	if len(segments) > maxBars {
		segments = segments[len(segments)-maxBars:]
	}
	if len(segments) == 0 {
		empty(&sb)
		footer(&sb)
		return sb.String()
	}

	barWidth := (width - 2*padding) / len(segments)
	maxBarHeight := height - padding - bottomPadding - 20
	baseline := height - bottomPadding
	for i, s := range segments {
		total := s.Bottom + s.Top
		bottomHeight, topHeight := 0, 0
		if total > 0 {
			bottomHeight = int(s.Bottom / total * float64(maxBarHeight))
			topHeight = int(s.Top / total * float64(maxBarHeight))
		}
		x := padding + i*barWidth

		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"><title>%s %s: %s%%</title></rect>`,
			x+3, baseline-bottomHeight, max(barWidth-6, 1), bottomHeight, bottomColor,
			html.EscapeString(s.Label), html.EscapeString(bottomName), formatValue(s.Bottom))
		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"><title>%s %s: %s%%</title></rect>`,
			x+3, baseline-bottomHeight-topHeight, max(barWidth-6, 1), topHeight, topColor,
			html.EscapeString(s.Label), html.EscapeString(topName), formatValue(s.Top))
		label(&sb, x+barWidth/2, s.Label)
	}

	footer(&sb)
	return sb.String()
}

// TeamWinChart plots win percentage per team, green above 50% and red otherwise.
func TeamWinChart(teams []models.Team) string {
	bars := make([]Bar, 0, len(teams))
	for _, t := range teams {
		color := ColorNegative
		if logic.WinClass(t.WinPercentage.Float()) == "positive" {
			color = ColorPositive
		}
		bars = append(bars, Bar{Label: t.TeamName, Value: logic.Round2(t.WinPercentage.Float()), Color: color})
	}
	return BarChart("Win Percentage by Team", bars, ColorPositive)
}

// VenueChart plots matches hosted per venue.
func VenueChart(venues []models.Venue, limit int) string {
	if limit > 0 && len(venues) > limit {
		venues = venues[:limit]
	}
	bars := make([]Bar, 0, len(venues))
	for _, v := range venues {
		bars = append(bars, Bar{Label: v.Venue, Value: float64(v.MatchesHosted.Int())})
	}
	return BarChart("Matches Hosted by Venue", bars, ColorNeutral)
}

// TossTrendChart plots the bat/field split of toss decisions per season.
func TossTrendChart(summary logic.TossTrendSummary) string {
	segments := make([]Segment, 0, len(summary.Seasons))
	for _, s := range summary.Seasons {
		segments = append(segments, Segment{
			Label:  strconv.Itoa(s.Season),
			Bottom: logic.Round2(s.ChoseBatPercentage),
			Top:    logic.Round2(s.ChoseFieldPercentage),
		})
	}
	return StackedPercentChart("Toss Decisions by Season", segments, "Bat first", "Field first", ColorBat, ColorField)
}
