package charts

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

// wellFormed checks the document parses as XML.
func wellFormed(t *testing.T, svg string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(svg))
	for {
		_, err := dec.Token()
		if err != nil {
			require.Equal(t, "EOF", err.Error())
			return
		}
	}
}

func TestBarChart(t *testing.T) {
	svg := BarChart("Wins", []Bar{{Label: "A", Value: 60}, {Label: "B", Value: 80}}, "#000")

	wellFormed(t, svg)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Equal(t, 2, strings.Count(svg, `fill="#000" rx="3"`))
	assert.Contains(t, svg, ">80<")
	// tallest bar spans the full plot height
	assert.Contains(t, svg, `height="270"`)
}

func TestBarChart_Deterministic(t *testing.T) {
	bars := []Bar{{Label: "Eden Gardens", Value: 77}, {Label: "Wankhede", Value: 82.5}}
	assert.Equal(t, BarChart("x", bars, "#111"), BarChart("x", bars, "#111"))
}

func TestBarChart_EscapesLabels(t *testing.T) {
	svg := BarChart("<Teams & Co>", []Bar{{Label: "Kings XI <Punjab> & co", Value: 1}}, "#000")
	wellFormed(t, svg)
	assert.NotContains(t, svg, "<Punjab>")
	assert.Contains(t, svg, "&lt;Punjab&gt; &amp; co")
}

func TestBarChart_EmptyAndZero(t *testing.T) {
	svg := BarChart("Nothing", nil, "#000")
	wellFormed(t, svg)
	assert.Contains(t, svg, "No data")

	zeros := BarChart("Zeros", []Bar{{Label: "A", Value: 0}, {Label: "B", Value: 0}}, "#000")
	wellFormed(t, zeros)
	assert.NotContains(t, zeros, "NaN")
}

func TestTeamWinChart_ColorsByWinClass(t *testing.T) {
	svg := TeamWinChart([]models.Team{
		{TeamName: "A", WinPercentage: 60},
		{TeamName: "B", WinPercentage: 40},
	})
	wellFormed(t, svg)
	assert.Contains(t, svg, `fill="`+ColorPositive+`" rx="3"><title>A: 60</title>`)
	assert.Contains(t, svg, `fill="`+ColorNegative+`" rx="3"><title>B: 40</title>`)
}

func TestVenueChart_Limit(t *testing.T) {
	venues := []models.Venue{
		{Venue: "V1", MatchesHosted: 10},
		{Venue: "V2", MatchesHosted: 9},
		{Venue: "V3", MatchesHosted: 8},
	}
	svg := VenueChart(venues, 2)
	assert.Contains(t, svg, "V2")
	assert.NotContains(t, svg, "V3")
}

func TestTossTrendChart(t *testing.T) {
	summary := logic.SummarizeTossTrends([]models.TossTrend{
		{Season: 2019, ChoseBatPercentage: 25, ChoseFieldPercentage: 75},
		{Season: 2018, ChoseBatPercentage: 50, ChoseFieldPercentage: 50},
	})
	svg := TossTrendChart(summary)

	wellFormed(t, svg)
	assert.Less(t, strings.Index(svg, ">2018<"), strings.Index(svg, ">2019<"))
	assert.Contains(t, svg, "2019 Field first: 75%")
	assert.Contains(t, svg, "Bat first")

	assert.Contains(t, TossTrendChart(logic.TossTrendSummary{}), "No data")
}
