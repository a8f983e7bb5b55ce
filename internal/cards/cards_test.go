package cards

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/internboard/internal/listing"
	"github.com/five82/internboard/internal/state"
)

var now = time.Date(2026, time.January, 24, 12, 0, 0, 0, time.UTC)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int64) *int64       { return &v }

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		150000: "1.5L",
		100000: "1.0L",
		2500:   "2.5K",
		1000:   "1.0K",
		50:     "50",
		0:      "0",
		999:    "999",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatAmount(in), "FormatAmount(%v)", in)
	}
}

func TestFormatStipend(t *testing.T) {
	cases := []struct {
		name string
		in   *listing.Stipend
		want string
	}{
		{"nil", nil, "Unpaid"},
		{"no amounts", &listing.Stipend{Currency: "INR"}, "Unpaid"},
		{"zero amounts", &listing.Stipend{Min: floatPtr(0), Max: floatPtr(0)}, "Unpaid"},
		{"range", &listing.Stipend{Min: floatPtr(5000), Max: floatPtr(10000), Currency: "INR"}, "₹5.0K - ₹10.0K"},
		{"equal bounds", &listing.Stipend{Min: floatPtr(8000), Max: floatPtr(8000)}, "₹8.0K"},
		{"usd max only", &listing.Stipend{Max: floatPtr(100), Currency: "USD"}, "$100"},
		{"min only", &listing.Stipend{Min: floatPtr(150000)}, "₹1.5L"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatStipend(tc.in))
		})
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", "N/A"},
		{"   ", "N/A"},
		{"not a date", "N/A"},
		{"2026-01-24T08:00:00Z", "Today"},
		{"2026-01-23T06:00:00Z", "Yesterday"},
		{"2026-01-21T12:00:00Z", "3 days ago"},
		{"2026-01-17T12:00:00Z", "1 weeks ago"},
		{"2025-12-26T12:00:00Z", "4 weeks ago"},
		{"2025-12-25T12:00:00Z", "Dec 25, 2025"},
		{"2026-01-27T12:00:00Z", "3 days ago"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDate(tc.raw, now), "FormatDate(%q)", tc.raw)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 50))
	long := strings.Repeat("x", 60)
	got := Truncate(long, 50)
	assert.Equal(t, strings.Repeat("x", 50)+"...", got)
	assert.Equal(t, "ééé...", Truncate("éééé", 3))
}

// Dev Intern with a full record.
func TestNewCard_FullRecord(t *testing.T) {
	item := listing.Internship{
		Title: "Dev Intern", Company: "Acme", URL: "https://x", Type: "Internship",
		WorkFromHome: true,
		Stipend:      &listing.Stipend{Min: floatPtr(5000), Max: floatPtr(10000), Currency: "INR"},
		Skills:       []string{"js", "css", "html", "react", "node", "vue"},
	}
	c := NewCard(item, now)
	assert.Equal(t, "₹5.0K - ₹10.0K", c.Stipend)
	assert.Equal(t, []string{"js", "css", "html", "react", "node", "+1 more"}, c.Skills)
	assert.True(t, c.WorkFromHome)
	assert.Equal(t, "Internship", c.TypeLabel)
	assert.Equal(t, Logo{Glyph: PlaceholderGlyph}, c.Logo)
}

func TestNewCard_OptionalFieldsOmitted(t *testing.T) {
	c := NewCard(listing.Internship{Title: "T", Company: "C", URL: "https://c"}, now)
	assert.Empty(t, c.Stipend, "no stipend object means no badge")
	assert.Equal(t, DefaultTypeLabel, c.TypeLabel)
	assert.Empty(t, c.Deadline)
	assert.Empty(t, c.Duration)
	assert.Empty(t, c.Views)
	assert.Empty(t, c.Registrations)
	assert.Empty(t, c.Skills)
	assert.False(t, c.WorkFromHome)
}

func TestNewCard_Details(t *testing.T) {
	item := listing.Internship{
		Title: "T", Company: "C", URL: "https://c", Type: "Job",
		Logo:          "https://img/logo.png",
		Location:      strings.Repeat("Bengaluru ", 8),
		Duration:      "3 Months",
		Deadline:      "2026-01-22",
		Views:         intPtr(2500),
		Registrations: intPtr(0),
		Stipend:       &listing.Stipend{Currency: "USD", Max: floatPtr(100)},
	}
	c := NewCard(item, now)
	assert.Equal(t, "$100", c.Stipend)
	assert.Equal(t, "Job", c.TypeLabel)
	assert.Equal(t, Logo{URL: "https://img/logo.png", Glyph: BlankGlyph}, c.Logo)
	assert.Len(t, []rune(c.Location), 53)
	assert.True(t, strings.HasSuffix(c.Location, "..."))
	assert.Equal(t, "3 Months", c.Duration)
	assert.Equal(t, "2 days ago", c.Deadline)
	assert.Equal(t, "2.5K", c.Views)
	assert.Empty(t, c.Registrations, "zero registrations are omitted")
}

func TestNewCard_EmptyStipendObjectKeepsBadge(t *testing.T) {
	c := NewCard(listing.Internship{Title: "T", Company: "C", URL: "u", Stipend: &listing.Stipend{}}, now)
	assert.Equal(t, Unpaid, c.Stipend)
}

func TestNewPage_Results(t *testing.T) {
	ds := listing.Dataset{
		TotalInternships: 1200,
		LastUpdated:      "2026-01-23T09:00:00Z",
		Internships: []listing.Internship{
			{Title: "A", Company: "Acme", URL: "https://a"},
			{Title: "B", Company: "Beta", URL: "https://b"},
		},
	}
	p := NewPage(state.Reduce(state.Initial(), state.Loaded{Dataset: ds}), now)
	assert.Equal(t, StatusResults, p.Status)
	assert.True(t, p.ShowResultsInfo)
	assert.Equal(t, 2, p.ResultsCount)
	assert.Equal(t, 1200, p.TotalCount)
	assert.Equal(t, "Yesterday", p.LastUpdated)
	require.Len(t, p.Cards, 2)
	assert.Equal(t, "A", p.Cards[0].Title)
}

func TestNewPage_EmptyKeepsHeader(t *testing.T) {
	ds := listing.Dataset{TotalInternships: 57, LastUpdated: "2026-01-24T01:00:00Z"}
	p := NewPage(state.Reduce(state.Initial(), state.Loaded{Dataset: ds}), now)
	assert.Equal(t, StatusEmpty, p.Status)
	assert.False(t, p.ShowResultsInfo)
	assert.Empty(t, p.Cards)
	assert.Equal(t, 57, p.TotalCount)
	assert.Equal(t, "Today", p.LastUpdated)
}

func TestNewPage_LoadingAndFailed(t *testing.T) {
	p := NewPage(state.Initial(), now)
	assert.Equal(t, StatusLoading, p.Status)
	assert.Empty(t, p.Cards)

	boom := errors.New("status 503")
	p = NewPage(state.Reduce(state.Initial(), state.LoadFailed{Err: boom}), now)
	assert.Equal(t, StatusError, p.Status)
	assert.False(t, p.ShowResultsInfo)
	assert.Empty(t, p.Cards)
	assert.ErrorIs(t, p.Err, boom)
	assert.Equal(t, "error", p.Status.String())
}
