package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/internboard/internal/listing"
)

func intPtr(v int64) *int64       { return &v }
func floatPtr(v float64) *float64 { return &v }

func titles(items []listing.Internship) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func fixture() []listing.Internship {
	return []listing.Internship{
		{
			Title: "Frontend Intern", Company: "Acme", URL: "https://a", Type: "Internship",
			Location: "Bangalore", Skills: []string{"React", "CSS"}, WorkFromHome: true,
			ScrapedAt: "2026-01-20 10:00:00", Views: intPtr(500),
			Stipend: &listing.Stipend{Min: floatPtr(5000), Max: floatPtr(10000)},
		},
		{
			Title: "Data Analyst", Company: "Beta Corp", URL: "https://b", Type: "Job",
			Location: "Mumbai", Skills: []string{"SQL", "Python"},
			ScrapedAt: "2026-01-22T10:00:00Z", Registrations: intPtr(40),
		},
		{
			Title: "Backend Intern", Company: "Gamma", URL: "https://c", Type: "Internship",
			Location: "Remote", Skills: []string{"Go"}, WorkFromHome: true,
			ScrapedAt: "garbage", Views: intPtr(2000), Registrations: intPtr(3),
			Stipend: &listing.Stipend{Min: floatPtr(15000)},
		},
		{
			Title: "Design Intern", Company: "Delta", URL: "https://d", Type: "internship",
			ScrapedAt: "2026-01-21T10:00:00Z",
			Stipend: &listing.Stipend{Max: floatPtr(15000), Currency: "USD"},
		},
	}
}

func TestCompute_DefaultsKeepEverythingSortedByRecent(t *testing.T) {
	items := fixture()
	got := Compute(items, DefaultFilter())
	require.Len(t, got, len(items))
	assert.Equal(t, []string{"Data Analyst", "Design Intern", "Frontend Intern", "Backend Intern"}, titles(got),
		"unparsable scrapedAt sorts as earliest")
	assert.Equal(t, "Frontend Intern", items[0].Title, "input must not be reordered")
}

func TestCompute_UnknownSortKeepsInputOrder(t *testing.T) {
	items := fixture()
	got := Compute(items, Filter{Sort: "bogus"})
	assert.Equal(t, titles(items), titles(got))
}

func TestCompute_EmptySet(t *testing.T) {
	got := Compute(nil, Filter{Search: "x", Type: "Job", Location: LocationRemote, Sort: SortViews})
	assert.Empty(t, got)
}

func TestCompute_SearchMatchesCombinedText(t *testing.T) {
	items := fixture()
	cases := []struct {
		term string
		want []string
	}{
		{"  REACT ", []string{"Frontend Intern"}},
		{"beta", []string{"Data Analyst"}},
		{"mumbai", []string{"Data Analyst"}},
		{"intern", []string{"Frontend Intern", "Backend Intern", "Design Intern"}},
		{"acme bangalore", []string{"Frontend Intern"}},
		{"nothing-matches", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.term, func(t *testing.T) {
			got := Compute(items, Filter{Search: tc.term})
			assert.Equal(t, tc.want, titles(got))
			needle := strings.ToLower(strings.TrimSpace(tc.term))
			for _, item := range got {
				assert.Contains(t, searchText(item), needle)
			}
		})
	}
}

func TestCompute_TypeIsExactAndCaseSensitive(t *testing.T) {
	got := Compute(fixture(), Filter{Type: "Internship"})
	assert.Equal(t, []string{"Frontend Intern", "Backend Intern"}, titles(got))
	for _, item := range got {
		assert.Equal(t, "Internship", item.Type)
	}
}

func TestCompute_RemoteOnly(t *testing.T) {
	got := Compute(fixture(), Filter{Location: LocationRemote})
	require.NotEmpty(t, got)
	for _, item := range got {
		assert.True(t, item.WorkFromHome, "%s should be work from home", item.Title)
	}
}

func TestCompute_FiltersCombineWithAnd(t *testing.T) {
	got := Compute(fixture(), Filter{Search: "intern", Type: "Internship", Location: LocationRemote, Sort: SortViews})
	assert.Equal(t, []string{"Backend Intern", "Frontend Intern"}, titles(got))
}

func TestCompute_StipendHigh(t *testing.T) {
	got := Compute(fixture(), Filter{Sort: SortStipendHigh})
	// Backend (min only 15000) and Design (max 15000) tie and keep input order.
	assert.Equal(t, []string{"Backend Intern", "Design Intern", "Frontend Intern", "Data Analyst"}, titles(got))
}

func TestCompute_ViewsNonIncreasing(t *testing.T) {
	got := Compute(fixture(), Filter{Sort: SortViews})
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].ViewCount(), got[i].ViewCount())
	}
	assert.Equal(t, []string{"Backend Intern", "Frontend Intern", "Data Analyst", "Design Intern"}, titles(got))
}

func TestCompute_Registrations(t *testing.T) {
	got := Compute(fixture(), Filter{Sort: SortRegistrations})
	assert.Equal(t, []string{"Data Analyst", "Backend Intern", "Frontend Intern", "Design Intern"}, titles(got))
}

func TestCompute_Idempotent(t *testing.T) {
	items := fixture()
	f := Filter{Search: "intern", Sort: SortStipendHigh}
	assert.Equal(t, Compute(items, f), Compute(items, f))
}

func TestTypesAndCycle(t *testing.T) {
	types := Types(fixture())
	assert.Equal(t, []string{"Internship", "Job", "internship"}, types)

	assert.Equal(t, "Internship", CycleType("", types))
	assert.Equal(t, "Job", CycleType("Internship", types))
	assert.Equal(t, "", CycleType("internship", types))
	assert.Equal(t, "", CycleType("Vanished", types))
	assert.Equal(t, "", CycleType("", nil))
}

func TestParseHelpers(t *testing.T) {
	key, err := ParseSortKey(" Views ")
	require.NoError(t, err)
	assert.Equal(t, SortViews, key)

	key, err = ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortRecent, key)

	_, err = ParseSortKey("salary")
	assert.Error(t, err)

	loc, err := ParseLocation("wfh")
	require.NoError(t, err)
	assert.Equal(t, LocationRemote, loc)

	_, err = ParseLocation("mars")
	assert.Error(t, err)

	assert.Equal(t, SortStipendHigh, SortRecent.Next())
	assert.Equal(t, SortRecent, SortRegistrations.Next())
	assert.Equal(t, LocationRemote, LocationAny.Next())
	assert.True(t, DefaultFilter().IsDefault())
}
