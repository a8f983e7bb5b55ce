package board

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/five82/internboard/internal/listing"
)

// SortKey selects the ordering of the view.
type SortKey string

const (
	SortRecent        SortKey = "recent"
	SortStipendHigh   SortKey = "stipend-high"
	SortViews         SortKey = "views"
	SortRegistrations SortKey = "registrations"
)

var sortOrder = []SortKey{SortRecent, SortStipendHigh, SortViews, SortRegistrations}

// SortKeys returns the selectable sort keys in display order.
func SortKeys() []SortKey {
	return slices.Clone(sortOrder)
}

// Label returns a short human label for the key.
func (k SortKey) Label() string {
	switch k {
	case SortRecent:
		return "Most recent"
	case SortStipendHigh:
		return "Highest stipend"
	case SortViews:
		return "Most viewed"
	case SortRegistrations:
		return "Most registrations"
	default:
		return string(k)
	}
}

// Next cycles to the following sort key. Unknown keys restart the cycle.
func (k SortKey) Next() SortKey {
	for i, key := range sortOrder {
		if key == k {
			return sortOrder[(i+1)%len(sortOrder)]
		}
	}
	return sortOrder[0]
}

// ParseSortKey validates a sort key supplied on the command line.
func ParseSortKey(value string) (SortKey, error) {
	trimmed := SortKey(strings.ToLower(strings.TrimSpace(value)))
	if trimmed == "" {
		return SortRecent, nil
	}
	if slices.Contains(sortOrder, trimmed) {
		return trimmed, nil
	}
	return "", fmt.Errorf("unknown sort key %q (want one of recent, stipend-high, views, registrations)", value)
}

// Location narrows results by work mode.
type Location string

const (
	LocationAny    Location = "any"
	LocationRemote Location = "remote-only"
)

// Label returns a short human label.
func (l Location) Label() string {
	if l == LocationRemote {
		return "Work from home"
	}
	return "Any location"
}

// Next toggles between any and remote-only.
func (l Location) Next() Location {
	if l == LocationRemote {
		return LocationAny
	}
	return LocationRemote
}

// ParseLocation validates a location filter supplied on the command line.
func ParseLocation(value string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "any":
		return LocationAny, nil
	case "remote-only", "remote", "wfh":
		return LocationRemote, nil
	}
	return "", fmt.Errorf("unknown location filter %q (want any or remote-only)", value)
}

// Filter is the user-selected filter state. The zero value of Type means any
// type.
type Filter struct {
	Search   string
	Type     string
	Location Location
	Sort     SortKey
}

// DefaultFilter returns the filter state a session starts with.
func DefaultFilter() Filter {
	return Filter{Location: LocationAny, Sort: SortRecent}
}

// IsDefault reports whether no narrowing filter is active. The sort key is
// not considered.
func (f Filter) IsDefault() bool {
	return strings.TrimSpace(f.Search) == "" && f.Type == "" && f.Location != LocationRemote
}

// Compute filters items with f and returns them in sort order. The input
// slice is never modified.
func Compute(items []listing.Internship, f Filter) []listing.Internship {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]listing.Internship, 0, len(items))
	for _, item := range items {
		if matches(item, term, f) {
			out = append(out, item)
		}
	}
	sortItems(out, f.Sort)
	return out
}

func matches(item listing.Internship, term string, f Filter) bool {
	if term != "" && !strings.Contains(searchText(item), term) {
		return false
	}
	if f.Type != "" && item.Type != f.Type {
		return false
	}
	if f.Location == LocationRemote && !item.WorkFromHome {
		return false
	}
	return true
}

func searchText(item listing.Internship) string {
	parts := make([]string, 0, 3+len(item.Skills))
	parts = append(parts, item.Title, item.Company, item.Location)
	parts = append(parts, item.Skills...)
	return strings.ToLower(strings.Join(parts, " "))
}

func sortItems(items []listing.Internship, key SortKey) {
	var compare func(a, b listing.Internship) int
	switch key {
	case SortRecent:
		compare = func(a, b listing.Internship) int {
			return b.ParsedScrapedAt().Compare(a.ParsedScrapedAt())
		}
	case SortStipendHigh:
		compare = func(a, b listing.Internship) int {
			return cmp.Compare(b.Stipend.Effective(), a.Stipend.Effective())
		}
	case SortViews:
		compare = func(a, b listing.Internship) int {
			return cmp.Compare(b.ViewCount(), a.ViewCount())
		}
	case SortRegistrations:
		compare = func(a, b listing.Internship) int {
			return cmp.Compare(b.RegistrationCount(), a.RegistrationCount())
		}
	default:
		return
	}
	slices.SortStableFunc(items, compare)
}

// Types lists the distinct non-empty type values in first-seen order.
func Types(items []listing.Internship) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range items {
		if item.Type == "" {
			continue
		}
		if _, ok := seen[item.Type]; ok {
			continue
		}
		seen[item.Type] = struct{}{}
		out = append(out, item.Type)
	}
	return out
}

// CycleType steps the type filter through "" (any) followed by types.
func CycleType(current string, types []string) string {
	if len(types) == 0 {
		return ""
	}
	if current == "" {
		return types[0]
	}
	idx := slices.Index(types, current)
	if idx < 0 || idx == len(types)-1 {
		return ""
	}
	return types[idx+1]
}
