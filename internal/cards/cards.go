package cards

import (
	"strconv"
	"strings"
	"time"

	"github.com/five82/internboard/internal/listing"
	"github.com/five82/internboard/internal/state"
)

const (
	// DefaultTypeLabel is shown when an item carries no type.
	DefaultTypeLabel = "Internship"
	// PlaceholderGlyph stands in for a logo when no URL is given.
	PlaceholderGlyph = "?"
	// BlankGlyph stands in for a logo that failed to load.
	BlankGlyph = " "

	maxLocation = 50
	maxSkills   = 5
)

// Logo describes the company image for a card. Surfaces that cannot load
// URL show Glyph instead.
type Logo struct {
	URL   string
	Glyph string
}

// Card is the display record for one internship. Empty strings mean the
// field is omitted.
type Card struct {
	Title         string
	Company       string
	URL           string
	Logo          Logo
	TypeLabel     string
	WorkFromHome  bool
	Stipend       string
	Location      string
	Duration      string
	Deadline      string
	Skills        []string
	Views         string
	Registrations string
}

// NewCard projects item into a Card using now for relative dates.
func NewCard(item listing.Internship, now time.Time) Card {
	c := Card{
		Title:        item.Title,
		Company:      item.Company,
		URL:          item.URL,
		TypeLabel:    strings.TrimSpace(item.Type),
		WorkFromHome: item.WorkFromHome,
		Location:     Truncate(strings.TrimSpace(item.Location), maxLocation),
		Duration:     strings.TrimSpace(item.Duration),
		Skills:       skillTags(item.Skills),
	}
	if c.TypeLabel == "" {
		c.TypeLabel = DefaultTypeLabel
	}

	logo := strings.TrimSpace(item.Logo)
	if logo != "" {
		c.Logo = Logo{URL: logo, Glyph: BlankGlyph}
	} else {
		c.Logo = Logo{Glyph: PlaceholderGlyph}
	}

	// The badge follows the presence of the stipend object, not its amounts.
	if item.Stipend != nil {
		c.Stipend = FormatStipend(item.Stipend)
	}
	if strings.TrimSpace(item.Deadline) != "" {
		c.Deadline = FormatDate(item.Deadline, now)
	}
	if v := item.ViewCount(); v > 0 {
		c.Views = FormatAmount(float64(v))
	}
	if r := item.RegistrationCount(); r > 0 {
		c.Registrations = FormatAmount(float64(r))
	}
	return c
}

// Build projects every item, in order.
func Build(items []listing.Internship, now time.Time) []Card {
	out := make([]Card, 0, len(items))
	for _, item := range items {
		out = append(out, NewCard(item, now))
	}
	return out
}

func skillTags(skills []string) []string {
	tags := make([]string, 0, min(len(skills), maxSkills)+1)
	for _, s := range skills {
		if len(tags) == maxSkills {
			break
		}
		tags = append(tags, s)
	}
	if extra := len(skills) - maxSkills; extra > 0 {
		tags = append(tags, "+"+strconv.Itoa(extra)+" more")
	}
	return tags
}

// Status is the display state of the listing; exactly one is active.
type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusEmpty
	StatusResults
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusEmpty:
		return "empty"
	case StatusResults:
		return "results"
	default:
		return "unknown"
	}
}

// Page is the complete view model for one render.
type Page struct {
	Status          Status
	ShowResultsInfo bool
	ResultsCount    int
	TotalCount      int
	LastUpdated     string
	Cards           []Card
	Err             error
}

// NewPage derives the page from the reducer state. Header metadata is
// populated whenever the dataset loaded, including when the view is empty.
func NewPage(s state.State, now time.Time) Page {
	switch s.Phase {
	case state.PhaseLoading:
		return Page{Status: StatusLoading}
	case state.PhaseFailed:
		return Page{Status: StatusError, Err: s.Err}
	}

	p := Page{
		TotalCount:   s.Dataset.TotalInternships,
		LastUpdated:  FormatDate(s.Dataset.LastUpdated, now),
		ResultsCount: len(s.View),
	}
	if len(s.View) == 0 {
		p.Status = StatusEmpty
		return p
	}
	p.Status = StatusResults
	p.ShowResultsInfo = true
	p.Cards = Build(s.View, now)
	return p
}
