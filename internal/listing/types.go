package listing

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultCurrency       = "INR"
	exportTimestampLayout = "2006-01-02 15:04:05"
)

// Dataset mirrors the exported internships document.
type Dataset struct {
	TotalInternships int          `json:"totalInternships"`
	LastUpdated      string       `json:"lastUpdated"`
	Internships      []Internship `json:"internships"`

	// Skipped counts records dropped by Sanitize.
	Skipped int `json:"-"`
}

// Internship is one posting as written by the exporter.
type Internship struct {
	ID            string   `json:"id"`
	Title         string   `json:"title" validate:"required"`
	Company       string   `json:"company" validate:"required"`
	URL           string   `json:"url" validate:"required"`
	Logo          string   `json:"logo"`
	Type          string   `json:"type"`
	WorkFromHome  bool     `json:"workFromHome"`
	Location      string   `json:"location"`
	Skills        []string `json:"skills"`
	Duration      string   `json:"duration"`
	Deadline      string   `json:"deadline"`
	ScrapedAt     string   `json:"scrapedAt"`
	FirstSeen     string   `json:"firstSeen"`
	Views         *int64   `json:"views"`
	Registrations *int64   `json:"registrations"`
	Stipend       *Stipend `json:"stipend"`
}

// Stipend is an optional compensation range.
type Stipend struct {
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Currency string   `json:"currency"`
}

var validate = validator.New()

// Validate reports whether the record carries the fields a card needs.
func (i Internship) Validate() error {
	return validate.Struct(i)
}

// ParsedScrapedAt returns the scrape timestamp, or the zero time when it is
// missing or unparsable.
func (i Internship) ParsedScrapedAt() time.Time {
	return ParseTime(i.ScrapedAt)
}

// ParsedDeadline returns the deadline as time.Time when possible.
func (i Internship) ParsedDeadline() time.Time {
	return ParseTime(i.Deadline)
}

// ViewCount returns views, treating a missing value as zero.
func (i Internship) ViewCount() int64 {
	if i.Views == nil {
		return 0
	}
	return *i.Views
}

// RegistrationCount returns registrations, treating a missing value as zero.
func (i Internship) RegistrationCount() int64 {
	if i.Registrations == nil {
		return 0
	}
	return *i.Registrations
}

// CurrencyCode returns the stipend currency, defaulting to INR.
func (s *Stipend) CurrencyCode() string {
	if s == nil {
		return defaultCurrency
	}
	if code := strings.TrimSpace(s.Currency); code != "" {
		return code
	}
	return defaultCurrency
}

// MinAmount returns the lower bound, zero when absent.
func (s *Stipend) MinAmount() float64 {
	if s == nil || s.Min == nil {
		return 0
	}
	return *s.Min
}

// MaxAmount returns the upper bound, zero when absent.
func (s *Stipend) MaxAmount() float64 {
	if s == nil || s.Max == nil {
		return 0
	}
	return *s.Max
}

// Effective is the amount used for ranking: max when set, else min, else 0.
// A zero bound counts as unset, matching how the exporter writes nulls.
func (s *Stipend) Effective() float64 {
	if v := s.MaxAmount(); v != 0 {
		return v
	}
	return s.MinAmount()
}

// Decode reads a dataset document. A missing internships array decodes to an
// empty slice.
func Decode(r io.Reader) (Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	if ds.Internships == nil {
		ds.Internships = []Internship{}
	}
	return ds, nil
}

// Sanitize drops records that fail Validate and returns them separately so
// callers can log them.
func (d Dataset) Sanitize() (Dataset, []Internship) {
	kept := make([]Internship, 0, len(d.Internships))
	var dropped []Internship
	for _, item := range d.Internships {
		if err := item.Validate(); err != nil {
			dropped = append(dropped, item)
			continue
		}
		kept = append(kept, item)
	}
	d.Internships = kept
	d.Skipped += len(dropped)
	return d, dropped
}

// ParsedLastUpdated returns the document timestamp as time.Time when possible.
func (d Dataset) ParsedLastUpdated() time.Time {
	return ParseTime(d.LastUpdated)
}

// ParseTime accepts the timestamp shapes the exporter emits. Unknown input
// yields the zero time.
func ParseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	for _, layout := range []string{exportTimestampLayout, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t
	}
	return time.Time{}
}
