package state

import (
	"slices"

	"github.com/five82/internboard/internal/board"
	"github.com/five82/internboard/internal/listing"
)

// Phase tracks the lifecycle of the single dataset retrieval.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseFailed
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseFailed:
		return "failed"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// State is everything the presentation layer needs. Values are treated as
// immutable; Reduce returns a new State.
type State struct {
	Phase   Phase
	Dataset listing.Dataset
	Filter  board.Filter
	View    []listing.Internship
	Err     error

	types []string
}

// Initial returns the state before the dataset has been requested.
func Initial() State {
	return State{Phase: PhaseLoading, Filter: board.DefaultFilter()}
}

// Event is anything Reduce understands.
type Event interface {
	event()
}

// Loaded carries a successfully retrieved dataset.
type Loaded struct{ Dataset listing.Dataset }

// LoadFailed records the retrieval error.
type LoadFailed struct{ Err error }

// SearchChanged replaces the free-text search term.
type SearchChanged struct{ Term string }

// TypeChanged selects a type ("" for any).
type TypeChanged struct{ Type string }

// LocationChanged selects the location filter.
type LocationChanged struct{ Location board.Location }

// SortChanged selects the sort key.
type SortChanged struct{ Key board.SortKey }

// ResetRequested restores the default filter state.
type ResetRequested struct{}

func (Loaded) event()          {}
func (LoadFailed) event()      {}
func (SearchChanged) event()   {}
func (TypeChanged) event()     {}
func (LocationChanged) event() {}
func (SortChanged) event()     {}
func (ResetRequested) event()  {}

// Reduce applies ev to s. The view is fully recomputed whenever the filter
// changes after a successful load; it is never patched incrementally.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case Loaded:
		if s.Phase != PhaseLoading {
			return s
		}
		s.Phase = PhaseReady
		s.Err = nil
		s.Dataset = ev.Dataset
		s.Dataset.Internships = slices.Clone(ev.Dataset.Internships)
		s.types = board.Types(s.Dataset.Internships)
	case LoadFailed:
		if s.Phase != PhaseLoading {
			return s
		}
		s.Phase = PhaseFailed
		s.Err = ev.Err
		s.Dataset = listing.Dataset{}
		s.View = nil
		return s
	case SearchChanged:
		s.Filter.Search = ev.Term
	case TypeChanged:
		s.Filter.Type = ev.Type
	case LocationChanged:
		s.Filter.Location = ev.Location
	case SortChanged:
		s.Filter.Sort = ev.Key
	case ResetRequested:
		s.Filter = board.DefaultFilter()
	default:
		return s
	}
	if s.Phase == PhaseReady {
		s.View = board.Compute(s.Dataset.Internships, s.Filter)
	}
	return s
}

// Types returns the type options present in the loaded dataset.
func (s State) Types() []string {
	return slices.Clone(s.types)
}

// Apply folds events into s, in order.
func Apply(s State, events ...Event) State {
	for _, ev := range events {
		s = Reduce(s, ev)
	}
	return s
}
