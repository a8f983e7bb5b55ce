// Package state holds the listing state and the reducer that evolves it.
//
// # Overview
//
// The listing has exactly two derived collections: the authoritative dataset
// and the filtered, sorted view. Both live in State and are replaced, never
// mutated, by Reduce:
//
//	s := state.Initial()                         // PhaseLoading, default filter
//	s = state.Reduce(s, state.Loaded{Dataset: ds}) // PhaseReady, view computed
//	s = state.Reduce(s, state.SearchChanged{Term: "react"})
//
// # Events
//
//   - Loaded / LoadFailed: the outcome of the single retrieval. Only the first
//     outcome is applied; later ones are ignored because the loader never
//     re-runs.
//   - SearchChanged, TypeChanged, LocationChanged, SortChanged: filter edits.
//   - ResetRequested: restore board.DefaultFilter.
//
// # Phases
//
// PhaseLoading, PhaseFailed and PhaseReady are mutually exclusive. Filter
// events are accepted in every phase, but the view is only computed in
// PhaseReady. A failed load leaves the dataset empty and the view nil.
//
// # Concurrency
//
// State is a plain value. The Bubble Tea loop owns the only copy and is the
// only writer, so there is no locking.
package state
