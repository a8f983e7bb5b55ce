// Package ui implements the terminal listing with Bubble Tea.
//
// # Layout
//
//	┌ header: total count, last updated, results count, data source ┐
//	│ filter bar: / search [x clear]  t type  w location  s sort     │
//	│                                                                │
//	│ cards (viewport), one box per internship, selection highlighted│
//	│                                                                │
//	└ status bar: key hints or a transient message                  ┘
//
// The body shows exactly one of four panels: loading, error, empty, or the
// cards. Which one is decided by cards.Page.Status.
//
// # State
//
// Model holds a state.State and sends every filter edit through
// state.Reduce. The card list is rebuilt from cards.NewPage after each
// event; it is never patched.
//
// # Search Debounce
//
// Each keystroke in the search input bumps searchSeq and schedules a
// tea.Tick carrying that seq. When the tick fires it only applies if its seq
// is still current, so a newer keystroke supersedes any pending search.
// Enter applies immediately. Clear and reset also bump searchSeq, which
// cancels whatever was pending.
//
// # Side Effects
//
// enter and a open the selected posting with pkg/browser, y copies its link
// with atotto/clipboard, and T cycles the theme and saves it through
// prefs.Store. All three run as tea.Cmd and report back with a status bar
// message. Options can replace them for tests.
package ui
