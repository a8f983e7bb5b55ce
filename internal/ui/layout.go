package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops labels.
	LayoutCompactWidth = 100

	// LayoutMinCardWidth keeps cards readable on narrow terminals.
	LayoutMinCardWidth = 40
)

// Chrome occupies the header, the filter bar and the status bar.
const chromeLines = 3

// Timing constants.
const (
	// DefaultSearchDebounce is the quiet period before a search is applied.
	DefaultSearchDebounce = 300 * time.Millisecond

	// FlashDuration is how long status bar messages stay visible.
	FlashDuration = 3 * time.Second
)
