// Package logtail reads the tail of the application log and renders zap
// entries for the terminal.
//
// # Reading
//
// Read uses a ring buffer of maxLines so memory stays O(maxLines) no matter
// how large the log grows. Lines come back in file order.
//
//	lines, err := logtail.Read(cfg.LogPath(), 200)
//
// # Formatting
//
// The production logger writes one JSON object per line. Parse decodes the
// ts, level and msg keys and keeps the remaining keys as fields; caller and
// stacktrace are dropped. Format prints "date time LEVEL msg k=v ..." with
// fields sorted by key. Lines that are not JSON (the debug console encoder)
// are passed through unchanged, with the level guessed from the tab-separated
// column.
package logtail
