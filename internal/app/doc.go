// Package app is the composition root for internboard.
//
// # Overview
//
// Boot wires configuration, logging and the dataset client together. Run
// adds the preferences store and starts the TUI. Snapshot is the
// non-interactive path used by the list, digest and export commands: it
// performs the same single load and folds the filter through state.Reduce,
// so every surface shows the same view for the same filter.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Boot()     │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      TOML file, then INTERNBOARD_* env
//	       ├─────> logging.New()      zap logger on <log_dir>/internboard.log
//	       └─────> feed.NewClient()   URL or file data source
//
//	Run():      Boot ─> prefs.Open ─> ui.Run (blocks)
//	Snapshot(): FetchDataset ─> state.Loaded ─> filter events ─> state.State
//
// # Error Handling
//
// Startup problems (malformed config, unwritable log directory, bad data
// source) are returned from Boot and abort the command. A load failure is not
// a startup problem: the TUI shows its error panel, and Snapshot returns the
// failed state together with an error wrapping feed.ErrLoadFailed.
//
// There is exactly one load per process. Nothing polls or retries.
package app
