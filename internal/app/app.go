package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/internboard/internal/board"
	"github.com/five82/internboard/internal/config"
	"github.com/five82/internboard/internal/feed"
	"github.com/five82/internboard/internal/logging"
	"github.com/five82/internboard/internal/prefs"
	"github.com/five82/internboard/internal/state"
	"github.com/five82/internboard/internal/ui"
)

// Options configure the internboard application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/internboard/prefs.toml
	Source     string // overrides data_source from the config
}

// Runtime holds the dependencies every command needs.
type Runtime struct {
	Config config.Config
	Logger *zap.Logger
	Feed   *feed.Client
}

// Boot loads the config, opens the log file and builds the dataset client.
func Boot(opts Options) (*Runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if src := strings.TrimSpace(opts.Source); src != "" {
		cfg.DataSource = src
	}

	logger, err := logging.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	client, err := feed.NewClient(cfg.DataSource,
		feed.WithTimeout(cfg.RequestTimeout),
		feed.WithLogger(logger.Named("feed")),
	)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("init feed client: %w", err)
	}

	logger.Debug("runtime ready",
		zap.String("source", client.Source()),
		zap.String("log_level", cfg.LogLevel))
	return &Runtime{Config: cfg, Logger: logger, Feed: client}, nil
}

// Close flushes the logger.
func (r *Runtime) Close() {
	if r == nil || r.Logger == nil {
		return
	}
	_ = r.Logger.Sync()
}

// Run boots internboard and runs the TUI until the user quits or the context
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := Boot(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	store, err := prefs.Open(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("open prefs: %w", err)
	}
	userPrefs, err := store.Load()
	if err != nil {
		// A broken prefs file only costs the saved theme.
		rt.Logger.Warn("prefs unreadable, using defaults", zap.String("path", store.Path()), zap.Error(err))
	}

	rt.Logger.Info("starting tui", zap.String("source", rt.Feed.Source()))
	return ui.Run(ui.Options{
		Context:  ctx,
		Fetcher:  rt.Feed,
		Source:   rt.Feed.Source(),
		Prefs:    store,
		Theme:    userPrefs.Theme,
		Debounce: rt.Config.SearchDebounce,
		Logger:   rt.Logger.Named("ui"),
	})
}

// Snapshot loads the dataset once and applies f, the same way the TUI does.
// On failure the returned state is in PhaseFailed and the error wraps
// feed.ErrLoadFailed.
func Snapshot(ctx context.Context, fetcher feed.DatasetFetcher, f board.Filter) (state.State, error) {
	s := state.Initial()
	ds, err := fetcher.FetchDataset(ctx)
	if err != nil {
		return state.Reduce(s, state.LoadFailed{Err: err}), err
	}
	return state.Apply(s,
		state.Loaded{Dataset: ds},
		state.SearchChanged{Term: f.Search},
		state.TypeChanged{Type: f.Type},
		state.LocationChanged{Location: orDefault(f.Location, board.LocationAny)},
		state.SortChanged{Key: orDefault(f.Sort, board.SortRecent)},
	), nil
}

func orDefault[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}
