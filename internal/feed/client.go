package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/five82/internboard/internal/listing"
)

// ErrLoadFailed wraps every retrieval failure: transport errors, non-success
// responses and unparsable bodies.
var ErrLoadFailed = errors.New("load failed")

// DatasetFetcher is implemented by *Client and can be faked in tests.
type DatasetFetcher interface {
	FetchDataset(ctx context.Context) (listing.Dataset, error)
}

// Ensure Client implements DatasetFetcher at compile time.
var _ DatasetFetcher = (*Client)(nil)

const (
	// DefaultSource is the dataset path the exporter writes next to the page.
	DefaultSource    = "data/internships.json"
	defaultUserAgent = "internboard/0.1"
	requestTimeout   = 30 * time.Second
)

// Client retrieves the dataset from an HTTP(S) URL or a local file.
type Client struct {
	remote    *url.URL
	path      string
	http      *http.Client
	userAgent string
	logger    *zap.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout overrides the HTTP request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient builds a Client for source. Blank sources use DefaultSource.
func NewClient(source string, opts ...Option) (*Client, error) {
	c := &Client{
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
		logger:    zap.NewNop(),
	}
	remote, path, err := parseSource(source)
	if err != nil {
		return nil, err
	}
	c.remote = remote
	c.path = path
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Source returns the URL or path the client reads from.
func (c *Client) Source() string {
	if c.remote != nil {
		return c.remote.String()
	}
	return c.path
}

// FetchDataset performs the single retrieval of the dataset. There is no retry.
func (c *Client) FetchDataset(ctx context.Context) (listing.Dataset, error) {
	if c == nil {
		return listing.Dataset{}, fmt.Errorf("%w: client is nil", ErrLoadFailed)
	}
	start := time.Now()
	var (
		ds  listing.Dataset
		err error
	)
	if c.remote != nil {
		ds, err = c.fetchRemote(ctx)
	} else {
		ds, err = c.readFile()
	}
	if err != nil {
		c.logger.Error("dataset load failed", zap.String("source", c.Source()), zap.Error(err))
		return listing.Dataset{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	ds, dropped := ds.Sanitize()
	for _, item := range dropped {
		c.logger.Warn("skipping internship without title, company or url",
			zap.String("id", item.ID),
			zap.String("title", item.Title))
	}
	c.logger.Info("dataset loaded",
		zap.String("source", c.Source()),
		zap.Int("internships", len(ds.Internships)),
		zap.Int("skipped", ds.Skipped),
		zap.Duration("elapsed", time.Since(start)))
	return ds, nil
}

func (c *Client) fetchRemote(ctx context.Context) (listing.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.remote.String(), nil)
	if err != nil {
		return listing.Dataset{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return listing.Dataset{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return listing.Dataset{}, fmt.Errorf("%s returned status %d", c.remote.Redacted(), resp.StatusCode)
	}
	return listing.Decode(resp.Body)
}

func (c *Client) readFile() (listing.Dataset, error) {
	file, err := os.Open(c.path)
	if err != nil {
		return listing.Dataset{}, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = file.Close() }()
	return listing.Decode(file)
}

func parseSource(source string) (*url.URL, string, error) {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		trimmed = DefaultSource
	}
	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return nil, strings.TrimPrefix(trimmed, "file://"), nil
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, "", fmt.Errorf("parse data source %q: %w", source, err)
	}
	if u.Host == "" {
		return nil, "", fmt.Errorf("parse data source %q: missing host", source)
	}
	return u, "", nil
}
