package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Ashfaaq98/openday-console/internal/cache"
	"github.com/Ashfaaq98/openday-console/internal/openday"
	"github.com/google/uuid"
)

// ErrUnavailable is wrapped by every load failure.
var ErrUnavailable = errors.New("event data unavailable")

// DefaultSource is the document path used when none is configured.
const DefaultSource = "OpenDay.json"

// maxDocumentSize bounds how much of a response body is read.
const maxDocumentSize = 10 << 20

// Options controls where and how the event document is fetched.
type Options struct {
	Source   string        // http(s) URL or local file path
	Timeout  time.Duration // HTTP timeout, default 15s
	Cache    cache.Cache   // optional, defaults to NullCache
	CacheTTL time.Duration // default 5m
	Logger   *log.Logger
	Debug    bool
}

// Loader fetches and parses the event document. Each Load is a single
// best-effort attempt.
type Loader struct {
	opts   Options
	client *http.Client
}

// New constructs a loader.
func New(opts Options) *Loader {
	if opts.Source == "" {
		opts.Source = DefaultSource
	}
	if opts.Timeout == 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = log.New(log.Writer(), "[loader] ", log.LstdFlags)
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache(opts.Logger)
	}
	return &Loader{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
	}
}

// Source returns the configured document location.
func (l *Loader) Source() string { return l.opts.Source }

// IsRemote reports whether the source is fetched over HTTP.
func (l *Loader) IsRemote() bool { return IsRemote(l.opts.Source) }

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Load fetches the document once and parses it. Remote documents are served
// from the cache when present. Failures are logged and returned wrapping
// ErrUnavailable.
func (l *Loader) Load(ctx context.Context) (*openday.Event, error) {
	return l.load(ctx, true)
}

// Reload is Load without the cache read; a successful fetch still refreshes
// the cache.
func (l *Loader) Reload(ctx context.Context) (*openday.Event, error) {
	return l.load(ctx, false)
}

func (l *Loader) load(ctx context.Context, useCache bool) (*openday.Event, error) {
	loadID := uuid.NewString()
	key := cache.Key(l.opts.Source)
	remote := l.IsRemote()

	if useCache && remote {
		if data, ok, err := l.opts.Cache.Get(ctx, key); err != nil {
			l.opts.Logger.Printf("load %s: cache read failed: %v", loadID, err)
		} else if ok {
			ev, err := openday.Parse(data)
			if err == nil {
				l.debugf("load %s: served %s from cache", loadID, l.opts.Source)
				return ev, nil
			}
			l.opts.Logger.Printf("load %s: ignoring unparsable cache entry: %v", loadID, err)
		}
	}

	data, err := l.fetch(ctx, loadID)
	if err != nil {
		l.opts.Logger.Printf("Could not fetch the event data (load %s): %v", loadID, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	ev, err := openday.Parse(data)
	if err != nil {
		l.opts.Logger.Printf("Could not parse the event data (load %s): %v", loadID, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if remote {
		if err := l.opts.Cache.Set(ctx, key, data, l.opts.CacheTTL); err != nil {
			l.opts.Logger.Printf("load %s: cache write failed: %v", loadID, err)
		}
	}

	l.debugf("load %s: %s has %d topics, %d programs", loadID, l.opts.Source, len(ev.Topics), ev.ProgramCount())
	return ev, nil
}

func (l *Loader) fetch(ctx context.Context, loadID string) ([]byte, error) {
	if !l.IsRemote() {
		return os.ReadFile(l.opts.Source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.opts.Source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "openday-console/1.0")
	req.Header.Set("X-Request-ID", loadID)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error! status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

func (l *Loader) debugf(format string, args ...interface{}) {
	if l.opts.Debug {
		l.opts.Logger.Printf(format, args...)
	}
}
