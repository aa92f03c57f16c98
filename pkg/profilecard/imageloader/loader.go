// Package imageloader fetches avatar images off the UI goroutine. Load never
// blocks: it answers from the cache or starts a fetch and reports Pending,
// then calls Notify once the image is ready or has failed so the UI can
// draw again. Failures are logged and swallowed; a failed URL is not retried.
package imageloader

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	_ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
	"go.uber.org/atomic"
	_ "golang.org/x/image/webp" // register decoder
)

const (
	defaultTimeout = 15 * time.Second
	maxImageBytes  = 10 << 20
)

// ErrUnsupportedScheme is returned for URLs that are neither http(s), file nor a bare path.
var ErrUnsupportedScheme = errors.New("unsupported image url scheme")

// State is where a URL is in its lifecycle.
type State int

const (
	StatePending State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the answer to Load. Image and ReadyAt are set only when Ready.
type Result struct {
	State   State
	Image   image.Image
	ReadyAt time.Time
}

// Stats counts outcomes since the loader was created.
type Stats struct {
	Loaded   int64
	Failed   int64
	InFlight int64
}

// Options configures a Loader. Zero values pick defaults.
type Options struct {
	Client    *http.Client
	Timeout   time.Duration
	CacheSize int
	Notify    func(url string) // called from the fetch goroutine
	Logger    *slog.Logger
	Now       func() time.Time
}

type entry struct {
	img     image.Image
	readyAt time.Time
}

// Loader is safe for concurrent use.
type Loader struct {
	client  *http.Client
	timeout time.Duration
	notify  func(string)
	logger  *slog.Logger
	now     func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	cache    *Cache[entry]
	failures map[string]struct{}
	inflight map[string]struct{}

	loaded   *atomic.Int64
	failed   *atomic.Int64
	inFlight *atomic.Int64
	closed   *atomic.Bool
}

// New creates a loader whose fetches are cancelled with ctx or Close.
func New(ctx context.Context, opts Options) *Loader {
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Notify == nil {
		opts.Notify = func(string) {}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Loader{
		client:   opts.Client,
		timeout:  opts.Timeout,
		notify:   opts.Notify,
		logger:   opts.Logger,
		now:      opts.Now,
		ctx:      ctx,
		cancel:   cancel,
		cache:    NewCache[entry](opts.CacheSize, nil),
		failures: make(map[string]struct{}),
		inflight: make(map[string]struct{}),
		loaded:   atomic.NewInt64(0),
		failed:   atomic.NewInt64(0),
		inFlight: atomic.NewInt64(0),
		closed:   atomic.NewBool(false),
	}
}

// Load returns the current state of url and starts a fetch if nothing is
// known about it yet. An empty url is reported as failed.
func (l *Loader) Load(rawURL string) Result {
	if rawURL == "" {
		return Result{State: StateFailed}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.cache.Get(rawURL); ok {
		return Result{State: StateReady, Image: e.img, ReadyAt: e.readyAt}
	}
	if _, ok := l.failures[rawURL]; ok {
		return Result{State: StateFailed}
	}
	if _, ok := l.inflight[rawURL]; ok || l.closed.Load() {
		return Result{State: StatePending}
	}

	l.inflight[rawURL] = struct{}{}
	l.inFlight.Inc()
	l.wg.Add(1)
	go l.fetch(rawURL)

	return Result{State: StatePending}
}

func (l *Loader) fetch(rawURL string) {
	defer l.wg.Done()

	img, err := l.fetchImage(rawURL)

	l.mu.Lock()
	delete(l.inflight, rawURL)
	if err != nil {
		l.failures[rawURL] = struct{}{}
	} else {
		l.cache.Set(rawURL, entry{img: img, readyAt: l.now()})
	}
	l.mu.Unlock()
	l.inFlight.Dec()

	if err != nil {
		l.failed.Inc()
		if l.ctx.Err() == nil {
			l.logger.Warn("avatar load failed", "url", rawURL, "error", err)
		}
	} else {
		l.loaded.Inc()
		l.logger.Debug("avatar loaded", "url", rawURL, "bounds", img.Bounds().String())
	}

	l.notify(rawURL)
}

func (l *Loader) fetchImage(rawURL string) (image.Image, error) {
	ctx, cancel := context.WithTimeout(l.ctx, l.timeout)
	defer cancel()

	body, err := l.open(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	img, _, err := image.Decode(io.LimitReader(body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", rawURL, err)
	}
	return img, nil
}

func (l *Loader) open(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: unexpected status %s", rawURL, resp.Status)
		}
		return resp.Body, nil
	case "file":
		return os.Open(u.Path)
	case "":
		return os.Open(rawURL)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

// Stats returns outcome counters.
func (l *Loader) Stats() Stats {
	return Stats{
		Loaded:   l.loaded.Load(),
		Failed:   l.failed.Load(),
		InFlight: l.inFlight.Load(),
	}
}

// Close cancels in-flight fetches and waits for their goroutines.
func (l *Loader) Close() {
	l.mu.Lock()
	already := l.closed.Swap(true)
	l.mu.Unlock()
	if already {
		return
	}
	l.cancel()
	l.wg.Wait()
}
