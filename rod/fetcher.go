// Package rod provides a jobscout.Fetcher that renders pages in headless
// Chrome, for job boards that build their listings with JavaScript.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/jobscout"
)

// DefaultFetchTimeout bounds a single page load so that a hung page cannot
// block a whole scrape run.
const DefaultFetchTimeout = 30 * time.Second

var _ jobscout.Fetcher = (*Fetcher)(nil)

// Fetcher returns the HTML of pages after Chrome has rendered them.
// Each fetch uses its own tab, so Fetcher is safe for concurrent use.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
	closed  atomic.Bool
}

// Option configures a Fetcher.
type Option func(*fetcherConfig)

type fetcherConfig struct {
	timeout time.Duration
	manager []ManagerOption
}

// WithFetchTimeout sets the per-page timeout.
// Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *fetcherConfig) {
		c.timeout = d
	}
}

// WithManagerOptions passes options to the underlying BrowserManager.
func WithManagerOptions(opts ...ManagerOption) Option {
	return func(c *fetcherConfig) {
		c.manager = append(c.manager, opts...)
	}
}

// NewFetcher launches headless Chrome and returns a Fetcher using it.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	cfg := fetcherConfig{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	manager, err := NewBrowserManager(cfg.manager...)
	if err != nil {
		return nil, err
	}
	return &Fetcher{manager: manager, timeout: cfg.timeout}, nil
}

// Fetch loads url in a new tab, waits for the load event and returns the
// rendered document.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", jobscout.Errorf(jobscout.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, release, err := f.manager.OpenPage(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}
	return page.HTML()
}

// Close shuts the browser down. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
