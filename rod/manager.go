package rod

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/jobscout"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	// DefaultMaxPages is the number of tabs opened before Chrome is restarted.
	DefaultMaxPages = 75

	// DefaultLanguage is requested from job boards so that dates come back
	// with Ukrainian month names.
	DefaultLanguage = "uk-UA,uk;q=0.9,en;q=0.5"
)

// BrowserManager owns the headless Chrome behind a Fetcher. Chrome's memory
// baseline keeps growing across tabs, so the process is replaced after
// maxPages tabs.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	opened   int64
	closed   bool

	maxPages int64
	language string
	bin      string
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets how many tabs are opened before Chrome is restarted.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// WithLanguage sets the Accept-Language header sent with every page.
// An empty value leaves Chrome's default.
func WithLanguage(lang string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.language = lang
	}
}

// WithBrowserBin runs the given Chrome binary instead of looking one up.
func WithBrowserBin(path string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.bin = path
	}
}

// NewBrowserManager launches headless Chrome.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
		language: DefaultLanguage,
	}
	for _, opt := range opts {
		opt(bm)
	}

	browser, lnchr, err := bm.launch()
	if err != nil {
		return nil, err
	}
	bm.browser, bm.launcher = browser, lnchr
	return bm, nil
}

// OpenPage opens a blank tab bound to ctx. The release func closes the tab;
// it must be called exactly once.
func (bm *BrowserManager) OpenPage(ctx context.Context) (*rod.Page, func(), error) {
	bm.mu.Lock()
	if bm.closed {
		bm.mu.Unlock()
		return nil, nil, jobscout.Errorf(jobscout.EINVALID, "browser is closed")
	}
	if bm.opened >= bm.maxPages {
		bm.restart()
	}
	bm.opened++
	browser := bm.browser
	bm.mu.Unlock()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, nil, fmt.Errorf("opening tab: %w", err)
	}
	release := func() { _ = page.Close() }

	if bm.language != "" {
		if _, err := page.SetExtraHeaders([]string{"Accept-Language", bm.language}); err != nil {
			release()
			return nil, nil, fmt.Errorf("setting headers: %w", err)
		}
	}
	return page.Context(ctx), release, nil
}

// Close shuts Chrome down. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true
	return shutdown(bm.browser, bm.launcher)
}

// LauncherPID returns the process ID of the running Chrome launcher,
// or 0 once closed.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.closed || bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}

func (bm *BrowserManager) launch() (*rod.Browser, *launcher.Launcher, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("blink-settings", "imagesEnabled=false").
		Leakless(true).
		Headless(true)
	if bm.bin != "" {
		lnchr = lnchr.Bin(bm.bin)
	}

	u, err := lnchr.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return browser, lnchr, nil
}

// restart swaps in a fresh Chrome. If the launch fails the current one is
// kept and the count starts over, so the next attempt waits another
// maxPages tabs. Must be called with mu held.
func (bm *BrowserManager) restart() {
	bm.opened = 0
	browser, lnchr, err := bm.launch()
	if err != nil {
		return
	}
	_ = shutdown(bm.browser, bm.launcher)
	bm.browser, bm.launcher = browser, lnchr
}

func shutdown(browser *rod.Browser, lnchr *launcher.Launcher) error {
	var err error
	if browser != nil {
		err = browser.Close()
	}
	if lnchr != nil {
		lnchr.Kill()
	}
	return err
}
