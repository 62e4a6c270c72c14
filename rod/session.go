// Package rod implements docgrab.Tab on top of a headless Chrome driven by go-rod.
package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/docgrab"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultNavigationTimeout bounds a single navigation.
const DefaultNavigationTimeout = 60 * time.Second

// Ensure Session implements docgrab.Tab at compile time.
var _ docgrab.Tab = (*Session)(nil)

// Session owns one headless browser and the single page every navigation
// in a run goes through. Chrome startup is paid once per run.
//
// Session is meant for sequential use; only ObserveRequests callbacks run
// on another goroutine.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	timeout  time.Duration
	mu       sync.Mutex
	closed   atomic.Bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithNavigationTimeout sets the limit for a single navigation.
// Defaults to DefaultNavigationTimeout if not specified.
func WithNavigationTimeout(d time.Duration) SessionOption {
	return func(s *Session) {
		s.timeout = d
	}
}

// NewSession launches a headless Chrome browser and opens a blank page.
// Close must be called when the Session is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewSession(opts ...SessionOption) (*Session, error) {
	s := &Session{
		timeout: DefaultNavigationTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.launchBrowser(); err != nil {
		return nil, err
	}

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = s.closeBrowser()
		return nil, fmt.Errorf("opening page: %w", err)
	}
	s.page = page

	return s, nil
}

// Navigate loads url and waits for DOMContentLoaded.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if s.closed.Load() {
		return docgrab.Errorf(docgrab.EINVALID, "browser session closed")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	page := s.page.Context(ctx)

	// Subscribe before navigating so the lifecycle event cannot be missed.
	wait := page.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	wait()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("waiting for %s: %w", url, err)
	}
	return nil
}

// HTML returns the serialized DOM of the current page.
func (s *Session) HTML(ctx context.Context) (string, error) {
	if s.closed.Load() {
		return "", docgrab.Errorf(docgrab.EINVALID, "browser session closed")
	}
	return s.page.Context(ctx).HTML()
}

// ObserveRequests reports the URL of every Network.requestWillBeSent event
// on the page until release is called or ctx ends.
func (s *Session) ObserveRequests(ctx context.Context, observe func(url string)) (release func()) {
	if s.closed.Load() {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	wait := s.page.Context(ctx).EachEvent(func(e *proto.NetworkRequestWillBeSent) {
		if e.Request != nil {
			observe(e.Request.URL)
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		wait()
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

// Close releases browser resources. Close is safe to call multiple times.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closeBrowser()
}

// launchBrowser starts a new browser instance with stability flags.
func (s *Session) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	s.browser = browser
	s.launcher = lnchr
	return nil
}

// closeBrowser shuts down the browser and launcher.
func (s *Session) closeBrowser() error {
	var err error
	if s.browser != nil {
		err = s.browser.Close()
		s.browser = nil
	}
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (s *Session) LauncherPID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.launcher == nil {
		return 0
	}
	return s.launcher.PID()
}
