package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	// DefaultStepTimeout bounds a single browser interaction.
	DefaultStepTimeout = 30 * time.Second
	// settleDelay approximates the "network idle" condition after a
	// navigation; the target UI exposes no structured readiness signal.
	settleDelay = 2 * time.Second
	// visibilityTimeout bounds visibility probes, which are expected to
	// fail fast when the element is absent.
	visibilityTimeout = 3 * time.Second
)

// ChromeSession is a chromedp-backed Driver. It owns a headless browser
// process for its lifetime; Close must run on every exit path.
type ChromeSession struct {
	browserCtx    context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc
	stepTimeout   time.Duration
	closed        bool
}

// SessionOptions configures a new browser session.
type SessionOptions struct {
	Headless    bool
	StepTimeout time.Duration
}

// DefaultSessionOptions returns the options used in production: headless,
// with the default per-step timeout.
func DefaultSessionOptions() SessionOptions {
	return SessionOptions{Headless: true, StepTimeout: DefaultStepTimeout}
}

// NewChromeSession launches a headless browser and returns a Driver bound to
// a fresh page. Requires Chrome/Chromium to be installed on the system.
func NewChromeSession(ctx context.Context, opts SessionOptions) (*ChromeSession, error) {
	if opts.StepTimeout <= 0 {
		opts.StepTimeout = DefaultStepTimeout
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", opts.Headless),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser process eagerly so a missing Chrome binary surfaces
	// here instead of on the first workflow step.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	return &ChromeSession{
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		allocCancel:   allocCancel,
		stepTimeout:   opts.StepTimeout,
	}, nil
}

// run executes actions against the session's browser with a per-step timeout.
// The caller's context only gates the wait, not the browser lifetime.
func (s *ChromeSession) run(ctx context.Context, actions ...chromedp.Action) error {
	stepCtx, cancel := context.WithTimeout(s.browserCtx, s.stepTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- chromedp.Run(stepCtx, actions...) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		cancel()
		<-done
		return ctx.Err()
	}
}

// queryOption picks the chromedp query strategy for a selector: XPath for
// "//"-prefixed selectors, CSS otherwise.
func queryOption(selector string) chromedp.QueryOption {
	if strings.HasPrefix(selector, "//") {
		return chromedp.BySearch
	}
	return chromedp.ByQuery
}

// Navigate loads the given URL.
func (s *ChromeSession) Navigate(ctx context.Context, url string) error {
	if err := s.run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// WaitIdle waits for the document body plus a settle delay for asynchronous
// rendering. The target UI is a JavaScript-heavy SPA with no idle signal.
func (s *ChromeSession) WaitIdle(ctx context.Context) error {
	return s.run(ctx,
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
	)
}

// Fill clears the matched input and types the value into it.
func (s *ChromeSession) Fill(ctx context.Context, selector, value string) error {
	err := s.run(ctx,
		chromedp.WaitVisible(selector, queryOption(selector)),
		chromedp.Clear(selector, queryOption(selector)),
		chromedp.SendKeys(selector, value, queryOption(selector)),
	)
	if err != nil {
		return fmt.Errorf("failed to fill %q: %w", selector, err)
	}
	return nil
}

// Click clicks the matched element.
func (s *ChromeSession) Click(ctx context.Context, selector string) error {
	err := s.run(ctx,
		chromedp.WaitVisible(selector, queryOption(selector)),
		chromedp.Click(selector, queryOption(selector)),
	)
	if err != nil {
		return fmt.Errorf("failed to click %q: %w", selector, err)
	}
	return nil
}

// SelectOption sets the value of the matched select element.
func (s *ChromeSession) SelectOption(ctx context.Context, selector, value string) error {
	err := s.run(ctx,
		chromedp.WaitVisible(selector, queryOption(selector)),
		chromedp.SetValue(selector, value, queryOption(selector)),
	)
	if err != nil {
		return fmt.Errorf("failed to select %q on %q: %w", value, selector, err)
	}
	return nil
}

// SetChecked forces the matched checkbox into the given state and fires a
// change event so framework listeners observe it.
func (s *ChromeSession) SetChecked(ctx context.Context, selector string, checked bool) error {
	script := fmt.Sprintf(
		`(() => { const el = document.querySelector(%q); if (!el) return false;
		  el.checked = %t; el.dispatchEvent(new Event("change", {bubbles: true})); return true; })()`,
		selector, checked,
	)

	var ok bool
	if err := s.run(ctx, chromedp.Evaluate(script, &ok)); err != nil {
		return fmt.Errorf("failed to set checked on %q: %w", selector, err)
	}
	if !ok {
		return fmt.Errorf("checkbox %q not found", selector)
	}
	return nil
}

// IsVisible probes for a visible match with a short timeout.
func (s *ChromeSession) IsVisible(ctx context.Context, selector string) bool {
	stepCtx, cancel := context.WithTimeout(s.browserCtx, visibilityTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- chromedp.Run(stepCtx, chromedp.WaitVisible(selector, queryOption(selector)))
	}()

	select {
	case err := <-done:
		return err == nil
	case <-ctx.Done():
		cancel()
		<-done
		return false
	}
}

// TextContent returns the visible text of the matched element.
func (s *ChromeSession) TextContent(ctx context.Context, selector string) (string, error) {
	var text string
	err := s.run(ctx, chromedp.Text(selector, &text, queryOption(selector), chromedp.NodeVisible))
	if err != nil {
		return "", fmt.Errorf("failed to read text of %q: %w", selector, err)
	}
	return text, nil
}

// Location returns the current page URL.
func (s *ChromeSession) Location(ctx context.Context) (string, error) {
	var loc string
	if err := s.run(ctx, chromedp.Location(&loc)); err != nil {
		return "", fmt.Errorf("failed to read location: %w", err)
	}
	return loc, nil
}

// Close shuts the browser down. Safe to call more than once.
func (s *ChromeSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.browserCancel()
	s.allocCancel()
	return nil
}
