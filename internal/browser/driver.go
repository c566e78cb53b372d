// Package browser provides the scriptable browser session that the record
// workflows drive.
//
// Driver is the capability the orchestrator consumes; the chromedp engine
// behind it is an implementation detail. Selectors are CSS by default, or
// XPath when prefixed with "//" (used for text-based button locators).
package browser

import "context"

// Driver is one scriptable browser session. A Driver instance is owned by
// exactly one orchestrator for the duration of one document's workflow and is
// never shared or pooled.
type Driver interface {
	// Navigate loads the given URL.
	Navigate(ctx context.Context, url string) error
	// WaitIdle blocks until the current page settles after a navigation or
	// submit. It is a readiness heuristic, not a guarantee.
	WaitIdle(ctx context.Context) error
	// Fill writes a value into the input matched by the selector.
	Fill(ctx context.Context, selector, value string) error
	// Click clicks the element matched by the selector.
	Click(ctx context.Context, selector string) error
	// SelectOption chooses an option of the select matched by the selector.
	SelectOption(ctx context.Context, selector, value string) error
	// SetChecked forces a checkbox into the given state.
	SetChecked(ctx context.Context, selector string, checked bool) error
	// IsVisible reports whether the selector matches a visible element.
	IsVisible(ctx context.Context, selector string) bool
	// TextContent returns the visible text of the matched element.
	TextContent(ctx context.Context, selector string) (string, error)
	// Location returns the current page URL.
	Location(ctx context.Context) (string, error)
	// Close tears the session down. Safe to call more than once.
	Close() error
}
