package jobscout

import "context"

// Page is a browser-like page that can be pointed at a URL and queried
// with CSS selectors once loaded. A Page is used by one scraper at a time.
type Page interface {
	// Navigate loads the URL, replacing the currently loaded document.
	// The context controls timeout and cancellation.
	Navigate(ctx context.Context, url string) error

	// Elements returns all elements matching the selector on the loaded page.
	// Returns EINVALID if no page has been loaded.
	Elements(selector string) ([]Element, error)

	// Close releases the underlying browser or connection.
	Close() error
}

// Element is a handle to one node of a loaded page.
type Element interface {
	// Find returns the first descendant matching the selector.
	Find(selector string) (Element, bool)

	// FindAll returns all descendants matching the selector.
	FindAll(selector string) []Element

	// Text returns the combined text of the element and its descendants.
	Text() string

	// HTML returns the inner HTML of the element.
	HTML() (string, error)

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)
}
