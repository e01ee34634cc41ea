// Package goquery implements jobscout.Page on top of HTML documents parsed
// with goquery. HTML is obtained from a jobscout.Fetcher, so the same page
// works over a headless browser or plain HTTP.
package goquery

import (
	"context"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscout"
)

// Ensure Page implements jobscout.Page at compile time.
var _ jobscout.Page = (*Page)(nil)

// Page holds the most recently navigated document.
// Page is not safe for concurrent use.
type Page struct {
	fetcher jobscout.Fetcher
	doc     *goquery.Document

	closeOnce sync.Once
	closeErr  error
}

// NewPage creates a Page that loads documents through the fetcher.
// Closing the page closes the fetcher.
func NewPage(fetcher jobscout.Fetcher) *Page {
	return &Page{fetcher: fetcher}
}

// Navigate fetches the URL and parses it as the current document.
// On failure the previously loaded document is discarded.
func (p *Page) Navigate(ctx context.Context, url string) error {
	p.doc = nil

	html, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return jobscout.Errorf(jobscout.EINVALID, "failed to parse HTML from %s: %v", url, err)
	}

	p.doc = doc
	return nil
}

// Elements returns the elements of the current document matching the selector.
func (p *Page) Elements(selector string) ([]jobscout.Element, error) {
	if p.doc == nil {
		return nil, jobscout.Errorf(jobscout.EINVALID, "no page loaded")
	}
	return wrap(p.doc.Find(selector)), nil
}

// Close closes the underlying fetcher. Close is safe to call multiple times.
func (p *Page) Close() error {
	p.closeOnce.Do(func() {
		p.doc = nil
		p.closeErr = p.fetcher.Close()
	})
	return p.closeErr
}
