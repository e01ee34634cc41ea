package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/jobscout"
	"github.com/fwojciec/jobscout/goquery"
	"github.com/fwojciec/jobscout/mock"
	"github.com/fwojciec/jobscout/scrape"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// htmlFetcher serves the same document for every URL.
func htmlFetcher(html string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return html, nil
		},
		CloseFn: func() error { return nil },
	}
}

// listings loads html into a page and returns the strategy's listing elements.
func listings(t *testing.T, strategy scrape.Strategy, html string) []jobscout.Element {
	t.Helper()
	page := goquery.NewPage(htmlFetcher(html))
	require.NoError(t, page.Navigate(context.Background(), "https://example.test/"))
	elements, err := strategy.ListElements(page)
	require.NoError(t, err)
	return elements
}

// extractAll runs Extract over every listing on the page.
func extractAll(t *testing.T, strategy scrape.Strategy, html string) []scrape.Result {
	t.Helper()
	var results []scrape.Result
	for _, el := range listings(t, strategy, html) {
		results = append(results, strategy.Extract(el))
	}
	return results
}
