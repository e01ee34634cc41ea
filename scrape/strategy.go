// Package scrape turns job-board result pages into stored jobs.
//
// A Strategy knows one site: how to build a search URL for a category,
// which elements on the loaded page are listings, and how to read a Job
// out of one listing. A Scraper runs one strategy for one category, and
// an Orchestrator runs many scrapers over a shared page.
package scrape

import (
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/jobscout"
)

// Strategy is the per-site extraction capability.
type Strategy interface {
	// Site returns the job board the strategy reads.
	Site() jobscout.Site

	// BuildURL returns the search results URL for a category.
	// The result depends only on the category.
	BuildURL(category string) string

	// ListElements returns the listing elements of the loaded page.
	ListElements(page jobscout.Page) ([]jobscout.Element, error)

	// Extract reads a job from one listing element.
	Extract(el jobscout.Element) Result
}

// Options configure the strategies built by NewStrategy.
type Options struct {
	// Converter turns description HTML into Markdown. Optional; without it
	// descriptions are stored as plain text.
	Converter jobscout.Converter

	// Now supplies the year for dates printed without one.
	// Defaults to time.Now.
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// NewStrategy returns the strategy for a site.
// Returns EINVALID if the site is not supported.
func NewStrategy(site jobscout.Site, opts Options) (Strategy, error) {
	switch site {
	case jobscout.SiteDOU:
		return NewDOU(opts), nil
	case jobscout.SiteDOUFirstJob:
		return NewDOUFirstJob(opts), nil
	case jobscout.SiteWorkUA:
		return NewWorkUA(opts), nil
	case jobscout.SiteDjinni:
		return NewDjinni(opts), nil
	}
	return nil, jobscout.Errorf(jobscout.EINVALID, "unknown site %q", site)
}

// Result is the outcome of extracting one listing: either a job was found
// or the listing was skipped for a reason.
type Result struct {
	Job    *jobscout.Job
	Reason string
}

// Found returns a Result carrying job.
func Found(job *jobscout.Job) Result {
	return Result{Job: job}
}

// Skip returns a Result for a listing that yields no job.
func Skip(reason string) Result {
	return Result{Reason: reason}
}

// OK reports whether a job was found.
func (r Result) OK() bool {
	return r.Job != nil
}

// EncodeCategory prepares a category for use in a URL: surrounding space
// trimmed, slashes removed, and the rest query-escaped so spaces become "+".
func EncodeCategory(category string) string {
	category = strings.ReplaceAll(strings.TrimSpace(category), "/", "")
	return url.QueryEscape(category)
}
