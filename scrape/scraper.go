package scrape

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/jobscout"
)

// Stats counts what one scrape saw.
type Stats struct {
	Found      int // listings extracted into jobs
	Inserted   int
	Duplicates int
	Skipped    int // listings missing a required field
	Errors     int // inserts that failed for reasons other than a duplicate
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Found += other.Found
	s.Inserted += other.Inserted
	s.Duplicates += other.Duplicates
	s.Skipped += other.Skipped
	s.Errors += other.Errors
}

// Scraper runs one strategy for one category.
type Scraper struct {
	Strategy Strategy
	Category string
	Page     jobscout.Page
	Jobs     jobscout.JobService
	Logger   *slog.Logger

	// RunID tags stored jobs with the run that found them. Optional.
	RunID string
}

// Target returns the site and category the scraper covers.
func (s *Scraper) Target() Target {
	return Target{Site: s.Strategy.Site(), Category: s.Category}
}

// FindJobs loads the category's result page and stores every listing on it.
//
// A listing missing a required field is skipped and the rest of the page
// is still processed. Failed inserts are logged and counted. An error is
// returned only when the page cannot be loaded or holds no listings, in
// which case nothing was stored.
func (s *Scraper) FindJobs(ctx context.Context) (Stats, error) {
	var stats Stats
	url := s.Strategy.BuildURL(s.Category)

	if err := s.Page.Navigate(ctx, url); err != nil {
		return stats, fmt.Errorf("navigate to %s: %w", url, err)
	}

	elements, err := s.Strategy.ListElements(s.Page)
	if err != nil {
		return stats, fmt.Errorf("list listings at %s: %w", url, err)
	}
	if len(elements) == 0 {
		return stats, jobscout.Errorf(jobscout.ENOTFOUND, "no listings found at %s", url)
	}

	for i, el := range elements {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		res := s.Strategy.Extract(el)
		if !res.OK() {
			stats.Skipped++
			s.Logger.Debug("skip listing", "url", url, "index", i, "reason", res.Reason)
			continue
		}
		stats.Found++

		job := res.Job
		job.Site = s.Strategy.Site()
		job.Category = s.Category
		job.RunID = s.RunID

		inserted, err := s.Jobs.InsertJob(ctx, job)
		switch {
		case err != nil:
			stats.Errors++
			s.Logger.Error("store job", "link", job.Link, "err", err)
		case inserted:
			stats.Inserted++
		default:
			stats.Duplicates++
		}
	}
	return stats, nil
}
