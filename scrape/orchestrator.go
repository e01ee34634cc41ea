package scrape

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/jobscout"
	"github.com/google/uuid"
)

// DefaultTimeout bounds a single scraper run.
const DefaultTimeout = 2 * time.Minute

// Target is one (site, category) pair to scrape.
type Target struct {
	Site     jobscout.Site `yaml:"site"`
	Category string        `yaml:"category"`
}

func (t Target) String() string {
	return string(t.Site) + "/" + t.Category
}

// Failure records a scraper that was aborted.
type Failure struct {
	Target Target
	Err    error
}

// RunResult summarizes an orchestrator run: counts across every scraper
// and the scrapers that were aborted.
type RunResult struct {
	RunID string
	Stats
	Failed []Failure
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTimeout sets the deadline applied to each scraper. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		o.timeout = d
	}
}

// WithConverter sets the converter used for listing descriptions.
func WithConverter(c jobscout.Converter) Option {
	return func(o *Orchestrator) {
		o.converter = c
	}
}

// WithClock sets the clock used to date listings printed without a year.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// WithRunID overrides the generated run ID.
func WithRunID(id string) Option {
	return func(o *Orchestrator) {
		o.runID = id
	}
}

// Orchestrator runs scrapers one after another over a single page.
// The page is owned by the orchestrator and closed by Execute.
type Orchestrator struct {
	page   jobscout.Page
	jobs   jobscout.JobService
	logger *slog.Logger

	timeout   time.Duration
	converter jobscout.Converter
	now       func() time.Time
	runID     string

	scrapers []*Scraper
	executed bool
}

// NewOrchestrator creates an Orchestrator storing jobs into jobs.
// A nil logger discards all output.
func NewOrchestrator(page jobscout.Page, jobs jobscout.JobService, logger *slog.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	o := &Orchestrator{
		page:    page,
		jobs:    jobs,
		logger:  logger,
		timeout: DefaultTimeout,
		now:     time.Now,
		runID:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// RunID returns the ID stamped on jobs stored by this orchestrator.
func (o *Orchestrator) RunID() string {
	return o.runID
}

// AddScraper registers a scraper for the category on the site.
// Returns EINVALID for an empty category, an unknown site, or after Execute.
func (o *Orchestrator) AddScraper(site jobscout.Site, category string) error {
	s, err := o.newScraper(site, category)
	if err != nil {
		return err
	}
	o.scrapers = append(o.scrapers, s)
	return nil
}

// AddScrapers registers a scraper per target. Either all targets are
// registered or, on the first invalid one, none are.
func (o *Orchestrator) AddScrapers(targets []Target) error {
	scrapers := make([]*Scraper, 0, len(targets))
	for _, t := range targets {
		s, err := o.newScraper(t.Site, t.Category)
		if err != nil {
			return err
		}
		scrapers = append(scrapers, s)
	}
	o.scrapers = append(o.scrapers, scrapers...)
	return nil
}

func (o *Orchestrator) newScraper(site jobscout.Site, category string) (*Scraper, error) {
	if o.executed {
		return nil, jobscout.Errorf(jobscout.EINVALID, "orchestrator already executed")
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, jobscout.Errorf(jobscout.EINVALID, "category required")
	}
	strategy, err := NewStrategy(site, Options{Converter: o.converter, Now: o.now})
	if err != nil {
		return nil, err
	}
	return &Scraper{
		Strategy: strategy,
		Category: category,
		Page:     o.page,
		Jobs:     o.jobs,
		Logger:   o.logger.With("site", string(site), "category", category),
		RunID:    o.runID,
	}, nil
}

// Execute runs the registered scrapers in registration order and closes the
// page when done. A failed scraper is logged and recorded in the result,
// and the run moves on to the next one. Execute stops early only when ctx
// is done. Execute may be called once.
func (o *Orchestrator) Execute(ctx context.Context) (result *RunResult, err error) {
	if o.executed {
		return nil, jobscout.Errorf(jobscout.EINVALID, "orchestrator already executed")
	}
	o.executed = true

	result = &RunResult{RunID: o.runID}
	logger := o.logger.With("run_id", o.runID)

	defer func() {
		if cerr := o.page.Close(); cerr != nil {
			logger.Warn("close page", "err", cerr)
			if err == nil {
				err = cerr
			}
		}
	}()

	defer func(begin time.Time) {
		logger.Info("run finished",
			"scrapers", len(o.scrapers),
			"found", result.Found,
			"inserted", result.Inserted,
			"failed", len(result.Failed),
			"duration", time.Since(begin),
		)
	}(time.Now())

	for _, s := range o.scrapers {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		stats, serr := o.run(ctx, s)
		result.Add(stats)
		if serr == nil {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		result.Failed = append(result.Failed, Failure{Target: s.Target(), Err: serr})
	}
	return result, nil
}

// run executes one scraper under the per-scraper deadline.
func (o *Orchestrator) run(ctx context.Context, s *Scraper) (stats Stats, err error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	defer func(begin time.Time) {
		attrs := []any{
			"url", s.Strategy.BuildURL(s.Category),
			"found", stats.Found,
			"inserted", stats.Inserted,
			"duplicates", stats.Duplicates,
			"skipped", stats.Skipped,
			"errors", stats.Errors,
			"duration", time.Since(begin),
		}
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				attrs = append(attrs, "timeout", o.timeout)
			}
			s.Logger.Error("scrape failed", append(attrs, "err", err)...)
			return
		}
		s.Logger.Info("scrape finished", attrs...)
	}(time.Now())

	return s.FindJobs(ctx)
}

// Jobs returns stored jobs matching the filter, newest first.
func (o *Orchestrator) Jobs(ctx context.Context, filter jobscout.JobFilter) ([]*jobscout.Job, error) {
	return o.jobs.FindJobs(ctx, filter)
}
