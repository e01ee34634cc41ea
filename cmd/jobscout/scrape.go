package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/jobscout"
	"github.com/fwojciec/jobscout/scrape"
)

// Targets returns the site by category product of the flags followed by
// the targets of the plan file, if any. Blank categories are rejected here
// so that a bad invocation never starts a browser.
func (c *ScrapeCmd) Targets() ([]scrape.Target, error) {
	for _, category := range c.Category {
		if strings.TrimSpace(category) == "" {
			return nil, jobscout.Errorf(jobscout.EINVALID, "category required")
		}
	}

	var targets []scrape.Target
	for _, name := range c.Site {
		site, err := jobscout.ParseSite(name)
		if err != nil {
			return nil, err
		}
		for _, category := range c.Category {
			targets = append(targets, scrape.Target{Site: site, Category: category})
		}
	}

	if c.Plan != "" {
		planned, err := LoadPlan(c.Plan)
		if err != nil {
			return nil, err
		}
		targets = append(targets, planned...)
	}

	if len(targets) == 0 {
		return nil, jobscout.Errorf(jobscout.EINVALID, "nothing to scrape: pass --site and --category, or --plan")
	}
	return targets, nil
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	targets, err := c.Targets()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
		return err
	}

	page, err := deps.NewPage(c.Static)
	if err != nil {
		return err
	}

	o := scrape.NewOrchestrator(page, deps.Jobs, deps.Logger,
		scrape.WithTimeout(c.Timeout),
		scrape.WithConverter(deps.Converter),
	)
	if err := o.AddScrapers(targets); err != nil {
		_ = page.Close()
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
		return err
	}

	result, err := o.Execute(deps.Ctx)
	if result != nil {
		for _, f := range result.Failed {
			fmt.Fprintf(deps.Stdout, "Failed %s: %v\n", f.Target, f.Err)
		}
		fmt.Fprintf(deps.Stdout, "Discovered %d jobs, saved %d new (%d duplicates, %d skipped)\n",
			result.Found, result.Inserted, result.Duplicates, result.Skipped)
	}
	if err != nil {
		return err
	}
	if result.Errors > 0 {
		return fmt.Errorf("%d jobs could not be saved", result.Errors)
	}

	fmt.Fprintln(deps.Stdout, "Scraping complete.")
	return nil
}
