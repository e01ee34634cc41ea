package main

import (
	"fmt"

	"github.com/fwojciec/jobscout"
)

// Filter builds the job filter from the flags.
func (c *ListCmd) Filter() (jobscout.JobFilter, error) {
	filter := jobscout.JobFilter{Limit: c.Limit}
	if c.Location != "" {
		filter.Location = &c.Location
	}
	if c.Company != "" {
		filter.Company = &c.Company
	}
	if c.Site != "" {
		site, err := jobscout.ParseSite(c.Site)
		if err != nil {
			return filter, err
		}
		filter.Site = &site
	}
	return filter, nil
}

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter, err := c.Filter()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
		return err
	}

	jobs, err := deps.Jobs.FindJobs(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscout.ErrorMessage(err))
		return err
	}

	if len(jobs) == 0 {
		fmt.Fprintln(deps.Stdout, "No jobs found. Use 'jobscout scrape' to collect some.")
		return nil
	}

	for _, j := range jobs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s\n", j.DatePosted, j.Title, j.Company, j.Location, j.Salary)
		fmt.Fprintf(deps.Stdout, "    %s\n", j.Link)
	}
	return nil
}
