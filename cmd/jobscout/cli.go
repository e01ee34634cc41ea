package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/jobscout"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Jobs      jobscout.JobService
	Converter jobscout.Converter

	// NewPage opens the page scrapers navigate. With static set, pages are
	// fetched over plain HTTP instead of a headless browser.
	NewPage func(static bool) (jobscout.Page, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape job boards and store new listings"`
	List   ListCmd   `cmd:"" help:"List stored jobs, newest first"`
	Sites  SitesCmd  `cmd:"" help:"List supported job boards"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Site     []string      `short:"s" name:"site" help:"Job board to scrape (repeatable)"`
	Category []string      `short:"c" name:"category" sep:"none" help:"Category to search for (repeatable)"`
	Plan     string        `short:"p" type:"path" help:"YAML file listing site and category targets"`
	Static   bool          `help:"Fetch pages over plain HTTP instead of a headless browser"`
	Timeout  time.Duration `default:"2m" env:"JOBSCOUT_TIMEOUT" help:"Deadline for each site and category"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Location string `short:"l" help:"Only jobs whose location contains this text (case-sensitive)"`
	Company  string `help:"Only jobs from this company"`
	Site     string `short:"s" help:"Only jobs from this job board"`
	Limit    int    `short:"n" default:"50" help:"Maximum number of jobs to show (0 for all)"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}
