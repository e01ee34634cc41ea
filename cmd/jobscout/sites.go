package main

import (
	"fmt"

	"github.com/fwojciec/jobscout"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	for _, s := range jobscout.Sites() {
		fmt.Fprintf(deps.Stdout, "%-14s %s\n", s, s.BaseURL())
	}
	return nil
}
