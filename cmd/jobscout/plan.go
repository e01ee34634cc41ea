package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/jobscout"
	"github.com/fwojciec/jobscout/scrape"
	"gopkg.in/yaml.v3"
)

// Plan is a saved set of scrape targets.
//
//	targets:
//	  - site: dou
//	    category: Junior .NET
//	  - site: workua
//	    category: DevOps
//
// A target may list several categories for one site:
//
//	  - site: djinni
//	    categories: [Go, Rust]
type Plan struct {
	Targets []PlanTarget `yaml:"targets"`
}

// PlanTarget is one entry of a plan.
type PlanTarget struct {
	Site       string   `yaml:"site"`
	Category   string   `yaml:"category"`
	Categories []string `yaml:"categories"`
}

// LoadPlan reads a plan file.
func LoadPlan(path string) ([]scrape.Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return ParsePlan(data)
}

// ParsePlan decodes a YAML plan into scrape targets. Unknown keys, unknown
// sites and entries without a category are rejected with EINVALID.
func ParsePlan(data []byte) ([]scrape.Target, error) {
	var plan Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil {
		return nil, jobscout.Errorf(jobscout.EINVALID, "invalid plan: %v", err)
	}

	var targets []scrape.Target
	for i, t := range plan.Targets {
		site, err := jobscout.ParseSite(t.Site)
		if err != nil {
			return nil, jobscout.Errorf(jobscout.EINVALID, "plan target %d: %s", i+1, jobscout.ErrorMessage(err))
		}
		categories := t.Categories
		if t.Category != "" {
			categories = append([]string{t.Category}, categories...)
		}
		if len(categories) == 0 {
			return nil, jobscout.Errorf(jobscout.EINVALID, "plan target %d: category required", i+1)
		}
		for _, c := range categories {
			if strings.TrimSpace(c) == "" {
				return nil, jobscout.Errorf(jobscout.EINVALID, "plan target %d: category required", i+1)
			}
			targets = append(targets, scrape.Target{Site: site, Category: c})
		}
	}
	return targets, nil
}
