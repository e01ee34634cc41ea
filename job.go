package jobscout

import (
	"context"
	"time"
)

// NotSpecified is stored in place of an optional field that a listing
// does not carry.
const NotSpecified = "not specified"

// Job represents a single job listing scraped from a job board.
// Link is the natural key: two jobs with the same link are the same listing.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Link        string    `json:"link"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	DatePosted  string    `json:"datePosted"`
	Site        Site      `json:"site"`
	Category    string    `json:"category"`
	ContentHash string    `json:"contentHash"`
	RunID       string    `json:"runId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the job contains invalid fields.
func (j *Job) Validate() error {
	if j.Title == "" {
		return Errorf(EINVALID, "job title required")
	}
	if j.Company == "" {
		return Errorf(EINVALID, "job company required")
	}
	if j.Link == "" {
		return Errorf(EINVALID, "job link required")
	}
	return nil
}

// JobService represents a service for persisting scraped jobs.
type JobService interface {
	// InsertJob appends a job to storage.
	// Returns false with a nil error if the job duplicates a stored one
	// (same link, or same title, company and link). Any other failure
	// is returned as an error.
	InsertJob(ctx context.Context, job *Job) (bool, error)

	// FindJobs retrieves jobs matching the filter, newest first.
	FindJobs(ctx context.Context, filter JobFilter) ([]*Job, error)
}

// JobFilter represents a filter for FindJobs.
type JobFilter struct {
	// Location matches jobs whose location contains it (case-sensitive).
	Location *string `json:"location"`

	// Company matches jobs whose company equals it.
	Company *string `json:"company"`

	Site *Site `json:"site"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
