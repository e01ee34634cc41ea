package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobscout"
)

// Compile-time interface verification.
var _ jobscout.JobService = (*JobService)(nil)

// JobService implements jobscout.JobService using SQLite.
type JobService struct {
	db *DB

	// Now returns the insertion timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewJobService creates a new JobService.
func NewJobService(db *DB) *JobService {
	return &JobService{db: db, Now: time.Now}
}

// hashContent computes an xxHash over the fields that may drift between
// scrapes of the same listing.
func hashContent(job *jobscout.Job) string {
	h := xxhash.New()
	for _, field := range []string{job.Title, job.Company, job.Description, job.Location, job.Salary, job.DatePosted} {
		_, _ = h.WriteString(field)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// InsertJob appends a job. Conflicts on link or on (title, company, link)
// leave the stored row untouched and report false without an error.
func (s *JobService) InsertJob(ctx context.Context, job *jobscout.Job) (bool, error) {
	if err := job.Validate(); err != nil {
		return false, err
	}

	createdAt := s.Now().UTC()
	hash := hashContent(job)

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (title, description, company, link, location, salary, date_posted,
			site, category, content_hash, run_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, job.Title, job.Description, job.Company, job.Link, job.Location, job.Salary, job.DatePosted,
		string(job.Site), job.Category, hash, job.RunID, formatTime(createdAt))
	if err != nil {
		return false, fmt.Errorf("insert job: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert job: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("insert job: %w", err)
	}

	job.ID = id
	job.ContentHash = hash
	job.CreatedAt = createdAt
	return true, nil
}

// FindJobs retrieves jobs matching the filter, newest first.
func (s *JobService) FindJobs(ctx context.Context, filter jobscout.JobFilter) ([]*jobscout.Job, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, title, description, company, link, location, salary, date_posted,
		site, category, content_hash, run_id, created_at FROM jobs WHERE 1=1`)

	if filter.Location != nil {
		query.WriteString(" AND instr(location, ?) > 0")
		args = append(args, *filter.Location)
	}
	if filter.Company != nil {
		query.WriteString(" AND company = ?")
		args = append(args, *filter.Company)
	}
	if filter.Site != nil {
		query.WriteString(" AND site = ?")
		args = append(args, string(*filter.Site))
	}

	query.WriteString(" ORDER BY created_at DESC, id DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*jobscout.Job
	for rows.Next() {
		var job jobscout.Job
		var site, createdAt string

		if err := rows.Scan(&job.ID, &job.Title, &job.Description, &job.Company, &job.Link,
			&job.Location, &job.Salary, &job.DatePosted, &site, &job.Category,
			&job.ContentHash, &job.RunID, &createdAt); err != nil {
			return nil, err
		}

		job.Site = jobscout.Site(site)
		if job.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}

		jobs = append(jobs, &job)
	}

	return jobs, rows.Err()
}
