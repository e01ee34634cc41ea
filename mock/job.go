package mock

import (
	"context"

	"github.com/fwojciec/jobscout"
)

var _ jobscout.JobService = (*JobService)(nil)

// JobService is a mock implementation of jobscout.JobService.
type JobService struct {
	InsertJobFn func(ctx context.Context, job *jobscout.Job) (bool, error)
	FindJobsFn  func(ctx context.Context, filter jobscout.JobFilter) ([]*jobscout.Job, error)
}

func (s *JobService) InsertJob(ctx context.Context, job *jobscout.Job) (bool, error) {
	return s.InsertJobFn(ctx, job)
}

func (s *JobService) FindJobs(ctx context.Context, filter jobscout.JobFilter) ([]*jobscout.Job, error) {
	return s.FindJobsFn(ctx, filter)
}
