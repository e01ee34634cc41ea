package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobscout"
)

var _ jobscout.JobService = (*LoggingJobService)(nil)

// LoggingJobService wraps a JobService and logs inserts and queries.
type LoggingJobService struct {
	next   jobscout.JobService
	logger *slog.Logger
}

// NewLoggingJobService creates a new LoggingJobService.
func NewLoggingJobService(next jobscout.JobService, logger *slog.Logger) *LoggingJobService {
	return &LoggingJobService{next: next, logger: logger}
}

// InsertJob logs at debug level, or at error level when the store fails.
func (s *LoggingJobService) InsertJob(ctx context.Context, job *jobscout.Job) (inserted bool, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "insert job",
			"link", job.Link,
			"inserted", inserted,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.InsertJob(ctx, job)
}

func (s *LoggingJobService) FindJobs(ctx context.Context, filter jobscout.JobFilter) (jobs []*jobscout.Job, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find jobs",
			"count", len(jobs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindJobs(ctx, filter)
}
