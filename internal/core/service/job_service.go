package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobboard/job-board-api/internal/metrics"
	"github.com/jobboard/job-board-api/internal/core/authz"
	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

// JobService implements job posting use cases. Ownership checks run against
// the stored job, so the repository lookup happens before the policy decision;
// a missing id surfaces as not-found rather than a deny.
type JobService struct {
	jobs   ports.JobRepository
	logger zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, logger: logger}
}

func (s *JobService) Create(ctx context.Context, actor authz.Actor, input ports.CreateJobInput) (*domain.Job, error) {
	if err := decide(actor, authz.ActionCreateJob, nil); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	job := &domain.Job{
		Title:      input.Title,
		Company:    input.Company,
		Location:   input.Location,
		EmployerID: actor.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		return nil, err
	}

	metrics.JobsCreatedTotal.Inc()
	s.logger.Info().Str("job_id", created.ID).Str("employer_id", actor.ID).Msg("job created")
	return created, nil
}

func (s *JobService) Update(ctx context.Context, actor authz.Actor, id string, input ports.UpdateJobInput) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := decide(actor, authz.ActionUpdateJob, &authz.Target{OwnerID: job.EmployerID}); err != nil {
		return nil, err
	}

	return s.jobs.Update(ctx, id, ports.JobUpdate{
		Title:    input.Title,
		Company:  input.Company,
		Location: input.Location,
	})
}

func (s *JobService) Delete(ctx context.Context, actor authz.Actor, id string) error {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := decide(actor, authz.ActionDeleteJob, &authz.Target{OwnerID: job.EmployerID}); err != nil {
		return err
	}

	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("job_id", id).Str("employer_id", actor.ID).Msg("job deleted")
	return nil
}

func (s *JobService) List(ctx context.Context, actor authz.Actor) ([]*domain.Job, error) {
	if err := decide(actor, authz.ActionListJobs, nil); err != nil {
		return nil, err
	}
	return s.jobs.List(ctx, ports.ListJobsFilter{})
}
