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

// ApplicationService implements job application use cases.
type ApplicationService struct {
	applications ports.ApplicationRepository
	jobs         ports.JobRepository
	logger       zerolog.Logger
}

func NewApplicationService(applications ports.ApplicationRepository, jobs ports.JobRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs, logger: logger}
}

// Create files an application on behalf of the actor. The referenced job must
// exist; the applicant is always the actor.
func (s *ApplicationService) Create(ctx context.Context, actor authz.Actor, input ports.CreateApplicationInput) (*domain.Application, error) {
	if err := decide(actor, authz.ActionCreateApplication, nil); err != nil {
		return nil, err
	}

	if _, err := s.jobs.FindByID(ctx, input.JobID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	app := &domain.Application{
		ApplicantID: actor.ID,
		JobID:       input.JobID,
		CoverLetter: input.CoverLetter,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.applications.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	metrics.ApplicationsCreatedTotal.Inc()
	s.logger.Info().Str("application_id", created.ID).Str("job_id", input.JobID).Str("applicant_id", actor.ID).Msg("application created")
	return created, nil
}

// Delete removes an application; only the applicant who filed it may do so.
func (s *ApplicationService) Delete(ctx context.Context, actor authz.Actor, id string) error {
	app, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := decide(actor, authz.ActionDeleteApplication, &authz.Target{OwnerID: app.ApplicantID}); err != nil {
		return err
	}

	if err := s.applications.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("application_id", id).Str("applicant_id", actor.ID).Msg("application deleted")
	return nil
}

// ListForEmployer returns the applications filed against jobs the actor owns.
func (s *ApplicationService) ListForEmployer(ctx context.Context, actor authz.Actor) ([]*domain.Application, error) {
	if err := decide(actor, authz.ActionListEmployerApplications, nil); err != nil {
		return nil, err
	}

	jobs, err := s.jobs.List(ctx, ports.ListJobsFilter{EmployerID: actor.ID})
	if err != nil {
		return nil, err
	}

	jobIDs := make([]string, 0, len(jobs))
	for _, j := range jobs {
		jobIDs = append(jobIDs, j.ID)
	}
	if len(jobIDs) == 0 {
		return []*domain.Application{}, nil
	}

	return s.applications.ListByJobIDs(ctx, jobIDs)
}
