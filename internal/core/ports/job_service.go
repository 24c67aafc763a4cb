package ports

import (
	"context"

	"github.com/jobboard/job-board-api/internal/core/authz"
	"github.com/jobboard/job-board-api/internal/core/domain"
)

// CreateJobInput carries a new job posting. The owner is always the actor.
type CreateJobInput struct {
	Title    string
	Company  string
	Location string
}

// UpdateJobInput carries the partially-supplied fields of a job update.
type UpdateJobInput struct {
	Title    *string
	Company  *string
	Location *string
}

// JobService defines job posting use cases.
type JobService interface {
	Create(ctx context.Context, actor authz.Actor, input CreateJobInput) (*domain.Job, error)
	Update(ctx context.Context, actor authz.Actor, id string, input UpdateJobInput) (*domain.Job, error)
	Delete(ctx context.Context, actor authz.Actor, id string) error
	// List returns the postings visible to a job seeker.
	List(ctx context.Context, actor authz.Actor) ([]*domain.Job, error)
}
