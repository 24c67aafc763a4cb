package ports

import (
	"context"

	"github.com/jobboard/job-board-api/internal/core/authz"
	"github.com/jobboard/job-board-api/internal/core/domain"
)

// CreateApplicationInput carries a new job application. The applicant is
// always the actor.
type CreateApplicationInput struct {
	JobID       string
	CoverLetter string
}

// ApplicationService defines job application use cases.
type ApplicationService interface {
	Create(ctx context.Context, actor authz.Actor, input CreateApplicationInput) (*domain.Application, error)
	Delete(ctx context.Context, actor authz.Actor, id string) error
	// ListForEmployer returns applications to jobs owned by the actor.
	ListForEmployer(ctx context.Context, actor authz.Actor) ([]*domain.Application, error)
}
