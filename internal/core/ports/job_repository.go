package ports

import (
	"context"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

// JobUpdate carries the partially-supplied fields of a job update. Nil means
// "leave unchanged". The owner is not updatable.
type JobUpdate struct {
	Title    *string
	Company  *string
	Location *string
}

// ListJobsFilter narrows a job listing. Zero values mean no filtering.
type ListJobsFilter struct {
	EmployerID string // scope to jobs owned by this employer
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, error)
	Update(ctx context.Context, id string, update JobUpdate) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}
