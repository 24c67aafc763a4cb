package ports

import (
	"context"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

// ApplicationRepository defines persistence operations for job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	// ListByJobIDs returns applications referencing any of the given jobs.
	ListByJobIDs(ctx context.Context, jobIDs []string) ([]*domain.Application, error)
	Delete(ctx context.Context, id string) error
}
