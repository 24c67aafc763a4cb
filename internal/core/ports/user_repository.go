package ports

import (
	"context"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

// UserUpdate carries the partially-supplied profile fields of an update. Nil
// means "leave unchanged".
type UserUpdate struct {
	Name  *string
	Email *string
}

// UserRepository defines persistence operations for user accounts and their
// role/permission memberships.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error

	// ReplaceRoles swaps the user's whole role set for the given names.
	ReplaceRoles(ctx context.Context, id string, roles []string) (*domain.User, error)
	// AddPermissions unions the given names into the user's direct grants.
	AddPermissions(ctx context.Context, id string, permissions []string) (*domain.User, error)
}
