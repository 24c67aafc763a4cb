package ports

import (
	"context"

	"github.com/jobboard/job-board-api/internal/core/authz"
	"github.com/jobboard/job-board-api/internal/core/domain"
)

// CreateUserInput carries an admin-created user account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Roles    []string
}

// UpdateUserInput carries the partially-supplied profile fields. Nil means
// "leave unchanged".
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// UserService defines user administration use cases. Every method takes the
// acting identity explicitly; the policy decision happens inside the service.
type UserService interface {
	List(ctx context.Context, actor authz.Actor) ([]*domain.User, error)
	Get(ctx context.Context, actor authz.Actor, id string) (*domain.User, error)
	Create(ctx context.Context, actor authz.Actor, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, actor authz.Actor, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor authz.Actor, id string) error
	// AssignRoles replaces the target's whole role set. Every name must exist.
	AssignRoles(ctx context.Context, actor authz.Actor, id string, roles []string) (*domain.User, error)
	// GrantPermissions adds direct grants to the target. Every name must exist.
	GrantPermissions(ctx context.Context, actor authz.Actor, id string, permissions []string) (*domain.User, error)
}
