package ports

import (
	"context"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

// RoleRepository defines read access to the role and permission catalogues.
// Both catalogues are seeded at startup and act as the registry of valid names.
type RoleRepository interface {
	// ListRoles returns every role with its permission set.
	ListRoles(ctx context.Context) ([]domain.Role, error)
	// FindRoles resolves each name to a role; any missing name yields
	// domain.ErrRoleNotFound.
	FindRoles(ctx context.Context, names []string) ([]domain.Role, error)
	// FindPermissions resolves each name to a permission; any missing name
	// yields domain.ErrPermissionNotFound.
	FindPermissions(ctx context.Context, names []string) ([]domain.Permission, error)
}
