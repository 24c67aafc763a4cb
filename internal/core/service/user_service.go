package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobboard/job-board-api/internal/metrics"
	"github.com/jobboard/job-board-api/internal/core/authz"
	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

// UserService implements user administration: listing, profile updates,
// deletion, role assignment and permission grants. Each operation is gated by
// the authorization policy against the explicit actor.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, logger: logger}
}

func (s *UserService) List(ctx context.Context, actor authz.Actor) ([]*domain.User, error) {
	if err := decide(actor, authz.ActionViewUsers, nil); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, actor authz.Actor, id string) (*domain.User, error) {
	if err := decide(actor, authz.ActionViewUsers, nil); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, actor authz.Actor, input ports.CreateUserInput) (*domain.User, error) {
	if err := decide(actor, authz.ActionCreateUsers, nil); err != nil {
		return nil, err
	}

	if len(input.Roles) > 0 {
		if _, err := s.roles.FindRoles(ctx, input.Roles); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = []string{domain.RoleUser}
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Roles:        roles,
		Permissions:  []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("created_by", actor.ID).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, actor authz.Actor, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if err := decide(actor, authz.ActionUpdateUsers, nil); err != nil {
		return nil, err
	}
	return s.users.Update(ctx, id, ports.UserUpdate{Name: input.Name, Email: input.Email})
}

// Delete removes a user account. The capability check runs before the target
// lookup, so an actor without delete-users learns nothing about the id: not
// whether it exists, not what roles it holds. Accounts holding the admin role
// are never deletable, not even by another admin.
func (s *UserService) Delete(ctx context.Context, actor authz.Actor, id string) error {
	if err := decide(actor, authz.ActionDeleteUsers, nil); err != nil {
		return err
	}

	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if target.HasRole(domain.RoleAdmin) {
		return domain.ErrAdminProtected
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Str("deleted_by", actor.ID).Msg("user deleted")
	return nil
}

// AssignRoles replaces the target's whole role set with the given names.
// Every name must exist in the role catalogue. Repeating the same set is a
// no-op and never duplicates.
func (s *UserService) AssignRoles(ctx context.Context, actor authz.Actor, id string, roles []string) (*domain.User, error) {
	if err := decide(actor, authz.ActionAssignRoles, nil); err != nil {
		return nil, err
	}

	if _, err := s.roles.FindRoles(ctx, roles); err != nil {
		return nil, err
	}

	updated, err := s.users.ReplaceRoles(ctx, id, dedupe(roles))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Strs("roles", updated.Roles).Str("assigned_by", actor.ID).Msg("roles assigned")
	return updated, nil
}

// GrantPermissions adds direct grants to the target's permission set. Grants
// are additive; existing grants are retained.
func (s *UserService) GrantPermissions(ctx context.Context, actor authz.Actor, id string, permissions []string) (*domain.User, error) {
	if err := decide(actor, authz.ActionAssignRoles, nil); err != nil {
		return nil, err
	}

	if _, err := s.roles.FindPermissions(ctx, permissions); err != nil {
		return nil, err
	}

	updated, err := s.users.AddPermissions(ctx, id, dedupe(permissions))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Strs("permissions", permissions).Str("granted_by", actor.ID).Msg("permissions granted")
	return updated, nil
}

// decide records the policy outcome in metrics before returning it.
func decide(actor authz.Actor, action authz.Action, target *authz.Target) error {
	err := authz.Decide(actor, action, target)
	outcome := "allow"
	if err != nil {
		outcome = "deny"
	}
	metrics.AuthzDecisionsTotal.WithLabelValues(string(action), outcome).Inc()
	return err
}

// dedupe returns names with duplicates removed, preserving first occurrence.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
