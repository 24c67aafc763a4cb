// Package authz holds the authorization policy: a pure decision function over
// an actor's role/permission sets and an optional target resource. It keeps no
// state of its own; all state lives in the stores feeding the Actor.
package authz

import "github.com/jobboard/job-board-api/internal/core/domain"

// Action names a policy-gated operation.
type Action string

const (
	ActionCreateJob Action = "jobs.create"
	ActionUpdateJob Action = "jobs.update"
	ActionDeleteJob Action = "jobs.delete"
	ActionListJobs  Action = "jobs.list"

	ActionCreateApplication        Action = "applications.create"
	ActionDeleteApplication        Action = "applications.delete"
	ActionListEmployerApplications Action = "applications.list_employer"

	ActionViewUsers   Action = "users.view"
	ActionCreateUsers Action = "users.create"
	ActionUpdateUsers Action = "users.update"
	ActionDeleteUsers Action = "users.delete"
	ActionAssignRoles Action = "users.assign_roles"
)

// Target carries the resource attributes a rule may inspect. OwnerID is the
// user id stored on the resource; AdminUser marks a target user holding the
// admin role, which no actor may delete.
type Target struct {
	OwnerID   string
	AdminUser bool
}

// Decide evaluates the rule for action against the actor and optional target.
// It returns nil to allow and domain.ErrForbidden to deny. Conditions combine
// with logical AND; the deny reason is always generic.
func Decide(actor Actor, action Action, target *Target) error {
	switch action {
	case ActionCreateJob:
		return allowIf(actor.HasPermission(domain.PermCreateJobs))

	case ActionUpdateJob:
		return allowIf(actor.HasRole(domain.RoleEmployer) &&
			owns(actor, target) &&
			actor.HasPermission(domain.PermUpdateJobs))

	case ActionDeleteJob:
		return allowIf(actor.HasRole(domain.RoleEmployer) &&
			owns(actor, target) &&
			actor.HasPermission(domain.PermDeleteJobs))

	case ActionListJobs:
		return allowIf(actor.HasRole(domain.RoleUser))

	case ActionCreateApplication:
		return allowIf(actor.HasRole(domain.RoleUser))

	case ActionDeleteApplication:
		return allowIf(actor.HasRole(domain.RoleUser) && owns(actor, target))

	case ActionListEmployerApplications:
		return allowIf(actor.HasRole(domain.RoleEmployer))

	case ActionViewUsers:
		return allowIf(actor.HasPermission(domain.PermViewUsers))

	case ActionCreateUsers:
		return allowIf(actor.HasPermission(domain.PermCreateUsers))

	case ActionUpdateUsers:
		return allowIf(actor.HasPermission(domain.PermUpdateUsers))

	case ActionDeleteUsers:
		if target != nil && target.AdminUser {
			return domain.ErrForbidden
		}
		return allowIf(actor.HasPermission(domain.PermDeleteUsers))

	case ActionAssignRoles:
		return allowIf(actor.HasPermission(domain.PermAssignRoles))
	}

	// Unknown actions never pass.
	return domain.ErrForbidden
}

func allowIf(ok bool) error {
	if ok {
		return nil
	}
	return domain.ErrForbidden
}

func owns(actor Actor, target *Target) bool {
	return target != nil && target.OwnerID != "" && target.OwnerID == actor.ID
}
