package authz

import "github.com/jobboard/job-board-api/internal/core/domain"

// Actor is the authenticated identity a policy decision is made for. Role and
// permission membership are interned as sets so every check is a map lookup.
// Permissions hold the effective set: direct grants plus everything inherited
// through held roles.
type Actor struct {
	ID          string
	roles       map[string]struct{}
	permissions map[string]struct{}
}

// NewActor builds an Actor from role names and an already-expanded effective
// permission set.
func NewActor(id string, roles, permissions []string) Actor {
	a := Actor{
		ID:          id,
		roles:       make(map[string]struct{}, len(roles)),
		permissions: make(map[string]struct{}, len(permissions)),
	}
	for _, r := range roles {
		a.roles[r] = struct{}{}
	}
	for _, p := range permissions {
		a.permissions[p] = struct{}{}
	}
	return a
}

// ActorFromUser builds an Actor from a user record, expanding role-carried
// permissions through the given role set.
func ActorFromUser(u *domain.User, roles []domain.Role) Actor {
	perms := make([]string, 0, len(u.Permissions))
	perms = append(perms, u.Permissions...)
	for _, r := range roles {
		if u.HasRole(r.Name) {
			perms = append(perms, r.Permissions...)
		}
	}
	return NewActor(u.ID, u.Roles, perms)
}

// HasRole reports coarse role membership.
func (a Actor) HasRole(role string) bool {
	_, ok := a.roles[role]
	return ok
}

// HasPermission reports fine-grained capability membership on the effective set.
func (a Actor) HasPermission(permission string) bool {
	_, ok := a.permissions[permission]
	return ok
}

// Roles returns the actor's role names.
func (a Actor) Roles() []string {
	out := make([]string, 0, len(a.roles))
	for r := range a.roles {
		out = append(out, r)
	}
	return out
}
