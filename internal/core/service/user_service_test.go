package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobboard/job-board-api/internal/core/authz"
	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

func adminActor() authz.Actor {
	return authz.NewActor("admin-1", []string{domain.RoleAdmin}, []string{
		domain.PermViewUsers, domain.PermCreateUsers, domain.PermUpdateUsers,
		domain.PermDeleteUsers, domain.PermAssignRoles,
	})
}

func plainActor(id string) authz.Actor {
	return authz.NewActor(id, []string{domain.RoleUser}, nil)
}

func seedUser(t *testing.T, r *memUserRepo, name, email string, roles ...string) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := r.Create(context.Background(), &domain.User{
		Name: name, Email: email, PasswordHash: "x",
		Roles: roles, Permissions: []string{},
		CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func TestUserList_RequiresViewPermission(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, newMemRoleRepo(), zerolog.Nop())
	seedUser(t, users, "Alice", "alice@example.com", domain.RoleUser)

	if _, err := svc.List(context.Background(), plainActor("u1")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("plain user list err = %v, want ErrForbidden", err)
	}

	got, err := svc.List(context.Background(), adminActor())
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("admin list returned %d users, want 1", len(got))
	}
}

func TestUserCreate_UnknownRoleRejected(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), newMemRoleRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), adminActor(), ports.CreateUserInput{
		Name: "Bob", Email: "bob@example.com", Password: "secret123", Roles: []string{"superuser"},
	})
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("err = %v, want ErrRoleNotFound", err)
	}
}

func TestUserCreate_DefaultsToUserRole(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), newMemRoleRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), adminActor(), ports.CreateUserInput{
		Name: "Bob", Email: "bob@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(created.Roles) != 1 || created.Roles[0] != domain.RoleUser {
		t.Fatalf("roles = %v, want [user]", created.Roles)
	}
}

func TestUserDelete_AdminAccountProtected(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, newMemRoleRepo(), zerolog.Nop())
	other := seedUser(t, users, "Root", "root@example.com", domain.RoleAdmin)

	err := svc.Delete(context.Background(), adminActor(), other.ID)
	if !errors.Is(err, domain.ErrAdminProtected) {
		t.Fatalf("err = %v, want ErrAdminProtected", err)
	}
	if _, err := users.FindByID(context.Background(), other.ID); err != nil {
		t.Fatalf("admin account was removed: %v", err)
	}
}

func TestUserDelete_RemovesPlainUser(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, newMemRoleRepo(), zerolog.Nop())
	target := seedUser(t, users, "Alice", "alice@example.com", domain.RoleUser)

	if err := svc.Delete(context.Background(), adminActor(), target.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := users.FindByID(context.Background(), target.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("find after delete err = %v, want ErrUserNotFound", err)
	}
}

func TestUserDelete_UnprivilegedActorLearnsNothing(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, newMemRoleRepo(), zerolog.Nop())
	admin := seedUser(t, users, "Root", "root@example.com", domain.RoleAdmin)

	// The deny is identical whether the id exists, is admin-held, or is
	// unknown: always the generic forbidden, never a 404 or the admin message.
	for name, id := range map[string]string{
		"admin-held id": admin.ID,
		"unknown id":    "missing",
	} {
		if err := svc.Delete(context.Background(), plainActor("u1"), id); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("%s: err = %v, want ErrForbidden", name, err)
		}
	}
}

func TestUserDelete_MissingUserIs404ForAuthorizedActor(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), newMemRoleRepo(), zerolog.Nop())

	err := svc.Delete(context.Background(), adminActor(), "missing")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestAssignRoles_ReplacesWholeSet(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, newMemRoleRepo(), zerolog.Nop())
	target := seedUser(t, users, "Alice", "alice@example.com", domain.RoleUser)

	updated, err := svc.AssignRoles(context.Background(), adminActor(), target.ID, []string{domain.RoleEmployer})
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if len(updated.Roles) != 1 || updated.Roles[0] != domain.RoleEmployer {
		t.Fatalf("roles = %v, want [employer] only", updated.Roles)
	}
}

func TestAssignRoles_IdempotentAndDeduplicated(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, newMemRoleRepo(), zerolog.Nop())
	target := seedUser(t, users, "Alice", "alice@example.com", domain.RoleUser)

	roles := []string{domain.RoleEmployer, domain.RoleEmployer, domain.RoleUser}
	first, err := svc.AssignRoles(context.Background(), adminActor(), target.ID, roles)
	if err != nil {
		t.Fatalf("first assign: %v", err)
	}
	second, err := svc.AssignRoles(context.Background(), adminActor(), target.ID, roles)
	if err != nil {
		t.Fatalf("second assign: %v", err)
	}
	if len(first.Roles) != 2 || len(second.Roles) != 2 {
		t.Fatalf("roles = %v then %v, want 2 distinct each time", first.Roles, second.Roles)
	}
}

func TestAssignRoles_UnknownRoleLeavesUserUntouched(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, newMemRoleRepo(), zerolog.Nop())
	target := seedUser(t, users, "Alice", "alice@example.com", domain.RoleUser)

	_, err := svc.AssignRoles(context.Background(), adminActor(), target.ID, []string{domain.RoleEmployer, "ghost"})
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("err = %v, want ErrRoleNotFound", err)
	}
	got, _ := users.FindByID(context.Background(), target.ID)
	if len(got.Roles) != 1 || got.Roles[0] != domain.RoleUser {
		t.Fatalf("roles mutated to %v on failed assign", got.Roles)
	}
}

func TestAssignRoles_RequiresPermission(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, newMemRoleRepo(), zerolog.Nop())
	target := seedUser(t, users, "Alice", "alice@example.com", domain.RoleUser)

	_, err := svc.AssignRoles(context.Background(), plainActor("u2"), target.ID, []string{domain.RoleEmployer})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestGrantPermissions_Additive(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, newMemRoleRepo(), zerolog.Nop())
	target := seedUser(t, users, "Alice", "alice@example.com", domain.RoleUser)

	first, err := svc.GrantPermissions(context.Background(), adminActor(), target.ID, []string{domain.PermCreateJobs})
	if err != nil {
		t.Fatalf("first grant: %v", err)
	}
	second, err := svc.GrantPermissions(context.Background(), adminActor(), target.ID, []string{domain.PermUpdateJobs, domain.PermCreateJobs})
	if err != nil {
		t.Fatalf("second grant: %v", err)
	}
	if len(first.Permissions) != 1 {
		t.Fatalf("permissions after first grant = %v", first.Permissions)
	}
	if len(second.Permissions) != 2 {
		t.Fatalf("permissions after second grant = %v, want create+update with no duplicates", second.Permissions)
	}
}

func TestGrantPermissions_UnknownPermissionRejected(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, newMemRoleRepo(), zerolog.Nop())
	target := seedUser(t, users, "Alice", "alice@example.com", domain.RoleUser)

	_, err := svc.GrantPermissions(context.Background(), adminActor(), target.ID, []string{"fly"})
	if !errors.Is(err, domain.ErrPermissionNotFound) {
		t.Fatalf("err = %v, want ErrPermissionNotFound", err)
	}
}
