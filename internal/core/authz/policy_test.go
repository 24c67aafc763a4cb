package authz

import (
	"testing"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

func TestDecide_CreateJob_RequiresPermission(t *testing.T) {
	employer := NewActor("u1", []string{domain.RoleEmployer}, []string{domain.PermCreateJobs})
	if err := Decide(employer, ActionCreateJob, nil); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}

	plain := NewActor("u2", []string{domain.RoleUser}, nil)
	if err := Decide(plain, ActionCreateJob, nil); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDecide_UpdateJob_OwnershipAndPermission(t *testing.T) {
	owner := NewActor("emp1", []string{domain.RoleEmployer}, []string{domain.PermUpdateJobs})
	ownJob := &Target{OwnerID: "emp1"}
	otherJob := &Target{OwnerID: "emp2"}

	if err := Decide(owner, ActionUpdateJob, ownJob); err != nil {
		t.Fatalf("owner with permission should update own job: %v", err)
	}
	if err := Decide(owner, ActionUpdateJob, otherJob); err != domain.ErrForbidden {
		t.Fatalf("updating another employer's job must be denied, got %v", err)
	}

	noPerm := NewActor("emp1", []string{domain.RoleEmployer}, nil)
	if err := Decide(noPerm, ActionUpdateJob, ownJob); err != domain.ErrForbidden {
		t.Fatalf("owner without permission must be denied, got %v", err)
	}

	notEmployer := NewActor("emp1", []string{domain.RoleUser}, []string{domain.PermUpdateJobs})
	if err := Decide(notEmployer, ActionUpdateJob, ownJob); err != domain.ErrForbidden {
		t.Fatalf("non-employer must be denied, got %v", err)
	}
}

func TestDecide_DeleteJob_PermissionCheckedVariant(t *testing.T) {
	// Role and ownership alone are not enough; `delete jobs` is required too.
	ownerNoPerm := NewActor("emp1", []string{domain.RoleEmployer}, nil)
	if err := Decide(ownerNoPerm, ActionDeleteJob, &Target{OwnerID: "emp1"}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden without delete permission, got %v", err)
	}

	owner := NewActor("emp1", []string{domain.RoleEmployer}, []string{domain.PermDeleteJobs})
	if err := Decide(owner, ActionDeleteJob, &Target{OwnerID: "emp1"}); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
	if err := Decide(owner, ActionDeleteJob, &Target{OwnerID: "emp2"}); err != domain.ErrForbidden {
		t.Fatalf("deleting a job owned by another employer must be denied, got %v", err)
	}
}

func TestDecide_ListJobs_UserRoleOnly(t *testing.T) {
	user := NewActor("u1", []string{domain.RoleUser}, nil)
	if err := Decide(user, ActionListJobs, nil); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
	employer := NewActor("u2", []string{domain.RoleEmployer}, nil)
	if err := Decide(employer, ActionListJobs, nil); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDecide_Applications(t *testing.T) {
	applicant := NewActor("u1", []string{domain.RoleUser}, nil)
	if err := Decide(applicant, ActionCreateApplication, nil); err != nil {
		t.Fatalf("user role should be able to apply: %v", err)
	}

	employer := NewActor("e1", []string{domain.RoleEmployer}, nil)
	if err := Decide(employer, ActionCreateApplication, nil); err != domain.ErrForbidden {
		t.Fatalf("employer must not apply, got %v", err)
	}

	own := &Target{OwnerID: "u1"}
	if err := Decide(applicant, ActionDeleteApplication, own); err != nil {
		t.Fatalf("applicant should delete own application: %v", err)
	}
	stranger := NewActor("u2", []string{domain.RoleUser}, nil)
	if err := Decide(stranger, ActionDeleteApplication, own); err != domain.ErrForbidden {
		t.Fatalf("another user must not delete the application, got %v", err)
	}

	if err := Decide(employer, ActionListEmployerApplications, nil); err != nil {
		t.Fatalf("employer should list applications: %v", err)
	}
	if err := Decide(applicant, ActionListEmployerApplications, nil); err != domain.ErrForbidden {
		t.Fatalf("user must not list employer applications, got %v", err)
	}
}

func TestDecide_DeleteUser_AdminTargetAlwaysDenied(t *testing.T) {
	admin := NewActor("a1", []string{domain.RoleAdmin}, []string{domain.PermDeleteUsers})

	if err := Decide(admin, ActionDeleteUsers, &Target{OwnerID: "u1"}); err != nil {
		t.Fatalf("admin with delete-users should delete a plain user: %v", err)
	}
	// Even a fully privileged admin cannot delete an admin-held account.
	if err := Decide(admin, ActionDeleteUsers, &Target{OwnerID: "a2", AdminUser: true}); err != domain.ErrForbidden {
		t.Fatalf("deleting an admin must be denied, got %v", err)
	}
}

func TestDecide_UserManagement_CapabilityFlags(t *testing.T) {
	cases := []struct {
		action Action
		perm   string
	}{
		{ActionViewUsers, domain.PermViewUsers},
		{ActionCreateUsers, domain.PermCreateUsers},
		{ActionUpdateUsers, domain.PermUpdateUsers},
		{ActionAssignRoles, domain.PermAssignRoles},
	}
	for _, tc := range cases {
		with := NewActor("u1", nil, []string{tc.perm})
		if err := Decide(with, tc.action, nil); err != nil {
			t.Fatalf("%s: expected allow with %q, got %v", tc.action, tc.perm, err)
		}
		without := NewActor("u1", []string{domain.RoleAdmin}, nil)
		if err := Decide(without, tc.action, nil); err != domain.ErrForbidden {
			t.Fatalf("%s: expected ErrForbidden without %q, got %v", tc.action, tc.perm, err)
		}
	}
}

func TestDecide_UnknownAction(t *testing.T) {
	actor := NewActor("u1", []string{domain.RoleAdmin}, []string{domain.PermAssignRoles})
	if err := Decide(actor, Action("nope"), nil); err != domain.ErrForbidden {
		t.Fatalf("unknown action must be denied, got %v", err)
	}
}

func TestActorFromUser_ExpandsRolePermissions(t *testing.T) {
	u := &domain.User{
		ID:          "u1",
		Roles:       []string{domain.RoleEmployer},
		Permissions: []string{domain.PermViewUsers},
	}
	roles := []domain.Role{
		{Name: domain.RoleEmployer, Permissions: []string{domain.PermCreateJobs, domain.PermUpdateJobs}},
		{Name: domain.RoleAdmin, Permissions: []string{domain.PermDeleteUsers}},
	}

	actor := ActorFromUser(u, roles)
	if !actor.HasPermission(domain.PermCreateJobs) || !actor.HasPermission(domain.PermUpdateJobs) {
		t.Fatalf("role-carried permissions not inherited")
	}
	if !actor.HasPermission(domain.PermViewUsers) {
		t.Fatalf("direct grant lost")
	}
	if actor.HasPermission(domain.PermDeleteUsers) {
		t.Fatalf("permissions leaked from a role the user does not hold")
	}
}
