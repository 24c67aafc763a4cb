package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests. They implement the
// ports interfaces with map-backed state and the same error vocabulary as the
// real adapters.

type memUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	clone := *user
	clone.ID = fmt.Sprintf("u%d", r.seq)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	out := *u
	return &out, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) ReplaceRoles(_ context.Context, id string, roles []string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Roles = append([]string(nil), roles...)
	out := *u
	return &out, nil
}

func (r *memUserRepo) AddPermissions(_ context.Context, id string, permissions []string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	for _, p := range permissions {
		exists := false
		for _, have := range u.Permissions {
			if have == p {
				exists = true
				break
			}
		}
		if !exists {
			u.Permissions = append(u.Permissions, p)
		}
	}
	out := *u
	return &out, nil
}

type memRoleRepo struct {
	roles map[string][]string
	perms map[string]struct{}
}

func newMemRoleRepo() *memRoleRepo {
	r := &memRoleRepo{
		roles: map[string][]string{
			domain.RoleUser:     {},
			domain.RoleEmployer: {domain.PermCreateJobs, domain.PermUpdateJobs, domain.PermDeleteJobs},
			domain.RoleAdmin:    {domain.PermViewUsers, domain.PermCreateUsers, domain.PermUpdateUsers, domain.PermDeleteUsers, domain.PermAssignRoles},
		},
		perms: make(map[string]struct{}),
	}
	for _, names := range r.roles {
		for _, p := range names {
			r.perms[p] = struct{}{}
		}
	}
	return r
}

func (r *memRoleRepo) ListRoles(_ context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(r.roles))
	for name, perms := range r.roles {
		out = append(out, domain.Role{Name: name, Permissions: perms})
	}
	return out, nil
}

func (r *memRoleRepo) FindRoles(_ context.Context, names []string) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(names))
	for _, name := range names {
		perms, ok := r.roles[name]
		if !ok {
			return nil, domain.ErrRoleNotFound
		}
		out = append(out, domain.Role{Name: name, Permissions: perms})
	}
	return out, nil
}

func (r *memRoleRepo) FindPermissions(_ context.Context, names []string) ([]domain.Permission, error) {
	out := make([]domain.Permission, 0, len(names))
	for _, name := range names {
		if _, ok := r.perms[name]; !ok {
			return nil, domain.ErrPermissionNotFound
		}
		out = append(out, domain.Permission{Name: name})
	}
	return out, nil
}

type memTokenStore struct {
	revoked map[string]bool
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{revoked: make(map[string]bool)}
}

func (s *memTokenStore) Revoke(_ context.Context, jti string, _ time.Duration) error {
	s.revoked[jti] = true
	return nil
}

func (s *memTokenStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	return s.revoked[jti], nil
}

type memJobRepo struct {
	seq  int
	jobs map[string]*domain.Job
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *memJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.seq++
	clone := *job
	clone.ID = fmt.Sprintf("j%d", r.seq)
	r.jobs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	out := *j
	return &out, nil
}

func (r *memJobRepo) List(_ context.Context, filter ports.ListJobsFilter) ([]*domain.Job, error) {
	out := []*domain.Job{}
	for _, j := range r.jobs {
		if filter.EmployerID != "" && j.EmployerID != filter.EmployerID {
			continue
		}
		clone := *j
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memJobRepo) Update(_ context.Context, id string, update ports.JobUpdate) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if update.Title != nil {
		j.Title = *update.Title
	}
	if update.Company != nil {
		j.Company = *update.Company
	}
	if update.Location != nil {
		j.Location = *update.Location
	}
	out := *j
	return &out, nil
}

func (r *memJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type memApplicationRepo struct {
	seq  int
	apps map[string]*domain.Application
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{apps: make(map[string]*domain.Application)}
}

func (r *memApplicationRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	r.seq++
	clone := *app
	clone.ID = fmt.Sprintf("a%d", r.seq)
	r.apps[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memApplicationRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	out := *a
	return &out, nil
}

func (r *memApplicationRepo) ListByJobIDs(_ context.Context, jobIDs []string) ([]*domain.Application, error) {
	ids := make(map[string]struct{}, len(jobIDs))
	for _, id := range jobIDs {
		ids[id] = struct{}{}
	}
	out := []*domain.Application{}
	for _, a := range r.apps {
		if _, ok := ids[a.JobID]; ok {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memApplicationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.apps[id]; !ok {
		return domain.ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}
