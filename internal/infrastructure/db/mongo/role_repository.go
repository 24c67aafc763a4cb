package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

const (
	rolesCollection       = "roles"
	permissionsCollection = "permissions"
)

// RoleRepository reads the role and permission catalogues. Both collections
// are seeded at startup and act as the registry of valid names.
type RoleRepository struct {
	roles       *mongo.Collection
	permissions *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{
		roles:       db.Collection(rolesCollection),
		permissions: db.Collection(permissionsCollection),
	}
}

type mongoRole struct {
	Name        string   `bson:"_id"`
	Permissions []string `bson:"permissions"`
}

type mongoPermission struct {
	Name string `bson:"_id"`
}

func (r *RoleRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	cur, err := r.roles.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer cur.Close(ctx)

	var roles []domain.Role
	for cur.Next(ctx) {
		var mr mongoRole
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode role: %w", err)
		}
		roles = append(roles, domain.Role{Name: mr.Name, Permissions: mr.Permissions})
	}
	return roles, cur.Err()
}

// FindRoles resolves every name; a single missing name fails the whole call.
func (r *RoleRepository) FindRoles(ctx context.Context, names []string) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(names))
	for _, name := range names {
		var mr mongoRole
		if err := r.roles.FindOne(ctx, bson.M{"_id": name}).Decode(&mr); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, domain.ErrRoleNotFound
			}
			return nil, fmt.Errorf("find role %q: %w", name, err)
		}
		out = append(out, domain.Role{Name: mr.Name, Permissions: mr.Permissions})
	}
	return out, nil
}

// FindPermissions resolves every name; a single missing name fails the whole call.
func (r *RoleRepository) FindPermissions(ctx context.Context, names []string) ([]domain.Permission, error) {
	out := make([]domain.Permission, 0, len(names))
	for _, name := range names {
		var mp mongoPermission
		if err := r.permissions.FindOne(ctx, bson.M{"_id": name}).Decode(&mp); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, domain.ErrPermissionNotFound
			}
			return nil, fmt.Errorf("find permission %q: %w", name, err)
		}
		out = append(out, domain.Permission{Name: mp.Name})
	}
	return out, nil
}
