package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

// seedRoles maps each role to the permissions it carries. The employer role
// gets the job-management bundle; admin gets the user-management capability
// set. The plain user role carries no permissions.
var seedRoles = map[string][]string{
	domain.RoleUser: {},
	domain.RoleEmployer: {
		domain.PermCreateJobs,
		domain.PermUpdateJobs,
		domain.PermDeleteJobs,
	},
	domain.RoleAdmin: {
		domain.PermViewUsers,
		domain.PermCreateUsers,
		domain.PermUpdateUsers,
		domain.PermDeleteUsers,
		domain.PermAssignRoles,
	},
}

var seedPermissions = []string{
	domain.PermCreateJobs,
	domain.PermUpdateJobs,
	domain.PermDeleteJobs,
	domain.PermViewUsers,
	domain.PermCreateUsers,
	domain.PermUpdateUsers,
	domain.PermDeleteUsers,
	domain.PermAssignRoles,
}

// Seed upserts the role and permission catalogues. First write wins: existing
// documents keep their permission sets so operator changes survive restarts.
func Seed(ctx context.Context, db *mongo.Database) error {
	roles := db.Collection(rolesCollection)
	for name, perms := range seedRoles {
		_, err := roles.UpdateOne(ctx,
			bson.M{"_id": name},
			bson.M{"$setOnInsert": bson.M{"permissions": perms}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
	}

	permissions := db.Collection(permissionsCollection)
	for _, name := range seedPermissions {
		_, err := permissions.UpdateOne(ctx,
			bson.M{"_id": name},
			bson.M{"$setOnInsert": bson.M{"seeded": true}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed permission %q: %w", name, err)
		}
	}

	return nil
}
