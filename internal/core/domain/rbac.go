package domain

// Permission names used by the authorization policy. Job permissions keep the
// space-separated spelling, user-management permissions the hyphenated one;
// both vocabularies are seeded at startup.
const (
	PermCreateJobs = "create jobs"
	PermUpdateJobs = "update jobs"
	PermDeleteJobs = "delete jobs"

	PermViewUsers   = "view-users"
	PermCreateUsers = "create-users"
	PermUpdateUsers = "update-users"
	PermDeleteUsers = "delete-users"
	PermAssignRoles = "assign-roles"
)

// Role is a named group carrying a bundle of permission names. Every member of
// the role inherits its permissions.
type Role struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// Permission is a named capability attachable to a role or directly to a user.
type Permission struct {
	Name string `json:"name"`
}
