package domain

import "time"

// Role names known to the system. Roles are coarse groupings; fine-grained
// access is governed by permissions attached to roles or granted directly.
const (
	RoleUser     = "user"
	RoleAdmin    = "admin"
	RoleEmployer = "employer"
)

// User models an account in the system. Roles and Permissions hold names only;
// the effective permission set is the union of direct grants and the
// permissions carried by each held role.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	Permissions  []string  `json:"permissions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
