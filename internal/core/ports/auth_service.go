package ports

import (
	"context"
	"time"

	"github.com/jobboard/job-board-api/internal/core/authz"
	"github.com/jobboard/job-board-api/internal/core/domain"
)

// RegisterInput carries a registration request. Role is optional and defaults
// to "user"; self-selecting "admin" is rejected by the service.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthResult is returned after a successful register or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// TokenClaims is the identity extracted from a verified token. Roles and
// permissions are deliberately absent: they are re-read from the store on
// every request so grants take effect immediately.
type TokenClaims struct {
	UserID    string
	JTI       string
	ExpiresAt time.Time
}

// AuthService defines registration, login, logout and identity resolution.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Logout revokes the token until its natural expiry.
	Logout(ctx context.Context, claims TokenClaims) error
	// ResolveActor loads the user behind verified claims and expands role
	// permissions into an effective actor.
	ResolveActor(ctx context.Context, claims TokenClaims) (authz.Actor, *domain.User, error)
}
