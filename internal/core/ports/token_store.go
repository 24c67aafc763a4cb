package ports

import (
	"context"
	"time"
)

// TokenStore tracks revoked token ids so logout takes effect before the token
// expires. Entries only need to live for the remaining token lifetime.
type TokenStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
