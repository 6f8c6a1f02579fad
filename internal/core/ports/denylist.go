package ports

import (
	"context"
	"time"
)

// TokenDenylist records tokens revoked by logout until they would have
// expired anyway. A token absent from the denylist is judged on its
// signature and expiry alone.
type TokenDenylist interface {
	// Revoke marks the raw token as revoked for ttl.
	Revoke(ctx context.Context, rawToken string, ttl time.Duration) error
	// IsRevoked reports whether the raw token has been revoked.
	IsRevoked(ctx context.Context, rawToken string) (bool, error)
}
