package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist records revoked bearer tokens until their natural expiry.
// Key format: revoked:<sha256 of the raw token> — the token itself is a
// credential and never stored verbatim.
type Denylist struct {
	client *redis.Client
}

// NewDenylist creates a Denylist wrapping the given Redis client.
func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{client: client}
}

// Revoke marks the token as revoked for ttl. Once the TTL lapses the entry
// disappears, which is fine: by then the token has expired on its own.
func (d *Denylist) Revoke(ctx context.Context, rawToken string, ttl time.Duration) error {
	if err := d.client.Set(ctx, d.key(rawToken), "1", ttl).Err(); err != nil {
		return fmt.Errorf("denylist revoke: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been revoked.
func (d *Denylist) IsRevoked(ctx context.Context, rawToken string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(rawToken)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

func (d *Denylist) key(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return "revoked:" + hex.EncodeToString(sum[:])
}
