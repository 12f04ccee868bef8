package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SessionRevocations implements ports.SessionRevocations. Tokens are stored
// as SHA-256 digests so raw bearer tokens never land in Redis.
type SessionRevocations struct {
	client *goredis.Client
	prefix string
}

// NewSessionRevocations creates a new Redis-backed revocation list.
func NewSessionRevocations(client *goredis.Client) *SessionRevocations {
	return &SessionRevocations{
		client: client,
		prefix: "revoked:",
	}
}

func (s *SessionRevocations) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return s.prefix + hex.EncodeToString(sum[:])
}

// Revoke marks token as rejected for ttl.
func (s *SessionRevocations) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(token), 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis session revoke: %w", err)
	}
	return nil
}

// IsRevoked reports whether token was revoked.
func (s *SessionRevocations) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("redis session lookup: %w", err)
	}
	return n > 0, nil
}
