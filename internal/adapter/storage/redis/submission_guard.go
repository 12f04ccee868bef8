package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the slot only if it still carries the caller's token,
// so a holder whose TTL ran out cannot free a slot re-acquired by someone else.
var releaseScript = goredis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
  return redis.call('DEL', KEYS[1])
end
return 0
`)

// SubmissionGuard implements ports.SubmissionGuard using Redis SET NX.
// The TTL bounds how long a crashed process can hold the slot.
type SubmissionGuard struct {
	client *goredis.Client
	prefix string
}

// NewSubmissionGuard creates a new Redis-backed submission guard.
func NewSubmissionGuard(client *goredis.Client) *SubmissionGuard {
	return &SubmissionGuard{
		client: client,
		prefix: "inflight:",
	}
}

// Acquire atomically claims the submission slot of an attempt. On success it
// returns the token that Release must present.
func (g *SubmissionGuard) Acquire(ctx context.Context, attemptID uuid.UUID, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	result, err := g.client.SetArgs(ctx, g.prefix+attemptID.String(), token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis submission acquire: %w", err)
	}
	if result != "OK" {
		return "", false, nil
	}
	return token, true, nil
}

// Release frees the submission slot if token still owns it.
func (g *SubmissionGuard) Release(ctx context.Context, attemptID uuid.UUID, token string) error {
	if err := releaseScript.Run(ctx, g.client, []string{g.prefix + attemptID.String()}, token).Err(); err != nil {
		return fmt.Errorf("redis submission release: %w", err)
	}
	return nil
}
