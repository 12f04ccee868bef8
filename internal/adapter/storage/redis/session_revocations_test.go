package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRevocations(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	revocations := NewSessionRevocations(client)
	ctx := context.Background()

	revoked, err := revocations.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, revocations.Revoke(ctx, "token-a", time.Minute))

	revoked, err = revocations.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = revocations.IsRevoked(ctx, "token-b")
	require.NoError(t, err)
	assert.False(t, revoked)

	for _, k := range s.Keys() {
		assert.False(t, strings.Contains(k, "token-a"), "raw token must not be stored")
	}

	s.FastForward(2 * time.Minute)
	revoked, err = revocations.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)
}
