package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pos-settlement/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// AttemptStore implements ports.AttemptStore. Attempts are JSON documents
// with a TTL; Save is an optimistic compare-and-swap on Version using WATCH.
type AttemptStore struct {
	client *goredis.Client
	prefix string
}

// NewAttemptStore creates a new Redis-backed attempt store.
func NewAttemptStore(client *goredis.Client) *AttemptStore {
	return &AttemptStore{
		client: client,
		prefix: "attempt:",
	}
}

func (s *AttemptStore) key(id uuid.UUID) string {
	return s.prefix + id.String()
}

// Create stores a new attempt. It fails if the id is already taken.
func (s *AttemptStore) Create(ctx context.Context, attempt *domain.Attempt, ttl time.Duration) error {
	payload, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("marshal attempt: %w", err)
	}
	ok, err := s.client.SetNX(ctx, s.key(attempt.ID), payload, ttl).Result()
	if err != nil {
		return fmt.Errorf("redis attempt create: %w", err)
	}
	if !ok {
		return fmt.Errorf("redis attempt create: %s: %w", attempt.ID, domain.ErrVersionConflict)
	}
	return nil
}

// Get loads an attempt by id.
func (s *AttemptStore) Get(ctx context.Context, id uuid.UUID) (*domain.Attempt, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrAttemptNotFound
		}
		return nil, fmt.Errorf("redis attempt get: %w", err)
	}
	return decodeAttempt(raw)
}

// Save writes attempt if the stored version still equals attempt.Version,
// then bumps attempt.Version. The TTL is refreshed on every write.
func (s *AttemptStore) Save(ctx context.Context, attempt *domain.Attempt, ttl time.Duration) error {
	key := s.key(attempt.ID)
	expected := attempt.Version

	next := *attempt
	next.Version = expected + 1
	payload, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("marshal attempt: %w", err)
	}

	txf := func(tx *goredis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, goredis.Nil) {
				return domain.ErrAttemptNotFound
			}
			return err
		}
		stored, err := decodeAttempt(raw)
		if err != nil {
			return err
		}
		if stored.Version != expected {
			return domain.ErrVersionConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, payload, ttl)
			return nil
		})
		return err
	}

	err = s.client.Watch(ctx, txf, key)
	switch {
	case err == nil:
		attempt.Version = next.Version
		return nil
	case errors.Is(err, goredis.TxFailedErr):
		return domain.ErrVersionConflict
	case errors.Is(err, domain.ErrVersionConflict), errors.Is(err, domain.ErrAttemptNotFound):
		return err
	default:
		return fmt.Errorf("redis attempt save: %w", err)
	}
}

func decodeAttempt(raw []byte) (*domain.Attempt, error) {
	var a domain.Attempt
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("unmarshal attempt: %w", err)
	}
	return &a, nil
}
