package service

import (
	"context"
	"sync"
	"time"

	"pos-settlement/internal/core/ports"

	"github.com/rs/zerolog"
)

const revokeTimeout = 2 * time.Second

// RequestSession implements ports.Session for one authenticated request.
type RequestSession struct {
	token       string
	claims      ports.TokenClaims
	revocations ports.SessionRevocations
	log         zerolog.Logger
	once        sync.Once
}

// NewRequestSession binds a validated token to its claims. revocations may
// be nil, in which case OnUnauthorized only logs.
func NewRequestSession(token string, claims ports.TokenClaims, revocations ports.SessionRevocations, log zerolog.Logger) *RequestSession {
	return &RequestSession{
		token:       token,
		claims:      claims,
		revocations: revocations,
		log:         log,
	}
}

func (s *RequestSession) CurrentToken() string { return s.token }
func (s *RequestSession) StoreID() string      { return s.claims.StoreID }
func (s *RequestSession) UserID() string       { return s.claims.UserID }

// OnUnauthorized revokes the token until it would have expired anyway, so
// later requests with it are refused before reaching the sales API.
func (s *RequestSession) OnUnauthorized() {
	s.once.Do(func() {
		s.log.Warn().Str("user_id", s.claims.UserID).Str("store_id", s.claims.StoreID).Msg("sales api rejected session token")
		if s.revocations == nil {
			return
		}
		ttl := time.Until(s.claims.ExpiresAt)
		if ttl <= 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), revokeTimeout)
		defer cancel()
		if err := s.revocations.Revoke(ctx, s.token, ttl); err != nil {
			s.log.Warn().Err(err).Msg("failed to revoke session token")
		}
	})
}
