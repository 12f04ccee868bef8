package middleware

import (
	"strings"

	"pos-settlement/internal/core/ports"
	"pos-settlement/pkg/apperror"
	"pos-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// Context keys
	CtxSession   = "session"
	CtxUserID    = "user_id"
	CtxStoreID   = "store_id"
	CtxAttemptID = "attempt_id"
	CtxRequestID = "request_id"

	HeaderRequestID = "X-Request-ID"
)

// SessionBuilder binds a validated token to a ports.Session for one request.
type SessionBuilder func(token string, claims ports.TokenClaims) ports.Session

// SessionAuth validates the bearer token issued by the sales API and stores
// the request's session in the context. Tokens the sales API has already
// rejected are refused here.
func SessionAuth(tokenSvc ports.TokenService, revocations ports.SessionRevocations, build SessionBuilder, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.Abort(c, apperror.ErrMissingToken())
			return
		}

		claims, err := tokenSvc.Validate(token)
		if err != nil {
			response.Abort(c, apperror.ErrInvalidToken())
			return
		}

		if revocations != nil {
			revoked, err := revocations.IsRevoked(c.Request.Context(), token)
			if err != nil {
				log.Warn().Err(err).Msg("revocation check failed, allowing request")
			} else if revoked {
				response.Abort(c, apperror.ErrInvalidToken())
				return
			}
		}

		c.Set(CtxSession, build(token, *claims))
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxStoreID, claims.StoreID)
		c.Next()
	}
}

// SessionFrom returns the session stored by SessionAuth.
func SessionFrom(c *gin.Context) (ports.Session, bool) {
	v, ok := c.Get(CtxSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(ports.Session)
	return s, ok
}
