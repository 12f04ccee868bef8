package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"pos-settlement/internal/core/domain"
	"pos-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that records attempt mutations once
// the handler has answered. Confirms rejected by the sales API are recorded
// as CONFIRM_FAILED.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		action := mapRouteToAction(c.FullPath(), c.Request.Method, status)
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:        uuid.New(),
			StoreID:   c.GetString(CtxStoreID),
			UserID:    c.GetString(CtxUserID),
			AttemptID: attemptID(c),
			Action:    action,
			IPAddress: c.ClientIP(),
			Details:   string(details),
			CreatedAt: time.Now().UTC(),
		})
	}
}

func mapRouteToAction(route, method string, status int) domain.AuditAction {
	ok := status >= 200 && status < 300
	switch {
	case route == "/api/v1/attempts" && method == http.MethodPost && ok:
		return domain.AuditActionOpenAttempt
	case route == "/api/v1/attempts/:id/tendered" && method == http.MethodPut && ok:
		return domain.AuditActionUpdateTendered
	case route == "/api/v1/attempts/:id/split" && method == http.MethodPost && ok:
		return domain.AuditActionProposeSplit
	case route == "/api/v1/attempts/:id" && method == http.MethodDelete && ok:
		return domain.AuditActionAbandon
	case route == "/api/v1/attempts/:id/confirm" && method == http.MethodPost:
		switch {
		case ok:
			return domain.AuditActionConfirm
		case status == http.StatusBadGateway, status == http.StatusUnauthorized:
			return domain.AuditActionConfirmFailed
		}
	}
	return ""
}

// attemptID prefers the id set by the handler, then the route parameter.
func attemptID(c *gin.Context) *uuid.UUID {
	if v, ok := c.Get(CtxAttemptID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return &id
		}
	}
	if id, err := uuid.Parse(c.Param("id")); err == nil {
		return &id
	}
	return nil
}
