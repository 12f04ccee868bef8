package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionOpenAttempt    AuditAction = "OPEN_ATTEMPT"
	AuditActionUpdateTendered AuditAction = "UPDATE_TENDERED"
	AuditActionProposeSplit   AuditAction = "PROPOSE_SPLIT"
	AuditActionConfirm        AuditAction = "CONFIRM"
	AuditActionConfirmFailed  AuditAction = "CONFIRM_FAILED"
	AuditActionAbandon        AuditAction = "ABANDON"
)

// AuditLog records a single audited action on a settlement attempt.
type AuditLog struct {
	ID        uuid.UUID   `json:"id"`
	StoreID   string      `json:"store_id"`
	UserID    string      `json:"user_id"`
	AttemptID *uuid.UUID  `json:"attempt_id,omitempty"`
	Action    AuditAction `json:"action"`
	Details   string      `json:"details,omitempty"` // JSON string
	IPAddress string      `json:"ip_address,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
