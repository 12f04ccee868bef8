package ports

import (
	"context"
	"encoding/json"
	"time"

	"pos-settlement/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/services.go -package=mocks

// Session is the caller's authenticated session with the external API.
// It is injected per request; nothing reads a token from global state.
type Session interface {
	CurrentToken() string
	StoreID() string
	UserID() string
	// OnUnauthorized is invoked when the external API rejects the token.
	OnUnauthorized()
}

// TokenService validates session tokens issued by the external API.
type TokenService interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session claims.
type TokenClaims struct {
	UserID    string
	StoreID   string
	ExpiresAt time.Time
}

// SalesGateway submits confirmed settlements to the external sales API.
type SalesGateway interface {
	Submit(ctx context.Context, session Session, sub SalesSubmission) (*SalesReceipt, error)
}

// SalesSubmission is the payload handed to the sales API.
type SalesSubmission struct {
	IdempotencyKey string
	Kind           domain.AttemptKind
	TargetID       string
	CustomerID     *string
	Items          json.RawMessage
	Payments       []domain.TenderedPayment
}

// SalesReceipt is the sales API's answer to an accepted submission.
type SalesReceipt struct {
	Reference string
}

// ConfirmationCache is the Redis-layer confirmation lookup (fast path).
type ConfirmationCache interface {
	Get(ctx context.Context, attemptID uuid.UUID) (*domain.Confirmation, error) // nil, nil on miss
	Set(ctx context.Context, c *domain.Confirmation, ttl time.Duration) error
}

// SessionRevocations remembers tokens the external API has rejected.
type SessionRevocations interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// SubmissionGuard serializes submissions per attempt.
type SubmissionGuard interface {
	// Acquire returns true and an ownership token if the caller now owns the
	// attempt's submission slot.
	Acquire(ctx context.Context, attemptID uuid.UUID, ttl time.Duration) (string, bool, error)
	// Release frees the slot only while token still owns it.
	Release(ctx context.Context, attemptID uuid.UUID, token string) error
}

// StatsCache caches dashboard stats between confirms.
type StatsCache interface {
	Get(ctx context.Context, storeID, period string) (*SettlementStats, error) // nil, nil on miss
	Set(ctx context.Context, storeID, period string, stats *SettlementStats, ttl time.Duration) error
	Invalidate(ctx context.Context, storeID string) error
}

// --- Service Ports (Business Logic) ---

// SettlementService runs settlement attempts end to end.
type SettlementService interface {
	Evaluate(ctx context.Context, req domain.SettlementRequest) (*domain.SettlementResult, error)
	ProposeSplit(ctx context.Context, due domain.Money, partyCount int) ([]domain.Money, error)

	OpenAttempt(ctx context.Context, session Session, req OpenAttemptRequest) (*AttemptView, error)
	GetAttempt(ctx context.Context, session Session, id uuid.UUID) (*AttemptView, error)
	UpdateTendered(ctx context.Context, session Session, id uuid.UUID, rows []domain.TenderedPayment) (*AttemptView, error)
	SplitAttempt(ctx context.Context, session Session, id uuid.UUID, partyCount int) (*AttemptView, error)
	Confirm(ctx context.Context, session Session, id uuid.UUID) (*AttemptView, error)
	Abandon(ctx context.Context, session Session, id uuid.UUID) (*AttemptView, error)
}

// OpenAttemptRequest holds validated input for opening an attempt.
type OpenAttemptRequest struct {
	Kind       domain.AttemptKind
	TargetID   string
	CustomerID *string
	Items      json.RawMessage
	Due        domain.Money
	Tendered   []domain.TenderedPayment
}

// AttemptView is an attempt together with its live evaluation, and its
// confirmation once the sales API has accepted it.
type AttemptView struct {
	Attempt      *domain.Attempt
	Evaluation   domain.SettlementResult
	Confirmation *domain.Confirmation
}

// ReportingService defines dashboard queries over confirmed settlements.
type ReportingService interface {
	GetStats(ctx context.Context, storeID, period string) (*SettlementStats, error)
	Invalidate(ctx context.Context, storeID string)
}

// AuditService defines audit logging operations.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// SettlementMetrics records settlement activity.
type SettlementMetrics interface {
	ObserveEvaluation(status domain.SettlementStatus)
	ObserveSplit(partyCount int)
	ObserveConfirmation(outcome string, took time.Duration)
}

// Confirmation outcomes reported to SettlementMetrics.
const (
	OutcomeConfirmed = "confirmed"
	OutcomeReplayed  = "replayed"
	OutcomeFailed    = "failed"
	OutcomeRejected  = "rejected"
	OutcomeInFlight  = "in_flight"
	OutcomeDiscarded = "discarded"
)
