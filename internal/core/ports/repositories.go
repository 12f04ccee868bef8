package ports

import (
	"context"
	"time"

	"pos-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories.go -package=mocks

// AttemptStore keeps transient settlement attempts.
// Save is a compare-and-swap on Attempt.Version: it fails with
// domain.ErrVersionConflict when the stored version differs, and on success
// increments the version of the passed attempt.
type AttemptStore interface {
	Create(ctx context.Context, attempt *domain.Attempt, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Attempt, error) // domain.ErrAttemptNotFound when missing or expired
	Save(ctx context.Context, attempt *domain.Attempt, ttl time.Duration) error
}

// ConfirmationRepository persists confirmed settlements (durable idempotency layer).
type ConfirmationRepository interface {
	Create(ctx context.Context, tx pgx.Tx, c *domain.Confirmation) error
	GetByAttemptID(ctx context.Context, attemptID uuid.UUID) (*domain.Confirmation, error)
	GetStats(ctx context.Context, storeID string, since *time.Time) (*SettlementStats, error)
}

// SettlementStats holds aggregated confirmed-settlement figures for the dashboard.
type SettlementStats struct {
	Confirmed     int64                                 `json:"confirmed"`
	TotalDue      domain.Money                          `json:"total_due"`
	TotalTendered domain.Money                          `json:"total_tendered"`
	TotalChange   domain.Money                          `json:"total_change"`
	ByMethod      map[domain.PaymentMethod]domain.Money `json:"by_method"`
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
