package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pos-settlement/internal/core/domain"
	"pos-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ConfirmationRepo implements ports.ConfirmationRepository.
type ConfirmationRepo struct {
	pool Pool
}

// NewConfirmationRepo creates a new ConfirmationRepo.
func NewConfirmationRepo(pool Pool) *ConfirmationRepo {
	return &ConfirmationRepo{pool: pool}
}

// Create inserts a confirmation and its payment rows within a database transaction.
// A second confirmation for the same attempt violates the primary key.
func (r *ConfirmationRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.Confirmation) error {
	query := `INSERT INTO settlement_confirmations (attempt_id, store_id, cashier_id, kind, target_id, customer_id,
		sale_reference, due, total_tendered, change_amount, confirmed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		c.AttemptID, c.StoreID, c.CashierID, c.Kind, c.TargetID, c.CustomerID,
		c.SaleReference, c.Due, c.TotalTendered, c.Change, c.ConfirmedAt,
	)
	if err != nil {
		return fmt.Errorf("insert confirmation: %w", err)
	}

	for i, p := range c.Payments {
		_, err := tx.Exec(ctx,
			`INSERT INTO settlement_payments (attempt_id, position, payment_method, amount) VALUES ($1, $2, $3, $4)`,
			c.AttemptID, i, p.Method, p.Amount,
		)
		if err != nil {
			return fmt.Errorf("insert confirmation payment %d: %w", i, err)
		}
	}
	return nil
}

// GetByAttemptID fetches a confirmation with its payments. Returns nil, nil if none exists.
func (r *ConfirmationRepo) GetByAttemptID(ctx context.Context, attemptID uuid.UUID) (*domain.Confirmation, error) {
	query := `SELECT attempt_id, store_id, cashier_id, kind, target_id, customer_id,
		sale_reference, due, total_tendered, change_amount, confirmed_at
		FROM settlement_confirmations WHERE attempt_id = $1`

	c := &domain.Confirmation{}
	err := r.pool.QueryRow(ctx, query, attemptID).Scan(
		&c.AttemptID, &c.StoreID, &c.CashierID, &c.Kind, &c.TargetID, &c.CustomerID,
		&c.SaleReference, &c.Due, &c.TotalTendered, &c.Change, &c.ConfirmedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get confirmation: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT payment_method, amount FROM settlement_payments WHERE attempt_id = $1 ORDER BY position`,
		attemptID,
	)
	if err != nil {
		return nil, fmt.Errorf("list confirmation payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.TenderedPayment
		if err := rows.Scan(&p.Method, &p.Amount); err != nil {
			return nil, fmt.Errorf("scan confirmation payment: %w", err)
		}
		c.Payments = append(c.Payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate confirmation payments: %w", err)
	}
	return c, nil
}

// GetStats aggregates confirmed settlements of a store, optionally since a point in time.
func (r *ConfirmationRepo) GetStats(ctx context.Context, storeID string, since *time.Time) (*ports.SettlementStats, error) {
	condition := "c.store_id = $1"
	args := []any{storeID}
	if since != nil {
		condition += " AND c.confirmed_at >= $2"
		args = append(args, *since)
	}

	totals := fmt.Sprintf(`SELECT
		COUNT(*) AS confirmed,
		COALESCE(SUM(c.due), 0) AS total_due,
		COALESCE(SUM(c.total_tendered), 0) AS total_tendered,
		COALESCE(SUM(c.change_amount), 0) AS total_change
		FROM settlement_confirmations c WHERE %s`, condition)

	stats := &ports.SettlementStats{ByMethod: make(map[domain.PaymentMethod]domain.Money)}
	err := r.pool.QueryRow(ctx, totals, args...).Scan(
		&stats.Confirmed, &stats.TotalDue, &stats.TotalTendered, &stats.TotalChange,
	)
	if err != nil {
		return nil, fmt.Errorf("get settlement stats: %w", err)
	}

	byMethod := fmt.Sprintf(`SELECT p.payment_method, COALESCE(SUM(p.amount), 0)
		FROM settlement_payments p
		JOIN settlement_confirmations c ON c.attempt_id = p.attempt_id
		WHERE %s
		GROUP BY p.payment_method`, condition)

	rows, err := r.pool.Query(ctx, byMethod, args...)
	if err != nil {
		return nil, fmt.Errorf("get settlement stats by method: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var method domain.PaymentMethod
		var total domain.Money
		if err := rows.Scan(&method, &total); err != nil {
			return nil, fmt.Errorf("scan settlement stats: %w", err)
		}
		stats.ByMethod[method] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settlement stats: %w", err)
	}
	return stats, nil
}
