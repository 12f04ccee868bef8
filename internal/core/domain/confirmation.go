package domain

import (
	"time"

	"github.com/google/uuid"
)

// Confirmation is the durable record of a settlement accepted by the sales
// API. It doubles as the idempotency log for repeated confirms.
type Confirmation struct {
	AttemptID     uuid.UUID         `json:"attempt_id"`
	StoreID       string            `json:"store_id"`
	CashierID     string            `json:"cashier_id"`
	Kind          AttemptKind       `json:"kind"`
	TargetID      string            `json:"target_id,omitempty"`
	CustomerID    *string           `json:"customer_id,omitempty"`
	SaleReference string            `json:"sale_reference,omitempty"`
	Due           Money             `json:"due"`
	TotalTendered Money             `json:"total_tendered"`
	Change        Money             `json:"change"`
	Payments      []TenderedPayment `json:"payments"`
	ConfirmedAt   time.Time         `json:"confirmed_at"`
}

// BuildConfirmationKey constructs the idempotency key of an attempt's confirmation.
func BuildConfirmationKey(attemptID uuid.UUID) string {
	return "confirm:" + attemptID.String()
}
