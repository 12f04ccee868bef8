package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AttemptKind selects the sales API resource a confirmed attempt is posted to.
type AttemptKind string

const (
	AttemptKindSale  AttemptKind = "SALE"  // counter sale, POST /sales
	AttemptKindOrder AttemptKind = "ORDER" // table/order payment, POST /orders/{id}/payments
)

// IsValid reports whether k is a known kind.
func (k AttemptKind) IsValid() bool {
	return k == AttemptKindSale || k == AttemptKindOrder
}

// AttemptState is the lifecycle state of a settlement attempt.
type AttemptState string

const (
	AttemptStateEditing    AttemptState = "EDITING"
	AttemptStateConfirming AttemptState = "CONFIRMING"
	AttemptStateConfirmed  AttemptState = "CONFIRMED"
	AttemptStateFailed     AttemptState = "FAILED"
	AttemptStateAbandoned  AttemptState = "ABANDONED"
)

// IsTerminal returns true if the attempt can no longer change.
func (s AttemptState) IsTerminal() bool {
	return s == AttemptStateConfirmed || s == AttemptStateAbandoned
}

// Attempt is one cashier's effort to settle a bill. It is transient: it lives
// in the attempt store until confirmed, abandoned or expired.
type Attempt struct {
	ID            uuid.UUID         `json:"id"`
	StoreID       string            `json:"store_id"`
	CashierID     string            `json:"cashier_id"`
	Kind          AttemptKind       `json:"kind"`
	TargetID      string            `json:"target_id,omitempty"` // order id for ORDER attempts
	CustomerID    *string           `json:"customer_id,omitempty"`
	Items         json.RawMessage   `json:"items,omitempty"` // opaque to the calculator
	Due           Money             `json:"due"`
	Tendered      []TenderedPayment `json:"tendered"`
	State         AttemptState      `json:"state"`
	LastError     string            `json:"last_error,omitempty"`
	SaleReference string            `json:"sale_reference,omitempty"`
	Version       int64             `json:"version"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	ConfirmedAt   *time.Time        `json:"confirmed_at,omitempty"`
}

// Request returns the settlement request currently held by the attempt.
func (a *Attempt) Request() SettlementRequest {
	return SettlementRequest{Due: a.Due, Tendered: a.Tendered}
}

// CanEdit reports whether tendered rows may be replaced.
func (a *Attempt) CanEdit() error {
	switch a.State {
	case AttemptStateEditing, AttemptStateFailed:
		return nil
	case AttemptStateConfirming:
		return ErrAttemptBusy
	default:
		return ErrAttemptClosed
	}
}

// ReplaceTendered swaps the payment rows and returns the attempt to editing.
func (a *Attempt) ReplaceTendered(rows []TenderedPayment, now time.Time) error {
	if err := a.CanEdit(); err != nil {
		return err
	}
	a.Tendered = rows
	a.State = AttemptStateEditing
	a.LastError = ""
	a.UpdatedAt = now
	return nil
}

// BeginConfirm moves the attempt into CONFIRMING.
func (a *Attempt) BeginConfirm(now time.Time) error {
	switch a.State {
	case AttemptStateEditing, AttemptStateFailed:
	case AttemptStateConfirming:
		return ErrSubmissionInFlight
	default:
		return ErrAttemptClosed
	}
	a.State = AttemptStateConfirming
	a.LastError = ""
	a.UpdatedAt = now
	return nil
}

// MarkConfirmed records a successful submission.
func (a *Attempt) MarkConfirmed(saleRef string, now time.Time) {
	a.State = AttemptStateConfirmed
	a.SaleReference = saleRef
	a.LastError = ""
	a.UpdatedAt = now
	a.ConfirmedAt = &now
}

// MarkFailed records a failed submission. Tendered rows are kept.
func (a *Attempt) MarkFailed(message string, now time.Time) {
	a.State = AttemptStateFailed
	a.LastError = message
	a.UpdatedAt = now
}

// Abandon closes the attempt. Abandoning twice is a no-op; abandoning a
// confirmed attempt is an error.
func (a *Attempt) Abandon(now time.Time) error {
	switch a.State {
	case AttemptStateAbandoned:
		return nil
	case AttemptStateConfirmed:
		return ErrAttemptClosed
	}
	a.State = AttemptStateAbandoned
	a.UpdatedAt = now
	return nil
}
