package dto

import (
	"encoding/json"

	"pos-settlement/internal/core/domain"
)

// TenderedRow is one payment row of a request body. A blank amount is a zero row.
type TenderedRow struct {
	PaymentMethod domain.PaymentMethod `json:"payment_method" binding:"payment_method"`
	Amount        domain.Money         `json:"amount"`
}

// EvaluateRequest is the request body of the stateless evaluation.
type EvaluateRequest struct {
	Due      domain.Money  `json:"due" binding:"money"`
	Tendered []TenderedRow `json:"tendered" binding:"omitempty,max=50,dive"`
}

// SplitRequest is the request body of the stateless even split.
type SplitRequest struct {
	Due        domain.Money `json:"due" binding:"money"`
	PartyCount int          `json:"party_count" binding:"required,min=2"`
}

// OpenAttemptRequest is the request body for opening a settlement attempt.
type OpenAttemptRequest struct {
	Kind       string          `json:"kind" binding:"required,oneof=SALE ORDER"`
	TargetID   string          `json:"target_id" binding:"required_if=Kind ORDER,max=64,safe_id"`
	CustomerID *string         `json:"customer_id,omitempty" binding:"omitempty,max=64,safe_id"`
	Items      json.RawMessage `json:"items,omitempty"`
	Due        domain.Money    `json:"due" binding:"money"`
	Tendered   []TenderedRow   `json:"tendered" binding:"omitempty,max=50,dive"`
}

// UpdateTenderedRequest replaces the tendered rows of an attempt.
type UpdateTenderedRequest struct {
	Tendered []TenderedRow `json:"tendered" binding:"max=50,dive"`
}

// SplitAttemptRequest replaces the tendered rows of an attempt with an even split.
type SplitAttemptRequest struct {
	PartyCount int `json:"party_count" binding:"required,min=2"`
}

// EvaluationResponse is the live evaluation shown under the payment form.
type EvaluationResponse struct {
	Due           domain.Money `json:"due"`
	TotalTendered domain.Money `json:"total_tendered"`
	Remaining     domain.Money `json:"remaining"`
	Change        domain.Money `json:"change"`
	Status        string       `json:"status"`
	CanConfirm    bool         `json:"can_confirm"`
}

// SplitResponse carries the proposed shares and the rows built from them.
type SplitResponse struct {
	Shares   []domain.Money           `json:"shares"`
	Tendered []domain.TenderedPayment `json:"tendered"`
}

// ConfirmationResponse is the stored result of a confirmed attempt.
type ConfirmationResponse struct {
	SaleReference string                   `json:"sale_reference,omitempty"`
	Due           domain.Money             `json:"due"`
	TotalTendered domain.Money             `json:"total_tendered"`
	Change        domain.Money             `json:"change"`
	Payments      []domain.TenderedPayment `json:"payments"`
	ConfirmedAt   string                   `json:"confirmed_at"`
}

// AttemptResponse is a settlement attempt with its live evaluation.
type AttemptResponse struct {
	ID            string                   `json:"id"`
	Kind          string                   `json:"kind"`
	TargetID      string                   `json:"target_id,omitempty"`
	CustomerID    *string                  `json:"customer_id,omitempty"`
	State         string                   `json:"state"`
	Due           domain.Money             `json:"due"`
	Tendered      []domain.TenderedPayment `json:"tendered"`
	LastError     string                   `json:"last_error,omitempty"`
	Version       int64                    `json:"version"`
	Evaluation    EvaluationResponse       `json:"evaluation"`
	Confirmation  *ConfirmationResponse    `json:"confirmation,omitempty"`
	CreatedAt     string                   `json:"created_at"`
	UpdatedAt     string                   `json:"updated_at"`
}

// StatsResponse is the response for dashboard statistics.
type StatsResponse struct {
	Period        string                  `json:"period"`
	Confirmed     int64                   `json:"confirmed"`
	TotalDue      domain.Money            `json:"total_due"`
	TotalTendered domain.Money            `json:"total_tendered"`
	TotalChange   domain.Money            `json:"total_change"`
	ByMethod      map[string]domain.Money `json:"by_method"`
}

// Rows converts request rows into domain rows.
func Rows(rows []TenderedRow) []domain.TenderedPayment {
	out := make([]domain.TenderedPayment, len(rows))
	for i, r := range rows {
		out[i] = domain.TenderedPayment{Method: r.PaymentMethod, Amount: r.Amount}
	}
	return out
}
