package domain

import "fmt"

// SettlementStatus is the verdict of comparing the tendered total to the due amount.
type SettlementStatus string

const (
	SettlementStatusInsufficient SettlementStatus = "INSUFFICIENT"
	SettlementStatusExact        SettlementStatus = "EXACT"
	SettlementStatusOverpaid     SettlementStatus = "OVERPAID"
)

// IsConfirmable reports whether a settlement with this status may be handed
// to the sales API.
func (s SettlementStatus) IsConfirmable() bool {
	return s == SettlementStatusExact || s == SettlementStatusOverpaid
}

// TenderedPayment is one payment row: an amount offered with a method.
// Rows with a non-positive amount are ignored when totals are computed.
type TenderedPayment struct {
	Method PaymentMethod `json:"payment_method"`
	Amount Money         `json:"amount"`
}

// SettlementRequest is the input of an evaluation.
type SettlementRequest struct {
	Due      Money             `json:"due"`
	Tendered []TenderedPayment `json:"tendered"`
}

// NewSettlementRequest validates due and the payment methods of the rows.
func NewSettlementRequest(due Money, tendered []TenderedPayment) (SettlementRequest, error) {
	if due.IsNegative() {
		return SettlementRequest{}, fmt.Errorf("%w: due must not be negative", ErrInvalidArgument)
	}
	for i, t := range tendered {
		if !t.Method.IsValid() {
			return SettlementRequest{}, fmt.Errorf("%w: row %d has unknown payment method %q", ErrInvalidArgument, i, t.Method)
		}
	}
	return SettlementRequest{Due: due, Tendered: tendered}, nil
}

// SettlementResult is the evaluation of a SettlementRequest.
// At most one of Remaining and Change is non-zero.
type SettlementResult struct {
	Due           Money            `json:"due"`
	TotalTendered Money            `json:"total_tendered"`
	Remaining     Money            `json:"remaining"`
	Change        Money            `json:"change"`
	Status        SettlementStatus `json:"status"`
}

// PositiveRows returns the rows that count toward the tendered total.
func PositiveRows(tendered []TenderedPayment) []TenderedPayment {
	out := make([]TenderedPayment, 0, len(tendered))
	for _, t := range tendered {
		if t.Amount.IsPositive() {
			out = append(out, t)
		}
	}
	return out
}
