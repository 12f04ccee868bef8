// Package calculator reconciles tendered payments against an amount due.
//
// Every function here is pure and works on integer minor units, so it is
// safe to call on every keystroke of the payment form.
package calculator

import (
	"fmt"

	"pos-settlement/internal/core/domain"
)

// Evaluate sums the positive tendered rows and compares the total to the due amount.
func Evaluate(req domain.SettlementRequest) (domain.SettlementResult, error) {
	if req.Due.IsNegative() {
		return domain.SettlementResult{}, fmt.Errorf("%w: due must not be negative", domain.ErrInvalidArgument)
	}

	var total domain.Money
	for _, t := range req.Tendered {
		if !t.Amount.IsPositive() {
			continue
		}
		sum, ok := total.AddChecked(t.Amount)
		if !ok {
			return domain.SettlementResult{}, fmt.Errorf("%w: tendered total overflows", domain.ErrInvalidArgument)
		}
		total = sum
	}

	res := domain.SettlementResult{
		Due:           req.Due,
		TotalTendered: total,
	}
	switch {
	case total < req.Due:
		res.Status = domain.SettlementStatusInsufficient
		res.Remaining = req.Due - total
	case total > req.Due:
		res.Status = domain.SettlementStatusOverpaid
		res.Change = total - req.Due
	default:
		res.Status = domain.SettlementStatusExact
	}
	return res, nil
}

// Authorize is the confirmation gate: only EXACT and OVERPAID settlements may
// be handed to the sales API.
func Authorize(res domain.SettlementResult) error {
	if !res.Status.IsConfirmable() {
		return fmt.Errorf("%w: %s remaining", domain.ErrInsufficientPayment, res.Remaining)
	}
	return nil
}

// EvaluateForConfirm re-evaluates req and applies the gate in one step.
func EvaluateForConfirm(req domain.SettlementRequest) (domain.SettlementResult, error) {
	res, err := Evaluate(req)
	if err != nil {
		return res, err
	}
	return res, Authorize(res)
}

// ProposeEvenSplit divides due into partyCount shares that sum to due exactly.
// Parties 2..n get floor(due/n); the first party absorbs the remainder.
func ProposeEvenSplit(due domain.Money, partyCount int) ([]domain.Money, error) {
	if partyCount < 2 {
		return nil, fmt.Errorf("%w: party count must be at least 2, got %d", domain.ErrInvalidArgument, partyCount)
	}
	if due.IsNegative() {
		return nil, fmt.Errorf("%w: due must not be negative", domain.ErrInvalidArgument)
	}

	n := domain.Money(partyCount)
	base := due / n
	shares := make([]domain.Money, partyCount)
	shares[0] = due - base*(n-1)
	for i := 1; i < partyCount; i++ {
		shares[i] = base
	}
	return shares, nil
}

// TenderedFromShares turns split shares into editable cash rows.
func TenderedFromShares(shares []domain.Money) []domain.TenderedPayment {
	rows := make([]domain.TenderedPayment, len(shares))
	for i, s := range shares {
		rows[i] = domain.TenderedPayment{Method: domain.PaymentMethodCash, Amount: s}
	}
	return rows
}

// TotalsByMethod sums the positive rows per payment method.
func TotalsByMethod(tendered []domain.TenderedPayment) map[domain.PaymentMethod]domain.Money {
	out := make(map[domain.PaymentMethod]domain.Money)
	for _, t := range domain.PositiveRows(tendered) {
		out[t.Method] += t.Amount
	}
	return out
}
