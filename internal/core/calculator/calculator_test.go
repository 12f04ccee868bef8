package calculator

import (
	"fmt"
	"testing"

	"pos-settlement/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) domain.Money { return domain.MustParseMoney(s) }

func row(m domain.PaymentMethod, amount string) domain.TenderedPayment {
	return domain.TenderedPayment{Method: m, Amount: money(amount)}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		due       string
		tendered  []domain.TenderedPayment
		status    domain.SettlementStatus
		total     string
		remaining string
		change    string
	}{
		{
			name:     "exact across two methods",
			due:      "50.00",
			tendered: []domain.TenderedPayment{row(domain.PaymentMethodCash, "30.00"), row(domain.PaymentMethodPix, "20.00")},
			status:   domain.SettlementStatusExact, total: "50.00", remaining: "0.00", change: "0.00",
		},
		{
			name:     "overpaid gives change",
			due:      "50.00",
			tendered: []domain.TenderedPayment{row(domain.PaymentMethodCash, "60.00")},
			status:   domain.SettlementStatusOverpaid, total: "60.00", remaining: "0.00", change: "10.00",
		},
		{
			name:     "insufficient leaves remaining",
			due:      "50.00",
			tendered: []domain.TenderedPayment{row(domain.PaymentMethodCash, "40.00")},
			status:   domain.SettlementStatusInsufficient, total: "40.00", remaining: "10.00", change: "0.00",
		},
		{
			name:   "zero due with no rows is exact",
			due:    "0.00",
			status: domain.SettlementStatusExact, total: "0.00", remaining: "0.00", change: "0.00",
		},
		{
			name:   "no rows against positive due",
			due:    "12.50",
			status: domain.SettlementStatusInsufficient, total: "0.00", remaining: "12.50", change: "0.00",
		},
		{
			name: "zero and negative rows are ignored",
			due:  "10.00",
			tendered: []domain.TenderedPayment{
				row(domain.PaymentMethodCash, "0"),
				row(domain.PaymentMethodCreditCard, "-5.00"),
				row(domain.PaymentMethodDebitCard, "10.00"),
			},
			status: domain.SettlementStatusExact, total: "10.00", remaining: "0.00", change: "0.00",
		},
		{
			name:     "overpaid on zero due",
			due:      "0",
			tendered: []domain.TenderedPayment{row(domain.PaymentMethodOther, "0.01")},
			status:   domain.SettlementStatusOverpaid, total: "0.01", remaining: "0.00", change: "0.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(domain.SettlementRequest{Due: money(tt.due), Tendered: tt.tendered})
			require.NoError(t, err)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, money(tt.total), res.TotalTendered)
			assert.Equal(t, money(tt.remaining), res.Remaining)
			assert.Equal(t, money(tt.change), res.Change)
			assert.False(t, res.Remaining.IsPositive() && res.Change.IsPositive())
		})
	}
}

func TestEvaluate_TwentyCentRows(t *testing.T) {
	rows := make([]domain.TenderedPayment, 20)
	for i := range rows {
		rows[i] = row(domain.PaymentMethodCash, "0.01")
	}

	res, err := Evaluate(domain.SettlementRequest{Due: money("0.20"), Tendered: rows})
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementStatusExact, res.Status)
	assert.Equal(t, "0.20", res.TotalTendered.String())
}

func TestEvaluate_Deterministic(t *testing.T) {
	req := domain.SettlementRequest{
		Due:      money("99.99"),
		Tendered: []domain.TenderedPayment{row(domain.PaymentMethodPix, "33.33"), row(domain.PaymentMethodCash, "66.67")},
	}
	first, err := Evaluate(req)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		again, err := Evaluate(req)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, domain.SettlementStatusOverpaid, first.Status)
	assert.Equal(t, money("0.01"), first.Change)
}

func TestEvaluate_InvalidArgument(t *testing.T) {
	_, err := Evaluate(domain.SettlementRequest{Due: money("-0.01")})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	huge := domain.Money(1 << 62)
	_, err = Evaluate(domain.SettlementRequest{
		Due:      money("1.00"),
		Tendered: []domain.TenderedPayment{{Method: domain.PaymentMethodCash, Amount: huge}, {Method: domain.PaymentMethodCash, Amount: huge}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAuthorize(t *testing.T) {
	res, err := Evaluate(domain.SettlementRequest{Due: money("50.00"), Tendered: []domain.TenderedPayment{row(domain.PaymentMethodCash, "40.00")}})
	require.NoError(t, err)
	err = Authorize(res)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
	assert.Contains(t, err.Error(), "10.00")

	assert.NoError(t, Authorize(domain.SettlementResult{Status: domain.SettlementStatusExact}))
	assert.NoError(t, Authorize(domain.SettlementResult{Status: domain.SettlementStatusOverpaid}))
}

func TestEvaluateForConfirm(t *testing.T) {
	_, err := EvaluateForConfirm(domain.SettlementRequest{Due: money("5.00")})
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)

	res, err := EvaluateForConfirm(domain.SettlementRequest{Due: money("5.00"), Tendered: []domain.TenderedPayment{row(domain.PaymentMethodCash, "5.00")}})
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementStatusExact, res.Status)
}

func TestProposeEvenSplit(t *testing.T) {
	shares, err := ProposeEvenSplit(money("100.00"), 3)
	require.NoError(t, err)
	assert.Equal(t, []domain.Money{money("33.34"), money("33.33"), money("33.33")}, shares)

	shares, err = ProposeEvenSplit(money("0.01"), 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.Money{money("0.01"), money("0.00")}, shares)

	shares, err = ProposeEvenSplit(money("10.00"), 7)
	require.NoError(t, err)
	assert.Equal(t, money("1.48"), shares[0])
	for _, s := range shares[1:] {
		assert.Equal(t, money("1.42"), s)
	}
}

func TestProposeEvenSplit_SumsExactly(t *testing.T) {
	for _, due := range []string{"0.00", "0.01", "10.00", "33.33", "100.00", "1234.57"} {
		for _, n := range []int{2, 3, 7, 11} {
			t.Run(fmt.Sprintf("%s/%d", due, n), func(t *testing.T) {
				shares, err := ProposeEvenSplit(money(due), n)
				require.NoError(t, err)
				require.Len(t, shares, n)

				var sum domain.Money
				for i, s := range shares {
					assert.False(t, s.IsNegative())
					if i > 0 {
						assert.Equal(t, shares[1], s)
						assert.GreaterOrEqual(t, shares[0], s)
					}
					sum += s
				}
				assert.Equal(t, money(due), sum)
			})
		}
	}
}

func TestProposeEvenSplit_InvalidArgument(t *testing.T) {
	for _, n := range []int{1, 0, -3} {
		_, err := ProposeEvenSplit(money("10.00"), n)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
	_, err := ProposeEvenSplit(money("-1.00"), 2)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestTenderedFromShares(t *testing.T) {
	shares, err := ProposeEvenSplit(money("100.00"), 3)
	require.NoError(t, err)

	rows := TenderedFromShares(shares)
	require.Len(t, rows, 3)
	for i, r := range rows {
		assert.Equal(t, domain.PaymentMethodCash, r.Method)
		assert.Equal(t, shares[i], r.Amount)
	}

	res, err := Evaluate(domain.SettlementRequest{Due: money("100.00"), Tendered: rows})
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementStatusExact, res.Status)
}

func TestTotalsByMethod(t *testing.T) {
	totals := TotalsByMethod([]domain.TenderedPayment{
		row(domain.PaymentMethodCash, "10.00"),
		row(domain.PaymentMethodPix, "5.50"),
		row(domain.PaymentMethodCash, "2.25"),
		row(domain.PaymentMethodDebitCard, "0"),
	})
	assert.Equal(t, money("12.25"), totals[domain.PaymentMethodCash])
	assert.Equal(t, money("5.50"), totals[domain.PaymentMethodPix])
	_, ok := totals[domain.PaymentMethodDebitCard]
	assert.False(t, ok)
}
