package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{"0", 0, false},
		{"0.01", 1, false},
		{"33.34", 3334, false},
		{"100", 10000, false},
		{"100.50", 10050, false},
		{"10.500", 1050, false},
		{"-5.25", -525, false},
		{"0.001", 0, true},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"", 0, true},
		{"99999999999999999999", 0, true},
		{"1e3", 100000, false},
		{"1e99999999", 0, true},
		{"1e-99999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "0.01", Cents(1).String())
	assert.Equal(t, "33.34", Cents(3334).String())
	assert.Equal(t, "-10.00", Cents(-1000).String())
}

func TestMoney_Decimal(t *testing.T) {
	assert.True(t, decimal.RequireFromString("33.34").Equal(Cents(3334).Decimal()))
}

func TestMoney_JSON(t *testing.T) {
	var row TenderedPayment
	require.NoError(t, json.Unmarshal([]byte(`{"payment_method":"pix","amount":20.5}`), &row))
	assert.Equal(t, PaymentMethodPix, row.Method)
	assert.Equal(t, Money(2050), row.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"payment_method":"cash","amount":"0.10"}`), &row))
	assert.Equal(t, Money(10), row.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"payment_method":"cash","amount":""}`), &row))
	assert.Equal(t, Money(0), row.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"payment_method":"cash","amount":null}`), &row))
	assert.Equal(t, Money(0), row.Amount)

	err := json.Unmarshal([]byte(`{"payment_method":"cash","amount":1.234}`), &row)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	require.NoError(t, json.Unmarshal([]byte(`{"payment_method":"cash","amount":1.5e1}`), &row))
	assert.Equal(t, Money(1500), row.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"payment_method":"cash","amount":"0e99999999"}`), &row))
	assert.Equal(t, Money(0), row.Amount)

	out, err := json.Marshal(TenderedPayment{Method: PaymentMethodCash, Amount: 3334})
	require.NoError(t, err)
	assert.JSONEq(t, `{"payment_method":"cash","amount":33.34}`, string(out))
}

func TestMoney_JSON_ExtremeExponents(t *testing.T) {
	for _, raw := range []string{
		`1e999999`,
		`"1e-999999"`,
		`1E20`,
		`"1e99999999"`,
		`-1e99999999`,
		`"1.000000000000000000000000000001"`,
	} {
		t.Run(raw, func(t *testing.T) {
			start := time.Now()
			var m Money
			err := json.Unmarshal([]byte(`{"payment_method":"cash","amount":`+raw+`}`), &struct {
				Amount *Money `json:"amount"`
			}{Amount: &m})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Less(t, len(err.Error()), 128, "error must not echo the expanded value")
			assert.Less(t, time.Since(start), time.Second)
		})
	}
}

func TestMoney_AddChecked(t *testing.T) {
	sum, ok := Cents(1).AddChecked(Cents(2))
	assert.True(t, ok)
	assert.Equal(t, Money(3), sum)

	_, ok = Cents(1<<62).AddChecked(Cents(1 << 62))
	assert.False(t, ok)
}

func TestParsePaymentMethod(t *testing.T) {
	for _, m := range PaymentMethods {
		got, err := ParsePaymentMethod(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParsePaymentMethod(" PIX ")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodPix, got)

	_, err = ParsePaymentMethod("cheque")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewSettlementRequest(t *testing.T) {
	_, err := NewSettlementRequest(Cents(-1), nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewSettlementRequest(Cents(100), []TenderedPayment{{Method: "voucher", Amount: 100}})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	req, err := NewSettlementRequest(Cents(0), nil)
	require.NoError(t, err)
	assert.Equal(t, Money(0), req.Due)
}

func TestSettlementStatus_IsConfirmable(t *testing.T) {
	assert.False(t, SettlementStatusInsufficient.IsConfirmable())
	assert.True(t, SettlementStatusExact.IsConfirmable())
	assert.True(t, SettlementStatusOverpaid.IsConfirmable())
}

func TestPositiveRows(t *testing.T) {
	rows := []TenderedPayment{
		{Method: PaymentMethodCash, Amount: 100},
		{Method: PaymentMethodPix, Amount: 0},
		{Method: PaymentMethodOther, Amount: -50},
	}
	assert.Equal(t, rows[:1], PositiveRows(rows))
}

func TestAttempt_Transitions(t *testing.T) {
	now := time.Now()
	rows := []TenderedPayment{{Method: PaymentMethodCash, Amount: 500}}

	tests := []struct {
		name       string
		state      AttemptState
		editErr    error
		confirmErr error
		abandonErr error
	}{
		{"editing", AttemptStateEditing, nil, nil, nil},
		{"failed", AttemptStateFailed, nil, nil, nil},
		{"confirming", AttemptStateConfirming, ErrAttemptBusy, ErrSubmissionInFlight, nil},
		{"confirmed", AttemptStateConfirmed, ErrAttemptClosed, ErrAttemptClosed, ErrAttemptClosed},
		{"abandoned", AttemptStateAbandoned, ErrAttemptClosed, ErrAttemptClosed, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Attempt{ID: uuid.New(), State: tt.state}
			assert.ErrorIs(t, a.ReplaceTendered(rows, now), tt.editErr)

			a = &Attempt{ID: uuid.New(), State: tt.state}
			assert.ErrorIs(t, a.BeginConfirm(now), tt.confirmErr)

			a = &Attempt{ID: uuid.New(), State: tt.state}
			assert.ErrorIs(t, a.Abandon(now), tt.abandonErr)
		})
	}
}

func TestAttempt_FailedKeepsRows(t *testing.T) {
	now := time.Now()
	rows := []TenderedPayment{{Method: PaymentMethodCash, Amount: 500}}
	a := &Attempt{State: AttemptStateEditing, Tendered: rows}

	require.NoError(t, a.BeginConfirm(now))
	a.MarkFailed("sales api unavailable", now)

	assert.Equal(t, AttemptStateFailed, a.State)
	assert.Equal(t, rows, a.Tendered)
	assert.Equal(t, "sales api unavailable", a.LastError)

	require.NoError(t, a.ReplaceTendered(rows, now))
	assert.Equal(t, AttemptStateEditing, a.State)
	assert.Empty(t, a.LastError)
}

func TestAttempt_MarkConfirmed(t *testing.T) {
	now := time.Now()
	a := &Attempt{State: AttemptStateConfirming}
	a.MarkConfirmed("SALE-77", now)

	assert.Equal(t, AttemptStateConfirmed, a.State)
	assert.Equal(t, "SALE-77", a.SaleReference)
	require.NotNil(t, a.ConfirmedAt)
	assert.True(t, a.State.IsTerminal())
}

func TestAttemptKind_IsValid(t *testing.T) {
	assert.True(t, AttemptKindSale.IsValid())
	assert.True(t, AttemptKindOrder.IsValid())
	assert.False(t, AttemptKind("TAB").IsValid())
}

func TestBuildConfirmationKey(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	assert.Equal(t, "confirm:550e8400-e29b-41d4-a716-446655440000", BuildConfirmationKey(id))
}
