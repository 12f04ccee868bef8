package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pos-settlement/internal/adapter/http/middleware"
	"pos-settlement/internal/core/domain"
	"pos-settlement/internal/core/ports"
	"pos-settlement/internal/core/ports/mocks"
	"pos-settlement/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T, ctrl *gomock.Controller, method, target, body string) (*gin.Context, *httptest.ResponseRecorder, *mocks.MockSession) {
	t.Helper()
	session := mocks.NewMockSession(ctrl)
	session.EXPECT().StoreID().Return("store-1").AnyTimes()
	session.EXPECT().UserID().Return("cashier-1").AnyTimes()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxSession, ports.Session(session))
	return c, w, session
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data: %s", w.Body.String())
	return data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sampleView(state domain.AttemptState) *ports.AttemptView {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	return &ports.AttemptView{
		Attempt: &domain.Attempt{
			ID:        uuid.MustParse("0b7f6c3a-1d2e-4f5a-9b8c-7d6e5f4a3b2c"),
			StoreID:   "store-1",
			CashierID: "cashier-1",
			Kind:      domain.AttemptKindSale,
			Due:       domain.Cents(5000),
			Tendered: []domain.TenderedPayment{
				{Method: domain.PaymentMethodCash, Amount: domain.Cents(3000)},
				{Method: domain.PaymentMethodPix, Amount: domain.Cents(2500)},
			},
			State:     state,
			Version:   2,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Evaluation: domain.SettlementResult{
			Due:           domain.Cents(5000),
			TotalTendered: domain.Cents(5500),
			Change:        domain.Cents(500),
			Status:        domain.SettlementStatusOverpaid,
		},
	}
}

// --- Settlement Handler Tests ---

func TestEvaluate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewSettlementHandler(mockSvc, nil)

	mockSvc.EXPECT().Evaluate(gomock.Any(), domain.SettlementRequest{
		Due: domain.Cents(5000),
		Tendered: []domain.TenderedPayment{
			{Method: domain.PaymentMethodCash, Amount: domain.Cents(4000)},
			{Method: domain.PaymentMethodDebitCard, Amount: 0},
		},
	}).Return(&domain.SettlementResult{
		Due:           domain.Cents(5000),
		TotalTendered: domain.Cents(4000),
		Remaining:     domain.Cents(1000),
		Status:        domain.SettlementStatusInsufficient,
	}, nil)

	c, w, _ := newTestContext(t, ctrl, http.MethodPost, "/", `{
		"due": 50,
		"tendered": [
			{"payment_method": "cash", "amount": "40.00"},
			{"payment_method": "debit_card", "amount": null}
		]
	}`)
	h.Evaluate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "INSUFFICIENT", data["status"])
	assert.Equal(t, 10.0, data["remaining"])
	assert.Equal(t, 0.0, data["change"])
	assert.Equal(t, false, data["can_confirm"])
}

func TestEvaluate_TooManyDecimals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewSettlementHandler(mockSvc, nil)

	c, w, _ := newTestContext(t, ctrl, http.MethodPost, "/", `{"due": 10.001}`)
	h.Evaluate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "SET_001", decodeError(t, w)["error_code"])
}

func TestEvaluate_HugeExponentRejectedQuickly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewSettlementHandler(mockSvc, nil)

	start := time.Now()
	c, w, _ := newTestContext(t, ctrl, http.MethodPost, "/", `{"due": 10, "tendered": [{"payment_method": "cash", "amount": "1e99999999"}]}`)
	h.Evaluate(c)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Less(t, w.Body.Len(), 512)
	resp := decodeError(t, w)
	assert.Equal(t, "SET_001", resp["error_code"])
	assert.Contains(t, resp["message"], `"1e99999999"`)
}

func TestEvaluate_UnknownMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewSettlementHandler(mockSvc, nil)

	c, w, _ := newTestContext(t, ctrl, http.MethodPost, "/", `{"due": 10, "tendered": [{"payment_method": "cheque", "amount": 10}]}`)
	h.Evaluate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "SET_001", resp["error_code"])
	fields := resp["fields"].(map[string]interface{})
	assert.Equal(t, "payment_method", fields["tendered[0].payment_method"])
}

func TestSplit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewSettlementHandler(mockSvc, nil)

	mockSvc.EXPECT().ProposeSplit(gomock.Any(), domain.Cents(10000), 3).
		Return([]domain.Money{domain.Cents(3334), domain.Cents(3333), domain.Cents(3333)}, nil)

	c, w, _ := newTestContext(t, ctrl, http.MethodPost, "/", `{"due": "100.00", "party_count": 3}`)
	h.Split(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, []interface{}{33.34, 33.33, 33.33}, data["shares"])
	rows := data["tendered"].([]interface{})
	require.Len(t, rows, 3)
	assert.Equal(t, "cash", rows[0].(map[string]interface{})["payment_method"])
}

func TestSplit_InvalidPartyCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewSettlementHandler(mockSvc, nil)

	c, w, _ := newTestContext(t, ctrl, http.MethodPost, "/", `{"due": "100.00", "party_count": 1}`)
	h.Split(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporting := mocks.NewMockReportingService(ctrl)
	h := NewSettlementHandler(nil, mockReporting)

	mockReporting.EXPECT().GetStats(gomock.Any(), "store-1", "week").Return(&ports.SettlementStats{
		Confirmed:     12,
		TotalDue:      domain.Cents(100000),
		TotalTendered: domain.Cents(102500),
		TotalChange:   domain.Cents(2500),
		ByMethod: map[domain.PaymentMethod]domain.Money{
			domain.PaymentMethodCash: domain.Cents(60000),
			domain.PaymentMethodPix:  domain.Cents(42500),
		},
	}, nil)

	c, w, _ := newTestContext(t, ctrl, http.MethodGet, "/?period=week", "")
	h.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "week", data["period"])
	assert.Equal(t, float64(12), data["confirmed"])
	assert.Equal(t, 25.0, data["total_change"])
	assert.Equal(t, 425.0, data["by_method"].(map[string]interface{})["pix"])
}

func TestGetStats_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporting := mocks.NewMockReportingService(ctrl)
	h := NewSettlementHandler(nil, mockReporting)

	mockReporting.EXPECT().GetStats(gomock.Any(), "store-1", "year").
		Return(nil, apperror.Validation("invalid period: must be day, week, month, or all"))

	c, w, _ := newTestContext(t, ctrl, http.MethodGet, "/?period=year", "")
	h.GetStats(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStats_NoSession(t *testing.T) {
	h := NewSettlementHandler(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h.GetStats(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Attempt Handler Tests ---

func TestOpenAttempt_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewAttemptHandler(mockSvc)
	view := sampleView(domain.AttemptStateEditing)

	c, w, session := newTestContext(t, ctrl, http.MethodPost, "/", `{
		"kind": "SALE",
		"customer_id": "cust-7",
		"items": [{"product_id": "p-1", "quantity": 2}],
		"due": 50,
		"tendered": [{"payment_method": "cash", "amount": 30}, {"payment_method": "pix", "amount": 25}]
	}`)

	mockSvc.EXPECT().OpenAttempt(gomock.Any(), session, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ports.Session, req ports.OpenAttemptRequest) (*ports.AttemptView, error) {
			assert.Equal(t, domain.AttemptKindSale, req.Kind)
			require.NotNil(t, req.CustomerID)
			assert.Equal(t, "cust-7", *req.CustomerID)
			assert.JSONEq(t, `[{"product_id": "p-1", "quantity": 2}]`, string(req.Items))
			assert.Equal(t, domain.Cents(5000), req.Due)
			assert.Len(t, req.Tendered, 2)
			return view, nil
		})

	h.Open(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, view.Attempt.ID.String(), data["id"])
	assert.Equal(t, "EDITING", data["state"])
	eval := data["evaluation"].(map[string]interface{})
	assert.Equal(t, "OVERPAID", eval["status"])
	assert.Equal(t, 5.0, eval["change"])
	assert.Equal(t, true, eval["can_confirm"])
	assert.Equal(t, view.Attempt.CreatedAt.Format(time.RFC3339), data["created_at"])
	_, err := time.Parse(time.RFC3339, data["updated_at"].(string))
	assert.NoError(t, err)

	id, ok := c.Get(middleware.CtxAttemptID)
	require.True(t, ok)
	assert.Equal(t, view.Attempt.ID, id)
}

func TestOpenAttempt_OrderWithoutTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewAttemptHandler(mockSvc)

	c, w, _ := newTestContext(t, ctrl, http.MethodPost, "/", `{"kind": "ORDER", "due": 10}`)
	h.Open(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields := decodeError(t, w)["fields"].(map[string]interface{})
	assert.Equal(t, "required_if", fields["target_id"])
}

func TestGetAttempt_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewAttemptHandler(mockSvc)

	c, w, _ := newTestContext(t, ctrl, http.MethodGet, "/", "")
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAttempt_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewAttemptHandler(mockSvc)
	id := uuid.New()

	c, w, session := newTestContext(t, ctrl, http.MethodGet, "/", "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	mockSvc.EXPECT().GetAttempt(gomock.Any(), session, id).Return(nil, apperror.ErrNotFound("Settlement attempt"))

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SET_005", decodeError(t, w)["error_code"])
}

func TestUpdateTendered_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewAttemptHandler(mockSvc)
	view := sampleView(domain.AttemptStateEditing)

	c, w, session := newTestContext(t, ctrl, http.MethodPut, "/", `{"tendered": [{"payment_method": "credit_card", "amount": "12.34"}]}`)
	c.Params = gin.Params{{Key: "id", Value: view.Attempt.ID.String()}}
	mockSvc.EXPECT().UpdateTendered(gomock.Any(), session, view.Attempt.ID, []domain.TenderedPayment{
		{Method: domain.PaymentMethodCreditCard, Amount: domain.Cents(1234)},
	}).Return(view, nil)

	h.UpdateTendered(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateTendered_Busy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewAttemptHandler(mockSvc)
	id := uuid.New()

	c, w, _ := newTestContext(t, ctrl, http.MethodPut, "/", `{"tendered": []}`)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	mockSvc.EXPECT().UpdateTendered(gomock.Any(), gomock.Any(), id, []domain.TenderedPayment{}).Return(nil, apperror.ErrAttemptBusy())

	h.UpdateTendered(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SET_007", decodeError(t, w)["error_code"])
}

func TestSplitAttempt_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewAttemptHandler(mockSvc)
	view := sampleView(domain.AttemptStateEditing)

	c, w, session := newTestContext(t, ctrl, http.MethodPost, "/", `{"party_count": 4}`)
	c.Params = gin.Params{{Key: "id", Value: view.Attempt.ID.String()}}
	mockSvc.EXPECT().SplitAttempt(gomock.Any(), session, view.Attempt.ID, 4).Return(view, nil)

	h.Split(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestConfirm_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewAttemptHandler(mockSvc)
	view := sampleView(domain.AttemptStateConfirmed)
	view.Attempt.SaleReference = "SALE-1"
	view.Confirmation = &domain.Confirmation{
		AttemptID:     view.Attempt.ID,
		SaleReference: "SALE-1",
		Due:           domain.Cents(5000),
		TotalTendered: domain.Cents(5500),
		Change:        domain.Cents(500),
		Payments:      view.Attempt.Tendered,
		ConfirmedAt:   view.Attempt.UpdatedAt,
	}

	c, w, session := newTestContext(t, ctrl, http.MethodPost, "/", "")
	c.Params = gin.Params{{Key: "id", Value: view.Attempt.ID.String()}}
	mockSvc.EXPECT().Confirm(gomock.Any(), session, view.Attempt.ID).Return(view, nil)

	h.Confirm(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "CONFIRMED", data["state"])
	conf := data["confirmation"].(map[string]interface{})
	assert.Equal(t, "SALE-1", conf["sale_reference"])
	assert.Equal(t, 5.0, conf["change"])
}

func TestConfirm_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"insufficient", apperror.ErrInsufficientPayment("10.00 remaining"), http.StatusUnprocessableEntity, "SET_002"},
		{"submission failed", apperror.ErrSubmissionFailed("sales api unavailable", errors.New("503")), http.StatusBadGateway, "SET_003"},
		{"in flight", apperror.ErrSubmissionInFlight(), http.StatusConflict, "SET_004"},
		{"session expired", apperror.ErrInvalidToken(), http.StatusUnauthorized, "AUTH_003"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "SYS_000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := mocks.NewMockSettlementService(ctrl)
			h := NewAttemptHandler(mockSvc)
			id := uuid.New()

			c, w, _ := newTestContext(t, ctrl, http.MethodPost, "/", "")
			c.Params = gin.Params{{Key: "id", Value: id.String()}}
			mockSvc.EXPECT().Confirm(gomock.Any(), gomock.Any(), id).Return(nil, tt.err)

			h.Confirm(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w)["error_code"])
		})
	}
}

func TestAbandon_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockSettlementService(ctrl)
	h := NewAttemptHandler(mockSvc)
	view := sampleView(domain.AttemptStateAbandoned)

	c, w, session := newTestContext(t, ctrl, http.MethodDelete, "/", "")
	c.Params = gin.Params{{Key: "id", Value: view.Attempt.ID.String()}}
	mockSvc.EXPECT().Abandon(gomock.Any(), session, view.Attempt.ID).Return(view, nil)

	h.Abandon(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ABANDONED", decodeData(t, w)["state"])
}

// --- Health Check Tests ---

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pg := mocks.NewMockHealthChecker(ctrl)
	pg.EXPECT().Ping(gomock.Any()).Return(nil)
	pg.EXPECT().Name().Return("postgresql").AnyTimes()
	rd := mocks.NewMockHealthChecker(ctrl)
	rd.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	rd.EXPECT().Name().Return("redis").AnyTimes()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(pg, rd)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `"degraded"`))
	assert.Contains(t, body, "connection refused")
}

// --- Swagger Tests ---

func TestSwaggerUI(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger", nil)

	SwaggerUI(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "swagger-ui")
	assert.Contains(t, w.Body.String(), "/swagger/spec")
}

func TestSwaggerSpec_Loaded(t *testing.T) {
	SetSwaggerSpec([]byte("openapi: '3.0.0'\ninfo:\n  title: Test"))
	defer SetSwaggerSpec(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger/spec", nil)

	SwaggerSpec(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi")
}

func TestSwaggerSpec_NotLoaded(t *testing.T) {
	SetSwaggerSpec(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger/spec", nil)

	SwaggerSpec(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
