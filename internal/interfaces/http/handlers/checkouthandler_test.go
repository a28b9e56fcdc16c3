package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkoutUsecases "github.com/coachfit-inc/coachfit/internal/application/checkout/usecases"
	"github.com/coachfit-inc/coachfit/internal/domain/order"
	vo "github.com/coachfit-inc/coachfit/internal/domain/order/valueobjects"
	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/interfaces/http/handlers/testutil"
)

// =====================================================================
// Stub repositories
// =====================================================================

type stubOrderRepo struct {
	order *order.PaymentOrder
}

func (s *stubOrderRepo) Create(ctx context.Context, o *order.PaymentOrder) error { return nil }

func (s *stubOrderRepo) GetByOrderID(ctx context.Context, orderID string) (*order.PaymentOrder, error) {
	if s.order != nil && s.order.OrderID() == orderID {
		return s.order, nil
	}
	return nil, nil
}

func (s *stubOrderRepo) GetByPaymentKey(ctx context.Context, paymentKey string) (*order.PaymentOrder, error) {
	return nil, nil
}

func (s *stubOrderRepo) ListByUserID(ctx context.Context, userID string) ([]*order.PaymentOrder, error) {
	if s.order != nil && s.order.IsOwnedBy(userID) {
		return []*order.PaymentOrder{s.order}, nil
	}
	return nil, nil
}

func (s *stubOrderRepo) CompleteIfReady(ctx context.Context, o *order.PaymentOrder) (bool, error) {
	return false, nil
}

type stubProgramRepo struct {
	program *program.Program
}

func (s *stubProgramRepo) Create(ctx context.Context, p *program.Program) error { return nil }
func (s *stubProgramRepo) Update(ctx context.Context, p *program.Program) error { return nil }

func (s *stubProgramRepo) GetByID(ctx context.Context, programID string) (*program.Program, error) {
	if s.program != nil && s.program.ID() == programID {
		return s.program, nil
	}
	return nil, nil
}

func (s *stubProgramRepo) ListActive(ctx context.Context) ([]*program.Program, error) {
	return nil, nil
}

func (s *stubProgramRepo) ListByCoachID(ctx context.Context, coachID string) ([]*program.Program, error) {
	return nil, nil
}

// =====================================================================
// Test helpers
// =====================================================================

func createStubOrder(t *testing.T) *order.PaymentOrder {
	t.Helper()
	now := time.Now().UTC()
	return order.ReconstructPaymentOrder(
		1, "ord_20260828_abc123", "user-1", "prog-1", 19900,
		vo.OrderStatusReady, nil, nil, now, now,
	)
}

func newTestCheckoutHandler(orderRepo order.PaymentOrderRepository, programRepo program.ProgramRepository) *CheckoutHandler {
	log := testutil.NewMockLogger()
	getOrderUC := checkoutUsecases.NewGetOrderUseCase(orderRepo, programRepo, log)
	listOrdersUC := checkoutUsecases.NewListUserOrdersUseCase(orderRepo, programRepo, log)
	return NewCheckoutHandler(nil, nil, getOrderUC, listOrdersUC, nil, log)
}

// =====================================================================
// TestCheckoutHandler_PrepareOrder binding
// =====================================================================

func TestCheckoutHandler_PrepareOrder_MissingProgramID(t *testing.T) {
	handler := newTestCheckoutHandler(&stubOrderRepo{}, &stubProgramRepo{})

	c, w := testutil.NewTestContext(http.MethodPost, "/checkout/orders", map[string]string{})
	testutil.SetAuthContext(c, "user-1")

	handler.PrepareOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error.Message, "program_id is required")
}

// =====================================================================
// TestCheckoutHandler_ApproveOrder binding
// =====================================================================

func TestCheckoutHandler_ApproveOrder_InvalidAmount(t *testing.T) {
	handler := newTestCheckoutHandler(&stubOrderRepo{}, &stubProgramRepo{})

	reqBody := map[string]interface{}{
		"order_id":    "ord_test",
		"payment_key": "pk_test",
		"amount":      0,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/checkout/orders/approve", reqBody)
	testutil.SetAuthContext(c, "user-1")

	handler.ApproveOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestCheckoutHandler_ApproveOrder_MalformedBody(t *testing.T) {
	handler := newTestCheckoutHandler(&stubOrderRepo{}, &stubProgramRepo{})

	c, w := testutil.NewTestContext(http.MethodPost, "/checkout/orders/approve", "not an object")
	testutil.SetAuthContext(c, "user-1")

	handler.ApproveOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	// Internals never leak on malformed JSON.
	assert.Equal(t, "invalid request body", resp.Error.Message)
}

// =====================================================================
// TestCheckoutHandler_GetOrder
// =====================================================================

func TestCheckoutHandler_GetOrder_Success(t *testing.T) {
	stubOrder := createStubOrder(t)
	handler := newTestCheckoutHandler(&stubOrderRepo{order: stubOrder}, &stubProgramRepo{})

	c, w := testutil.NewTestContext(http.MethodGet, "/checkout/orders/ord_20260828_abc123", nil)
	testutil.SetAuthContext(c, "user-1")
	testutil.SetURLParam(c, "orderID", "ord_20260828_abc123")

	handler.GetOrder(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "ord_20260828_abc123")
}

func TestCheckoutHandler_GetOrder_NotFound(t *testing.T) {
	handler := newTestCheckoutHandler(&stubOrderRepo{}, &stubProgramRepo{})

	c, w := testutil.NewTestContext(http.MethodGet, "/checkout/orders/ord_missing", nil)
	testutil.SetAuthContext(c, "user-1")
	testutil.SetURLParam(c, "orderID", "ord_missing")

	handler.GetOrder(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutHandler_GetOrder_ForeignOrderForbidden(t *testing.T) {
	stubOrder := createStubOrder(t)
	handler := newTestCheckoutHandler(&stubOrderRepo{order: stubOrder}, &stubProgramRepo{})

	c, w := testutil.NewTestContext(http.MethodGet, "/checkout/orders/ord_20260828_abc123", nil)
	testutil.SetAuthContext(c, "someone-else")
	testutil.SetURLParam(c, "orderID", "ord_20260828_abc123")

	handler.GetOrder(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// =====================================================================
// TestCheckoutHandler_CheckoutSuccess
// =====================================================================

func TestCheckoutHandler_CheckoutSuccess_EchoesParamsAndOrder(t *testing.T) {
	stubOrder := createStubOrder(t)
	handler := newTestCheckoutHandler(&stubOrderRepo{order: stubOrder}, &stubProgramRepo{})

	c, w := testutil.NewTestContext(http.MethodGet, "/checkout/success", nil)
	testutil.SetAuthContext(c, "user-1")
	testutil.SetQueryParams(c, map[string]string{
		"orderId":    "ord_20260828_abc123",
		"paymentKey": "payment_ord_20260828_abc123_1756339200000",
		"amount":     "19900",
	})

	handler.CheckoutSuccess(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"amount":19900`)
	assert.Contains(t, string(resp.Data), `"payment_key":"payment_ord_20260828_abc123_1756339200000"`)
	// Stored order rides along for the page render.
	assert.Contains(t, string(resp.Data), `"status":"ready"`)
}

// =====================================================================
// TestCheckoutHandler_CheckoutFail
// =====================================================================

func TestCheckoutHandler_CheckoutFail(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		message string
	}{
		{"user cancel", "USER_CANCEL", MsgFailUserCancel},
		{"processing failed", "PAYMENT_PROCESSING_FAILED", MsgFailProcessing},
		{"invalid amount", "INVALID_PAYMENT_AMOUNT", MsgFailInvalidAmount},
		{"unknown code", "SOMETHING_ELSE", MsgFailDefault},
		{"no code", "", MsgFailDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestCheckoutHandler(&stubOrderRepo{}, &stubProgramRepo{})

			c, w := testutil.NewTestContext(http.MethodGet, "/checkout/fail", nil)
			testutil.SetQueryParams(c, map[string]string{
				"code":    tt.code,
				"orderId": "ord_failed",
				"message": "gateway detail",
			})

			handler.CheckoutFail(c)

			// The fail page always renders; the gateway never charged.
			assert.Equal(t, http.StatusOK, w.Code)

			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.True(t, resp.Success)
			assert.Contains(t, string(resp.Data), tt.message)
		})
	}
}
