package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coachfit-inc/coachfit/internal/application/checkout/paymentgateway"
	"github.com/coachfit-inc/coachfit/internal/domain/order"
	vo "github.com/coachfit-inc/coachfit/internal/domain/order/valueobjects"
	"github.com/coachfit-inc/coachfit/internal/domain/subscription"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
)

func readyOrder(t *testing.T, userID string, amount int64) *order.PaymentOrder {
	t.Helper()
	o, err := order.NewPaymentOrder(userID, "program-1", amount)
	require.NoError(t, err)
	o.SetID(42)
	return o
}

func completedOrder(userID string, amount int64) *order.PaymentOrder {
	now := time.Now().UTC()
	key := "payment_done_1700000000000"
	return order.ReconstructPaymentOrder(42, "done", userID, "program-1", amount,
		vo.OrderStatusCompleted, &key, &now, now, now)
}

func approveCmd(o *order.PaymentOrder, userID string, amount int64) ApproveOrderCommand {
	return ApproveOrderCommand{
		UserID:     userID,
		OrderID:    o.OrderID(),
		PaymentKey: *o.PaymentKey(),
		Amount:     amount,
	}
}

func newApproveUseCase(orderRepo *mockOrderRepo, subRepo *mockSubscriptionRepo, gw *mockGateway) *ApproveOrderUseCase {
	return NewApproveOrderUseCase(orderRepo, subRepo, gw, &mockTxManager{}, newNoopLogger(), ApproveOrderConfig{PeriodDays: 30})
}

func TestApproveOrder_OrderNotFound(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	orderRepo.On("GetByOrderID", mock.Anything, "missing").Return(nil, nil)

	uc := newApproveUseCase(orderRepo, new(mockSubscriptionRepo), new(mockGateway))
	_, err := uc.Execute(context.Background(), ApproveOrderCommand{
		UserID: "user-1", OrderID: "missing", PaymentKey: "pk", Amount: 1000,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, MsgOrderNotFound, errors.GetAppError(err).Message)
}

func TestApproveOrder_OwnershipMismatch(t *testing.T) {
	o := readyOrder(t, "owner-1", 19900)
	orderRepo := new(mockOrderRepo)
	orderRepo.On("GetByOrderID", mock.Anything, o.OrderID()).Return(o, nil)
	gw := new(mockGateway)

	uc := newApproveUseCase(orderRepo, new(mockSubscriptionRepo), gw)
	// Matching order ID and amount, but a different caller.
	_, err := uc.Execute(context.Background(), approveCmd(o, "intruder", 19900))

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	assert.Equal(t, MsgForbidden, appErr.Message)
	gw.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
}

func TestApproveOrder_AmountMismatch_NoMutation(t *testing.T) {
	o := readyOrder(t, "user-1", 29900)
	orderRepo := new(mockOrderRepo)
	orderRepo.On("GetByOrderID", mock.Anything, o.OrderID()).Return(o, nil)
	gw := new(mockGateway)

	uc := newApproveUseCase(orderRepo, new(mockSubscriptionRepo), gw)
	_, err := uc.Execute(context.Background(), approveCmd(o, "user-1", 1))

	require.Error(t, err)
	assert.True(t, errors.IsAmountMismatchError(err))
	assert.Equal(t, MsgAmountMismatch, errors.GetAppError(err).Message)
	assert.True(t, o.Status().IsReady(), "order must stay ready after a rejected approval")
	gw.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "CompleteIfReady", mock.Anything, mock.Anything)
}

func TestApproveOrder_AlreadyCompleted(t *testing.T) {
	o := completedOrder("user-1", 19900)
	orderRepo := new(mockOrderRepo)
	orderRepo.On("GetByOrderID", mock.Anything, o.OrderID()).Return(o, nil)
	gw := new(mockGateway)

	uc := newApproveUseCase(orderRepo, new(mockSubscriptionRepo), gw)
	_, err := uc.Execute(context.Background(), approveCmd(o, "user-1", 19900))

	require.Error(t, err)
	assert.True(t, errors.IsAlreadyProcessedError(err))
	assert.Equal(t, MsgAlreadyProcessed, errors.GetAppError(err).Message)
	gw.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
}

func TestApproveOrder_GatewayError(t *testing.T) {
	o := readyOrder(t, "user-1", 19900)
	orderRepo := new(mockOrderRepo)
	orderRepo.On("GetByOrderID", mock.Anything, o.OrderID()).Return(o, nil)
	gw := new(mockGateway)
	gw.On("Confirm", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("gateway returned 400"))

	uc := newApproveUseCase(orderRepo, new(mockSubscriptionRepo), gw)
	_, err := uc.Execute(context.Background(), approveCmd(o, "user-1", 19900))

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUpstream, appErr.Type)
	assert.Equal(t, MsgApproveFailed, appErr.Message)
	orderRepo.AssertNotCalled(t, "CompleteIfReady", mock.Anything, mock.Anything)
}

func TestApproveOrder_GatewayNotDone_NoMutation(t *testing.T) {
	o := readyOrder(t, "user-1", 19900)
	orderRepo := new(mockOrderRepo)
	orderRepo.On("GetByOrderID", mock.Anything, o.OrderID()).Return(o, nil)
	gw := new(mockGateway)
	gw.On("Confirm", mock.Anything, mock.Anything).Return(&paymentgateway.ConfirmResponse{Status: "IN_PROGRESS"}, nil)
	subRepo := new(mockSubscriptionRepo)

	uc := newApproveUseCase(orderRepo, subRepo, gw)
	_, err := uc.Execute(context.Background(), approveCmd(o, "user-1", 19900))

	require.Error(t, err)
	assert.Equal(t, MsgPaymentNotDone, errors.GetAppError(err).Message)
	orderRepo.AssertNotCalled(t, "CompleteIfReady", mock.Anything, mock.Anything)
	subRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApproveOrder_ConcurrentReplayLosesUpdate(t *testing.T) {
	o := readyOrder(t, "user-1", 19900)
	orderRepo := new(mockOrderRepo)
	orderRepo.On("GetByOrderID", mock.Anything, o.OrderID()).Return(o, nil)
	// Conditional update reports zero rows affected: another request won.
	orderRepo.On("CompleteIfReady", mock.Anything, o).Return(false, nil)
	gw := new(mockGateway)
	gw.On("Confirm", mock.Anything, mock.Anything).Return(&paymentgateway.ConfirmResponse{Status: paymentgateway.StatusDone, Method: "card"}, nil)
	subRepo := new(mockSubscriptionRepo)

	uc := newApproveUseCase(orderRepo, subRepo, gw)
	_, err := uc.Execute(context.Background(), approveCmd(o, "user-1", 19900))

	require.Error(t, err)
	assert.True(t, errors.IsAlreadyProcessedError(err))
	subRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApproveOrder_Success(t *testing.T) {
	o := readyOrder(t, "user-1", 19900)
	orderRepo := new(mockOrderRepo)
	orderRepo.On("GetByOrderID", mock.Anything, o.OrderID()).Return(o, nil)
	orderRepo.On("CompleteIfReady", mock.Anything, o).Return(true, nil)

	gw := new(mockGateway)
	gw.On("Confirm", mock.Anything, paymentgateway.ConfirmRequest{
		PaymentKey: *o.PaymentKey(),
		OrderID:    o.OrderID(),
		Amount:     19900,
	}).Return(&paymentgateway.ConfirmResponse{Status: paymentgateway.StatusDone, Method: "card"}, nil)

	var created *subscription.Subscription
	subRepo := new(mockSubscriptionRepo)
	subRepo.On("Create", mock.Anything, mock.AnythingOfType("*subscription.Subscription")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*subscription.Subscription)
		}).Return(nil)

	uc := newApproveUseCase(orderRepo, subRepo, gw)
	result, err := uc.Execute(context.Background(), approveCmd(o, "user-1", 19900))

	require.NoError(t, err)
	assert.Equal(t, o.OrderID(), result.OrderID)
	assert.Equal(t, int64(19900), result.Amount)
	assert.Equal(t, "card", result.PaymentMethod)

	require.NotNil(t, created)
	assert.True(t, created.IsActive())
	assert.Equal(t, "user-1", created.UserID())
	assert.Equal(t, "program-1", created.ProgramID())
	assert.Equal(t, int64(19900), created.PaymentAmount())
	require.NotNil(t, created.PaymentOrderID())
	assert.Equal(t, uint(42), *created.PaymentOrderID())
	require.NotNil(t, created.CurrentPeriodEnd())
	assert.WithinDuration(t, time.Now().UTC().Add(30*24*time.Hour), *created.CurrentPeriodEnd(), time.Minute)
}

func TestApproveOrder_MethodFallbackToCard(t *testing.T) {
	o := readyOrder(t, "user-1", 19900)
	orderRepo := new(mockOrderRepo)
	orderRepo.On("GetByOrderID", mock.Anything, o.OrderID()).Return(o, nil)
	orderRepo.On("CompleteIfReady", mock.Anything, o).Return(true, nil)
	gw := new(mockGateway)
	gw.On("Confirm", mock.Anything, mock.Anything).Return(&paymentgateway.ConfirmResponse{Status: paymentgateway.StatusDone}, nil)
	subRepo := new(mockSubscriptionRepo)
	subRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := newApproveUseCase(orderRepo, subRepo, gw)
	result, err := uc.Execute(context.Background(), approveCmd(o, "user-1", 19900))

	require.NoError(t, err)
	assert.Equal(t, subscription.PaymentMethodCard, result.PaymentMethod)
}

func TestApproveOrder_SubscriptionDuplicateInTx(t *testing.T) {
	o := readyOrder(t, "user-1", 19900)
	orderRepo := new(mockOrderRepo)
	orderRepo.On("GetByOrderID", mock.Anything, o.OrderID()).Return(o, nil)
	orderRepo.On("CompleteIfReady", mock.Anything, o).Return(true, nil)
	gw := new(mockGateway)
	gw.On("Confirm", mock.Anything, mock.Anything).Return(&paymentgateway.ConfirmResponse{Status: paymentgateway.StatusDone, Method: "card"}, nil)
	subRepo := new(mockSubscriptionRepo)
	subRepo.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("Error 1062: Duplicate entry"))

	uc := newApproveUseCase(orderRepo, subRepo, gw)
	_, err := uc.Execute(context.Background(), approveCmd(o, "user-1", 19900))

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, MsgAlreadySubscribed, errors.GetAppError(err).Message)
}
