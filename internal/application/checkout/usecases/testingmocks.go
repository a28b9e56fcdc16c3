package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/coachfit-inc/coachfit/internal/application/checkout/paymentgateway"
	"github.com/coachfit-inc/coachfit/internal/domain/order"
	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/domain/subscription"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

type mockProgramRepo struct {
	mock.Mock
}

func (m *mockProgramRepo) Create(ctx context.Context, p *program.Program) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProgramRepo) Update(ctx context.Context, p *program.Program) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProgramRepo) GetByID(ctx context.Context, programID string) (*program.Program, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*program.Program), args.Error(1)
}

func (m *mockProgramRepo) ListActive(ctx context.Context) ([]*program.Program, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*program.Program), args.Error(1)
}

func (m *mockProgramRepo) ListByCoachID(ctx context.Context, coachID string) ([]*program.Program, error) {
	args := m.Called(ctx, coachID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*program.Program), args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, o *order.PaymentOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOrderRepo) GetByOrderID(ctx context.Context, orderID string) (*order.PaymentOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.PaymentOrder), args.Error(1)
}

func (m *mockOrderRepo) GetByPaymentKey(ctx context.Context, paymentKey string) (*order.PaymentOrder, error) {
	args := m.Called(ctx, paymentKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.PaymentOrder), args.Error(1)
}

func (m *mockOrderRepo) ListByUserID(ctx context.Context, userID string) ([]*order.PaymentOrder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.PaymentOrder), args.Error(1)
}

func (m *mockOrderRepo) CompleteIfReady(ctx context.Context, o *order.PaymentOrder) (bool, error) {
	args := m.Called(ctx, o)
	return args.Bool(0), args.Error(1)
}

type mockSubscriptionRepo struct {
	mock.Mock
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, s *subscription.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) Update(ctx context.Context, s *subscription.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) GetByID(ctx context.Context, subscriptionID string) (*subscription.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) ListByUserID(ctx context.Context, userID string) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) ListByProgramID(ctx context.Context, programID string) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) ListActiveByProgramIDs(ctx context.Context, programIDs []string) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, programIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) ExistsActive(ctx context.Context, userID, programID string) (bool, error) {
	args := m.Called(ctx, userID, programID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubscriptionRepo) CountActiveByProgramIDs(ctx context.Context, programIDs []string) (int64, error) {
	args := m.Called(ctx, programIDs)
	return args.Get(0).(int64), args.Error(1)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Confirm(ctx context.Context, req paymentgateway.ConfirmRequest) (*paymentgateway.ConfirmResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentgateway.ConfirmResponse), args.Error(1)
}

// mockTxManager runs the transactional function inline against the same
// context, which is all the usecase tests need.
type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// noopLogger keeps usecase tests from asserting on log noise.
type noopLogger struct{}

func newNoopLogger() logger.Interface { return noopLogger{} }

func (noopLogger) Debug(msg string, args ...any)                       {}
func (noopLogger) Info(msg string, args ...any)                        {}
func (noopLogger) Warn(msg string, args ...any)                        {}
func (noopLogger) Error(msg string, args ...any)                       {}
func (noopLogger) Fatal(msg string, args ...any)                       {}
func (n noopLogger) With(args ...any) logger.Interface                 { return n }
func (n noopLogger) Named(name string) logger.Interface                { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{})     {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})      {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})      {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{})     {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{})     {}
