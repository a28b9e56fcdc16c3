package usecases

import (
	"context"
	"time"

	"github.com/coachfit-inc/coachfit/internal/application/checkout/paymentgateway"
	"github.com/coachfit-inc/coachfit/internal/domain/order"
	"github.com/coachfit-inc/coachfit/internal/domain/subscription"
	"github.com/coachfit-inc/coachfit/internal/shared/biztime"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

// TransactionManager scopes the approval writes to one transaction.
// *db.TransactionManager satisfies it.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MsgOrderNotFound    = "결제 주문을 찾을 수 없습니다."
	MsgForbidden        = "접근 권한이 없습니다."
	MsgAmountMismatch   = "결제 금액이 일치하지 않습니다."
	MsgAlreadyProcessed = "이미 처리된 결제입니다."
	MsgPaymentNotDone   = "결제가 완료되지 않았습니다."
	MsgApproveFailed    = "결제 승인에 실패했습니다."
)

// DefaultPeriodDays is the paid subscription billing period.
const DefaultPeriodDays = 30

type ApproveOrderCommand struct {
	UserID     string
	OrderID    string
	PaymentKey string
	Amount     int64
}

type ApproveOrderResult struct {
	OrderID        string
	SubscriptionID string
	ProgramID      string
	Amount         int64
	PaymentMethod  string
	ApprovedAt     time.Time
}

type ApproveOrderConfig struct {
	PeriodDays int
}

type ApproveOrderUseCase struct {
	orderRepo        order.PaymentOrderRepository
	subscriptionRepo subscription.SubscriptionRepository
	gateway          paymentgateway.PaymentGateway
	txManager        TransactionManager
	logger           logger.Interface
	config           ApproveOrderConfig
}

func NewApproveOrderUseCase(
	orderRepo order.PaymentOrderRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	gateway paymentgateway.PaymentGateway,
	txManager TransactionManager,
	logger logger.Interface,
	config ApproveOrderConfig,
) *ApproveOrderUseCase {
	if config.PeriodDays <= 0 {
		config.PeriodDays = DefaultPeriodDays
	}
	return &ApproveOrderUseCase{
		orderRepo:        orderRepo,
		subscriptionRepo: subscriptionRepo,
		gateway:          gateway,
		txManager:        txManager,
		logger:           logger,
		config:           config,
	}
}

// Execute validates the prepared order against the client-asserted values,
// confirms the payment with the gateway, and atomically completes the order
// while activating the subscription. Until the conditional update lands the
// order stays ready, so a failed call can be retried.
func (uc *ApproveOrderUseCase) Execute(ctx context.Context, cmd ApproveOrderCommand) (*ApproveOrderResult, error) {
	if cmd.UserID == "" {
		return nil, errors.NewUnauthorizedError(MsgLoginRequired)
	}

	paymentOrder, err := uc.orderRepo.GetByOrderID(ctx, cmd.OrderID)
	if err != nil {
		uc.logger.Errorw("failed to load payment order", "error", err, "order_id", cmd.OrderID)
		return nil, errors.NewInternalError(MsgApproveFailed)
	}
	if paymentOrder == nil {
		return nil, errors.NewNotFoundError(MsgOrderNotFound)
	}

	if !paymentOrder.IsOwnedBy(cmd.UserID) {
		uc.logger.Warnw("approval attempt by non-owner",
			"order_id", cmd.OrderID, "user_id", cmd.UserID, "owner_id", paymentOrder.UserID())
		return nil, errors.NewForbiddenError(MsgForbidden)
	}

	if err := paymentOrder.ValidateClientAmount(cmd.Amount); err != nil {
		uc.logger.Warnw("client amount mismatch",
			"order_id", cmd.OrderID, "expected", paymentOrder.Amount(), "got", cmd.Amount)
		return nil, errors.NewAmountMismatchError(MsgAmountMismatch)
	}

	if paymentOrder.Status().IsCompleted() {
		return nil, errors.NewAlreadyProcessedError(MsgAlreadyProcessed)
	}

	confirmation, err := uc.gateway.Confirm(ctx, paymentgateway.ConfirmRequest{
		PaymentKey: cmd.PaymentKey,
		OrderID:    cmd.OrderID,
		Amount:     cmd.Amount,
	})
	if err != nil {
		uc.logger.Errorw("gateway confirmation failed", "error", err, "order_id", cmd.OrderID)
		return nil, errors.NewUpstreamError(MsgApproveFailed)
	}
	if !confirmation.IsDone() {
		uc.logger.Warnw("gateway returned non-terminal status",
			"order_id", cmd.OrderID, "status", confirmation.Status)
		return nil, errors.NewUpstreamError(MsgPaymentNotDone)
	}

	periodEnd := biztime.NowUTC().Add(time.Duration(uc.config.PeriodDays) * 24 * time.Hour)

	var sub *subscription.Subscription
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		completed, err := uc.orderRepo.CompleteIfReady(txCtx, paymentOrder)
		if err != nil {
			return err
		}
		if !completed {
			return errors.NewAlreadyProcessedError(MsgAlreadyProcessed)
		}

		sub, err = subscription.NewPaidSubscription(
			cmd.UserID,
			paymentOrder.ProgramID(),
			paymentOrder.ID(),
			confirmation.Method,
			cmd.Amount,
			periodEnd,
		)
		if err != nil {
			return err
		}

		if err := uc.subscriptionRepo.Create(txCtx, sub); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError(MsgAlreadySubscribed)
			}
			return err
		}
		return nil
	})
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		uc.logger.Errorw("approval transaction failed", "error", err, "order_id", cmd.OrderID)
		return nil, errors.NewInternalError(MsgApproveFailed)
	}

	uc.logger.Infow("payment order approved",
		"order_id", cmd.OrderID,
		"subscription_id", sub.ID(),
		"user_id", cmd.UserID,
		"amount", cmd.Amount,
		"method", sub.PaymentMethod())

	return &ApproveOrderResult{
		OrderID:        cmd.OrderID,
		SubscriptionID: sub.ID(),
		ProgramID:      paymentOrder.ProgramID(),
		Amount:         cmd.Amount,
		PaymentMethod:  sub.PaymentMethod(),
		ApprovedAt:     biztime.NowUTC(),
	}, nil
}
