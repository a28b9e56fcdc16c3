package usecases

import (
	"context"

	"github.com/coachfit-inc/coachfit/internal/domain/order"
	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/domain/subscription"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/id"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

// User-facing checkout messages. These surface directly in the widget, so
// they stay in Korean; logs remain English.
const (
	MsgLoginRequired     = "로그인이 필요합니다."
	MsgProgramNotFound   = "존재하지 않는 프로그램입니다."
	MsgSalePaused        = "현재 판매 중지된 프로그램입니다."
	MsgAlreadySubscribed = "이미 구독 중인 프로그램입니다."
	MsgPrepareFailed     = "결제 준비에 실패했습니다."
)

type PrepareOrderCommand struct {
	UserID    string
	ProgramID string
}

type PrepareOrderResult struct {
	OrderID    string
	PaymentKey string
	Amount     int64
	Title      string
	IsFree     bool
}

type PrepareOrderUseCase struct {
	programRepo      program.ProgramRepository
	orderRepo        order.PaymentOrderRepository
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewPrepareOrderUseCase(
	programRepo program.ProgramRepository,
	orderRepo order.PaymentOrderRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *PrepareOrderUseCase {
	return &PrepareOrderUseCase{
		programRepo:      programRepo,
		orderRepo:        orderRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute runs the preparation precondition chain and, depending on the
// program price, either activates a free subscription or creates a ready
// payment order for the gateway widget.
func (uc *PrepareOrderUseCase) Execute(ctx context.Context, cmd PrepareOrderCommand) (*PrepareOrderResult, error) {
	if cmd.UserID == "" {
		return nil, errors.NewUnauthorizedError(MsgLoginRequired)
	}

	prog, err := uc.programRepo.GetByID(ctx, cmd.ProgramID)
	if err != nil {
		uc.logger.Errorw("failed to load program", "error", err, "program_id", cmd.ProgramID)
		return nil, errors.NewInternalError(MsgPrepareFailed)
	}
	if prog == nil || !prog.IsActive() {
		return nil, errors.NewNotFoundError(MsgProgramNotFound)
	}

	if !prog.OnSale() {
		msg := MsgSalePaused
		if reason := prog.SaleStopReason(); reason != nil && *reason != "" {
			msg = *reason
		}
		return nil, errors.NewConflictError(msg)
	}

	exists, err := uc.subscriptionRepo.ExistsActive(ctx, cmd.UserID, cmd.ProgramID)
	if err != nil {
		uc.logger.Errorw("failed to check active subscription", "error", err, "user_id", cmd.UserID, "program_id", cmd.ProgramID)
		return nil, errors.NewInternalError(MsgPrepareFailed)
	}
	if exists {
		return nil, errors.NewConflictError(MsgAlreadySubscribed)
	}

	if prog.IsFree() {
		return uc.enrollFree(ctx, cmd, prog)
	}

	paymentOrder, err := order.NewPaymentOrder(cmd.UserID, cmd.ProgramID, prog.Price())
	if err != nil {
		uc.logger.Errorw("failed to build payment order", "error", err, "program_id", cmd.ProgramID)
		return nil, errors.NewInternalError(MsgPrepareFailed)
	}

	if err := uc.orderRepo.Create(ctx, paymentOrder); err != nil {
		uc.logger.Errorw("failed to save payment order", "error", err, "order_id", paymentOrder.OrderID())
		return nil, errors.NewInternalError(MsgPrepareFailed)
	}

	uc.logger.Infow("payment order prepared",
		"order_id", paymentOrder.OrderID(),
		"user_id", cmd.UserID,
		"program_id", cmd.ProgramID,
		"amount", paymentOrder.Amount())

	return &PrepareOrderResult{
		OrderID:    paymentOrder.OrderID(),
		PaymentKey: *paymentOrder.PaymentKey(),
		Amount:     paymentOrder.Amount(),
		Title:      prog.Title(),
	}, nil
}

func (uc *PrepareOrderUseCase) enrollFree(ctx context.Context, cmd PrepareOrderCommand, prog *program.Program) (*PrepareOrderResult, error) {
	sub, err := subscription.NewFreeSubscription(cmd.UserID, cmd.ProgramID)
	if err != nil {
		uc.logger.Errorw("failed to build free subscription", "error", err, "program_id", cmd.ProgramID)
		return nil, errors.NewInternalError(MsgPrepareFailed)
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(MsgAlreadySubscribed)
		}
		uc.logger.Errorw("failed to save free subscription", "error", err, "user_id", cmd.UserID, "program_id", cmd.ProgramID)
		return nil, errors.NewInternalError(MsgPrepareFailed)
	}

	uc.logger.Infow("free enrollment activated",
		"subscription_id", sub.ID(),
		"user_id", cmd.UserID,
		"program_id", cmd.ProgramID)

	return &PrepareOrderResult{
		OrderID: id.NewFreeOrderID(),
		Amount:  0,
		Title:   prog.Title(),
		IsFree:  true,
	}, nil
}
