package usecases

import (
	"context"
	"time"

	"github.com/coachfit-inc/coachfit/internal/domain/order"
	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

// Query-surface failure messages, user-facing like the rest of the checkout
// strings.
const (
	MsgOrderLookupFailed      = "주문 정보를 불러오지 못했습니다."
	MsgEligibilityCheckFailed = "구매 가능 여부를 확인하지 못했습니다."
)

// OrderSummary is the read model for an order with its program context.
type OrderSummary struct {
	OrderID      string     `json:"order_id"`
	ProgramID    string     `json:"program_id"`
	ProgramTitle string     `json:"program_title"`
	Amount       int64      `json:"amount"`
	Status       string     `json:"status"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type GetOrderQuery struct {
	UserID  string
	OrderID string
}

type GetOrderUseCase struct {
	orderRepo   order.PaymentOrderRepository
	programRepo program.ProgramRepository
	logger      logger.Interface
}

func NewGetOrderUseCase(
	orderRepo order.PaymentOrderRepository,
	programRepo program.ProgramRepository,
	logger logger.Interface,
) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo:   orderRepo,
		programRepo: programRepo,
		logger:      logger,
	}
}

// Execute returns the order with its program summary, or nil when the order
// does not exist. Absence is not an error for this read, but reading someone
// else's order is.
func (uc *GetOrderUseCase) Execute(ctx context.Context, q GetOrderQuery) (*OrderSummary, error) {
	if q.UserID == "" {
		return nil, errors.NewUnauthorizedError(MsgLoginRequired)
	}

	paymentOrder, err := uc.orderRepo.GetByOrderID(ctx, q.OrderID)
	if err != nil {
		uc.logger.Errorw("failed to load payment order", "error", err, "order_id", q.OrderID)
		return nil, errors.NewInternalError(MsgOrderLookupFailed)
	}
	if paymentOrder == nil {
		return nil, nil
	}

	if !paymentOrder.IsOwnedBy(q.UserID) {
		return nil, errors.NewForbiddenError(MsgForbidden)
	}

	summary := &OrderSummary{
		OrderID:    paymentOrder.OrderID(),
		ProgramID:  paymentOrder.ProgramID(),
		Amount:     paymentOrder.Amount(),
		Status:     paymentOrder.Status().String(),
		ApprovedAt: paymentOrder.ApprovedAt(),
		CreatedAt:  paymentOrder.CreatedAt(),
	}

	prog, err := uc.programRepo.GetByID(ctx, paymentOrder.ProgramID())
	if err != nil {
		uc.logger.Errorw("failed to load program for order", "error", err, "program_id", paymentOrder.ProgramID())
		return nil, errors.NewInternalError(MsgOrderLookupFailed)
	}
	if prog != nil {
		summary.ProgramTitle = prog.Title()
	}

	return summary, nil
}
