package usecases

import (
	"context"

	"github.com/coachfit-inc/coachfit/internal/domain/order"
	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

type ListUserOrdersQuery struct {
	UserID string
}

type ListUserOrdersUseCase struct {
	orderRepo   order.PaymentOrderRepository
	programRepo program.ProgramRepository
	logger      logger.Interface
}

func NewListUserOrdersUseCase(
	orderRepo order.PaymentOrderRepository,
	programRepo program.ProgramRepository,
	logger logger.Interface,
) *ListUserOrdersUseCase {
	return &ListUserOrdersUseCase{
		orderRepo:   orderRepo,
		programRepo: programRepo,
		logger:      logger,
	}
}

// Execute returns the user's orders with program titles, newest first (the
// repository orders by creation time descending).
func (uc *ListUserOrdersUseCase) Execute(ctx context.Context, q ListUserOrdersQuery) ([]*OrderSummary, error) {
	if q.UserID == "" {
		return []*OrderSummary{}, nil
	}

	orders, err := uc.orderRepo.ListByUserID(ctx, q.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list user orders", "error", err, "user_id", q.UserID)
		return nil, errors.NewInternalError(MsgOrderLookupFailed)
	}

	// Fetch each distinct program once.
	titles := make(map[string]string)
	summaries := make([]*OrderSummary, 0, len(orders))
	for _, o := range orders {
		title, seen := titles[o.ProgramID()]
		if !seen {
			prog, err := uc.programRepo.GetByID(ctx, o.ProgramID())
			if err != nil {
				uc.logger.Errorw("failed to load program for order list", "error", err, "program_id", o.ProgramID())
				return nil, errors.NewInternalError(MsgOrderLookupFailed)
			}
			if prog != nil {
				title = prog.Title()
			}
			titles[o.ProgramID()] = title
		}

		summaries = append(summaries, &OrderSummary{
			OrderID:      o.OrderID(),
			ProgramID:    o.ProgramID(),
			ProgramTitle: title,
			Amount:       o.Amount(),
			Status:       o.Status().String(),
			ApprovedAt:   o.ApprovedAt(),
			CreatedAt:    o.CreatedAt(),
		})
	}

	return summaries, nil
}
