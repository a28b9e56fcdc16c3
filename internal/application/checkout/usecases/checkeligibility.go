package usecases

import (
	"context"

	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/domain/subscription"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

type CheckEligibilityQuery struct {
	UserID    string
	ProgramID string
}

// EligibilityResult tells the storefront whether the buy button should work
// and, if not, what to show instead.
type EligibilityResult struct {
	CanPurchase bool   `json:"can_purchase"`
	Reason      string `json:"reason,omitempty"`
}

type CheckEligibilityUseCase struct {
	programRepo      program.ProgramRepository
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewCheckEligibilityUseCase(
	programRepo program.ProgramRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *CheckEligibilityUseCase {
	return &CheckEligibilityUseCase{
		programRepo:      programRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute reuses the preparation precondition rules without writing anything.
func (uc *CheckEligibilityUseCase) Execute(ctx context.Context, q CheckEligibilityQuery) (*EligibilityResult, error) {
	prog, err := uc.programRepo.GetByID(ctx, q.ProgramID)
	if err != nil {
		uc.logger.Errorw("failed to load program", "error", err, "program_id", q.ProgramID)
		return nil, errors.NewInternalError(MsgEligibilityCheckFailed)
	}
	if prog == nil || !prog.IsActive() {
		return &EligibilityResult{CanPurchase: false, Reason: MsgProgramNotFound}, nil
	}

	if !prog.OnSale() {
		reason := MsgSalePaused
		if r := prog.SaleStopReason(); r != nil && *r != "" {
			reason = *r
		}
		return &EligibilityResult{CanPurchase: false, Reason: reason}, nil
	}

	if q.UserID != "" {
		exists, err := uc.subscriptionRepo.ExistsActive(ctx, q.UserID, q.ProgramID)
		if err != nil {
			uc.logger.Errorw("failed to check active subscription", "error", err, "user_id", q.UserID, "program_id", q.ProgramID)
			return nil, errors.NewInternalError(MsgEligibilityCheckFailed)
		}
		if exists {
			return &EligibilityResult{CanPurchase: false, Reason: MsgAlreadySubscribed}, nil
		}
	}

	return &EligibilityResult{CanPurchase: true}, nil
}
