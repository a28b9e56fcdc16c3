package usecases

import (
	"context"

	"github.com/coachfit-inc/coachfit/internal/domain/subscription"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

type HasActiveSubscriptionQuery struct {
	UserID    string
	ProgramID string
}

type HasActiveSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewHasActiveSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *HasActiveSubscriptionUseCase {
	return &HasActiveSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute reports whether the user holds an active subscription for the
// program. Anonymous callers always get false.
func (uc *HasActiveSubscriptionUseCase) Execute(ctx context.Context, q HasActiveSubscriptionQuery) (bool, error) {
	if q.UserID == "" {
		return false, nil
	}

	exists, err := uc.subscriptionRepo.ExistsActive(ctx, q.UserID, q.ProgramID)
	if err != nil {
		uc.logger.Errorw("failed to check active subscription", "error", err, "user_id", q.UserID, "program_id", q.ProgramID)
		return false, errors.NewInternalError("failed to check subscription")
	}
	return exists, nil
}
