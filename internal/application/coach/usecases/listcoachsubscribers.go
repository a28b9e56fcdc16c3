package usecases

import (
	"context"

	"github.com/coachfit-inc/coachfit/internal/domain/profile"
	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/domain/subscription"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

type ListCoachSubscribersQuery struct {
	CoachID string
}

type ListCoachSubscribersUseCase struct {
	programRepo      program.ProgramRepository
	subscriptionRepo subscription.SubscriptionRepository
	profileRepo      profile.ProfileRepository
	logger           logger.Interface
}

func NewListCoachSubscribersUseCase(
	programRepo program.ProgramRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	profileRepo profile.ProfileRepository,
	logger logger.Interface,
) *ListCoachSubscribersUseCase {
	return &ListCoachSubscribersUseCase{
		programRepo:      programRepo,
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		logger:           logger,
	}
}

// Execute lists active subscribers across all of the coach's programs.
func (uc *ListCoachSubscribersUseCase) Execute(ctx context.Context, q ListCoachSubscribersQuery) ([]*SubscriberEntry, error) {
	programs, err := uc.programRepo.ListByCoachID(ctx, q.CoachID)
	if err != nil {
		uc.logger.Errorw("failed to list coach programs", "error", err, "coach_id", q.CoachID)
		return nil, errors.NewInternalError(MsgStatsFailed)
	}
	if len(programs) == 0 {
		return []*SubscriberEntry{}, nil
	}

	titles := make(map[string]string, len(programs))
	programIDs := make([]string, 0, len(programs))
	for _, p := range programs {
		titles[p.ID()] = p.Title()
		programIDs = append(programIDs, p.ID())
	}

	subs, err := uc.subscriptionRepo.ListActiveByProgramIDs(ctx, programIDs)
	if err != nil {
		uc.logger.Errorw("failed to list active subscriptions", "error", err, "coach_id", q.CoachID)
		return nil, errors.NewInternalError(MsgStatsFailed)
	}

	lister := &ListProgramSubscribersUseCase{
		programRepo:      uc.programRepo,
		subscriptionRepo: uc.subscriptionRepo,
		profileRepo:      uc.profileRepo,
		logger:           uc.logger,
	}
	return lister.buildEntries(ctx, subs, titles)
}
