package usecases

import (
	"context"
	"time"

	"github.com/coachfit-inc/coachfit/internal/domain/profile"
	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/domain/subscription"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

// SubscriptionSummary is the read model for a subscription with its program
// and coach context.
type SubscriptionSummary struct {
	SubscriptionID   string     `json:"subscription_id"`
	ProgramID        string     `json:"program_id"`
	ProgramTitle     string     `json:"program_title"`
	CoachName        string     `json:"coach_name"`
	Status           string     `json:"status"`
	PaymentMethod    string     `json:"payment_method"`
	PaymentAmount    int64      `json:"payment_amount"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type ListUserSubscriptionsQuery struct {
	UserID string
}

type ListUserSubscriptionsUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	programRepo      program.ProgramRepository
	profileRepo      profile.ProfileRepository
	logger           logger.Interface
}

func NewListUserSubscriptionsUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	programRepo program.ProgramRepository,
	profileRepo profile.ProfileRepository,
	logger logger.Interface,
) *ListUserSubscriptionsUseCase {
	return &ListUserSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		programRepo:      programRepo,
		profileRepo:      profileRepo,
		logger:           logger,
	}
}

// Execute returns the user's subscriptions joined with program titles and
// coach display names. An empty user yields an empty list.
func (uc *ListUserSubscriptionsUseCase) Execute(ctx context.Context, q ListUserSubscriptionsQuery) ([]*SubscriptionSummary, error) {
	if q.UserID == "" {
		return []*SubscriptionSummary{}, nil
	}

	subs, err := uc.subscriptionRepo.ListByUserID(ctx, q.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err, "user_id", q.UserID)
		return nil, errors.NewInternalError("failed to list subscriptions")
	}

	programs := make(map[string]*program.Program)
	coaches := make(map[string]string)

	summaries := make([]*SubscriptionSummary, 0, len(subs))
	for _, s := range subs {
		prog, seen := programs[s.ProgramID()]
		if !seen {
			prog, err = uc.programRepo.GetByID(ctx, s.ProgramID())
			if err != nil {
				uc.logger.Errorw("failed to load program for subscription", "error", err, "program_id", s.ProgramID())
				return nil, errors.NewInternalError("failed to list subscriptions")
			}
			programs[s.ProgramID()] = prog
		}

		summary := &SubscriptionSummary{
			SubscriptionID:   s.ID(),
			ProgramID:        s.ProgramID(),
			Status:           s.Status().String(),
			PaymentMethod:    s.PaymentMethod(),
			PaymentAmount:    s.PaymentAmount(),
			CurrentPeriodEnd: s.CurrentPeriodEnd(),
			CreatedAt:        s.CreatedAt(),
		}

		if prog != nil {
			summary.ProgramTitle = prog.Title()

			coachName, seen := coaches[prog.CoachID()]
			if !seen {
				coach, err := uc.profileRepo.GetByID(ctx, prog.CoachID())
				if err != nil {
					uc.logger.Errorw("failed to load coach profile", "error", err, "coach_id", prog.CoachID())
					return nil, errors.NewInternalError("failed to list subscriptions")
				}
				if coach != nil {
					coachName = coach.DisplayName()
				}
				coaches[prog.CoachID()] = coachName
			}
			summary.CoachName = coachName
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}
