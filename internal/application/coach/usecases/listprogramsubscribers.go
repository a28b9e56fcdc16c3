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

// SubscriberEntry is a row in a coach's subscriber list.
type SubscriberEntry struct {
	SubscriptionID string     `json:"subscription_id"`
	UserID         string     `json:"user_id"`
	UserName       string     `json:"user_name"`
	Email          string     `json:"email"`
	ProgramID      string     `json:"program_id"`
	ProgramTitle   string     `json:"program_title"`
	Status         string     `json:"status"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	PeriodEnd      *time.Time `json:"period_end,omitempty"`
}

type ListProgramSubscribersQuery struct {
	CoachID   string
	ProgramID string
}

type ListProgramSubscribersUseCase struct {
	programRepo      program.ProgramRepository
	subscriptionRepo subscription.SubscriptionRepository
	profileRepo      profile.ProfileRepository
	logger           logger.Interface
}

func NewListProgramSubscribersUseCase(
	programRepo program.ProgramRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	profileRepo profile.ProfileRepository,
	logger logger.Interface,
) *ListProgramSubscribersUseCase {
	return &ListProgramSubscribersUseCase{
		programRepo:      programRepo,
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		logger:           logger,
	}
}

// Execute lists everyone subscribed to one of the coach's programs. Ownership
// is checked before any subscriber data leaves the store.
func (uc *ListProgramSubscribersUseCase) Execute(ctx context.Context, q ListProgramSubscribersQuery) ([]*SubscriberEntry, error) {
	prog, err := uc.programRepo.GetByID(ctx, q.ProgramID)
	if err != nil {
		uc.logger.Errorw("failed to load program", "error", err, "program_id", q.ProgramID)
		return nil, errors.NewInternalError(MsgStatsFailed)
	}
	if prog == nil {
		return nil, errors.NewNotFoundError(MsgProgramNotFound)
	}
	if !prog.IsOwnedBy(q.CoachID) {
		return nil, errors.NewForbiddenError(MsgNotProgramOwner)
	}

	subs, err := uc.subscriptionRepo.ListByProgramID(ctx, q.ProgramID)
	if err != nil {
		uc.logger.Errorw("failed to list program subscriptions", "error", err, "program_id", q.ProgramID)
		return nil, errors.NewInternalError(MsgStatsFailed)
	}

	return uc.buildEntries(ctx, subs, map[string]string{prog.ID(): prog.Title()})
}

func (uc *ListProgramSubscribersUseCase) buildEntries(ctx context.Context, subs []*subscription.Subscription, titles map[string]string) ([]*SubscriberEntry, error) {
	userIDs := make([]string, 0, len(subs))
	seen := make(map[string]bool)
	for _, s := range subs {
		if !seen[s.UserID()] {
			seen[s.UserID()] = true
			userIDs = append(userIDs, s.UserID())
		}
	}

	names := make(map[string]*profile.Profile, len(userIDs))
	if len(userIDs) > 0 {
		profiles, err := uc.profileRepo.GetByIDs(ctx, userIDs)
		if err != nil {
			uc.logger.Errorw("failed to load subscriber profiles", "error", err)
			return nil, errors.NewInternalError(MsgStatsFailed)
		}
		for _, p := range profiles {
			names[p.ID()] = p
		}
	}

	entries := make([]*SubscriberEntry, 0, len(subs))
	for _, s := range subs {
		entry := &SubscriberEntry{
			SubscriptionID: s.ID(),
			UserID:         s.UserID(),
			ProgramID:      s.ProgramID(),
			ProgramTitle:   titles[s.ProgramID()],
			Status:         s.Status().String(),
			SubscribedAt:   s.CreatedAt(),
			PeriodEnd:      s.CurrentPeriodEnd(),
		}
		if p := names[s.UserID()]; p != nil {
			entry.UserName = p.DisplayName()
			entry.Email = p.Email()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
