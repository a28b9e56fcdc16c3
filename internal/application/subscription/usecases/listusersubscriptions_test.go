package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coachfit-inc/coachfit/internal/domain/profile"
	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/domain/subscription"
)

func coachProfile(name string) *profile.Profile {
	now := time.Now().UTC()
	return profile.ReconstructProfile("coach-1", "coach@example.com", "김코치", name, profile.RoleCoach, true, now, now)
}

func TestListUserSubscriptions_EmptyUser(t *testing.T) {
	uc := NewListUserSubscriptionsUseCase(new(mockSubscriptionRepo), new(mockProgramRepo), new(mockProfileRepo), newNoopLogger())

	summaries, err := uc.Execute(context.Background(), ListUserSubscriptionsQuery{UserID: ""})

	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestListUserSubscriptions_JoinsProgramAndCoach(t *testing.T) {
	prog, err := program.NewProgram("coach-1", "8주 코칭", "", 49000)
	require.NoError(t, err)

	sub, err := subscription.NewPaidSubscription("user-1", prog.ID(), 42, "card", 49000, time.Now().UTC().Add(30*24*time.Hour))
	require.NoError(t, err)
	freeSub, err := subscription.NewFreeSubscription("user-1", prog.ID())
	require.NoError(t, err)

	subRepo := new(mockSubscriptionRepo)
	subRepo.On("ListByUserID", mock.Anything, "user-1").Return(
		[]*subscription.Subscription{sub, freeSub}, nil)
	programRepo := new(mockProgramRepo)
	programRepo.On("GetByID", mock.Anything, prog.ID()).Return(prog, nil).Once()
	profileRepo := new(mockProfileRepo)
	profileRepo.On("GetByID", mock.Anything, "coach-1").Return(coachProfile("코치 강"), nil).Once()

	uc := NewListUserSubscriptionsUseCase(subRepo, programRepo, profileRepo, newNoopLogger())
	summaries, err := uc.Execute(context.Background(), ListUserSubscriptionsQuery{UserID: "user-1"})

	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, sub.ID(), summaries[0].SubscriptionID)
	assert.Equal(t, "8주 코칭", summaries[0].ProgramTitle)
	assert.Equal(t, "코치 강", summaries[0].CoachName)
	assert.Equal(t, "card", summaries[0].PaymentMethod)
	require.NotNil(t, summaries[0].CurrentPeriodEnd)

	assert.Equal(t, "free", summaries[1].PaymentMethod)
	assert.Nil(t, summaries[1].CurrentPeriodEnd)

	// Program and coach fetched once despite two subscriptions.
	programRepo.AssertNumberOfCalls(t, "GetByID", 1)
	profileRepo.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestHasActiveSubscription(t *testing.T) {
	t.Run("anonymous is false without repo call", func(t *testing.T) {
		subRepo := new(mockSubscriptionRepo)
		uc := NewHasActiveSubscriptionUseCase(subRepo, newNoopLogger())

		ok, err := uc.Execute(context.Background(), HasActiveSubscriptionQuery{UserID: "", ProgramID: "p-1"})

		require.NoError(t, err)
		assert.False(t, ok)
		subRepo.AssertNotCalled(t, "ExistsActive", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delegates to repository", func(t *testing.T) {
		subRepo := new(mockSubscriptionRepo)
		subRepo.On("ExistsActive", mock.Anything, "user-1", "p-1").Return(true, nil)
		uc := NewHasActiveSubscriptionUseCase(subRepo, newNoopLogger())

		ok, err := uc.Execute(context.Background(), HasActiveSubscriptionQuery{UserID: "user-1", ProgramID: "p-1"})

		require.NoError(t, err)
		assert.True(t, ok)
	})
}
