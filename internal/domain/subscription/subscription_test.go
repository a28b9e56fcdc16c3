package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/coachfit-inc/coachfit/internal/domain/subscription/valueobjects"
	"github.com/coachfit-inc/coachfit/internal/shared/id"
)

func TestNewFreeSubscription(t *testing.T) {
	s, err := NewFreeSubscription("user-1", "program-1")
	require.NoError(t, err)

	assert.True(t, id.IsUUID(s.ID()))
	assert.Equal(t, "user-1", s.UserID())
	assert.Equal(t, "program-1", s.ProgramID())
	assert.Equal(t, vo.StatusActive, s.Status())
	assert.Equal(t, PaymentMethodFree, s.PaymentMethod())
	assert.Equal(t, int64(0), s.PaymentAmount())
	assert.Nil(t, s.PaymentOrderID())
	assert.Nil(t, s.CurrentPeriodEnd(), "free subscriptions have no period end")
}

func TestNewFreeSubscription_InvalidInput(t *testing.T) {
	_, err := NewFreeSubscription("", "program-1")
	require.Error(t, err)

	_, err = NewFreeSubscription("user-1", "")
	require.Error(t, err)
}

func TestNewPaidSubscription(t *testing.T) {
	periodEnd := time.Now().UTC().Add(30 * 24 * time.Hour)

	s, err := NewPaidSubscription("user-1", "program-1", 42, "card", 19900, periodEnd)
	require.NoError(t, err)

	assert.True(t, s.IsActive())
	require.NotNil(t, s.PaymentOrderID())
	assert.Equal(t, uint(42), *s.PaymentOrderID())
	assert.Equal(t, "card", s.PaymentMethod())
	assert.Equal(t, int64(19900), s.PaymentAmount())
	require.NotNil(t, s.CurrentPeriodEnd())
	assert.True(t, s.CurrentPeriodEnd().Equal(periodEnd))
}

func TestNewPaidSubscription_MethodFallback(t *testing.T) {
	s, err := NewPaidSubscription("user-1", "program-1", 42, "", 19900, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodCard, s.PaymentMethod())
}

func TestNewPaidSubscription_InvalidInput(t *testing.T) {
	periodEnd := time.Now().UTC()
	tests := []struct {
		name      string
		userID    string
		programID string
		orderID   uint
		amount    int64
	}{
		{name: "missing user", userID: "", programID: "p", orderID: 1, amount: 100},
		{name: "missing program", userID: "u", programID: "", orderID: 1, amount: 100},
		{name: "missing order", userID: "u", programID: "p", orderID: 0, amount: 100},
		{name: "zero amount", userID: "u", programID: "p", orderID: 1, amount: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPaidSubscription(tc.userID, tc.programID, tc.orderID, "card", tc.amount, periodEnd)
			require.Error(t, err)
		})
	}
}

func TestSubscription_StatusTransitions(t *testing.T) {
	t.Run("cancel active", func(t *testing.T) {
		s, _ := NewFreeSubscription("user-1", "program-1")
		require.NoError(t, s.Cancel())
		assert.Equal(t, vo.StatusCanceled, s.Status())
		assert.False(t, s.IsActive())
	})

	t.Run("cancel twice fails", func(t *testing.T) {
		s, _ := NewFreeSubscription("user-1", "program-1")
		require.NoError(t, s.Cancel())
		require.Error(t, s.Cancel())
	})

	t.Run("past due can reactivate path", func(t *testing.T) {
		s, _ := NewFreeSubscription("user-1", "program-1")
		require.NoError(t, s.MarkPastDue())
		assert.Equal(t, vo.StatusPastDue, s.Status())
		require.NoError(t, s.Deactivate())
		assert.Equal(t, vo.StatusInactive, s.Status())
	})

	t.Run("inactive is final", func(t *testing.T) {
		s, _ := NewFreeSubscription("user-1", "program-1")
		require.NoError(t, s.Deactivate())
		require.Error(t, s.Cancel())
		require.Error(t, s.MarkPastDue())
	})
}

func TestSubscriptionStatus_Validation(t *testing.T) {
	for _, valid := range []string{"active", "canceled", "past_due", "inactive"} {
		_, err := vo.NewSubscriptionStatus(valid)
		assert.NoError(t, err, valid)
	}

	_, err := vo.NewSubscriptionStatus("paused")
	assert.Error(t, err)
}
