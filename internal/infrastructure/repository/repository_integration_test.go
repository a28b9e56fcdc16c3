package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/coachfit-inc/coachfit/internal/domain/order"
	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/domain/subscription"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/persistence/models"
	"github.com/coachfit-inc/coachfit/internal/shared/db"
	apperrors "github.com/coachfit-inc/coachfit/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = conn.AutoMigrate(
		&models.ProfileModel{},
		&models.ProgramModel{},
		&models.PaymentOrderModel{},
		&models.SubscriptionModel{},
	)
	require.NoError(t, err)

	return conn
}

func createTestOrder(t *testing.T, userID, programID string, amount int64) *order.PaymentOrder {
	o, err := order.NewPaymentOrder(userID, programID, amount)
	require.NoError(t, err)
	return o
}

func TestPaymentOrderRepository_Create(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewPaymentOrderRepository(conn)
	ctx := context.Background()

	t.Run("create writes back generated id", func(t *testing.T) {
		o := createTestOrder(t, "user-1", "program-1", 19900)

		err := repo.Create(ctx, o)
		assert.NoError(t, err)
		assert.NotZero(t, o.ID())
	})

	t.Run("duplicate order id should fail", func(t *testing.T) {
		o1 := createTestOrder(t, "user-2", "program-1", 19900)
		err := repo.Create(ctx, o1)
		require.NoError(t, err)

		o2 := order.ReconstructPaymentOrder(
			0, o1.OrderID(), "user-3", "program-1", 19900,
			o1.Status(), nil, nil, time.Now().UTC(), time.Now().UTC(),
		)

		err = repo.Create(ctx, o2)
		assert.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))
	})
}

func TestPaymentOrderRepository_GetByOrderID(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewPaymentOrderRepository(conn)
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		o := createTestOrder(t, "user-1", "program-1", 29900)
		require.NoError(t, repo.Create(ctx, o))

		found, err := repo.GetByOrderID(ctx, o.OrderID())
		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, o.OrderID(), found.OrderID())
		assert.Equal(t, "user-1", found.UserID())
		assert.Equal(t, int64(29900), found.Amount())
		assert.True(t, found.Status().IsReady())
		require.NotNil(t, found.PaymentKey())
		assert.Equal(t, *o.PaymentKey(), *found.PaymentKey())
	})

	t.Run("missing order returns nil without error", func(t *testing.T) {
		found, err := repo.GetByOrderID(ctx, "no-such-order")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestPaymentOrderRepository_GetByPaymentKey(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewPaymentOrderRepository(conn)
	ctx := context.Background()

	o := createTestOrder(t, "user-1", "program-1", 19900)
	require.NoError(t, repo.Create(ctx, o))

	found, err := repo.GetByPaymentKey(ctx, *o.PaymentKey())
	assert.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, o.OrderID(), found.OrderID())

	missing, err := repo.GetByPaymentKey(ctx, "payment_unknown_0")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPaymentOrderRepository_ListByUserID(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewPaymentOrderRepository(conn)
	ctx := context.Background()

	for _, programID := range []string{"program-1", "program-2"} {
		o := createTestOrder(t, "user-1", programID, 19900)
		require.NoError(t, repo.Create(ctx, o))
	}
	other := createTestOrder(t, "user-2", "program-1", 19900)
	require.NoError(t, repo.Create(ctx, other))

	orders, err := repo.ListByUserID(ctx, "user-1")
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, "user-1", o.UserID())
	}
}

func TestPaymentOrderRepository_CompleteIfReady(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewPaymentOrderRepository(conn)
	ctx := context.Background()

	t.Run("first completion wins, second loses", func(t *testing.T) {
		o := createTestOrder(t, "user-1", "program-1", 19900)
		require.NoError(t, repo.Create(ctx, o))

		won, err := repo.CompleteIfReady(ctx, o)
		assert.NoError(t, err)
		assert.True(t, won)

		found, err := repo.GetByOrderID(ctx, o.OrderID())
		require.NoError(t, err)
		assert.True(t, found.Status().IsCompleted())
		assert.NotNil(t, found.ApprovedAt())

		// Replay of the same confirmation must not win again.
		won, err = repo.CompleteIfReady(ctx, o)
		assert.NoError(t, err)
		assert.False(t, won)
	})

	t.Run("unknown order never wins", func(t *testing.T) {
		o := createTestOrder(t, "user-9", "program-9", 19900)

		won, err := repo.CompleteIfReady(ctx, o)
		assert.NoError(t, err)
		assert.False(t, won)
	})
}

func TestSubscriptionRepository_ActiveUniqueness(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewSubscriptionRepository(conn)
	ctx := context.Background()

	t.Run("second active subscription for same user and program is rejected", func(t *testing.T) {
		s1, err := subscription.NewFreeSubscription("user-1", "program-1")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, s1))

		s2, err := subscription.NewFreeSubscription("user-1", "program-1")
		require.NoError(t, err)

		err = repo.Create(ctx, s2)
		assert.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))
	})

	t.Run("canceling frees the slot for a new active subscription", func(t *testing.T) {
		s1, err := subscription.NewFreeSubscription("user-2", "program-1")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, s1))

		require.NoError(t, s1.Cancel())
		require.NoError(t, repo.Update(ctx, s1))

		s2, err := subscription.NewFreeSubscription("user-2", "program-1")
		require.NoError(t, err)
		assert.NoError(t, repo.Create(ctx, s2))

		exists, err := repo.ExistsActive(ctx, "user-2", "program-1")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("same user may hold active subscriptions to different programs", func(t *testing.T) {
		s1, err := subscription.NewFreeSubscription("user-3", "program-1")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, s1))

		s2, err := subscription.NewFreeSubscription("user-3", "program-2")
		require.NoError(t, err)
		assert.NoError(t, repo.Create(ctx, s2))
	})
}

func TestSubscriptionRepository_Queries(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewSubscriptionRepository(conn)
	ctx := context.Background()

	periodEnd := time.Now().UTC().Add(30 * 24 * time.Hour)

	paid, err := subscription.NewPaidSubscription("user-1", "program-1", 7, "card", 19900, periodEnd)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, paid))

	free, err := subscription.NewFreeSubscription("user-1", "program-2")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, free))

	canceled, err := subscription.NewFreeSubscription("user-2", "program-1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, canceled))
	require.NoError(t, canceled.Cancel())
	require.NoError(t, repo.Update(ctx, canceled))

	t.Run("get by id round trip", func(t *testing.T) {
		found, err := repo.GetByID(ctx, paid.ID())
		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "user-1", found.UserID())
		assert.Equal(t, "card", found.PaymentMethod())
		assert.Equal(t, int64(19900), found.PaymentAmount())
		require.NotNil(t, found.PaymentOrderID())
		assert.Equal(t, uint(7), *found.PaymentOrderID())
		require.NotNil(t, found.CurrentPeriodEnd())
		assert.WithinDuration(t, periodEnd, *found.CurrentPeriodEnd(), time.Second)
	})

	t.Run("missing id returns nil", func(t *testing.T) {
		found, err := repo.GetByID(ctx, "no-such-subscription")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("list by user", func(t *testing.T) {
		subs, err := repo.ListByUserID(ctx, "user-1")
		assert.NoError(t, err)
		assert.Len(t, subs, 2)
	})

	t.Run("list active by program ids skips canceled rows", func(t *testing.T) {
		subs, err := repo.ListActiveByProgramIDs(ctx, []string{"program-1", "program-2"})
		assert.NoError(t, err)
		assert.Len(t, subs, 2)
		for _, s := range subs {
			assert.True(t, s.IsActive())
		}

		subs, err = repo.ListActiveByProgramIDs(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("exists active", func(t *testing.T) {
		exists, err := repo.ExistsActive(ctx, "user-1", "program-1")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsActive(ctx, "user-2", "program-1")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("count active by program ids", func(t *testing.T) {
		count, err := repo.CountActiveByProgramIDs(ctx, []string{"program-1", "program-2"})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)

		count, err = repo.CountActiveByProgramIDs(ctx, []string{})
		assert.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestProgramRepository_RoundTrip(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewProgramRepository(conn)
	ctx := context.Background()

	p, err := program.NewProgram("coach-1", "4주 러닝 입문", "# 커리큘럼", 19900)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))

	t.Run("drafts are excluded from the public list", func(t *testing.T) {
		programs, err := repo.ListActive(ctx)
		assert.NoError(t, err)
		assert.Empty(t, programs)
	})

	t.Run("publish and pause persist through update", func(t *testing.T) {
		p.Publish()
		p.PauseSale("시즌 종료")
		require.NoError(t, repo.Update(ctx, p))

		found, err := repo.GetByID(ctx, p.ID())
		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.IsActive())
		assert.False(t, found.OnSale())
		require.NotNil(t, found.SaleStopReason())
		assert.Equal(t, "시즌 종료", *found.SaleStopReason())

		programs, err := repo.ListActive(ctx)
		assert.NoError(t, err)
		assert.Len(t, programs, 1)
	})

	t.Run("list by coach", func(t *testing.T) {
		programs, err := repo.ListByCoachID(ctx, "coach-1")
		assert.NoError(t, err)
		assert.Len(t, programs, 1)

		programs, err = repo.ListByCoachID(ctx, "coach-2")
		assert.NoError(t, err)
		assert.Empty(t, programs)
	})

	t.Run("missing program returns nil", func(t *testing.T) {
		found, err := repo.GetByID(ctx, "no-such-program")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

// Exercises the full paid-approval write path the way the approve usecase
// drives it: complete the order and insert the subscription in one
// transaction, rolling both back on failure.
func TestApprovalWritePath_Transactional(t *testing.T) {
	conn := setupTestDB(t)
	orderRepo := NewPaymentOrderRepository(conn)
	subRepo := NewSubscriptionRepository(conn)
	txManager := db.NewTransactionManager(conn)
	ctx := context.Background()

	t.Run("commit completes order and activates subscription", func(t *testing.T) {
		o := createTestOrder(t, "user-1", "program-1", 19900)
		require.NoError(t, orderRepo.Create(ctx, o))

		err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			won, err := orderRepo.CompleteIfReady(txCtx, o)
			if err != nil {
				return err
			}
			require.True(t, won)

			s, err := subscription.NewPaidSubscription(
				"user-1", "program-1", o.ID(), "card", 19900,
				time.Now().UTC().Add(30*24*time.Hour),
			)
			if err != nil {
				return err
			}
			return subRepo.Create(txCtx, s)
		})
		assert.NoError(t, err)

		found, err := orderRepo.GetByOrderID(ctx, o.OrderID())
		require.NoError(t, err)
		assert.True(t, found.Status().IsCompleted())

		exists, err := subRepo.ExistsActive(ctx, "user-1", "program-1")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("rollback leaves order ready and no subscription", func(t *testing.T) {
		o := createTestOrder(t, "user-2", "program-2", 19900)
		require.NoError(t, orderRepo.Create(ctx, o))

		err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			won, err := orderRepo.CompleteIfReady(txCtx, o)
			if err != nil {
				return err
			}
			require.True(t, won)
			return assert.AnError
		})
		assert.Error(t, err)

		found, err := orderRepo.GetByOrderID(ctx, o.OrderID())
		require.NoError(t, err)
		assert.True(t, found.Status().IsReady())

		exists, err := subRepo.ExistsActive(ctx, "user-2", "program-2")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate active subscription aborts the transaction", func(t *testing.T) {
		existing, err := subscription.NewFreeSubscription("user-3", "program-3")
		require.NoError(t, err)
		require.NoError(t, subRepo.Create(ctx, existing))

		o := createTestOrder(t, "user-3", "program-3", 19900)
		require.NoError(t, orderRepo.Create(ctx, o))

		err = txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			won, err := orderRepo.CompleteIfReady(txCtx, o)
			if err != nil {
				return err
			}
			require.True(t, won)

			s, err := subscription.NewPaidSubscription(
				"user-3", "program-3", o.ID(), "card", 19900,
				time.Now().UTC().Add(30*24*time.Hour),
			)
			if err != nil {
				return err
			}
			return subRepo.Create(txCtx, s)
		})
		assert.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))

		// The order must not stay completed when the subscription insert failed.
		found, err := orderRepo.GetByOrderID(ctx, o.OrderID())
		require.NoError(t, err)
		assert.True(t, found.Status().IsReady())
	})
}
