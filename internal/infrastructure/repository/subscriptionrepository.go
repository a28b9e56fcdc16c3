package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/coachfit-inc/coachfit/internal/domain/subscription"
	vo "github.com/coachfit-inc/coachfit/internal/domain/subscription/valueobjects"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/persistence/mappers"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/persistence/models"
	"github.com/coachfit-inc/coachfit/internal/shared/db"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

var _ subscription.SubscriptionRepository = (*SubscriptionRepository)(nil)

func (r *SubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	model := mappers.SubscriptionToModel(s)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	model := mappers.SubscriptionToModel(s)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":             model.Status,
			"active_key":         model.ActiveKey,
			"current_period_end": model.CurrentPeriodEnd,
			"updated_at":         model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	return nil
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, subscriptionID string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", subscriptionID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return mappers.SubscriptionToDomain(&model)
}

func (r *SubscriptionRepository) ListByUserID(ctx context.Context, userID string) ([]*subscription.Subscription, error) {
	var modelList []models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *SubscriptionRepository) ListByProgramID(ctx context.Context, programID string) ([]*subscription.Subscription, error) {
	var modelList []models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("program_id = ?", programID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list program subscriptions: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *SubscriptionRepository) ListActiveByProgramIDs(ctx context.Context, programIDs []string) ([]*subscription.Subscription, error) {
	if len(programIDs) == 0 {
		return []*subscription.Subscription{}, nil
	}

	var modelList []models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("program_id IN ? AND status = ?", programIDs, vo.StatusActive.String()).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list active subscriptions: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *SubscriptionRepository) ExistsActive(ctx context.Context, userID, programID string) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("user_id = ? AND program_id = ? AND status = ?", userID, programID, vo.StatusActive.String()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check active subscription: %w", err)
	}

	return count > 0, nil
}

func (r *SubscriptionRepository) CountActiveByProgramIDs(ctx context.Context, programIDs []string) (int64, error) {
	if len(programIDs) == 0 {
		return 0, nil
	}

	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("program_id IN ? AND status = ?", programIDs, vo.StatusActive.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active subscriptions: %w", err)
	}

	return count, nil
}

func (r *SubscriptionRepository) toDomainList(modelList []models.SubscriptionModel) ([]*subscription.Subscription, error) {
	subs := make([]*subscription.Subscription, 0, len(modelList))
	for i := range modelList {
		s, err := mappers.SubscriptionToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, nil
}
