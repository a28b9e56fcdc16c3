package mappers

import (
	"fmt"

	"github.com/coachfit-inc/coachfit/internal/domain/subscription"
	vo "github.com/coachfit-inc/coachfit/internal/domain/subscription/valueobjects"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/persistence/models"
)

func SubscriptionToModel(s *subscription.Subscription) *models.SubscriptionModel {
	model := &models.SubscriptionModel{
		ID:               s.ID(),
		UserID:           s.UserID(),
		ProgramID:        s.ProgramID(),
		Status:           s.Status().String(),
		PaymentOrderID:   s.PaymentOrderID(),
		PaymentMethod:    s.PaymentMethod(),
		PaymentAmount:    s.PaymentAmount(),
		CurrentPeriodEnd: s.CurrentPeriodEnd(),
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}

	// ActiveKey mirrors the status so the unique index only sees active rows.
	if s.Status().IsActive() {
		key := models.ActiveKey
		model.ActiveKey = &key
	}

	return model
}

func SubscriptionToDomain(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	status, err := vo.NewSubscriptionStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid subscription status for subscription %s: %w", model.ID, err)
	}

	return subscription.ReconstructSubscription(
		model.ID,
		model.UserID,
		model.ProgramID,
		status,
		model.PaymentOrderID,
		model.PaymentMethod,
		model.PaymentAmount,
		model.CurrentPeriodEnd,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
