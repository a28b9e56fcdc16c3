package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/coachfit-inc/coachfit/internal/domain/order"
	vo "github.com/coachfit-inc/coachfit/internal/domain/order/valueobjects"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/persistence/mappers"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/persistence/models"
	"github.com/coachfit-inc/coachfit/internal/shared/biztime"
	"github.com/coachfit-inc/coachfit/internal/shared/db"
)

type PaymentOrderRepository struct {
	db *gorm.DB
}

func NewPaymentOrderRepository(db *gorm.DB) *PaymentOrderRepository {
	return &PaymentOrderRepository{db: db}
}

var _ order.PaymentOrderRepository = (*PaymentOrderRepository)(nil)

func (r *PaymentOrderRepository) Create(ctx context.Context, o *order.PaymentOrder) error {
	model := mappers.PaymentOrderToModel(o)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment order: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	o.SetID(model.ID)

	return nil
}

func (r *PaymentOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*order.PaymentOrder, error) {
	var model models.PaymentOrderModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("order_id = ?", orderID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment order by order_id: %w", err)
	}

	return mappers.PaymentOrderToDomain(&model)
}

func (r *PaymentOrderRepository) GetByPaymentKey(ctx context.Context, paymentKey string) (*order.PaymentOrder, error) {
	var model models.PaymentOrderModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("payment_key = ?", paymentKey).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment order by payment_key: %w", err)
	}

	return mappers.PaymentOrderToDomain(&model)
}

func (r *PaymentOrderRepository) ListByUserID(ctx context.Context, userID string) ([]*order.PaymentOrder, error) {
	var modelList []models.PaymentOrderModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment orders: %w", err)
	}

	orders := make([]*order.PaymentOrder, 0, len(modelList))
	for i := range modelList {
		o, err := mappers.PaymentOrderToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// CompleteIfReady flips the order to completed only while it is still ready.
// RowsAffected tells whether this call won; zero means another request
// already completed the order.
func (r *PaymentOrderRepository) CompleteIfReady(ctx context.Context, o *order.PaymentOrder) (bool, error) {
	now := biztime.NowUTC()

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentOrderModel{}).
		Where("order_id = ? AND status = ?", o.OrderID(), vo.OrderStatusReady.String()).
		Updates(map[string]interface{}{
			"status":      vo.OrderStatusCompleted.String(),
			"approved_at": now,
			"updated_at":  now,
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to complete payment order: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}
