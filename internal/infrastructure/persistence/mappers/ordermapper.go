package mappers

import (
	"fmt"

	"github.com/coachfit-inc/coachfit/internal/domain/order"
	vo "github.com/coachfit-inc/coachfit/internal/domain/order/valueobjects"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/persistence/models"
)

func PaymentOrderToModel(o *order.PaymentOrder) *models.PaymentOrderModel {
	return &models.PaymentOrderModel{
		ID:         o.ID(),
		OrderID:    o.OrderID(),
		UserID:     o.UserID(),
		ProgramID:  o.ProgramID(),
		Amount:     o.Amount(),
		Status:     o.Status().String(),
		PaymentKey: o.PaymentKey(),
		ApprovedAt: o.ApprovedAt(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

func PaymentOrderToDomain(model *models.PaymentOrderModel) (*order.PaymentOrder, error) {
	status, err := vo.NewOrderStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid order status for order %s: %w", model.OrderID, err)
	}

	return order.ReconstructPaymentOrder(
		model.ID,
		model.OrderID,
		model.UserID,
		model.ProgramID,
		model.Amount,
		status,
		model.PaymentKey,
		model.ApprovedAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
