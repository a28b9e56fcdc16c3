// Package order contains the payment order aggregate. A payment order is
// created before the buyer is handed to the payment gateway and is completed
// exactly once after the gateway confirms the charge.
package order

import (
	"fmt"
	"time"

	vo "github.com/coachfit-inc/coachfit/internal/domain/order/valueobjects"
	"github.com/coachfit-inc/coachfit/internal/shared/biztime"
	"github.com/coachfit-inc/coachfit/internal/shared/id"
)

type PaymentOrder struct {
	id        uint
	orderID   string
	userID    string
	programID string
	amount    int64
	status    vo.OrderStatus

	paymentKey *string
	approvedAt *time.Time

	createdAt time.Time
	updatedAt time.Time
}

// NewPaymentOrder prepares an order for a paid program. The amount is the
// program's stored price in whole KRW; the gateway-facing identifiers are
// generated here so the caller never invents them.
func NewPaymentOrder(userID, programID string, amount int64) (*PaymentOrder, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if programID == "" {
		return nil, fmt.Errorf("program ID is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	orderID := id.NewOrderID()
	paymentKey := id.NewPaymentKey(orderID)
	now := biztime.NowUTC()

	return &PaymentOrder{
		orderID:    orderID,
		userID:     userID,
		programID:  programID,
		amount:     amount,
		status:     vo.OrderStatusReady,
		paymentKey: &paymentKey,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ValidateClientAmount checks the amount asserted by the checkout widget
// against the amount stored at preparation time.
func (o *PaymentOrder) ValidateClientAmount(amount int64) error {
	if o.amount != amount {
		return fmt.Errorf("amount mismatch: expected %d, got %d", o.amount, amount)
	}
	return nil
}

// IsOwnedBy reports whether the given user prepared this order.
func (o *PaymentOrder) IsOwnedBy(userID string) bool {
	return o.userID == userID
}

// Complete transitions the order to its terminal state. Completing an already
// completed order is an error; the caller maps it to a replay response.
func (o *PaymentOrder) Complete() error {
	if !o.status.CanTransitionTo(vo.OrderStatusCompleted) {
		return fmt.Errorf("cannot complete order with status %s", o.status)
	}

	now := biztime.NowUTC()
	o.status = vo.OrderStatusCompleted
	o.approvedAt = &now
	o.updatedAt = now

	return nil
}

func (o *PaymentOrder) ID() uint {
	return o.id
}

func (o *PaymentOrder) OrderID() string {
	return o.orderID
}

func (o *PaymentOrder) UserID() string {
	return o.userID
}

func (o *PaymentOrder) ProgramID() string {
	return o.programID
}

func (o *PaymentOrder) Amount() int64 {
	return o.amount
}

func (o *PaymentOrder) Status() vo.OrderStatus {
	return o.status
}

func (o *PaymentOrder) PaymentKey() *string {
	return o.paymentKey
}

func (o *PaymentOrder) ApprovedAt() *time.Time {
	return o.approvedAt
}

func (o *PaymentOrder) CreatedAt() time.Time {
	return o.createdAt
}

func (o *PaymentOrder) UpdatedAt() time.Time {
	return o.updatedAt
}

// SetID sets the order ID after persistence (used by repository after Create)
func (o *PaymentOrder) SetID(id uint) {
	o.id = id
}

func ReconstructPaymentOrder(
	dbID uint,
	orderID string,
	userID, programID string,
	amount int64,
	status vo.OrderStatus,
	paymentKey *string,
	approvedAt *time.Time,
	createdAt, updatedAt time.Time,
) *PaymentOrder {
	return &PaymentOrder{
		id:         dbID,
		orderID:    orderID,
		userID:     userID,
		programID:  programID,
		amount:     amount,
		status:     status,
		paymentKey: paymentKey,
		approvedAt: approvedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}
