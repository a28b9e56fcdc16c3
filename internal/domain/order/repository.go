package order

import "context"

type PaymentOrderRepository interface {
	Create(ctx context.Context, order *PaymentOrder) error
	GetByOrderID(ctx context.Context, orderID string) (*PaymentOrder, error)
	GetByPaymentKey(ctx context.Context, paymentKey string) (*PaymentOrder, error)
	ListByUserID(ctx context.Context, userID string) ([]*PaymentOrder, error)
	// CompleteIfReady transitions the order from ready to completed with a
	// single conditional update and reports whether this call performed the
	// transition. A false return with no error means another request already
	// completed the order.
	CompleteIfReady(ctx context.Context, order *PaymentOrder) (bool, error)
}
