package valueobjects

import "fmt"

// OrderStatus represents the lifecycle state of a payment order.
type OrderStatus string

const (
	// OrderStatusReady means the order was prepared and is awaiting gateway
	// confirmation.
	OrderStatusReady OrderStatus = "ready"
	// OrderStatusCompleted means the gateway confirmed the payment and the
	// subscription was activated.
	OrderStatusCompleted OrderStatus = "completed"
)

var validOrderStatuses = map[OrderStatus]bool{
	OrderStatusReady:     true,
	OrderStatusCompleted: true,
}

// NewOrderStatus creates an OrderStatus from a string, rejecting unknown
// values so stale rows surface at the mapping boundary.
func NewOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !validOrderStatuses[status] {
		return "", fmt.Errorf("invalid order status: %s", s)
	}
	return status, nil
}

func (s OrderStatus) String() string {
	return string(s)
}

// IsReady returns true if the order is awaiting confirmation.
func (s OrderStatus) IsReady() bool {
	return s == OrderStatusReady
}

// IsCompleted returns true if the order reached its terminal state.
func (s OrderStatus) IsCompleted() bool {
	return s == OrderStatusCompleted
}

// CanTransitionTo checks whether the status transition is allowed. The only
// legal transition is ready -> completed; completed is terminal.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	return s == OrderStatusReady && target == OrderStatusCompleted
}
