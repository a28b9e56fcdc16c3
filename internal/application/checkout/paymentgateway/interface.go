// Package paymentgateway defines the payment gateway port used by the
// checkout use cases.
package paymentgateway

import "context"

// PaymentGateway confirms a payment that the checkout widget already
// collected. Confirmation is the only gateway call the checkout flow makes.
type PaymentGateway interface {
	// Confirm asks the gateway to capture the payment identified by
	// paymentKey. The gateway re-validates orderID and amount on its side.
	Confirm(ctx context.Context, req ConfirmRequest) (*ConfirmResponse, error)
}

// ConfirmRequest identifies the payment to capture.
type ConfirmRequest struct {
	PaymentKey string
	OrderID    string
	Amount     int64 // whole KRW
}

// ConfirmResponse carries the fields the checkout flow consumes. Status must
// equal StatusDone for the payment to count as captured.
type ConfirmResponse struct {
	Status  string
	Method  string
	OrderID string
}

// StatusDone is the gateway's terminal success status.
const StatusDone = "DONE"

// IsDone reports whether the gateway captured the payment.
func (r *ConfirmResponse) IsDone() bool {
	return r.Status == StatusDone
}
