// Package subscription contains the subscription aggregate linking a user to
// a program they enrolled in, either through a paid checkout or a free
// enrollment.
package subscription

import (
	"fmt"
	"time"

	vo "github.com/coachfit-inc/coachfit/internal/domain/subscription/valueobjects"
	"github.com/coachfit-inc/coachfit/internal/shared/biztime"
	"github.com/coachfit-inc/coachfit/internal/shared/id"
)

const (
	// PaymentMethodFree marks enrollments that never touched the gateway.
	PaymentMethodFree = "free"
	// PaymentMethodCard is the fallback when the gateway omits the method.
	PaymentMethodCard = "card"
)

type Subscription struct {
	id        string
	userID    string
	programID string
	status    vo.SubscriptionStatus

	paymentOrderID *uint
	paymentMethod  string
	paymentAmount  int64

	currentPeriodEnd *time.Time

	createdAt time.Time
	updatedAt time.Time
}

// NewFreeSubscription activates a zero-price enrollment. Free subscriptions
// have no billing period end.
func NewFreeSubscription(userID, programID string) (*Subscription, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if programID == "" {
		return nil, fmt.Errorf("program ID is required")
	}

	now := biztime.NowUTC()
	return &Subscription{
		id:            id.NewUUID(),
		userID:        userID,
		programID:     programID,
		status:        vo.StatusActive,
		paymentMethod: PaymentMethodFree,
		paymentAmount: 0,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// NewPaidSubscription activates a subscription from a confirmed payment. The
// method comes from the gateway response; empty falls back to card.
func NewPaidSubscription(userID, programID string, paymentOrderID uint, method string, amount int64, periodEnd time.Time) (*Subscription, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if programID == "" {
		return nil, fmt.Errorf("program ID is required")
	}
	if paymentOrderID == 0 {
		return nil, fmt.Errorf("payment order ID is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if method == "" {
		method = PaymentMethodCard
	}

	now := biztime.NowUTC()
	return &Subscription{
		id:               id.NewUUID(),
		userID:           userID,
		programID:        programID,
		status:           vo.StatusActive,
		paymentOrderID:   &paymentOrderID,
		paymentMethod:    method,
		paymentAmount:    amount,
		currentPeriodEnd: &periodEnd,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// Cancel transitions the subscription to canceled.
func (s *Subscription) Cancel() error {
	return s.transitionTo(vo.StatusCanceled)
}

// MarkPastDue flags the subscription as unpaid past its period end.
func (s *Subscription) MarkPastDue() error {
	return s.transitionTo(vo.StatusPastDue)
}

// Deactivate ends the subscription without the cancellation semantics.
func (s *Subscription) Deactivate() error {
	return s.transitionTo(vo.StatusInactive)
}

func (s *Subscription) transitionTo(target vo.SubscriptionStatus) error {
	if !s.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition subscription from %s to %s", s.status, target)
	}
	s.status = target
	s.updatedAt = biztime.NowUTC()
	return nil
}

// IsActive reports whether the subscription currently grants access.
func (s *Subscription) IsActive() bool {
	return s.status.IsActive()
}

func (s *Subscription) ID() string {
	return s.id
}

func (s *Subscription) UserID() string {
	return s.userID
}

func (s *Subscription) ProgramID() string {
	return s.programID
}

func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}

func (s *Subscription) PaymentOrderID() *uint {
	return s.paymentOrderID
}

func (s *Subscription) PaymentMethod() string {
	return s.paymentMethod
}

func (s *Subscription) PaymentAmount() int64 {
	return s.paymentAmount
}

func (s *Subscription) CurrentPeriodEnd() *time.Time {
	return s.currentPeriodEnd
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

func ReconstructSubscription(
	subscriptionID, userID, programID string,
	status vo.SubscriptionStatus,
	paymentOrderID *uint,
	paymentMethod string,
	paymentAmount int64,
	currentPeriodEnd *time.Time,
	createdAt, updatedAt time.Time,
) *Subscription {
	return &Subscription{
		id:               subscriptionID,
		userID:           userID,
		programID:        programID,
		status:           status,
		paymentOrderID:   paymentOrderID,
		paymentMethod:    paymentMethod,
		paymentAmount:    paymentAmount,
		currentPeriodEnd: currentPeriodEnd,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}
