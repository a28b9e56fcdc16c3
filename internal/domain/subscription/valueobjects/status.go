package valueobjects

import "fmt"

// SubscriptionStatus represents the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	StatusActive   SubscriptionStatus = "active"
	StatusCanceled SubscriptionStatus = "canceled"
	StatusPastDue  SubscriptionStatus = "past_due"
	StatusInactive SubscriptionStatus = "inactive"
)

var validStatuses = map[SubscriptionStatus]bool{
	StatusActive:   true,
	StatusCanceled: true,
	StatusPastDue:  true,
	StatusInactive: true,
}

// validTransitions defines allowed status transitions.
var validTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	StatusActive:   {StatusCanceled, StatusPastDue, StatusInactive},
	StatusPastDue:  {StatusActive, StatusCanceled, StatusInactive},
	StatusCanceled: {},
	StatusInactive: {},
}

// NewSubscriptionStatus creates a SubscriptionStatus from a string.
func NewSubscriptionStatus(s string) (SubscriptionStatus, error) {
	status := SubscriptionStatus(s)
	if !validStatuses[status] {
		return "", fmt.Errorf("invalid subscription status: %s", s)
	}
	return status, nil
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

// IsActive returns true if the subscription grants program access.
func (s SubscriptionStatus) IsActive() bool {
	return s == StatusActive
}

// IsFinal returns true if no further transitions are allowed.
func (s SubscriptionStatus) IsFinal() bool {
	return len(validTransitions[s]) == 0
}

// CanTransitionTo checks whether the transition is allowed.
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
