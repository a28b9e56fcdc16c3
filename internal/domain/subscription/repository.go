package subscription

import "context"

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, subscriptionID string) (*Subscription, error)
	ListByUserID(ctx context.Context, userID string) ([]*Subscription, error)
	ListByProgramID(ctx context.Context, programID string) ([]*Subscription, error)
	ListActiveByProgramIDs(ctx context.Context, programIDs []string) ([]*Subscription, error)
	// ExistsActive reports whether the user already holds an active
	// subscription for the program.
	ExistsActive(ctx context.Context, userID, programID string) (bool, error)
	CountActiveByProgramIDs(ctx context.Context, programIDs []string) (int64, error)
}
