package profile

import "context"

type ProfileRepository interface {
	GetByID(ctx context.Context, profileID string) (*Profile, error)
	GetByIDs(ctx context.Context, profileIDs []string) ([]*Profile, error)
}
