// Package profile contains the user profile read model. Profiles are owned by
// the identity provider; this service reads them for roles and display data.
package profile

import (
	"fmt"
	"time"
)

// Role discriminates the two account types.
type Role string

const (
	RoleCoach      Role = "coach"
	RoleSubscriber Role = "subscriber"
)

// NewRole parses a role string.
func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCoach, RoleSubscriber:
		return Role(s), nil
	default:
		return "", fmt.Errorf("invalid role: %s", s)
	}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsCoach() bool {
	return r == RoleCoach
}

type Profile struct {
	id          string
	email       string
	name        string
	displayName string
	role        Role

	onboardingCompleted bool

	createdAt time.Time
	updatedAt time.Time
}

func (p *Profile) ID() string {
	return p.id
}

func (p *Profile) Email() string {
	return p.email
}

func (p *Profile) Name() string {
	return p.name
}

// DisplayName returns the public-facing name, falling back to the account
// name when unset.
func (p *Profile) DisplayName() string {
	if p.displayName == "" {
		return p.name
	}
	return p.displayName
}

func (p *Profile) Role() Role {
	return p.role
}

func (p *Profile) IsCoach() bool {
	return p.role.IsCoach()
}

func (p *Profile) OnboardingCompleted() bool {
	return p.onboardingCompleted
}

func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}

func ReconstructProfile(
	profileID, email, name, displayName string,
	role Role,
	onboardingCompleted bool,
	createdAt, updatedAt time.Time,
) *Profile {
	return &Profile{
		id:                  profileID,
		email:               email,
		name:                name,
		displayName:         displayName,
		role:                role,
		onboardingCompleted: onboardingCompleted,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}
