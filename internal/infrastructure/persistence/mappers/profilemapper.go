package mappers

import (
	"fmt"

	"github.com/coachfit-inc/coachfit/internal/domain/profile"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/persistence/models"
)

func ProfileToDomain(model *models.ProfileModel) (*profile.Profile, error) {
	role, err := profile.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("invalid role for profile %s: %w", model.ID, err)
	}

	return profile.ReconstructProfile(
		model.ID,
		model.Email,
		model.Name,
		model.DisplayName,
		role,
		model.OnboardingCompleted,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
