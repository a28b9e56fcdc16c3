package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/coachfit-inc/coachfit/internal/domain/profile"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/persistence/mappers"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/persistence/models"
	"github.com/coachfit-inc/coachfit/internal/shared/db"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ profile.ProfileRepository = (*ProfileRepository)(nil)

func (r *ProfileRepository) GetByID(ctx context.Context, profileID string) (*profile.Profile, error) {
	var model models.ProfileModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", profileID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return mappers.ProfileToDomain(&model)
}

func (r *ProfileRepository) GetByIDs(ctx context.Context, profileIDs []string) ([]*profile.Profile, error) {
	if len(profileIDs) == 0 {
		return []*profile.Profile{}, nil
	}

	var modelList []models.ProfileModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("id IN ?", profileIDs).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	profiles := make([]*profile.Profile, 0, len(modelList))
	for i := range modelList {
		p, err := mappers.ProfileToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
