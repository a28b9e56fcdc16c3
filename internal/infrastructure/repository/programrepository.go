package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/persistence/mappers"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/persistence/models"
	"github.com/coachfit-inc/coachfit/internal/shared/db"
)

type ProgramRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

var _ program.ProgramRepository = (*ProgramRepository)(nil)

func (r *ProgramRepository) Create(ctx context.Context, p *program.Program) error {
	model := mappers.ProgramToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create program: %w", err)
	}
	return nil
}

func (r *ProgramRepository) Update(ctx context.Context, p *program.Program) error {
	model := mappers.ProgramToModel(p)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProgramModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":            model.Title,
			"description":      model.Description,
			"price":            model.Price,
			"thumbnail_url":    model.ThumbnailURL,
			"is_active":        model.IsActive,
			"on_sale":          model.OnSale,
			"sale_stop_reason": model.SaleStopReason,
			"updated_at":       model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update program: %w", result.Error)
	}
	return nil
}

func (r *ProgramRepository) GetByID(ctx context.Context, programID string) (*program.Program, error) {
	var model models.ProgramModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", programID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get program: %w", err)
	}

	return mappers.ProgramToDomain(&model), nil
}

func (r *ProgramRepository) ListActive(ctx context.Context) ([]*program.Program, error) {
	var modelList []models.ProgramModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list active programs: %w", err)
	}

	return r.toDomainList(modelList), nil
}

func (r *ProgramRepository) ListByCoachID(ctx context.Context, coachID string) ([]*program.Program, error) {
	var modelList []models.ProgramModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("coach_id = ?", coachID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list coach programs: %w", err)
	}

	return r.toDomainList(modelList), nil
}

func (r *ProgramRepository) toDomainList(modelList []models.ProgramModel) []*program.Program {
	programs := make([]*program.Program, 0, len(modelList))
	for i := range modelList {
		programs = append(programs, mappers.ProgramToDomain(&modelList[i]))
	}
	return programs
}
