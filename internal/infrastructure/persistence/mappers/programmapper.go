package mappers

import (
	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/persistence/models"
)

func ProgramToModel(p *program.Program) *models.ProgramModel {
	return &models.ProgramModel{
		ID:             p.ID(),
		CoachID:        p.CoachID(),
		Title:          p.Title(),
		Description:    p.Description(),
		Price:          p.Price(),
		ThumbnailURL:   p.Thumbnail(),
		IsActive:       p.IsActive(),
		OnSale:         p.OnSale(),
		SaleStopReason: p.SaleStopReason(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func ProgramToDomain(model *models.ProgramModel) *program.Program {
	return program.ReconstructProgram(
		model.ID,
		model.CoachID,
		model.Title,
		model.Description,
		model.Price,
		model.ThumbnailURL,
		model.IsActive,
		model.OnSale,
		model.SaleStopReason,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
