package usecases

import (
	"context"
	"time"

	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

// ProgramListItem is the catalog card read model.
type ProgramListItem struct {
	ProgramID string    `json:"program_id"`
	CoachID   string    `json:"coach_id"`
	Title     string    `json:"title"`
	Price     int64     `json:"price"`
	Thumbnail *string   `json:"thumbnail,omitempty"`
	IsActive  bool      `json:"is_active"`
	OnSale    bool      `json:"on_sale"`
	CreatedAt time.Time `json:"created_at"`
}

func toListItem(p *program.Program) *ProgramListItem {
	return &ProgramListItem{
		ProgramID: p.ID(),
		CoachID:   p.CoachID(),
		Title:     p.Title(),
		Price:     p.Price(),
		Thumbnail: p.Thumbnail(),
		IsActive:  p.IsActive(),
		OnSale:    p.OnSale(),
		CreatedAt: p.CreatedAt(),
	}
}

type ListProgramsUseCase struct {
	programRepo program.ProgramRepository
	logger      logger.Interface
}

func NewListProgramsUseCase(programRepo program.ProgramRepository, logger logger.Interface) *ListProgramsUseCase {
	return &ListProgramsUseCase{programRepo: programRepo, logger: logger}
}

// ListPublic returns the published catalog.
func (uc *ListProgramsUseCase) ListPublic(ctx context.Context) ([]*ProgramListItem, error) {
	programs, err := uc.programRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list public programs", "error", err)
		return nil, errors.NewInternalError(MsgProgramQueryFailed)
	}

	items := make([]*ProgramListItem, 0, len(programs))
	for _, p := range programs {
		items = append(items, toListItem(p))
	}
	return items, nil
}

// ListByCoach returns all of the coach's programs including drafts.
func (uc *ListProgramsUseCase) ListByCoach(ctx context.Context, coachID string) ([]*ProgramListItem, error) {
	programs, err := uc.programRepo.ListByCoachID(ctx, coachID)
	if err != nil {
		uc.logger.Errorw("failed to list coach programs", "error", err, "coach_id", coachID)
		return nil, errors.NewInternalError(MsgProgramQueryFailed)
	}

	items := make([]*ProgramListItem, 0, len(programs))
	for _, p := range programs {
		items = append(items, toListItem(p))
	}
	return items, nil
}
