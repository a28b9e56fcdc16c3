package usecases

import (
	"context"

	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

type UpdateProgramCommand struct {
	CoachID      string
	ProgramID    string
	Title        string
	Description  string
	Price        int64
	ThumbnailURL *string // nil leaves the thumbnail unchanged
}

type UpdateProgramUseCase struct {
	programRepo program.ProgramRepository
	logger      logger.Interface
}

func NewUpdateProgramUseCase(programRepo program.ProgramRepository, logger logger.Interface) *UpdateProgramUseCase {
	return &UpdateProgramUseCase{programRepo: programRepo, logger: logger}
}

// Execute updates the catalog fields of a program the coach owns. Orders
// already prepared keep the amount captured at preparation time.
func (uc *UpdateProgramUseCase) Execute(ctx context.Context, cmd UpdateProgramCommand) (*program.Program, error) {
	prog, err := uc.loadOwned(ctx, cmd.CoachID, cmd.ProgramID)
	if err != nil {
		return nil, err
	}

	if err := prog.UpdateDetails(cmd.Title, cmd.Description, cmd.Price); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.ThumbnailURL != nil {
		prog.SetThumbnail(*cmd.ThumbnailURL)
	}

	if err := uc.programRepo.Update(ctx, prog); err != nil {
		uc.logger.Errorw("failed to update program", "error", err, "program_id", cmd.ProgramID)
		return nil, errors.NewInternalError(MsgProgramSaveFailed)
	}

	return prog, nil
}

func (uc *UpdateProgramUseCase) loadOwned(ctx context.Context, coachID, programID string) (*program.Program, error) {
	prog, err := uc.programRepo.GetByID(ctx, programID)
	if err != nil {
		uc.logger.Errorw("failed to load program", "error", err, "program_id", programID)
		return nil, errors.NewInternalError(MsgProgramQueryFailed)
	}
	if prog == nil {
		return nil, errors.NewNotFoundError(MsgProgramNotFound)
	}
	if !prog.IsOwnedBy(coachID) {
		return nil, errors.NewForbiddenError(MsgNotProgramOwner)
	}
	return prog, nil
}
