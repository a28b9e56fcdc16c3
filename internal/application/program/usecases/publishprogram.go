package usecases

import (
	"context"

	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

type PublishProgramCommand struct {
	CoachID   string
	ProgramID string
	Publish   bool
}

type PublishProgramUseCase struct {
	programRepo program.ProgramRepository
	logger      logger.Interface
}

func NewPublishProgramUseCase(programRepo program.ProgramRepository, logger logger.Interface) *PublishProgramUseCase {
	return &PublishProgramUseCase{programRepo: programRepo, logger: logger}
}

// Execute toggles catalog visibility. Unpublishing keeps existing
// subscriptions intact.
func (uc *PublishProgramUseCase) Execute(ctx context.Context, cmd PublishProgramCommand) (*program.Program, error) {
	prog, err := uc.programRepo.GetByID(ctx, cmd.ProgramID)
	if err != nil {
		uc.logger.Errorw("failed to load program", "error", err, "program_id", cmd.ProgramID)
		return nil, errors.NewInternalError(MsgProgramQueryFailed)
	}
	if prog == nil {
		return nil, errors.NewNotFoundError(MsgProgramNotFound)
	}
	if !prog.IsOwnedBy(cmd.CoachID) {
		return nil, errors.NewForbiddenError(MsgNotProgramOwner)
	}

	if cmd.Publish {
		prog.Publish()
	} else {
		prog.Unpublish()
	}

	if err := uc.programRepo.Update(ctx, prog); err != nil {
		uc.logger.Errorw("failed to update publish state", "error", err, "program_id", cmd.ProgramID)
		return nil, errors.NewInternalError(MsgProgramSaveFailed)
	}

	uc.logger.Infow("program publish state changed",
		"program_id", cmd.ProgramID, "published", cmd.Publish)
	return prog, nil
}
