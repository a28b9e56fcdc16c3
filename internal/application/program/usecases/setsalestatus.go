package usecases

import (
	"context"

	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

type SetSaleStatusCommand struct {
	CoachID   string
	ProgramID string
	OnSale    bool
	// StopReason is shown to buyers while the sale is paused. Ignored when
	// OnSale is true.
	StopReason string
}

type SetSaleStatusUseCase struct {
	programRepo program.ProgramRepository
	logger      logger.Interface
}

func NewSetSaleStatusUseCase(programRepo program.ProgramRepository, logger logger.Interface) *SetSaleStatusUseCase {
	return &SetSaleStatusUseCase{programRepo: programRepo, logger: logger}
}

// Execute pauses or resumes purchases for a program the coach owns. Pausing
// never touches existing subscriptions or ready orders; those orders simply
// cannot be prepared again.
func (uc *SetSaleStatusUseCase) Execute(ctx context.Context, cmd SetSaleStatusCommand) (*program.Program, error) {
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

	if cmd.OnSale {
		prog.ResumeSale()
	} else {
		prog.PauseSale(cmd.StopReason)
	}

	if err := uc.programRepo.Update(ctx, prog); err != nil {
		uc.logger.Errorw("failed to update sale status", "error", err, "program_id", cmd.ProgramID)
		return nil, errors.NewInternalError(MsgProgramSaveFailed)
	}

	uc.logger.Infow("program sale status changed",
		"program_id", cmd.ProgramID, "on_sale", cmd.OnSale)
	return prog, nil
}
