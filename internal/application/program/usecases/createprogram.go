package usecases

import (
	"context"

	"github.com/coachfit-inc/coachfit/internal/domain/profile"
	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

const (
	MsgCoachOnly          = "코치만 사용할 수 있는 기능입니다."
	MsgProgramNotFound    = "존재하지 않는 프로그램입니다."
	MsgNotProgramOwner    = "접근 권한이 없습니다."
	MsgProgramSaveFailed  = "프로그램 저장에 실패했습니다."
	MsgProgramQueryFailed = "프로그램 조회에 실패했습니다."
)

type CreateProgramCommand struct {
	CoachID      string
	Title        string
	Description  string
	Price        int64
	ThumbnailURL string
}

type CreateProgramUseCase struct {
	programRepo program.ProgramRepository
	profileRepo profile.ProfileRepository
	logger      logger.Interface
}

func NewCreateProgramUseCase(
	programRepo program.ProgramRepository,
	profileRepo profile.ProfileRepository,
	logger logger.Interface,
) *CreateProgramUseCase {
	return &CreateProgramUseCase{
		programRepo: programRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Execute creates an unpublished program owned by the coach. The coach role
// is verified against the profile store, not just the token claim.
func (uc *CreateProgramUseCase) Execute(ctx context.Context, cmd CreateProgramCommand) (*program.Program, error) {
	coach, err := uc.profileRepo.GetByID(ctx, cmd.CoachID)
	if err != nil {
		uc.logger.Errorw("failed to load coach profile", "error", err, "coach_id", cmd.CoachID)
		return nil, errors.NewInternalError(MsgProgramSaveFailed)
	}
	if coach == nil || !coach.IsCoach() {
		return nil, errors.NewForbiddenError(MsgCoachOnly)
	}

	prog, err := program.NewProgram(cmd.CoachID, cmd.Title, cmd.Description, cmd.Price)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.ThumbnailURL != "" {
		prog.SetThumbnail(cmd.ThumbnailURL)
	}

	if err := uc.programRepo.Create(ctx, prog); err != nil {
		uc.logger.Errorw("failed to save program", "error", err, "coach_id", cmd.CoachID)
		return nil, errors.NewInternalError(MsgProgramSaveFailed)
	}

	uc.logger.Infow("program created", "program_id", prog.ID(), "coach_id", cmd.CoachID, "price", cmd.Price)
	return prog, nil
}
