package usecases

import (
	"context"
	"time"

	"github.com/coachfit-inc/coachfit/internal/domain/profile"
	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
	"github.com/coachfit-inc/coachfit/internal/shared/services/markdown"
)

// ProgramDetail is the public read model for a program page. DescriptionHTML
// is the Markdown description rendered and sanitized for embedding.
type ProgramDetail struct {
	ProgramID       string    `json:"program_id"`
	CoachID         string    `json:"coach_id"`
	CoachName       string    `json:"coach_name"`
	Title           string    `json:"title"`
	DescriptionHTML string    `json:"description_html"`
	Price           int64     `json:"price"`
	Thumbnail       *string   `json:"thumbnail,omitempty"`
	OnSale          bool      `json:"on_sale"`
	SaleStopReason  *string   `json:"sale_stop_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type GetProgramQuery struct {
	ProgramID string
}

type GetProgramUseCase struct {
	programRepo program.ProgramRepository
	profileRepo profile.ProfileRepository
	markdown    markdown.MarkdownService
	logger      logger.Interface
}

func NewGetProgramUseCase(
	programRepo program.ProgramRepository,
	profileRepo profile.ProfileRepository,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *GetProgramUseCase {
	return &GetProgramUseCase{
		programRepo: programRepo,
		profileRepo: profileRepo,
		markdown:    markdownSvc,
		logger:      logger,
	}
}

// Execute returns the public detail for a published program. Unpublished
// programs are not found to the public surface.
func (uc *GetProgramUseCase) Execute(ctx context.Context, q GetProgramQuery) (*ProgramDetail, error) {
	prog, err := uc.programRepo.GetByID(ctx, q.ProgramID)
	if err != nil {
		uc.logger.Errorw("failed to load program", "error", err, "program_id", q.ProgramID)
		return nil, errors.NewInternalError(MsgProgramQueryFailed)
	}
	if prog == nil || !prog.IsActive() {
		return nil, errors.NewNotFoundError(MsgProgramNotFound)
	}

	descriptionHTML, err := uc.markdown.ToHTMLSanitized(prog.Description())
	if err != nil {
		uc.logger.Errorw("failed to render program description", "error", err, "program_id", q.ProgramID)
		return nil, errors.NewInternalError(MsgProgramQueryFailed)
	}

	detail := &ProgramDetail{
		ProgramID:       prog.ID(),
		CoachID:         prog.CoachID(),
		Title:           prog.Title(),
		DescriptionHTML: descriptionHTML,
		Price:           prog.Price(),
		Thumbnail:       prog.Thumbnail(),
		OnSale:          prog.OnSale(),
		SaleStopReason:  prog.SaleStopReason(),
		CreatedAt:       prog.CreatedAt(),
	}

	coach, err := uc.profileRepo.GetByID(ctx, prog.CoachID())
	if err != nil {
		uc.logger.Errorw("failed to load coach profile", "error", err, "coach_id", prog.CoachID())
		return nil, errors.NewInternalError(MsgProgramQueryFailed)
	}
	if coach != nil {
		detail.CoachName = coach.DisplayName()
	}

	return detail, nil
}
