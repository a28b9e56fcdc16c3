package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coachfit-inc/coachfit/internal/domain/profile"
	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/services/markdown"
)

func coachProfile(id string) *profile.Profile {
	now := time.Now().UTC()
	return profile.ReconstructProfile(id, "coach@example.com", "김코치", "", profile.RoleCoach, true, now, now)
}

func subscriberProfile(id string) *profile.Profile {
	now := time.Now().UTC()
	return profile.ReconstructProfile(id, "sub@example.com", "회원", "", profile.RoleSubscriber, true, now, now)
}

func ownedProgram(t *testing.T, coachID string) *program.Program {
	t.Helper()
	p, err := program.NewProgram(coachID, "8주 코칭", "# 소개\n주간 피드백", 49000)
	require.NoError(t, err)
	p.Publish()
	return p
}

func TestCreateProgram(t *testing.T) {
	t.Run("coach creates draft", func(t *testing.T) {
		profileRepo := new(mockProfileRepo)
		profileRepo.On("GetByID", mock.Anything, "coach-1").Return(coachProfile("coach-1"), nil)
		programRepo := new(mockProgramRepo)
		programRepo.On("Create", mock.Anything, mock.AnythingOfType("*program.Program")).Return(nil)

		uc := NewCreateProgramUseCase(programRepo, profileRepo, newNoopLogger())
		prog, err := uc.Execute(context.Background(), CreateProgramCommand{
			CoachID: "coach-1", Title: "새 프로그램", Description: "desc", Price: 30000,
			ThumbnailURL: "https://cdn.example.com/t.png",
		})

		require.NoError(t, err)
		assert.False(t, prog.IsActive(), "new programs start as drafts")
		assert.Equal(t, "coach-1", prog.CoachID())
		require.NotNil(t, prog.Thumbnail())
	})

	t.Run("subscriber rejected", func(t *testing.T) {
		profileRepo := new(mockProfileRepo)
		profileRepo.On("GetByID", mock.Anything, "user-1").Return(subscriberProfile("user-1"), nil)
		programRepo := new(mockProgramRepo)

		uc := NewCreateProgramUseCase(programRepo, profileRepo, newNoopLogger())
		_, err := uc.Execute(context.Background(), CreateProgramCommand{CoachID: "user-1", Title: "x", Price: 1})

		require.Error(t, err)
		assert.Equal(t, errors.ErrorTypeForbidden, errors.GetAppError(err).Type)
		programRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid fields are validation errors", func(t *testing.T) {
		profileRepo := new(mockProfileRepo)
		profileRepo.On("GetByID", mock.Anything, "coach-1").Return(coachProfile("coach-1"), nil)

		uc := NewCreateProgramUseCase(new(mockProgramRepo), profileRepo, newNoopLogger())
		_, err := uc.Execute(context.Background(), CreateProgramCommand{CoachID: "coach-1", Title: "", Price: -1})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUpdateProgram_OwnershipChecked(t *testing.T) {
	prog := ownedProgram(t, "coach-1")
	programRepo := new(mockProgramRepo)
	programRepo.On("GetByID", mock.Anything, prog.ID()).Return(prog, nil)

	uc := NewUpdateProgramUseCase(programRepo, newNoopLogger())
	_, err := uc.Execute(context.Background(), UpdateProgramCommand{
		CoachID: "coach-2", ProgramID: prog.ID(), Title: "탈취 시도", Price: 1,
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeForbidden, errors.GetAppError(err).Type)
	programRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetSaleStatus(t *testing.T) {
	t.Run("pause with reason", func(t *testing.T) {
		prog := ownedProgram(t, "coach-1")
		programRepo := new(mockProgramRepo)
		programRepo.On("GetByID", mock.Anything, prog.ID()).Return(prog, nil)
		programRepo.On("Update", mock.Anything, prog).Return(nil)

		uc := NewSetSaleStatusUseCase(programRepo, newNoopLogger())
		updated, err := uc.Execute(context.Background(), SetSaleStatusCommand{
			CoachID: "coach-1", ProgramID: prog.ID(), OnSale: false, StopReason: "다음 기수 준비 중",
		})

		require.NoError(t, err)
		assert.False(t, updated.OnSale())
		require.NotNil(t, updated.SaleStopReason())
		assert.Equal(t, "다음 기수 준비 중", *updated.SaleStopReason())
	})

	t.Run("resume clears reason", func(t *testing.T) {
		prog := ownedProgram(t, "coach-1")
		prog.PauseSale("잠시 중단")
		programRepo := new(mockProgramRepo)
		programRepo.On("GetByID", mock.Anything, prog.ID()).Return(prog, nil)
		programRepo.On("Update", mock.Anything, prog).Return(nil)

		uc := NewSetSaleStatusUseCase(programRepo, newNoopLogger())
		updated, err := uc.Execute(context.Background(), SetSaleStatusCommand{
			CoachID: "coach-1", ProgramID: prog.ID(), OnSale: true,
		})

		require.NoError(t, err)
		assert.True(t, updated.OnSale())
		assert.Nil(t, updated.SaleStopReason())
	})
}

func TestPublishProgram(t *testing.T) {
	prog, err := program.NewProgram("coach-1", "draft", "", 1000)
	require.NoError(t, err)

	programRepo := new(mockProgramRepo)
	programRepo.On("GetByID", mock.Anything, prog.ID()).Return(prog, nil)
	programRepo.On("Update", mock.Anything, prog).Return(nil)

	uc := NewPublishProgramUseCase(programRepo, newNoopLogger())
	updated, err := uc.Execute(context.Background(), PublishProgramCommand{
		CoachID: "coach-1", ProgramID: prog.ID(), Publish: true,
	})

	require.NoError(t, err)
	assert.True(t, updated.IsActive())
}

func TestGetProgram_RendersSanitizedDescription(t *testing.T) {
	prog, err := program.NewProgram("coach-1", "8주 코칭", "# 소개\n\n<script>alert(1)</script>**강조**", 49000)
	require.NoError(t, err)
	prog.Publish()

	programRepo := new(mockProgramRepo)
	programRepo.On("GetByID", mock.Anything, prog.ID()).Return(prog, nil)
	profileRepo := new(mockProfileRepo)
	profileRepo.On("GetByID", mock.Anything, "coach-1").Return(coachProfile("coach-1"), nil)

	uc := NewGetProgramUseCase(programRepo, profileRepo, markdown.NewMarkdownService(), newNoopLogger())
	detail, err := uc.Execute(context.Background(), GetProgramQuery{ProgramID: prog.ID()})

	require.NoError(t, err)
	assert.Contains(t, detail.DescriptionHTML, "<h1")
	assert.Contains(t, detail.DescriptionHTML, "<strong>강조</strong>")
	assert.NotContains(t, detail.DescriptionHTML, "<script>", "script tags must be stripped")
	assert.Equal(t, "김코치", detail.CoachName)
}

func TestGetProgram_DraftIsNotFound(t *testing.T) {
	prog, err := program.NewProgram("coach-1", "draft", "", 1000)
	require.NoError(t, err)

	programRepo := new(mockProgramRepo)
	programRepo.On("GetByID", mock.Anything, prog.ID()).Return(prog, nil)

	uc := NewGetProgramUseCase(programRepo, new(mockProfileRepo), markdown.NewMarkdownService(), newNoopLogger())
	_, err = uc.Execute(context.Background(), GetProgramQuery{ProgramID: prog.ID()})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListPrograms(t *testing.T) {
	prog := ownedProgram(t, "coach-1")
	programRepo := new(mockProgramRepo)
	programRepo.On("ListActive", mock.Anything).Return([]*program.Program{prog}, nil)
	programRepo.On("ListByCoachID", mock.Anything, "coach-1").Return([]*program.Program{prog}, nil)

	uc := NewListProgramsUseCase(programRepo, newNoopLogger())

	public, err := uc.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, prog.ID(), public[0].ProgramID)

	mine, err := uc.ListByCoach(context.Background(), "coach-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
}
