package usecases

import (
	"context"

	"github.com/coachfit-inc/coachfit/internal/domain/program"
	"github.com/coachfit-inc/coachfit/internal/domain/subscription"
	"github.com/coachfit-inc/coachfit/internal/shared/errors"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

const (
	MsgProgramNotFound = "존재하지 않는 프로그램입니다."
	MsgNotProgramOwner = "접근 권한이 없습니다."
	MsgStatsFailed     = "대시보드 조회에 실패했습니다."
)

// CoachStats summarizes a coach's dashboard headline numbers. The subscriber
// count is scoped to the coach's own programs.
type CoachStats struct {
	TotalPrograms    int   `json:"total_programs"`
	ActivePrograms   int   `json:"active_programs"`
	TotalSubscribers int64 `json:"total_subscribers"`
}

type GetCoachStatsQuery struct {
	CoachID string
}

type GetCoachStatsUseCase struct {
	programRepo      program.ProgramRepository
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewGetCoachStatsUseCase(
	programRepo program.ProgramRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *GetCoachStatsUseCase {
	return &GetCoachStatsUseCase{
		programRepo:      programRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetCoachStatsUseCase) Execute(ctx context.Context, q GetCoachStatsQuery) (*CoachStats, error) {
	programs, err := uc.programRepo.ListByCoachID(ctx, q.CoachID)
	if err != nil {
		uc.logger.Errorw("failed to list coach programs", "error", err, "coach_id", q.CoachID)
		return nil, errors.NewInternalError(MsgStatsFailed)
	}

	stats := &CoachStats{TotalPrograms: len(programs)}
	programIDs := make([]string, 0, len(programs))
	for _, p := range programs {
		programIDs = append(programIDs, p.ID())
		if p.IsActive() {
			stats.ActivePrograms++
		}
	}

	if len(programIDs) > 0 {
		count, err := uc.subscriptionRepo.CountActiveByProgramIDs(ctx, programIDs)
		if err != nil {
			uc.logger.Errorw("failed to count active subscribers", "error", err, "coach_id", q.CoachID)
			return nil, errors.NewInternalError(MsgStatsFailed)
		}
		stats.TotalSubscribers = count
	}

	return stats, nil
}
