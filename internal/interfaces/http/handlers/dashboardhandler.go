package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coachUsecases "github.com/coachfit-inc/coachfit/internal/application/coach/usecases"
	"github.com/coachfit-inc/coachfit/internal/interfaces/http/middleware"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
	"github.com/coachfit-inc/coachfit/internal/shared/utils"
)

// DashboardHandler serves the coach dashboard: stats and subscriber lists
// scoped to the authenticated coach's own programs.
type DashboardHandler struct {
	getStatsUC               *coachUsecases.GetCoachStatsUseCase
	listProgramSubscribersUC *coachUsecases.ListProgramSubscribersUseCase
	listCoachSubscribersUC   *coachUsecases.ListCoachSubscribersUseCase
	logger                   logger.Interface
}

func NewDashboardHandler(
	getStatsUC *coachUsecases.GetCoachStatsUseCase,
	listProgramSubscribersUC *coachUsecases.ListProgramSubscribersUseCase,
	listCoachSubscribersUC *coachUsecases.ListCoachSubscribersUseCase,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		getStatsUC:               getStatsUC,
		listProgramSubscribersUC: listProgramSubscribersUC,
		listCoachSubscribersUC:   listCoachSubscribersUC,
		logger:                   logger,
	}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.getStatsUC.Execute(c.Request.Context(), coachUsecases.GetCoachStatsQuery{
		CoachID: middleware.UserIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}

func (h *DashboardHandler) ListProgramSubscribers(c *gin.Context) {
	entries, err := h.listProgramSubscribersUC.Execute(c.Request.Context(), coachUsecases.ListProgramSubscribersQuery{
		CoachID:   middleware.UserIDFromContext(c),
		ProgramID: c.Param("programID"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", entries)
}

func (h *DashboardHandler) ListSubscribers(c *gin.Context) {
	entries, err := h.listCoachSubscribersUC.Execute(c.Request.Context(), coachUsecases.ListCoachSubscribersQuery{
		CoachID: middleware.UserIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", entries)
}
