package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	subscriptionUsecases "github.com/coachfit-inc/coachfit/internal/application/subscription/usecases"
	"github.com/coachfit-inc/coachfit/internal/interfaces/http/middleware"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
	"github.com/coachfit-inc/coachfit/internal/shared/utils"
)

type SubscriptionHandler struct {
	listSubscriptionsUC *subscriptionUsecases.ListUserSubscriptionsUseCase
	hasActiveUC         *subscriptionUsecases.HasActiveSubscriptionUseCase
	logger              logger.Interface
}

func NewSubscriptionHandler(
	listSubscriptionsUC *subscriptionUsecases.ListUserSubscriptionsUseCase,
	hasActiveUC *subscriptionUsecases.HasActiveSubscriptionUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		listSubscriptionsUC: listSubscriptionsUC,
		hasActiveUC:         hasActiveUC,
		logger:              logger,
	}
}

// ListMySubscriptions returns the authenticated user's subscriptions joined
// with program and coach context.
func (h *SubscriptionHandler) ListMySubscriptions(c *gin.Context) {
	q := subscriptionUsecases.ListUserSubscriptionsQuery{
		UserID: middleware.UserIDFromContext(c),
	}

	summaries, err := h.listSubscriptionsUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", summaries)
}

type HasActiveResponse struct {
	Subscribed bool `json:"subscribed"`
}

// CheckActive reports whether the user holds an active subscription to the
// program. Anonymous callers always get false.
func (h *SubscriptionHandler) CheckActive(c *gin.Context) {
	q := subscriptionUsecases.HasActiveSubscriptionQuery{
		UserID:    middleware.UserIDFromContext(c),
		ProgramID: c.Param("programID"),
	}

	subscribed, err := h.hasActiveUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", HasActiveResponse{Subscribed: subscribed})
}
