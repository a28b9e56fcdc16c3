package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/coachfit-inc/coachfit/internal/interfaces/http/handlers"
	"github.com/coachfit-inc/coachfit/internal/interfaces/http/middleware"
)

// ProgramRouteConfig holds dependencies for the public program catalog.
type ProgramRouteConfig struct {
	ProgramHandler      *handlers.ProgramHandler
	CheckoutHandler     *handlers.CheckoutHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupProgramRoutes configures the public storefront routes. Eligibility and
// subscription checks use optional auth so anonymous visitors get answers too.
func SetupProgramRoutes(engine *gin.Engine, cfg *ProgramRouteConfig) {
	programs := engine.Group("/programs")
	{
		programs.GET("", cfg.ProgramHandler.ListPublic)
		programs.GET("/:programID", cfg.ProgramHandler.GetProgram)

		programs.GET("/:programID/eligibility",
			cfg.AuthMiddleware.OptionalAuth(), cfg.CheckoutHandler.CheckEligibility)
		programs.GET("/:programID/subscribed",
			cfg.AuthMiddleware.OptionalAuth(), cfg.SubscriptionHandler.CheckActive)
	}
}
