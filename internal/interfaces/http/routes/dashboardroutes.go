package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/coachfit-inc/coachfit/internal/interfaces/http/handlers"
	"github.com/coachfit-inc/coachfit/internal/interfaces/http/middleware"
)

// DashboardRouteConfig holds dependencies for the coach dashboard routes.
type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
	ProgramHandler   *handlers.ProgramHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupDashboardRoutes configures coach-only routes. The role gate here is a
// cheap token check; usecases still verify ownership against storage.
func SetupDashboardRoutes(engine *gin.Engine, cfg *DashboardRouteConfig) {
	dashboard := engine.Group("/dashboard")
	dashboard.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireCoach())
	{
		dashboard.GET("/stats", cfg.DashboardHandler.GetStats)
		dashboard.GET("/subscribers", cfg.DashboardHandler.ListSubscribers)

		programs := dashboard.Group("/programs")
		{
			programs.GET("", cfg.ProgramHandler.ListMyPrograms)
			programs.POST("", cfg.ProgramHandler.CreateProgram)
			programs.PUT("/:programID", cfg.ProgramHandler.UpdateProgram)
			programs.PATCH("/:programID/publish", cfg.ProgramHandler.PublishProgram)
			programs.PATCH("/:programID/sale-status", cfg.ProgramHandler.SetSaleStatus)
			programs.GET("/:programID/subscribers", cfg.DashboardHandler.ListProgramSubscribers)
		}
	}
}
