package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/coachfit-inc/coachfit/internal/interfaces/http/handlers"
	"github.com/coachfit-inc/coachfit/internal/interfaces/http/middleware"
)

// CheckoutRouteConfig holds dependencies for checkout routes.
type CheckoutRouteConfig struct {
	CheckoutHandler *handlers.CheckoutHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimiter     *middleware.RateLimiter
}

// SetupCheckoutRoutes configures checkout routes. The fail redirect stays
// public since the gateway sends the browser there before any charge.
func SetupCheckoutRoutes(engine *gin.Engine, cfg *CheckoutRouteConfig) {
	checkout := engine.Group("/checkout")
	{
		checkout.GET("/fail", cfg.CheckoutHandler.CheckoutFail)
		checkout.GET("/success", cfg.AuthMiddleware.RequireAuth(), cfg.CheckoutHandler.CheckoutSuccess)

		orders := checkout.Group("/orders")
		orders.Use(cfg.AuthMiddleware.RequireAuth())
		{
			orders.POST("", cfg.RateLimiter.Limit(), cfg.CheckoutHandler.PrepareOrder)
			orders.POST("/approve", cfg.RateLimiter.Limit(), cfg.CheckoutHandler.ApproveOrder)
			orders.GET("", cfg.CheckoutHandler.ListMyOrders)
			orders.GET("/:orderID", cfg.CheckoutHandler.GetOrder)
		}
	}
}
