package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	checkoutUsecases "github.com/coachfit-inc/coachfit/internal/application/checkout/usecases"
	coachUsecases "github.com/coachfit-inc/coachfit/internal/application/coach/usecases"
	programUsecases "github.com/coachfit-inc/coachfit/internal/application/program/usecases"
	subscriptionUsecases "github.com/coachfit-inc/coachfit/internal/application/subscription/usecases"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/auth"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/payment"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/repository"
	"github.com/coachfit-inc/coachfit/internal/interfaces/http/handlers"
	"github.com/coachfit-inc/coachfit/internal/interfaces/http/middleware"
	"github.com/coachfit-inc/coachfit/internal/interfaces/http/routes"
	"github.com/coachfit-inc/coachfit/internal/infrastructure/config"
	"github.com/coachfit-inc/coachfit/internal/shared/db"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
	"github.com/coachfit-inc/coachfit/internal/shared/services/markdown"
)

// Router represents the HTTP router configuration
type Router struct {
	engine              *gin.Engine
	checkoutHandler     *handlers.CheckoutHandler
	programHandler      *handlers.ProgramHandler
	subscriptionHandler *handlers.SubscriptionHandler
	dashboardHandler    *handlers.DashboardHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimiter         *middleware.RateLimiter
	allowedOrigins      []string
	logger              logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	orderRepo := repository.NewPaymentOrderRepository(gormDB)
	programRepo := repository.NewProgramRepository(gormDB)
	subscriptionRepo := repository.NewSubscriptionRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)
	gateway := payment.NewTossGateway(&cfg.Toss, log)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	markdownService := markdown.NewMarkdownService()

	prepareOrderUC := checkoutUsecases.NewPrepareOrderUseCase(programRepo, orderRepo, subscriptionRepo, log)
	approveOrderUC := checkoutUsecases.NewApproveOrderUseCase(
		orderRepo, subscriptionRepo, gateway, txManager, log,
		checkoutUsecases.ApproveOrderConfig{PeriodDays: cfg.Checkout.PeriodDays},
	)
	getOrderUC := checkoutUsecases.NewGetOrderUseCase(orderRepo, programRepo, log)
	listUserOrdersUC := checkoutUsecases.NewListUserOrdersUseCase(orderRepo, programRepo, log)
	checkEligibilityUC := checkoutUsecases.NewCheckEligibilityUseCase(programRepo, subscriptionRepo, log)

	createProgramUC := programUsecases.NewCreateProgramUseCase(programRepo, profileRepo, log)
	updateProgramUC := programUsecases.NewUpdateProgramUseCase(programRepo, log)
	publishProgramUC := programUsecases.NewPublishProgramUseCase(programRepo, log)
	setSaleStatusUC := programUsecases.NewSetSaleStatusUseCase(programRepo, log)
	getProgramUC := programUsecases.NewGetProgramUseCase(programRepo, profileRepo, markdownService, log)
	listProgramsUC := programUsecases.NewListProgramsUseCase(programRepo, log)

	listSubscriptionsUC := subscriptionUsecases.NewListUserSubscriptionsUseCase(subscriptionRepo, programRepo, profileRepo, log)
	hasActiveUC := subscriptionUsecases.NewHasActiveSubscriptionUseCase(subscriptionRepo, log)

	getStatsUC := coachUsecases.NewGetCoachStatsUseCase(programRepo, subscriptionRepo, log)
	listProgramSubscribersUC := coachUsecases.NewListProgramSubscribersUseCase(programRepo, subscriptionRepo, profileRepo, log)
	listCoachSubscribersUC := coachUsecases.NewListCoachSubscribersUseCase(programRepo, subscriptionRepo, profileRepo, log)

	checkoutHandler := handlers.NewCheckoutHandler(
		prepareOrderUC, approveOrderUC, getOrderUC, listUserOrdersUC, checkEligibilityUC, log,
	)
	programHandler := handlers.NewProgramHandler(
		createProgramUC, updateProgramUC, publishProgramUC, setSaleStatusUC, getProgramUC, listProgramsUC, log,
	)
	subscriptionHandler := handlers.NewSubscriptionHandler(listSubscriptionsUC, hasActiveUC, log)
	dashboardHandler := handlers.NewDashboardHandler(
		getStatsUC, listProgramSubscribersUC, listCoachSubscribersUC, log,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	rateLimiter := middleware.NewRateLimiter(redisClient, cfg.Checkout.RateLimitPerMin, 1*time.Minute)

	return &Router{
		engine:              engine,
		checkoutHandler:     checkoutHandler,
		programHandler:      programHandler,
		subscriptionHandler: subscriptionHandler,
		dashboardHandler:    dashboardHandler,
		authMiddleware:      authMiddleware,
		rateLimiter:         rateLimiter,
		allowedOrigins:      cfg.Server.AllowedOrigins,
		logger:              log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupProgramRoutes(r.engine, &routes.ProgramRouteConfig{
		ProgramHandler:      r.programHandler,
		CheckoutHandler:     r.checkoutHandler,
		SubscriptionHandler: r.subscriptionHandler,
		AuthMiddleware:      r.authMiddleware,
	})

	routes.SetupCheckoutRoutes(r.engine, &routes.CheckoutRouteConfig{
		CheckoutHandler: r.checkoutHandler,
		AuthMiddleware:  r.authMiddleware,
		RateLimiter:     r.rateLimiter,
	})

	routes.SetupSubscriptionRoutes(r.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: r.subscriptionHandler,
		AuthMiddleware:      r.authMiddleware,
	})

	routes.SetupDashboardRoutes(r.engine, &routes.DashboardRouteConfig{
		DashboardHandler: r.dashboardHandler,
		ProgramHandler:   r.programHandler,
		AuthMiddleware:   r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
