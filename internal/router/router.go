package router

import (
	"time"

	"github.com/ClearStock/clearstock/internal/config"
	"github.com/ClearStock/clearstock/internal/handler"
	"github.com/ClearStock/clearstock/internal/infra"
	"github.com/ClearStock/clearstock/internal/middleware"
	"github.com/ClearStock/clearstock/internal/repository"
	"github.com/ClearStock/clearstock/internal/service"
	"github.com/ClearStock/clearstock/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, transcriptionCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	transcriber := infra.NewTranscriber(cfg.ElevenLabsURL, cfg.ElevenLabsAPIKey)

	// ── Repositories ─────────────────────────────────────────────────────────
	restaurantRepo := repository.NewRestaurantRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	batchRepo := repository.NewBatchRepository(db)
	stockEventRepo := repository.NewStockEventRepository(db)
	supportRepo := repository.NewSupportRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	tenantSvc := service.NewTenantService(restaurantRepo, categoryRepo, locationRepo)
	authSvc := service.NewAuthService(restaurantRepo, sessionRepo, tenantSvc, time.Duration(cfg.SessionTTLHours)*time.Hour)
	stockSvc := service.NewStockService(restaurantRepo, batchRepo, stockEventRepo, userRepo)
	historySvc := service.NewHistoryService(stockEventRepo)
	supportSvc := service.NewSupportService(supportRepo, restaurantRepo, dispatcher, cfg.SupportAdminEmail)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, tenantSvc, cfg)
	stockH := handler.NewStockHandler(stockSvc)
	settingsH := handler.NewSettingsHandler(tenantSvc)
	historyH := handler.NewHistoryHandler(historySvc)
	supportH := handler.NewSupportHandler(supportSvc)
	speechH := handler.NewSpeechHandler(transcriber, transcriptionCB)
	parseH := handler.NewParseHandler()

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, transcriptionCB))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", authH.Logout)
	}

	// Protected routes
	sessionMW := middleware.SessionAuth(authSvc, cfg)
	v1 := r.Group("/v1", sessionMW)
	{
		v1.GET("/auth/session", authH.Session)

		stock := v1.Group("/stock")
		{
			stock.GET("", stockH.List)
			stock.POST("", stockH.Create)
			stock.PUT("/:id", stockH.Update)
			stock.PATCH("/:id/quantity", stockH.AdjustQuantity)
			stock.DELETE("/:id", stockH.Delete)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("", settingsH.Get)
			settings.PUT("/alert-days", settingsH.UpdateAlertDays)
			settings.PUT("/name", settingsH.UpdateName)
			settings.POST("/categories", settingsH.CreateCategory)
			settings.PUT("/categories/:id/alerts", settingsH.UpdateCategoryAlerts)
			settings.DELETE("/categories/:id", settingsH.DeleteCategory)
			settings.POST("/locations", settingsH.CreateLocation)
			settings.DELETE("/locations/:id", settingsH.DeleteLocation)
		}

		history := v1.Group("/history")
		{
			history.GET("", historyH.List)
			history.GET("/:year/:month", historyH.Month)
		}

		v1.POST("/support", supportH.Submit)

		v1.POST("/speech/transcribe", speechH.Transcribe)

		parseGroup := v1.Group("/parse")
		{
			parseGroup.POST("/voice", parseH.VoiceCommand)
			parseGroup.POST("/ocr-date", parseH.OCRDate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
