package router

import (
	"time"

	"pointtrail/config"
	"pointtrail/internal/handler"
	"pointtrail/internal/middleware"
	"pointtrail/internal/repository"
	"pointtrail/internal/service"
	"pointtrail/internal/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) (*gin.Engine, *service.Recorder) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	historyRepo := repository.NewHistoryRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	hub := ws.NewHub()

	// Services
	opts := service.NewOptions(settingRepo)
	recorder := service.NewRecorder(historyRepo, userRepo, postRepo, opts, hub)
	reader := service.NewReader(historyRepo, userRepo)
	exporter := service.NewExporter(reader, userRepo)
	authSvc := service.NewAuthService(cfg, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, recorder)
	eventHandler := handler.NewEventHandler(recorder, cfg)
	historyHandler := handler.NewHistoryHandler(reader, opts)
	exportHandler := handler.NewExportHandler(exporter)
	adminHandler := handler.NewAdminHandler(historyRepo, settingRepo, userRepo, reader, opts)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		api.POST("/events", eventHandler.Handle)

		api.GET("/me/point-history", authMw, historyHandler.Widget)
		api.GET("/users/:handle/point-history", authMw, historyHandler.Timeline)
		api.GET("/users/:handle/point-history/export", authMw, exportHandler.Export)

		admin := api.Group("/admin")
		admin.Use(authMw, middleware.AdminRequired())
		{
			admin.GET("/users", adminHandler.SearchUsers)
			admin.GET("/users/:id/point-history", adminHandler.UserHistory)
			admin.GET("/settings", adminHandler.GetSettings)
			admin.PUT("/settings", adminHandler.SaveSettings)
			admin.GET("/stats", adminHandler.Stats)
			admin.POST("/cleanup", adminHandler.Cleanup)
			admin.POST("/reset", adminHandler.Reset)
		}
	}

	r.GET("/ws/timeline", ws.UpgradeTimelineWS(&cfg.JWT, hub))

	return r, recorder
}
