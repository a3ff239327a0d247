package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portfolio-builder-backend/internal/components"
	"portfolio-builder-backend/internal/config"
	"portfolio-builder-backend/internal/handlers"
	"portfolio-builder-backend/internal/middleware"
	"portfolio-builder-backend/internal/models"
	"portfolio-builder-backend/internal/render"
	"portfolio-builder-backend/internal/repository"
	"portfolio-builder-backend/internal/service"
	"portfolio-builder-backend/pkg/cache"
	"portfolio-builder-backend/pkg/logger"
)

type Application struct {
	cfg *config.Config

	db       *gorm.DB
	cache    *cache.Cache
	registry *components.Registry
	renderer *render.Renderer

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	rateLimiter *middleware.RateLimitManager
	router      *gin.Engine
	server      *http.Server
}

type repositoryContainer struct {
	User    repository.UserRepository
	Website repository.WebsiteRepository
}

type serviceContainer struct {
	Auth    *service.AuthService
	Website *service.WebsiteService
	Resume  *service.ResumeService
	Upload  *service.UploadService
}

type handlerContainer struct {
	Auth    *handlers.AuthHandler
	Website *handlers.WebsiteHandler
	Builder *handlers.BuilderHandler
	Public  *handlers.PublicHandler
	Resume  *handlers.ResumeHandler
	Upload  *handlers.UploadHandler
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{
		cfg:      cfg,
		registry: components.DefaultRegistry(),
	}
	app.renderer = render.NewRenderer(app.registry)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	if err := app.createIndexes(); err != nil {
		return nil, err
	}

	app.initCache()
	app.initRepositories()
	app.initServices()
	app.initHandlers()

	app.rateLimiter = middleware.NewRateLimitManager(context.Background())

	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
		"platform":    a.cfg.PlatformDomain,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.rateLimiter != nil {
		a.rateLimiter.Shutdown()
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(
		&models.User{},
		&models.Website{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) createIndexes() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Creating database indexes", nil)

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_websites_published ON websites(published) WHERE published = true",
		"CREATE INDEX IF NOT EXISTS idx_websites_user_id ON websites(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_websites_updated_at ON websites(updated_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_websites_components ON websites USING GIN (components)",
	}

	for _, stmt := range statements {
		if err := a.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func (a *Application) initCache() {
	if a.cfg.EnableCache {
		a.cache = cache.NewCache(a.cfg.RedisURL, true)
	} else {
		a.cache = cache.NewCache("", false)
	}
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		User:    repository.NewUserRepository(a.db),
		Website: repository.NewWebsiteRepository(a.db),
	}
}

func (a *Application) initServices() {
	websiteService := service.NewWebsiteService(a.repositories.Website, a.registry, a.cache, a.cfg.PlatformDomain)

	var structurer service.ResumeStructurer
	if a.cfg.ResumeAIEnable && a.cfg.OpenAIAPIKey != "" {
		s, err := service.NewOpenAIResumeStructurer(a.cfg.OpenAIAPIKey, service.OpenAIResumeOptions{
			Model: a.cfg.OpenAIModel,
		})
		if err != nil {
			logger.Error(err, "Failed to configure AI resume structuring, falling back to heuristics", nil)
		} else {
			structurer = s
		}
	}

	a.services = serviceContainer{
		Auth:    service.NewAuthService(a.repositories.User, a.cfg.JWTSecret),
		Website: websiteService,
		Resume:  service.NewResumeService(websiteService, a.registry, structurer),
		Upload:  service.NewUploadService(a.cfg.UploadDir, a.cfg.MaxUploadSize),
	}
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Auth:    handlers.NewAuthHandler(a.services.Auth),
		Website: handlers.NewWebsiteHandler(a.services.Website),
		Builder: handlers.NewBuilderHandler(a.registry, a.renderer, a.services.Website),
		Public:  handlers.NewPublicHandler(a.services.Website, a.renderer, a.cache),
		Resume:  handlers.NewResumeHandler(a.services.Resume),
		Upload:  handlers.NewUploadHandler(a.services.Upload),
	}
}

func (a *Application) initRouter() {
	if a.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.Metrics())
	}
	router.Use(middleware.RateLimit(a.rateLimiter, a.cfg.RateLimitRequests, a.cfg.RateLimitWindow, a.cfg.RateLimitBurst))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.Static("/uploads", a.cfg.UploadDir)

	optionalAuth := middleware.OptionalAuthMiddleware(a.cfg.JWTSecret)

	// Published sites answer on the bare host so custom domains pointed at
	// the platform resolve without any path.
	router.GET("/", optionalAuth, a.handlers.Public.ServeSite)

	v1 := router.Group("/api/v1")
	{
		public := v1.Group("")
		{
			public.POST("/register", a.handlers.Auth.Register)
			public.POST("/login", a.handlers.Auth.Login)
			public.POST("/refresh", a.handlers.Auth.RefreshToken)

			public.GET("/templates", a.handlers.Website.ListTemplates)
			public.GET("/components", a.handlers.Builder.GetComponentTypes)

			public.GET("/sites/:domain", optionalAuth, a.handlers.Public.ServeSite)
			public.GET("/sites/:domain/document", optionalAuth, a.handlers.Public.Resolve)
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(a.cfg.JWTSecret))
		{
			protected.GET("/me", a.handlers.Auth.GetCurrentUser)
			protected.PUT("/profile", a.handlers.Auth.UpdateProfile)
			protected.PUT("/profile/password", a.handlers.Auth.ChangePassword)

			protected.GET("/builder/config", a.handlers.Builder.GetConfig)

			protected.POST("/websites", a.handlers.Website.Create)
			protected.GET("/websites", a.handlers.Website.List)
			protected.GET("/websites/:id", a.handlers.Website.Get)
			protected.PUT("/websites/:id", a.handlers.Website.Update)
			protected.DELETE("/websites/:id", a.handlers.Website.Delete)
			protected.POST("/websites/:id/duplicate", a.handlers.Website.Duplicate)
			protected.PUT("/websites/:id/domain", a.handlers.Website.Rename)
			protected.PUT("/websites/:id/publish", a.handlers.Website.Publish)
			protected.PUT("/websites/:id/unpublish", a.handlers.Website.Unpublish)
			protected.PUT("/websites/:id/reorder", a.handlers.Website.ReorderComponents)

			protected.POST("/websites/:id/components", a.handlers.Website.AddComponent)
			protected.PUT("/websites/:id/components/:componentId", a.handlers.Website.UpdateComponent)
			protected.DELETE("/websites/:id/components/:componentId", a.handlers.Website.RemoveComponent)
			protected.POST("/websites/:id/components/:componentId/duplicate", a.handlers.Website.DuplicateComponent)

			protected.GET("/websites/:id/render", a.handlers.Builder.RenderEdit)
			protected.GET("/websites/:id/preview", a.handlers.Public.Preview)

			protected.POST("/resume/parse", a.handlers.Resume.Parse)
			protected.POST("/websites/:id/resume", a.handlers.Resume.Import)

			protected.POST("/uploads/image", a.handlers.Upload.UploadImage)
			protected.POST("/uploads/images", a.handlers.Upload.UploadMultipleImages)
			protected.GET("/uploads", a.handlers.Upload.ListImages)
			protected.DELETE("/uploads/image", a.handlers.Upload.DeleteImage)
			protected.POST("/uploads/avatar", a.handlers.Upload.InitialAvatar)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Route not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.AbortWithStatus(http.StatusNotFound)
	})

	a.router = router
}
