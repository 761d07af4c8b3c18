package app

import (
	"context"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	userRepo, jobRepo := buildRepositories(cfg)

	router := SetupRouter(cfg, userRepo, jobRepo)

	logger.Info("Server starting", "address", cfg.Address(), "auth_enabled", cfg.Auth.Enabled)
	if err := router.Run(cfg.Address()); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// buildRepositories connects to the configured document store. Without
// a database URI the in-memory stores are used, which is only suitable
// for local development.
func buildRepositories(cfg *config.Config) (repositories.UserRepository, repositories.JobRepository) {
	if cfg.Database.URI == "" {
		logger.Warn("No database URI configured, using in-memory stores")
		return repositories.NewMemoryUserRepository(), repositories.NewMemoryJobRepository()
	}

	logger.Info("Connecting to database...", "db", cfg.Database.Name)
	db, err := repositories.Connect(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	if err := repositories.EnsureIndexes(context.Background(), db); err != nil {
		logger.Fatal("Failed to ensure indexes", "error", err)
	}
	logger.Info("Database connected")

	return repositories.NewUserRepository(db), repositories.NewJobRepository(db)
}

// SetupRouter assembles services, handlers and middleware over the given
// repositories. Tests inject in-memory repositories here.
func SetupRouter(cfg *config.Config, userRepo repositories.UserRepository, jobRepo repositories.JobRepository) *gin.Engine {
	tokens := auth.NewTokenService(cfg)

	serviceContainer := &services.ServiceContainer{
		AuthService: services.NewAuthService(userRepo, tokens),
		UserService: services.NewUserService(userRepo),
		JobService:  services.NewJobService(jobRepo),
	}

	appHandlers := initializeHandlers(serviceContainer)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	var requireAuth gin.HandlerFunc
	if cfg.Auth.Enabled {
		requireAuth = middleware.RequireAuth(tokens, userRepo)
	}

	routes.RegisterRoutes(router, cfg, appHandlers, requireAuth)

	return router
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		UserHandler: handlers.NewUserHandler(baseHandler, serviceContainer.UserService),
		JobHandler:  handlers.NewJobHandler(baseHandler, serviceContainer.JobService),
	}
}
