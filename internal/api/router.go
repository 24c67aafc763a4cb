package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/jobboard/job-board-api/docs"
	"github.com/jobboard/job-board-api/internal/api/handler"
	"github.com/jobboard/job-board-api/internal/api/middleware"
	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/service"
	mongodb "github.com/jobboard/job-board-api/internal/infrastructure/db/mongo"
	redisdb "github.com/jobboard/job-board-api/internal/infrastructure/db/redis"
)

// RouterConfig carries the settings the router needs beyond its store handles.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobboard"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	applicationRepo := mongodb.NewApplicationRepository(db)
	tokenStore := redisdb.NewTokenStore(rdb)

	authService := service.NewAuthService(userRepo, roleRepo, tokenStore, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, roleRepo, log)
	jobService := service.NewJobService(jobRepo, log)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)

	authMW := middleware.Auth(cfg.JWTSecret, authService)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Authenticated routes ---
	auth := e.Group("", authMW)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/user", authHandler.Me)

	auth.GET("/users", userHandler.List)
	auth.POST("/users", userHandler.Create)
	auth.GET("/users/:id", userHandler.Get)
	auth.PUT("/users/:id", userHandler.Update)
	auth.DELETE("/users/:id", userHandler.Delete)
	auth.POST("/users/:id/roles", userHandler.AssignRoles)
	auth.POST("/users/:id/permissions", userHandler.GivePermissions)

	auth.POST("/jobs", jobHandler.Create)
	auth.PUT("/jobs/:id", jobHandler.Update)
	auth.DELETE("/jobs/:id", jobHandler.Delete)
	auth.GET("/user/jobs", jobHandler.List)

	auth.POST("/applications", applicationHandler.Create)
	auth.DELETE("/applications/:id", applicationHandler.Delete)

	// --- Employer routes (coarse role gate; fine checks stay in the policy) ---
	employer := e.Group("/employer", authMW, middleware.RequireRole(domain.RoleEmployer))
	employer.DELETE("/jobs/:id", jobHandler.Delete)
	employer.GET("/applications", applicationHandler.ListForEmployer)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
