package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/userportal/account-system/internal/api/handler"
	"github.com/userportal/account-system/internal/api/middleware"
	"github.com/userportal/account-system/internal/core/domain"
	"github.com/userportal/account-system/internal/core/service"
	mongodb "github.com/userportal/account-system/internal/infrastructure/db/mongo"
	redisdb "github.com/userportal/account-system/internal/infrastructure/db/redis"
	"github.com/userportal/account-system/internal/infrastructure/http/handlers"
)

// Config carries the router's tunables.
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	sessions := redisdb.NewSessionRegistry(rdb, cfg.TokenTTL)
	accountService := service.NewAccountService(accountRepo, log)
	authService := service.NewAuthService(accountRepo, sessions, cfg.JWTSecret, cfg.TokenTTL, log)

	accountHandler := handler.NewAccountHandler(accountService)
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(accountService)
	authMiddleware := middleware.Auth(cfg.JWTSecret, sessions)

	// --- Auth routes ---
	e.POST("/auth/register", accountHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Profile self-service (any authenticated role) ---
	profile := e.Group("/profile", authMiddleware, middleware.RBAC(domain.RoleAdmin, domain.RoleUser))
	profile.GET("", accountHandler.GetProfile)
	profile.PUT("", accountHandler.UpdateProfile)

	// --- Admin listing ---
	admin := e.Group("/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/dashboard", adminHandler.Dashboard)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
