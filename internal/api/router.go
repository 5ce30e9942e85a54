package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayfinder/booking-api/internal/api/handler"
	"github.com/stayfinder/booking-api/internal/api/middleware"
	"github.com/stayfinder/booking-api/internal/core/service"
	"github.com/stayfinder/booking-api/internal/infrastructure/config"
	mongostore "github.com/stayfinder/booking-api/internal/infrastructure/db/mongo"
	"github.com/stayfinder/booking-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking_auth"))

	// --- Dependencies ---
	secureCookie := cfg.IsProduction()
	userRepo := mongostore.NewUserRepository(db)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokenService := service.NewJWTTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokenService)

	authHandler := handler.NewAuthHandler(authService, secureCookie)
	userHandler := handler.NewUserHandler(authService, secureCookie)
	sessionMiddleware := middleware.Session(tokenService)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/validate-token", authHandler.ValidateToken, sessionMiddleware)
	auth.POST("/logout", authHandler.Logout)

	// --- User routes ---
	e.POST("/api/users/register", userHandler.Register)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
