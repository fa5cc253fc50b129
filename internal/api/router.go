package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/comanda/ordering-system/docs"
	"github.com/comanda/ordering-system/internal/api/handler"
	"github.com/comanda/ordering-system/internal/api/middleware"
	"github.com/comanda/ordering-system/internal/core/domain"
	"github.com/comanda/ordering-system/internal/core/service"
	gormdb "github.com/comanda/ordering-system/internal/infrastructure/db/gorm"
	redisdb "github.com/comanda/ordering-system/internal/infrastructure/db/redis"
	"github.com/comanda/ordering-system/internal/infrastructure/http/handlers"
	"github.com/comanda/ordering-system/internal/pkg/config"
	"github.com/comanda/ordering-system/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ordering"))

	// --- Dependencies ---
	userRepo := gormdb.NewUserRepository(db)
	orderRepo := gormdb.NewOrderRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	authService := service.NewAuthService(userRepo, sessions, cfg.SessionSecret, cfg.SessionTTL)
	userService := service.NewUserService(userRepo)
	orderService := service.NewOrderService(orderRepo)

	authHandler := handler.NewAuthHandler(authService, cfg.Env == "production")
	userHandler := handler.NewUserHandler(userService)
	orderHandler := handler.NewOrderHandler(orderService)

	authenticated := middleware.Session(cfg.SessionSecret, sessions)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout, authenticated)

	// --- User routes ---
	e.GET("/users", userHandler.List, authenticated, adminOnly)
	e.GET("/users/:id", userHandler.Get, authenticated, adminOnly)
	e.POST("/users", userHandler.Create)
	e.PUT("/users/:id", userHandler.Update, authenticated)
	e.DELETE("/users/:id", userHandler.Delete, authenticated, adminOnly)

	// --- Order routes ---
	e.GET("/orders", orderHandler.List, authenticated, adminOnly)
	e.GET("/orders/:id", orderHandler.Get, authenticated, adminOnly)
	e.POST("/orders", orderHandler.Create, authenticated)
	e.PUT("/orders/:id", orderHandler.Update, authenticated, adminOnly)
	e.DELETE("/orders/:id", orderHandler.Delete, authenticated, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
