package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/mdtreza/booking-api/internal/api/handler"
	"github.com/mdtreza/booking-api/internal/api/middleware"
	"github.com/mdtreza/booking-api/internal/core/domain"
	"github.com/mdtreza/booking-api/internal/core/service"
	"github.com/mdtreza/booking-api/internal/infrastructure/config"
	mysqldb "github.com/mdtreza/booking-api/internal/infrastructure/db/mysql"
	redisdb "github.com/mdtreza/booking-api/internal/infrastructure/db/redis"
	"github.com/mdtreza/booking-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; Redis-backed features then fall back to in-process
// equivalents.
func NewRouter(cfg *config.Config, db *sql.DB, rdb *goredis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get(), cfg.Env)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("booking"))

	var counter middleware.Counter
	if rdb != nil {
		counter = redisdb.NewWindowCounter(rdb)
	} else {
		counter = middleware.NewMemoryCounter()
	}
	e.Use(middleware.RateLimit(cfg.RateLimit, counter))

	// --- Dependencies ---
	userRepo := mysqldb.NewUserRepository(db)
	serviceRepo := mysqldb.NewServiceRepository(db)
	reservationRepo := mysqldb.NewReservationRepository(db)

	tokenService := service.NewTokenService(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	authService := service.NewAuthService(userRepo, tokenService, cfg.Auth.BcryptCost, logger.Get())
	catalogService := service.NewCatalogService(serviceRepo, logger.Get())
	reservationService := service.NewReservationService(reservationRepo, serviceRepo, logger.Get())

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	adminUserHandler := handler.NewAdminUserHandler(userRepo)

	authRequired := middleware.Auth(tokenService, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- User routes ---
	users := e.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/refresh-token", authHandler.RefreshToken)
	users.GET("/profile", authHandler.Profile, authRequired)

	// --- Service catalog ---
	services := e.Group("/services")
	services.GET("", catalogHandler.List)
	services.GET("/:id", catalogHandler.Get)
	services.POST("/add", catalogHandler.Create, authRequired, adminOnly)
	services.PUT("/:id", catalogHandler.Update, authRequired, adminOnly)
	services.DELETE("/:id", catalogHandler.Delete, authRequired, adminOnly)

	// --- Reservations ---
	reservations := e.Group("/reservations", authRequired)
	reservations.POST("", reservationHandler.Create)
	reservations.GET("/myreservations", reservationHandler.MyReservations)
	reservations.PUT("/:id/cancel", reservationHandler.Cancel)
	reservations.GET("", reservationHandler.ListAll, adminOnly)
	reservations.DELETE("/:id", reservationHandler.Delete, adminOnly)

	// --- Admin ---
	admin := e.Group("/admin", authRequired, adminOnly)
	admin.GET("/users", adminUserHandler.List)
	admin.DELETE("/users/:id", adminUserHandler.Delete)

	// --- Weather ---
	if cfg.Weather.APIKey != "" {
		weatherHandler := handler.NewWeatherHandler(cfg.Weather)
		e.GET("/weather", weatherHandler.Current)
	}

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
