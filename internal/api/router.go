package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/tasktrail/task-api/docs"
	"github.com/tasktrail/task-api/internal/api/handler"
	"github.com/tasktrail/task-api/internal/api/middleware"
	"github.com/tasktrail/task-api/internal/core/service"
	"github.com/tasktrail/task-api/internal/infrastructure/config"
	mongodb "github.com/tasktrail/task-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tasktrail/task-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// The shared-secret gate covers every API route, /login included; only the
// ops surfaces (root, health, metrics, swagger) are open.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskapi"))

	// --- Dependencies ---
	sequences := mongodb.NewSequences(db)
	taskRepo := mongodb.NewTaskRepository(db, sequences)
	userRepo := mongodb.NewUserRepository(db, sequences, taskRepo)
	denylist := redisdb.NewDenylist(rdb)

	issuer := service.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, issuer, denylist, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)

	apiKey := middleware.APIKey(cfg.APIKey)
	bearer := middleware.Auth(issuer, userRepo, denylist)

	// --- Open ops surfaces ---
	infoHandler := handler.NewInfoHandler()
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", infoHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Auth routes (shared secret only) ---
	e.POST("/register", authHandler.Register, apiKey)
	e.POST("/login", authHandler.Login, apiKey)

	// --- User-scoped routes (shared secret + bearer) ---
	e.POST("/logout", authHandler.Logout, apiKey, bearer)

	tasks := e.Group("/tasks", apiKey, bearer)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	return e
}
