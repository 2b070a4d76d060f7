package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"taskapi/internal/adapter/http/handler"
	"taskapi/internal/adapter/http/middleware"
	"taskapi/internal/core/port"
	"taskapi/pkg/config"
	"taskapi/pkg/logging"
	"taskapi/pkg/tracing"
)

type HandlersConfig struct {
	AuthService      port.AuthService
	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	TodoHandler      *handler.TodoHandler
	AssistantHandler *handler.AssistantHandler
	RateLimiter      *middleware.RateLimiter
}

func SetupRouterWithConfig(handlers HandlersConfig, logger *logging.AppLogger, metrics *tracing.AppMetrics, cfg *config.AppConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(otelgin.Middleware("taskapi"))
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	if metrics != nil {
		router.Use(middleware.MetricsMiddleware(metrics))
	}

	registerLimiter := gin.HandlerFunc(nil)

	if cfg.RateLimitEnabled && handlers.RateLimiter != nil {
		registerLimiter = handlers.RateLimiter.Middleware(
			middleware.Quota{Requests: 5, Window: time.Hour},
			middleware.ClientIP,
		)
	}

	setupPublicRoutes(router, handlers, registerLimiter)
	setupProtectedRoutes(router, handlers)

	return router
}

func setupPublicRoutes(router *gin.Engine, handlers HandlersConfig, registerLimiter gin.HandlerFunc) {
	if handlers.AuthHandler != nil {
		auth := router.Group("/auth")
		{
			if registerLimiter != nil {
				auth.POST("/", registerLimiter, handlers.AuthHandler.Register)
			} else {
				auth.POST("/", handlers.AuthHandler.Register)
			}

			auth.POST("/token", handlers.AuthHandler.Login)
		}
	}

	if handlers.AssistantHandler != nil {
		engine := router.Group("/ai-engine")
		{
			engine.POST("/generate", handlers.AssistantHandler.Generate)
			engine.POST("/invoke", handlers.AssistantHandler.Invoke)
		}
	}
}

func setupProtectedRoutes(router *gin.Engine, handlers HandlersConfig) {
	authenticated := middleware.Authenticated(handlers.AuthService)

	if handlers.UserHandler != nil {
		users := router.Group("/users")
		users.Use(authenticated)
		{
			users.GET("/me", handlers.UserHandler.GetMe)
			users.PUT("/change-password", handlers.UserHandler.ChangePassword)
		}
	}

	if handlers.TodoHandler != nil {
		todos := router.Group("/todos")
		todos.Use(authenticated)
		{
			todos.POST("/", handlers.TodoHandler.Create)
			todos.GET("/", handlers.TodoHandler.GetAll)
			todos.GET("/:id", handlers.TodoHandler.GetByID)
			todos.PUT("/:id", handlers.TodoHandler.Update)
			todos.PUT("/:id/complete", handlers.TodoHandler.Complete)
			todos.DELETE("/:id", handlers.TodoHandler.Delete)
		}
	}
}

// SetupRouterForTests wires the same routes without telemetry, rate limiting
// or structured request logging.
func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORS(nil))

	setupPublicRoutes(router, handlers, nil)
	setupProtectedRoutes(router, handlers)

	return router
}
