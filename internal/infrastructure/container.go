package infrastructure

import (
	"taskapi/internal/adapter/http/handler"
	"taskapi/internal/adapter/http/middleware"
	"taskapi/internal/core/port"
	"taskapi/internal/core/service"
	"taskapi/pkg/config"
	"taskapi/pkg/logging"
	"taskapi/pkg/password"
	"taskapi/pkg/token"
	"taskapi/pkg/tracing"
)

// Container holds all dependencies
type Container struct {
	// Repositories
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository

	// Services
	AuthService      port.AuthService
	UserService      port.UserService
	TodoService      port.TodoService
	AssistantService port.AssistantService

	// Handlers
	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	TodoHandler      *handler.TodoHandler
	AssistantHandler *handler.AssistantHandler

	RateLimiter *middleware.RateLimiter
}

// NewContainer creates a new dependency container
func NewContainer(
	cfg *config.AppConfig,
	userRepo port.UserRepository,
	todoRepo port.TodoRepository,
	provider port.LLMProvider,
	dispatcher port.EventDispatcher,
	logger *logging.AppLogger,
	metrics *tracing.AppMetrics,
) *Container {
	hasher := password.NewHasher(cfg.BcryptCost)
	codec := token.NewCodec(cfg.AuthSecretKey, cfg.AccessTokenTTL)

	authService := service.NewAuthService(userRepo, hasher, codec)
	userService := service.NewUserService(userRepo, hasher)
	todoService := service.NewTodoService(todoRepo)
	assistantService := service.NewAssistantService(provider, dispatcher, logger, metrics)

	return &Container{
		UserRepo:         userRepo,
		TodoRepo:         todoRepo,
		AuthService:      authService,
		UserService:      userService,
		TodoService:      todoService,
		AssistantService: assistantService,
		AuthHandler:      handler.NewAuthHandler(authService),
		UserHandler:      handler.NewUserHandler(userService),
		TodoHandler:      handler.NewTodoHandler(todoService),
		AssistantHandler: handler.NewAssistantHandler(assistantService),
		RateLimiter:      middleware.NewRateLimiter(logger, metrics),
	}
}
