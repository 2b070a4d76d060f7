package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"taskapi/internal/adapter/database/postgres"
	postgresrepo "taskapi/internal/adapter/database/postgres/repository"
	"taskapi/internal/adapter/database/sqlite"
	sqliterepo "taskapi/internal/adapter/database/sqlite/repository"
	"taskapi/internal/adapter/events"
	"taskapi/internal/adapter/http/routes"
	"taskapi/internal/adapter/llm"
	"taskapi/internal/core/port"
	"taskapi/internal/core/service"
	"taskapi/internal/infrastructure"
	"taskapi/pkg/config"
	"taskapi/pkg/logging"
	"taskapi/pkg/tracing"
)

// StartServerWithConfig wires storage, the event worker and the HTTP router,
// then serves until the context is cancelled.
func StartServerWithConfig(ctx context.Context, cfg *config.AppConfig, logger *logging.AppLogger, metrics *tracing.AppMetrics) error {
	userRepo, todoRepo, closeDB, err := openDatabase(ctx, cfg)

	if err != nil {
		return err
	}

	defer closeDB()

	provider := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)

	var dispatcher port.EventDispatcher

	if cfg.RedisURL != "" {
		redisDispatcher, err := events.NewDispatcher(cfg.RedisURL)

		if err != nil {
			return err
		}

		defer redisDispatcher.Close()

		worker := events.NewWorker(redisDispatcher, generateHandler(provider, logger))
		go worker.Run(ctx)

		dispatcher = redisDispatcher
	} else {
		slog.Warn("REDIS_URL is not set, asynchronous assistant events are disabled")
	}

	container := infrastructure.NewContainer(cfg, userRepo, todoRepo, provider, dispatcher, logger, metrics)

	router := routes.SetupRouterWithConfig(routes.HandlersConfig{
		AuthService:      container.AuthService,
		AuthHandler:      container.AuthHandler,
		UserHandler:      container.UserHandler,
		TodoHandler:      container.TodoHandler,
		AssistantHandler: container.AssistantHandler,
		RateLimiter:      container.RateLimiter,
	}, logger, metrics, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("Server starting", "port", cfg.Port, "environment", cfg.Environment)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func openDatabase(ctx context.Context, cfg *config.AppConfig) (port.UserRepository, port.TodoRepository, func(), error) {
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		db, err := postgres.NewDB(ctx, cfg.DatabaseURL)

		if err != nil {
			return nil, nil, nil, err
		}

		return postgresrepo.NewUserRepository(db), postgresrepo.NewTodoRepository(db), db.Close, nil
	}

	db, err := sqlite.NewDB()

	if err != nil {
		return nil, nil, nil, err
	}

	closeDB := func() {
		db.Close()
	}

	return sqliterepo.NewUserRepository(db), sqliterepo.NewTodoRepository(db), closeDB, nil
}

// generateHandler resolves dispatched generate events by calling the provider
// in the background and logging the outcome.
func generateHandler(provider port.LLMProvider, logger *logging.AppLogger) events.Handler {
	return func(ctx context.Context, event string, payload map[string]any) {
		if event != service.EventAssistantGenerate {
			return
		}

		query, _ := payload["query"].(string)

		start := time.Now()
		answer, err := provider.Invoke(ctx, query)
		latency := time.Since(start)

		if err != nil {
			logger.Logger.Ctx(ctx).Error("Assistant event failed",
				zap.String("event", event),
				zap.Error(err),
				zap.Duration("latency", latency),
			)
			return
		}

		logger.Logger.Ctx(ctx).Info("Assistant event completed",
			zap.String("event", event),
			zap.Duration("latency", latency),
			zap.Int("response_length", len(answer)),
		)
	}
}
