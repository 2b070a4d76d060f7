package service

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/port"
	"taskapi/pkg/logging"
	"taskapi/pkg/tracing"
)

// EventAssistantGenerate is the durable event consumed by the background
// worker.
const EventAssistantGenerate = "assistant.generate"

// AssistantService fronts the LLM provider with two entry points: Generate
// dispatches a durable event and returns immediately; Invoke calls the
// provider synchronously with full observability logging.
type AssistantService struct {
	provider   port.LLMProvider
	dispatcher port.EventDispatcher
	logger     *logging.AppLogger
	metrics    *tracing.AppMetrics
}

func NewAssistantService(provider port.LLMProvider, dispatcher port.EventDispatcher, logger *logging.AppLogger, metrics *tracing.AppMetrics) *AssistantService {
	return &AssistantService{
		provider:   provider,
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

func (s *AssistantService) Generate(ctx context.Context, query string) (string, error) {
	if s.dispatcher == nil {
		return "", domain.NewProviderError(errors.New("event dispatcher is not configured"))
	}

	ctx, span := tracing.CreateChildSpan(ctx, "assistant.generate.dispatch", []attribute.KeyValue{
		attribute.String("assistant.event", EventAssistantGenerate),
		attribute.Int("assistant.query_length", len(query)),
	})

	defer span.End()

	eventID, err := s.dispatcher.Dispatch(ctx, EventAssistantGenerate, map[string]any{
		"query": query,
	})

	if err != nil {
		tracing.AddSpanError(span, err)

		s.logger.Logger.Ctx(ctx).Error("Failed to dispatch assistant event",
			zap.Error(err),
		)

		if s.metrics != nil {
			s.metrics.RecordLLMInvocation(ctx, "generate", "dispatch_error")
		}

		return "", domain.NewProviderError(err)
	}

	if s.metrics != nil {
		s.metrics.RecordLLMInvocation(ctx, "generate", "dispatched")
	}

	return eventID, nil
}

func (s *AssistantService) Invoke(ctx context.Context, question string) (string, error) {
	ctx, span := tracing.CreateChildSpan(ctx, "assistant.invoke", []attribute.KeyValue{
		attribute.Int("assistant.prompt_length", len(question)),
	})

	defer span.End()

	start := time.Now()
	answer, err := s.provider.Invoke(ctx, question)
	latency := time.Since(start)

	if err != nil {
		tracing.AddSpanError(span, err)

		s.logger.Logger.Ctx(ctx).Error("LLM invocation failed",
			zap.Error(err),
			zap.Duration("latency", latency),
			zap.Int("prompt_length", len(question)),
		)

		if s.metrics != nil {
			s.metrics.RecordLLMInvocation(ctx, "invoke", "error")
		}

		return "", err
	}

	span.SetAttributes(attribute.Int("assistant.response_length", len(answer)))

	s.logger.Logger.Ctx(ctx).Info("LLM invocation completed",
		zap.Duration("latency", latency),
		zap.Int("prompt_length", len(question)),
		zap.Int("response_length", len(answer)),
	)

	if s.metrics != nil {
		s.metrics.RecordLLMInvocation(ctx, "invoke", "success")
	}

	return answer, nil
}
