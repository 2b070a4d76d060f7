package port

import (
	"context"
)

// LLMProvider is the single external collaborator for model calls. Failures
// surface as provider errors, never raw transport errors.
type LLMProvider interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// EventDispatcher publishes durable events for asynchronous processing and
// returns the dispatched event id.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event string, payload map[string]any) (string, error)
}

type AssistantService interface {
	Generate(ctx context.Context, query string) (string, error)
	Invoke(ctx context.Context, question string) (string, error)
}
