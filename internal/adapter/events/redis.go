package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"taskapi/internal/core/port"
)

const stream = "taskapi:events"

var _ port.EventDispatcher = (*Dispatcher)(nil)

// Dispatcher publishes durable events to a Redis stream. The stream entry id
// doubles as the event id returned to callers.
type Dispatcher struct {
	client *redis.Client
}

func NewDispatcher(redisURL string) (*Dispatcher, error) {
	opts, err := redis.ParseURL(redisURL)

	if err != nil {
		return nil, err
	}

	return &Dispatcher{client: redis.NewClient(opts)}, nil
}

func (d *Dispatcher) Dispatch(ctx context.Context, event string, payload map[string]any) (string, error) {
	data, err := json.Marshal(payload)

	if err != nil {
		return "", err
	}

	id, err := d.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{
			"event":   event,
			"payload": string(data),
		},
	}).Result()

	if err != nil {
		return "", err
	}

	slog.Info("Event dispatched", "event", event, "event_id", id)

	return id, nil
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}

// Handler processes one decoded event payload.
type Handler func(ctx context.Context, event string, payload map[string]any)

// Worker consumes the event stream and hands each entry to the handler.
// It blocks until the context is cancelled.
type Worker struct {
	client  *redis.Client
	handler Handler
}

func NewWorker(d *Dispatcher, handler Handler) *Worker {
	return &Worker{
		client:  d.client,
		handler: handler,
	}
}

func (w *Worker) Run(ctx context.Context) {
	lastID := "$"

	for {
		if ctx.Err() != nil {
			return
		}

		streams, err := w.client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{stream, lastID},
			Count:   10,
			Block:   0,
		}).Result()

		if err != nil {
			if ctx.Err() != nil {
				return
			}

			slog.Error("Event stream read failed", "error", err)
			continue
		}

		for _, s := range streams {
			for _, message := range s.Messages {
				lastID = message.ID
				w.dispatch(ctx, message)
			}
		}
	}
}

func (w *Worker) dispatch(ctx context.Context, message redis.XMessage) {
	event, _ := message.Values["event"].(string)
	raw, _ := message.Values["payload"].(string)

	payload := map[string]any{}

	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		slog.Error("Malformed event payload", "event_id", message.ID, "error", err)
		return
	}

	w.handler(ctx, event, payload)
}
