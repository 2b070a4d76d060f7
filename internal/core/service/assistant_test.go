package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/service"
	"taskapi/pkg/logging"
)

type fakeProvider struct {
	answer string
	err    error
	prompt string
}

func (p *fakeProvider) Invoke(ctx context.Context, prompt string) (string, error) {
	p.prompt = prompt

	if p.err != nil {
		return "", p.err
	}

	return p.answer, nil
}

type fakeDispatcher struct {
	eventID string
	err     error
	event   string
	payload map[string]any
}

func (d *fakeDispatcher) Dispatch(ctx context.Context, event string, payload map[string]any) (string, error) {
	d.event = event
	d.payload = payload

	if d.err != nil {
		return "", d.err
	}

	return d.eventID, nil
}

func nopAppLogger() *logging.AppLogger {
	return &logging.AppLogger{
		Logger:      otelzap.New(zap.NewNop()),
		ServiceName: "test",
	}
}

func TestAssistantGenerate_DispatchesEvent(t *testing.T) {
	dispatcher := &fakeDispatcher{eventID: "1700000000000-0"}
	svc := service.NewAssistantService(&fakeProvider{}, dispatcher, nopAppLogger(), nil)

	eventID, err := svc.Generate(context.Background(), "plan my week")

	assert.NoError(t, err)
	assert.Equal(t, "1700000000000-0", eventID)
	assert.Equal(t, service.EventAssistantGenerate, dispatcher.event)
	assert.Equal(t, "plan my week", dispatcher.payload["query"])
}

func TestAssistantGenerate_DispatchFailure(t *testing.T) {
	dispatcher := &fakeDispatcher{err: errors.New("stream unavailable")}
	svc := service.NewAssistantService(&fakeProvider{}, dispatcher, nopAppLogger(), nil)

	_, err := svc.Generate(context.Background(), "plan my week")

	domainErr, ok := domain.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, domainErr.Status)
}

func TestAssistantGenerate_NoDispatcher(t *testing.T) {
	svc := service.NewAssistantService(&fakeProvider{}, nil, nopAppLogger(), nil)

	_, err := svc.Generate(context.Background(), "plan my week")

	domainErr, ok := domain.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, domainErr.Status)
}

func TestAssistantInvoke_ReturnsProviderAnswer(t *testing.T) {
	provider := &fakeProvider{answer: "Here is your plan."}
	svc := service.NewAssistantService(provider, &fakeDispatcher{}, nopAppLogger(), nil)

	answer, err := svc.Invoke(context.Background(), "plan my week")

	assert.NoError(t, err)
	assert.Equal(t, "Here is your plan.", answer)
	assert.Equal(t, "plan my week", provider.prompt)
}

func TestAssistantInvoke_ProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: domain.NewProviderError(errors.New("timeout"))}
	svc := service.NewAssistantService(provider, &fakeDispatcher{}, nopAppLogger(), nil)

	_, err := svc.Invoke(context.Background(), "plan my week")

	domainErr, ok := domain.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, domainErr.Status)
}
