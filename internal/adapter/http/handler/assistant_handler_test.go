package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"

	"taskapi/internal/adapter/http/handler"
	"taskapi/internal/adapter/http/routes"
	"taskapi/internal/core/domain"
)

type stubAssistant struct {
	eventID string
	answer  string
	err     error
}

func (s *stubAssistant) Generate(ctx context.Context, query string) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	return s.eventID, nil
}

func (s *stubAssistant) Invoke(ctx context.Context, question string) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	return s.answer, nil
}

func assistantRouter(svc *stubAssistant) *gin.Engine {
	gin.SetMode(gin.TestMode)

	return routes.SetupRouterForTests(routes.HandlersConfig{
		AssistantHandler: handler.NewAssistantHandler(svc),
	})
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}

func TestGenerate_Accepted(t *testing.T) {
	RegisterTestingT(t)

	router := assistantRouter(&stubAssistant{eventID: "1700000000000-0"})

	rr := postJSON(router, "/ai-engine/generate", `{"user_query": "plan my week"}`)

	Expect(rr.Code).To(Equal(http.StatusAccepted))
	Expect(rr.Body.String()).To(ContainSubstring(`"event_id":"1700000000000-0"`))
}

func TestGenerate_MissingQuery(t *testing.T) {
	RegisterTestingT(t)

	router := assistantRouter(&stubAssistant{eventID: "1700000000000-0"})

	rr := postJSON(router, "/ai-engine/generate", `{}`)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
	Expect(rr.Body.String()).To(ContainSubstring("VALIDATION_ERROR"))
}

func TestInvoke_ReturnsMessage(t *testing.T) {
	RegisterTestingT(t)

	router := assistantRouter(&stubAssistant{answer: "Here is your plan."})

	rr := postJSON(router, "/ai-engine/invoke", `{"question": "plan my week"}`)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(ContainSubstring(`"message":"Here is your plan."`))
}

func TestInvoke_ProviderFailure(t *testing.T) {
	RegisterTestingT(t)

	router := assistantRouter(&stubAssistant{err: domain.NewProviderError(errors.New("timeout"))})

	rr := postJSON(router, "/ai-engine/invoke", `{"question": "plan my week"}`)

	Expect(rr.Code).To(Equal(http.StatusBadGateway))
	Expect(rr.Body.String()).To(ContainSubstring("PROVIDER_ERROR"))
}
