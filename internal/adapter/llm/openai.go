package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/port"
)

// Client talks to an OpenAI-compatible chat-completions endpoint. Everything
// beyond "prompt in, text out" stays behind this adapter.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL, model string) port.LLMProvider {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) Invoke(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	})

	if err != nil {
		return "", domain.NewProviderError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))

	if err != nil {
		return "", domain.NewProviderError(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)

	if err != nil {
		return "", domain.NewProviderError(err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return "", domain.NewProviderError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewProviderError(fmt.Errorf("provider returned status %d", resp.StatusCode))
	}

	var parsed chatResponse

	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", domain.NewProviderError(err)
	}

	if len(parsed.Choices) == 0 {
		return "", domain.NewProviderError(errors.New("provider returned no choices"))
	}

	return parsed.Choices[0].Message.Content, nil
}
