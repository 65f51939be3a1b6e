// Package deepseek provides DeepSeek API integration for the gateway.
// DeepSeek exposes an OpenAI-compatible chat completions endpoint.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"unichat/config"
	"unichat/internal/core"
)

const (
	defaultBaseURL = "https://api.deepseek.com/v1"
	maxTokens      = 2048
	replyPath      = "choices.0.message.content"
)

// Adapter implements core.Adapter for DeepSeek.
type Adapter struct {
	httpClient *http.Client
	apiKey     config.KeyFunc
	baseURL    string
}

// New creates a new DeepSeek adapter using the shared HTTP client.
func New(httpClient *http.Client, apiKey config.KeyFunc) *Adapter {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Adapter{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
	}
}

// SetBaseURL allows configuring a custom base URL for the adapter
func (a *Adapter) SetBaseURL(url string) {
	a.baseURL = url
}

// chatRequest represents the DeepSeek chat completions request format
type chatRequest struct {
	Model       string         `json:"model"`
	Messages    []core.Message `json:"messages"`
	Temperature float64        `json:"temperature"`
	MaxTokens   int            `json:"max_tokens"`
}

// Complete sends a chat completion request to DeepSeek and returns the reply text.
func (a *Adapter) Complete(ctx context.Context, model string, messages []core.Message, temperature float64) (string, error) {
	key := a.apiKey()
	if key == "" {
		return "", core.NewConfigError(core.ProviderDeepSeek)
	}

	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", core.NewInvalidRequestError("failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", core.NewInvalidRequestError("failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+key)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return "", core.NewTransportError(core.ProviderDeepSeek, err)
	}
	defer func() {
		_ = resp.Body.Close() //nolint:errcheck
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", core.NewTransportError(core.ProviderDeepSeek, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", core.NewUpstreamError(core.ProviderDeepSeek, resp.StatusCode, respBody)
	}

	text := gjson.GetBytes(respBody, replyPath)
	if !text.Exists() {
		return "", core.NewMalformedResponseError(core.ProviderDeepSeek, replyPath)
	}
	return text.String(), nil
}
