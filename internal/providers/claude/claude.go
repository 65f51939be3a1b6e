// Package claude provides Anthropic Claude API integration for the gateway.
package claude

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
	defaultBaseURL   = "https://api.anthropic.com/v1"
	apiVersionHeader = "2023-06-01"
	maxTokens        = 2048
	replyPath        = "content.0.text"
)

// Adapter implements core.Adapter for Claude.
type Adapter struct {
	httpClient *http.Client
	apiKey     config.KeyFunc
	baseURL    string
}

// New creates a new Claude adapter using the shared HTTP client.
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

// messagesRequest represents the Anthropic messages request format
type messagesRequest struct {
	Model       string         `json:"model"`
	Messages    []core.Message `json:"messages"`
	MaxTokens   int            `json:"max_tokens"`
	Temperature float64        `json:"temperature"`
}

// filterSystemMessages drops messages with role "system". Claude's separate
// system-prompt mechanism is not used; system messages are silently dropped,
// not translated. Flagged for product review, preserved here for
// compatibility.
func filterSystemMessages(messages []core.Message) []core.Message {
	out := make([]core.Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == "system" {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Complete sends a messages request to Claude and returns the reply text.
func (a *Adapter) Complete(ctx context.Context, model string, messages []core.Message, temperature float64) (string, error) {
	key := a.apiKey()
	if key == "" {
		return "", core.NewConfigError(core.ProviderClaude)
	}

	body, err := json.Marshal(messagesRequest{
		Model:       model,
		Messages:    filterSystemMessages(messages),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", core.NewInvalidRequestError("failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return "", core.NewInvalidRequestError("failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", key)
	httpReq.Header.Set("anthropic-version", apiVersionHeader)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return "", core.NewTransportError(core.ProviderClaude, err)
	}
	defer func() {
		_ = resp.Body.Close() //nolint:errcheck
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", core.NewTransportError(core.ProviderClaude, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", core.NewUpstreamError(core.ProviderClaude, resp.StatusCode, respBody)
	}

	text := gjson.GetBytes(respBody, replyPath)
	if !text.Exists() {
		return "", core.NewMalformedResponseError(core.ProviderClaude, replyPath)
	}
	return text.String(), nil
}
