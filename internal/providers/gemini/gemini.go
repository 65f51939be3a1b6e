// Package gemini provides Google Gemini API integration for the gateway.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"unichat/config"
	"unichat/internal/core"
)

const (
	defaultBaseURL  = "https://generativelanguage.googleapis.com/v1beta"
	maxOutputTokens = 2048
	replyPath       = "candidates.0.content.parts.0.text"
)

// Adapter implements core.Adapter for Gemini.
type Adapter struct {
	httpClient *http.Client
	apiKey     config.KeyFunc
	baseURL    string
}

// New creates a new Gemini adapter using the shared HTTP client.
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

// generateRequest represents the Gemini generateContent request format
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

// content is a single conversation turn in Gemini format
type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generationConfig carries sampling settings inside the request body
type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// convertMessages remaps roles to Gemini's two-role model: "user" and
// "system" both become "user", everything else becomes "model".
func convertMessages(messages []core.Message) []content {
	contents := make([]content, 0, len(messages))
	for _, m := range messages {
		role := "model"
		if m.Role == "user" || m.Role == "system" {
			role = "user"
		}
		contents = append(contents, content{
			Role:  role,
			Parts: []part{{Text: m.Content}},
		})
	}
	return contents
}

// Complete sends a generateContent request to Gemini and returns the reply text.
func (a *Adapter) Complete(ctx context.Context, model string, messages []core.Message, temperature float64) (string, error) {
	key := a.apiKey()
	if key == "" {
		return "", core.NewConfigError(core.ProviderGemini)
	}

	body, err := json.Marshal(generateRequest{
		Contents: convertMessages(messages),
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxOutputTokens,
		},
	})
	if err != nil {
		return "", core.NewInvalidRequestError("failed to marshal request", err)
	}

	// Model name is embedded in the URL path. The native Gemini API takes
	// the API key as a query parameter, not a header; it can end up in
	// access logs, which is accepted at this trust level.
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", a.baseURL, url.PathEscape(model))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", core.NewInvalidRequestError("failed to create request", err)
	}
	q := httpReq.URL.Query()
	q.Add("key", key)
	httpReq.URL.RawQuery = q.Encode()
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return "", core.NewTransportError(core.ProviderGemini, err)
	}
	defer func() {
		_ = resp.Body.Close() //nolint:errcheck
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", core.NewTransportError(core.ProviderGemini, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", core.NewUpstreamError(core.ProviderGemini, resp.StatusCode, respBody)
	}

	text := gjson.GetBytes(respBody, replyPath)
	if !text.Exists() {
		return "", core.NewMalformedResponseError(core.ProviderGemini, replyPath)
	}
	return text.String(), nil
}
