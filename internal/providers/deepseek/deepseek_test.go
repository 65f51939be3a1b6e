package deepseek

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"unichat/config"
	"unichat/internal/core"
)

func staticKey(key string) config.KeyFunc {
	return func() string { return key }
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name         string
		statusCode   int
		responseBody string
		wantText     string
		wantErr      string
	}{
		{
			name:       "successful request",
			statusCode: http.StatusOK,
			responseBody: `{
				"id": "ds-1",
				"choices": [{
					"index": 0,
					"message": {"role": "assistant", "content": "42"},
					"finish_reason": "stop"
				}]
			}`,
			wantText: "42",
		},
		{
			name:         "API error includes vendor and status",
			statusCode:   http.StatusServiceUnavailable,
			responseBody: `{"error": {"message": "overloaded"}}`,
			wantErr:      "DeepSeek API error: 503",
		},
		{
			name:         "malformed success body",
			statusCode:   http.StatusOK,
			responseBody: `{"choices": []}`,
			wantErr:      "malformed response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Authorization"); got != "Bearer test-api-key" {
					t.Errorf("Authorization = %q, want %q", got, "Bearer test-api-key")
				}
				if r.URL.Path != "/chat/completions" {
					t.Errorf("path = %q, want /chat/completions", r.URL.Path)
				}
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			adapter := New(nil, staticKey("test-api-key"))
			adapter.SetBaseURL(server.URL)

			text, err := adapter.Complete(context.Background(), "deepseek-chat", []core.Message{
				{Role: "user", Content: "What is the answer?"},
			}, 0.7)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
		})
	}
}

func TestComplete_RequestPayload(t *testing.T) {
	var captured []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	adapter := New(nil, staticKey("test-api-key"))
	adapter.SetBaseURL(server.URL)

	messages := []core.Message{
		{Role: "system", Content: "Be brief"},
		{Role: "user", Content: "Hello"},
	}
	if _, err := adapter.Complete(context.Background(), "deepseek-reasoner", messages, 1.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload struct {
		Model       string         `json:"model"`
		Messages    []core.Message `json:"messages"`
		Temperature float64        `json:"temperature"`
		MaxTokens   int            `json:"max_tokens"`
	}
	if err := json.Unmarshal(captured, &payload); err != nil {
		t.Fatalf("failed to unmarshal captured payload: %v", err)
	}

	if payload.Model != "deepseek-reasoner" {
		t.Errorf("model = %q, want deepseek-reasoner", payload.Model)
	}
	if payload.Temperature != 1.1 {
		t.Errorf("temperature = %v, want 1.1", payload.Temperature)
	}
	if payload.MaxTokens != 2048 {
		t.Errorf("max_tokens = %d, want 2048", payload.MaxTokens)
	}
	if len(payload.Messages) != 2 {
		t.Errorf("len(messages) = %d, want 2 (passthrough)", len(payload.Messages))
	}
}

func TestComplete_MissingKey(t *testing.T) {
	adapter := New(nil, staticKey(""))

	_, err := adapter.Complete(context.Background(), "deepseek-chat", []core.Message{{Role: "user", Content: "hi"}}, 0.7)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "DeepSeek API key not configured") {
		t.Errorf("error = %q, want substring %q", err.Error(), "DeepSeek API key not configured")
	}
}
