package claude

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
				"id": "msg_01",
				"type": "message",
				"role": "assistant",
				"content": [{"type": "text", "text": "Hi there."}],
				"model": "claude-3-5-sonnet-20241022",
				"stop_reason": "end_turn"
			}`,
			wantText: "Hi there.",
		},
		{
			name:         "API error includes vendor and status",
			statusCode:   http.StatusTooManyRequests,
			responseBody: `{"error": {"type": "rate_limit_error"}}`,
			wantErr:      "Claude API error: 429",
		},
		{
			name:         "malformed success body",
			statusCode:   http.StatusOK,
			responseBody: `{"content": []}`,
			wantErr:      "malformed response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("x-api-key"); got != "test-api-key" {
					t.Errorf("x-api-key = %q, want test-api-key", got)
				}
				if got := r.Header.Get("anthropic-version"); got != "2023-06-01" {
					t.Errorf("anthropic-version = %q, want 2023-06-01", got)
				}
				if r.URL.Path != "/messages" {
					t.Errorf("path = %q, want /messages", r.URL.Path)
				}
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			adapter := New(nil, staticKey("test-api-key"))
			adapter.SetBaseURL(server.URL)

			text, err := adapter.Complete(context.Background(), "claude-3-5-sonnet-20241022", []core.Message{
				{Role: "user", Content: "Hello"},
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

// System-role messages are dropped from the forwarded payload, not
// translated into Claude's system-prompt field.
func TestComplete_DropsSystemMessages(t *testing.T) {
	var captured []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"ok"}]}`))
	}))
	defer server.Close()

	adapter := New(nil, staticKey("test-api-key"))
	adapter.SetBaseURL(server.URL)

	messages := []core.Message{
		{Role: "system", Content: "You are terse"},
		{Role: "user", Content: "Hello"},
		{Role: "assistant", Content: "Hi"},
		{Role: "user", Content: "Bye"},
	}
	if _, err := adapter.Complete(context.Background(), "claude-3-opus-20240229", messages, 0.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload struct {
		Model       string         `json:"model"`
		Messages    []core.Message `json:"messages"`
		MaxTokens   int            `json:"max_tokens"`
		Temperature float64        `json:"temperature"`
	}
	if err := json.Unmarshal(captured, &payload); err != nil {
		t.Fatalf("failed to unmarshal captured payload: %v", err)
	}

	if len(payload.Messages) != 3 {
		t.Fatalf("len(messages) = %d, want 3 (system dropped)", len(payload.Messages))
	}
	for _, m := range payload.Messages {
		if m.Role == "system" {
			t.Errorf("system message leaked into payload: %+v", m)
		}
	}
	if payload.MaxTokens != 2048 {
		t.Errorf("max_tokens = %d, want 2048", payload.MaxTokens)
	}
	if payload.Temperature != 0.5 {
		t.Errorf("temperature = %v, want 0.5", payload.Temperature)
	}
}

func TestComplete_MissingKey(t *testing.T) {
	adapter := New(nil, staticKey(""))

	_, err := adapter.Complete(context.Background(), "claude-3-haiku-20240307", []core.Message{{Role: "user", Content: "hi"}}, 0.7)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Claude API key not configured") {
		t.Errorf("error = %q, want substring %q", err.Error(), "Claude API key not configured")
	}
}
