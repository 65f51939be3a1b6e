// Package providers wires the per-vendor adapters behind a single dispatcher.
package providers

import (
	"context"
	"net/http"

	"unichat/config"
	"unichat/internal/core"
	"unichat/internal/providers/claude"
	"unichat/internal/providers/deepseek"
	"unichat/internal/providers/gemini"
	"unichat/internal/providers/openai"
)

// Dispatcher routes a chat call to the adapter for a provider tag. The
// tag→adapter map is built once at startup; the provider set is closed.
type Dispatcher struct {
	adapters map[core.Provider]core.Adapter
}

// NewDispatcher builds a dispatcher over all four vendor adapters, sharing
// one pooled HTTP client.
func NewDispatcher(httpClient *http.Client, secrets config.Secrets) *Dispatcher {
	return &Dispatcher{
		adapters: map[core.Provider]core.Adapter{
			core.ProviderOpenAI:   openai.New(httpClient, secrets.OpenAI),
			core.ProviderClaude:   claude.New(httpClient, secrets.Claude),
			core.ProviderGemini:   gemini.New(httpClient, secrets.Gemini),
			core.ProviderDeepSeek: deepseek.New(httpClient, secrets.DeepSeek),
		},
	}
}

// Chat forwards the call to the matching adapter unchanged. An unknown tag
// fails with a dispatch error; boundary validation normally makes that
// unreachable.
func (d *Dispatcher) Chat(ctx context.Context, provider core.Provider, model string, messages []core.Message, temperature float64) (string, error) {
	adapter, ok := d.adapters[provider]
	if !ok {
		return "", core.NewDispatchError(provider)
	}
	return adapter.Complete(ctx, model, messages, temperature)
}
