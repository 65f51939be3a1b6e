package core

import "context"

// Adapter is the per-vendor translation unit: it builds the vendor request,
// issues the call over the shared transport and returns the extracted reply
// text.
type Adapter interface {
	Complete(ctx context.Context, model string, messages []Message, temperature float64) (string, error)
}

// Chatter routes a chat call to the adapter for a provider tag. Implemented
// by the dispatcher; the HTTP service depends on this interface so tests can
// substitute fakes.
type Chatter interface {
	Chat(ctx context.Context, provider Provider, model string, messages []Message, temperature float64) (string, error)
}
