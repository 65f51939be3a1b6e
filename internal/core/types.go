package core

// Provider identifies one of the supported upstream LLM vendors.
// The set is closed; there is no dynamic registration.
type Provider string

const (
	ProviderOpenAI   Provider = "openai"
	ProviderClaude   Provider = "claude"
	ProviderGemini   Provider = "gemini"
	ProviderDeepSeek Provider = "deepseek"
)

// DefaultTemperature is applied at the HTTP boundary when a chat request
// omits the temperature field.
const DefaultTemperature = 0.7

// Providers returns the closed set of supported provider tags in a stable order.
func Providers() []Provider {
	return []Provider{ProviderOpenAI, ProviderClaude, ProviderGemini, ProviderDeepSeek}
}

// Valid reports whether p is one of the supported provider tags.
func (p Provider) Valid() bool {
	switch p {
	case ProviderOpenAI, ProviderClaude, ProviderGemini, ProviderDeepSeek:
		return true
	}
	return false
}

// DisplayName returns the vendor name as it appears in user-facing error
// messages ("OpenAI API error: ...").
func (p Provider) DisplayName() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderClaude:
		return "Claude"
	case ProviderGemini:
		return "Gemini"
	case ProviderDeepSeek:
		return "DeepSeek"
	}
	return string(p)
}

// Message represents a single message in the conversation. Role is free-form
// text; adapters apply their own vendor-specific role handling.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents the incoming chat request. Temperature is a pointer
// so an absent field can be distinguished from an explicit zero.
type ChatRequest struct {
	Provider    Provider  `json:"provider"`
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature"`
}

// ChatResponse is the uniform envelope returned by the chat endpoint.
// Exactly one of Response/Error is set; the other serializes as JSON null.
type ChatResponse struct {
	Success  bool    `json:"success"`
	Response *string `json:"response"`
	Error    *string `json:"error"`
}

// NewSuccessResponse wraps reply text in a success envelope.
func NewSuccessResponse(text string) ChatResponse {
	return ChatResponse{Success: true, Response: &text}
}

// NewErrorResponse wraps a failure message in an error envelope.
func NewErrorResponse(message string) ChatResponse {
	return ChatResponse{Success: false, Error: &message}
}
