package core

// modelCatalog is the static per-vendor model list exposed by the models
// endpoint. It is informational only; chat requests are not validated
// against it.
var modelCatalog = map[Provider][]string{
	ProviderOpenAI: {
		"gpt-4o", "gpt-4o-mini", "gpt-4-turbo", "gpt-3.5-turbo", "o1-preview", "o1-mini",
	},
	ProviderClaude: {
		"claude-3-5-sonnet-20241022", "claude-3-5-haiku-20241022",
		"claude-3-opus-20240229", "claude-3-sonnet-20240229", "claude-3-haiku-20240307",
	},
	ProviderGemini: {
		"gemini-1.5-pro", "gemini-1.5-flash", "gemini-1.5-flash-8b",
		"gemini-1.0-pro", "gemini-pro", "gemini-pro-vision",
	},
	ProviderDeepSeek: {
		"deepseek-chat", "deepseek-reasoner", "deepseek-coder", "deepseek-v2.5",
	},
}

// Catalog returns the model catalog as a fresh copy, so callers cannot
// mutate the canonical lists.
func Catalog() map[Provider][]string {
	out := make(map[Provider][]string, len(modelCatalog))
	for p, models := range modelCatalog {
		out[p] = append([]string(nil), models...)
	}
	return out
}
