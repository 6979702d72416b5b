// Package aibridge is a multi-provider adapter layer for large-language-model
// chat APIs. It translates a single canonical request/response schema into
// each provider's native wire format and back.
//
// Each adapter lives in its own package under providers/ai and implements the
// ai.Provider capability interface; this package only hosts the [New] factory
// that selects an adapter by name using environment-derived configuration.
// Construct the provider packages directly when explicit configuration is
// needed:
//
//	provider, err := google.New(google.Config{APIKey: "..."})
//	response, err := provider.CreateChatCompletion(ctx, "gemini-2.0-flash", messages, nil)
package aibridge
