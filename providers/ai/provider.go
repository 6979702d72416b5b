package ai

import "context"

// Provider is the core interface every chat adapter must satisfy. Adapters
// are stateless after construction: one call in, one response or error out.
// Concurrent use is safe only to the extent the underlying transport client
// is; this layer adds no locking.
type Provider interface {
	// CreateChatCompletion sends the canonical messages to the provider and
	// returns the normalized response. The options map is passed through to
	// the provider request verbatim (temperature, max tokens, ...). Any
	// call-time failure is reported as a *ProviderError.
	CreateChatCompletion(ctx context.Context, model string, messages []Message, options map[string]any) (*ChatCompletionResponse, error)
}

// ModelLister is an optional interface for providers that can enumerate the
// models they serve. Callers detect support via type assertion:
// provider.(ModelLister).
type ModelLister interface {
	Provider
	// ListModels returns the provider's model identifiers in the order the
	// remote endpoint reports them.
	ListModels(ctx context.Context) ([]string, error)
}
