package aibridge

import (
	"fmt"

	"github.com/leofalp/aibridge/providers/ai"
	"github.com/leofalp/aibridge/providers/ai/google"
	"github.com/leofalp/aibridge/providers/ai/vllm"
)

// Provider names accepted by [New].
const (
	ProviderGoogle       = "google"        // Gemini developer API (direct API key)
	ProviderGoogleVertex = "google-vertex" // Vertex AI (managed platform)
	ProviderVLLM         = "vllm"          // OpenAI-compatible vLLM server
)

// New constructs the named provider with environment-derived configuration.
// It returns an *ai.ConfigurationError when the provider's required settings
// cannot be resolved, and an error for unknown names.
func New(name string) (ai.Provider, error) {
	switch name {
	case ProviderGoogle:
		return google.New(google.Config{})
	case ProviderGoogleVertex:
		return google.New(google.Config{VertexAI: true})
	case ProviderVLLM:
		return vllm.New(vllm.Config{}), nil
	default:
		return nil, fmt.Errorf("aibridge: unknown provider %q", name)
	}
}
