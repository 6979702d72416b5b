package ai

import "fmt"

// ConfigurationError reports that required credentials or identifiers could
// not be resolved at construction time. It is never retried and always
// surfaces immediately to the caller.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "aibridge: configuration error: " + e.Message
}

// ValidationError reports malformed canonical input detected during request
// conversion, such as a tool result message without content or with content
// that is not valid JSON.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "aibridge: invalid message: " + e.Message
}

// ProviderError wraps any call-time failure: network errors, non-2xx HTTP
// statuses, malformed provider replies, or conversion failures. Lower-level
// faults are never leaked raw; they are carried in Err and reachable through
// [errors.Is] / [errors.As].
type ProviderError struct {
	Provider string // adapter name, e.g. "google" or "vllm"
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("aibridge: %s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("aibridge: %s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }
