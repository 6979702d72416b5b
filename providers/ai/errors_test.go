package ai

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigurationError_Message(t *testing.T) {
	err := &ConfigurationError{Message: "GEMINI_API_KEY is not set"}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("expected message to carry the variable name, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "configuration error") {
		t.Errorf("expected configuration error marker, got %q", err.Error())
	}
}

func TestProviderError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ProviderError{Provider: "vllm", Message: "request failed", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "vllm") {
		t.Errorf("expected provider name in message, got %q", err.Error())
	}
}

func TestProviderError_WithoutCause(t *testing.T) {
	err := &ProviderError{Provider: "google", Message: "response has no candidates"}
	if err.Unwrap() != nil {
		t.Error("expected nil Unwrap when no cause is set")
	}
	if !strings.Contains(err.Error(), "response has no candidates") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestValidationError_SurvivesWrapping(t *testing.T) {
	inner := &ValidationError{Message: "tool result message must be valid JSON"}
	outer := &ProviderError{Provider: "google", Message: "request conversion failed", Err: inner}
	wrapped := fmt.Errorf("call failed: %w", outer)

	var validationErr *ValidationError
	if !errors.As(wrapped, &validationErr) {
		t.Fatal("expected errors.As to find the ValidationError through the chain")
	}
	if validationErr.Message != inner.Message {
		t.Errorf("expected %q, got %q", inner.Message, validationErr.Message)
	}
}
