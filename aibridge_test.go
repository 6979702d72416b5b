package aibridge

import (
	"errors"
	"strings"
	"testing"

	"github.com/leofalp/aibridge/providers/ai"
)

func TestNew_VLLM(t *testing.T) {
	provider, err := New(ProviderVLLM)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if provider == nil {
		t.Fatal("expected non-nil provider")
	}
	// vLLM supports model listing through the optional interface.
	if _, ok := provider.(ai.ModelLister); !ok {
		t.Error("expected vllm provider to implement ai.ModelLister")
	}
}

func TestNew_GoogleWithoutCredentials(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := New(ProviderGoogle)
	if err == nil {
		t.Fatal("expected configuration error without an API key")
	}
	var configErr *ai.ConfigurationError
	if !errors.As(err, &configErr) {
		t.Fatalf("expected *ai.ConfigurationError, got %T: %v", err, err)
	}
}

func TestNew_GoogleFromEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	provider, err := New(ProviderGoogle)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := provider.(ai.ModelLister); !ok {
		t.Error("expected google provider to implement ai.ModelLister")
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New("frontier-llm")
	if err == nil {
		t.Fatal("expected error for unknown provider name")
	}
	if !strings.Contains(err.Error(), "frontier-llm") {
		t.Errorf("expected provider name in error, got %q", err.Error())
	}
}
