package vllm

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/leofalp/aibridge/internal/utils"
	"github.com/leofalp/aibridge/providers/ai"
)

const (
	providerName = "vllm"

	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 30 * time.Second

	envBaseURL = "VLLM_API_URL"

	chatCompletionsEndpoint = "/v1/chat/completions"
	modelsEndpoint          = "/v1/models"

	connectHint = "vLLM is likely not running. Start vLLM by running `vllm serve` on your host."
)

// Config carries the construction-time settings of the provider. Every field
// is optional.
type Config struct {
	BaseURL    string        // Falls back to VLLM_API_URL, then http://localhost:8000.
	Timeout    time.Duration // Per-request timeout; defaults to 30s.
	HTTPClient *http.Client  // Overrides the transport client.
}

// VLLMProvider implements the ai.Provider interface against a vLLM
// OpenAI-compatible server.
type VLLMProvider struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// New creates a vLLM provider. Construction cannot fail: every setting has a
// usable default.
func New(cfg Config) *VLLMProvider {
	baseURL := utils.ResolveEnv(cfg.BaseURL, envBaseURL, defaultBaseURL)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &VLLMProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  client,
	}
}

// CreateChatCompletion implements the ai.Provider interface. The canonical
// messages are already wire-compatible with the endpoint, so the body is
// just {model, messages, stream:false, ...options}.
func (p *VLLMProvider) CreateChatCompletion(ctx context.Context, model string, messages []ai.Message, options map[string]any) (*ai.ChatCompletionResponse, error) {
	body := make(map[string]any, len(options)+3)
	for key, value := range options {
		body[key] = value
	}
	body["model"] = model
	body["messages"] = messages
	body["stream"] = false // this adapter never streams, even if the caller asks

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	slog.Debug("sending chat completion request",
		"provider", providerName, "model", model, "messages", len(messages))

	_, resp, err := utils.DoPostSync[chatCompletionResponse](ctx, p.client, p.baseURL+chatCompletionsEndpoint, "", body)
	if err != nil {
		return nil, wrapRequestError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, &ai.ProviderError{Provider: providerName, Message: "response has no choices"}
	}

	// Finish reason is left at its default; this adapter does not interpret
	// tool calls in the reply.
	return &ai.ChatCompletionResponse{
		Choices: []ai.Choice{{
			Message: ai.Message{
				Role:    ai.RoleAssistant,
				Content: resp.Choices[0].Message.Content,
			},
		}},
	}, nil
}

// ListModels implements the ai.ModelLister interface via the
// OpenAI-compatible /v1/models endpoint.
func (p *VLLMProvider) ListModels(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	_, resp, err := utils.DoGetSync[listModelsResponse](ctx, p.client, p.baseURL+modelsEndpoint, "")
	if err != nil {
		return nil, wrapRequestError(err)
	}

	ids := make([]string, 0, len(resp.Data))
	for _, m := range resp.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// wrapRequestError classifies a transport failure into a *ai.ProviderError:
// an unreachable endpoint gets the vLLM hint, non-2xx statuses keep their
// typed cause, anything else is wrapped generically.
func wrapRequestError(err error) error {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return &ai.ProviderError{Provider: providerName, Message: "connection failed: " + connectHint, Err: err}
	}

	var statusErr *utils.StatusError
	if errors.As(err, &statusErr) {
		return &ai.ProviderError{Provider: providerName, Message: "request failed", Err: err}
	}

	return &ai.ProviderError{Provider: providerName, Message: "unexpected error", Err: err}
}
