package google

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"
	googleauth "golang.org/x/oauth2/google"

	"github.com/leofalp/aibridge/internal/utils"
	"github.com/leofalp/aibridge/providers/ai"
)

const (
	providerName = "google"

	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultRegion        = "us-central1"
	cloudPlatformScope   = "https://www.googleapis.com/auth/cloud-platform"

	envAPIKey    = "GEMINI_API_KEY"
	envProjectID = "GOOGLE_PROJECT_ID"
	envRegion    = "GOOGLE_REGION"
)

// Config carries the construction-time settings of the provider. Every field
// is optional; unset values resolve from the environment as documented on
// each field.
type Config struct {
	// VertexAI selects the managed-platform authentication path. When false
	// the provider talks to the Gemini developer API with an API key.
	VertexAI bool

	ProjectID string // Vertex mode. Falls back to GOOGLE_PROJECT_ID.
	Region    string // Vertex mode. Falls back to GOOGLE_REGION, then us-central1.

	// TokenSource supplies OAuth2 tokens in Vertex mode. When nil,
	// Application Default Credentials are used.
	TokenSource oauth2.TokenSource

	APIKey string // Direct mode. Falls back to GEMINI_API_KEY.

	BaseURL    string       // Overrides the endpoint, mainly for tests.
	HTTPClient *http.Client // Overrides the transport client.
}

// GoogleProvider implements the ai.Provider interface for Google's
// generative language API, in either Vertex AI or direct API key mode.
type GoogleProvider struct {
	vertexAI    bool
	projectID   string
	region      string
	apiKey      string
	baseURL     string
	tokenSource oauth2.TokenSource
	client      *http.Client
}

// New creates a provider from the given configuration, resolving missing
// settings from the environment. It returns an *ai.ConfigurationError when a
// required credential or identifier cannot be resolved.
func New(cfg Config) (*GoogleProvider, error) {
	p := &GoogleProvider{
		vertexAI: cfg.VertexAI,
		client:   cfg.HTTPClient,
	}
	if p.client == nil {
		p.client = &http.Client{}
	}

	var err error
	if cfg.VertexAI {
		err = p.initVertexAI(cfg)
	} else {
		err = p.initGemini(cfg)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// initVertexAI wires the managed-platform authentication path: project id and
// region from config or environment, tokens from the configured source or
// Application Default Credentials.
func (p *GoogleProvider) initVertexAI(cfg Config) error {
	p.projectID = utils.ResolveEnv(cfg.ProjectID, envProjectID, "")
	p.region = utils.ResolveEnv(cfg.Region, envRegion, defaultRegion)

	if p.projectID == "" || p.region == "" {
		return &ai.ConfigurationError{Message: fmt.Sprintf(
			"missing one or more required Google settings: set a project id and region in the config or via the %s and %s environment variables",
			envProjectID, envRegion)}
	}

	p.tokenSource = cfg.TokenSource
	if p.tokenSource == nil {
		creds, err := googleauth.FindDefaultCredentials(context.Background(), cloudPlatformScope)
		if err != nil {
			return &ai.ConfigurationError{Message: "Google application default credentials are not available: " + err.Error()}
		}
		p.tokenSource = creds.TokenSource
	}

	p.baseURL = cfg.BaseURL
	if p.baseURL == "" {
		p.baseURL = fmt.Sprintf("https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/google",
			p.region, p.projectID, p.region)
	}
	return nil
}

// initGemini wires the direct API key path against the Gemini developer API.
func (p *GoogleProvider) initGemini(cfg Config) error {
	p.apiKey = utils.ResolveEnv(cfg.APIKey, envAPIKey, "")
	if p.apiKey == "" {
		return &ai.ConfigurationError{Message: "Gemini API key is missing: provide it in the config or set the " + envAPIKey + " environment variable"}
	}

	p.baseURL = cfg.BaseURL
	if p.baseURL == "" {
		p.baseURL = defaultGeminiBaseURL
	}
	return nil
}

// CreateChatCompletion implements the ai.Provider interface. It converts the
// canonical messages to Google content blocks, issues one synchronous
// generateContent call and converts the structured reply back. Any failure
// is reported as an *ai.ProviderError.
func (p *GoogleProvider) CreateChatCompletion(ctx context.Context, model string, messages []ai.Message, options map[string]any) (*ai.ChatCompletionResponse, error) {
	system, contents, err := convertRequest(messages)
	if err != nil {
		return nil, &ai.ProviderError{Provider: providerName, Message: "request conversion failed", Err: err}
	}

	req := generateContentRequest{Contents: contents}
	if system != "" {
		req.SystemInstruction = &systemInstruction{Parts: []part{textPart(system)}}
	}
	if len(options) > 0 {
		// Copied so a caller mutating the map afterwards cannot race the request.
		req.GenerationConfig = make(map[string]any, len(options))
		for key, value := range options {
			req.GenerationConfig[key] = value
		}
	}

	header, err := p.authHeader()
	if err != nil {
		return nil, &ai.ProviderError{Provider: providerName, Message: "authentication failed", Err: err}
	}

	slog.Debug("sending chat completion request",
		"provider", providerName, "model", model, "messages", len(contents))

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, model)
	_, resp, err := utils.DoPostSync[generateContentResponse](ctx, p.client, url, "", req, header)
	if err != nil {
		return nil, &ai.ProviderError{Provider: providerName, Message: "chat completion request failed", Err: err}
	}

	result, err := convertResponse(*resp)
	if err != nil {
		return nil, &ai.ProviderError{Provider: providerName, Message: "response conversion failed", Err: err}
	}
	return result, nil
}

// ListModels implements the ai.ModelLister interface. It returns the model
// names in the order the endpoint reports them.
func (p *GoogleProvider) ListModels(ctx context.Context) ([]string, error) {
	header, err := p.authHeader()
	if err != nil {
		return nil, &ai.ProviderError{Provider: providerName, Message: "authentication failed", Err: err}
	}

	_, resp, err := utils.DoGetSync[listModelsResponse](ctx, p.client, p.baseURL+"/models", "", header)
	if err != nil {
		return nil, &ai.ProviderError{Provider: providerName, Message: "model listing failed", Err: err}
	}

	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// authHeader builds the per-request authentication header: a Bearer token
// from the token source in Vertex mode, the API key header otherwise.
func (p *GoogleProvider) authHeader() (utils.HeaderOption, error) {
	if !p.vertexAI {
		return utils.HeaderOption{Key: "x-goog-api-key", Value: p.apiKey}, nil
	}

	token, err := p.tokenSource.Token()
	if err != nil {
		return utils.HeaderOption{}, fmt.Errorf("fetching access token: %w", err)
	}
	return utils.HeaderOption{Key: "Authorization", Value: "Bearer " + token.AccessToken}, nil
}
