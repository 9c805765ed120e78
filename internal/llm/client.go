package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"resume-tailor/internal/errs"
)

// Client is an abstraction over chat-completion providers. Replies are
// expected to contain a single JSON object; callers run the reply through
// ExtractJSON before decoding.
type Client interface {
	// GenerateJSON sends a system+user prompt pair and returns the raw
	// reply content.
	GenerateJSON(ctx context.Context, system, prompt string, tier ModelTier) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the configured provider. An empty API key
// is a MissingCredential error, checked once here rather than per call.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if apiKey == "" {
		return nil, errs.New(errs.TagMissingCredential, "API key is required")
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGroqClient(config, apiKey), nil
	}
}

// GroqClient implements Client against Groq's OpenAI-compatible endpoint.
type GroqClient struct {
	client *openai.Client
	config *Config
}

// NewGroqClient creates a client for the Groq endpoint.
func NewGroqClient(config *Config, apiKey string) *GroqClient {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = groqBaseURL
	}
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)
	return &GroqClient{client: client, config: config}
}

// GenerateJSON sends a chat-completion request and returns the reply
// content. Deadline expiry maps to RemoteTimeout; any other transport or
// API error maps to RemoteRequestFailed.
func (c *GroqClient) GenerateJSON(ctx context.Context, system, prompt string, tier ModelTier) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		}),
		Model:       openai.F(openai.ChatModel(c.config.GetModel(tier))),
		Temperature: openai.F(c.config.Temperature(tier)),
		MaxTokens:   openai.F(c.config.MaxTokens(tier)),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", errs.Wrap(errs.TagRemoteTimeout, "chat completion request timed out", err)
		}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", errs.Wrap(errs.TagRemoteRequest,
				fmt.Sprintf("chat completion request failed with status %d", apiErr.StatusCode), err)
		}
		return "", errs.Wrap(errs.TagRemoteRequest, "chat completion request failed", err)
	}

	if len(resp.Choices) == 0 {
		return "", errs.New(errs.TagRemoteRequest, "no choices in completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// Close is a no-op; the underlying HTTP client holds no resources that
// need explicit release.
func (c *GroqClient) Close() error {
	return nil
}
