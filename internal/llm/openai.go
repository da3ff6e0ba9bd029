package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIConfig configures the official OpenAI SDK backend.
type OpenAIConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	// BaseURL overrides the API endpoint, mainly for tests and proxies.
	BaseURL string
}

// OpenAIBackend is a Backend over the official OpenAI SDK.
type OpenAIBackend struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIBackend creates an OpenAI-backed generation backend.
func NewOpenAIBackend(cfg OpenAIConfig) (*OpenAIBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai backend: api key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("openai backend: model is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(opts...)

	return &OpenAIBackend{
		client:    &client,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}, nil
}

// Generate implements Backend.
func (b *OpenAIBackend) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(b.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt(req.Specialization)),
			openai.UserMessage(userPrompt(req)),
		},
	}
	if b.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(b.maxTokens))
	}

	completion, err := b.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai generate: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("openai generate: no choices in response")
	}

	return &GenerationResult{Content: StripFences(completion.Choices[0].Message.Content)}, nil
}
