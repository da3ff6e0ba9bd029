package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Role constants for chat messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage represents a single message in a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the request body for the chat completions API.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	Stream      bool          `json:"stream"`
}

// ChatResponse is the response from the chat completions API.
type ChatResponse struct {
	Choices []struct {
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

// Client is a Backend over any OpenAI-compatible chat completions endpoint.
type Client struct {
	endpoint  string
	model     string
	apiKey    string
	maxTokens int
	client    *http.Client
}

// NewClient creates a new chat completions client.
func NewClient(endpoint, model, apiKey string, maxTokens int, timeout time.Duration) *Client {
	return &Client{
		endpoint:  endpoint,
		model:     model,
		apiKey:    apiKey,
		maxTokens: maxTokens,
		client:    &http.Client{Timeout: timeout},
	}
}

// Complete performs a non-streaming chat completion.
func (c *Client) Complete(ctx context.Context, system string, messages []ChatMessage) (string, error) {
	allMessages := make([]ChatMessage, 0, len(messages)+1)
	if system != "" {
		allMessages = append(allMessages, ChatMessage{Role: RoleSystem, Content: system})
	}
	allMessages = append(allMessages, messages...)

	reqBody := ChatRequest{
		Model:       c.model,
		Messages:    allMessages,
		MaxTokens:   c.maxTokens,
		Temperature: 0.3,
		Stream:      false,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.endpoint + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// Generate implements Backend by forwarding prompt, context, and
// specialization as one chat completion.
func (c *Client) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	content, err := c.Complete(ctx, systemPrompt(req.Specialization), []ChatMessage{
		{Role: RoleUser, Content: userPrompt(req)},
	})
	if err != nil {
		return nil, err
	}
	return &GenerationResult{Content: StripFences(content)}, nil
}
