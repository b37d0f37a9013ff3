package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"shopassist/internal/domain/entity"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"

	// Output cap for both pipeline stages.
	maxOutputTokens = 500
)

// GroqClient issues chat completions against Groq's OpenAI-compatible API.
// One outbound call per Generate; retry policy belongs to the caller.
type GroqClient struct {
	apiKey  string
	model   string
	baseURL string
}

func NewGroqClient(apiKey, model, baseURL string) *GroqClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &GroqClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
	}
}

func (g *GroqClient) Generate(ctx context.Context, prompt, system string, temperature float64) (string, error) {
	llm, err := openai.New(
		openai.WithToken(g.apiKey),
		openai.WithBaseURL(g.baseURL),
		openai.WithModel(g.model),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrModelRequestFailed, err)
	}

	messages := make([]llms.MessageContent, 0, 2)
	if system != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, system))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, prompt))

	resp, err := llm.GenerateContent(ctx, messages,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxOutputTokens),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrModelRequestFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", entity.ErrModelRequestFailed)
	}

	return strings.TrimSpace(resp.Choices[0].Content), nil
}
