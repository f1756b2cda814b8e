package openai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var ErrEmptyCompletion = errors.New("no response from ChatGPT")

type IChatGPT interface {
	Complete(ctx context.Context, systemPrompt, userMessage string, maxTokens int) (string, error)
}

type chatGPTService struct {
	client *openai.Client
	model  string
}

// NewChatGPT returns nil when OPENAI_API_KEY is not set.
func NewChatGPT() IChatGPT {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}

	return NewChatGPTWithConfig(config, os.Getenv("OPENAI_CHAT_MODEL"))
}

func NewChatGPTWithConfig(config openai.ClientConfig, model string) IChatGPT {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	return &chatGPTService{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *chatGPTService) Complete(ctx context.Context, systemPrompt, userMessage string, maxTokens int) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: userMessage,
		},
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: 0.7,
			MaxTokens:   maxTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("ChatGPT API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}
