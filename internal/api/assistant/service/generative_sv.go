package assistantService

import (
	"AgriVision/internal/api/assistant"
	"AgriVision/internal/entity"
	"context"
	"fmt"
	"strings"
)

// GenerateFunc matches both the OpenAI and Gemini client methods.
type GenerateFunc func(ctx context.Context, systemPrompt, prompt string, maxTokens int) (string, error)

type generativeStrategy struct {
	provider string
	generate GenerateFunc
	cfg      Config
}

// NewGenerativeStrategy returns nil when generate is nil, which NewRouter skips.
func NewGenerativeStrategy(provider string, generate GenerateFunc, cfg Config) Strategy {
	if generate == nil {
		return nil
	}
	return &generativeStrategy{
		provider: provider,
		generate: generate,
		cfg:      cfg.withDefaults(),
	}
}

func (g *generativeStrategy) Name() entity.StrategyName {
	return entity.StrategyGenerative
}

func (g *generativeStrategy) TryRespond(ctx context.Context, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.GenerativeTimeout)
	defer cancel()

	text, err := g.generate(ctx, g.cfg.SystemPrompt, query, g.cfg.MaxTokens)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", assistant.ErrUpstreamUnavailable, g.provider, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", assistant.ErrNoAnswer
	}
	return text, nil
}
