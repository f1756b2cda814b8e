package assistantService

import (
	"AgriVision/internal/api/assistant"
	"AgriVision/internal/entity"
	"AgriVision/pkg/ollama"
	"context"
	"fmt"
	"strings"
)

type localInferenceStrategy struct {
	client ollama.IOllama
	cfg    Config
}

// NewLocalInferenceStrategy returns nil when client is nil.
func NewLocalInferenceStrategy(client ollama.IOllama, cfg Config) Strategy {
	if client == nil {
		return nil
	}
	return &localInferenceStrategy{
		client: client,
		cfg:    cfg.withDefaults(),
	}
}

func (l *localInferenceStrategy) Name() entity.StrategyName {
	return entity.StrategyLocalInference
}

func (l *localInferenceStrategy) TryRespond(ctx context.Context, query string) (string, error) {
	text, err := l.client.Generate(ctx, fmt.Sprintf(l.cfg.LocalPromptTemplate, query))
	if err != nil {
		return "", fmt.Errorf("%w: ollama: %v", assistant.ErrUpstreamUnavailable, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", assistant.ErrNoAnswer
	}
	return text, nil
}
