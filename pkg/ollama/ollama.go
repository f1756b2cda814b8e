package ollama

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	DefaultURL     = "http://localhost:11434/api/generate"
	DefaultModel   = "llama3"
	DefaultTimeout = 10 * time.Second
)

var ErrEmptyResponse = errors.New("ollama returned an empty response")

type IOllama interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	URL     string
	Model   string
	Timeout time.Duration
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

type ollamaClient struct {
	cfg        Config
	httpClient *http.Client
}

// ConfigFromEnv reads OLLAMA_URL, OLLAMA_MODEL and OLLAMA_TIMEOUT.
func ConfigFromEnv() Config {
	cfg := Config{
		URL:     os.Getenv("OLLAMA_URL"),
		Model:   os.Getenv("OLLAMA_MODEL"),
		Timeout: DefaultTimeout,
	}
	if raw := os.Getenv("OLLAMA_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

func New(cfg Config) IOllama {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &ollamaClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (o *ollamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := jsoniter.Marshal(generateRequest{
		Model:  o.cfg.Model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama API error: %s", resp.Status)
	}

	var out generateResponse
	if err := jsoniter.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}

	text := strings.TrimSpace(out.Response)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
