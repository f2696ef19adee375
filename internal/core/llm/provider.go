package llm

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// Provider is a generative text backend: one operation, submit an
// instruction and get a document back.
type Provider interface {
	Generate(ctx context.Context, instruction string, maxTokens int) (string, error)
	Name() string
}

// ProviderType selects the backend implementation.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderClaude ProviderType = "claude"
	ProviderMock   ProviderType = "mock"
)

// ProviderConfig carries everything needed to construct a provider.
type ProviderConfig struct {
	Type ProviderType

	OpenAIKey string
	ClaudeKey string

	Model       string
	Temperature float32
	MaxTokens   int
}

// NewProvider builds a backend from config. An empty credential for the
// selected backend falls back to the mock provider rather than erroring:
// the pipeline must keep producing structurally valid prompts in
// environments without API keys. The second return value reports whether
// the mock path was taken.
func NewProvider(cfg *ProviderConfig) (Provider, bool, error) {
	switch cfg.Type {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return NewMockProvider(), true, nil
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.Model, cfg.Temperature), false, nil

	case ProviderClaude:
		if cfg.ClaudeKey == "" {
			return NewMockProvider(), true, nil
		}
		return NewClaudeProvider(cfg.ClaudeKey, cfg.Model, cfg.Temperature), false, nil

	case ProviderMock:
		return NewMockProvider(), true, nil

	default:
		return nil, false, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}

// LoadProviderFromEnv reads provider settings from environment variables,
// with OpenAI as the default backend.
func LoadProviderFromEnv() *ProviderConfig {
	providerType := os.Getenv("LLM_PROVIDER")
	if providerType == "" {
		providerType = string(ProviderOpenAI)
	}

	cfg := &ProviderConfig{
		Type:      ProviderType(providerType),
		OpenAIKey: os.Getenv("OPENAI_API_KEY"),
		ClaudeKey: os.Getenv("CLAUDE_API_KEY"),
		Model:     os.Getenv("LLM_MODEL"),
	}

	if cfg.Model == "" {
		switch cfg.Type {
		case ProviderClaude:
			cfg.Model = "claude-3-5-sonnet-20241022"
		default:
			cfg.Model = "gpt-4o-mini"
		}
	}

	cfg.Temperature = 0.7
	cfg.MaxTokens = 4096
	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}

	return cfg
}
