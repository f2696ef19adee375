package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Retry policy: up to 3 attempts, backoff starting at 2s, doubling,
// capped at 10s. Only retryable error kinds consume the budget.
const (
	maxAttempts    = 3
	initialBackoff = 2 * time.Second
	maxBackoff     = 10 * time.Second
)

// GenerationResult is the structured outcome of a generation request.
// The client boundary never returns a bare error: callers always receive
// a result they can inspect.
type GenerationResult struct {
	Success   bool      `json:"success"`
	Text      string    `json:"text,omitempty"`
	Mock      bool      `json:"mock,omitempty"`
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
	Error     string    `json:"error,omitempty"`
	Attempts  int       `json:"attempts"`
}

// Client wraps a provider with retry, backoff and error classification.
type Client struct {
	provider  Provider
	mock      bool
	maxTokens int
	sleep     func(ctx context.Context, d time.Duration) error
}

// NewClient builds a client around the configured provider. When cfg
// selects a backend without a credential, the client transparently runs
// in mock mode and flags every result with Mock=true.
func NewClient(cfg *ProviderConfig) (*Client, error) {
	provider, mock, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	if mock {
		log.Warn().Str("provider", string(cfg.Type)).
			Msg("no backend credential configured, generation will run in mock mode")
	}
	return &Client{
		provider:  provider,
		mock:      mock,
		maxTokens: cfg.MaxTokens,
		sleep:     sleepCtx,
	}, nil
}

// NewClientWithProvider wires an explicit provider, used by tests and by
// callers that construct providers themselves.
func NewClientWithProvider(p Provider, mock bool, maxTokens int) *Client {
	return &Client{provider: p, mock: mock, maxTokens: maxTokens, sleep: sleepCtx}
}

// MockMode reports whether the client runs without a live backend.
func (c *Client) MockMode() bool {
	return c.mock
}

// Generate submits the instruction and returns a structured result.
// Retryable failures are retried with capped exponential backoff;
// non-retryable and extraction failures surface immediately.
func (c *Client) Generate(ctx context.Context, instruction string) GenerationResult {
	backoff := initialBackoff

	var lastErr error
	var lastKind ErrorKind

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := c.provider.Generate(ctx, instruction, c.maxTokens)
		if err == nil {
			return GenerationResult{
				Success:  true,
				Text:     text,
				Mock:     c.mock,
				Attempts: attempt,
			}
		}

		lastErr = err
		lastKind = Classify(err)

		if lastKind != ErrKindRetryable {
			log.Error().Err(err).
				Str("provider", c.provider.Name()).
				Str("kind", string(lastKind)).
				Int("attempt", attempt).
				Msg("generation failed without retry")
			return GenerationResult{
				Success:   false,
				Mock:      c.mock,
				ErrorKind: lastKind,
				Error:     err.Error(),
				Attempts:  attempt,
			}
		}

		log.Warn().Err(err).
			Str("provider", c.provider.Name()).
			Int("attempt", attempt).
			Dur("backoff", backoff).
			Msg("generation attempt failed, retrying")

		if attempt < maxAttempts {
			if sleepErr := c.sleep(ctx, backoff); sleepErr != nil {
				return GenerationResult{
					Success:   false,
					Mock:      c.mock,
					ErrorKind: ErrKindNonRetryable,
					Error:     sleepErr.Error(),
					Attempts:  attempt,
				}
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}
	}

	return GenerationResult{
		Success:   false,
		Mock:      c.mock,
		ErrorKind: lastKind,
		Error:     lastErr.Error(),
		Attempts:  maxAttempts,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
