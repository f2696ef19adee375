package llm

import (
	"context"
	"errors"
	"fmt"
	"net"

	openai "github.com/sashabaranov/go-openai"
)

// ErrorKind classifies a generation failure for retry decisions and
// structured reporting.
type ErrorKind string

const (
	// ErrKindRetryable covers rate limiting, transient network failures
	// and 5xx-class backend errors. Auto-retried.
	ErrKindRetryable ErrorKind = "retryable"
	// ErrKindNonRetryable covers auth failures and invalid requests.
	// Propagated on the first attempt.
	ErrKindNonRetryable ErrorKind = "non_retryable"
	// ErrKindExtraction means the backend responded without a usable
	// text block. Terminal at the generation boundary.
	ErrKindExtraction ErrorKind = "extraction"
)

// BackendError carries the HTTP status from a generative backend so the
// classifier can decide whether to retry.
type BackendError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

// ErrNoText is returned when a backend response contains no extractable
// text block.
var ErrNoText = errors.New("backend response contains no text")

// Classify maps an error from a provider onto an ErrorKind.
func Classify(err error) ErrorKind {
	if errors.Is(err, ErrNoText) {
		return ErrKindExtraction
	}

	var be *BackendError
	if errors.As(err, &be) {
		return classifyStatus(be.StatusCode)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode)
	}

	// Context cancellation is the caller's decision, not a backend fault;
	// retrying would just fail again.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrKindNonRetryable
	}

	// Transport-level failures (connection refused, resets, DNS) are
	// transient.
	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrKindRetryable
	}

	// Unknown errors from the HTTP path are treated as transient: the
	// retry budget is small and a spurious retry is cheaper than a
	// spurious hard failure.
	return ErrKindRetryable
}

func classifyStatus(status int) ErrorKind {
	switch {
	case status == 429:
		return ErrKindRetryable
	case status >= 500:
		return ErrKindRetryable
	default:
		return ErrKindNonRetryable
	}
}
