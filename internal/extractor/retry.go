package extractor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// RetryPolicy controls how failed API calls are retried. The zero
// value is not usable, construct with DefaultRetryPolicy or fill in
// every field.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration // delay before the first retry, doubled each attempt
	Retryable   func(error) bool
	Sleep       func(time.Duration) // overridable in tests, nil = context-aware sleep
}

// DefaultRetryPolicy mirrors the service defaults: 3 attempts, 5s
// initial delay with exponential backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Delay:       5 * time.Second,
		Retryable:   IsRetryable,
	}
}

// ExtractionError reports an API call that failed permanently, either
// a non-retryable error or retry exhaustion. Attempts records how many
// calls were made before giving up.
type ExtractionError struct {
	Source   string
	Attempts int
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("style extraction for %s failed after %d attempt(s): %v", e.Source, e.Attempts, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether an API error is transient: network
// failures, rate limits and server-side errors. Auth failures and
// malformed requests are permanent and fail immediately.
func IsRetryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests || reqErr.HTTPStatusCode >= 500
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Gemini surfaces quota errors as plain strings
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// complete runs one chat exchange through the backend under the retry
// policy. Identical arguments are resent on every attempt.
func (e *implExtractor) complete(ctx context.Context, source, label, system, user string) (string, error) {
	delay := e.retry.Delay
	var lastErr error

	for attempt := 1; attempt <= e.retry.MaxAttempts; attempt++ {
		out, err := e.backend.Complete(ctx, system, user, e.temperature)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !e.retry.Retryable(err) {
			e.logger.Error(ctx, "%s for %s failed with non-retryable error: %v", label, source, err)
			return "", &ExtractionError{Source: source, Attempts: attempt, Err: err}
		}
		if attempt == e.retry.MaxAttempts {
			break
		}

		e.logger.Warn(ctx, "%s for %s: retry %d/%d after error: %v", label, source, attempt, e.retry.MaxAttempts, err)
		if err := e.sleep(ctx, delay); err != nil {
			return "", &ExtractionError{Source: source, Attempts: attempt, Err: err}
		}
		delay *= 2
	}

	e.logger.Error(ctx, "%s for %s failed after %d attempts: %v", label, source, e.retry.MaxAttempts, lastErr)
	return "", &ExtractionError{Source: source, Attempts: e.retry.MaxAttempts, Err: lastErr}
}

func (e *implExtractor) sleep(ctx context.Context, d time.Duration) error {
	if e.retry.Sleep != nil {
		e.retry.Sleep(d)
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
