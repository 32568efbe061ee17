package extractor

import (
	"github.com/stylepipe/stylepipe/internal/logger"
)

type implExtractor struct {
	backend     Backend
	retry       RetryPolicy
	temperature float64
	logger      logger.Logger
}

// New creates an Extractor that sends requests through the given
// backend, retrying per the supplied policy.
func New(backend Backend, policy RetryPolicy, temperature float64, log logger.Logger) Extractor {
	if policy.MaxAttempts <= 0 {
		policy = DefaultRetryPolicy()
	}
	if policy.Retryable == nil {
		policy.Retryable = IsRetryable
	}
	return &implExtractor{
		backend:     backend,
		retry:       policy,
		temperature: temperature,
		logger:      log,
	}
}
