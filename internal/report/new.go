package report

import (
	"github.com/stylepipe/stylepipe/internal/logger"
)

type implWriter struct {
	logger logger.Logger
}

// New creates a new report Writer instance
func New(log logger.Logger) Writer {
	return &implWriter{
		logger: log,
	}
}
