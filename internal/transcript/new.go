package transcript

import (
	"github.com/stylepipe/stylepipe/internal/logger"
)

type implLoader struct {
	logger logger.Logger
}

// New creates a new Loader instance
func New(log logger.Logger) Loader {
	return &implLoader{
		logger: log,
	}
}
