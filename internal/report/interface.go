package report

import (
	"context"

	"github.com/stylepipe/stylepipe/internal/extractor"
)

// Writer renders a style observation as a human-readable document.
type Writer interface {
	Write(ctx context.Context, obs extractor.StyleObservation, destDir string) (string, error)
}
