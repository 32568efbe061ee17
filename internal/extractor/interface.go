package extractor

import (
	"context"

	"github.com/stylepipe/stylepipe/internal/transcript"
)

// StyleObservation is the model's characterization of one speaker's
// communication style, derived from a single transcript chunk.
type StyleObservation struct {
	Source   string // path of the transcript the analysis came from
	Name     string
	Analysis string // free-form markdown analysis returned by the API
}

// Extractor turns transcript chunks into style observations and
// generates posts written in the observed voice.
type Extractor interface {
	AnalyzeStyle(ctx context.Context, chunk transcript.Chunk) (StyleObservation, error)
	GeneratePost(ctx context.Context, obs StyleObservation, topic string) (string, error)
}

// Backend performs a single chat exchange against an LLM service.
// Implementations must be safe to call repeatedly with identical
// arguments, the retry loop resends the same request verbatim.
type Backend interface {
	Complete(ctx context.Context, system, user string, temperature float64) (string, error)
}
