package extractor

import (
	"context"
	"fmt"

	"github.com/stylepipe/stylepipe/internal/transcript"
)

// AnalyzeStyle sends one transcript chunk to the API and returns the
// model's style characterization.
func (e *implExtractor) AnalyzeStyle(ctx context.Context, chunk transcript.Chunk) (StyleObservation, error) {
	e.logger.Debug(ctx, "Analyzing style of %s (%d bytes)", chunk.Source, len(chunk.Text))

	user := "Transcript to analyze:\n" + chunk.Text
	analysis, err := e.complete(ctx, chunk.Source, "style analysis", styleAnalysisPrompt, user)
	if err != nil {
		return StyleObservation{}, err
	}

	return StyleObservation{
		Source:   chunk.Source,
		Name:     chunk.Name,
		Analysis: analysis,
	}, nil
}

// GeneratePost writes a post about topic in the voice captured by obs.
func (e *implExtractor) GeneratePost(ctx context.Context, obs StyleObservation, topic string) (string, error) {
	system := fmt.Sprintf(postGenerationPrompt, topic)
	user := fmt.Sprintf("Style analysis: %s\nTopic: %s", obs.Analysis, topic)

	return e.complete(ctx, obs.Source, "post generation", system, user)
}
