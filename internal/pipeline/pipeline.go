package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stylepipe/stylepipe/internal/dataset"
	"github.com/stylepipe/stylepipe/internal/transcript"
)

// Run executes the whole pipeline sequentially: every chunk is
// processed to completion before the next begins, and a chunk whose
// extraction fails is skipped so the rest of the corpus still makes it
// into the dataset. Output files are fully regenerated each run.
func (p *implPipeline) Run(ctx context.Context) error {
	startTime := time.Now()
	p.logger.Info(ctx, "Starting transcript processing")

	chunks, err := p.loader.Load(ctx, p.cfg.Paths.Transcripts)
	if err != nil {
		return fmt.Errorf("load transcripts: %w", err)
	}

	var examples []dataset.Example
	failed := 0

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.logger.Info(ctx, "[%d/%d] Processing: %s", i+1, len(chunks), chunk.Name)

		chunkExamples, err := p.processChunk(ctx, chunk)
		if err != nil {
			p.logger.Warn(ctx, "Skipping %s: %v", chunk.Source, err)
			failed++
			continue
		}
		examples = append(examples, chunkExamples...)
	}

	// Nothing extracted from a non-empty corpus: fail before touching
	// the previous run's output.
	if len(chunks) > 0 && failed == len(chunks) {
		return fmt.Errorf("style extraction failed for all %d chunks", len(chunks))
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	dataset.Shuffle(examples, p.rng)
	split := dataset.SplitExamples(examples, p.cfg.Dataset.TrainRatio)

	trainingPath := filepath.Join(p.cfg.Paths.Output, "training.jsonl")
	validationPath := filepath.Join(p.cfg.Paths.Output, "validation.jsonl")
	if err := p.writer.WriteSplit(ctx, trainingPath, validationPath, split); err != nil {
		return err
	}

	p.logger.Info(ctx, "Processing completed in %s: %d chunks processed, %d skipped, %d examples",
		time.Since(startTime).Round(time.Millisecond), len(chunks)-failed, failed, len(examples))
	return nil
}

// processChunk analyzes one chunk and generates its fine-tuning
// examples. Any failure discards the whole chunk, a partially
// generated chunk never leaks into the dataset.
func (p *implPipeline) processChunk(ctx context.Context, chunk transcript.Chunk) ([]dataset.Example, error) {
	obs, err := p.extractor.AnalyzeStyle(ctx, chunk)
	if err != nil {
		return nil, err
	}

	if p.cfg.Reports.Enabled && p.report != nil {
		if _, err := p.report.Write(ctx, obs, p.cfg.Paths.Reports); err != nil {
			p.logger.Warn(ctx, "Failed to write style report for %s: %v", chunk.Name, err)
		}
	}

	topics := dataset.SampleTopics(p.rng, p.cfg.Dataset.ExamplesPerChunk)
	examples := make([]dataset.Example, 0, len(topics))
	for _, topic := range topics {
		post, err := p.extractor.GeneratePost(ctx, obs, topic)
		if err != nil {
			return nil, fmt.Errorf("generate post about %s: %w", topic, err)
		}
		examples = append(examples, dataset.NewExample(topic, post))
	}

	return examples, nil
}
