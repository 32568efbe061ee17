package pipeline

import "context"

// Pipeline runs one full pass: load transcripts, extract style,
// build the dataset and write both JSONL outputs.
type Pipeline interface {
	Run(ctx context.Context) error
}
