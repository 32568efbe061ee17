package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/stylepipe/stylepipe/internal/logger"
)

// WriteError reports a failed write and which output file it hit.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write dataset %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Writer serializes examples to JSON Lines files.
type Writer struct {
	logger logger.Logger
}

// NewWriter creates a new Writer instance
func NewWriter(log logger.Logger) *Writer {
	return &Writer{logger: log}
}

// WriteJSONL truncates path and writes one JSON object per line,
// nothing after the final newline. Invalid examples are skipped with a
// warning rather than corrupting the dataset.
func (w *Writer) WriteJSONL(ctx context.Context, path string, examples []Example) error {
	file, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	written := 0
	for _, ex := range examples {
		if !Validate(ex) {
			w.logger.Warn(ctx, "Skipping invalid example in %s", path)
			continue
		}
		if err := enc.Encode(ex); err != nil {
			return &WriteError{Path: path, Err: err}
		}
		written++
	}

	w.logger.Debug(ctx, "Wrote %d examples to %s", written, path)
	return nil
}

// WriteSplit writes both sides of the split. Each file is attempted
// regardless of the other failing, so one bad path never silently
// skips the other.
func (w *Writer) WriteSplit(ctx context.Context, trainingPath, validationPath string, split Split) error {
	trainErr := w.WriteJSONL(ctx, trainingPath, split.Training)
	validErr := w.WriteJSONL(ctx, validationPath, split.Validation)

	if trainErr == nil && validErr == nil {
		w.logger.Info(ctx, "Created datasets: %d training examples, %d validation examples",
			len(split.Training), len(split.Validation))
	}
	return errors.Join(trainErr, validErr)
}
