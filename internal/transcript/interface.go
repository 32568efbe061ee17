package transcript

import "context"

// Chunk is one transcript excerpt loaded from a text file.
type Chunk struct {
	Source string // full path of the originating file
	Name   string // file name without extension
	Text   string
}

// Loader enumerates transcript chunks from an input directory.
type Loader interface {
	Load(ctx context.Context, dir string) ([]Chunk, error)
}
