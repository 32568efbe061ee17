package pipeline

import (
	"math/rand"
	"time"

	"github.com/stylepipe/stylepipe/internal/config"
	"github.com/stylepipe/stylepipe/internal/dataset"
	"github.com/stylepipe/stylepipe/internal/extractor"
	"github.com/stylepipe/stylepipe/internal/logger"
	"github.com/stylepipe/stylepipe/internal/report"
	"github.com/stylepipe/stylepipe/internal/transcript"
)

type implPipeline struct {
	cfg       *config.Config
	loader    transcript.Loader
	extractor extractor.Extractor
	writer    *dataset.Writer
	report    report.Writer
	logger    logger.Logger
	rng       *rand.Rand
}

// New creates a new Pipeline instance. A zero seed selects a
// time-based one; tests pass a fixed seed for a reproducible split.
func New(cfg *config.Config, loader transcript.Loader, ext extractor.Extractor,
	writer *dataset.Writer, rep report.Writer, log logger.Logger) Pipeline {

	seed := cfg.Dataset.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &implPipeline{
		cfg:       cfg,
		loader:    loader,
		extractor: ext,
		writer:    writer,
		report:    rep,
		logger:    log,
		rng:       rand.New(rand.NewSource(seed)),
	}
}
