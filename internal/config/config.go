package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API     APIConfig     `yaml:"api"`
	Paths   PathsConfig   `yaml:"paths"`
	Dataset DatasetConfig `yaml:"dataset"`
	Logging LoggingConfig `yaml:"logging"`
	Reports ReportsConfig `yaml:"reports"`
}

type APIConfig struct {
	Provider    string  `yaml:"provider"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxRetries  int     `yaml:"max_retries"`
	RetryDelay  int     `yaml:"retry_delay"` // seconds before the first retry, doubled each attempt

	// Credentials come from the environment, never from the config file
	XAIKey    string `yaml:"-"`
	GeminiKey string `yaml:"-"`
}

type PathsConfig struct {
	Transcripts string `yaml:"transcripts"`
	Output      string `yaml:"output"`
	Reports     string `yaml:"reports"`
}

type DatasetConfig struct {
	TrainRatio       float64 `yaml:"train_ratio"`
	ExamplesPerChunk int     `yaml:"examples_per_chunk"`
	Seed             int64   `yaml:"seed"` // 0 = time-based seed
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ReportsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads the YAML config file, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyEnv pulls credentials and endpoint overrides from the environment.
func (c *Config) applyEnv() {
	c.API.XAIKey = os.Getenv("XAI_API_KEY")
	c.API.GeminiKey = os.Getenv("GEMINI_API_KEY")

	if url := os.Getenv("XAI_API_URL"); url != "" {
		c.API.BaseURL = url
	}
}

func (c *Config) Validate() error {
	if c.Paths.Transcripts == "" {
		return fmt.Errorf("paths.transcripts is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.API.Provider == "" {
		c.API.Provider = "xai"
	}
	switch c.API.Provider {
	case "xai":
		if c.API.BaseURL == "" {
			c.API.BaseURL = "https://api.x.ai/v1"
		}
		if c.API.Model == "" {
			c.API.Model = "grok-beta"
		}
	case "gemini":
		if c.API.Model == "" {
			c.API.Model = "gemini-2.5-flash"
		}
	default:
		return fmt.Errorf("api.provider must be xai or gemini, got %q", c.API.Provider)
	}

	if c.API.Temperature == 0 {
		c.API.Temperature = 0.7
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = 3
	}
	if c.API.RetryDelay == 0 {
		c.API.RetryDelay = 5
	}

	if c.Dataset.TrainRatio == 0 {
		c.Dataset.TrainRatio = 0.8
	}
	if c.Dataset.TrainRatio < 0 || c.Dataset.TrainRatio > 1 {
		return fmt.Errorf("dataset.train_ratio must be between 0 and 1, got %v", c.Dataset.TrainRatio)
	}
	if c.Dataset.ExamplesPerChunk < 0 {
		return fmt.Errorf("dataset.examples_per_chunk must not be negative, got %d", c.Dataset.ExamplesPerChunk)
	}
	if c.Dataset.ExamplesPerChunk == 0 {
		c.Dataset.ExamplesPerChunk = 5
	}

	if c.Paths.Reports == "" {
		c.Paths.Reports = filepath.Join(c.Paths.Output, "reports")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
