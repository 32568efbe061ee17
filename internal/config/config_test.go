package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Transcripts: "transcripts",
					Output:      "output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing transcripts path",
			config: Config{
				Paths: PathsConfig{
					Output: "output",
				},
			},
			wantErr: true,
		},
		{
			name: "missing output path",
			config: Config{
				Paths: PathsConfig{
					Transcripts: "transcripts",
				},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: Config{
				API: APIConfig{Provider: "anthropic"},
				Paths: PathsConfig{
					Transcripts: "transcripts",
					Output:      "output",
				},
			},
			wantErr: true,
		},
		{
			name: "train ratio out of range",
			config: Config{
				Paths: PathsConfig{
					Transcripts: "transcripts",
					Output:      "output",
				},
				Dataset: DatasetConfig{TrainRatio: 1.5},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{
			Transcripts: "transcripts",
			Output:      "output",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.API.Provider != "xai" {
		t.Errorf("Provider = %v, want xai", cfg.API.Provider)
	}
	if cfg.API.Model != "grok-beta" {
		t.Errorf("Model = %v, want grok-beta", cfg.API.Model)
	}
	if cfg.API.MaxRetries != 3 {
		t.Errorf("MaxRetries = %v, want 3", cfg.API.MaxRetries)
	}
	if cfg.Dataset.TrainRatio != 0.8 {
		t.Errorf("TrainRatio = %v, want 0.8", cfg.Dataset.TrainRatio)
	}
	if cfg.Dataset.ExamplesPerChunk != 5 {
		t.Errorf("ExamplesPerChunk = %v, want 5", cfg.Dataset.ExamplesPerChunk)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
api:
  provider: "xai"
  model: "grok-beta"
  temperature: 0.7
  max_retries: 3
  retry_delay: 5

paths:
  transcripts: "transcripts"
  output: "output"

dataset:
  train_ratio: 0.8
  examples_per_chunk: 5
  seed: 42

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Transcripts != "transcripts" {
		t.Errorf("Transcripts = %v, want %v", cfg.Paths.Transcripts, "transcripts")
	}

	if cfg.Dataset.Seed != 42 {
		t.Errorf("Seed = %v, want %v", cfg.Dataset.Seed, 42)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  transcripts: "transcripts"
  output: "output"
`
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("XAI_API_KEY", "test-key")
	t.Setenv("XAI_API_URL", "https://fake.example.com/v1")

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.XAIKey != "test-key" {
		t.Errorf("XAIKey = %v, want test-key", cfg.API.XAIKey)
	}
	if cfg.API.BaseURL != "https://fake.example.com/v1" {
		t.Errorf("BaseURL = %v, want env override", cfg.API.BaseURL)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
