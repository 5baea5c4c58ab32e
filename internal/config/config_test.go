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
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
					ModelDir:   "models",
				},
				Database: DatabaseConfig{
					URL: "postgres://localhost:5432/meetings",
				},
				Paths: PathsConfig{
					Intake: "data/intake",
				},
			},
			wantErr: false,
		},
		{
			name: "missing whisper binary",
			config: Config{
				Whisper: WhisperConfig{
					ModelDir: "models",
				},
				Database: DatabaseConfig{
					URL: "postgres://localhost:5432/meetings",
				},
				Paths: PathsConfig{
					Intake: "data/intake",
				},
			},
			wantErr: true,
		},
		{
			name: "missing database url",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
					ModelDir:   "models",
				},
				Paths: PathsConfig{
					Intake: "data/intake",
				},
			},
			wantErr: true,
		},
		{
			name: "missing intake path",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
					ModelDir:   "models",
				},
				Database: DatabaseConfig{
					URL: "postgres://localhost:5432/meetings",
				},
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
		Whisper: WhisperConfig{
			BinaryPath: "./whisper-cli",
			ModelDir:   "models",
		},
		Database: DatabaseConfig{
			URL: "postgres://localhost:5432/meetings",
		},
		Paths: PathsConfig{
			Intake: "data/intake",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.DefaultModel != "large-v3" {
		t.Errorf("DefaultModel = %v, want large-v3", cfg.Whisper.DefaultModel)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %v, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Performance.MaxWorkers != 2 {
		t.Errorf("MaxWorkers = %v, want 2", cfg.Performance.MaxWorkers)
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
whisper:
  binary_path: "./whisper-cli"
  model_dir: "models"
  default_model: "base"
  language: "en"

gemini:
  api_key: "test-key"

database:
  url: "postgres://localhost:5432/meetings"

paths:
  intake: "data/intake"
  work: "data/work"

logging:
  level: "info"
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

	if cfg.Whisper.DefaultModel != "base" {
		t.Errorf("DefaultModel = %v, want %v", cfg.Whisper.DefaultModel, "base")
	}

	if cfg.Paths.Intake != "data/intake" {
		t.Errorf("Intake = %v, want %v", cfg.Paths.Intake, "data/intake")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
