package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/rehab-plan/internal/config"
	"github.com/iwvelando/rehab-plan/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	t.Setenv(constants.ServerAddressEnv, "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected address %s, got %s", constants.DefaultServerAddress, cfg.Address)
	}
	if cfg.UploadSizeBytes() != constants.DefaultMaxUploadSizeBytes {
		t.Fatalf("expected %d byte case file limit, got %d", constants.DefaultMaxUploadSizeBytes, cfg.UploadSizeBytes())
	}
	if cfg.Logging != (config.LoggingConfig{}) {
		t.Fatalf("expected empty logging defaults, got %+v", cfg.Logging)
	}
}

func TestLoadConfigExampleFile(t *testing.T) {
	t.Setenv(constants.ServerAddressEnv, "")

	cfg, err := LoadConfig(filepath.Join("..", "..", "server-config.yaml.example"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != ":8080" {
		t.Fatalf("expected address :8080, got %s", cfg.Address)
	}
	if cfg.UploadSizeBytes() != 256*1024 {
		t.Fatalf("expected 256KB case file limit, got %d", cfg.UploadSizeBytes())
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Fatalf("expected info/json logging, got %+v", cfg.Logging)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv(constants.ServerAddressEnv, "")
	path := filepath.Join(t.TempDir(), "server-config.yaml")

	contents := []byte(`address: 127.0.0.1:9000
maxUploadSize: 1MB
logging:
  level: debug
  format: console
  outputFile: logs/plan-server.log
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Address)
	}
	if cfg.UploadSizeBytes() != 1<<20 {
		t.Fatalf("expected 1MB case file limit, got %d", cfg.UploadSizeBytes())
	}
	want := config.LoggingConfig{Level: "debug", Format: "console", OutputFile: "logs/plan-server.log"}
	if cfg.Logging != want {
		t.Fatalf("expected logging %+v, got %+v", want, cfg.Logging)
	}
}

func TestLoadConfigRejectsBadSizes(t *testing.T) {
	for _, size := range []string{"invalid", "1TB", "9999999999G"} {
		t.Run(size, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte("maxUploadSize: \""+size+"\"\n"), 0600); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Fatalf("expected error for maxUploadSize %q", size)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"", constants.DefaultMaxUploadSizeBytes},
		{"262144", constants.DefaultMaxUploadSizeBytes},
		{"256KB", constants.DefaultMaxUploadSizeBytes},
		{"256k", constants.DefaultMaxUploadSizeBytes},
		{" 512B ", 512},
		{"2M", 2 << 20},
		{"1gb", 1 << 30},
	}

	for _, tt := range tests {
		got, err := ParseSize(tt.input)
		if err != nil {
			t.Fatalf("ParseSize(%q) returned error: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Fatalf("ParseSize(%q) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

func TestLoadConfigAddressFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server-config.yaml")
	if err := os.WriteFile(path, []byte("address: 127.0.0.1:9000\n"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	t.Setenv(constants.ServerAddressEnv, ":7070")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != ":7070" {
		t.Fatalf("expected address from environment, got %s", cfg.Address)
	}
}

func TestSetUploadSizeBytes(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	cfg.SetUploadSizeBytes(0)
	if cfg.UploadSizeBytes() != constants.DefaultMaxUploadSizeBytes {
		t.Fatalf("non-positive override should be ignored, got %d", cfg.UploadSizeBytes())
	}

	cfg.SetUploadSizeBytes(4096)
	if cfg.UploadSizeBytes() != 4096 || cfg.MaxUploadSize != "4096" {
		t.Fatalf("expected 4096 override, got %d (%s)", cfg.UploadSizeBytes(), cfg.MaxUploadSize)
	}
}
