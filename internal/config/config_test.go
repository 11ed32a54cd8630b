package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !cfg.FormatEnabled("srt") || !cfg.FormatEnabled("vtt") || !cfg.FormatEnabled("txt") {
		t.Error("default config should enable all formats")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + dir + `/data"
import_dir = "` + dir + `/import"
log_dir = "` + dir + `/logs"
api_bind = "127.0.0.1:9999"

[export]
max_segments = 500
formats = ["SRT", "srt", " vtt "]

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be reported as existing")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Export.MaxSegments != 500 {
		t.Errorf("MaxSegments = %d, want 500", cfg.Export.MaxSegments)
	}
	if len(cfg.Export.Formats) != 2 {
		t.Errorf("Formats = %v, want deduplicated [srt vtt]", cfg.Export.Formats)
	}
	if cfg.FormatEnabled("txt") {
		t.Error("txt should be disabled when not listed")
	}
	if cfg.Paths.APIBind != "127.0.0.1:9999" {
		t.Errorf("APIBind = %q", cfg.Paths.APIBind)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero ceiling", func(c *Config) { c.Export.MaxSegments = 0 }, "max_segments"},
		{"unknown format", func(c *Config) { c.Export.Formats = []string{"xml"} }, "unknown format"},
		{"zero window", func(c *Config) { c.Captions.WindowSize = 0 }, "window_size"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if err := cfg.normalize(); err != nil {
				t.Fatalf("normalize: %v", err)
			}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestAPITokenEnvOverride(t *testing.T) {
	t.Setenv("LECTERN_API_TOKEN", "secret-from-env")
	cfg := Default()
	cfg.Paths.APIToken = "from-file"
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Paths.APIToken != "secret-from-env" {
		t.Errorf("APIToken = %q, want env override", cfg.Paths.APIToken)
	}
}
