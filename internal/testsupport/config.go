package testsupport

import (
	"path/filepath"
	"testing"

	"lectern/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.ImportDir = filepath.Join(base, "import")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.APIBind = "127.0.0.1:0"
	cfg.Paths.APIToken = ""

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithMaxSegments overrides the export segment ceiling on the test config.
func WithMaxSegments(limit int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Export.MaxSegments = limit
	}
}

// WithFormats restricts the enabled export formats on the test config.
func WithFormats(formats ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Export.Formats = formats
	}
}
