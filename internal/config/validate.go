package config

import (
	"fmt"
	"strings"
)

var knownFormats = map[string]struct{}{
	"srt": {},
	"vtt": {},
	"txt": {},
}

var knownLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
	"":        {},
}

var knownLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
	"":      {},
}

// Validate reports configuration errors that would prevent safe operation.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Paths.DataDir) == "" {
		problems = append(problems, "paths.data_dir must be set")
	}
	if c.Export.MaxSegments <= 0 {
		problems = append(problems, "export.max_segments must be positive")
	}
	for _, format := range c.Export.Formats {
		if _, ok := knownFormats[format]; !ok {
			problems = append(problems, fmt.Sprintf("export.formats contains unknown format %q", format))
		}
	}
	if c.Captions.WindowSize <= 0 {
		problems = append(problems, "captions.window_size must be positive")
	}
	if _, ok := knownLogFormats[c.Logging.Format]; !ok {
		problems = append(problems, fmt.Sprintf("logging.format %q is not supported", c.Logging.Format))
	}
	if _, ok := knownLogLevels[c.Logging.Level]; !ok {
		problems = append(problems, fmt.Sprintf("logging.level %q is not supported", c.Logging.Level))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// FormatEnabled reports whether the given export format is allowed by policy.
func (c *Config) FormatEnabled(format string) bool {
	if len(c.Export.Formats) == 0 {
		return true
	}
	format = strings.ToLower(strings.TrimSpace(format))
	for _, enabled := range c.Export.Formats {
		if enabled == format {
			return true
		}
	}
	return false
}
