package config

import (
	"os"
	"strings"
)

// normalize expands paths, trims string fields, and applies environment
// overrides. Runs before Validate so validation sees final values.
func (c *Config) normalize() error {
	var err error
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return err
	}
	if c.Paths.ImportDir, err = expandPath(strings.TrimSpace(c.Paths.ImportDir)); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return err
	}

	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	c.Paths.APIToken = strings.TrimSpace(c.Paths.APIToken)
	if token := strings.TrimSpace(os.Getenv("LECTERN_API_TOKEN")); token != "" {
		c.Paths.APIToken = token
	}

	formats := make([]string, 0, len(c.Export.Formats))
	seen := make(map[string]struct{}, len(c.Export.Formats))
	for _, format := range c.Export.Formats {
		trimmed := strings.ToLower(strings.TrimSpace(format))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		formats = append(formats, trimmed)
	}
	c.Export.Formats = formats

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}
