package config

// Default returns the baseline configuration before any file overrides.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   "~/.local/share/lectern",
			ImportDir: "~/.local/share/lectern/import",
			LogDir:    "~/.local/share/lectern/logs",
			APIBind:   "127.0.0.1:7203",
		},
		Export: Export{
			MaxSegments: 20000,
			Formats:     []string{"srt", "vtt", "txt"},
		},
		Captions: Captions{
			WindowSize: 50,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}
