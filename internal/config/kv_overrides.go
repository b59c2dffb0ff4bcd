package config

import (
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "url":
			cfg.URL = val
		case "personality":
			cfg.Personality = val
		case "history_size":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				cfg.HistorySize = n
			}
		case "markdown":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.Markdown = b
			}
		case "log_path":
			cfg.LogPath = val
		case "log_level":
			cfg.LogLevel = val
		}
	}
	return cfg
}
