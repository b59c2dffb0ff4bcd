package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return errors.New("config path is empty and $HOME is not set")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// SavePersonality 只更新文件中的 personality，保留其他字段。
func SavePersonality(path, personality string) error {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	if content, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	cfg.Personality = personality
	return Save(path, cfg)
}
