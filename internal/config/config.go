package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultURL         = "ws://localhost:5000/ws"
	DefaultPersonality = "Warren Buffett"
	DefaultHistorySize = 10
)

// Config is the only persisted config file schema.
type Config struct {
	URL         string `toml:"url"`
	Personality string `toml:"personality"`
	HistorySize int    `toml:"history_size"`
	Markdown    bool   `toml:"markdown"`
	LogPath     string `toml:"log_path"`
	LogLevel    string `toml:"log_level"`
	Source      string `toml:"-"`
}

func Default() Config {
	return Config{
		URL:         DefaultURL,
		Personality: DefaultPersonality,
		HistorySize: DefaultHistorySize,
		LogLevel:    "info",
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stock-chat", "config.toml")
}

// Load 读取配置文件，文件缺失时使用默认值；环境变量优先于文件。
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, err
	default:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return cfg, err
		}
	}
	applyEnv(&cfg)
	return cfg.normalized(), nil
}

func applyEnv(cfg *Config) {
	if env := strings.TrimSpace(os.Getenv("STOCK_CHAT_URL")); env != "" {
		cfg.URL = env
	}
	if env := strings.TrimSpace(os.Getenv("STOCK_CHAT_PERSONALITY")); env != "" {
		cfg.Personality = env
	}
}

func (c Config) normalized() Config {
	if strings.TrimSpace(c.URL) == "" {
		c.URL = DefaultURL
	}
	if strings.TrimSpace(c.Personality) == "" {
		c.Personality = DefaultPersonality
	}
	if c.HistorySize <= 0 {
		c.HistorySize = DefaultHistorySize
	}
	return c
}
