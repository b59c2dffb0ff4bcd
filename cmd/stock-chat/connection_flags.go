package main

import (
	"flag"
	"io"
	"strings"

	"stock-chat/internal/config"
	"stock-chat/internal/logger"
)

// connectionArgs 是交互模式与子命令共用的参数。
type connectionArgs struct {
	cfgPath         string
	url             string
	personality     string
	configOverrides stringSlice
}

func (c *connectionArgs) register(fs *flag.FlagSet) {
	fs.StringVar(&c.cfgPath, "config", "", "Path to config file (default ~/.stock-chat/config.toml)")
	fs.StringVar(&c.url, "url", "", "Chat service websocket URL (overrides config url)")
	fs.StringVar(&c.personality, "personality", "", "Advisor personality to start with")
	fs.StringVar(&c.personality, "p", "", "Alias for --personality")
	fs.Var(&c.configOverrides, "c", "Override config value key=value (repeatable)")
}

// resolve 按 文件 < 环境变量 < -c < 显式 flag 的顺序合并配置。
func (c *connectionArgs) resolve(root rootArgs) (config.Config, error) {
	cfg, err := config.Load(c.cfgPath)
	if err != nil {
		return cfg, err
	}
	cfg = config.ApplyKVOverrides(cfg, prependOverrides(root.overrides, []string(c.configOverrides)))
	if v := strings.TrimSpace(c.url); v != "" {
		cfg.URL = v
	}
	if v := strings.TrimSpace(c.personality); v != "" {
		cfg.Personality = v
	}
	return cfg, nil
}

// setupLogging 按配置初始化日志；返回的 closer 可能为 nil。
func setupLogging(cfg config.Config) io.Closer {
	logger.Configure(cfg.LogLevel)
	path := cfg.LogPath
	if strings.TrimSpace(path) == "" {
		path = logger.DefaultLogPath
	}
	closer, _, err := logger.SetupFile(path)
	if err != nil {
		logger.Warnf("failed to initialize log file (%s): %v", path, err)
		return nil
	}
	return closer
}
