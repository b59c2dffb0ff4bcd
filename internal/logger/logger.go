package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

type Logger = logrus.Logger
type LogEntry = logrus.Entry
type Fields = logrus.Fields

// DefaultLogPath 是未配置 log_path 时的日志文件。
const DefaultLogPath = "logs/stock-chat.log"

// shared 在进程内只有一个：包级的 Named 入口在 init 时就绑定到它，
// 因此只能修改其输出与级别，不能替换。
var shared = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard) // 终端归 TUI 所有
	l.SetFormatter(PlainFormatter{})
	return l
}()

// Configure 打开 caller 记录并设置级别；无法识别的级别保持原值并记一条警告。
func Configure(level string) {
	shared.SetReportCaller(true)
	shared.SetFormatter(PlainFormatter{})
	level = strings.TrimSpace(level)
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		shared.WithField("component", "logger").Warnf("unknown log_level %q, keeping %s", level, shared.GetLevel())
		return
	}
	shared.SetLevel(lvl)
}

// SetupFile 把日志追加写入 logPath（空串用 DefaultLogPath），返回文件与实际路径。
func SetupFile(logPath string) (io.Closer, string, error) {
	if logPath == "" {
		logPath = DefaultLogPath
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, "", err
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, "", err
	}
	shared.SetOutput(f)
	return f, logPath, nil
}

// Discard 把输出切回丢弃模式（文件关闭后或测试结束时）。
func Discard() {
	shared.SetOutput(io.Discard)
}

func Root() *Logger {
	return shared
}

// Named 返回带 component 字段的入口，各包以 `var log = logger.Named("pkg")` 使用。
func Named(component string) *LogEntry {
	entry := logrus.NewEntry(shared)
	if component == "" {
		return entry
	}
	return entry.WithField("component", component)
}

func Warnf(format string, args ...any) {
	shared.Warnf(format, args...)
}
