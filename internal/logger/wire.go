package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// WireLogger 记录与聊天服务之间收发的原始帧。
type WireLogger interface {
	Sent(event string, frame []byte)
	Received(event string, frame []byte)
	Error(op string, err error)
}

// StdWireLogger 使用 logrus 输出帧日志，帧内容截断到 MaxFrame 字节。
type StdWireLogger struct {
	entry    *logrus.Entry
	MaxFrame int
}

// NewWireLogger 构造默认的帧日志记录器；l 为 nil 时复用全局 logger。
func NewWireLogger(l *Logger) *StdWireLogger {
	if l == nil {
		l = shared
	}
	return &StdWireLogger{
		entry:    logrus.NewEntry(l).WithField("component", "wire"),
		MaxFrame: 512,
	}
}

func (w *StdWireLogger) Sent(event string, frame []byte) {
	w.log(logrus.DebugLevel, event, "-> "+w.clip(frame))
}

func (w *StdWireLogger) Received(event string, frame []byte) {
	w.log(logrus.DebugLevel, event, "<- "+w.clip(frame))
}

func (w *StdWireLogger) Error(op string, err error) {
	if w == nil || w.entry == nil || err == nil {
		return
	}
	w.entry.WithField("op", op).Errorf("!! %v", err)
}

func (w *StdWireLogger) log(level logrus.Level, event, msg string) {
	if w == nil || w.entry == nil {
		return
	}
	if !w.entry.Logger.IsLevelEnabled(level) {
		return
	}
	w.entry.WithField("event", event).Log(level, msg)
}

func (w *StdWireLogger) clip(frame []byte) string {
	text := sanitize(string(frame))
	if w.MaxFrame > 0 && len(text) > w.MaxFrame {
		return text[:w.MaxFrame] + "…"
	}
	return text
}

// NoopWireLogger 忽略所有帧日志。
type NoopWireLogger struct{}

func (NoopWireLogger) Sent(string, []byte)     {}
func (NoopWireLogger) Received(string, []byte) {}
func (NoopWireLogger) Error(string, error)     {}

func sanitize(text string) string {
	text = strings.ReplaceAll(text, "\n", `\n`)
	text = strings.ReplaceAll(text, "\r", `\r`)
	return text
}
