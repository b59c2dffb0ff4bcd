package logger

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// 这些字段进入行首，不再在尾部重复。
var headerFields = map[string]bool{"component": true, "caller": true, "event": true}

// PlainFormatter 输出一行：caller [ts] [LEVEL] [component] [event=x] message k=v...
// event 通常是 socket 事件名（message_from_server 等）。
type PlainFormatter struct{}

func (PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return nil, nil
	}
	var b strings.Builder
	if caller := callerOf(entry); caller != "" {
		b.WriteString(caller)
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "[%s] [%s]", entry.Time.UTC().Format(time.RFC3339Nano), strings.ToUpper(entry.Level.String()))
	if component, _ := entry.Data["component"].(string); component != "" {
		fmt.Fprintf(&b, " [%s]", component)
	}
	if ev, ok := entry.Data["event"]; ok {
		fmt.Fprintf(&b, " [event=%v]", ev)
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if !headerFields[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func callerOf(entry *logrus.Entry) string {
	if entry.HasCaller() {
		return fmt.Sprintf("%s:%d", shortenFilePath(entry.Caller.File), entry.Caller.Line)
	}
	caller, _ := entry.Data["caller"].(string)
	return caller
}

// shortenFilePath 把绝对路径裁到仓库内的相对路径。
func shortenFilePath(file string) string {
	file = filepath.ToSlash(file)
	for _, dir := range []string{"/internal/", "/cmd/"} {
		if i := strings.Index(file, dir); i >= 0 {
			return file[i+1:]
		}
	}
	if _, rest, ok := strings.Cut(file, "/stock-chat/"); ok {
		return rest
	}
	return filepath.Base(file)
}
