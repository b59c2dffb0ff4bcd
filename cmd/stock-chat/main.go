package main

import (
	"fmt"
	"os"

	"stock-chat/internal/logger"
)

var log = logger.Named("cmd")

func main() {
	root, rest, err := parseRootArgs(os.Args[1:])
	if err != nil {
		fatalf("parse args: %v", err)
	}
	if len(rest) > 0 {
		switch rest[0] {
		case "ask":
			askMain(root, rest[1:])
			return
		case "ping":
			pingMain(root, rest[1:])
			return
		case "personalities":
			personalitiesMain(os.Stdout)
			return
		case "completion":
			completionMain(rest[1:])
			return
		}
	}

	runInteractive(root, rest)
}

// fatalf 同时写 stderr 与日志文件后退出；TUI 之外日志默认不可见。
func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Error(msg)
	_, _ = fmt.Fprintln(os.Stderr, "stock-chat: "+msg)
	os.Exit(1)
}
