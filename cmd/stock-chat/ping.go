package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"stock-chat/internal/gateway"
	"stock-chat/internal/logger"
)

func pingMain(root rootArgs, args []string) {
	if err := runPing(root, args, os.Stdout); err != nil {
		fatalf("ping failed: %v", err)
	}
}

// runPing 只验证能否完成 WebSocket 握手。
func runPing(root rootArgs, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("ping", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var conn connectionArgs
	var timeoutSeconds int
	conn.register(fs)
	fs.IntVar(&timeoutSeconds, "timeout", 10, "Handshake timeout seconds")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := conn.resolve(root)
	if err != nil {
		return err
	}
	if timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSeconds)*time.Second)
	defer cancel()

	start := time.Now()
	client, err := gateway.Dial(ctx, gateway.Options{URL: cfg.URL, Wire: logger.NewWireLogger(nil)})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	if err := client.Close(); err != nil {
		log.WithError(err).Debug("close after ping")
	}
	_, _ = fmt.Fprintf(out, "ok: %s (client %s, %s)\n", cfg.URL, client.ClientID(), elapsed.Round(time.Millisecond))
	return nil
}
