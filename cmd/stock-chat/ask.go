package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"stock-chat/internal/events"
	"stock-chat/internal/format"
	"stock-chat/internal/gateway"
	"stock-chat/internal/logger"
	"stock-chat/internal/tui"
	"stock-chat/internal/tui/render"
)

func askMain(root rootArgs, args []string) {
	if err := runAsk(root, args, os.Stdout); err != nil {
		fatalf("ask failed: %v", err)
	}
}

// runAsk 发送一条消息，等待第一条服务端回复并以纯文本输出。
func runAsk(root rootArgs, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("ask", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var conn connectionArgs
	var timeoutSeconds int
	var width int
	var raw bool
	conn.register(fs)
	fs.IntVar(&timeoutSeconds, "timeout", 60, "Seconds to wait for a reply")
	fs.IntVar(&width, "width", 80, "Wrap width for formatted output")
	fs.BoolVar(&raw, "raw", false, "Print the reply text without formatting")

	if err := fs.Parse(args); err != nil {
		return err
	}
	question := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if question == "" {
		return errors.New("missing question: stock-chat ask [flags] <question>")
	}
	cfg, err := conn.resolve(root)
	if err != nil {
		return err
	}
	if closer := setupLogging(cfg); closer != nil {
		defer closer.Close()
	}
	if timeoutSeconds <= 0 {
		timeoutSeconds = 60
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSeconds)*time.Second)
	defer cancel()

	queue := events.NewQueue(0)
	defer queue.Close()
	sub := queue.Subscribe()

	client, err := gateway.Dial(ctx, gateway.Options{URL: cfg.URL, Queue: queue, Wire: logger.NewWireLogger(nil)})
	if err != nil {
		return err
	}
	defer client.Close()

	personality, ok := tui.ResolvePersonality(cfg.Personality)
	if !ok {
		return fmt.Errorf("unknown personality %q", cfg.Personality)
	}
	if personality != tui.DefaultPersonality {
		if err := client.ChangePersonality(ctx, personality); err != nil {
			return err
		}
	}
	if err := client.SendMessage(ctx, question); err != nil {
		return err
	}

	reply, err := awaitReply(ctx, sub)
	if err != nil {
		return err
	}
	if raw {
		_, err = fmt.Fprintln(out, reply.Message)
		return err
	}
	if reply.Personality == "" {
		reply.Personality = personality
	}
	blocks := format.Render(format.Message{
		Text:        reply.Message,
		Sender:      format.SenderBot,
		Personality: reply.Personality,
		Attachments: format.Attachments{Stock: reply.StockData, News: reply.NewsData},
	})
	for _, line := range render.LinesToPlainStrings(render.BlockLines(blocks, width, render.BlockOptions{})) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// awaitReply 等待第一条 message_from_server；personality_updated 的确认消息被跳过。
func awaitReply(ctx context.Context, sub <-chan events.Event) (events.ServerMessage, error) {
	for {
		select {
		case <-ctx.Done():
			return events.ServerMessage{}, fmt.Errorf("waiting for reply: %w", ctx.Err())
		case ev, ok := <-sub:
			if !ok {
				return events.ServerMessage{}, errors.New("event stream closed")
			}
			switch p := ev.Payload.(type) {
			case events.ServerMessage:
				return p, nil
			case events.ErrorNotice:
				return events.ServerMessage{}, fmt.Errorf("transport error: %s", p.Detail)
			}
		}
	}
}
