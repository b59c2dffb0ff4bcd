package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"stock-chat/internal/config"
	"stock-chat/internal/events"
	"stock-chat/internal/gateway"
	"stock-chat/internal/logger"
	"stock-chat/internal/tui"
)

type interactiveArgs struct {
	connectionArgs
	copyableOutput bool
}

func newInteractiveFlagSet(name string) (*flag.FlagSet, *interactiveArgs) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	args := &interactiveArgs{}
	args.register(fs)
	fs.BoolVar(&args.copyableOutput, "copyable-output", false, "Disable alt screen to allow mouse selection/copy")
	return fs, args
}

func runInteractive(root rootArgs, args []string) {
	fs, cli := newInteractiveFlagSet("stock-chat")
	if err := fs.Parse(args); err != nil {
		fatalf("parse args: %v", err)
	}
	cfg, err := cli.resolve(root)
	if err != nil {
		fatalf("failed to load config: %v", err)
	}
	if closer := setupLogging(cfg); closer != nil {
		defer closer.Close()
	}

	queue := events.NewQueue(0)
	defer queue.Close()
	sub := queue.Subscribe()

	opts := tui.Options{
		Personality:    cfg.Personality,
		HistorySize:    cfg.HistorySize,
		Markdown:       cfg.Markdown,
		Events:         sub,
		CopyableOutput: cli.copyableOutput,
		SavePersonality: func(p string) error {
			return config.SavePersonality(cfg.Source, p)
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := gateway.Dial(ctx, gateway.Options{
		URL:   cfg.URL,
		Queue: queue,
		Wire:  logger.NewWireLogger(nil),
	})
	if err != nil {
		log.WithError(err).Warn("starting offline")
		opts.Notice = fmt.Sprintf("Could not connect to %s (%v). Messages will not be delivered.", cfg.URL, err)
	} else {
		defer client.Close()
		opts.Sender = client
		// 服务端默认人格之外的配置需要在连接后同步一次。
		if p, ok := tui.ResolvePersonality(cfg.Personality); ok && p != tui.DefaultPersonality {
			if err := client.ChangePersonality(ctx, p); err != nil {
				log.WithError(err).Warn("sync personality failed")
			}
		}
	}

	res, err := tui.Run(opts)
	if err != nil {
		fatalf("tui: %v", err)
	}
	log.WithField("personality", res.Personality).Infof("session ended with %d history entries", len(res.History))
}
