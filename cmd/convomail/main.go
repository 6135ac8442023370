package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/convomail/internal/host"
	"github.com/dmitrymomot/convomail/internal/server"
	"github.com/dmitrymomot/convomail/pkg/automation"
	"github.com/dmitrymomot/convomail/pkg/history"
	"github.com/dmitrymomot/convomail/pkg/llm"
	"github.com/dmitrymomot/convomail/pkg/logger"
	"github.com/dmitrymomot/convomail/pkg/mailer"
	"github.com/dmitrymomot/convomail/pkg/mailer/resend"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; the environment is used as is.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[config]()
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	log := logger.New(cfg.Logger)
	defer logger.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openHistory(ctx, cfg)
	if err != nil {
		return err
	}

	registry := mailer.NewRegistry()
	if cfg.TemplatesDir != "" {
		if err := registry.LoadTemplates(os.DirFS(cfg.TemplatesDir), "."); err != nil {
			return fmt.Errorf("load templates: %w", err)
		}
		log.Info("templates loaded", slog.Any("ids", registry.IDs()))
	}

	rt := host.New(store, cfg.Profile, host.WithRecentMessages(cfg.RecentMessages))
	svc := automation.NewService(rt, llm.NewClient(cfg.LLM),
		automation.WithLogger(log),
		automation.WithRegistry(registry),
		automation.WithSenderFactory(func(apiKey, from string) mailer.Sender {
			rc := cfg.Resend
			rc.APIKey = apiKey
			rc.SenderEmail = from
			return resend.New(rc, resend.WithLogger(log))
		}),
	)
	if err := svc.Initialize(ctx); err != nil {
		log.Warn("email automation inactive", slog.Any("error", err))
	}

	checks := server.Checks{
		"history": store.Ping,
		"automation": func(context.Context) error {
			if !svc.Active() {
				return automation.ErrInactive
			}
			return nil
		},
	}

	srv := server.New(cfg.Server, newRouter(svc, rt, checks, log),
		server.WithLogger(log),
		server.WithShutdownHook(func(context.Context) error { return store.Close() }),
	)
	return srv.Run(ctx)
}

func openHistory(ctx context.Context, cfg config) (history.Store, error) {
	opts := []history.Option{history.WithMaxEntries(cfg.HistoryEntries)}
	if cfg.RedisURL == "" {
		return history.NewMemory(opts...), nil
	}

	client, err := history.Open(ctx, cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return history.NewRedis(client, append(opts, history.WithPrefix("convomail"))...), nil
}
