package main

import (
	"github.com/dmitrymomot/convomail/internal/host"
	"github.com/dmitrymomot/convomail/internal/server"
	"github.com/dmitrymomot/convomail/pkg/llm"
	"github.com/dmitrymomot/convomail/pkg/logger"
	"github.com/dmitrymomot/convomail/pkg/mailer/resend"
)

type config struct {
	Logger  logger.Config
	Server  server.Config
	LLM     llm.Config
	Resend  resend.Config
	Profile host.Profile

	RedisURL       string `env:"REDIS_URL"`
	TemplatesDir   string `env:"TEMPLATES_DIR"`
	HistoryEntries int    `env:"HISTORY_MAX_ENTRIES" envDefault:"50"`
	RecentMessages int    `env:"HISTORY_RECENT_MESSAGES" envDefault:"10"`
}
