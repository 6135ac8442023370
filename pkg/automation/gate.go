package automation

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/convomail/pkg/llm"
	"github.com/dmitrymomot/convomail/pkg/logger"
)

// Gate decides whether a conversation warrants an email.
type Gate struct {
	runtime Runtime
	model   Generator
	logger  *slog.Logger
}

// NewGate creates a Gate. A nil logger discards output.
func NewGate(rt Runtime, model Generator, log *slog.Logger) *Gate {
	if log == nil {
		log = logger.NewNope()
	}
	return &Gate{runtime: rt, model: model, logger: log}
}

// Decide binds the classification prompt to the conversation state and calls
// the model once. The answer is yes iff the output contains "[EMAIL]".
// A model failure is returned as ErrEvaluation, never as a "no".
func (g *Gate) Decide(ctx context.Context, c *Context) (bool, error) {
	template := classificationPrompt
	custom := g.runtime.GetSetting(SettingEvaluationPrompt)
	if custom != "" {
		template = custom
	}

	prompt := llm.Compose(template, c.State)
	g.logger.DebugContext(ctx, "classification prompt composed",
		slog.Bool("custom", custom != ""),
		slog.Int("length", len(prompt)),
	)

	out, err := g.model.GenerateText(ctx, prompt)
	if err != nil {
		return false, errors.Join(ErrEvaluation, err)
	}

	decision := strings.Contains(out, emailMarker)
	g.logger.InfoContext(ctx, "email decision",
		slog.Bool("send", decision),
		slog.String("output", strings.TrimSpace(out)),
	)
	return decision, nil
}
