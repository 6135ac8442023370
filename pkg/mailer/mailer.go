package mailer

import (
	"context"
	"errors"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/convomail/pkg/logger"
)

// Headers set on every delivered email.
const (
	HeaderTemplateID = "X-Template-ID"
	HeaderPriority   = "X-Email-Priority"
)

// Mailer renders documents and hands them to a Sender.
// It performs exactly one Sender call per delivery; retries belong to the Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	logger   *slog.Logger
	config   Config
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used for delivery diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a new Mailer with the given sender and renderer.
func New(sender Sender, renderer *Renderer, cfg Config, opts ...Option) *Mailer {
	if renderer == nil {
		renderer = NewRenderer(nil)
	}
	m := &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DeliverOptions contains addressing and provenance for a delivery.
type DeliverOptions struct {
	Headers     map[string]string // Merged with the template/priority headers
	Tags        Tags              // Merged with the template/priority tags
	To          string            // Recipient (required)
	From        string            // Override Config.DefaultFrom
	ReplyTo     string            // Reply-to address
	Template    string            // Override template selection by priority
	CC          []string          // Carbon copy
	BCC         []string          // Blind carbon copy
	Attachments []Attachment      // File attachments
}

// Deliver renders the document to HTML and plain text and sends it.
// The Sender's Result is returned unchanged.
func (m *Mailer) Deliver(ctx context.Context, doc *Document, opts DeliverOptions) (*Result, error) {
	if opts.To == "" {
		return nil, ErrNoRecipient
	}
	if doc == nil {
		return nil, ErrNoContent
	}
	if doc.Subject == "" {
		return nil, ErrNoSubject
	}

	templateID := opts.Template
	if templateID == "" {
		templateID = TemplateFor(doc)
	}

	rendered, err := m.renderer.RenderWith(templateID, doc)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	priority := string(doc.Metadata.Priority)

	headers := make(map[string]string, len(opts.Headers)+2)
	maps.Copy(headers, opts.Headers)
	headers[HeaderTemplateID] = rendered.TemplateID
	headers[HeaderPriority] = priority

	tags := make(Tags, len(opts.Tags)+2)
	maps.Copy(tags, opts.Tags)
	tags["template"] = rendered.TemplateID
	tags["priority"] = priority

	from := opts.From
	if from == "" {
		from = m.config.DefaultFrom
	}

	email := &Email{
		To:          []string{opts.To},
		From:        from,
		Subject:     doc.Subject,
		HTML:        rendered.HTML,
		Text:        PlainText(doc),
		ReplyTo:     opts.ReplyTo,
		CC:          opts.CC,
		BCC:         opts.BCC,
		Headers:     headers,
		Tags:        tags,
		Attachments: opts.Attachments,
	}

	m.logger.DebugContext(ctx, "delivering email",
		slog.String("to", opts.To),
		slog.String("subject", doc.Subject),
		slog.String("template", rendered.TemplateID),
		slog.Int("blocks", len(doc.Blocks)),
	)

	result, err := m.sender.Send(ctx, email)
	if err != nil {
		m.logger.ErrorContext(ctx, "email delivery failed",
			slog.String("to", opts.To),
			slog.String("subject", doc.Subject),
			slog.Any("error", err),
		)
		return nil, errors.Join(ErrSendFailed, err)
	}

	m.logger.InfoContext(ctx, "email delivered",
		slog.String("id", result.ID),
		slog.String("provider", result.Provider),
	)

	return result, nil
}
