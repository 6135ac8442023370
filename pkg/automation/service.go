package automation

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/dmitrymomot/convomail/pkg/logger"
	"github.com/dmitrymomot/convomail/pkg/mailer"
	"github.com/dmitrymomot/convomail/pkg/mailer/resend"
)

// SenderFactory builds the delivery Sender from the configured settings.
type SenderFactory func(apiKey, from string) mailer.Sender

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for the whole pipeline.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSenderFactory replaces the default Resend sender.
func WithSenderFactory(f SenderFactory) Option {
	return func(s *Service) {
		if f != nil {
			s.newSender = f
		}
	}
}

// WithRegistry sets the template registry used for rendering.
// Default: mailer.NewRegistry().
func WithRegistry(r *mailer.Registry) Option {
	return func(s *Service) {
		if r != nil {
			s.registry = r
		}
	}
}

// pipeline holds everything an active service needs per evaluation.
type pipeline struct {
	gate        *Gate
	synthesizer *Synthesizer
	mailer      *mailer.Mailer
	to          string
	from        string
}

// Service runs the conversation-to-email pipeline.
// It is inert until Initialize succeeds, and stays inert if it fails.
type Service struct {
	runtime   Runtime
	model     Generator
	registry  *mailer.Registry
	newSender SenderFactory
	logger    *slog.Logger
	active    atomic.Pointer[pipeline]
}

// NewService creates an inert Service.
func NewService(rt Runtime, model Generator, opts ...Option) *Service {
	s := &Service{
		runtime: rt,
		model:   model,
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = mailer.NewRegistry()
	}
	if s.newSender == nil {
		log := s.logger
		s.newSender = func(apiKey, from string) mailer.Sender {
			return resend.New(resend.Config{APIKey: apiKey, SenderEmail: from}, resend.WithLogger(log))
		}
	}
	return s
}

// Initialize reads settings and activates the pipeline.
// When EMAIL_AUTOMATION_ENABLED is not "true" the service stays inert and nil
// is returned. When a required setting is missing ErrConfiguration is logged
// and returned; the service stays inert and is not retried.
func (s *Service) Initialize(ctx context.Context) error {
	enabled := strings.EqualFold(strings.TrimSpace(s.runtime.GetSetting(SettingEnabled)), "true")
	s.logger.DebugContext(ctx, "email automation setting", slog.Bool("enabled", enabled))
	if !enabled {
		s.logger.InfoContext(ctx, "email automation is disabled")
		return nil
	}

	apiKey := s.runtime.GetSetting(SettingResendAPIKey)
	to := s.runtime.GetSetting(SettingDefaultTo)
	from := s.runtime.GetSetting(SettingDefaultFrom)
	if apiKey == "" || to == "" || from == "" {
		s.logger.ErrorContext(ctx, "failed to initialize email automation",
			slog.Bool("has_api_key", apiKey != ""),
			slog.Bool("has_to_email", to != ""),
			slog.Bool("has_from_email", from != ""),
			slog.Any("error", ErrConfiguration),
		)
		return ErrConfiguration
	}

	m := mailer.New(
		s.newSender(apiKey, from),
		mailer.NewRenderer(s.registry),
		mailer.Config{DefaultFrom: from},
		mailer.WithLogger(s.logger),
	)

	s.active.Store(&pipeline{
		gate:        NewGate(s.runtime, s.model, s.logger),
		synthesizer: NewSynthesizer(s.model, s.logger),
		mailer:      m,
		to:          to,
		from:        from,
	})
	s.logger.InfoContext(ctx, "email automation ready")
	return nil
}

// Active reports whether Initialize activated the pipeline.
func (s *Service) Active() bool {
	return s.active.Load() != nil
}

// Evaluate runs the pipeline for one message. It returns true when an email
// was sent and false when the model decided to skip. Any failure is returned
// with false; ErrEvaluation marks a failed decision, ErrInactive an
// uninitialized service.
func (s *Service) Evaluate(ctx context.Context, msg Message) (bool, error) {
	p := s.active.Load()
	if p == nil {
		s.logger.ErrorContext(ctx, "email automation not initialized")
		return false, ErrInactive
	}

	ctx = logger.WithConversationID(ctx, msg.ID)
	ctx = logger.WithUserID(ctx, msg.UserID)

	c, err := BuildContext(ctx, s.runtime, msg)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build conversation context", slog.Any("error", err))
		return false, err
	}

	s.logger.InfoContext(ctx, "evaluating conversation",
		slog.String("room_id", msg.RoomID),
		slog.Int("length", len(msg.Content.Text)),
	)

	send, err := p.gate.Decide(ctx, c)
	if err != nil {
		s.logger.ErrorContext(ctx, "email evaluation failed", slog.Any("error", err))
		return false, err
	}
	if !send {
		s.logger.InfoContext(ctx, "conversation does not warrant an email")
		return false, nil
	}

	draft, err := p.synthesizer.Synthesize(ctx, c)
	if err != nil {
		s.logger.ErrorContext(ctx, "email synthesis failed", slog.Any("error", err))
		return false, err
	}

	res, err := p.mailer.Deliver(ctx, draft.Document, mailer.DeliverOptions{
		To:      p.to,
		From:    p.from,
		Headers: draft.Headers,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "email delivery failed", slog.Any("error", err))
		return false, err
	}

	s.logger.InfoContext(ctx, "email sent",
		slog.String("id", res.ID),
		slog.String("provider", res.Provider),
	)
	return true, nil
}
