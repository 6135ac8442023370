package resend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/convomail/pkg/logger"
	"github.com/dmitrymomot/convomail/pkg/mailer"
)

// ProviderName identifies Resend in results and errors.
const ProviderName = "resend"

// emailsAPI is the subset of the Resend client used by Sender.
type emailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Sender implements mailer.Sender using the Resend API.
// Transient failures are retried with linear backoff up to Config.MaxAttempts tries.
type Sender struct {
	emails emailsAPI
	logger *slog.Logger
	now    func() time.Time
	config Config
}

// Option configures a Sender.
type Option func(*Sender)

// WithLogger sets the logger used to report failed attempts.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sender) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a new Resend sender.
func New(cfg Config, opts ...Option) *Sender {
	return newSender(resend.NewClient(cfg.APIKey).Emails, cfg, opts...)
}

func newSender(emails emailsAPI, cfg Config, opts ...Option) *Sender {
	s := &Sender{
		emails: emails,
		config: cfg.withDefaults(),
		logger: logger.NewNope(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send implements mailer.Sender.
// After the last failed attempt it returns a *mailer.ProviderError wrapping the last cause.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (*mailer.Result, error) {
	req := s.buildRequest(email)

	var (
		state   = stateAttempting
		attempt int
		lastErr error
		id      string
	)

	for {
		switch state {
		case stateAttempting:
			attempt++
			id, lastErr = s.attempt(ctx, req)
			switch {
			case lastErr == nil:
				state = stateSucceeded
			case isTransient(lastErr) && attempt < s.config.MaxAttempts:
				state = stateBackoff
			default:
				state = stateExhausted
			}

			if lastErr != nil {
				s.logger.ErrorContext(ctx, "resend attempt failed",
					slog.Int("attempt", attempt),
					slog.String("next", state.String()),
					slog.Any("to", email.To),
					slog.String("subject", email.Subject),
					slog.Any("error", lastErr),
				)
			}

		case stateBackoff:
			if err := wait(ctx, backoffDelay(attempt, s.config.BaseDelay)); err != nil {
				lastErr = errors.Join(lastErr, err)
				state = stateExhausted
				continue
			}
			state = stateAttempting

		case stateSucceeded:
			s.logger.DebugContext(ctx, "email sent", slog.String("id", id), slog.Int("attempt", attempt))
			return &mailer.Result{
				ID:        id,
				Provider:  ProviderName,
				Status:    mailer.StatusSuccess,
				Timestamp: s.now(),
			}, nil

		case stateExhausted:
			return nil, &mailer.ProviderError{
				Provider:      ProviderName,
				Err:           lastErr,
				Attempts:      attempt,
				LastAttemptAt: s.now(),
			}
		}
	}
}

// attempt performs a single provider call.
func (s *Sender) attempt(ctx context.Context, req *resend.SendEmailRequest) (string, error) {
	resp, err := s.emails.SendWithContext(ctx, req)
	if err != nil {
		return "", err
	}
	if resp == nil || resp.Id == "" {
		return "", ErrMissingDeliveryID
	}
	return resp.Id, nil
}

func (s *Sender) buildRequest(email *mailer.Email) *resend.SendEmailRequest {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	}

	if len(email.Attachments) > 0 {
		req.Attachments = convertAttachments(email.Attachments)
	}
	if len(email.Tags) > 0 {
		req.Tags = convertTags(email.Tags)
	}

	return req
}

func convertAttachments(attachments []mailer.Attachment) []*resend.Attachment {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		result[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
			ContentId:   a.ContentID,
		}
	}
	return result
}

func convertTags(tags mailer.Tags) []resend.Tag {
	result := make([]resend.Tag, 0, len(tags))
	for name, value := range tags {
		result = append(result, resend.Tag{
			Name:  name,
			Value: tagValue(value),
		})
	}
	return result
}

// tagValue converts any value to a string for Resend's tag API.
// Presence-only tags (struct{}{}) become "true".
func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
