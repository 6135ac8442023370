package automation

import (
	"context"
	"errors"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/convomail/pkg/llm"
	"github.com/dmitrymomot/convomail/pkg/logger"
	"github.com/dmitrymomot/convomail/pkg/mailer"
)

// Provenance headers attached to every synthesized email.
const (
	HeaderConversationID = "X-Conversation-ID"
	HeaderUserID         = "X-User-ID"
	HeaderPlatform       = "X-Platform"
	HeaderDisplayName    = "X-Display-Name"
)

const backgroundStyle = "margin-bottom: 1.5em;"

// Draft is a synthesized email ready for delivery.
type Draft struct {
	Document *mailer.Document
	Headers  map[string]string
	User     UserInfo
}

// Synthesizer asks the model for a structured summary and turns it into a
// mailer.Document.
type Synthesizer struct {
	model  Generator
	logger *slog.Logger
}

// NewSynthesizer creates a Synthesizer. A nil logger discards output.
func NewSynthesizer(model Generator, log *slog.Logger) *Synthesizer {
	if log == nil {
		log = logger.NewNope()
	}
	return &Synthesizer{model: model, logger: log}
}

// Synthesize calls the model once with the formatting prompt and builds a
// high priority document from the parsed sections.
// It returns ErrSynthesis when the model call fails and ErrSynthesisValidation
// when background or key points are missing.
func (s *Synthesizer) Synthesize(ctx context.Context, c *Context) (*Draft, error) {
	user := NewUserInfo(c.Message.UserID, c.Metadata)

	state := make(State, len(c.State)+4)
	maps.Copy(state, c.State)
	state["userInfo"] = user.stateValue()
	state["platform"] = string(user.Platform)
	state["originalMessage"] = c.Message.Content.Text
	state["messageContent"] = c.Message.Content.Text

	out, err := s.model.GenerateText(ctx, llm.Compose(formattingPrompt, state))
	if err != nil {
		return nil, errors.Join(ErrSynthesis, err)
	}

	sections := ParseSections(out)
	if err := sections.Validate(); err != nil {
		s.logger.ErrorContext(ctx, "synthesized email rejected", slog.Any("error", err))
		return nil, err
	}

	doc := BuildDocument(sections)
	s.logger.InfoContext(ctx, "email content prepared",
		slog.String("subject", doc.Subject),
		slog.Int("blocks", len(doc.Blocks)),
	)

	return &Draft{
		Document: doc,
		User:     user,
		Headers: map[string]string{
			HeaderConversationID: c.ConversationID,
			HeaderUserID:         user.ID,
			HeaderPlatform:       string(user.Platform),
			HeaderDisplayName:    user.DisplayName,
		},
	}, nil
}

// BuildDocument converts validated sections into a document.
func BuildDocument(s Sections) *mailer.Document {
	background := mailer.Paragraph(s.Background)
	background.Metadata = &mailer.BlockMetadata{Style: backgroundStyle}

	blocks := []mailer.Block{
		background,
		mailer.Heading(headingKeyPoints),
		mailer.BulletList(s.KeyPoints...),
	}
	if len(s.TechnicalDetails) > 0 {
		blocks = append(blocks, mailer.Heading(headingTechnicalDetails), mailer.BulletList(s.TechnicalDetails...))
	}
	if len(s.NextSteps) > 0 {
		blocks = append(blocks, mailer.Heading(headingNextSteps), mailer.BulletList(s.NextSteps...))
	}

	return &mailer.Document{
		Subject: s.Subject,
		Blocks:  blocks,
		Metadata: mailer.DocumentMetadata{
			Tone:     "professional",
			Intent:   "connection_request",
			Priority: mailer.PriorityHigh,
		},
	}
}
