// Package mailer renders typed email documents and delivers them through a provider.
//
// The package separates delivery (via providers) from rendering, allowing
// easy swapping of email providers while keeping the same template system.
//
// # Architecture
//
// The package consists of four main components:
//
//   - Document: subject, ordered content blocks and metadata
//   - Registry: named HTML layouts, validated at registration
//   - Renderer: turns a Document into HTML using a layout from the Registry
//   - Mailer: renders, derives the plain-text alternative and calls a Sender
//
// # Usage
//
//	import (
//		"context"
//		"os"
//
//		"github.com/dmitrymomot/convomail/pkg/mailer"
//		"github.com/dmitrymomot/convomail/pkg/mailer/resend"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		sender := resend.New(resend.Config{
//			APIKey:      os.Getenv("RESEND_API_KEY"),
//			SenderEmail: "team@example.com",
//		})
//
//		renderer := mailer.NewRenderer(mailer.NewRegistry())
//		m := mailer.New(sender, renderer, mailer.Config{DefaultFrom: "team@example.com"})
//
//		res, err := m.Deliver(ctx, &mailer.Document{
//			Subject: "Weekly summary",
//			Blocks: []mailer.Block{
//				mailer.Paragraph("Three new partners reached out."),
//				mailer.Heading("Highlights"),
//				mailer.BulletList("Acme wants an integration", "Globex asked for pricing"),
//			},
//			Metadata: mailer.DocumentMetadata{Priority: mailer.PriorityMedium},
//		}, mailer.DeliverOptions{To: "owner@example.com"})
//		if err != nil {
//			panic(err)
//		}
//		_ = res.ID
//	}
//
// # Templates
//
// High priority documents are rendered with the "notification" template, all
// others with "default". Custom layouts are registered with Registry.Register
// or loaded from a filesystem with Registry.LoadTemplates. Template files carry
// YAML frontmatter:
//
//	---
//	id: digest
//	name: Digest
//	variables: [Subject, Blocks]
//	style:
//	  container: "body { color: #333; }"
//	---
//	<html><body><h1>{{.Subject}}</h1>{{.Content}}</body></html>
//
// A layout must reference .Blocks or .Content; registration fails otherwise.
//
// # Block Text
//
// Block text usually comes from a generative model. It is treated as inline
// markdown and sanitized against an allow-list, so emphasis renders but raw
// HTML never reaches the output.
//
// # Errors
//
// The package defines several error variables for specific failure cases:
//
//   - ErrNoRecipient: No recipient specified
//   - ErrNoSubject: No subject provided
//   - ErrNoContent: No document provided
//   - ErrTemplateNotFound: Template or template directory not found
//   - ErrTemplateValidation: Template rejected at registration
//   - ErrRenderFailed: Template rendering failed
//   - ErrSendFailed: Email sending failed
//   - ErrInvalidFrontmatter: Invalid YAML frontmatter
//
// Provider adapters report exhausted retries as *ProviderError.
package mailer
