// Package automation turns conversation messages into summary emails.
//
// For every inbound message the Service builds a Context from the host
// runtime's composed state, asks a generative model whether the conversation
// warrants an email (the Gate), and if so asks the model for a structured
// summary (the Synthesizer). The summary text is parsed into Sections,
// validated, converted into a mailer.Document and delivered once through
// mailer.Mailer.
//
// Basic usage:
//
//	svc := automation.NewService(runtime, model,
//		automation.WithLogger(log),
//	)
//	if err := svc.Initialize(ctx); err != nil {
//		// pipeline stays inert; the process keeps running
//	}
//
//	sent, err := svc.Evaluate(ctx, automation.Message{
//		ID:      "msg-1",
//		UserID:  "123456789012345678",
//		Content: automation.Content{Text: "We are building a Go SDK..."},
//	})
//
// Evaluate reports (true, nil) when an email was sent and (false, nil) when
// the model decided to skip. Every failure is returned as (false, err), so an
// evaluation failure (ErrEvaluation) is never confused with a skip.
//
// # Settings
//
// Settings are read through Runtime.GetSetting:
//
//   - EMAIL_AUTOMATION_ENABLED: only "true" (any case) enables the pipeline
//   - RESEND_API_KEY, DEFAULT_TO_EMAIL, DEFAULT_FROM_EMAIL: required when enabled
//   - EMAIL_EVALUATION_PROMPT: optional replacement of the classification prompt
//
// # Model output format
//
// The synthesizer expects headings on their own lines:
//
//	Subject: Partnership on Go SDK
//
//	Background:
//	Ann leads platform at Acme.
//
//	Key Points:
//	• Wants a Go client
//	• Has budget this quarter
//
//	Next Steps:
//	1. Send API docs
//
// Background and Key Points are mandatory. Technical Details and Next Steps
// are appended only when present.
package automation
