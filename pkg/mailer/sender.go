package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery,
// including any provider-side retry policy.
type Sender interface {
	// Send delivers an email message.
	// The Email must have To, Subject, and HTML already set.
	// A nil error always comes with a Result carrying a non-empty ID.
	Send(ctx context.Context, email *Email) (*Result, error)
}
