package mailer

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates the document has nothing to render.
	ErrNoContent = errors.New("email must have content")

	// ErrTemplateNotFound indicates no template is registered under the requested id.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateValidation indicates a template was rejected at registration time.
	ErrTemplateValidation = errors.New("invalid template")

	// ErrRenderFailed indicates template rendering failed.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)

// ProviderError is the uniform failure returned by provider adapters once
// their retry budget is spent. Callers never need to inspect provider-specific
// error shapes: the last underlying cause is available through Unwrap.
type ProviderError struct {
	LastAttemptAt time.Time
	Err           error
	Provider      string
	Attempts      int
}

// Error implements error.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("error in %s provider after %d attempt(s): %v", e.Provider, e.Attempts, e.Err)
}

// Unwrap returns the last underlying provider error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}
