package automation

import "context"

// Runtime is the host agent runtime the pipeline runs inside.
type Runtime interface {
	// GetSetting returns the named setting or "" when unset.
	GetSetting(name string) string
	// ComposeState assembles conversational state for msg.
	// A nil State with a nil error means no state is available.
	ComposeState(ctx context.Context, msg Message) (State, error)
}

// Generator produces text from a prompt.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Setting names read by the Service.
const (
	SettingEnabled          = "EMAIL_AUTOMATION_ENABLED"
	SettingResendAPIKey     = "RESEND_API_KEY"
	SettingDefaultTo        = "DEFAULT_TO_EMAIL"
	SettingDefaultFrom      = "DEFAULT_FROM_EMAIL"
	SettingEvaluationPrompt = "EMAIL_EVALUATION_PROMPT"
)
