package resend

import "time"

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey      string        `env:"RESEND_API_KEY"`
	SenderEmail string        `env:"DEFAULT_FROM_EMAIL"`
	SenderName  string        `env:"RESEND_FROM_NAME"`
	MaxAttempts int           `env:"RESEND_MAX_ATTEMPTS" envDefault:"3"`
	BaseDelay   time.Duration `env:"RESEND_RETRY_DELAY" envDefault:"1s"`
}

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
)

func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = defaultBaseDelay
	}
	return c
}
