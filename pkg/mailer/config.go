package mailer

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	DefaultFrom string `env:"DEFAULT_FROM_EMAIL" envDefault:"onboarding@resend.dev"`
}
