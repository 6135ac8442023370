// Package llm binds prompt templates to conversational state and calls an
// OpenAI-compatible chat-completions endpoint.
//
// Prompt templates reference state values with dotted paths:
//
//	prompt := llm.Compose("Message: {{message.content.text}}", state)
//
// Paths walk nested maps. A path that does not resolve is replaced with an
// empty string, so a partially populated state still yields a usable prompt.
//
// Client implements a single text generation call with no retry:
//
//	client := llm.NewClient(llm.Config{APIKey: os.Getenv("OPENAI_API_KEY")})
//	text, err := client.GenerateText(ctx, prompt)
package llm
