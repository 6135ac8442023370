package automation

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/convomail/pkg/mailer"
)

type fakeRuntime struct {
	settings map[string]string
	state    State
	err      error
}

func (r *fakeRuntime) GetSetting(name string) string {
	return r.settings[name]
}

func (r *fakeRuntime) ComposeState(context.Context, Message) (State, error) {
	return r.state, r.err
}

// scriptedModel replays outputs in order and records every prompt.
type scriptedModel struct {
	outputs []string
	errs    []error
	prompts []string
	mu      sync.Mutex
}

func (m *scriptedModel) GenerateText(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := len(m.prompts)
	m.prompts = append(m.prompts, prompt)
	if i < len(m.errs) && m.errs[i] != nil {
		return "", m.errs[i]
	}
	if i < len(m.outputs) {
		return m.outputs[i], nil
	}
	return "", nil
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, email *mailer.Email) (*mailer.Result, error) {
	args := m.Called(ctx, email)
	res, _ := args.Get(0).(*mailer.Result)
	return res, args.Error(1)
}

const wellFormedOutput = `<quotes>"I run platform at Acme"</quotes>

Subject: Acme platform lead wants a Go SDK

Background:
Ann leads the platform team at Acme.
They ship payment APIs.

Key Points:
• Needs a Go client for the API
- Has budget approved this quarter

Technical Details:
• Handles 2k requests per second

Next Steps:
1. Send API documentation
2. Schedule a call
`

func enabledSettings() map[string]string {
	return map[string]string{
		SettingEnabled:      "true",
		SettingResendAPIKey: "re_test",
		SettingDefaultTo:    "owner@example.com",
		SettingDefaultFrom:  "agent@example.com",
	}
}
