// Package host adapts the process environment and conversation history to
// the automation.Runtime contract.
package host

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrymomot/convomail/pkg/automation"
	"github.com/dmitrymomot/convomail/pkg/history"
)

// Profile describes the agent the conversations are held with.
type Profile struct {
	Name   string   `env:"AGENT_NAME" envDefault:"Agent"`
	Bio    string   `env:"AGENT_BIO"`
	Topics []string `env:"AGENT_TOPICS" envSeparator:","`
}

// Runtime implements automation.Runtime.
type Runtime struct {
	lookup  func(string) string
	store   history.Store
	profile Profile
	recent  int
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLookup replaces os.Getenv as the settings source.
func WithLookup(fn func(string) string) Option {
	return func(r *Runtime) {
		if fn != nil {
			r.lookup = fn
		}
	}
}

// WithRecentMessages sets how many earlier messages are placed in the state.
// Default: 10.
func WithRecentMessages(n int) Option {
	return func(r *Runtime) {
		if n > 0 {
			r.recent = n
		}
	}
}

// New creates a Runtime reading settings from the environment and history
// from store.
func New(store history.Store, profile Profile, opts ...Option) *Runtime {
	r := &Runtime{
		lookup:  os.Getenv,
		store:   store,
		profile: profile,
		recent:  10,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetSetting returns the trimmed setting value or "".
func (r *Runtime) GetSetting(name string) string {
	return strings.TrimSpace(r.lookup(name))
}

// Record appends msg to its conversation history.
func (r *Runtime) Record(ctx context.Context, msg automation.Message) error {
	return r.store.Append(ctx, conversationKey(msg), history.Entry{
		ID:     msg.ID,
		UserID: msg.UserID,
		Text:   msg.Content.Text,
	})
}

// ComposeState builds the prompt state for msg: the agent profile, the
// sender's display name and the earlier messages of the conversation.
// msg itself is excluded from recentMessages.
func (r *Runtime) ComposeState(ctx context.Context, msg automation.Message) (automation.State, error) {
	entries, err := r.store.Recent(ctx, conversationKey(msg), r.recent+1)
	if err != nil {
		return nil, errors.Join(errors.New("host: load history"), err)
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if msg.ID != "" && e.ID == msg.ID {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", automation.FormatUserIdentifier(e.UserID), e.Text))
	}
	if len(lines) > r.recent {
		lines = lines[len(lines)-r.recent:]
	}

	return automation.State{
		"agentName":      r.profile.Name,
		"bio":            r.profile.Bio,
		"topics":         strings.Join(r.profile.Topics, ", "),
		"senderName":     automation.FormatUserIdentifier(msg.UserID),
		"recentMessages": strings.Join(lines, "\n"),
		"metadata": map[string]any{
			"roomId":       msg.RoomID,
			"historyCount": len(lines),
		},
	}, nil
}

// conversationKey groups messages by room, or by user for direct messages.
func conversationKey(msg automation.Message) string {
	if msg.RoomID != "" {
		return "room:" + msg.RoomID
	}
	return "user:" + msg.UserID
}
