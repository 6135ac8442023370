package automation

import (
	"context"
	"errors"
	"maps"
	"time"
)

// Content is the payload of a conversation message.
type Content struct {
	Text string `json:"text"`
}

// Message is a single inbound conversation message.
type Message struct {
	UserID  string  `json:"userId"`
	ID      string  `json:"id"`
	Content Content `json:"content"`
	RoomID  string  `json:"roomId,omitempty"`
}

// State is the composed conversational state prompts are bound to.
type State map[string]any

// Context is everything one pipeline invocation knows about the conversation.
// It is built once per message and not modified afterwards.
type Context struct {
	Timestamp      time.Time
	State          State
	Metadata       map[string]any
	ConversationID string
	Message        Message
}

// BuildContext composes state for msg through rt.
// When state is available the message itself is stored under "message".
// Metadata is taken from state["metadata"] and is never nil.
func BuildContext(ctx context.Context, rt Runtime, msg Message) (*Context, error) {
	state, err := rt.ComposeState(ctx, msg)
	if err != nil {
		return nil, errors.Join(ErrEvaluation, err)
	}

	if state != nil {
		state = maps.Clone(state)
		state["message"] = map[string]any{
			"content": map[string]any{"text": msg.Content.Text},
			"userId":  msg.UserID,
			"id":      msg.ID,
		}
	}

	metadata := map[string]any{}
	if md, ok := state["metadata"].(map[string]any); ok {
		metadata = maps.Clone(md)
	}

	return &Context{
		Message:        msg,
		State:          state,
		Metadata:       metadata,
		Timestamp:      time.Now(),
		ConversationID: msg.ID,
	}, nil
}
