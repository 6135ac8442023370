package logger

import (
	"context"
	"log/slog"
)

type ctxKey int

const (
	conversationIDKey ctxKey = iota
	userIDKey
	requestIDKey
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// WithConversationID returns a context carrying the conversation id.
func WithConversationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, conversationIDKey, id)
}

// WithUserID returns a context carrying the user id.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// WithRequestID returns a context carrying the inbound request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// ConversationIDExtractor adds "conversation_id" when present.
func ConversationIDExtractor() ContextExtractor {
	return stringExtractor(conversationIDKey, "conversation_id")
}

// UserIDExtractor adds "user_id" when present.
func UserIDExtractor() ContextExtractor {
	return stringExtractor(userIDKey, "user_id")
}

// RequestIDExtractor adds "request_id" when present.
func RequestIDExtractor() ContextExtractor {
	return stringExtractor(requestIDKey, "request_id")
}

// DefaultExtractors returns the extractors every logger built by New carries.
func DefaultExtractors() []ContextExtractor {
	return []ContextExtractor{
		RequestIDExtractor(),
		ConversationIDExtractor(),
		UserIDExtractor(),
	}
}

func stringExtractor(key ctxKey, name string) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		v, ok := ctx.Value(key).(string)
		if !ok || v == "" {
			return slog.Attr{}, false
		}
		return slog.String(name, v), true
	}
}
