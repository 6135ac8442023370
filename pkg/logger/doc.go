// Package logger builds the structured slog logger used across the service.
//
// Records are written as JSON (or text) and enriched with request-scoped
// identifiers pulled from the context on every call. When a Sentry DSN is
// configured, warnings and errors are also forwarded to Sentry.
//
//	log := logger.New(logger.Config{Level: "debug"})
//
//	ctx = logger.WithConversationID(ctx, msg.ID)
//	ctx = logger.WithUserID(ctx, msg.UserID)
//	log.InfoContext(ctx, "message evaluated")
//	// {"level":"INFO","msg":"message evaluated","conversation_id":"...","user_id":"..."}
//
// Extra extractors can be attached with WithExtractors. An extractor returns
// false to leave a record untouched.
package logger
