package llm

import "errors"

var (
	ErrMissingAPIKey   = errors.New("llm: missing API key")
	ErrRequestFailed   = errors.New("llm: request failed")
	ErrUnexpectedReply = errors.New("llm: unexpected response")
)
