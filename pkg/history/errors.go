package history

import "errors"

var (
	ErrEmptyKey           = errors.New("history: empty conversation key")
	ErrClosed             = errors.New("history: store closed")
	ErrMarshal            = errors.New("history: failed to marshal entry")
	ErrUnmarshal          = errors.New("history: failed to unmarshal entry")
	ErrEmptyConnectionURL = errors.New("history: empty redis connection URL")
	ErrFailedToParseURL   = errors.New("history: failed to parse redis connection URL")
	ErrConnectionFailed   = errors.New("history: failed to establish redis connection")
	ErrUnavailable        = errors.New("history: backend unavailable")
)
