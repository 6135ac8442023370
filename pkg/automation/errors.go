package automation

import "errors"

var (
	ErrConfiguration       = errors.New("automation: missing required email configuration")
	ErrEvaluation          = errors.New("automation: could not evaluate conversation")
	ErrSynthesis           = errors.New("automation: email synthesis failed")
	ErrSynthesisValidation = errors.New("automation: synthesized email is missing mandatory sections")
	ErrInactive            = errors.New("automation: service is not active")
)
