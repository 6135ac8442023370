package resend

import "errors"

// ErrMissingDeliveryID indicates Resend accepted the call but returned no email id.
// It is handled like any other failed attempt.
var ErrMissingDeliveryID = errors.New("resend: missing delivery id in response")
