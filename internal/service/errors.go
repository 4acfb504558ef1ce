package service

import "errors"

// The error kinds handlers classify on. Validation and upstream failures are
// typed so any message can be carried; the rest are sentinels.

var (
	ErrPromptNotFound     = errors.New("prompt not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// ValidationError reports caller input that violates a stated constraint.
// The caller can always recover by changing the input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UpstreamError reports that the completion provider was unreachable,
// unconfigured, or returned an unusable response.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "completion provider unavailable: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func upstreamError(err error) error {
	return &UpstreamError{Err: err}
}

// IsUpstream reports whether err is an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
