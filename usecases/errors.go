package usecases

import (
	"errors"
	"fmt"
)

// Sentinel errors the handlers map onto HTTP status codes.
var (
	ErrInvalidCredentials    = errors.New("invalid email/username or password")
	ErrEmailTaken            = errors.New("email already exists")
	ErrUsernameTaken         = errors.New("username already exists")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

	ErrNotFound         = errors.New("not found")
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrSettingsNotFound = fmt.Errorf("settings %w", ErrNotFound)
	ErrEmailNotFound    = fmt.Errorf("email %w or account is inactive", ErrNotFound)
)

// ValidationError marks missing or malformed input; handlers return its
// message verbatim with a 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
