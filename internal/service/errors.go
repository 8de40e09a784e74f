package service

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyPaid          = errors.New("order already paid")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrPaymentNotConfigured = errors.New("payment gateway not configured")
	ErrCourierNotConfigured = errors.New("courier service not configured")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrNotOwner             = errors.New("not the owner of this post")
)

// ValidationError marks missing or malformed input; handlers translate it
// to a 400 with the message as-is.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
