package routes

import (
	"errors"

	"github.com/staybluo/pkg/domains/auth"
)

// statusFor maps a service error to an HTTP status: 400 for conditions the
// caller can fix, 500 for everything server-side (store, config, provider).
// Errors raised inside a dispatch attempt count as server-side even when
// they are validation failures; the store write already happened.
func statusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrDuplicateUser),
		errors.Is(err, auth.ErrUserNotFound),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrNotVerified),
		errors.Is(err, auth.ErrOTPMismatch),
		errors.Is(err, auth.ErrMissingIdentifier):
		return 400
	default:
		return 500
	}
}
