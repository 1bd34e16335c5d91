package auth

import "errors"

// Caller-fixable failure conditions. Routes map these to 400; anything else
// that escapes the service is a server-side failure and maps to 500.
var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("user not verified")
	ErrOTPMismatch        = errors.New("invalid OTP")
	ErrMissingIdentifier  = errors.New("email or phone number is required")
)
