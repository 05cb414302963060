package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Password policy errors
var (
	ErrPasswordTooShort = errors.New("password should be at least 8 characters")
	ErrPasswordNoDigit  = errors.New("password should contain numbers")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// OTP errors
var (
	ErrOTPResendLimit = errors.New("verification code resend limit exceeded")
)

// Todo errors
var (
	ErrTodoNotFound = errors.New("todo not found")
)
