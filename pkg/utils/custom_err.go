package utils

import "errors"

var (
	ErrDuplicateAccount      = errors.New("an account with this email already exists")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidProfileType    = errors.New("invalid profile type")
	ErrTokenInvalidOrExpired = errors.New("reset token is invalid or expired")
	ErrValidationFailure     = errors.New("validation failure")
	ErrForbidden             = errors.New("forbidden")
	ErrNoDashboard           = errors.New("no dashboard available for this account")
	ErrDatabaseError         = errors.New("database error")
)
