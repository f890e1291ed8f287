package errors

import "net/http"

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeAccountInactive    ErrorType = "account_inactive"
	ErrorTypeTokenExpired       ErrorType = "token_expired"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
)

// NewInvalidCredentialsError creates an error for invalid login credentials.
// The message deliberately does not reveal whether the email or the password was wrong.
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidCredentials,
		Message: "Invalid email or password",
		Code:    http.StatusUnauthorized,
	}
}

// NewAccountInactiveError creates an error for accounts that have not been verified or were disabled
func NewAccountInactiveError() *AppError {
	return &AppError{
		Type:    ErrorTypeAccountInactive,
		Message: "Account is not active",
		Code:    http.StatusForbidden,
	}
}

// NewTokenExpiredError creates an error for expired tokens
func NewTokenExpiredError() *AppError {
	return &AppError{
		Type:    ErrorTypeTokenExpired,
		Message: "Token has expired",
		Code:    http.StatusUnauthorized,
	}
}

// NewTokenInvalidError creates an error for malformed or tampered tokens
func NewTokenInvalidError() *AppError {
	return &AppError{
		Type:    ErrorTypeTokenInvalid,
		Message: "Token is invalid",
		Code:    http.StatusUnauthorized,
	}
}
