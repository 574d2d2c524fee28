package domain

import "errors"

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageValidationFailed     = "validation failed"

	ErrParseUUID        = errors.New("failed to parse UUID")
	ErrTokenNotFound    = errors.New("session token not found")
	ErrTokenExpired     = errors.New("session token expired")
	ErrTokenInvalid     = errors.New("session token invalid")
	ErrCronUnauthorized = errors.New("missing or invalid scheduler secret")
)

// FieldError is one entry of the structured validation error list. Every
// violated field is reported, never just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
