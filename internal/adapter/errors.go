package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("upstream rejected credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("upstream rate limit exceeded")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("upstream unavailable")

	// ErrMalformedResponse is returned when an LLM response carries no
	// parsable ranking array.
	ErrMalformedResponse = errors.New("malformed ranker response")

	ErrMissingAPIKey  = errors.New("llm api key is not configured")
	ErrSendingEmail   = errors.New("failed to send email")
	ErrInvalidAddress = errors.New("invalid email address")
)
