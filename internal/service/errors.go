package service

import "errors"

// Domain errors returned by services. The HTTP layer maps each of them to one
// status code; everything else is reported as an internal error.
var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidCredentials       = errors.New("incorrect email or password")
	ErrEmailNotVerified         = errors.New("email address is not verified")
	ErrAccountSuspended         = errors.New("account is suspended")
	ErrInvalidVerificationToken = errors.New("invalid or expired verification token")
	ErrAlreadyVerified          = errors.New("email is already verified")
	ErrSendingVerification      = errors.New("failed to send verification email")
	ErrTokenCreationFailed      = errors.New("token creation failed")
	ErrUnauthenticated          = errors.New("could not validate credentials")
	ErrForbidden                = errors.New("not enough permissions")

	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrAllergenInUse = errors.New("allergen is referenced by user allergies")

	ErrRecommendationFailed = errors.New("recommendation failed")
)
