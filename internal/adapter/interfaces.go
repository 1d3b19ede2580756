// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the server: the
// language-model ranker used by recommendations and the mailers used for
// account verification.
//
// Error values defined in errors.go are mapped from upstream HTTP status codes
// by mapHTTPError so that callers can use [errors.Is] regardless of the
// provider.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Mailer delivers transactional email.
type Mailer interface {
	// SendVerification sends the account verification link to a newly
	// registered or re-verifying user. An error means the message was not
	// accepted for delivery.
	SendVerification(ctx context.Context, msg VerificationEmail) error
}

// VerificationEmail is the content of an account verification message.
type VerificationEmail struct {
	To       string
	Username string
	Link     string
}
