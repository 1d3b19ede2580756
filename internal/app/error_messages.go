// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// nutri-keeper server handlers and middleware.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Keeping them in one place keeps the wording of the API consistent.
package app

const (
	// MsgEmailVerified confirms a successful GET /api/auth/verify-email/{token}.
	MsgEmailVerified = "email verified successfully"

	// MsgVerificationSent confirms that a fresh verification link was mailed.
	MsgVerificationSent = "verification email sent"

	// MsgNotAuthenticated is returned when a protected route is called without
	// an Authorization header.
	MsgNotAuthenticated = "not authenticated"

	// MsgTooManyRequests is returned when the registration limiter rejects a
	// client.
	MsgTooManyRequests = "too many registration attempts, try again later"

	// MsgInternalServerError is the only detail a 500 response carries; the
	// cause is logged, never returned.
	MsgInternalServerError = "internal server error"

	MsgRouteNotFound    = "not found"
	MsgMethodNotAllowed = "method not allowed"

	// Body decoding failures.
	MsgInvalidJSON   = "JSON decode error"
	MsgBodyRequired  = "field required"
	MsgBodyTooLarge  = "request body too large"
	MsgInvalidPathID = "value is not a valid integer"
)
