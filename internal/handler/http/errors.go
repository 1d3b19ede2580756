// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-nutri-keeper/internal/app"
)

// Sentinel errors produced by the HTTP layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New(app.MsgNotAuthenticated)

	// ErrNoUserInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	// ErrTooManyRequests is written when the registration limiter rejects
	// the caller.
	ErrTooManyRequests = errors.New(app.MsgTooManyRequests)

	// ErrInternal is the only message a 500 response ever carries.
	ErrInternal = errors.New(app.MsgInternalServerError)
)
