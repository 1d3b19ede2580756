// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation and enforcement of business
// rules for request payloads.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional scoping via string arguments (field names or the
//     [ScopeCreate] / [ScopeUpdate] markers).
//   - Errors: accumulated per-field failures rendered by the HTTP layer as
//     422 {"detail": [{loc, msg, type}]}.
//
// This package decouples validation logic from transport layers and storage.
package validators

import "context"

// Validation scopes. Create scope requires mandatory fields, update scope
// only checks the fields that are present.
const (
	ScopeCreate = "create"
	ScopeUpdate = "update"
)

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields or scopes.
	Validate(context.Context, any, ...string) error
}

func hasScope(scopes []string, scope string) bool {
	for _, s := range scopes {
		if s == scope {
			return true
		}
	}
	return false
}
