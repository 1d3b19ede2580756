package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a queried row does not exist or is owned
	// by another user.
	ErrNotFound = errors.New("record not found")

	// ErrUserNotFound is returned when a user lookup matches no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when a user insert or update collides with an
	// existing email (compared case-insensitively).
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken is returned when a user insert or update collides with
	// an existing username (compared case-insensitively).
	ErrUsernameTaken = errors.New("username already taken")

	// ErrAlreadyExists is returned on any other unique constraint violation:
	// allergen names, allergies, preferences and per-day wellness logs.
	ErrAlreadyExists = errors.New("already exists")

	// ErrAllergenInUse is returned when deleting an allergen that is still
	// referenced by a user allergy.
	ErrAllergenInUse = errors.New("allergen is referenced by user allergies")

	// ErrReferenceNotFound is returned when a foreign key points at a missing row.
	ErrReferenceNotFound = errors.New("referenced record not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
