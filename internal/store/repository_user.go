package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and administrative updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     querier
}

// CreateUser persists a new account and returns it with server-assigned
// fields (UserID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - unique_violation on the email index → [ErrEmailTaken].
//   - unique_violation on the username index → [ErrUsernameTaken].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("users").
		Columns("email", "username", "password_hash", "account_status", "email_verified", "role", "timezone",
			"verification_token", "verification_token_expires_at").
		Values(user.Email, user.Username, user.PasswordHash, user.AccountStatus, user.EmailVerified, user.Role, user.Timezone,
			user.VerificationToken, user.VerificationTokenExpiresAt).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	if err = r.db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, userWriteError(err)
	}

	return created, nil
}

// FindUserByID retrieves an account by primary key.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", squirrel.Eq{"user_id": userID})
}

// FindUserByEmail retrieves an account by case-folded email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", squirrel.Expr("LOWER(email) = LOWER(?)", email))
}

// FindUserByUsername retrieves an account by case-folded username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", squirrel.Expr("LOWER(username) = LOWER(?)", username))
}

// FindPendingUserByToken retrieves a pending account whose verification
// token matches and has not expired at now.
func (r *userRepository) FindPendingUserByToken(ctx context.Context, token string, now time.Time) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindPendingUserByToken", squirrel.And{
		squirrel.Eq{"verification_token": token, "account_status": models.AccountPending},
		squirrel.Gt{"verification_token_expires_at": now},
	})
}

func (r *userRepository) findOne(ctx context.Context, funcName string, where squirrel.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	if err = r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ExistsByEmailOrUsername reports which of email and username are already
// registered, both compared case-insensitively.
func (r *userRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select().
		Column("COALESCE(BOOL_OR(LOWER(email) = LOWER(?)), false)", email).
		Column("COALESCE(BOOL_OR(LOWER(username) = LOWER(?)), false)", username).
		From("users").
		Where(squirrel.Or{
			squirrel.Expr("LOWER(email) = LOWER(?)", email),
			squirrel.Expr("LOWER(username) = LOWER(?)", username),
		}).
		ToSql()
	if err != nil {
		return false, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var emailTaken, usernameTaken bool
	if err = r.db.QueryRowxContext(ctx, query, args...).Scan(&emailTaken, &usernameTaken); err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsByEmailOrUsername").Msg("error checking user uniqueness")
		return false, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return emailTaken, usernameTaken, nil
}

// MarkVerified transitions a pending account to verified and clears the
// verification token.
func (r *userRepository) MarkVerified(ctx context.Context, userID int64) error {
	return r.exec(ctx, "*userRepository.MarkVerified", psql.Update("users").
		Set("account_status", models.AccountVerified).
		Set("email_verified", true).
		Set("verification_token", nil).
		Set("verification_token_expires_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID}))
}

// SetVerificationToken replaces the verification token and its expiry
// without touching the account status.
func (r *userRepository) SetVerificationToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	return r.exec(ctx, "*userRepository.SetVerificationToken", psql.Update("users").
		Set("verification_token", token).
		Set("verification_token_expires_at", expiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID}))
}

func (r *userRepository) exec(ctx context.Context, funcName string, builder squirrel.UpdateBuilder) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ListUsers returns one page of accounts ordered by id plus the total count
// matching filter.
func (r *userRepository) ListUsers(ctx context.Context, filter models.UserFilter) (models.UserPage, error) {
	log := logger.FromContext(ctx)

	listBuilder, countBuilder := buildListUsersQuery(filter)
	listQuery, listArgs, err := listBuilder.ToSql()
	if err != nil {
		return models.UserPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return models.UserPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	page := models.UserPage{Items: make([]models.User, 0), Limit: filter.Limit, Offset: filter.Offset}
	if err = r.db.SelectContext(ctx, &page.Items, listQuery, listArgs...); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return models.UserPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if err = r.db.GetContext(ctx, &page.Total, countQuery, countArgs...); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error counting users")
		return models.UserPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return page, nil
}

// UpdateUser writes every administratively mutable field of user.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("users").
		Set("email", user.Email).
		Set("username", user.Username).
		Set("account_status", user.AccountStatus).
		Set("email_verified", user.EmailVerified).
		Set("role", user.Role).
		Set("timezone", user.Timezone).
		Set("verification_token", user.VerificationToken).
		Set("verification_token_expires_at", user.VerificationTokenExpiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": user.UserID}).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	if err = r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", user.UserID).Msg("error updating user")
		return models.User{}, userWriteError(err)
	}

	return updated, nil
}

// userWriteError maps unique violations to the colliding field.
func userWriteError(err error) error {
	if postgresError(err) != pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	switch postgresConstraint(err) {
	case constraintUsersUsername:
		return ErrUsernameTaken
	default:
		return ErrEmailTaken
	}
}
