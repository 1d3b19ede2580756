package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/adapter"
	"github.com/MKhiriev/go-nutri-keeper/internal/config"
	"github.com/MKhiriev/go-nutri-keeper/internal/crypto"
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/metrics"
	"github.com/MKhiriev/go-nutri-keeper/internal/store"
	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

// verificationTTL is how long a verification link stays valid.
const verificationTTL = 24 * time.Hour

// authService is the concrete implementation of AuthService.
// It handles user registration, email verification, credential checks and
// the JWT session lifecycle.
type authService struct {
	uow    store.UnitOfWork
	users  store.UserRepository
	mailer adapter.Mailer
	hasher crypto.PasswordHasher

	validator validators.Validator

	// tokenSettings signs and verifies every session token.
	tokenSettings utils.TokenSettings

	// frontendURL prefixes the verification links sent by email.
	frontendURL string

	metrics *metrics.Metrics
	logger  *logger.Logger

	now           func() time.Time
	generateToken func() (string, error)
}

// NewAuthService constructs an AuthService. Registration and resend run
// their writes and the email send in one transaction, so a mail failure
// leaves no trace in the database.
func NewAuthService(
	storages *store.Storages,
	mailer adapter.Mailer,
	hasher crypto.PasswordHasher,
	cfg config.StructuredConfig,
	m *metrics.Metrics,
	logger *logger.Logger,
) AuthService {
	return &authService{
		uow:       storages.UnitOfWork,
		users:     storages.UserRepository,
		mailer:    mailer,
		hasher:    hasher,
		validator: validators.NewUserValidator(),
		tokenSettings: utils.TokenSettings{
			Issuer:    cfg.Auth.Issuer,
			SignKey:   cfg.Auth.SecretKey,
			Algorithm: cfg.Auth.Algorithm,
			Duration:  cfg.Auth.TokenDuration(),
		},
		frontendURL:   strings.TrimRight(cfg.App.FrontendURL, "/"),
		metrics:       m,
		logger:        logger,
		now:           time.Now,
		generateToken: utils.GenerateVerificationToken,
	}
}

// Register creates a pending account and emails its verification link.
//
// Returns the created user or:
//   - validators.Errors for malformed fields and for an email or username
//     that is already taken (compared case-insensitively);
//   - ErrSendingVerification if the mailer rejected the message. The insert
//     is rolled back in that case.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	if err := a.validator.Validate(ctx, req); err != nil {
		a.metrics.ObserveRegistration("invalid")
		return models.User{}, err
	}

	emailTaken, usernameTaken, err := a.users.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		return models.User{}, fmt.Errorf("checking existing accounts: %w", err)
	}
	if emailTaken || usernameTaken {
		a.metrics.ObserveRegistration("duplicate")
		return models.User{}, duplicateAccountError(emailTaken, usernameTaken)
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	token, err := a.generateToken()
	if err != nil {
		return models.User{}, err
	}
	expiresAt := a.now().Add(verificationTTL).UTC()

	// the verification mail leaves the process, so a retry would send it twice
	var created models.User
	err = a.uow.DoOnce(ctx, func(ctx context.Context, repos *store.Repositories) error {
		var txErr error
		created, txErr = repos.UserRepository.CreateUser(ctx, models.User{
			Email:                      req.Email,
			Username:                   req.Username,
			PasswordHash:               passwordHash,
			AccountStatus:              models.AccountPending,
			Role:                       models.RoleUser,
			Timezone:                   models.DefaultTimezone,
			VerificationToken:          &token,
			VerificationTokenExpiresAt: &expiresAt,
		})
		if txErr != nil {
			return accountWriteError(txErr)
		}

		return a.sendVerification(ctx, created, token)
	})
	if err != nil {
		if errors.Is(err, ErrSendingVerification) {
			a.metrics.ObserveRegistration("mail_failed")
		}
		log.Err(err).Str("func", "*authService.Register").Msg("registration failed")
		return models.User{}, err
	}

	a.metrics.ObserveRegistration("created")
	log.Info().Int64("user_id", created.UserID).Msg("user registered")
	return created, nil
}

// VerifyEmail consumes a verification token. An unknown, consumed or expired
// token yields ErrInvalidVerificationToken.
func (a *authService) VerifyEmail(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(token) == "" {
		return models.User{}, ErrInvalidVerificationToken
	}

	user, err := a.users.FindPendingUserByToken(ctx, token, a.now())
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) || errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrInvalidVerificationToken
		}
		return models.User{}, fmt.Errorf("looking up verification token: %w", err)
	}

	if err = a.users.MarkVerified(ctx, user.UserID); err != nil {
		log.Err(err).Str("func", "*authService.VerifyEmail").Int64("user_id", user.UserID).Msg("marking user verified failed")
		return models.User{}, fmt.Errorf("marking user verified: %w", err)
	}

	user.AccountStatus = models.AccountVerified
	user.EmailVerified = true
	user.VerificationToken = nil
	user.VerificationTokenExpiresAt = nil
	return user, nil
}

// ResendVerification issues a fresh token to an unverified account. The
// account state is left unchanged.
func (a *authService) ResendVerification(ctx context.Context, req models.ResendVerificationRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return err
	}

	user, err := a.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return fromStore(err, "user")
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	token, err := a.generateToken()
	if err != nil {
		return err
	}
	expiresAt := a.now().Add(verificationTTL).UTC()

	return a.uow.DoOnce(ctx, func(ctx context.Context, repos *store.Repositories) error {
		if err := repos.UserRepository.SetVerificationToken(ctx, user.UserID, token, expiresAt); err != nil {
			return fmt.Errorf("storing verification token: %w", err)
		}
		return a.sendVerification(ctx, user, token)
	})
}

// Login checks credentials and issues a session token.
//
// Unknown emails and wrong passwords both yield ErrInvalidCredentials; the
// distinction is only logged. Suspended accounts get ErrAccountSuspended and
// unverified ones ErrEmailNotVerified.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Token{}, err
	}

	user, err := a.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) || errors.Is(err, store.ErrNotFound) {
			log.Info().Str("func", "*authService.Login").Msg("login with unknown email")
			return models.Token{}, ErrInvalidCredentials
		}
		return models.Token{}, fmt.Errorf("looking up user: %w", err)
	}

	ok, err := a.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("stored password hash is unusable")
		return models.Token{}, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		log.Info().Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	if user.AccountStatus == models.AccountSuspended {
		return models.Token{}, ErrAccountSuspended
	}
	if !user.EmailVerified {
		return models.Token{}, ErrEmailNotVerified
	}

	token, err := utils.GenerateJWTToken(a.tokenSettings, user.UserID, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate validates tokenString and loads the user it names. Expired and
// invalid tokens, and tokens whose user no longer exists, all yield
// ErrUnauthenticated.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSettings)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := a.users.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) || errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrUnauthenticated
		}
		return models.User{}, fmt.Errorf("loading token subject: %w", err)
	}

	if user.AccountStatus == models.AccountSuspended {
		return models.User{}, ErrAccountSuspended
	}

	return user, nil
}

func (a *authService) sendVerification(ctx context.Context, user models.User, token string) error {
	err := a.mailer.SendVerification(ctx, adapter.VerificationEmail{
		To:       user.Email,
		Username: user.Username,
		Link:     a.frontendURL + "/verify-email/" + token,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendingVerification, err)
	}
	return nil
}

// duplicateAccountError renders taken credentials as field errors, which the
// client expects in the same shape as other validation failures.
func duplicateAccountError(emailTaken, usernameTaken bool) error {
	var errs validators.Errors
	if emailTaken {
		errs.Add(validators.FieldEmail, "email already registered", validators.TypeDuplicate)
	}
	if usernameTaken {
		errs.Add(validators.FieldUsername, "username already taken", validators.TypeDuplicate)
	}
	return errs.Err()
}

// accountWriteError maps unique violations of a user write (a race past the
// pre-check, or an admin rename) to field errors.
func accountWriteError(err error) error {
	switch {
	case errors.Is(err, store.ErrEmailTaken):
		return duplicateAccountError(true, false)
	case errors.Is(err, store.ErrUsernameTaken):
		return duplicateAccountError(false, true)
	case errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("user %w", ErrNotFound)
	default:
		return err
	}
}
