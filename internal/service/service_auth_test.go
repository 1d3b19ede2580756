package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/adapter"
	"github.com/MKhiriev/go-nutri-keeper/internal/config"
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/mock"
	"github.com/MKhiriev/go-nutri-keeper/internal/store"
	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testAuthConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{FrontendURL: "http://localhost:3000/"},
		Auth: config.Auth{
			SecretKey:     "test-secret",
			Algorithm:     "HS256",
			ExpireMinutes: 30,
			Issuer:        "nutri-keeper",
		},
	}
}

// newTestAuthSvc wires authService to mocks with a fixed clock and a fixed
// verification token.
func newTestAuthSvc(t *testing.T) (*authService, *storeMocks, *mock.MockMailer, *mock.MockPasswordHasher) {
	t.Helper()
	m, ctrl := newStoreMocks(t)
	mailer := mock.NewMockMailer(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(m.storages, mailer, hasher, testAuthConfig(), nil, logger.Nop()).(*authService)
	svc.now = func() time.Time { return fixedNow }
	svc.generateToken = func() (string, error) { return "verify-token", nil }

	return svc, m, mailer, hasher
}

func validRegistration() models.RegisterRequest {
	return models.RegisterRequest{Email: "a@b.co", Username: "alice1", Password: "SecureP@ss123"}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, m, mailer, hasher := newTestAuthSvc(t)
	ctx := context.Background()

	m.users.EXPECT().ExistsByEmailOrUsername(ctx, "a@b.co", "alice1").Return(false, false, nil)
	hasher.EXPECT().Hash("SecureP@ss123").Return("$argon2id$hash", nil)
	m.inTxOnce()
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "a@b.co", u.Email)
			assert.Equal(t, "$argon2id$hash", u.PasswordHash)
			assert.Equal(t, models.AccountPending, u.AccountStatus)
			assert.Equal(t, models.RoleUser, u.Role)
			assert.False(t, u.EmailVerified)
			require.NotNil(t, u.VerificationToken)
			assert.Equal(t, "verify-token", *u.VerificationToken)
			require.NotNil(t, u.VerificationTokenExpiresAt)
			assert.Equal(t, fixedNow.Add(24*time.Hour), *u.VerificationTokenExpiresAt)

			u.UserID = 7
			return u, nil
		},
	)
	mailer.EXPECT().SendVerification(gomock.Any(), adapter.VerificationEmail{
		To:       "a@b.co",
		Username: "alice1",
		Link:     "http://localhost:3000/verify-email/verify-token",
	}).Return(nil)

	user, err := svc.Register(ctx, validRegistration())

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Register_InvalidFields(t *testing.T) {
	svc, _, _, _ := newTestAuthSvc(t)

	req := validRegistration()
	req.Password = "weak"
	req.Username = "ad"

	_, err := svc.Register(context.Background(), req)

	errs, ok := validators.AsErrors(err)
	require.True(t, ok)
	locs := make([]string, 0, len(errs))
	for _, fe := range errs {
		locs = append(locs, fe.Loc[1])
	}
	assert.Contains(t, locs, "password")
	assert.Contains(t, locs, "username")
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	svc, m, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	m.users.EXPECT().ExistsByEmailOrUsername(ctx, "a@b.co", "alice1").Return(true, true, nil)

	_, err := svc.Register(ctx, validRegistration())

	errs, ok := validators.AsErrors(err)
	require.True(t, ok)
	require.Len(t, errs, 2)
	assert.Equal(t, []string{"body", "email"}, errs[0].Loc)
	assert.Equal(t, validators.TypeDuplicate, errs[0].Type)
	assert.Equal(t, []string{"body", "username"}, errs[1].Loc)
}

func TestAuthService_Register_MailFailureRollsBack(t *testing.T) {
	svc, m, mailer, hasher := newTestAuthSvc(t)
	ctx := context.Background()

	m.users.EXPECT().ExistsByEmailOrUsername(ctx, "a@b.co", "alice1").Return(false, false, nil)
	hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	m.inTxOnce()
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 7, Email: "a@b.co"}, nil)
	mailer.EXPECT().SendVerification(gomock.Any(), gomock.Any()).Return(adapter.ErrSendingEmail)

	_, err := svc.Register(ctx, validRegistration())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSendingVerification)
	assert.ErrorIs(t, err, adapter.ErrSendingEmail)
}

func TestAuthService_Register_CommitFailureAfterMailIsNotRetried(t *testing.T) {
	svc, m, mailer, hasher := newTestAuthSvc(t)
	ctx := context.Background()
	commitErr := errors.New("could not serialize access")

	m.users.EXPECT().ExistsByEmailOrUsername(ctx, "a@b.co", "alice1").Return(false, false, nil)
	hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	m.uow.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)
	m.uow.EXPECT().DoOnce(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, *store.Repositories) error) error {
			require.NoError(t, fn(ctx, m.storages.Repositories))
			return commitErr
		},
	).Times(1)
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 7, Email: "a@b.co"}, nil)
	mailer.EXPECT().SendVerification(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := svc.Register(ctx, validRegistration())
	assert.ErrorIs(t, err, commitErr)
}

func TestAuthService_Register_UniqueRaceReportedAsField(t *testing.T) {
	svc, m, _, hasher := newTestAuthSvc(t)
	ctx := context.Background()

	m.users.EXPECT().ExistsByEmailOrUsername(ctx, "a@b.co", "alice1").Return(false, false, nil)
	hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	m.inTxOnce()
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameTaken)

	_, err := svc.Register(ctx, validRegistration())

	errs, ok := validators.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"body", "username"}, errs[0].Loc)
}

// ── VerifyEmail ──────────────────────────────────────────────────────────────

func TestAuthService_VerifyEmail_Success(t *testing.T) {
	svc, m, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token := "verify-token"
	m.users.EXPECT().FindPendingUserByToken(ctx, token, fixedNow).
		Return(models.User{UserID: 7, AccountStatus: models.AccountPending, VerificationToken: &token}, nil)
	m.users.EXPECT().MarkVerified(ctx, int64(7)).Return(nil)

	user, err := svc.VerifyEmail(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, models.AccountVerified, user.AccountStatus)
	assert.True(t, user.EmailVerified)
	assert.Nil(t, user.VerificationToken)
}

func TestAuthService_VerifyEmail_Invalid(t *testing.T) {
	t.Run("unknown or expired", func(t *testing.T) {
		svc, m, _, _ := newTestAuthSvc(t)
		m.users.EXPECT().FindPendingUserByToken(gomock.Any(), "stale", fixedNow).Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.VerifyEmail(context.Background(), "stale")
		assert.ErrorIs(t, err, ErrInvalidVerificationToken)
	})

	t.Run("empty", func(t *testing.T) {
		svc, _, _, _ := newTestAuthSvc(t)

		_, err := svc.VerifyEmail(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrInvalidVerificationToken)
	})
}

// ── ResendVerification ───────────────────────────────────────────────────────

func TestAuthService_ResendVerification(t *testing.T) {
	svc, m, mailer, _ := newTestAuthSvc(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByEmail(ctx, "a@b.co").Return(models.User{UserID: 7, Email: "a@b.co", Username: "alice1"}, nil)
	m.inTxOnce()
	m.users.EXPECT().SetVerificationToken(gomock.Any(), int64(7), "verify-token", fixedNow.Add(24*time.Hour)).Return(nil)
	mailer.EXPECT().SendVerification(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.ResendVerification(ctx, models.ResendVerificationRequest{Email: " a@b.co "}))
}

func TestAuthService_ResendVerification_AlreadyVerified(t *testing.T) {
	svc, m, _, _ := newTestAuthSvc(t)

	m.users.EXPECT().FindUserByEmail(gomock.Any(), "a@b.co").Return(models.User{UserID: 7, EmailVerified: true}, nil)

	err := svc.ResendVerification(context.Background(), models.ResendVerificationRequest{Email: "a@b.co"})
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestAuthService_ResendVerification_UnknownEmail(t *testing.T) {
	svc, m, _, _ := newTestAuthSvc(t)

	m.users.EXPECT().FindUserByEmail(gomock.Any(), "a@b.co").Return(models.User{}, store.ErrUserNotFound)

	err := svc.ResendVerification(context.Background(), models.ResendVerificationRequest{Email: "a@b.co"})
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Login / Authenticate ─────────────────────────────────────────────────────

func verifiedUser() models.User {
	return models.User{
		UserID:        7,
		Email:         "a@b.co",
		Username:      "alice1",
		PasswordHash:  "stored-hash",
		AccountStatus: models.AccountVerified,
		EmailVerified: true,
		Role:          models.RoleUser,
	}
}

func TestAuthService_LoginThenAuthenticate(t *testing.T) {
	svc, m, _, hasher := newTestAuthSvc(t)
	svc.now = time.Now
	ctx := context.Background()

	m.users.EXPECT().FindUserByEmail(ctx, "A@b.co").Return(verifiedUser(), nil)
	hasher.EXPECT().Verify("SecureP@ss123", "stored-hash").Return(true, nil)

	token, err := svc.Login(ctx, models.LoginRequest{Email: "A@b.co", Password: "SecureP@ss123"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(7), token.UserID)

	m.users.EXPECT().FindUserByID(ctx, int64(7)).Return(verifiedUser(), nil)

	user, err := svc.Authenticate(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice1", user.Username)
}

func TestAuthService_Login_Failures(t *testing.T) {
	suspended := verifiedUser()
	suspended.AccountStatus = models.AccountSuspended

	unverified := verifiedUser()
	unverified.AccountStatus = models.AccountPending
	unverified.EmailVerified = false

	tests := []struct {
		name     string
		found    models.User
		findErr  error
		verifyOK bool
		wantErr  error
	}{
		{name: "unknown email", findErr: store.ErrUserNotFound, wantErr: ErrInvalidCredentials},
		{name: "wrong password", found: verifiedUser(), verifyOK: false, wantErr: ErrInvalidCredentials},
		{name: "unverified", found: unverified, verifyOK: true, wantErr: ErrEmailNotVerified},
		{name: "suspended", found: suspended, verifyOK: true, wantErr: ErrAccountSuspended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, _, hasher := newTestAuthSvc(t)

			m.users.EXPECT().FindUserByEmail(gomock.Any(), "a@b.co").Return(tt.found, tt.findErr)
			if tt.findErr == nil {
				hasher.EXPECT().Verify("SecureP@ss123", tt.found.PasswordHash).Return(tt.verifyOK, nil)
			}

			_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@b.co", Password: "SecureP@ss123"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Authenticate_Failures(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		svc, _, _, _ := newTestAuthSvc(t)

		_, err := svc.Authenticate(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("expired token", func(t *testing.T) {
		svc, _, _, _ := newTestAuthSvc(t)
		token, err := utils.GenerateJWTToken(svc.tokenSettings, 7, time.Now().Add(-time.Hour))
		require.NoError(t, err)

		_, err = svc.Authenticate(context.Background(), token.SignedString)
		assert.ErrorIs(t, err, ErrUnauthenticated)
		assert.ErrorIs(t, err, utils.ErrTokenExpired)
	})

	t.Run("deleted user", func(t *testing.T) {
		svc, m, _, _ := newTestAuthSvc(t)
		token, err := utils.GenerateJWTToken(svc.tokenSettings, 7, time.Now())
		require.NoError(t, err)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(models.User{}, store.ErrUserNotFound)

		_, err = svc.Authenticate(context.Background(), token.SignedString)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("suspended user", func(t *testing.T) {
		svc, m, _, _ := newTestAuthSvc(t)
		token, err := utils.GenerateJWTToken(svc.tokenSettings, 7, time.Now())
		require.NoError(t, err)
		user := verifiedUser()
		user.AccountStatus = models.AccountSuspended
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(user, nil)

		_, err = svc.Authenticate(context.Background(), token.SignedString)
		assert.ErrorIs(t, err, ErrAccountSuspended)
	})

	t.Run("database error is not an auth failure", func(t *testing.T) {
		svc, m, _, _ := newTestAuthSvc(t)
		token, err := utils.GenerateJWTToken(svc.tokenSettings, 7, time.Now())
		require.NoError(t, err)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(models.User{}, errors.New("conn reset"))

		_, err = svc.Authenticate(context.Background(), token.SignedString)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnauthenticated)
	})
}
