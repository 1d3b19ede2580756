// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/app"
	"github.com/MKhiriev/go-nutri-keeper/internal/service"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(target, body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Created(t *testing.T) {
	auth := &fakeAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			assert.Equal(t, "alice@example.com", req.Email)
			assert.Equal(t, "alice1", req.Username)
			return models.User{
				UserID:        3,
				Email:         req.Email,
				Username:      req.Username,
				PasswordHash:  "$argon2id$secret",
				AccountStatus: models.AccountPending,
			}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rec := httptest.NewRecorder()
	h.register(rec, postJSON("/api/auth/register", `{"email":"alice@example.com","username":"alice1","password":"Str0ng!pass"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"account_status":"pending"`)
	assert.NotContains(t, rec.Body.String(), "argon2id")
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &fakeAuthService{}})

	rec := httptest.NewRecorder()
	h.register(rec, postJSON("/api/auth/register", `{"email":`))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs := decodeFieldErrors(t, rec)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"body"}, errs[0].Loc)
	assert.Equal(t, validators.TypeJSON, errs[0].Type)
}

func TestRegister_FieldErrors(t *testing.T) {
	auth := &fakeAuthService{
		registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
			var errs validators.Errors
			errs.Add("email", "email already registered", validators.TypeDuplicate)
			errs.Add("password", "password must contain a digit", validators.TypeValue)
			return models.User{}, errs
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rec := httptest.NewRecorder()
	h.register(rec, postJSON("/api/auth/register", `{"email":"a@b.co","username":"bob","password":"x"}`))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs := decodeFieldErrors(t, rec)
	require.Len(t, errs, 2)
	assert.Equal(t, []string{"body", "email"}, errs[0].Loc)
	assert.Equal(t, validators.TypeDuplicate, errs[0].Type)
}

func TestRegister_MailFailureIsGeneric500(t *testing.T) {
	auth := &fakeAuthService{
		registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
			return models.User{}, fmt.Errorf("%w: ses throttled", service.ErrSendingVerification)
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rec := httptest.NewRecorder()
	h.register(rec, postJSON("/api/auth/register", `{"email":"a@b.co","username":"bob1","password":"Str0ng!pass"}`))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeDetail(t, rec))
	assert.NotContains(t, rec.Body.String(), "ses")
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_ReturnsBearerToken(t *testing.T) {
	auth := &fakeAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.Token, error) {
			assert.Equal(t, "alice@example.com", req.Email)
			return models.Token{SignedString: "signed.jwt", ExpiresAt: time.Now().Add(30 * time.Minute)}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rec := httptest.NewRecorder()
	h.login(rec, postJSON("/api/auth/login", `{"email":"alice@example.com","password":"Str0ng!pass"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.AccessTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.InDelta(t, 1800, resp.ExpiresIn, 5)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"wrong password", service.ErrInvalidCredentials, http.StatusUnauthorized, service.ErrInvalidCredentials.Error()},
		{"unverified", service.ErrEmailNotVerified, http.StatusForbidden, service.ErrEmailNotVerified.Error()},
		{"suspended", service.ErrAccountSuspended, http.StatusForbidden, service.ErrAccountSuspended.Error()},
		{"database down", errors.New("dial tcp: refused"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				loginFn: func(context.Context, models.LoginRequest) (models.Token, error) { return models.Token{}, tt.err },
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			rec := httptest.NewRecorder()
			h.login(rec, postJSON("/api/auth/login", `{"email":"a@b.co","password":"x"}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// verify / resend
// ─────────────────────────────────────────────

func TestVerifyEmail(t *testing.T) {
	t.Run("verified", func(t *testing.T) {
		auth := &fakeAuthService{
			verifyEmailFn: func(_ context.Context, token string) (models.User, error) {
				assert.Equal(t, "tok-123", token)
				return models.User{UserID: 3, EmailVerified: true}, nil
			},
		}
		h := newTestHandler(&service.Services{AuthService: auth})

		rec := httptest.NewRecorder()
		h.verifyEmail(rec, withURLParams(httptest.NewRequest(http.MethodGet, "/api/auth/verify-email/tok-123", nil), map[string]string{"token": "tok-123"}))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), app.MsgEmailVerified)
	})

	t.Run("invalid token", func(t *testing.T) {
		auth := &fakeAuthService{
			verifyEmailFn: func(context.Context, string) (models.User, error) {
				return models.User{}, service.ErrInvalidVerificationToken
			},
		}
		h := newTestHandler(&service.Services{AuthService: auth})

		rec := httptest.NewRecorder()
		h.verifyEmail(rec, withURLParams(httptest.NewRequest(http.MethodGet, "/api/auth/verify-email/nope", nil), map[string]string{"token": "nope"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, service.ErrInvalidVerificationToken.Error(), decodeDetail(t, rec))
	})
}

func TestResendVerification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"sent", nil, http.StatusOK},
		{"already verified", service.ErrAlreadyVerified, http.StatusBadRequest},
		{"unknown email", fmt.Errorf("user %w", service.ErrNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				resendFn: func(_ context.Context, req models.ResendVerificationRequest) error {
					assert.Equal(t, "a@b.co", req.Email)
					return tt.err
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			rec := httptest.NewRecorder()
			h.resendVerification(rec, postJSON("/api/auth/resend-verification", `{"email":"a@b.co"}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
