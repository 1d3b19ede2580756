package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned for a well-formed token past its exp claim.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for every other verification failure.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrInvalidAuthorizationHeader is returned when the header is not "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// TokenSettings holds everything needed to sign and verify session tokens.
type TokenSettings struct {
	Issuer    string
	SignKey   string
	Algorithm string // HS256, HS384 or HS512
	Duration  time.Duration
}

func (s TokenSettings) signingMethod() (jwt.SigningMethod, error) {
	method := jwt.GetSigningMethod(s.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", s.Algorithm)
	}
	return method, nil
}

// GenerateJWTToken creates a signed HMAC JWT for userID.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus settings.Duration
//
// Returns an error if issuer, key or duration are empty or the algorithm is
// not an HMAC algorithm.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(settings, 42, time.Now())
func GenerateJWTToken(settings TokenSettings, userID int64, now time.Time) (models.Token, error) {
	if settings.Issuer == "" || settings.Duration <= 0 || settings.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	method, err := settings.signingMethod()
	if err != nil {
		return models.Token{}, err
	}

	expiresAt := now.Add(settings.Duration)
	claims := &jwt.RegisteredClaims{
		Issuer:    settings.Issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(settings.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		UserID:           userID,
		ExpiresAt:        expiresAt,
	}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its claims.
//
// Validation includes the signature with the configured algorithm only, the
// issuer, expiration, and a numeric subject. Expired tokens yield
// [ErrTokenExpired]; every other failure yields [ErrTokenInvalid].
func ValidateAndParseJWTToken(tokenString string, settings TokenSettings) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(settings.SignKey), nil
	},
		jwt.WithIssuer(settings.Issuer),
		jwt.WithValidMethods([]string{settings.Algorithm}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrTokenInvalid)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: subject is not a user id: %w", ErrTokenInvalid, err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		UserID:           userID,
		ExpiresAt:        claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
