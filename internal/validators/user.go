package validators

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/models"
)

// Field names accepted as scopes by [UserValidator].
const (
	FieldEmail    = "email"
	FieldUsername = "username"
	FieldPassword = "password"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 20
	minPasswordLength = 8
	maxPasswordLength = 48
	passwordSpecials  = `!@#$%^&*(),.?":{}|<>`
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// reservedUsernames are compared case-insensitively.
var reservedUsernames = map[string]struct{}{
	"admin":         {},
	"administrator": {},
	"root":          {},
	"system":        {},
	"support":       {},
	"moderator":     {},
	"api":           {},
	"null":          {},
	"undefined":     {},
	"nutrikeeper":   {},
}

// UserValidator validates account payloads.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	case models.ResendVerificationRequest:
		return checkEmail(value.Email).Err()
	case *models.ResendVerificationRequest:
		return checkEmail(value.Email).Err()

	case models.UserAdminUpdate:
		return v.validateAdminUpdate(value)
	case *models.UserAdminUpdate:
		return v.validateAdminUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPassword}
	}

	var errs Errors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			errs = append(errs, checkEmail(req.Email)...)
		case FieldUsername:
			errs = append(errs, checkUsername(req.Username)...)
		case FieldPassword:
			errs = append(errs, checkPassword(req.Password)...)
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

func (v *UserValidator) validateLogin(req models.LoginRequest) error {
	var errs Errors
	if strings.TrimSpace(req.Email) == "" {
		errs.Add(FieldEmail, "field required", TypeMissing)
	}
	if req.Password == "" {
		errs.Add(FieldPassword, "field required", TypeMissing)
	}
	return errs.Err()
}

func (v *UserValidator) validateAdminUpdate(upd models.UserAdminUpdate) error {
	var errs Errors

	if upd.Role != nil && *upd.Role != models.RoleUser && *upd.Role != models.RoleAdmin {
		errs.Add("role", "role must be one of: user, admin", TypeEnum)
	}
	if upd.AccountStatus != nil {
		switch *upd.AccountStatus {
		case models.AccountPending, models.AccountVerified, models.AccountSuspended:
		default:
			errs.Add("account_status", "account_status must be one of: pending, verified, suspended", TypeEnum)
		}
	}
	if upd.Username != nil {
		errs = append(errs, checkUsername(*upd.Username)...)
	}
	if upd.Email != nil {
		errs = append(errs, checkEmail(*upd.Email)...)
	}
	if upd.Timezone != nil {
		if _, err := time.LoadLocation(*upd.Timezone); err != nil || *upd.Timezone == "" {
			errs.Add("timezone", "unknown timezone", TypeValue)
		}
	}

	return errs.Err()
}

func checkEmail(email string) Errors {
	var errs Errors
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add(FieldEmail, "field required", TypeMissing)
		return errs
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		errs.Add(FieldEmail, "value is not a valid email address", TypeEmail)
	}
	return errs
}

func checkUsername(username string) Errors {
	var errs Errors
	n := len(username)
	switch {
	case n < minUsernameLength || n > maxUsernameLength:
		errs.Add(FieldUsername, "username must be 3-20 characters long", TypeValue)
	case !usernamePattern.MatchString(username):
		errs.Add(FieldUsername, "username may only contain letters, digits, underscores and hyphens", TypeValue)
	}

	if _, reserved := reservedUsernames[strings.ToLower(username)]; reserved {
		errs.Add(FieldUsername, "username is reserved", TypeValue)
	}
	return errs
}

func checkPassword(password string) Errors {
	var errs Errors
	n := len([]rune(password))
	if n < minPasswordLength || n > maxPasswordLength {
		errs.Add(FieldPassword, "password must be 8-48 characters long", TypeValue)
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}

	if !upper {
		errs.Add(FieldPassword, "password must contain an uppercase letter", TypeValue)
	}
	if !lower {
		errs.Add(FieldPassword, "password must contain a lowercase letter", TypeValue)
	}
	if !digit {
		errs.Add(FieldPassword, "password must contain a digit", TypeValue)
	}
	if !special {
		errs.Add(FieldPassword, `password must contain a special character from !@#$%^&*(),.?":{}|<>`, TypeValue)
	}
	return errs
}
