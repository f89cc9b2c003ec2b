package form

import (
	"strings"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

// LoginForm holds the login credentials.
type LoginForm struct {
	Email    string
	Password string
}

// Payload checks both fields are filled.
func (f *LoginForm) Payload() (types.LoginRequest, error) {
	email := strings.TrimSpace(f.Email)
	if email == "" {
		return types.LoginRequest{}, apierrors.Required("email")
	}
	if f.Password == "" {
		return types.LoginRequest{}, apierrors.Required("password")
	}
	return types.LoginRequest{Email: email, Password: f.Password}, nil
}

// RegisterForm is the account registration form.
type RegisterForm struct {
	Name     string
	Email    string
	Password string
	phone    string
}

// SetPhone stores the typed phone number, normalized as the user types.
func (f *RegisterForm) SetPhone(s string) { f.phone = NormalizePhone(s) }

// Phone returns the normalized phone number.
func (f *RegisterForm) Phone() string { return f.phone }

// Payload validates the form: all four fields are required and the
// password must satisfy ValidatePassword.
func (f *RegisterForm) Payload() (types.RegisterRequest, error) {
	req := types.RegisterRequest{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
		Phone:    NormalizePhone(f.phone),
	}
	switch {
	case req.Name == "":
		return req, apierrors.Required("name")
	case req.Email == "":
		return req, apierrors.Required("email")
	case req.Password == "":
		return req, apierrors.Required("password")
	case req.Phone == "":
		return req, apierrors.Required("phone")
	}
	if err := ValidatePassword(req.Password); err != nil {
		return req, err
	}
	return req, nil
}
