package domain

import "errors"

const (
	SessionCookieName = "admin_session"
	LoginPath         = "/auth/login"
	AdminLandingPath  = "/admin"
)

var (
	MessageSuccessLogin  = "logged in successfully"
	MessageSuccessLogout = "logged out successfully"

	MessageFailedLogin = "failed to log in"

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAdmin           = errors.New("account is not an active admin")
	ErrCodeExchangeFailed = errors.New("identity provider code exchange failed")
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Email string `json:"email"`
		Name  string `json:"name,omitempty"`
	}
)
