package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/internal/utils"
	"Recipe-Blog-Backend/pkg/jwt"

	"gorm.io/gorm"

	"golang.org/x/crypto/bcrypt"
)

type (
	AuthService interface {
		Login(ctx context.Context, req domain.LoginRequest) (string, domain.LoginResponse, error)
		ExchangeCode(ctx context.Context, code string) (string, error)
		// IsActiveAdmin reports whether the email belongs to an active
		// allow-list row. Lookup errors are returned so callers can fail
		// closed.
		IsActiveAdmin(ctx context.Context, email string) (bool, error)
	}

	authService struct {
		adminRepository AdminRepository
		jwtService      jwt.JWTService
		httpClient      *http.Client
	}
)

func NewAuthService(adminRepository AdminRepository, jwtService jwt.JWTService) AuthService {
	return &authService{
		adminRepository: adminRepository,
		jwtService:      jwtService,
		httpClient:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (string, domain.LoginResponse, error) {
	admin, err := s.adminRepository.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return "", domain.LoginResponse{}, err
	}

	if !admin.IsActive {
		return "", domain.LoginResponse{}, domain.ErrNotAdmin
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return "", domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateSessionToken(admin.Email)
	if err != nil {
		return "", domain.LoginResponse{}, err
	}

	return token, domain.LoginResponse{Email: admin.Email, Name: admin.Name}, nil
}

type tokenEndpointResponse struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
	User        struct {
		Email string `json:"email"`
	} `json:"user"`
}

// ExchangeCode trades an identity-provider authorization code for the
// account email. The caller checks the allow-list and issues the session.
func (s *authService) ExchangeCode(ctx context.Context, code string) (string, error) {
	tokenURL := utils.GetConfig("AUTH_TOKEN_URL")
	if tokenURL == "" || code == "" {
		return "", domain.ErrCodeExchangeFailed
	}

	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("client_id", utils.GetConfig("AUTH_CLIENT_ID"))
	data.Set("client_secret", utils.GetConfig("AUTH_CLIENT_SECRET"))
	data.Set("redirect_uri", utils.GetConfig("AUTH_REDIRECT_URI"))
	data.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned %d: %w", resp.StatusCode, domain.ErrCodeExchangeFailed)
	}

	var body tokenEndpointResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}

	email := body.User.Email
	if email == "" {
		email = body.Email
	}
	if email == "" {
		return "", domain.ErrCodeExchangeFailed
	}

	return strings.ToLower(email), nil
}

func (s *authService) IsActiveAdmin(ctx context.Context, email string) (bool, error) {
	admin, err := s.adminRepository.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return admin.IsActive, nil
}
