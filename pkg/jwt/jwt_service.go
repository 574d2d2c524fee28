package jwt

import (
	"errors"
	"fmt"
	"time"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/internal/utils"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateSessionToken(email string) (string, error)
		ValidateSessionToken(token string) (string, error)
		SessionTTL() time.Duration
	}

	sessionClaim struct {
		Email string `json:"email"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey  string
		issuer     string
		sessionTTL time.Duration
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	secretKey := utils.GetConfig("JWT_SECRET")
	return secretKey
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey:  getSecretKey(),
		issuer:     "RECIPE-BLOG",
		sessionTTL: time.Minute * 120,
	}
}

func (j *jwtService) SessionTTL() time.Duration {
	return j.sessionTTL
}

func (j *jwtService) GenerateSessionToken(email string) (string, error) {
	claims := sessionClaim{
		email,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.sessionTTL)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateSessionToken(token string) (string, error) {
	t_Token, err := jwt.ParseWithClaims(token, &sessionClaim{}, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*sessionClaim)
	if !ok || claims.Email == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Email, nil
}
