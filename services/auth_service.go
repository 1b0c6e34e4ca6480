package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"portfolioapi/config"
	middleware "portfolioapi/middlewares"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService checks the single configured admin credential pair and issues
// session tokens. There is no user directory behind it.
type AuthService interface {
	Login(username, password string) (*TokenResult, error)
}

type TokenResult struct {
	Token     string
	ExpiresAt time.Time
}

type authService struct {
	adminUsername string
	adminPassword string
	jwtSecret     string
	tokenTTL      time.Duration
}

func NewAuthService(cfg config.AuthConfig) AuthService {
	return &authService{
		adminUsername: cfg.AdminUsername,
		adminPassword: cfg.AdminPassword,
		jwtSecret:     cfg.JWTSecret,
		tokenTTL:      time.Duration(cfg.TokenTTLHours) * time.Hour,
	}
}

func (s *authService) Login(username, password string) (*TokenResult, error) {
	// Compare both fields unconditionally so timing doesn't reveal which
	// one was wrong.
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername))
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword))

	if userMatch&passMatch != 1 {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := middleware.Claims{
		Username: username,
		Role:     middleware.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &TokenResult{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}
