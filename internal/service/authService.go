package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vodninamlyn/wedding-rsvp/config"
	"github.com/vodninamlyn/wedding-rsvp/internal/entity"
)

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

// Login checks the configured admin credentials and issues a signed session
// token. The backend keeps no session state; the token is the session.
func (s *authService) Login(username, password string) (string, error) {
	if username != s.cfg.Admin.Username {
		return "", entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(s.cfg.Admin.PasswordHash), []byte(password)); err != nil {
		return "", entity.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.Expiration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// VerifySession answers the only auth question the core asks: is there a
// current session. Returns the subject on success.
func (s *authService) VerifySession(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(s.cfg.JWT.Secret), nil
		})
	if err != nil || !token.Valid {
		return "", entity.ErrUnauthorized
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", entity.ErrUnauthorized
	}

	return claims.Subject, nil
}
