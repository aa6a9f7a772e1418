// Package auth issues and validates control-session tokens. Viewing the
// scene is anonymous; moving the base over the API or WebSocket requires a
// token. Sessions are stateless HS256 JWTs; there are no accounts.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rigview/rigview/backend-go/internal/typeid"
)

var ErrInvalidToken = errors.New("invalid token")

const sessionTTL = 24 * time.Hour

type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

type Session struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
}

// CreateSession mints a new control session.
func (s *Service) CreateSession() (*Session, error) {
	sessionID := typeid.NewSessionID()

	claims := jwt.MapClaims{
		"sub":  sessionID,
		"role": "control",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Session{SessionID: sessionID, Token: signed}, nil
}

// ValidateToken checks a control token and returns its session ID.
func (s *Service) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	if role, _ := claims["role"].(string); role != "control" {
		return "", ErrInvalidToken
	}

	sessionID, ok := claims["sub"].(string)
	if !ok {
		return "", ErrInvalidToken
	}
	if err := typeid.Validate(sessionID, typeid.PrefixSession); err != nil {
		return "", ErrInvalidToken
	}

	return sessionID, nil
}
