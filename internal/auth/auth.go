// Package auth implements the admin gate in front of the dashboard: a
// single shared password exchanged for a short-lived bearer token.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 12 * time.Hour

var (
	ErrInvalidPassword = errors.New("invalid admin password")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

type Manager struct {
	secret       []byte
	passwordHash []byte
}

func NewManager(secret, passwordHash string) *Manager {
	return &Manager{
		secret:       []byte(secret),
		passwordHash: []byte(passwordHash),
	}
}

// Login checks the admin password against the configured bcrypt hash and
// issues a signed token.
func (m *Manager) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a bearer token.
func (m *Manager) Verify(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// Middleware rejects requests without a valid admin bearer token.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || m.Verify(tokenString) != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"unauthorized","message":"Valid admin token required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
