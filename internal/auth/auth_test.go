package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return NewManager("test-secret", string(hash))
}

func TestLoginAndVerify(t *testing.T) {
	m := newTestManager(t)

	token, err := m.Login("admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := m.Verify(token); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Login("wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	m := newTestManager(t)

	if err := m.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	m := newTestManager(t)
	other := NewManager("other-secret", "")

	token, err := m.Login("admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("token signed with another secret must not verify, got %v", err)
	}
}

func TestMiddleware(t *testing.T) {
	m := newTestManager(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := m.Middleware(next)

	// No token
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard/summary", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}

	// Valid token
	token, err := m.Login("admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard/summary", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with token, got %d", rec.Code)
	}
}
