package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tasktrail/task-api/internal/core/domain"
)

type stubIssuer struct {
	subject string
	err     error
}

func (s *stubIssuer) Issue(string) (string, error) { return "", errors.New("not implemented") }

func (s *stubIssuer) Decode(string) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	return s.subject, time.Now().Add(30 * time.Minute), nil
}

type stubUsers struct {
	users map[string]*domain.User
}

func (s *stubUsers) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUsers) Delete(context.Context, int64) error { return errors.New("not implemented") }

type stubDenylist struct {
	revoked bool
}

func (s *stubDenylist) Revoke(context.Context, string, time.Duration) error { return nil }

func (s *stubDenylist) IsRevoked(context.Context, string) (bool, error) { return s.revoked, nil }

func runAuth(t *testing.T, header string, issuer *stubIssuer, users *stubUsers, denylist *stubDenylist) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(issuer, users, denylist)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuth_ValidToken(t *testing.T) {
	alice := &domain.User{ID: 1, Username: "alice"}
	issuer := &stubIssuer{subject: "alice"}
	users := &stubUsers{users: map[string]*domain.User{"alice": alice}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(issuer, users, &stubDenylist{})(func(c echo.Context) error {
		user, ok := c.Get(ContextUser).(*domain.User)
		if !ok || user.Username != "alice" {
			t.Fatalf("user not injected: %+v", c.Get(ContextUser))
		}
		if raw, _ := c.Get(ContextToken).(string); raw != "some-token" {
			t.Fatalf("raw token not injected: %q", raw)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, called := runAuth(t, "", &stubIssuer{subject: "alice"}, &stubUsers{}, &stubDenylist{})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	rec, called := runAuth(t, "Token abc", &stubIssuer{subject: "alice"}, &stubUsers{}, &stubDenylist{})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_BadToken(t *testing.T) {
	issuer := &stubIssuer{err: domain.ErrInvalidToken}
	rec, called := runAuth(t, "Bearer bad", issuer, &stubUsers{}, &stubDenylist{})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	alice := &domain.User{ID: 1, Username: "alice"}
	issuer := &stubIssuer{subject: "alice"}
	users := &stubUsers{users: map[string]*domain.User{"alice": alice}}

	// Signature and expiry are fine; the denylist alone must reject it.
	rec, called := runAuth(t, "Bearer revoked", issuer, users, &stubDenylist{revoked: true})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_DeletedSubject(t *testing.T) {
	// Token decodes but its subject no longer exists (user deleted after issuance).
	issuer := &stubIssuer{subject: "ghost"}
	rec, called := runAuth(t, "Bearer ok", issuer, &stubUsers{users: map[string]*domain.User{}}, &stubDenylist{})
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
