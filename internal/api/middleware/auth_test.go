package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/exalt/teamboard/internal/core/domain"
	"github.com/exalt/teamboard/internal/core/service"
)

type stubLookup struct {
	users map[string]*domain.User
}

func (s *stubLookup) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func newGateFixture(t *testing.T) (*service.TokenService, *stubLookup) {
	t.Helper()
	tokens := service.NewTokenService("secret", time.Minute, time.Hour)
	lookup := &stubLookup{users: map[string]*domain.User{
		"alice@example.com": {Email: "alice@example.com", Role: domain.RoleCEO},
	}}
	return tokens, lookup
}

func TestGate_ValidToken(t *testing.T) {
	e := echo.New()
	tokens, lookup := newGateFixture(t)

	signed, err := tokens.IssueAccessToken("alice@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Gate(tokens, lookup)(func(c echo.Context) error {
		called = true
		principal, ok := PrincipalFrom(c)
		if !ok {
			t.Fatalf("principal not bound")
		}
		if principal.User.Email != "alice@example.com" {
			t.Fatalf("unexpected principal: %+v", principal.User)
		}
		if principal.Authority != "CEO" {
			t.Fatalf("unexpected authority: %s", principal.Authority)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestGate_MissingHeader(t *testing.T) {
	e := echo.New()
	tokens, lookup := newGateFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Gate(tokens, lookup)(func(c echo.Context) error {
		called = true
		if _, ok := PrincipalFrom(c); ok {
			t.Fatalf("principal must not be bound without a header")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestGate_GarbageToken(t *testing.T) {
	e := echo.New()
	tokens, lookup := newGateFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Gate(tokens, lookup)(func(c echo.Context) error {
		called = true
		if _, ok := PrincipalFrom(c); ok {
			t.Fatalf("principal must not be bound for a garbage token")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("gate must never reject, got %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestGate_UnknownSubject(t *testing.T) {
	e := echo.New()
	tokens, lookup := newGateFixture(t)

	signed, err := tokens.IssueAccessToken("ghost@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Gate(tokens, lookup)(func(c echo.Context) error {
		if _, ok := PrincipalFrom(c); ok {
			t.Fatalf("principal must not be bound for an unknown subject")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestGate_KeepsExistingPrincipal(t *testing.T) {
	e := echo.New()
	tokens, lookup := newGateFixture(t)

	signed, err := tokens.IssueAccessToken("alice@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	existing := &Principal{User: &domain.User{Email: "bob@example.com", Role: domain.RoleTeamMember}, Authority: "TeamMember"}
	c.Set(principalKey, existing)

	handler := Gate(tokens, lookup)(func(c echo.Context) error {
		principal, ok := PrincipalFrom(c)
		if !ok || principal != existing {
			t.Fatalf("existing principal must not be replaced")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
