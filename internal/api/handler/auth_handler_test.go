package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/exalt/teamboard/internal/core/domain"
	"github.com/exalt/teamboard/internal/core/ports"
)

type stubAuthService struct {
	signupFn  func(ctx context.Context, in ports.SignupInput) (*domain.User, error)
	signinFn  func(ctx context.Context, email, password string) (*ports.TokenPair, error)
	refreshFn func(ctx context.Context, refreshToken string) (*ports.TokenPair, error)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAuthService) Signin(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	return s.signinFn(ctx, email, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	return s.refreshFn(ctx, refreshToken)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
			if in.FirstName != "Jane" || in.Email != "jane@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{
				ID:         "u1",
				FirstName:  in.FirstName,
				SecondName: in.SecondName,
				Email:      in.Email,
				Role:       domain.RoleTeamMember,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/signup",
		`{"first_name":"Jane","second_name":"Doe","email":"jane@example.com","password":"password1"}`)

	if err := handler.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "jane@example.com" || resp["role"] != "TeamMember" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	for _, forbidden := range []string{"password", "password_hash"} {
		if _, ok := resp[forbidden]; ok {
			t.Fatalf("response must not contain %s", forbidden)
		}
	}
}

func TestAuthHandler_Signup_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
			return nil, domain.ErrEmailAlreadyUsed
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/signup",
		`{"first_name":"Jane","second_name":"Doe","email":"jane@example.com","password":"password1"}`)

	if err := handler.Signup(c); !errors.Is(err, domain.ErrEmailAlreadyUsed) {
		t.Fatalf("expected ErrEmailAlreadyUsed, got %v", err)
	}
}

func TestAuthHandler_Signup_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/signup", "not-json")

	err := handler.Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/signup",
		`{"first_name":"Jane","second_name":"Doe","email":"jane@example.com","password":"short"}`)

	err := handler.Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Signin_Success(t *testing.T) {
	stub := &stubAuthService{
		signinFn: func(ctx context.Context, email, password string) (*ports.TokenPair, error) {
			if email != "jane@example.com" || password != "password1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.TokenPair{Token: "access123", RefreshToken: "refresh456"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/signin",
		`{"email":"jane@example.com","password":"password1"}`)

	if err := handler.Signin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "access123" || resp["refresh_token"] != "refresh456" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Signin_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		signinFn: func(ctx context.Context, email, password string) (*ports.TokenPair, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/signin",
		`{"email":"jane@example.com","password":"wrong-pass"}`)

	if err := handler.Signin(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
			if refreshToken != "refresh456" {
				t.Fatalf("unexpected token: %s", refreshToken)
			}
			return &ports.TokenPair{Token: "access789", RefreshToken: refreshToken}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/refresh", `{"token":"refresh456"}`)

	if err := handler.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "access789" || resp["refresh_token"] != "refresh456" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Refresh_Rejected(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
			return nil, domain.ErrRefreshRejected
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/refresh", `{"token":"stale"}`)

	if err := handler.Refresh(c); !errors.Is(err, domain.ErrRefreshRejected) {
		t.Fatalf("expected ErrRefreshRejected, got %v", err)
	}
}

func TestAuthHandler_Refresh_MissingToken(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/refresh", `{}`)

	err := handler.Refresh(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
