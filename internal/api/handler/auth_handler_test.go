package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shoplane/storefront-system/internal/api/middleware"
	"github.com/shoplane/storefront-system/internal/core/domain"
)

type stubAuthService struct {
	loginErr error
	user     *domain.User
	token    string
}

func (s *stubAuthService) Signup(_ context.Context, name, email, _, role string) (*domain.User, error) {
	return &domain.User{ID: "u1", Name: name, Email: email, Role: domain.Role(role)}, nil
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.token, s.user, nil
}

func (s *stubAuthService) CurrentUser(_ context.Context, userID string) (*domain.User, error) {
	if s.user == nil || s.user.ID != userID {
		return nil, domain.ErrUserNotFound
	}
	return s.user, nil
}

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour, false)
	c, rec := newAuthTestContext(t, http.MethodPost, "/v1/auth/signup",
		`{"name":"Ada","email":"ada@example.com","password":"longenough","role":"customer"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("signup error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ada@example.com") {
		t.Fatalf("response missing user: %s", rec.Body.String())
	}
	// No session is established on signup.
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("signup must not set a cookie")
	}
}

func TestAuthHandler_Signup_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour, false)

	cases := []struct {
		name string
		body string
	}{
		{name: "short password", body: `{"name":"Ada","email":"ada@example.com","password":"short","role":"customer"}`},
		{name: "bad email", body: `{"name":"Ada","email":"nope","password":"longenough","role":"customer"}`},
		{name: "unknown role", body: `{"name":"Ada","email":"ada@example.com","password":"longenough","role":"root"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newAuthTestContext(t, http.MethodPost, "/v1/auth/signup", tc.body)
			err := h.Signup(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	svc := &stubAuthService{
		token: "signed-token",
		user:  &domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: domain.RoleCustomer},
	}
	h := NewAuthHandler(svc, 7*24*time.Hour, true)
	c, rec := newAuthTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"ada@example.com","password":"longenough"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != middleware.SessionCookie {
		t.Fatalf("unexpected cookie name %q", cookie.Name)
	}
	if cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if !cookie.Secure {
		t.Fatalf("session cookie must be Secure in production")
	}
	if cookie.Path != "/" {
		t.Fatalf("unexpected cookie path %q", cookie.Path)
	}
	if cookie.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
		t.Fatalf("unexpected cookie max-age %d", cookie.MaxAge)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials}, time.Hour, false)
	c, rec := newAuthTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"ada@example.com","password":"wrongpass"}`)

	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("failed login must not set a cookie")
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour, false)
	c, rec := newAuthTestContext(t, http.MethodPost, "/v1/auth/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout error: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != middleware.SessionCookie || cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("cookie not cleared: %+v", cookie)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	svc := &stubAuthService{
		user: &domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: domain.RoleCustomer},
	}
	h := NewAuthHandler(svc, time.Hour, false)
	c, rec := newAuthTestContext(t, http.MethodGet, "/v1/auth/me", "")
	c.Set("user_id", "u1")

	if err := h.Me(c); err != nil {
		t.Fatalf("me error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "ada@example.com") {
		t.Fatalf("response missing user: %s", body)
	}
	if strings.Contains(body, "password") {
		t.Fatalf("response must not carry password material: %s", body)
	}
}

func TestAuthHandler_Me_NoClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour, false)
	c, _ := newAuthTestContext(t, http.MethodGet, "/v1/auth/me", "")

	err := h.Me(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
